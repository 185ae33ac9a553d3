// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package state provides the journaled key/value state that precompiles run
// against. Writes are buffered in a [versiondb.Database] until [StateDB.Commit]
// and every write or log can be rolled back to a snapshot.
package state

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/core/types"

	"github.com/ava-labs/assetregistry/database"
	"github.com/ava-labs/assetregistry/database/versiondb"
)

var (
	_ database.KeyValueReaderWriterDeleter = (*StateDB)(nil)
	_ database.Iteratee                    = (*StateDB)(nil)
)

type revision struct {
	id           int
	journalIndex int
}

type StateDB struct {
	db *versiondb.Database

	journal        journal
	logs           []*types.Log
	validRevisions []revision
	nextRevisionID int
}

// New returns a state whose writes are buffered on top of [db].
func New(db database.Database) *StateDB {
	return &StateDB{
		db: versiondb.New(db),
	}
}

func (s *StateDB) Has(key []byte) (bool, error) {
	return s.db.Has(key)
}

func (s *StateDB) Get(key []byte) ([]byte, error) {
	return s.db.Get(key)
}

func (s *StateDB) Put(key, value []byte) error {
	if err := s.recordKey(key); err != nil {
		return err
	}
	return s.db.Put(key, value)
}

func (s *StateDB) Delete(key []byte) error {
	if err := s.recordKey(key); err != nil {
		return err
	}
	return s.db.Delete(key)
}

func (s *StateDB) recordKey(key []byte) error {
	prev, err := s.db.Get(key)
	switch {
	case err == nil:
		s.journal.append(keyChange{
			key:     common.CopyBytes(key),
			prev:    common.CopyBytes(prev),
			existed: true,
		})
	case errors.Is(err, database.ErrNotFound):
		s.journal.append(keyChange{
			key: common.CopyBytes(key),
		})
	default:
		return err
	}
	return nil
}

func (s *StateDB) NewIterator() database.Iterator {
	return s.db.NewIterator()
}

func (s *StateDB) NewIteratorWithStart(start []byte) database.Iterator {
	return s.db.NewIteratorWithStart(start)
}

func (s *StateDB) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	return s.db.NewIteratorWithPrefix(prefix)
}

func (s *StateDB) NewIteratorWithStartAndPrefix(start, prefix []byte) database.Iterator {
	return s.db.NewIteratorWithStartAndPrefix(start, prefix)
}

// AddLog appends [log] and assigns its index.
func (s *StateDB) AddLog(log *types.Log) {
	s.journal.append(addLogChange{})
	log.Index = uint(len(s.logs))
	s.logs = append(s.logs, log)
}

// Logs returns every log added since the last [StateDB.Abort].
func (s *StateDB) Logs() []*types.Log {
	return s.logs
}

// Snapshot returns an identifier for the current revision of the state.
func (s *StateDB) Snapshot() int {
	id := s.nextRevisionID
	s.nextRevisionID++
	s.validRevisions = append(s.validRevisions, revision{
		id:           id,
		journalIndex: s.journal.length(),
	})
	return id
}

// RevertToSnapshot reverts all state changes made since the given revision.
func (s *StateDB) RevertToSnapshot(revid int) {
	idx := sort.Search(len(s.validRevisions), func(i int) bool {
		return s.validRevisions[i].id >= revid
	})
	if idx == len(s.validRevisions) || s.validRevisions[idx].id != revid {
		panic(fmt.Errorf("revision id %v cannot be reverted", revid))
	}
	snapshot := s.validRevisions[idx].journalIndex

	s.journal.revert(s, snapshot)
	s.validRevisions = s.validRevisions[:idx]
}

// Commit writes the buffered changes to the underlying database. Snapshots
// taken before the commit are no longer valid.
func (s *StateDB) Commit() error {
	if err := s.db.Commit(); err != nil {
		return err
	}
	s.journal.reset()
	s.validRevisions = s.validRevisions[:0]
	return nil
}

// Abort discards all buffered changes and logs.
func (s *StateDB) Abort() {
	s.db.Abort()
	s.journal.reset()
	s.logs = nil
	s.validRevisions = s.validRevisions[:0]
}

// Pending returns the number of buffered key changes.
func (s *StateDB) Pending() int {
	return s.db.Pending()
}

// GetLogData returns the topics and data of each log added to the state.
// Test helper function.
func (s *StateDB) GetLogData() (topics [][]common.Hash, data [][]byte) {
	for _, log := range s.logs {
		topics = append(topics, log.Topics)
		data = append(data, common.CopyBytes(log.Data))
	}
	return topics, data
}
