// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prefixdb

import (
	"context"
	"crypto/sha256"
	"slices"
	"sync"

	"github.com/ava-labs/assetregistry/database"
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Batch    = (*batch)(nil)
	_ database.Iterator = (*iterator)(nil)
)

// Database partitions a database into a sub-database by prefixing all keys with
// a unique value.
type Database struct {
	// All keys in this db begin with this byte slice
	dbPrefix []byte
	// Lexically one greater than dbPrefix, defining the end of this db's key range
	dbLimit []byte

	// lock needs to be held during Close to guarantee db will not be set to nil
	// concurrently with another operation. All other operations can hold RLock.
	lock   sync.RWMutex
	db     database.Database
	closed bool
}

// New returns a new prefixed database. Nesting prefix databases collapses
// them into a single prefix over the innermost database.
func New(prefix []byte, db database.Database) *Database {
	if prefixDB, ok := db.(*Database); ok {
		return newDB(JoinPrefixes(prefixDB.dbPrefix, prefix), prefixDB.db)
	}
	return newDB(MakePrefix(prefix), db)
}

func newDB(prefix []byte, db database.Database) *Database {
	return &Database{
		dbPrefix: prefix,
		dbLimit:  incrementByteSlice(prefix),
		db:       db,
	}
}

// MakePrefix hashes [prefix] so that no namespace is a prefix of another.
func MakePrefix(prefix []byte) []byte {
	hash := sha256.Sum256(prefix)
	return hash[:]
}

func JoinPrefixes(firstPrefix, secondPrefix []byte) []byte {
	return MakePrefix(slices.Concat(firstPrefix, secondPrefix))
}

func incrementByteSlice(orig []byte) []byte {
	buf := slices.Clone(orig)
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i]++
		if buf[i] != 0 {
			break
		}
	}
	return buf
}

func (db *Database) prefix(key []byte) []byte {
	return slices.Concat(db.dbPrefix, key)
}

func (db *Database) Has(key []byte) (bool, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return false, database.ErrClosed
	}
	return db.db.Has(db.prefix(key))
}

func (db *Database) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return nil, database.ErrClosed
	}
	return db.db.Get(db.prefix(key))
}

func (db *Database) Put(key, value []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	return db.db.Put(db.prefix(key), value)
}

func (db *Database) Delete(key []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	return db.db.Delete(db.prefix(key))
}

func (db *Database) NewBatch() database.Batch {
	return &batch{
		batch: db.db.NewBatch(),
		db:    db,
	}
}

func (db *Database) NewIterator() database.Iterator {
	return db.NewIteratorWithStartAndPrefix(nil, nil)
}

func (db *Database) NewIteratorWithStart(start []byte) database.Iterator {
	return db.NewIteratorWithStartAndPrefix(start, nil)
}

func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	return db.NewIteratorWithStartAndPrefix(nil, prefix)
}

func (db *Database) NewIteratorWithStartAndPrefix(start, prefix []byte) database.Iterator {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return &database.IteratorError{Err: database.ErrClosed}
	}
	return &iterator{
		Iterator: db.db.NewIteratorWithStartAndPrefix(db.prefix(start), db.prefix(prefix)),
		db:       db,
	}
}

func (db *Database) Compact(start, limit []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	if limit == nil {
		return db.db.Compact(db.prefix(start), db.dbLimit)
	}
	return db.db.Compact(db.prefix(start), db.prefix(limit))
}

// Close marks this namespace closed. The underlying database stays open.
func (db *Database) Close() error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.closed {
		return database.ErrClosed
	}
	db.closed = true
	return nil
}

func (db *Database) isClosed() bool {
	db.lock.RLock()
	defer db.lock.RUnlock()

	return db.closed
}

func (db *Database) HealthCheck(ctx context.Context) (interface{}, error) {
	if db.isClosed() {
		return nil, database.ErrClosed
	}
	return db.db.HealthCheck(ctx)
}

// batch records the unprefixed operations so that Replay hands back the keys
// the caller used, while the inner batch receives the prefixed keys.
type batch struct {
	database.BatchOps

	batch database.Batch
	db    *Database
}

func (b *batch) Put(key, value []byte) error {
	if err := b.BatchOps.Put(key, value); err != nil {
		return err
	}
	return b.batch.Put(b.db.prefix(key), value)
}

func (b *batch) Delete(key []byte) error {
	if err := b.BatchOps.Delete(key); err != nil {
		return err
	}
	return b.batch.Delete(b.db.prefix(key))
}

func (b *batch) Write() error {
	if b.db.isClosed() {
		return database.ErrClosed
	}
	return b.batch.Write()
}

func (b *batch) Reset() {
	b.BatchOps.Reset()
	b.batch.Reset()
}

func (b *batch) Inner() database.Batch {
	return b.batch
}

// iterator strips the namespace from every key it returns.
type iterator struct {
	database.Iterator
	db *Database

	key, val []byte
	err      error
}

func (it *iterator) Next() bool {
	if it.db.isClosed() {
		it.key = nil
		it.val = nil
		it.err = database.ErrClosed
		return false
	}

	hasNext := it.Iterator.Next()
	if hasNext {
		key := it.Iterator.Key()
		if prefixLen := len(it.db.dbPrefix); len(key) >= prefixLen {
			key = key[prefixLen:]
		}
		it.key = key
		it.val = it.Iterator.Value()
	} else {
		it.key = nil
		it.val = nil
	}
	return hasNext
}

func (it *iterator) Key() []byte {
	return it.key
}

func (it *iterator) Value() []byte {
	return it.val
}

func (it *iterator) Error() error {
	if it.err != nil {
		return it.err
	}
	return it.Iterator.Error()
}
