// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memdb

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/ava-labs/assetregistry/database"
)

const (
	// Name is the name of this database for database switches
	Name = "memdb"

	// DefaultSize is the default initial size of the memory database
	DefaultSize = 1024
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Batch    = (*batch)(nil)
	_ database.Iterator = (*iterator)(nil)
)

// Database is an ephemeral key-value store. The CLI uses it when no on-disk
// backend is configured and every package test uses it as the registry's
// backing store.
type Database struct {
	lock sync.RWMutex
	// nil once closed
	db map[string][]byte
}

func New() *Database {
	return NewWithSize(DefaultSize)
}

func NewWithSize(size int) *Database {
	return &Database{db: make(map[string][]byte, size)}
}

// Len returns the number of stored keys, or 0 if the database is closed.
func (db *Database) Len() int {
	db.lock.RLock()
	defer db.lock.RUnlock()

	return len(db.db)
}

func (db *Database) Close() error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.db == nil {
		return database.ErrClosed
	}
	db.db = nil
	return nil
}

func (db *Database) closed() bool {
	db.lock.RLock()
	defer db.lock.RUnlock()

	return db.db == nil
}

func (db *Database) Has(key []byte) (bool, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.db == nil {
		return false, database.ErrClosed
	}
	_, ok := db.db[string(key)]
	return ok, nil
}

func (db *Database) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.db == nil {
		return nil, database.ErrClosed
	}
	value, ok := db.db[string(key)]
	if !ok {
		return nil, database.ErrNotFound
	}
	return slices.Clone(value), nil
}

func (db *Database) Put(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.db == nil {
		return database.ErrClosed
	}
	db.db[string(key)] = slices.Clone(value)
	return nil
}

func (db *Database) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.db == nil {
		return database.ErrClosed
	}
	delete(db.db, string(key))
	return nil
}

func (db *Database) NewBatch() database.Batch {
	return &batch{db: db}
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

// NewIteratorWithStartAndPrefix iterates over a sorted copy of the matching
// keys taken when the iterator is created. Later writes are not observed.
func (db *Database) NewIteratorWithStartAndPrefix(start, prefix []byte) database.Iterator {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.db == nil {
		return &database.IteratorError{Err: database.ErrClosed}
	}

	var (
		startStr  = string(start)
		prefixStr = string(prefix)
		keys      = slices.Sorted(maps.Keys(db.db))
		it        = &iterator{db: db}
	)
	for _, key := range keys {
		if key < startStr || !strings.HasPrefix(key, prefixStr) {
			continue
		}
		it.keys = append(it.keys, key)
		it.values = append(it.values, db.db[key])
	}
	return it
}

func (db *Database) Compact(_, _ []byte) error {
	if db.closed() {
		return database.ErrClosed
	}
	return nil
}

func (db *Database) HealthCheck(context.Context) (interface{}, error) {
	if db.closed() {
		return nil, database.ErrClosed
	}
	return nil, nil
}

type batch struct {
	database.BatchOps

	db *Database
}

func (b *batch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()

	if b.db.db == nil {
		return database.ErrClosed
	}
	for _, op := range b.Ops {
		if op.Delete {
			delete(b.db.db, string(op.Key))
			continue
		}
		b.db.db[string(op.Key)] = slices.Clone(op.Value)
	}
	return nil
}

func (b *batch) Inner() database.Batch {
	return b
}

type iterator struct {
	db      *Database
	started bool
	keys    []string
	values  [][]byte
	err     error
}

func (it *iterator) Next() bool {
	if it.db.closed() {
		it.keys = nil
		it.values = nil
		it.err = database.ErrClosed
		return false
	}

	if !it.started {
		it.started = true
		return len(it.keys) > 0
	}
	if len(it.keys) > 0 {
		it.keys = it.keys[1:]
		it.values = it.values[1:]
	}
	return len(it.keys) > 0
}

func (it *iterator) Error() error {
	return it.err
}

func (it *iterator) Key() []byte {
	if !it.started || len(it.keys) == 0 {
		return nil
	}
	return []byte(it.keys[0])
}

func (it *iterator) Value() []byte {
	if !it.started || len(it.values) == 0 {
		return nil
	}
	return slices.Clone(it.values[0])
}

func (it *iterator) Release() {
	it.keys = nil
	it.values = nil
}
