// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package badgerdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"

	"github.com/ava-labs/assetregistry/database"
	"github.com/ava-labs/assetregistry/utils/logging"
	"github.com/ava-labs/assetregistry/utils/units"
)

const (
	Name = "badgerdb"

	// gcDiscardRatio is the fraction of a value log file that must be stale
	// before Compact rewrites it.
	gcDiscardRatio = 0.5
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Batch    = (*batch)(nil)
	_ database.Iterator = (*iterator)(nil)
	_ badger.Logger     = (*logAdapter)(nil)

	DefaultConfig = Config{
		MemTableSize:    16 * units.MiB,
		ValueLogMaxSize: 64 * units.MiB,
	}
)

type Config struct {
	MemTableSize    int64 `json:"memTableSize"`
	ValueLogMaxSize int64 `json:"valueLogMaxSize"`
	SyncWrites      bool  `json:"syncWrites"`
}

type Database struct {
	db     *badger.DB
	closed atomic.Bool
}

// New opens a badger database rooted at [dir].
func New(dir string, configBytes []byte, log logging.Logger) (database.Database, error) {
	cfg := DefaultConfig
	if len(configBytes) > 0 {
		if err := json.Unmarshal(configBytes, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse badger config: %w", err)
		}
	}

	opts := badger.DefaultOptions(dir).
		WithMemTableSize(cfg.MemTableSize).
		WithValueLogFileSize(cfg.ValueLogMaxSize).
		WithSyncWrites(cfg.SyncWrites).
		WithLogger(&logAdapter{log: log})

	log.Info("opening badger",
		zap.String("path", dir),
		zap.Int64("memTableSize", cfg.MemTableSize),
	)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Database{db: db}, nil
}

func (db *Database) Has(key []byte) (bool, error) {
	if db.closed.Load() {
		return false, database.ErrClosed
	}

	err := db.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, updateError(err)
}

func (db *Database) Get(key []byte) ([]byte, error) {
	if db.closed.Load() {
		return nil, database.ErrClosed
	}

	var value []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	return value, updateError(err)
}

func (db *Database) Put(key, value []byte) error {
	if db.closed.Load() {
		return database.ErrClosed
	}
	return updateError(db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(bytes.Clone(key), bytes.Clone(value))
	}))
}

func (db *Database) Delete(key []byte) error {
	if db.closed.Load() {
		return database.ErrClosed
	}
	return updateError(db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(bytes.Clone(key))
	}))
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

// NewIteratorWithStartAndPrefix reads the matching range inside a single read
// transaction so that the returned iterator does not pin a badger
// transaction.
func (db *Database) NewIteratorWithStartAndPrefix(start, prefix []byte) database.Iterator {
	if db.closed.Load() {
		return &database.IteratorError{Err: database.ErrClosed}
	}

	it := &iterator{db: db}
	err := db.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		bi := txn.NewIterator(opts)
		defer bi.Close()

		seek := prefix
		if bytes.Compare(start, prefix) == 1 {
			seek = start
		}
		for bi.Seek(seek); bi.Valid(); bi.Next() {
			item := bi.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			it.keys = append(it.keys, item.KeyCopy(nil))
			it.values = append(it.values, value)
		}
		return nil
	})
	if err != nil {
		return &database.IteratorError{Err: updateError(err)}
	}
	return it
}

// Compact runs value log garbage collection. Badger compacts its LSM tree on
// its own.
func (db *Database) Compact([]byte, []byte) error {
	if db.closed.Load() {
		return database.ErrClosed
	}
	err := db.db.RunValueLogGC(gcDiscardRatio)
	if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
		return nil
	}
	return updateError(err)
}

func (db *Database) Close() error {
	if db.closed.Swap(true) {
		return database.ErrClosed
	}
	return updateError(db.db.Close())
}

func (db *Database) HealthCheck(context.Context) (interface{}, error) {
	if db.closed.Load() {
		return nil, database.ErrClosed
	}
	lsm, vlog := db.db.Size()
	return map[string]int64{
		"lsmSize":      lsm,
		"valueLogSize": vlog,
	}, nil
}

type batch struct {
	database.BatchOps

	db *Database
}

func (b *batch) Write() error {
	if b.db.closed.Load() {
		return database.ErrClosed
	}

	wb := b.db.db.NewWriteBatch()
	for _, op := range b.Ops {
		var err error
		if op.Delete {
			err = wb.Delete(bytes.Clone(op.Key))
		} else {
			err = wb.Set(bytes.Clone(op.Key), bytes.Clone(op.Value))
		}
		if err != nil {
			wb.Cancel()
			return updateError(err)
		}
	}
	return updateError(wb.Flush())
}

func (b *batch) Inner() database.Batch {
	return b
}

type iterator struct {
	db      *Database
	started bool
	keys    [][]byte
	values  [][]byte
	err     error
}

func (it *iterator) Next() bool {
	if it.db.closed.Load() {
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
	return bytes.Clone(it.keys[0])
}

func (it *iterator) Value() []byte {
	if !it.started || len(it.values) == 0 {
		return nil
	}
	return bytes.Clone(it.values[0])
}

func (it *iterator) Release() {
	it.keys = nil
	it.values = nil
}

func updateError(err error) error {
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return database.ErrNotFound
	case errors.Is(err, badger.ErrDBClosed):
		return database.ErrClosed
	default:
		return err
	}
}

// logAdapter routes badger's printf-style logging into a structured logger.
type logAdapter struct {
	log logging.Logger
}

func (l *logAdapter) Errorf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...))
}

func (l *logAdapter) Warningf(format string, args ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

func (l *logAdapter) Infof(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

func (l *logAdapter) Debugf(format string, args ...interface{}) {
	l.log.Verbo(fmt.Sprintf(format, args...))
}
