// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/bloom"
	"go.uber.org/zap"

	"github.com/ava-labs/assetregistry/database"
	"github.com/ava-labs/assetregistry/utils/logging"
	"github.com/ava-labs/assetregistry/utils/units"
)

const (
	Name = "pebbledb"

	// pebbleByteOverHead is the number of bytes of constant overhead that
	// should be added to a batch size per operation.
	pebbleByteOverHead = 8

	blockSize      = 64 * units.KiB
	indexBlockSize = 256 * units.KiB
	filterPolicy   = bloom.FilterPolicy(10)
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Batch    = (*batch)(nil)
	_ database.Iterator = (*iter)(nil)

	ErrInvalidOperation = errors.New("invalid operation")

	DefaultConfig = Config{
		CacheSize:                   64 * units.MiB,
		BytesPerSync:                units.MiB,
		WALBytesPerSync:             units.MiB,
		MemTableStopWritesThreshold: 8,
		MemTableSize:                16 * units.MiB,
		MaxOpenFiles:                4 * units.KiB,
	}
)

type Config struct {
	CacheSize                   int `json:"cacheSize"`
	BytesPerSync                int `json:"bytesPerSync"`
	WALBytesPerSync             int `json:"walBytesPerSync"` // 0 means no background syncing
	MemTableStopWritesThreshold int `json:"memTableStopWritesThreshold"`
	MemTableSize                int `json:"memTableSize"`
	MaxOpenFiles                int `json:"maxOpenFiles"`
}

type Database struct {
	pebbleDB *pebble.DB
	closed   atomic.Bool
}

// New opens a pebble database at [file]. [configBytes] may be empty, in
// which case DefaultConfig is used.
func New(file string, configBytes []byte, log logging.Logger) (database.Database, error) {
	cfg := DefaultConfig
	if len(configBytes) > 0 {
		if err := json.Unmarshal(configBytes, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse pebble config: %w", err)
		}
	}

	opts := &pebble.Options{
		Cache:                       pebble.NewCache(int64(cfg.CacheSize)),
		BytesPerSync:                cfg.BytesPerSync,
		WALBytesPerSync:             cfg.WALBytesPerSync,
		MemTableStopWritesThreshold: cfg.MemTableStopWritesThreshold,
		MemTableSize:                cfg.MemTableSize,
		MaxOpenFiles:                cfg.MaxOpenFiles,
		MaxConcurrentCompactions:    runtime.NumCPU,
		Levels:                      make([]pebble.LevelOptions, 7),
	}
	for i := range opts.Levels {
		l := &opts.Levels[i]
		l.BlockSize = blockSize
		l.IndexBlockSize = indexBlockSize
		l.FilterPolicy = filterPolicy
		l.FilterType = pebble.TableFilter
		if i > 0 {
			l.TargetFileSize = opts.Levels[i-1].TargetFileSize * 2
		}
	}
	opts.Experimental.ReadSamplingMultiplier = -1 // explicitly disable seek compaction

	log.Info("opening pebble",
		zap.String("path", file),
		zap.Int("cacheSize", cfg.CacheSize),
	)

	db, err := pebble.Open(file, opts)
	if err != nil {
		return nil, err
	}
	return &Database{pebbleDB: db}, nil
}

func (db *Database) Close() error {
	// pebble panics if closed twice
	if db.closed.Swap(true) {
		return database.ErrClosed
	}

	err := updateError(db.pebbleDB.Close())
	if err != nil && strings.Contains(err.Error(), "leaked iterator") {
		// Closing with unreleased iterators is allowed.
		return nil
	}
	return err
}

func (db *Database) HealthCheck(context.Context) (interface{}, error) {
	if db.closed.Load() {
		return nil, database.ErrClosed
	}
	return nil, nil
}

func (db *Database) Has(key []byte) (bool, error) {
	if db.closed.Load() {
		return false, database.ErrClosed
	}

	_, closer, err := db.pebbleDB.Get(key)
	if err == pebble.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, updateError(err)
	}
	return true, closer.Close()
}

func (db *Database) Get(key []byte) ([]byte, error) {
	if db.closed.Load() {
		return nil, database.ErrClosed
	}

	data, closer, err := db.pebbleDB.Get(key)
	if err != nil {
		return nil, updateError(err)
	}
	ret := slices.Clone(data)
	return ret, closer.Close()
}

func (db *Database) Put(key []byte, value []byte) error {
	if db.closed.Load() {
		return database.ErrClosed
	}
	return updateError(db.pebbleDB.Set(key, value, pebble.NoSync))
}

func (db *Database) Delete(key []byte) error {
	if db.closed.Load() {
		return database.ErrClosed
	}
	return updateError(db.pebbleDB.Delete(key, pebble.NoSync))
}

func (db *Database) Compact(start []byte, limit []byte) error {
	if db.closed.Load() {
		return database.ErrClosed
	}

	if limit != nil {
		if bytes.Compare(start, limit) >= 0 {
			// pebble rejects empty ranges
			return nil
		}
		return updateError(db.pebbleDB.Compact(start, limit, true))
	}

	// A nil limit means "after every key", which pebble does not support.
	it := db.pebbleDB.NewIter(&pebble.IterOptions{})
	defer it.Close()

	if !it.Last() {
		return nil
	}
	lastKey := slices.Clone(it.Key())
	if bytes.Compare(start, lastKey) >= 0 {
		return nil
	}
	return updateError(db.pebbleDB.Compact(start, lastKey, true))
}

// batch is a wrapper around a pebbleDB batch to contain sizes.
type batch struct {
	batch *pebble.Batch
	db    *Database
	size  int

	// pebble panics if a batch is committed twice
	written bool
}

func (db *Database) NewBatch() database.Batch {
	return &batch{
		db:    db,
		batch: db.pebbleDB.NewBatch(),
	}
}

func (b *batch) Put(key, value []byte) error {
	b.size += len(key) + len(value) + pebbleByteOverHead
	return b.batch.Set(key, value, pebble.NoSync)
}

func (b *batch) Delete(key []byte) error {
	b.size += len(key) + pebbleByteOverHead
	return b.batch.Delete(key, pebble.NoSync)
}

func (b *batch) Size() int {
	return b.size
}

func (b *batch) Write() error {
	if b.db.closed.Load() {
		return database.ErrClosed
	}

	if !b.written {
		b.written = true
		return updateError(b.batch.Commit(pebble.NoSync))
	}

	rewrite := b.db.pebbleDB.NewBatch()
	if err := rewrite.Apply(b.batch, nil); err != nil {
		return err
	}
	return updateError(rewrite.Commit(pebble.NoSync))
}

func (b *batch) Reset() {
	b.batch.Reset()
	b.written = false
	b.size = 0
}

func (b *batch) Replay(w database.KeyValueWriterDeleter) error {
	reader := b.batch.Reader()
	for {
		kind, k, v, ok := reader.Next()
		if !ok {
			return nil
		}
		switch kind {
		case pebble.InternalKeyKindSet:
			if err := w.Put(k, v); err != nil {
				return err
			}
		case pebble.InternalKeyKindDelete:
			if err := w.Delete(k); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %v", ErrInvalidOperation, kind)
		}
	}
}

func (b *batch) Inner() database.Batch {
	return b
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

// NewIteratorWithStartAndPrefix creates a lexicographically ordered iterator
// over the database starting at start and ignoring keys that do not start with
// the provided prefix.
func (db *Database) NewIteratorWithStartAndPrefix(start, prefix []byte) database.Iterator {
	if db.closed.Load() {
		return &database.IteratorError{Err: database.ErrClosed}
	}

	iterRange := keyRange(prefix)
	if bytes.Compare(start, prefix) == 1 {
		iterRange.LowerBound = start
	}
	return &iter{
		db:   db,
		iter: db.pebbleDB.NewIter(iterRange),
	}
}

// keyRange returns the key range that satisfies the given prefix under the
// default bytes comparer.
func keyRange(prefix []byte) *pebble.IterOptions {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return &pebble.IterOptions{LowerBound: prefix, UpperBound: limit}
}

type iter struct {
	db       *Database
	iter     *pebble.Iterator
	setFirst bool
	released bool

	valid bool
	err   error
}

func (it *iter) Next() bool {
	if it.db.closed.Load() {
		it.valid = false
		it.err = database.ErrClosed
		return false
	}
	if it.released {
		it.valid = false
		return false
	}

	if !it.setFirst {
		it.valid = it.iter.First()
		it.setFirst = true
	} else {
		it.valid = it.iter.Next()
	}
	return it.valid
}

func (it *iter) Error() error {
	if it.err != nil {
		return it.err
	}
	if it.released {
		return nil
	}
	return updateError(it.iter.Error())
}

func (it *iter) Key() []byte {
	if !it.valid {
		return nil
	}
	return slices.Clone(it.iter.Key())
}

func (it *iter) Value() []byte {
	if !it.valid {
		return nil
	}
	return slices.Clone(it.iter.Value())
}

func (it *iter) Release() {
	if it.released || it.db.closed.Load() {
		return
	}
	it.released = true
	it.valid = false
	_ = it.iter.Close()
}

// updateError casts pebble-specific errors to the database package errors.
func updateError(err error) error {
	switch {
	case errors.Is(err, pebble.ErrClosed):
		return database.ErrClosed
	case errors.Is(err, pebble.ErrNotFound):
		return database.ErrNotFound
	default:
		return err
	}
}
