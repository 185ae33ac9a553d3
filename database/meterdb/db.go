// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meterdb

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/assetregistry/database"
	"github.com/ava-labs/assetregistry/utils/wrappers"
)

const methodLabel = "method"

var (
	_ database.Database = (*Database)(nil)
	_ database.Batch    = (*batch)(nil)

	methodLabels = []string{methodLabel}

	hasLabel         = prometheus.Labels{methodLabel: "has"}
	getLabel         = prometheus.Labels{methodLabel: "get"}
	putLabel         = prometheus.Labels{methodLabel: "put"}
	deleteLabel      = prometheus.Labels{methodLabel: "delete"}
	newIteratorLabel = prometheus.Labels{methodLabel: "new_iterator"}
	compactLabel     = prometheus.Labels{methodLabel: "compact"}
	closeLabel       = prometheus.Labels{methodLabel: "close"}
	batchWriteLabel  = prometheus.Labels{methodLabel: "batch_write"}
)

// Database tracks the number and latency of calls to the wrapped database.
type Database struct {
	db database.Database

	calls    *prometheus.CounterVec
	duration *prometheus.CounterVec
	size     prometheus.Counter
}

// New returns a new database with added metrics
func New(reg prometheus.Registerer, db database.Database) (*Database, error) {
	meterDB := &Database{
		db: db,
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calls",
				Help: "number of calls to the database",
			},
			methodLabels,
		),
		duration: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "duration",
				Help: "time spent in database calls (ns)",
			},
			methodLabels,
		),
		size: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "written_bytes",
			Help: "number of key and value bytes passed to put calls",
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		reg.Register(meterDB.calls),
		reg.Register(meterDB.duration),
		reg.Register(meterDB.size),
	)
	return meterDB, errs.Err
}

func (db *Database) observe(labels prometheus.Labels, start time.Time) {
	db.calls.With(labels).Inc()
	db.duration.With(labels).Add(float64(time.Since(start)))
}

func (db *Database) Has(key []byte) (bool, error) {
	defer db.observe(hasLabel, time.Now())
	return db.db.Has(key)
}

func (db *Database) Get(key []byte) ([]byte, error) {
	defer db.observe(getLabel, time.Now())
	return db.db.Get(key)
}

func (db *Database) Put(key, value []byte) error {
	defer db.observe(putLabel, time.Now())
	db.size.Add(float64(len(key) + len(value)))
	return db.db.Put(key, value)
}

func (db *Database) Delete(key []byte) error {
	defer db.observe(deleteLabel, time.Now())
	return db.db.Delete(key)
}

func (db *Database) NewBatch() database.Batch {
	return &batch{
		Batch: db.db.NewBatch(),
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
	defer db.observe(newIteratorLabel, time.Now())
	return db.db.NewIteratorWithStartAndPrefix(start, prefix)
}

func (db *Database) Compact(start, limit []byte) error {
	defer db.observe(compactLabel, time.Now())
	return db.db.Compact(start, limit)
}

func (db *Database) Close() error {
	defer db.observe(closeLabel, time.Now())
	return db.db.Close()
}

func (db *Database) HealthCheck(ctx context.Context) (interface{}, error) {
	return db.db.HealthCheck(ctx)
}

type batch struct {
	database.Batch

	db *Database
}

func (b *batch) Write() error {
	defer b.db.observe(batchWriteLabel, time.Now())
	return b.Batch.Write()
}

func (b *batch) Inner() database.Batch {
	return b.Batch
}
