// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/assetregistry/database"
	"github.com/ava-labs/assetregistry/database/badgerdb"
	"github.com/ava-labs/assetregistry/database/leveldb"
	"github.com/ava-labs/assetregistry/database/memdb"
	"github.com/ava-labs/assetregistry/database/meterdb"
	"github.com/ava-labs/assetregistry/database/pebble"
	"github.com/ava-labs/assetregistry/database/versiondb"
	"github.com/ava-labs/assetregistry/utils/logging"
)

type DatabaseConfig struct {
	// If true, all writes are kept in memory and discarded on close.
	ReadOnly bool `json:"readOnly"`

	// Path to database
	Path string `json:"path"`

	// Name of the database type to use
	Name string `json:"name"`

	// Backend specific configuration
	Config []byte `json:"-"`
}

// New opens the database described by [dbConfig]. If [registerer] is non-nil
// the returned database records call metrics into it.
func New(
	dbConfig DatabaseConfig,
	log logging.Logger,
	registerer prometheus.Registerer,
) (database.Database, error) {
	var (
		db  database.Database
		err error
	)
	switch dbConfig.Name {
	case memdb.Name:
		db = memdb.New()
	case leveldb.Name:
		db, err = leveldb.New(dbConfig.Path, dbConfig.Config, log)
	case pebble.Name:
		db, err = pebble.New(dbConfig.Path, dbConfig.Config, log)
	case badgerdb.Name:
		db, err = badgerdb.New(dbConfig.Path, dbConfig.Config, log)
	default:
		return nil, fmt.Errorf(
			"db-type was %q but should have been one of {%s, %s, %s, %s}",
			dbConfig.Name,
			memdb.Name,
			leveldb.Name,
			pebble.Name,
			badgerdb.Name,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't create %s at %s: %w", dbConfig.Name, dbConfig.Path, err)
	}

	if dbConfig.ReadOnly && dbConfig.Name != memdb.Name {
		db = versiondb.New(db)
	}

	if registerer != nil {
		db, err = meterdb.New(registerer, db)
		if err != nil {
			return nil, fmt.Errorf("failed to create meterdb: %w", err)
		}
	}

	log.Info("opened database",
		zap.String("type", dbConfig.Name),
		zap.String("path", dbConfig.Path),
		zap.Bool("readOnly", dbConfig.ReadOnly),
	)
	return db, nil
}
