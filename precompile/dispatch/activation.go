// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dispatch

import (
	"errors"
	"fmt"

	"github.com/ava-labs/assetregistry/database"
	"github.com/ava-labs/assetregistry/evolution"
)

const (
	timestampLen  = database.Uint64Size
	activationLen = timestampLen + 1
)

var errInvalidActivation = errors.New("invalid activation record")

// activation is the last upgrade applied to a precompile.
type activation struct {
	Timestamp uint64
	Enabled   bool
}

func getActivation(db database.KeyValueReader, configKey string) (activation, bool, error) {
	b, err := db.Get(evolution.ActivationKey(configKey))
	switch {
	case errors.Is(err, database.ErrNotFound):
		return activation{}, false, nil
	case err != nil:
		return activation{}, false, err
	case len(b) != activationLen:
		return activation{}, false, fmt.Errorf("%w: %s has %d bytes", errInvalidActivation, configKey, len(b))
	}

	timestamp, err := database.ParseUInt64(b[:timestampLen])
	if err != nil {
		return activation{}, false, err
	}
	return activation{
		Timestamp: timestamp,
		Enabled:   b[timestampLen] == 1,
	}, true, nil
}

func putActivation(db database.KeyValueWriter, configKey string, a activation) error {
	var enabled byte
	if a.Enabled {
		enabled = 1
	}
	b := append(database.PackUInt64(a.Timestamp), enabled)
	return db.Put(evolution.ActivationKey(configKey), b)
}

// IsActivated returns true if the precompile configured under [configKey]
// is currently enabled in [db].
func IsActivated(db database.KeyValueReader, configKey string) (bool, error) {
	a, ok, err := getActivation(db, configKey)
	return ok && a.Enabled, err
}
