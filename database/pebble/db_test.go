// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/assetregistry/database"
	"github.com/ava-labs/assetregistry/database/dbtest"
	"github.com/ava-labs/assetregistry/utils/logging"
)

func newDB(t testing.TB) database.Database {
	db, err := New(t.TempDir(), nil, logging.NoLog{})
	require.NoError(t, err)
	return db
}

func TestInterface(t *testing.T) {
	for name, test := range dbtest.Tests {
		t.Run(name, func(t *testing.T) {
			db := newDB(t)
			test(t, db)
			_ = db.Close()
		})
	}
}

func TestKeyRange(t *testing.T) {
	tests := []struct {
		name          string
		prefix        []byte
		expectedLower []byte
		expectedUpper []byte
	}{
		{
			name: "nil",
		},
		{
			name:          "simple",
			prefix:        []byte{0x03, 0x01},
			expectedLower: []byte{0x03, 0x01},
			expectedUpper: []byte{0x03, 0x02},
		},
		{
			name:          "trailing 0xff",
			prefix:        []byte{0x03, 0xff},
			expectedLower: []byte{0x03, 0xff},
			expectedUpper: []byte{0x04},
		},
		{
			name:          "all 0xff",
			prefix:        []byte{0xff, 0xff},
			expectedLower: []byte{0xff, 0xff},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			opts := keyRange(test.prefix)
			require.Equal(test.expectedLower, opts.LowerBound)
			require.Equal(test.expectedUpper, opts.UpperBound)
		})
	}
}

func TestConfigParsing(t *testing.T) {
	require := require.New(t)

	_, err := New(t.TempDir(), []byte("{"), logging.NoLog{})
	require.ErrorContains(err, "failed to parse pebble config")

	db, err := New(t.TempDir(), []byte(`{"cacheSize": 1048576}`), logging.NoLog{})
	require.NoError(err)
	require.NoError(db.Close())
}
