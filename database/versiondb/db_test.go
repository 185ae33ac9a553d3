// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package versiondb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/assetregistry/database"
	"github.com/ava-labs/assetregistry/database/dbtest"
	"github.com/ava-labs/assetregistry/database/memdb"
)

func TestInterface(t *testing.T) {
	for name, test := range dbtest.Tests {
		t.Run(name, func(t *testing.T) {
			test(t, New(memdb.New()))
		})
	}
}

func TestCommitAndAbort(t *testing.T) {
	require := require.New(t)

	base := memdb.New()
	db := New(base)

	require.NoError(db.Put([]byte("owner"), []byte("a")))
	require.Equal(1, db.Pending())

	has, err := base.Has([]byte("owner"))
	require.NoError(err)
	require.False(has)

	require.NoError(db.Commit())
	require.Zero(db.Pending())

	got, err := base.Get([]byte("owner"))
	require.NoError(err)
	require.Equal([]byte("a"), got)

	require.NoError(db.Delete([]byte("owner")))
	db.Abort()

	got, err = db.Get([]byte("owner"))
	require.NoError(err)
	require.Equal([]byte("a"), got)
}

func TestIteratorMergesPendingWrites(t *testing.T) {
	require := require.New(t)

	base := memdb.New()
	require.NoError(base.Put([]byte("a"), []byte("1")))
	require.NoError(base.Put([]byte("b"), []byte("2")))
	require.NoError(base.Put([]byte("d"), []byte("4")))

	db := New(base)
	require.NoError(db.Put([]byte("c"), []byte("3")))
	require.NoError(db.Put([]byte("b"), []byte("two")))
	require.NoError(db.Delete([]byte("d")))

	it := db.NewIterator()
	defer it.Release()

	expected := [][2]string{{"a", "1"}, {"b", "two"}, {"c", "3"}}
	for _, pair := range expected {
		require.True(it.Next())
		require.Equal([]byte(pair[0]), it.Key())
		require.Equal([]byte(pair[1]), it.Value())
	}
	require.False(it.Next())
	require.NoError(it.Error())

	count, err := database.Count(db, nil)
	require.NoError(err)
	require.Equal(3, count)
}
