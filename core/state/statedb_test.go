// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/core/types"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/assetregistry/database"
	"github.com/ava-labs/assetregistry/database/memdb"
)

func TestRevertToSnapshot(t *testing.T) {
	require := require.New(t)

	base := memdb.New()
	require.NoError(base.Put([]byte("existing"), []byte("old")))

	s := New(base)
	require.NoError(s.Put([]byte("kept"), []byte("1")))
	s.AddLog(&types.Log{Topics: []common.Hash{{0x01}}})

	snapshot := s.Snapshot()
	require.NoError(s.Put([]byte("existing"), []byte("new")))
	require.NoError(s.Put([]byte("created"), []byte("2")))
	require.NoError(s.Delete([]byte("kept")))
	s.AddLog(&types.Log{Topics: []common.Hash{{0x02}}})
	require.Len(s.Logs(), 2)
	require.Equal(uint(1), s.Logs()[1].Index)

	s.RevertToSnapshot(snapshot)

	value, err := s.Get([]byte("existing"))
	require.NoError(err)
	require.Equal([]byte("old"), value)

	_, err = s.Get([]byte("created"))
	require.ErrorIs(err, database.ErrNotFound)

	value, err = s.Get([]byte("kept"))
	require.NoError(err)
	require.Equal([]byte("1"), value)

	topics, _ := s.GetLogData()
	require.Equal([][]common.Hash{{{0x01}}}, topics)
}

func TestNestedSnapshots(t *testing.T) {
	require := require.New(t)

	s := New(memdb.New())
	outer := s.Snapshot()
	require.NoError(s.Put([]byte("a"), []byte("1")))

	inner := s.Snapshot()
	require.NoError(s.Put([]byte("a"), []byte("2")))
	s.RevertToSnapshot(inner)

	value, err := s.Get([]byte("a"))
	require.NoError(err)
	require.Equal([]byte("1"), value)

	s.RevertToSnapshot(outer)
	has, err := s.Has([]byte("a"))
	require.NoError(err)
	require.False(has)

	require.Panics(func() {
		s.RevertToSnapshot(inner)
	})
}

func TestCommit(t *testing.T) {
	require := require.New(t)

	base := memdb.New()
	s := New(base)
	require.NoError(s.Put([]byte("key"), []byte("value")))
	require.Equal(1, s.Pending())

	has, err := base.Has([]byte("key"))
	require.NoError(err)
	require.False(has)

	require.NoError(s.Commit())
	require.Zero(s.Pending())

	value, err := base.Get([]byte("key"))
	require.NoError(err)
	require.Equal([]byte("value"), value)
}

func TestAbort(t *testing.T) {
	require := require.New(t)

	base := memdb.New()
	s := New(base)
	require.NoError(s.Put([]byte("key"), []byte("value")))
	s.AddLog(&types.Log{})
	s.Abort()

	require.Empty(s.Logs())
	has, err := s.Has([]byte("key"))
	require.NoError(err)
	require.False(has)
}

func TestIteratorSeesBufferedWrites(t *testing.T) {
	require := require.New(t)

	base := memdb.New()
	require.NoError(base.Put([]byte("p1"), []byte("a")))
	s := New(base)
	require.NoError(s.Put([]byte("p2"), []byte("b")))
	require.NoError(s.Put([]byte("q"), []byte("c")))

	it := s.NewIteratorWithPrefix([]byte("p"))
	defer it.Release()

	var keys []string
	for it.Next() {
		keys = append(keys, string(it.Key()))
	}
	require.NoError(it.Error())
	require.Equal([]string{"p1", "p2"}, keys)
}
