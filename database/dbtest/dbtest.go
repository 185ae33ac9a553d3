// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dbtest is the conformance suite every database.Database
// implementation in this module runs.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/assetregistry/database"
)

// Tests is a list of all database tests
var Tests = map[string]func(t *testing.T, db database.Database){
	"SimpleKeyValue":       TestSimpleKeyValue,
	"KeyEmptyValue":        TestKeyEmptyValue,
	"SimpleKeyValueClosed": TestSimpleKeyValueClosed,
	"MemorySafetyDatabase": TestMemorySafetyDatabase,
	"BatchPut":             TestBatchPut,
	"BatchDelete":          TestBatchDelete,
	"BatchReset":           TestBatchReset,
	"BatchRewrite":         TestBatchRewrite,
	"BatchReplay":          TestBatchReplay,
	"BatchInner":           TestBatchInner,
	"Iterator":             TestIterator,
	"IteratorStart":        TestIteratorStart,
	"IteratorPrefix":       TestIteratorPrefix,
	"IteratorStartPrefix":  TestIteratorStartPrefix,
	"IteratorMemorySafety": TestIteratorMemorySafety,
	"IteratorClosed":       TestIteratorClosed,
	"CompactNoPanic":       TestCompactNoPanic,
	"HelpersRoundTrip":     TestHelpersRoundTrip,
}

// TestSimpleKeyValue tests to make sure that simple Put + Get + Delete + Has
// calls return the expected values.
func TestSimpleKeyValue(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Delete(key))
	require.NoError(db.Put(key, value))

	has, err = db.Has(key)
	require.NoError(err)
	require.True(has)

	v, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, v)

	require.NoError(db.Delete(key))

	has, err = db.Has(key)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Delete(key))
}

func TestKeyEmptyValue(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	val := []byte(nil)

	_, err := db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Put(key, val))

	has, err := db.Has(key)
	require.NoError(err)
	require.True(has)

	value, err := db.Get(key)
	require.NoError(err)
	require.Empty(value)
}

// TestSimpleKeyValueClosed tests to make sure that Put + Get + Delete + Has
// calls return the correct error when the database has been closed.
func TestSimpleKeyValueClosed(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	require.NoError(db.Put(key, value))
	require.NoError(db.Close())

	_, err := db.Has(key)
	require.ErrorIs(err, database.ErrClosed)

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrClosed)

	require.ErrorIs(db.Put(key, value), database.ErrClosed)
	require.ErrorIs(db.Delete(key), database.ErrClosed)
	require.ErrorIs(db.Close(), database.ErrClosed)
}

// TestMemorySafetyDatabase ensures it is safe to modify a key after passing it
// to Database.Put and Database.Get.
func TestMemorySafetyDatabase(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("1key")
	value := []byte("value")
	require.NoError(db.Put(key, value))

	key[0] = '2'
	value[0] = 'V'

	got, err := db.Get([]byte("1key"))
	require.NoError(err)
	require.Equal([]byte("value"), got)

	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)

	got[0] = 'X'
	got, err = db.Get([]byte("1key"))
	require.NoError(err)
	require.Equal([]byte("value"), got)
}

// TestBatchPut tests to make sure that batched writes work as expected.
func TestBatchPut(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	batch := db.NewBatch()
	require.NotNil(batch)

	require.NoError(batch.Put(key, value))
	require.Positive(batch.Size())

	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)

	require.NoError(batch.Write())

	v, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, v)

	require.NoError(db.Close())

	batch = db.NewBatch()
	require.NoError(batch.Put(key, value))
	require.ErrorIs(batch.Write(), database.ErrClosed)
}

// TestBatchDelete tests to make sure that batched deletes work as expected.
func TestBatchDelete(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	require.NoError(db.Put(key, value))

	batch := db.NewBatch()
	require.NoError(batch.Delete(key))
	require.NoError(batch.Write())

	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Delete(key))
}

// TestBatchReset tests to make sure that a batch drops un-written operations
// when it is reset.
func TestBatchReset(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	require.NoError(db.Put(key, value))

	batch := db.NewBatch()
	require.NoError(batch.Delete(key))

	batch.Reset()
	require.Zero(batch.Size())
	require.NoError(batch.Write())

	v, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, v)
}

// TestBatchRewrite tests to make sure that write can be called multiple times
// on a batch and the values will be updated correctly.
func TestBatchRewrite(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello1")
	value := []byte("world1")

	batch := db.NewBatch()
	require.NoError(batch.Put(key, value))
	require.NoError(batch.Write())
	require.NoError(db.Delete(key))

	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)

	require.NoError(batch.Write())

	v, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, v)
}

// TestBatchReplay tests to make sure that batches will correctly replay their
// contents.
func TestBatchReplay(t *testing.T, db database.Database) {
	require := require.New(t)

	key1 := []byte("hello1")
	value1 := []byte("world1")
	key2 := []byte("hello2")
	value2 := []byte("world2")

	batch := db.NewBatch()
	require.NoError(batch.Put(key1, value1))
	require.NoError(batch.Put(key2, value2))
	require.NoError(batch.Delete(key1))

	replayed := db.NewBatch()
	require.NoError(batch.Replay(replayed))
	require.NoError(replayed.Write())

	has, err := db.Has(key1)
	require.NoError(err)
	require.False(has)

	v, err := db.Get(key2)
	require.NoError(err)
	require.Equal(value2, v)

	require.NoError(db.Close())
	require.ErrorIs(batch.Replay(db), database.ErrClosed)
}

// TestBatchInner tests to make sure that inner can be used to write to the
// database.
func TestBatchInner(t *testing.T, db database.Database) {
	require := require.New(t)

	key1 := []byte("hello1")
	value1 := []byte("world1")
	key2 := []byte("hello2")
	value2 := []byte("world2")

	firstBatch := db.NewBatch()
	require.NoError(firstBatch.Put(key1, value1))

	secondBatch := db.NewBatch()
	require.NoError(secondBatch.Put(key2, value2))

	innerFirstBatch := firstBatch.Inner()
	innerSecondBatch := secondBatch.Inner()
	require.NoError(innerFirstBatch.Replay(innerSecondBatch))
	require.NoError(innerSecondBatch.Write())

	for key, value := range map[string][]byte{
		string(key1): value1,
		string(key2): value2,
	} {
		v, err := db.Get([]byte(key))
		require.NoError(err)
		require.Equal(value, v)
	}
}

func putAll(t *testing.T, db database.KeyValueWriter, pairs [][2]string) {
	for _, pair := range pairs {
		require.NoError(t, db.Put([]byte(pair[0]), []byte(pair[1])))
	}
}

func requireIterates(t *testing.T, it database.Iterator, expected [][2]string) {
	t.Helper()
	require := require.New(t)

	defer it.Release()
	for _, pair := range expected {
		require.True(it.Next())
		require.Equal([]byte(pair[0]), it.Key())
		require.Equal([]byte(pair[1]), it.Value())
	}
	require.False(it.Next())
	require.Nil(it.Key())
	require.Nil(it.Value())
	require.NoError(it.Error())
}

// TestIterator tests to make sure the database iterates over the database
// contents lexicographically.
func TestIterator(t *testing.T, db database.Database) {
	pairs := [][2]string{{"hello1", "world1"}, {"hello2", "world2"}}
	putAll(t, db, [][2]string{pairs[1], pairs[0]})

	requireIterates(t, db.NewIterator(), pairs)
}

// TestIteratorStart tests to make sure the the iterator can be configured to
// start mid way through the database.
func TestIteratorStart(t *testing.T, db database.Database) {
	putAll(t, db, [][2]string{{"hello1", "world1"}, {"hello2", "world2"}})

	requireIterates(t, db.NewIteratorWithStart([]byte("hello2")), [][2]string{{"hello2", "world2"}})
}

// TestIteratorPrefix tests to make sure the iterator can be configured to skip
// keys missing the provided prefix.
func TestIteratorPrefix(t *testing.T, db database.Database) {
	putAll(t, db, [][2]string{{"hello", "world1"}, {"goodbye", "world2"}, {"joy", "world3"}})

	requireIterates(t, db.NewIteratorWithPrefix([]byte("h")), [][2]string{{"hello", "world1"}})
}

// TestIteratorStartPrefix tests to make sure that the iterator can start mid
// way through the database while skipping a prefix.
func TestIteratorStartPrefix(t *testing.T, db database.Database) {
	putAll(t, db, [][2]string{{"hello1", "world1"}, {"z", "world2"}, {"hello3", "world3"}})

	requireIterates(
		t,
		db.NewIteratorWithStartAndPrefix([]byte("hello1"), []byte("h")),
		[][2]string{{"hello1", "world1"}, {"hello3", "world3"}},
	)
}

// TestIteratorMemorySafety tests to make sure that keys and values returned
// from the iterator can be modified without changing the database.
func TestIteratorMemorySafety(t *testing.T, db database.Database) {
	require := require.New(t)

	putAll(t, db, [][2]string{{"hello1", "world1"}, {"hello2", "world2"}})

	it := db.NewIterator()
	keys := [][]byte{}
	values := [][]byte{}
	for it.Next() {
		keys = append(keys, it.Key())
		values = append(values, it.Value())
	}
	require.NoError(it.Error())
	it.Release()

	for i := range keys {
		keys[i][0] = 'x'
		values[i][0] = 'x'
	}

	v, err := db.Get([]byte("hello1"))
	require.NoError(err)
	require.Equal([]byte("world1"), v)
}

// TestIteratorClosed tests to make sure that an iterator that was created with
// a closed database will report a closed error correctly.
func TestIteratorClosed(t *testing.T, db database.Database) {
	require := require.New(t)

	putAll(t, db, [][2]string{{"hello1", "world1"}})

	live := db.NewIterator()
	require.NoError(db.Close())

	require.False(live.Next())
	require.Nil(live.Key())
	require.Nil(live.Value())
	require.ErrorIs(live.Error(), database.ErrClosed)
	live.Release()

	closed := db.NewIterator()
	require.False(closed.Next())
	require.ErrorIs(closed.Error(), database.ErrClosed)
	closed.Release()
}

func TestCompactNoPanic(t *testing.T, db database.Database) {
	require := require.New(t)

	putAll(t, db, [][2]string{{"hello1", "world1"}, {"hello2", "world2"}, {"z", "world3"}})

	require.NoError(db.Compact(nil, nil))
	require.NoError(db.Close())
	require.ErrorIs(db.Compact(nil, nil), database.ErrClosed)
}

func TestHelpersRoundTrip(t *testing.T, db database.Database) {
	require := require.New(t)

	require.NoError(database.PutUInt64(db, []byte("counter"), 42))
	got, err := database.GetUInt64(db, []byte("counter"))
	require.NoError(err)
	require.Equal(uint64(42), got)

	require.NoError(database.PutBool(db, []byte("flag"), true))
	flag, err := database.GetBool(db, []byte("flag"))
	require.NoError(err)
	require.True(flag)

	missing, err := database.WithDefault(database.GetUInt64, db, []byte("missing"), 7)
	require.NoError(err)
	require.Equal(uint64(7), missing)

	require.NoError(db.Put([]byte("short"), []byte{1, 2}))
	_, err = database.GetUInt64(db, []byte("short"))
	require.Error(err)

	count, err := database.Count(db, nil)
	require.NoError(err)
	require.Equal(3, count)
}
