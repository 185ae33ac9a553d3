// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package database

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	Uint64Size = 8 // bytes
	BoolSize   = 1 // bytes
	BoolFalse  = 0x00
	BoolTrue   = 0x01
)

var errWrongSize = errors.New("value has unexpected size")

// PutUInt64 stores [val] big endian so counters sort in numeric order.
func PutUInt64(db KeyValueWriter, key []byte, val uint64) error {
	return db.Put(key, PackUInt64(val))
}

func GetUInt64(db KeyValueReader, key []byte) (uint64, error) {
	b, err := db.Get(key)
	if err != nil {
		return 0, err
	}
	return ParseUInt64(b)
}

func PackUInt64(val uint64) []byte {
	return binary.BigEndian.AppendUint64(make([]byte, 0, Uint64Size), val)
}

func ParseUInt64(b []byte) (uint64, error) {
	if len(b) != Uint64Size {
		return 0, fmt.Errorf("%w: expected %d bytes but got %d", errWrongSize, Uint64Size, len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}

func PutBool(db KeyValueWriter, key []byte, b bool) error {
	v := byte(BoolFalse)
	if b {
		v = BoolTrue
	}
	return db.Put(key, []byte{v})
}

func GetBool(db KeyValueReader, key []byte) (bool, error) {
	b, err := db.Get(key)
	if err != nil {
		return false, err
	}
	if len(b) != BoolSize {
		return false, fmt.Errorf("%w: expected %d byte but got %d", errWrongSize, BoolSize, len(b))
	}
	switch b[0] {
	case BoolTrue:
		return true, nil
	case BoolFalse:
		return false, nil
	default:
		return false, fmt.Errorf("should be %d or %d but is %d", BoolFalse, BoolTrue, b[0])
	}
}

// WithDefault returns the value at [key] in [db]. If the key doesn't exist, it
// returns [def].
func WithDefault[V any](
	get func(KeyValueReader, []byte) (V, error),
	db KeyValueReader,
	key []byte,
	def V,
) (V, error) {
	v, err := get(db, key)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	return v, err
}

// Count returns the number of keys in [db] that start with [prefix].
func Count(db Iteratee, prefix []byte) (int, error) {
	it := db.NewIteratorWithPrefix(prefix)
	defer it.Release()

	count := 0
	for it.Next() {
		count++
	}
	return count, it.Error()
}
