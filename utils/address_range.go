// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"bytes"

	"github.com/ava-labs/libevm/common"
)

// AddressRange represents a continuous range of addresses
type AddressRange struct {
	Start common.Address
	End   common.Address
}

// NewPrefixRange returns the range of every address that starts with
// [prefix]. [prefix] must not be longer than an address.
func NewPrefixRange(prefix []byte) AddressRange {
	var r AddressRange
	copy(r.Start[:], prefix)
	copy(r.End[:], prefix)
	for i := len(prefix); i < common.AddressLength; i++ {
		r.End[i] = 0xff
	}
	return r
}

// Contains returns true iff [addr] is contained within the (inclusive)
// range of addresses defined by [a].
func (a *AddressRange) Contains(addr common.Address) bool {
	addrBytes := addr.Bytes()
	return bytes.Compare(addrBytes, a.Start[:]) >= 0 && bytes.Compare(addrBytes, a.End[:]) <= 0
}

// Overlaps returns true iff [a] and [other] share at least one address.
func (a *AddressRange) Overlaps(other AddressRange) bool {
	return bytes.Compare(a.Start[:], other.End[:]) <= 0 && bytes.Compare(other.Start[:], a.End[:]) <= 0
}
