// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evolution

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ava-labs/libevm/common"

	"github.com/ava-labs/assetregistry/utils"
)

const (
	AddressPrefixLen = 12
	collectionIDLen  = common.AddressLength - AddressPrefixLen
)

var (
	// AddressPrefix marks an address as a reference to a collection. The
	// remaining 8 bytes hold the big-endian collection id.
	AddressPrefix = [AddressPrefixLen]byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
	}

	// CollectionAddressRange contains every collection address.
	CollectionAddressRange = utils.NewPrefixRange(AddressPrefix[:])
)

// CollectionAddress returns the address of the collection with [id].
func CollectionAddress(id uint64) common.Address {
	var addr common.Address
	copy(addr[:AddressPrefixLen], AddressPrefix[:])
	binary.BigEndian.PutUint64(addr[AddressPrefixLen:], id)
	return addr
}

// CollectionIDFromAddress returns the id of the collection at [addr].
func CollectionIDFromAddress(addr common.Address) (uint64, error) {
	if !IsCollectionAddress(addr) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPrefix, addr)
	}
	return binary.BigEndian.Uint64(addr[AddressPrefixLen:]), nil
}

func IsCollectionAddress(addr common.Address) bool {
	return bytes.Equal(addr[:AddressPrefixLen], AddressPrefix[:])
}
