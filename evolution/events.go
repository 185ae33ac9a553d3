// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evolution

import (
	"github.com/ava-labs/libevm/common"
	"github.com/holiman/uint256"
)

// Each successful mutation returns one of the following events.

type CollectionCreated struct {
	CollectionID uint64
	Owner        common.Address
	Collection   common.Address
}

type TokenMinted struct {
	CollectionID uint64
	Slot         *uint256.Int
	To           common.Address
	TokenID      TokenID
	URI          string
}

type TokenEvolved struct {
	CollectionID uint64
	TokenID      TokenID
	URI          string
}

type OwnershipTransferred struct {
	CollectionID uint64
	From         common.Address
	To           common.Address
}

type PublicMintingToggled struct {
	CollectionID uint64
	Enabled      bool
}
