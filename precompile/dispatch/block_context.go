// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dispatch

import (
	"math/big"

	"github.com/ava-labs/assetregistry/precompile/contract"
)

var _ contract.BlockContext = (*blockContext)(nil)

type blockContext struct {
	number    *big.Int
	timestamp uint64
}

func NewBlockContext(number *big.Int, timestamp uint64) contract.BlockContext {
	return &blockContext{
		number:    number,
		timestamp: timestamp,
	}
}

func (bc *blockContext) Number() *big.Int  { return bc.number }
func (bc *blockContext) Timestamp() uint64 { return bc.timestamp }

type accessibleState struct {
	stateDB      contract.StateDB
	blockContext contract.BlockContext
}

func (a *accessibleState) GetStateDB() contract.StateDB {
	return a.stateDB
}

func (a *accessibleState) GetBlockContext() contract.BlockContext {
	return a.blockContext
}
