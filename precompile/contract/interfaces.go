// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Defines the interface for the configuration and execution of a precompile contract
package contract

import (
	"math/big"

	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/core/types"
	"github.com/holiman/uint256"

	"github.com/ava-labs/assetregistry/database"
	"github.com/ava-labs/assetregistry/precompile/precompileconfig"
)

// StatefulPrecompiledContract is the interface for executing a precompiled contract
type StatefulPrecompiledContract interface {
	// Run executes the precompiled contract. [value] is the amount attached
	// to the call and may be nil.
	Run(
		accessibleState AccessibleState,
		caller common.Address,
		addr common.Address,
		input []byte,
		suppliedGas uint64,
		readOnly bool,
		value *uint256.Int,
	) (ret []byte, remainingGas uint64, err error)
}

// StateDB is the interface for accessing the registry state
type StateDB interface {
	database.KeyValueReaderWriterDeleter
	database.Iteratee

	AddLog(*types.Log)

	Snapshot() int
	RevertToSnapshot(int)
}

// AccessibleState defines the interface exposed to stateful precompile contracts
type AccessibleState interface {
	GetStateDB() StateDB
	GetBlockContext() BlockContext
}

// BlockContext defines an interface that provides information to a stateful precompile
// about the current block. The precompile can access this information to initialize
// its state.
type BlockContext interface {
	Number() *big.Int
	Timestamp() uint64
}

type Configurator interface {
	MakeConfig() precompileconfig.Config
	Configure(
		precompileconfig precompileconfig.Config,
		state StateDB,
		blockContext BlockContext,
	) error
}
