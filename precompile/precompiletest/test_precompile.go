// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package precompiletest

import (
	"math/big"
	"testing"

	"github.com/ava-labs/libevm/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/assetregistry/core/state"
	"github.com/ava-labs/assetregistry/database/memdb"
	"github.com/ava-labs/assetregistry/precompile/contract"
	"github.com/ava-labs/assetregistry/precompile/modules"
	"github.com/ava-labs/assetregistry/precompile/precompileconfig"
)

// PrecompileTest is a test case for a precompile
type PrecompileTest struct {
	// Caller is the address of the precompile caller
	Caller common.Address
	// Address is the address the precompile is called at. If unset, the
	// module's address is used.
	Address common.Address
	// Input the raw input bytes to the precompile
	Input []byte
	// InputFn is a function that returns the raw input bytes to the precompile
	// If specified, Input will be ignored.
	InputFn func(t testing.TB) []byte
	// SuppliedGas is the amount of gas supplied to the precompile
	SuppliedGas uint64
	// ReadOnly is whether the precompile should be called in read only
	// mode. If true, the precompile should not modify the state.
	ReadOnly bool
	// Value is attached to the call.
	Value *uint256.Int
	// Config is the config to use for the precompile
	// It should be the same precompile config that is used in the
	// precompile's configurator.
	// If nil, Configure will not be called.
	Config precompileconfig.Config
	// BeforeHook is called before the precompile is called.
	BeforeHook func(t testing.TB, state contract.StateDB)
	// AfterHook is called after the precompile is called.
	AfterHook func(t testing.TB, state contract.StateDB)
	// ExpectedRes is the expected raw byte result returned by the precompile
	ExpectedRes []byte
	// ExpectedErr is the expected error returned by the precompile
	ExpectedErr error
	// ExpectedRevert is the expected revert reason. If set, ExpectedRes is
	// ignored.
	ExpectedRevert string
	// ExpectedRemainingGas is the gas expected to be left after the call
	ExpectedRemainingGas uint64
	// BlockNumber is the block number to use for the precompile's block context
	BlockNumber int64
	// Timestamp is the timestamp to use for the precompile's block context
	Timestamp uint64
}

// RunPrecompileTests runs every test against a fresh state.
func RunPrecompileTests(t *testing.T, module modules.Module, tests map[string]PrecompileTest) {
	t.Helper()

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			test.Run(t, module, state.New(memdb.New()))
		})
	}
}

func (test PrecompileTest) Run(t testing.TB, module modules.Module, state contract.StateDB) {
	t.Helper()
	require := require.New(t)

	contractAddress := module.Address
	if test.Address != (common.Address{}) {
		contractAddress = test.Address
	}

	if test.BeforeHook != nil {
		test.BeforeHook(t, state)
	}

	ctrl := gomock.NewController(t)
	blockContext := contract.NewMockBlockContext(ctrl)
	blockContext.EXPECT().Number().Return(big.NewInt(test.BlockNumber)).AnyTimes()
	blockContext.EXPECT().Timestamp().Return(test.Timestamp).AnyTimes()
	accessibleState := contract.NewMockAccessibleState(ctrl)
	accessibleState.EXPECT().GetStateDB().Return(state).AnyTimes()
	accessibleState.EXPECT().GetBlockContext().Return(blockContext).AnyTimes()

	if test.Config != nil {
		require.NoError(module.Configure(test.Config, state, blockContext))
	}

	input := test.Input
	if test.InputFn != nil {
		input = test.InputFn(t)
	}

	if input != nil {
		ret, remainingGas, err := module.Contract.Run(accessibleState, test.Caller, contractAddress, input, test.SuppliedGas, test.ReadOnly, test.Value)
		require.ErrorIs(err, test.ExpectedErr)
		require.Equal(test.ExpectedRemainingGas, remainingGas)
		if test.ExpectedRevert != "" {
			reason, err := contract.UnpackRevert(ret)
			require.NoError(err)
			require.Equal(test.ExpectedRevert, reason)
		} else {
			require.Equal(test.ExpectedRes, ret)
		}
	}

	if test.AfterHook != nil {
		test.AfterHook(t, state)
	}
}
