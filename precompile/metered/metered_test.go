// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metered

import (
	"math/big"
	"testing"

	"github.com/ava-labs/libevm/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/assetregistry/core/state"
	"github.com/ava-labs/assetregistry/database/memdb"
	"github.com/ava-labs/assetregistry/precompile/contract"
	"github.com/ava-labs/assetregistry/precompile/contracts/collectionfactory"
	"github.com/ava-labs/assetregistry/vmerrs"
)

var ownerAddr = common.HexToAddress("0x8db97C7cEcE249c2b98bDC0226Cc4C2A57BF52FC")

func newAccessibleState(t *testing.T) contract.AccessibleState {
	ctrl := gomock.NewController(t)
	blockContext := contract.NewMockBlockContext(ctrl)
	blockContext.EXPECT().Number().Return(big.NewInt(1)).AnyTimes()
	accessibleState := contract.NewMockAccessibleState(ctrl)
	accessibleState.EXPECT().GetStateDB().Return(state.New(memdb.New())).AnyTimes()
	accessibleState.EXPECT().GetBlockContext().Return(blockContext).AnyTimes()
	return accessibleState
}

func TestWrap(t *testing.T) {
	require := require.New(t)

	metrics, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(err)
	precompile := metrics.Wrap(
		collectionfactory.ConfigKey,
		&collectionfactory.CollectionFactoryABI,
		collectionfactory.CollectionFactoryPrecompile,
	)

	input, err := collectionfactory.PackCreateCollection(ownerAddr)
	require.NoError(err)
	accessibleState := newAccessibleState(t)
	gas := collectionfactory.CreateCollectionGasCost

	// success
	_, remainingGas, err := precompile.Run(accessibleState, ownerAddr, collectionfactory.ContractAddress, input, gas+10, false, nil)
	require.NoError(err)
	require.Equal(uint64(10), remainingGas)

	// revert
	_, _, err = precompile.Run(accessibleState, ownerAddr, collectionfactory.ContractAddress, input, gas, true, nil)
	require.ErrorIs(err, vmerrs.ErrExecutionReverted)

	// out of gas
	_, _, err = precompile.Run(accessibleState, ownerAddr, collectionfactory.ContractAddress, input, gas-1, false, nil)
	require.ErrorIs(err, vmerrs.ErrOutOfGas)

	// unknown selector
	_, _, err = precompile.Run(accessibleState, ownerAddr, collectionfactory.ContractAddress, []byte{1, 2, 3, 4}, gas, false, nil)
	require.ErrorIs(err, vmerrs.ErrExecutionReverted)

	create := prometheus.Labels{
		precompileLabel: collectionfactory.ConfigKey,
		methodLabel:     "createCollection",
	}
	unknown := prometheus.Labels{
		precompileLabel: collectionfactory.ConfigKey,
		methodLabel:     unknownMethod,
	}
	require.Equal(float64(3), testutil.ToFloat64(metrics.calls.With(create)))
	require.Equal(float64(1), testutil.ToFloat64(metrics.reverts.With(create)))
	require.Equal(float64(1), testutil.ToFloat64(metrics.outOfGas.With(create)))
	// The successful call used [gas] and the out of gas call all of gas-1.
	require.Equal(float64(2*gas-1), testutil.ToFloat64(metrics.gasUsed.With(create)))

	require.Equal(float64(1), testutil.ToFloat64(metrics.calls.With(unknown)))
	require.Equal(float64(1), testutil.ToFloat64(metrics.reverts.With(unknown)))
	require.Zero(testutil.ToFloat64(metrics.gasUsed.With(unknown)))
}

func TestNewMetricsDuplicateRegistration(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(err)
	_, err = NewMetrics(reg)
	require.Error(err)
}
