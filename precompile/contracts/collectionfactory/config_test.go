// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collectionfactory

import (
	"encoding/json"
	"testing"

	"github.com/ava-labs/libevm/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/assetregistry/core/state"
	"github.com/ava-labs/assetregistry/database/memdb"
	"github.com/ava-labs/assetregistry/evolution"
	"github.com/ava-labs/assetregistry/precompile/contract"
	"github.com/ava-labs/assetregistry/precompile/precompileconfig"
	"github.com/ava-labs/assetregistry/precompile/precompiletest"
)

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func TestVerify(t *testing.T) {
	tests := map[string]precompiletest.ConfigVerifyTest{
		"no initial collections": {
			Config: NewConfig(uint64Ptr(3), nil),
		},
		"valid initial collections": {
			Config: NewConfig(uint64Ptr(3), []common.Address{ownerAddr, callerAddr}),
		},
		"zero owner": {
			Config:      NewConfig(uint64Ptr(3), []common.Address{ownerAddr, {}}),
			ExpectedErr: ErrZeroOwner,
		},
	}
	precompiletest.RunVerifyTests(t, tests)
}

func TestEqual(t *testing.T) {
	tests := map[string]precompiletest.ConfigEqualTest{
		"non-nil config and nil other": {
			Config:   NewConfig(uint64Ptr(3), nil),
			Other:    nil,
			Expected: false,
		},
		"different type": {
			Config:   NewConfig(uint64Ptr(3), nil),
			Other:    precompileconfig.NewMockConfig(gomock.NewController(t)),
			Expected: false,
		},
		"different timestamp": {
			Config:   NewConfig(uint64Ptr(3), nil),
			Other:    NewConfig(uint64Ptr(4), nil),
			Expected: false,
		},
		"different initial collections": {
			Config:   NewConfig(uint64Ptr(3), []common.Address{ownerAddr, callerAddr}),
			Other:    NewConfig(uint64Ptr(3), []common.Address{callerAddr, ownerAddr}),
			Expected: false,
		},
		"disable": {
			Config:   NewDisableConfig(uint64Ptr(3)),
			Other:    NewConfig(uint64Ptr(3), nil),
			Expected: false,
		},
		"same config": {
			Config:   NewConfig(uint64Ptr(3), []common.Address{ownerAddr}),
			Other:    NewConfig(uint64Ptr(3), []common.Address{ownerAddr}),
			Expected: true,
		},
	}
	precompiletest.RunEqualTests(t, tests)
}

func TestConfigJSON(t *testing.T) {
	require := require.New(t)

	config := Module.MakeConfig()
	require.NoError(json.Unmarshal(
		[]byte(`{"blockTimestamp":5,"initialCollections":["0x8db97C7cEcE249c2b98bDC0226Cc4C2A57BF52FC"]}`),
		config,
	))
	require.True(config.Equal(NewConfig(uint64Ptr(5), []common.Address{ownerAddr})))
	require.Equal(ConfigKey, config.Key())
}

func TestConfigure(t *testing.T) {
	require := require.New(t)

	stateDB := state.New(memdb.New())
	config := NewConfig(uint64Ptr(0), []common.Address{ownerAddr, callerAddr})
	ctrl := gomock.NewController(t)
	require.NoError(Module.Configure(config, stateDB, contract.NewMockBlockContext(ctrl)))

	for id, expected := range config.InitialCollections {
		owner, ok, err := evolution.CollectionOwner(stateDB, uint64(id))
		require.NoError(err)
		require.True(ok)
		require.Equal(expected, owner)
	}

	err := Module.Configure(precompileconfig.NewMockConfig(ctrl), stateDB, nil)
	require.ErrorContains(err, "incorrect config")
}
