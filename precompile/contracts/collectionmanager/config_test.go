// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collectionmanager

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/assetregistry/evolution"
	"github.com/ava-labs/assetregistry/precompile/modules"
	"github.com/ava-labs/assetregistry/precompile/precompileconfig"
	"github.com/ava-labs/assetregistry/precompile/precompiletest"
)

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func TestVerify(t *testing.T) {
	tests := map[string]precompiletest.ConfigVerifyTest{
		"enable": {
			Config: NewConfig(uint64Ptr(3)),
		},
		"disable": {
			Config: NewDisableConfig(uint64Ptr(3)),
		},
	}
	precompiletest.RunVerifyTests(t, tests)
}

func TestEqual(t *testing.T) {
	tests := map[string]precompiletest.ConfigEqualTest{
		"non-nil config and nil other": {
			Config:   NewConfig(uint64Ptr(3)),
			Other:    nil,
			Expected: false,
		},
		"different type": {
			Config:   NewConfig(uint64Ptr(3)),
			Other:    precompileconfig.NewMockConfig(gomock.NewController(t)),
			Expected: false,
		},
		"different timestamp": {
			Config:   NewConfig(uint64Ptr(3)),
			Other:    NewConfig(uint64Ptr(4)),
			Expected: false,
		},
		"same config": {
			Config:   NewConfig(uint64Ptr(3)),
			Other:    NewConfig(uint64Ptr(3)),
			Expected: true,
		},
	}
	precompiletest.RunEqualTests(t, tests)
}

func TestConfigJSON(t *testing.T) {
	require := require.New(t)

	config := Module.MakeConfig()
	require.NoError(json.Unmarshal([]byte(`{"blockTimestamp":5}`), config))
	require.True(config.Equal(NewConfig(uint64Ptr(5))))
	require.False(config.IsDisabled())
}

func TestModuleServesEveryCollection(t *testing.T) {
	require := require.New(t)

	for _, id := range []uint64{0, 1, 1 << 40, ^uint64(0)} {
		module, ok := modules.GetPrecompileModuleByAddress(evolution.CollectionAddress(id))
		require.True(ok)
		require.Equal(ConfigKey, module.ConfigKey)
	}
}
