// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collectionmanager

import (
	"fmt"

	"github.com/ava-labs/assetregistry/evolution"
	"github.com/ava-labs/assetregistry/precompile/contract"
	"github.com/ava-labs/assetregistry/precompile/modules"
	"github.com/ava-labs/assetregistry/precompile/precompileconfig"
)

var _ contract.Configurator = (*configurator)(nil)

// ConfigKey is the key used in json config files to specify this precompile config.
// must be unique across all precompiles.
const ConfigKey = "collectionManagerConfig"

// Module serves every address in [evolution.CollectionAddressRange].
var Module = modules.Module{
	ConfigKey:    ConfigKey,
	Address:      evolution.CollectionAddressRange.Start,
	AddressRange: &evolution.CollectionAddressRange,
	Contract:     CollectionManagerPrecompile,
	ABI:          &CollectionManagerABI,
	Configurator: &configurator{},
}

type configurator struct{}

func init() {
	if err := modules.RegisterModule(Module); err != nil {
		panic(err)
	}
}

func (*configurator) MakeConfig() precompileconfig.Config {
	return new(Config)
}

// Configure is a no-op: collections only come into existence through the
// factory.
func (*configurator) Configure(cfg precompileconfig.Config, _ contract.StateDB, _ contract.BlockContext) error {
	if _, ok := cfg.(*Config); !ok {
		return fmt.Errorf("incorrect config %T: %v", cfg, cfg)
	}
	return nil
}
