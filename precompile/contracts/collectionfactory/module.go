// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collectionfactory

import (
	"fmt"

	"github.com/ava-labs/libevm/common"

	"github.com/ava-labs/assetregistry/evolution"
	"github.com/ava-labs/assetregistry/precompile/contract"
	"github.com/ava-labs/assetregistry/precompile/modules"
	"github.com/ava-labs/assetregistry/precompile/precompileconfig"
)

var _ contract.Configurator = (*configurator)(nil)

// ConfigKey is the key used in json config files to specify this precompile config.
// must be unique across all precompiles.
const ConfigKey = "collectionFactoryConfig"

var ContractAddress = common.HexToAddress("0x0000000000000000000000000000000000000403")

var Module = modules.Module{
	ConfigKey:    ConfigKey,
	Address:      ContractAddress,
	Contract:     CollectionFactoryPrecompile,
	ABI:          &CollectionFactoryABI,
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

// Configure creates the initial collections of [cfg] in [state].
func (*configurator) Configure(cfg precompileconfig.Config, state contract.StateDB, _ contract.BlockContext) error {
	config, ok := cfg.(*Config)
	if !ok {
		return fmt.Errorf("incorrect config %T: %v", cfg, cfg)
	}
	for _, owner := range config.InitialCollections {
		if _, err := evolution.CreateCollection(state, owner); err != nil {
			return fmt.Errorf("cannot create initial collection for %s: %w", owner, err)
		}
	}
	return nil
}
