// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collectionfactory

import (
	"errors"
	"fmt"

	"github.com/ava-labs/libevm/common"

	"github.com/ava-labs/assetregistry/precompile/precompileconfig"
)

var (
	_ precompileconfig.Config = (*Config)(nil)

	ErrZeroOwner = errors.New("initial collection owner cannot be the zero address")
)

// Config implements the precompileconfig.Config interface and adds the
// collections created when the factory activates.
type Config struct {
	precompileconfig.Upgrade
	// InitialCollections are the owners of the collections created, in
	// order, on activation.
	InitialCollections []common.Address `json:"initialCollections,omitempty"`
}

// NewConfig returns a config for a network upgrade at [blockTimestamp] that
// enables the collection factory.
func NewConfig(blockTimestamp *uint64, initialCollections []common.Address) *Config {
	return &Config{
		Upgrade:            precompileconfig.Upgrade{BlockTimestamp: blockTimestamp},
		InitialCollections: initialCollections,
	}
}

// NewDisableConfig returns config for a network upgrade at [blockTimestamp]
// that disables the collection factory.
func NewDisableConfig(blockTimestamp *uint64) *Config {
	return &Config{
		Upgrade: precompileconfig.Upgrade{
			BlockTimestamp: blockTimestamp,
			Disable:        true,
		},
	}
}

// Key returns the key for the collection factory precompile config.
func (*Config) Key() string {
	return ConfigKey
}

func (c *Config) Verify() error {
	for i, owner := range c.InitialCollections {
		if owner == (common.Address{}) {
			return fmt.Errorf("%w: collection %d", ErrZeroOwner, i)
		}
	}
	return nil
}

// Equal returns true if [cfg] is a [*Config] and it has been configured
// identically to [c].
func (c *Config) Equal(cfg precompileconfig.Config) bool {
	other, ok := cfg.(*Config)
	if !ok {
		return false
	}
	if !c.Upgrade.Equal(&other.Upgrade) || len(c.InitialCollections) != len(other.InitialCollections) {
		return false
	}
	for i, owner := range c.InitialCollections {
		if owner != other.InitialCollections[i] {
			return false
		}
	}
	return true
}
