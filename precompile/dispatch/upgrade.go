// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dispatch

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ava-labs/assetregistry/precompile/modules"
	"github.com/ava-labs/assetregistry/precompile/precompileconfig"
)

var (
	errMultipleKeys     = errors.New("PrecompileUpgrade must have exactly one key")
	errUnknownKey       = errors.New("unknown precompile config key")
	errNilTimestamp     = errors.New("config block timestamp cannot be nil")
	errTimestampOrder   = errors.New("config block timestamp <= previous timestamp of same key")
	errUnexpectedToggle = errors.New("unexpected disable flag")
)

// PrecompileUpgrade is a helper struct embedded in UpgradeConfig.
// It is used to unmarshal the json into the correct precompile config type
// based on the key. Keys are defined in each precompile module, and registered
// in precompile/registry.
type PrecompileUpgrade struct {
	precompileconfig.Config
}

// UnmarshalJSON unmarshals the json into the correct precompile config type
// based on the key.
func (u *PrecompileUpgrade) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("%w, found %d", errMultipleKeys, len(raw))
	}
	for key, value := range raw {
		module, ok := modules.GetPrecompileModule(key)
		if !ok {
			return fmt.Errorf("%w: %s", errUnknownKey, key)
		}
		config := module.MakeConfig()
		if err := json.Unmarshal(value, config); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", key, err)
		}
		u.Config = config
	}
	return nil
}

// MarshalJSON marshal the precompile config into json based on the precompile key.
// Ex: {"collectionFactoryConfig": {"blockTimestamp":1}}
func (u *PrecompileUpgrade) MarshalJSON() ([]byte, error) {
	res := make(map[string]precompileconfig.Config)
	res[u.Key()] = u.Config
	return json.Marshal(res)
}

// UpgradeConfig lists the precompile upgrades in the order they take effect.
type UpgradeConfig struct {
	PrecompileUpgrades []PrecompileUpgrade `json:"precompileUpgrades,omitempty"`
}

// ParseUpgradeConfig parses and verifies [bytes].
func ParseUpgradeConfig(bytes []byte) (*UpgradeConfig, error) {
	config := &UpgradeConfig{}
	if err := json.Unmarshal(bytes, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal upgrade config: %w", err)
	}
	if err := config.Verify(); err != nil {
		return nil, err
	}
	return config, nil
}

// Verify checks each upgrade is valid and that the upgrades of every
// precompile alternate between enabling and disabling it at strictly
// increasing timestamps, starting with an enable.
func (c *UpgradeConfig) Verify() error {
	type lastUpgrade struct {
		timestamp uint64
		disabled  bool
	}
	previous := make(map[string]lastUpgrade)
	for i, upgrade := range c.PrecompileUpgrades {
		key := upgrade.Key()
		timestamp := upgrade.Timestamp()
		if timestamp == nil {
			return fmt.Errorf("%w: PrecompileUpgrade (%s) at [%d]", errNilTimestamp, key, i)
		}

		last, ok := previous[key]
		// The first upgrade of a key must enable it, after that upgrades alternate.
		expectDisabled := ok && !last.disabled
		if upgrade.IsDisabled() != expectDisabled {
			return fmt.Errorf("%w: PrecompileUpgrade (%s) at [%d]: disable should be [%v]", errUnexpectedToggle, key, i, expectDisabled)
		}
		if ok && *timestamp <= last.timestamp {
			return fmt.Errorf("%w: PrecompileUpgrade (%s) at [%d]: config block timestamp (%v) <= previous timestamp (%v)", errTimestampOrder, key, i, *timestamp, last.timestamp)
		}
		if err := upgrade.Verify(); err != nil {
			return fmt.Errorf("PrecompileUpgrade (%s) at [%d]: %w", key, i, err)
		}
		previous[key] = lastUpgrade{
			timestamp: *timestamp,
			disabled:  upgrade.IsDisabled(),
		}
	}
	return nil
}

// configs returns the upgrades of [key] in order.
func (c *UpgradeConfig) configs(key string) []precompileconfig.Config {
	var configs []precompileconfig.Config
	for _, upgrade := range c.PrecompileUpgrades {
		if upgrade.Key() == key {
			configs = append(configs, upgrade.Config)
		}
	}
	return configs
}
