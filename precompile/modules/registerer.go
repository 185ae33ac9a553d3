// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package modules

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ava-labs/libevm/common"
)

var (
	// registeredModules is a list of Module to preserve order
	// for deterministic iteration
	registeredModules = make([]Module, 0)

	errDuplicateKey     = errors.New("duplicate config key")
	errAddressCollision = errors.New("address collision")
	errMissingContract  = errors.New("missing contract")
)

// RegisterModule registers a stateful precompile module
func RegisterModule(stm Module) error {
	if stm.Contract == nil || stm.Configurator == nil {
		return fmt.Errorf("%w: %s", errMissingContract, stm.ConfigKey)
	}

	key := stm.ConfigKey
	newRange := stm.addressRange()
	for _, registeredModule := range registeredModules {
		if registeredModule.ConfigKey == key {
			return fmt.Errorf("%w: %s", errDuplicateKey, key)
		}
		registeredRange := registeredModule.addressRange()
		if registeredRange.Overlaps(newRange) {
			return fmt.Errorf("%w: %s overlaps %s", errAddressCollision, key, registeredModule.ConfigKey)
		}
	}
	// sort by address to ensure deterministic iteration
	registeredModules = insertSortedByAddress(registeredModules, stm)
	return nil
}

// GetPrecompileModuleByAddress returns the module that serves [address].
func GetPrecompileModuleByAddress(address common.Address) (Module, bool) {
	for _, stm := range registeredModules {
		if stm.Contains(address) {
			return stm, true
		}
	}
	return Module{}, false
}

func GetPrecompileModule(key string) (Module, bool) {
	for _, stm := range registeredModules {
		if stm.ConfigKey == key {
			return stm, true
		}
	}
	return Module{}, false
}

func RegisteredModules() []Module {
	return registeredModules
}

func insertSortedByAddress(data []Module, stm Module) []Module {
	data = append(data, stm)
	sort.Sort(moduleArray(data))
	return data
}
