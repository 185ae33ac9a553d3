// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package modules

import (
	"bytes"

	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/common"

	"github.com/ava-labs/assetregistry/precompile/contract"
	"github.com/ava-labs/assetregistry/utils"
)

type Module struct {
	// ConfigKey is the key used in json config files to specify this precompile config.
	ConfigKey string
	// Address returns the address where the stateful precompile is accessible.
	Address common.Address
	// AddressRange, if set, makes the precompile accessible at every address
	// in the range in addition to [Address].
	AddressRange *utils.AddressRange
	// Contract returns a thread-safe singleton that can be used as the StatefulPrecompiledContract when
	// this config is enabled.
	Contract contract.StatefulPrecompiledContract
	// ABI describes the functions of [Contract], if it has one.
	ABI *abi.ABI
	// Configurator is used to configure the stateful precompile when the config is enabled.
	contract.Configurator
}

// Contains returns true if the precompile is accessible at [addr].
func (m Module) Contains(addr common.Address) bool {
	return m.Address == addr || (m.AddressRange != nil && m.AddressRange.Contains(addr))
}

func (m Module) addressRange() utils.AddressRange {
	if m.AddressRange != nil {
		return *m.AddressRange
	}
	return utils.AddressRange{Start: m.Address, End: m.Address}
}

type moduleArray []Module

func (u moduleArray) Len() int {
	return len(u)
}

func (u moduleArray) Swap(i, j int) {
	u[i], u[j] = u[j], u[i]
}

func (m moduleArray) Less(i, j int) bool {
	return bytes.Compare(m[i].Address.Bytes(), m[j].Address.Bytes()) < 0
}
