// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/crypto"

	"github.com/ava-labs/assetregistry/fees"
	"github.com/ava-labs/assetregistry/vmerrs"
)

// Gas costs for stateful precompiles
const (
	WriteGasCostPerSlot     = 20_000
	ReadGasCostPerSlot      = 5_000
	BandwidthGasCostPerByte = 16

	// Per LOG operation.
	LogGas uint64 = 375 // from params/protocol_params.go
	// Gas cost of single topic of the LOG. Should be multiplied by the number of topics.
	LogTopicGas uint64 = 375 // from params/protocol_params.go
	// Per byte cost in a LOG operation's data. Should be multiplied by the byte size of the data.
	LogDataGas uint64 = 8 // from params/protocol_params.go
)

var (
	functionSignatureRegex = regexp.MustCompile(`\w+\((\w*|(\w+,)+\w+)\)`)

	gasRates = fees.NewManager(fees.DefaultRates)
)

// CalculateFunctionSelector returns the 4 byte function selector that results from [functionSignature]
// Ex. the function setBalance(addr address, balance uint256) should be passed in as the string:
// "setBalance(address,uint256)"
func CalculateFunctionSelector(functionSignature string) []byte {
	if !functionSignatureRegex.MatchString(functionSignature) {
		panic(fmt.Errorf("invalid function signature: %q", functionSignature))
	}
	hash := crypto.Keccak256([]byte(functionSignature))
	return hash[:4]
}

// DeductGas checks if [suppliedGas] is sufficient against [requiredGas] and deducts [requiredGas] from [suppliedGas].
func DeductGas(suppliedGas uint64, requiredGas uint64) (uint64, error) {
	if suppliedGas < requiredGas {
		return 0, vmerrs.ErrOutOfGas
	}
	return suppliedGas - requiredGas, nil
}

// GasCost returns the gas charged for [units] of work.
func GasCost(units fees.Dimensions) (uint64, error) {
	gas, err := gasRates.CalculateFee(units)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", vmerrs.ErrGasUintOverflow, err)
	}
	return gas, nil
}

// MustGasCost is [GasCost] for static cost tables.
func MustGasCost(units fees.Dimensions) uint64 {
	gas, err := GasCost(units)
	if err != nil {
		panic(err)
	}
	return gas
}

// LogGasCost returns the gas charged for emitting a log with [numTopics]
// topics and [dataLen] bytes of data.
func LogGasCost(numTopics int, dataLen int) uint64 {
	return LogGas + LogTopicGas*uint64(numTopics) + LogDataGas*uint64(dataLen)
}

// PaddedLen returns the length of [n] bytes of dynamic ABI data once padded
// to a whole number of words.
func PaddedLen(n int) int {
	return (n + common.HashLength - 1) / common.HashLength * common.HashLength
}

// ParseABI parses the given ABI string and returns the parsed ABI.
// If the ABI is invalid, it panics.
func ParseABI(rawABI string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(rawABI))
	if err != nil {
		panic(err)
	}

	return parsed
}
