// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collectionfactory

import (
	"fmt"
	"math/big"

	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/core/types"

	_ "embed"

	"github.com/ava-labs/assetregistry/evolution"
	"github.com/ava-labs/assetregistry/fees"
	"github.com/ava-labs/assetregistry/precompile/contract"
)

const (
	// NewCollectionEventGasCost is the cost of emitting NewCollection: one
	// indexed owner and the collection address as data.
	NewCollectionEventGasCost = contract.LogGas + contract.LogTopicGas*2 + contract.LogDataGas*common.HashLength
)

var (
	// CreateCollectionGasCost reads the counter, then writes the owner and
	// the incremented counter.
	CreateCollectionGasCost = contract.MustGasCost(fees.Dimensions{
		fees.Read:    1,
		fees.Write:   2,
		fees.Compute: NewCollectionEventGasCost,
	})

	// Singleton StatefulPrecompiledContract for creating collections.
	CollectionFactoryPrecompile contract.StatefulPrecompiledContract = createCollectionFactoryPrecompile()

	// CollectionFactoryRawABI contains the raw ABI of the CollectionFactory contract.
	//go:embed contract.abi
	CollectionFactoryRawABI string

	CollectionFactoryABI = contract.ParseABI(CollectionFactoryRawABI)
)

// PackCreateCollection packs [owner] into the appropriate arguments for
// createCollection. The packed bytes include the selector.
// This function is mostly used for tests.
func PackCreateCollection(owner common.Address) ([]byte, error) {
	return CollectionFactoryABI.Pack("createCollection", owner)
}

// UnpackCreateCollectionInput attempts to unpack [input] into the owner
// argument. Assumes that [input] does not include the selector.
func UnpackCreateCollectionInput(input []byte) (common.Address, error) {
	res, err := CollectionFactoryABI.Methods["createCollection"].Inputs.Unpack(input)
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(res[0], new(common.Address)).(*common.Address), nil
}

// PackCreateCollectionOutput packs [collectionID] to conform the ABI outputs.
func PackCreateCollectionOutput(collectionID uint64) ([]byte, error) {
	return CollectionFactoryABI.Methods["createCollection"].Outputs.Pack(new(big.Int).SetUint64(collectionID))
}

// UnpackCreateCollectionOutput attempts to unpack [output] into the
// collection id.
func UnpackCreateCollectionOutput(output []byte) (*big.Int, error) {
	res, err := CollectionFactoryABI.Unpack("createCollection", output)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(res[0], new(*big.Int)).(**big.Int), nil
}

func createCollection(
	accessibleState contract.AccessibleState,
	_ common.Address,
	_ common.Address,
	input []byte,
	suppliedGas uint64,
	_ bool,
) (ret []byte, remainingGas uint64, err error) {
	if remainingGas, err = contract.DeductGas(suppliedGas, CreateCollectionGasCost); err != nil {
		return nil, 0, err
	}

	owner, err := UnpackCreateCollectionInput(input)
	if err != nil {
		return nil, remainingGas, fmt.Errorf("%w: %s", contract.ErrInvalidInput, err)
	}

	stateDB := accessibleState.GetStateDB()
	created, err := evolution.CreateCollection(stateDB, owner)
	if err != nil {
		return nil, remainingGas, err
	}

	topics, data, err := PackNewCollectionEvent(created)
	if err != nil {
		return nil, remainingGas, err
	}
	stateDB.AddLog(&types.Log{
		Address:     ContractAddress,
		Topics:      topics,
		Data:        data,
		BlockNumber: accessibleState.GetBlockContext().Number().Uint64(),
	})

	packedOutput, err := PackCreateCollectionOutput(created.CollectionID)
	if err != nil {
		return nil, remainingGas, err
	}
	return packedOutput, remainingGas, nil
}

// createCollectionFactoryPrecompile returns a StatefulPrecompiledContract
// that creates collections on behalf of any caller.
func createCollectionFactoryPrecompile() contract.StatefulPrecompiledContract {
	abiFunctionMap := map[string]contract.RunStatefulPrecompileFunc{
		"createCollection": createCollection,
	}
	functions := make([]*contract.StatefulPrecompileFunction, 0, len(abiFunctionMap))
	for name, function := range abiFunctionMap {
		method, ok := CollectionFactoryABI.Methods[name]
		if !ok {
			panic(fmt.Errorf("given method (%s) does not exist in the ABI", name))
		}
		functions = append(functions, contract.NewStatefulPrecompileFunctionFromABI(method, function))
	}
	statefulContract, err := contract.NewStatefulPrecompileContract(functions)
	if err != nil {
		panic(err)
	}
	return statefulContract
}
