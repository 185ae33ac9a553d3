// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collectionmanager

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/core/types"

	_ "embed"

	"github.com/ava-labs/assetregistry/database"
	"github.com/ava-labs/assetregistry/evolution"
	"github.com/ava-labs/assetregistry/fees"
	"github.com/ava-labs/assetregistry/precompile/contract"
)

// Gas costs for each function. Functions storing a token URI additionally
// pay for its bytes and for the log they emit, see [MintURIGasCost] and
// [EvolveURIGasCost].
var (
	OwnerGasCost = contract.MustGasCost(fees.Dimensions{
		fees.Read: 1,
	})
	// IsPublicMintingEnabledGasCost reads the owner to check the collection
	// exists, then the flag.
	IsPublicMintingEnabledGasCost = contract.MustGasCost(fees.Dimensions{
		fees.Read: 2,
	})
	TokenURIGasCost = contract.MustGasCost(fees.Dimensions{
		fees.Read: 1,
	})
	// MintWithExternalURIGasCost reads the owner, the public minting flag and
	// the token, then writes the token.
	MintWithExternalURIGasCost = contract.MustGasCost(fees.Dimensions{
		fees.Read:  3,
		fees.Write: 1,
	})
	EvolveWithExternalURIGasCost = contract.MustGasCost(fees.Dimensions{
		fees.Read:  2,
		fees.Write: 1,
	})
	TransferOwnershipGasCost = contract.MustGasCost(fees.Dimensions{
		fees.Read:    1,
		fees.Write:   1,
		fees.Compute: contract.LogGasCost(3, 0),
	})
	TogglePublicMintingGasCost = contract.MustGasCost(fees.Dimensions{
		fees.Read:    1,
		fees.Write:   1,
		fees.Compute: contract.LogGasCost(1, 0),
	})

	ErrInvalidCollectionAddress = errors.New("invalid collection address")

	// Singleton StatefulPrecompiledContract served at every collection address.
	CollectionManagerPrecompile contract.StatefulPrecompiledContract = createCollectionManagerPrecompile()

	// CollectionManagerRawABI contains the raw ABI of the CollectionManager contract.
	//go:embed contract.abi
	CollectionManagerRawABI string

	CollectionManagerABI = contract.ParseABI(CollectionManagerRawABI)
)

type MintWithExternalURIInput struct {
	To       common.Address
	Slot     *big.Int
	TokenURI string `abi:"tokenURI"`
}

type EvolveWithExternalURIInput struct {
	TokenID  *big.Int `abi:"tokenId"`
	TokenURI string   `abi:"tokenURI"`
}

// MintURIGasCost is the input dependent cost of minting a token with a URI
// of [uriLen] bytes: the stored bytes and the MintedWithExternalURI log.
func MintURIGasCost(uriLen int) (uint64, error) {
	// slot, token id, string offset, string length and the padded string
	dataLen := 4*common.HashLength + contract.PaddedLen(uriLen)
	return contract.GasCost(fees.Dimensions{
		fees.Bandwidth: uint64(uriLen),
		fees.Compute:   contract.LogGasCost(2, dataLen),
	})
}

// EvolveURIGasCost is the input dependent cost of evolving a token to a URI
// of [uriLen] bytes: the stored bytes and the EvolvedWithExternalURI log.
func EvolveURIGasCost(uriLen int) (uint64, error) {
	// string offset, string length and the padded string
	dataLen := 2*common.HashLength + contract.PaddedLen(uriLen)
	return contract.GasCost(fees.Dimensions{
		fees.Bandwidth: uint64(uriLen),
		fees.Compute:   contract.LogGasCost(2, dataLen),
	})
}

func collectionID(addr common.Address) (uint64, error) {
	id, err := evolution.CollectionIDFromAddress(addr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidCollectionAddress, addr)
	}
	return id, nil
}

func unpackInput(method string, v interface{}, input []byte) error {
	args := CollectionManagerABI.Methods[method].Inputs
	values, err := args.Unpack(input)
	if err != nil {
		return fmt.Errorf("%w: %s", contract.ErrInvalidInput, err)
	}
	if err := args.Copy(v, values); err != nil {
		return fmt.Errorf("%w: %s", contract.ErrInvalidInput, err)
	}
	return nil
}

func packOutput(method string, args ...interface{}) ([]byte, error) {
	return CollectionManagerABI.Methods[method].Outputs.Pack(args...)
}

func addLog(accessibleState contract.AccessibleState, addr common.Address, topics []common.Hash, data []byte) {
	accessibleState.GetStateDB().AddLog(&types.Log{
		Address:     addr,
		Topics:      topics,
		Data:        data,
		BlockNumber: accessibleState.GetBlockContext().Number().Uint64(),
	})
}

// PackOwner packs the include selector (first 4 func signature bytes).
// This function is mostly used for tests.
func PackOwner() ([]byte, error) {
	return CollectionManagerABI.Pack("owner")
}

// UnpackOwnerOutput attempts to unpack [output] into the owner address.
func UnpackOwnerOutput(output []byte) (common.Address, error) {
	res, err := CollectionManagerABI.Unpack("owner", output)
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(res[0], new(common.Address)).(*common.Address), nil
}

func owner(
	accessibleState contract.AccessibleState,
	_ common.Address,
	addr common.Address,
	_ []byte,
	suppliedGas uint64,
	_ bool,
) (ret []byte, remainingGas uint64, err error) {
	if remainingGas, err = contract.DeductGas(suppliedGas, OwnerGasCost); err != nil {
		return nil, 0, err
	}
	id, err := collectionID(addr)
	if err != nil {
		return nil, remainingGas, err
	}

	owner, ok, err := evolution.CollectionOwner(accessibleState.GetStateDB(), id)
	if err != nil {
		return nil, remainingGas, err
	}
	if !ok {
		return nil, remainingGas, fmt.Errorf("%w: %d", evolution.ErrCollectionDoesNotExist, id)
	}

	packedOutput, err := packOutput("owner", owner)
	if err != nil {
		return nil, remainingGas, err
	}
	return packedOutput, remainingGas, nil
}

// PackTokenURI packs [tokenID] into the appropriate arguments for tokenURI.
// This function is mostly used for tests.
func PackTokenURI(tokenID evolution.TokenID) ([]byte, error) {
	return CollectionManagerABI.Pack("tokenURI", tokenID.Big())
}

// UnpackTokenURIOutput attempts to unpack [output] into the token URI.
func UnpackTokenURIOutput(output []byte) (string, error) {
	res, err := CollectionManagerABI.Unpack("tokenURI", output)
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(res[0], new(string)).(*string), nil
}

func tokenURI(
	accessibleState contract.AccessibleState,
	_ common.Address,
	addr common.Address,
	input []byte,
	suppliedGas uint64,
	_ bool,
) (ret []byte, remainingGas uint64, err error) {
	if remainingGas, err = contract.DeductGas(suppliedGas, TokenURIGasCost); err != nil {
		return nil, 0, err
	}

	var rawTokenID *big.Int
	if err := unpackInput("tokenURI", &rawTokenID, input); err != nil {
		return nil, remainingGas, err
	}
	tokenID, err := evolution.TokenIDFromBig(rawTokenID)
	if err != nil {
		return nil, remainingGas, fmt.Errorf("%w: %s", contract.ErrInvalidInput, err)
	}
	id, err := collectionID(addr)
	if err != nil {
		return nil, remainingGas, err
	}

	uri, ok, err := evolution.TokenURI(accessibleState.GetStateDB(), id, tokenID)
	if err != nil {
		return nil, remainingGas, err
	}
	if !ok {
		return nil, remainingGas, fmt.Errorf("%w: %s", evolution.ErrAssetDoesNotExist, tokenID)
	}

	packedOutput, err := packOutput("tokenURI", uri)
	if err != nil {
		return nil, remainingGas, err
	}
	return packedOutput, remainingGas, nil
}

// PackMintWithExternalURI packs [input] into the appropriate arguments for
// mintWithExternalURI. This function is mostly used for tests.
func PackMintWithExternalURI(input MintWithExternalURIInput) ([]byte, error) {
	return CollectionManagerABI.Pack("mintWithExternalURI", input.To, input.Slot, input.TokenURI)
}

// UnpackMintWithExternalURIOutput attempts to unpack [output] into the
// minted token id.
func UnpackMintWithExternalURIOutput(output []byte) (evolution.TokenID, error) {
	res, err := CollectionManagerABI.Unpack("mintWithExternalURI", output)
	if err != nil {
		return evolution.TokenID{}, err
	}
	return evolution.TokenIDFromBig(*abi.ConvertType(res[0], new(*big.Int)).(**big.Int))
}

func mintWithExternalURI(
	accessibleState contract.AccessibleState,
	caller common.Address,
	addr common.Address,
	input []byte,
	suppliedGas uint64,
	_ bool,
) (ret []byte, remainingGas uint64, err error) {
	if remainingGas, err = contract.DeductGas(suppliedGas, MintWithExternalURIGasCost); err != nil {
		return nil, 0, err
	}

	var args MintWithExternalURIInput
	if err := unpackInput("mintWithExternalURI", &args, input); err != nil {
		return nil, remainingGas, err
	}
	id, err := collectionID(addr)
	if err != nil {
		return nil, remainingGas, err
	}

	uriGasCost, err := MintURIGasCost(len(args.TokenURI))
	if err != nil {
		return nil, 0, err
	}
	if remainingGas, err = contract.DeductGas(remainingGas, uriGasCost); err != nil {
		return nil, 0, err
	}

	minted, err := evolution.MintWithExternalURI(
		accessibleState.GetStateDB(),
		caller,
		id,
		args.Slot,
		args.To,
		args.TokenURI,
	)
	if err != nil {
		return nil, remainingGas, err
	}

	topics, data, err := PackMintedWithExternalURIEvent(minted)
	if err != nil {
		return nil, remainingGas, err
	}
	addLog(accessibleState, addr, topics, data)

	packedOutput, err := packOutput("mintWithExternalURI", minted.TokenID.Big())
	if err != nil {
		return nil, remainingGas, err
	}
	return packedOutput, remainingGas, nil
}

// PackEvolveWithExternalURI packs [input] into the appropriate arguments for
// evolveWithExternalURI. This function is mostly used for tests.
func PackEvolveWithExternalURI(tokenID evolution.TokenID, uri string) ([]byte, error) {
	return CollectionManagerABI.Pack("evolveWithExternalURI", tokenID.Big(), uri)
}

func evolveWithExternalURI(
	accessibleState contract.AccessibleState,
	caller common.Address,
	addr common.Address,
	input []byte,
	suppliedGas uint64,
	_ bool,
) (ret []byte, remainingGas uint64, err error) {
	if remainingGas, err = contract.DeductGas(suppliedGas, EvolveWithExternalURIGasCost); err != nil {
		return nil, 0, err
	}

	var args EvolveWithExternalURIInput
	if err := unpackInput("evolveWithExternalURI", &args, input); err != nil {
		return nil, remainingGas, err
	}
	tokenID, err := evolution.TokenIDFromBig(args.TokenID)
	if err != nil {
		return nil, remainingGas, fmt.Errorf("%w: %s", contract.ErrInvalidInput, err)
	}
	id, err := collectionID(addr)
	if err != nil {
		return nil, remainingGas, err
	}

	uriGasCost, err := EvolveURIGasCost(len(args.TokenURI))
	if err != nil {
		return nil, 0, err
	}
	if remainingGas, err = contract.DeductGas(remainingGas, uriGasCost); err != nil {
		return nil, 0, err
	}

	evolved, err := evolution.EvolveWithExternalURI(
		accessibleState.GetStateDB(),
		caller,
		id,
		tokenID,
		args.TokenURI,
	)
	if err != nil {
		return nil, remainingGas, err
	}

	topics, data, err := PackEvolvedWithExternalURIEvent(evolved)
	if err != nil {
		return nil, remainingGas, err
	}
	addLog(accessibleState, addr, topics, data)
	return []byte{}, remainingGas, nil
}

// PackTransferOwnership packs [newOwner] into the appropriate arguments for
// transferOwnership. This function is mostly used for tests.
func PackTransferOwnership(newOwner common.Address) ([]byte, error) {
	return CollectionManagerABI.Pack("transferOwnership", newOwner)
}

func transferOwnership(
	accessibleState contract.AccessibleState,
	caller common.Address,
	addr common.Address,
	input []byte,
	suppliedGas uint64,
	_ bool,
) (ret []byte, remainingGas uint64, err error) {
	if remainingGas, err = contract.DeductGas(suppliedGas, TransferOwnershipGasCost); err != nil {
		return nil, 0, err
	}

	var newOwner common.Address
	if err := unpackInput("transferOwnership", &newOwner, input); err != nil {
		return nil, remainingGas, err
	}
	id, err := collectionID(addr)
	if err != nil {
		return nil, remainingGas, err
	}

	transferred, err := evolution.TransferOwnership(accessibleState.GetStateDB(), caller, id, newOwner)
	if err != nil {
		return nil, remainingGas, err
	}

	topics, data, err := PackOwnershipTransferredEvent(transferred)
	if err != nil {
		return nil, remainingGas, err
	}
	addLog(accessibleState, addr, topics, data)
	return []byte{}, remainingGas, nil
}

// PackEnablePublicMinting packs the include selector (first 4 func signature bytes).
// This function is mostly used for tests.
func PackEnablePublicMinting() ([]byte, error) {
	return CollectionManagerABI.Pack("enablePublicMinting")
}

// PackDisablePublicMinting packs the include selector (first 4 func signature bytes).
// This function is mostly used for tests.
func PackDisablePublicMinting() ([]byte, error) {
	return CollectionManagerABI.Pack("disablePublicMinting")
}

func enablePublicMinting(
	accessibleState contract.AccessibleState,
	caller common.Address,
	addr common.Address,
	_ []byte,
	suppliedGas uint64,
	_ bool,
) (ret []byte, remainingGas uint64, err error) {
	return togglePublicMinting(accessibleState, caller, addr, suppliedGas, evolution.EnablePublicMinting)
}

func disablePublicMinting(
	accessibleState contract.AccessibleState,
	caller common.Address,
	addr common.Address,
	_ []byte,
	suppliedGas uint64,
	_ bool,
) (ret []byte, remainingGas uint64, err error) {
	return togglePublicMinting(accessibleState, caller, addr, suppliedGas, evolution.DisablePublicMinting)
}

type toggleFunc func(
	db database.KeyValueReaderWriterDeleter,
	caller common.Address,
	id uint64,
) (evolution.PublicMintingToggled, error)

func togglePublicMinting(
	accessibleState contract.AccessibleState,
	caller common.Address,
	addr common.Address,
	suppliedGas uint64,
	toggle toggleFunc,
) (ret []byte, remainingGas uint64, err error) {
	if remainingGas, err = contract.DeductGas(suppliedGas, TogglePublicMintingGasCost); err != nil {
		return nil, 0, err
	}
	id, err := collectionID(addr)
	if err != nil {
		return nil, remainingGas, err
	}

	toggled, err := toggle(accessibleState.GetStateDB(), caller, id)
	if err != nil {
		return nil, remainingGas, err
	}

	topics, data := PackPublicMintingToggledEvent(toggled)
	addLog(accessibleState, addr, topics, data)
	return []byte{}, remainingGas, nil
}

// PackIsPublicMintingEnabled packs the include selector (first 4 func signature bytes).
// This function is mostly used for tests.
func PackIsPublicMintingEnabled() ([]byte, error) {
	return CollectionManagerABI.Pack("isPublicMintingEnabled")
}

// UnpackIsPublicMintingEnabledOutput attempts to unpack [output] into the
// public minting flag.
func UnpackIsPublicMintingEnabledOutput(output []byte) (bool, error) {
	res, err := CollectionManagerABI.Unpack("isPublicMintingEnabled", output)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(res[0], new(bool)).(*bool), nil
}

func isPublicMintingEnabled(
	accessibleState contract.AccessibleState,
	_ common.Address,
	addr common.Address,
	_ []byte,
	suppliedGas uint64,
	_ bool,
) (ret []byte, remainingGas uint64, err error) {
	if remainingGas, err = contract.DeductGas(suppliedGas, IsPublicMintingEnabledGasCost); err != nil {
		return nil, 0, err
	}
	id, err := collectionID(addr)
	if err != nil {
		return nil, remainingGas, err
	}

	enabled, err := evolution.IsPublicMintingEnabled(accessibleState.GetStateDB(), id)
	if err != nil {
		return nil, remainingGas, err
	}

	packedOutput, err := packOutput("isPublicMintingEnabled", enabled)
	if err != nil {
		return nil, remainingGas, err
	}
	return packedOutput, remainingGas, nil
}

// createCollectionManagerPrecompile returns a StatefulPrecompiledContract
// that manages the collection encoded in the address it is called at.
func createCollectionManagerPrecompile() contract.StatefulPrecompiledContract {
	abiFunctionMap := map[string]contract.RunStatefulPrecompileFunc{
		"owner":                  owner,
		"tokenURI":               tokenURI,
		"mintWithExternalURI":    mintWithExternalURI,
		"evolveWithExternalURI":  evolveWithExternalURI,
		"transferOwnership":      transferOwnership,
		"enablePublicMinting":    enablePublicMinting,
		"disablePublicMinting":   disablePublicMinting,
		"isPublicMintingEnabled": isPublicMintingEnabled,
	}
	functions := make([]*contract.StatefulPrecompileFunction, 0, len(abiFunctionMap))
	for name, function := range abiFunctionMap {
		method, ok := CollectionManagerABI.Methods[name]
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
