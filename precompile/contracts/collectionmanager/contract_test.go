// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collectionmanager

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ava-labs/libevm/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/assetregistry/core/state"
	"github.com/ava-labs/assetregistry/evolution"
	"github.com/ava-labs/assetregistry/precompile/contract"
	"github.com/ava-labs/assetregistry/precompile/precompiletest"
	"github.com/ava-labs/assetregistry/vmerrs"
)

var (
	ownerAddr    = common.HexToAddress("0x8db97C7cEcE249c2b98bDC0226Cc4C2A57BF52FC")
	strangerAddr = common.HexToAddress("0xF60C45c607D0f41687c94C314d300f483661E13a")
	receiverAddr = common.HexToAddress("0x0101010101010101010101010101010101010101")

	// Collection 0 is created by createCollection in every test.
	collectionAddr = evolution.CollectionAddress(0)
	missingAddr    = evolution.CollectionAddress(1)

	ciaoTokenID = evolution.NewTokenID(uint256.NewInt(9), receiverAddr)
)

func createCollection(t testing.TB, stateDB contract.StateDB) {
	created, err := evolution.CreateCollection(stateDB, ownerAddr)
	require.NoError(t, err)
	require.Equal(t, collectionAddr, created.Collection)
}

func mintCiao(t testing.TB, stateDB contract.StateDB) {
	createCollection(t, stateDB)
	_, err := evolution.MintWithExternalURI(stateDB, ownerAddr, 0, big.NewInt(9), receiverAddr, "ciao")
	require.NoError(t, err)
}

func enablePublic(t testing.TB, stateDB contract.StateDB) {
	createCollection(t, stateDB)
	_, err := evolution.EnablePublicMinting(stateDB, ownerAddr, 0)
	require.NoError(t, err)
}

func mustPack(pack func() ([]byte, error)) func(t testing.TB) []byte {
	return func(t testing.TB) []byte {
		input, err := pack()
		require.NoError(t, err)
		return input
	}
}

func mustMintCost(t testing.TB, uri string) uint64 {
	cost, err := MintURIGasCost(len(uri))
	require.NoError(t, err)
	return MintWithExternalURIGasCost + cost
}

func mustEvolveCost(t testing.TB, uri string) uint64 {
	cost, err := EvolveURIGasCost(len(uri))
	require.NoError(t, err)
	return EvolveWithExternalURIGasCost + cost
}

func packMint(to common.Address, slot int64, uri string) func(t testing.TB) []byte {
	return mustPack(func() ([]byte, error) {
		return PackMintWithExternalURI(MintWithExternalURIInput{
			To:       to,
			Slot:     big.NewInt(slot),
			TokenURI: uri,
		})
	})
}

func requireNoLogs(t testing.TB, stateDB contract.StateDB) {
	require.Empty(t, stateDB.(*state.StateDB).Logs())
}

func TestGasCosts(t *testing.T) {
	require := require.New(t)

	require.Equal(uint64(5_000), OwnerGasCost)
	require.Equal(uint64(10_000), IsPublicMintingEnabledGasCost)
	require.Equal(uint64(5_000), TokenURIGasCost)
	require.Equal(uint64(35_000), MintWithExternalURIGasCost)
	require.Equal(uint64(30_000), EvolveWithExternalURIGasCost)
	require.Equal(uint64(25_000+375+3*375), TransferOwnershipGasCost)
	require.Equal(uint64(25_000+375+375), TogglePublicMintingGasCost)

	mintCost, err := MintURIGasCost(4)
	require.NoError(err)
	require.Equal(uint64(4*16+375+2*375+8*160), mintCost)

	evolveCost, err := EvolveURIGasCost(33)
	require.NoError(err)
	require.Equal(uint64(33*16+375+2*375+8*128), evolveCost)
}

func TestABI(t *testing.T) {
	require := require.New(t)

	selectors := map[string][]byte{
		"owner":                  {0x8d, 0xa5, 0xcb, 0x5b},
		"tokenURI":               {0xc8, 0x7b, 0x56, 0xdd},
		"mintWithExternalURI":    {0xfd, 0x02, 0x45, 0x66},
		"evolveWithExternalURI":  {0x2f, 0xd3, 0x8f, 0x4d},
		"transferOwnership":      {0xf2, 0xfd, 0xe3, 0x8b},
		"enablePublicMinting":    {0xf7, 0xbe, 0xb9, 0x8a},
		"disablePublicMinting":   {0x91, 0x90, 0xad, 0x47},
		"isPublicMintingEnabled": {0x44, 0x1f, 0x06, 0xac},
	}
	require.Len(CollectionManagerABI.Methods, len(selectors))
	for name, selector := range selectors {
		method, ok := CollectionManagerABI.Methods[name]
		require.True(ok, name)
		require.Equal(selector, method.ID, name)
		require.Equal(contract.CalculateFunctionSelector(method.Sig), method.ID, name)
	}

	modifiers := map[string]contract.Modifier{
		"owner":                  contract.View,
		"tokenURI":               contract.View,
		"isPublicMintingEnabled": contract.View,
		"mintWithExternalURI":    contract.NonPayable,
		"transferOwnership":      contract.NonPayable,
	}
	for name, modifier := range modifiers {
		require.Equal(modifier, contract.ModifierOf(CollectionManagerABI.Methods[name]), name)
	}

	topics := map[string]string{
		"MintedWithExternalURI":  "0xa7135052b348b0b4e9943bae82d8ef1c5ac225e594ef4271d12f0744cfc98348",
		"EvolvedWithExternalURI": "0xdde18ad2fe10c12a694de65b920c02b851c382cf63115967ea6f7098902fa1c8",
		"OwnershipTransferred":   "0x8be0079c531659141344cd1fd0a4f28419497f9722a3daafe3b4186f6b6457e0",
		"PublicMintingEnabled":   "0x8ff3deee4c40ab085dd8d7d0c848cb5295e4ab5faa32e5b60e3936cf1bdc77bf",
		"PublicMintingDisabled":  "0xebe230014056e5cb4ca6d8e534189bf5bfb0759489f16170654dce7c014b6699",
	}
	for name, topic := range topics {
		require.Equal(common.HexToHash(topic), CollectionManagerABI.Events[name].ID, name)
	}
}

func TestMintWithExternalURI(t *testing.T) {
	ciaoCost := mustMintCost(t, "ciao")
	tests := map[string]precompiletest.PrecompileTest{
		"owner mints": {
			Caller:      ownerAddr,
			Address:     collectionAddr,
			BeforeHook:  createCollection,
			InputFn:     packMint(receiverAddr, 9, "ciao"),
			SuppliedGas: ciaoCost,
			ExpectedRes: func() []byte {
				output, _ := packOutput("mintWithExternalURI", ciaoTokenID.Big())
				return output
			}(),
			BlockNumber: 11,
			AfterHook: func(t testing.TB, stateDB contract.StateDB) {
				require := require.New(t)

				uri, ok, err := evolution.TokenURI(stateDB, 0, ciaoTokenID)
				require.NoError(err)
				require.True(ok)
				require.Equal("ciao", uri)

				logs := stateDB.(*state.StateDB).Logs()
				require.Len(logs, 1)
				log := logs[0]
				require.Equal(collectionAddr, log.Address)
				require.Equal(uint64(11), log.BlockNumber)
				require.Equal([]common.Hash{
					CollectionManagerABI.Events["MintedWithExternalURI"].ID,
					common.BytesToHash(receiverAddr.Bytes()),
				}, log.Topics)

				eventData, err := UnpackMintedWithExternalURIEventData(log.Data)
				require.NoError(err)
				require.Zero(eventData.Slot.Cmp(big.NewInt(9)))
				require.Zero(eventData.TokenID.Cmp(ciaoTokenID.Big()))
				require.Equal("ciao", eventData.TokenURI)
			},
		},
		"stranger mints with public minting": {
			Caller:      strangerAddr,
			Address:     collectionAddr,
			BeforeHook:  enablePublic,
			InputFn:     packMint(strangerAddr, 1, "ciao"),
			SuppliedGas: ciaoCost + 5,
			ExpectedRes: func() []byte {
				tokenID := evolution.NewTokenID(uint256.NewInt(1), strangerAddr)
				output, _ := packOutput("mintWithExternalURI", tokenID.Big())
				return output
			}(),
			ExpectedRemainingGas: 5,
		},
		"stranger mints without public minting": {
			Caller:         strangerAddr,
			Address:        collectionAddr,
			BeforeHook:     createCollection,
			InputFn:        packMint(strangerAddr, 1, "ciao"),
			SuppliedGas:    ciaoCost,
			ExpectedErr:    vmerrs.ErrExecutionReverted,
			ExpectedRevert: evolution.ErrNoPermission.Error(),
			AfterHook:      requireNoLogs,
		},
		"already minted": {
			Caller:         ownerAddr,
			Address:        collectionAddr,
			BeforeHook:     mintCiao,
			InputFn:        packMint(receiverAddr, 9, "again"),
			SuppliedGas:    mustMintCost(t, "again"),
			ExpectedErr:    vmerrs.ErrExecutionReverted,
			ExpectedRevert: evolution.ErrAlreadyMinted.Error(),
			AfterHook: func(t testing.TB, stateDB contract.StateDB) {
				uri, _, err := evolution.TokenURI(stateDB, 0, ciaoTokenID)
				require.NoError(t, err)
				require.Equal(t, "ciao", uri)
			},
		},
		"truncated input": {
			Caller:     ownerAddr,
			Address:    collectionAddr,
			BeforeHook: createCollection,
			InputFn: func(t testing.TB) []byte {
				input := packMint(receiverAddr, 9, "ciao")(t)
				return input[:len(input)-common.HashLength]
			},
			SuppliedGas:    ciaoCost,
			ExpectedErr:    vmerrs.ErrExecutionReverted,
			ExpectedRevert: contract.ErrInvalidInput.Error(),
			// Rejected while decoding, before the URI is charged.
			ExpectedRemainingGas: ciaoCost - MintWithExternalURIGasCost,
		},
		"missing collection": {
			Caller:         ownerAddr,
			Address:        missingAddr,
			BeforeHook:     createCollection,
			InputFn:        packMint(receiverAddr, 9, "ciao"),
			SuppliedGas:    ciaoCost,
			ExpectedErr:    vmerrs.ErrExecutionReverted,
			ExpectedRevert: evolution.ErrCollectionDoesNotExist.Error(),
		},
		"uri too long": {
			Caller:         ownerAddr,
			Address:        collectionAddr,
			BeforeHook:     createCollection,
			InputFn:        packMint(receiverAddr, 9, strings.Repeat("a", evolution.MaxTokenURILength+1)),
			SuppliedGas:    mustMintCost(t, strings.Repeat("a", evolution.MaxTokenURILength+1)),
			ExpectedErr:    vmerrs.ErrExecutionReverted,
			ExpectedRevert: evolution.ErrTokenURITooLong.Error(),
		},
		"insufficient gas for uri": {
			Caller:      ownerAddr,
			Address:     collectionAddr,
			BeforeHook:  createCollection,
			InputFn:     packMint(receiverAddr, 9, "ciao"),
			SuppliedGas: ciaoCost - 1,
			ExpectedErr: vmerrs.ErrOutOfGas,
			AfterHook: func(t testing.TB, stateDB contract.StateDB) {
				_, ok, err := evolution.TokenURI(stateDB, 0, ciaoTokenID)
				require.NoError(t, err)
				require.False(t, ok)
			},
		},
		"with value": {
			Caller:               ownerAddr,
			Address:              collectionAddr,
			BeforeHook:           createCollection,
			InputFn:              packMint(receiverAddr, 9, "ciao"),
			SuppliedGas:          ciaoCost,
			Value:                uint256.NewInt(1),
			ExpectedErr:          vmerrs.ErrExecutionReverted,
			ExpectedRevert:       contract.ErrNonPayable.Error(),
			ExpectedRemainingGas: ciaoCost,
			AfterHook:            requireNoLogs,
		},
		"readOnly": {
			Caller:               ownerAddr,
			Address:              collectionAddr,
			BeforeHook:           createCollection,
			InputFn:              packMint(receiverAddr, 9, "ciao"),
			SuppliedGas:          ciaoCost,
			ReadOnly:             true,
			ExpectedErr:          vmerrs.ErrExecutionReverted,
			ExpectedRevert:       contract.ErrStaticCall.Error(),
			ExpectedRemainingGas: ciaoCost,
		},
	}

	precompiletest.RunPrecompileTests(t, Module, tests)
}

func TestEvolveWithExternalURI(t *testing.T) {
	cost := mustEvolveCost(t, "evolved")
	packEvolve := func(tokenID evolution.TokenID, uri string) func(t testing.TB) []byte {
		return mustPack(func() ([]byte, error) {
			return PackEvolveWithExternalURI(tokenID, uri)
		})
	}
	tests := map[string]precompiletest.PrecompileTest{
		"owner evolves": {
			Caller:      ownerAddr,
			Address:     collectionAddr,
			BeforeHook:  mintCiao,
			InputFn:     packEvolve(ciaoTokenID, "evolved"),
			SuppliedGas: cost,
			ExpectedRes: []byte{},
			AfterHook: func(t testing.TB, stateDB contract.StateDB) {
				require := require.New(t)

				uri, ok, err := evolution.TokenURI(stateDB, 0, ciaoTokenID)
				require.NoError(err)
				require.True(ok)
				require.Equal("evolved", uri)

				logs := stateDB.(*state.StateDB).Logs()
				require.Len(logs, 1)
				require.Equal([]common.Hash{
					CollectionManagerABI.Events["EvolvedWithExternalURI"].ID,
					ciaoTokenID.Hash(),
				}, logs[0].Topics)
				uri, err = UnpackEvolvedWithExternalURIEventData(logs[0].Data)
				require.NoError(err)
				require.Equal("evolved", uri)
			},
		},
		"stranger evolves": {
			Caller:         strangerAddr,
			Address:        collectionAddr,
			BeforeHook:     mintCiao,
			InputFn:        packEvolve(ciaoTokenID, "evolved"),
			SuppliedGas:    cost,
			ExpectedErr:    vmerrs.ErrExecutionReverted,
			ExpectedRevert: evolution.ErrNoPermission.Error(),
		},
		"unminted token": {
			Caller:         ownerAddr,
			Address:        collectionAddr,
			BeforeHook:     createCollection,
			InputFn:        packEvolve(ciaoTokenID, "evolved"),
			SuppliedGas:    cost,
			ExpectedErr:    vmerrs.ErrExecutionReverted,
			ExpectedRevert: evolution.ErrAssetDoesNotExist.Error(),
		},
		"insufficient gas": {
			Caller:      ownerAddr,
			Address:     collectionAddr,
			BeforeHook:  mintCiao,
			InputFn:     packEvolve(ciaoTokenID, "evolved"),
			SuppliedGas: EvolveWithExternalURIGasCost - 1,
			ExpectedErr: vmerrs.ErrOutOfGas,
		},
	}

	precompiletest.RunPrecompileTests(t, Module, tests)
}

func TestViews(t *testing.T) {
	tests := map[string]precompiletest.PrecompileTest{
		"owner": {
			Address:     collectionAddr,
			BeforeHook:  createCollection,
			InputFn:     mustPack(PackOwner),
			SuppliedGas: OwnerGasCost,
			ExpectedRes: func() []byte {
				output, _ := packOutput("owner", ownerAddr)
				return output
			}(),
		},
		"owner of missing collection": {
			Address:        missingAddr,
			InputFn:        mustPack(PackOwner),
			SuppliedGas:    OwnerGasCost,
			ExpectedErr:    vmerrs.ErrExecutionReverted,
			ExpectedRevert: evolution.ErrCollectionDoesNotExist.Error(),
		},
		"owner in static call": {
			Address:     collectionAddr,
			BeforeHook:  createCollection,
			InputFn:     mustPack(PackOwner),
			SuppliedGas: OwnerGasCost,
			ReadOnly:    true,
			ExpectedRes: func() []byte {
				output, _ := packOutput("owner", ownerAddr)
				return output
			}(),
		},
		"owner with value": {
			Address:              collectionAddr,
			BeforeHook:           createCollection,
			InputFn:              mustPack(PackOwner),
			SuppliedGas:          OwnerGasCost,
			Value:                uint256.NewInt(1),
			ExpectedErr:          vmerrs.ErrExecutionReverted,
			ExpectedRevert:       contract.ErrNonPayable.Error(),
			ExpectedRemainingGas: OwnerGasCost,
		},
		"tokenURI": {
			Address:    collectionAddr,
			BeforeHook: mintCiao,
			InputFn: mustPack(func() ([]byte, error) {
				return PackTokenURI(ciaoTokenID)
			}),
			SuppliedGas: TokenURIGasCost,
			ExpectedRes: func() []byte {
				output, _ := packOutput("tokenURI", "ciao")
				return output
			}(),
		},
		"tokenURI of unminted token": {
			Address:    collectionAddr,
			BeforeHook: createCollection,
			InputFn: mustPack(func() ([]byte, error) {
				return PackTokenURI(ciaoTokenID)
			}),
			SuppliedGas:    TokenURIGasCost,
			ExpectedErr:    vmerrs.ErrExecutionReverted,
			ExpectedRevert: evolution.ErrAssetDoesNotExist.Error(),
		},
		"public minting disabled by default": {
			Address:     collectionAddr,
			BeforeHook:  createCollection,
			InputFn:     mustPack(PackIsPublicMintingEnabled),
			SuppliedGas: IsPublicMintingEnabledGasCost,
			ExpectedRes: func() []byte {
				output, _ := packOutput("isPublicMintingEnabled", false)
				return output
			}(),
		},
		"public minting enabled": {
			Address:     collectionAddr,
			BeforeHook:  enablePublic,
			InputFn:     mustPack(PackIsPublicMintingEnabled),
			SuppliedGas: IsPublicMintingEnabledGasCost,
			ExpectedRes: func() []byte {
				output, _ := packOutput("isPublicMintingEnabled", true)
				return output
			}(),
		},
		"public minting of missing collection": {
			Address:        missingAddr,
			InputFn:        mustPack(PackIsPublicMintingEnabled),
			SuppliedGas:    IsPublicMintingEnabledGasCost,
			ExpectedErr:    vmerrs.ErrExecutionReverted,
			ExpectedRevert: evolution.ErrCollectionDoesNotExist.Error(),
		},
		"not a collection address": {
			Address:        common.HexToAddress("0x0000000000000000000000000000000000000404"),
			InputFn:        mustPack(PackOwner),
			SuppliedGas:    OwnerGasCost,
			ExpectedErr:    vmerrs.ErrExecutionReverted,
			ExpectedRevert: ErrInvalidCollectionAddress.Error(),
		},
		"unknown selector": {
			Address:              collectionAddr,
			Input:                []byte{0xde, 0xad, 0xbe, 0xef},
			SuppliedGas:          OwnerGasCost,
			ExpectedErr:          vmerrs.ErrExecutionReverted,
			ExpectedRevert:       contract.ErrUnknownSelector.Error(),
			ExpectedRemainingGas: OwnerGasCost,
		},
	}

	precompiletest.RunPrecompileTests(t, Module, tests)
}

func TestTransferOwnership(t *testing.T) {
	packTransfer := func(newOwner common.Address) func(t testing.TB) []byte {
		return mustPack(func() ([]byte, error) {
			return PackTransferOwnership(newOwner)
		})
	}
	tests := map[string]precompiletest.PrecompileTest{
		"owner transfers": {
			Caller:      ownerAddr,
			Address:     collectionAddr,
			BeforeHook:  createCollection,
			InputFn:     packTransfer(strangerAddr),
			SuppliedGas: TransferOwnershipGasCost,
			ExpectedRes: []byte{},
			AfterHook: func(t testing.TB, stateDB contract.StateDB) {
				require := require.New(t)

				owner, _, err := evolution.CollectionOwner(stateDB, 0)
				require.NoError(err)
				require.Equal(strangerAddr, owner)

				logs := stateDB.(*state.StateDB).Logs()
				require.Len(logs, 1)
				require.Equal([]common.Hash{
					CollectionManagerABI.Events["OwnershipTransferred"].ID,
					common.BytesToHash(ownerAddr.Bytes()),
					common.BytesToHash(strangerAddr.Bytes()),
				}, logs[0].Topics)
				require.Empty(logs[0].Data)
			},
		},
		"stranger transfers": {
			Caller:         strangerAddr,
			Address:        collectionAddr,
			BeforeHook:     createCollection,
			InputFn:        packTransfer(strangerAddr),
			SuppliedGas:    TransferOwnershipGasCost,
			ExpectedErr:    vmerrs.ErrExecutionReverted,
			ExpectedRevert: evolution.ErrNoPermission.Error(),
			AfterHook:      requireNoLogs,
		},
		"insufficient gas": {
			Caller:      ownerAddr,
			Address:     collectionAddr,
			BeforeHook:  createCollection,
			InputFn:     packTransfer(strangerAddr),
			SuppliedGas: TransferOwnershipGasCost - 1,
			ExpectedErr: vmerrs.ErrOutOfGas,
		},
	}

	precompiletest.RunPrecompileTests(t, Module, tests)
}

func TestTogglePublicMinting(t *testing.T) {
	tests := map[string]precompiletest.PrecompileTest{
		"enable": {
			Caller:      ownerAddr,
			Address:     collectionAddr,
			BeforeHook:  createCollection,
			InputFn:     mustPack(PackEnablePublicMinting),
			SuppliedGas: TogglePublicMintingGasCost,
			ExpectedRes: []byte{},
			AfterHook: func(t testing.TB, stateDB contract.StateDB) {
				require := require.New(t)

				enabled, err := evolution.IsPublicMintingEnabled(stateDB, 0)
				require.NoError(err)
				require.True(enabled)

				logs := stateDB.(*state.StateDB).Logs()
				require.Len(logs, 1)
				require.Equal([]common.Hash{
					CollectionManagerABI.Events["PublicMintingEnabled"].ID,
				}, logs[0].Topics)
			},
		},
		"disable": {
			Caller:      ownerAddr,
			Address:     collectionAddr,
			BeforeHook:  enablePublic,
			InputFn:     mustPack(PackDisablePublicMinting),
			SuppliedGas: TogglePublicMintingGasCost,
			ExpectedRes: []byte{},
			AfterHook: func(t testing.TB, stateDB contract.StateDB) {
				require := require.New(t)

				enabled, err := evolution.IsPublicMintingEnabled(stateDB, 0)
				require.NoError(err)
				require.False(enabled)

				logs := stateDB.(*state.StateDB).Logs()
				require.Len(logs, 1)
				require.Equal([]common.Hash{
					CollectionManagerABI.Events["PublicMintingDisabled"].ID,
				}, logs[0].Topics)
			},
		},
		"stranger enables": {
			Caller:         strangerAddr,
			Address:        collectionAddr,
			BeforeHook:     createCollection,
			InputFn:        mustPack(PackEnablePublicMinting),
			SuppliedGas:    TogglePublicMintingGasCost,
			ExpectedErr:    vmerrs.ErrExecutionReverted,
			ExpectedRevert: evolution.ErrNoPermission.Error(),
		},
		"missing collection": {
			Caller:         ownerAddr,
			Address:        missingAddr,
			InputFn:        mustPack(PackDisablePublicMinting),
			SuppliedGas:    TogglePublicMintingGasCost,
			ExpectedErr:    vmerrs.ErrExecutionReverted,
			ExpectedRevert: evolution.ErrCollectionDoesNotExist.Error(),
		},
	}

	precompiletest.RunPrecompileTests(t, Module, tests)
}

func TestUnpackOutputs(t *testing.T) {
	require := require.New(t)

	output, err := packOutput("owner", ownerAddr)
	require.NoError(err)
	owner, err := UnpackOwnerOutput(output)
	require.NoError(err)
	require.Equal(ownerAddr, owner)

	output, err = packOutput("mintWithExternalURI", ciaoTokenID.Big())
	require.NoError(err)
	tokenID, err := UnpackMintWithExternalURIOutput(output)
	require.NoError(err)
	require.Equal(ciaoTokenID, tokenID)

	output, err = packOutput("tokenURI", "ciao")
	require.NoError(err)
	uri, err := UnpackTokenURIOutput(output)
	require.NoError(err)
	require.Equal("ciao", uri)

	output, err = packOutput("isPublicMintingEnabled", true)
	require.NoError(err)
	enabled, err := UnpackIsPublicMintingEnabledOutput(output)
	require.NoError(err)
	require.True(enabled)
}
