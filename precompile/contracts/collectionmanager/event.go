// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collectionmanager

import (
	"math/big"

	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/common"

	"github.com/ava-labs/assetregistry/evolution"
)

// MintedWithExternalURIEventData are the non-indexed fields of
// MintedWithExternalURI.
type MintedWithExternalURIEventData struct {
	Slot     *big.Int
	TokenID  *big.Int `abi:"tokenId"`
	TokenURI string   `abi:"tokenURI"`
}

// PackMintedWithExternalURIEvent packs the event into the appropriate
// arguments for MintedWithExternalURI. It returns the topic hashes and the
// encoded non-indexed data.
func PackMintedWithExternalURIEvent(minted evolution.TokenMinted) ([]common.Hash, []byte, error) {
	event := CollectionManagerABI.Events["MintedWithExternalURI"]
	indexed, err := abi.MakeTopics([]interface{}{minted.To})
	if err != nil {
		return nil, nil, err
	}
	data, err := event.Inputs.NonIndexed().Pack(
		minted.Slot.ToBig(),
		minted.TokenID.Big(),
		minted.URI,
	)
	if err != nil {
		return nil, nil, err
	}
	return append([]common.Hash{event.ID}, indexed[0]...), data, nil
}

// UnpackMintedWithExternalURIEventData attempts to unpack the non-indexed
// data of a MintedWithExternalURI event.
func UnpackMintedWithExternalURIEventData(data []byte) (MintedWithExternalURIEventData, error) {
	var eventData MintedWithExternalURIEventData
	err := CollectionManagerABI.UnpackIntoInterface(&eventData, "MintedWithExternalURI", data)
	return eventData, err
}

// PackEvolvedWithExternalURIEvent packs the event into the appropriate
// arguments for EvolvedWithExternalURI.
func PackEvolvedWithExternalURIEvent(evolved evolution.TokenEvolved) ([]common.Hash, []byte, error) {
	event := CollectionManagerABI.Events["EvolvedWithExternalURI"]
	data, err := event.Inputs.NonIndexed().Pack(evolved.URI)
	if err != nil {
		return nil, nil, err
	}
	return []common.Hash{event.ID, evolved.TokenID.Hash()}, data, nil
}

// UnpackEvolvedWithExternalURIEventData returns the URI carried by an
// EvolvedWithExternalURI event.
func UnpackEvolvedWithExternalURIEventData(data []byte) (string, error) {
	res, err := CollectionManagerABI.Unpack("EvolvedWithExternalURI", data)
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(res[0], new(string)).(*string), nil
}

// PackOwnershipTransferredEvent packs the event into the appropriate
// arguments for OwnershipTransferred. All of its fields are indexed.
func PackOwnershipTransferredEvent(transferred evolution.OwnershipTransferred) ([]common.Hash, []byte, error) {
	event := CollectionManagerABI.Events["OwnershipTransferred"]
	indexed, err := abi.MakeTopics([]interface{}{transferred.From}, []interface{}{transferred.To})
	if err != nil {
		return nil, nil, err
	}
	topics := []common.Hash{event.ID, indexed[0][0], indexed[1][0]}
	return topics, []byte{}, nil
}

// PackPublicMintingToggledEvent returns the topics of PublicMintingEnabled
// or PublicMintingDisabled. Neither carries data.
func PackPublicMintingToggledEvent(toggled evolution.PublicMintingToggled) ([]common.Hash, []byte) {
	name := "PublicMintingDisabled"
	if toggled.Enabled {
		name = "PublicMintingEnabled"
	}
	return []common.Hash{CollectionManagerABI.Events[name].ID}, []byte{}
}
