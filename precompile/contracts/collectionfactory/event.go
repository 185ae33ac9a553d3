// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collectionfactory

import (
	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/common"

	"github.com/ava-labs/assetregistry/evolution"
)

// NewCollectionEventData are the non-indexed fields of NewCollection.
type NewCollectionEventData struct {
	CollectionAddress common.Address
}

// PackNewCollectionEvent packs the event into the appropriate arguments for
// NewCollection. It returns the topic hashes and the encoded non-indexed
// data.
func PackNewCollectionEvent(created evolution.CollectionCreated) ([]common.Hash, []byte, error) {
	event := CollectionFactoryABI.Events["NewCollection"]
	indexed, err := abi.MakeTopics([]interface{}{created.Owner})
	if err != nil {
		return nil, nil, err
	}
	data, err := event.Inputs.NonIndexed().Pack(created.Collection)
	if err != nil {
		return nil, nil, err
	}
	return append([]common.Hash{event.ID}, indexed[0]...), data, nil
}

// UnpackNewCollectionEventData attempts to unpack the non-indexed data of a
// NewCollection event.
func UnpackNewCollectionEventData(data []byte) (NewCollectionEventData, error) {
	var eventData NewCollectionEventData
	err := CollectionFactoryABI.UnpackIntoInterface(&eventData, "NewCollection", data)
	return eventData, err
}
