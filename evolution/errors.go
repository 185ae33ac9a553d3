// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evolution

import "errors"

// The message of each error is the revert reason returned to contract
// callers, so it must not change.
var (
	ErrCollectionDoesNotExist = errors.New("collection does not exist")
	ErrNoPermission           = errors.New("no permission")
	ErrAlreadyMinted          = errors.New("already minted")
	ErrAssetDoesNotExist      = errors.New("asset does not exist")
	ErrSlotOverflow           = errors.New("slot overflow")
	ErrCollectionIDOverflow   = errors.New("collection id overflow")
	ErrTokenURITooLong        = errors.New("token uri too long")

	ErrInvalidPrefix  = errors.New("invalid collection address prefix")
	ErrInvalidTokenID = errors.New("invalid token id")
)
