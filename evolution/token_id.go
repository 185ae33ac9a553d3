// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evolution

import (
	"fmt"
	"math/big"

	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/common/hexutil"
	"github.com/holiman/uint256"
)

const (
	SlotLen     = 12
	SlotBits    = SlotLen * 8
	TokenIDLen  = SlotLen + common.AddressLength
	tokenIDBits = TokenIDLen * 8
)

// TokenID identifies a token within a collection. The first [SlotLen] bytes
// are the big-endian slot and the rest is the address the token was minted
// to.
type TokenID [TokenIDLen]byte

// NewTokenID packs [slot] and [addr]. [slot] must already be validated.
func NewTokenID(slot *uint256.Int, addr common.Address) TokenID {
	var id TokenID
	slotBytes := slot.Bytes32()
	copy(id[:SlotLen], slotBytes[common.HashLength-SlotLen:])
	copy(id[SlotLen:], addr[:])
	return id
}

// ValidateSlot returns [raw] as a slot if it fits in [SlotBits] bits.
func ValidateSlot(raw *big.Int) (*uint256.Int, error) {
	if raw == nil || raw.Sign() < 0 || raw.BitLen() > SlotBits {
		return nil, fmt.Errorf("%w: %v", ErrSlotOverflow, raw)
	}
	slot, _ := uint256.FromBig(raw)
	return slot, nil
}

// TokenIDFromBig converts the ABI uint256 representation of a token id.
func TokenIDFromBig(b *big.Int) (TokenID, error) {
	if b == nil || b.Sign() < 0 || b.BitLen() > tokenIDBits {
		return TokenID{}, fmt.Errorf("%w: %v", ErrInvalidTokenID, b)
	}
	var id TokenID
	b.FillBytes(id[:])
	return id, nil
}

func (id TokenID) Slot() *uint256.Int {
	return new(uint256.Int).SetBytes(id[:SlotLen])
}

func (id TokenID) Owner() common.Address {
	return common.BytesToAddress(id[SlotLen:])
}

func (id TokenID) Big() *big.Int {
	return new(big.Int).SetBytes(id[:])
}

func (id TokenID) Hash() common.Hash {
	return common.Hash(id)
}

func (id TokenID) String() string {
	return hexutil.Encode(id[:])
}
