// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evolution

import (
	"math/big"
	"testing"

	"github.com/ava-labs/libevm/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestNewTokenID(t *testing.T) {
	require := require.New(t)

	to := common.HexToAddress("0x0101010101010101010101010101010101010101")
	id := NewTokenID(uint256.NewInt(9), to)
	require.Equal(
		"0x0000000000000000000000090101010101010101010101010101010101010101",
		id.String(),
	)
	require.Equal(uint256.NewInt(9), id.Slot())
	require.Equal(to, id.Owner())
}

func TestTokenIDMaxSlot(t *testing.T) {
	require := require.New(t)

	maxSlot := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), SlotBits), big.NewInt(1))
	slot, err := ValidateSlot(maxSlot)
	require.NoError(err)

	to := common.HexToAddress("0xabcdef0000000000000000000000000000000001")
	id := NewTokenID(slot, to)
	for i := 0; i < SlotLen; i++ {
		require.Equal(byte(0xff), id[i])
	}
	require.Equal(to.Bytes(), id[SlotLen:])
	require.Equal(0, slot.ToBig().Cmp(maxSlot))
}

func TestValidateSlot(t *testing.T) {
	tests := []struct {
		name        string
		slot        *big.Int
		expectedErr error
	}{
		{
			name: "zero",
			slot: big.NewInt(0),
		},
		{
			name: "largest",
			slot: new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), SlotBits), big.NewInt(1)),
		},
		{
			name:        "two to the 96",
			slot:        new(big.Int).Lsh(big.NewInt(1), SlotBits),
			expectedErr: ErrSlotOverflow,
		},
		{
			name:        "negative",
			slot:        big.NewInt(-1),
			expectedErr: ErrSlotOverflow,
		},
		{
			name:        "nil",
			expectedErr: ErrSlotOverflow,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ValidateSlot(test.slot)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestTokenIDBigRoundTrip(t *testing.T) {
	require := require.New(t)

	id := NewTokenID(uint256.NewInt(1<<40), common.HexToAddress("0x00000000000000000000000000000000000000ff"))
	got, err := TokenIDFromBig(id.Big())
	require.NoError(err)
	require.Equal(id, got)
	require.Equal(common.Hash(id), got.Hash())

	tooBig := new(big.Int).Lsh(big.NewInt(1), 256)
	_, err = TokenIDFromBig(tooBig)
	require.ErrorIs(err, ErrInvalidTokenID)

	_, err = TokenIDFromBig(big.NewInt(-1))
	require.ErrorIs(err, ErrInvalidTokenID)
}
