// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"testing"

	"github.com/ava-labs/libevm/common"
	"github.com/stretchr/testify/require"
)

func TestPrefixRange(t *testing.T) {
	require := require.New(t)

	r := NewPrefixRange([]byte{0xab, 0xcd})
	require.Equal(common.HexToAddress("0xabcd000000000000000000000000000000000000"), r.Start)
	require.Equal(common.HexToAddress("0xabcdffffffffffffffffffffffffffffffffffff"), r.End)

	require.True(r.Contains(common.HexToAddress("0xabcd000000000000000000000000000000000000")))
	require.True(r.Contains(common.HexToAddress("0xabcd0000000000000000000000000000000000ff")))
	require.True(r.Contains(common.HexToAddress("0xabcdffffffffffffffffffffffffffffffffffff")))
	require.False(r.Contains(common.HexToAddress("0xabce000000000000000000000000000000000000")))
	require.False(r.Contains(common.HexToAddress("0xabcc000000000000000000000000000000000000")))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        AddressRange
		b        AddressRange
		expected bool
	}{
		{
			name:     "disjoint prefixes",
			a:        NewPrefixRange([]byte{0x01}),
			b:        NewPrefixRange([]byte{0x02}),
			expected: false,
		},
		{
			name:     "nested",
			a:        NewPrefixRange([]byte{0x01}),
			b:        NewPrefixRange([]byte{0x01, 0x02}),
			expected: true,
		},
		{
			name: "single address at the edge",
			a:    NewPrefixRange([]byte{0x01}),
			b: AddressRange{
				Start: common.HexToAddress("0x01ffffffffffffffffffffffffffffffffffffff"),
				End:   common.HexToAddress("0x01ffffffffffffffffffffffffffffffffffffff"),
			},
			expected: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.a.Overlaps(test.b))
			require.Equal(t, test.expected, test.b.Overlaps(test.a))
		})
	}
}
