// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	safemath "github.com/ava-labs/assetregistry/utils/math"
)

func TestCalculateFee(t *testing.T) {
	tests := []struct {
		name        string
		rates       Dimensions
		units       Dimensions
		expectedFee uint64
		expectedErr error
	}{
		{
			name:        "empty",
			rates:       DefaultRates,
			units:       Empty,
			expectedFee: 0,
		},
		{
			name:        "one read two writes",
			rates:       DefaultRates,
			units:       Dimensions{Read: 1, Write: 2},
			expectedFee: 45_000,
		},
		{
			name:        "bandwidth and compute",
			rates:       DefaultRates,
			units:       Dimensions{Bandwidth: 4, Compute: 1_125},
			expectedFee: 64 + 1_125,
		},
		{
			name:        "product overflow",
			rates:       DefaultRates,
			units:       Dimensions{Write: math.MaxUint64},
			expectedErr: safemath.ErrOverflow,
		},
		{
			name:        "sum overflow",
			rates:       Dimensions{1, 1, 1, 1},
			units:       Dimensions{math.MaxUint64, 1, 0, 0},
			expectedErr: safemath.ErrOverflow,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			m := NewManager(test.rates)
			fee, err := m.CalculateFee(test.units)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expectedFee, fee)
		})
	}
}

func TestDimensionString(t *testing.T) {
	require := require.New(t)

	s, err := Write.String()
	require.NoError(err)
	require.Equal("Write", s)

	_, err = Dimension(FeeDimensions).String()
	require.ErrorIs(err, errUnknownDimension)
}

func TestCompare(t *testing.T) {
	require := require.New(t)

	require.True(Compare(Dimensions{1, 1, 1, 1}, Dimensions{1, 2, 1, 1}))
	require.False(Compare(Dimensions{1, 3, 1, 1}, Dimensions{1, 2, 1, 1}))

	sum, err := Add(Dimensions{1, 2, 3, 4}, Dimensions{4, 3, 2, 1})
	require.NoError(err)
	require.Equal(Dimensions{5, 5, 5, 5}, sum)
}
