// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import (
	"fmt"

	safemath "github.com/ava-labs/assetregistry/utils/math"
)

// DefaultRates are the gas prices of one unit of each dimension.
var DefaultRates = Dimensions{
	Read:      5_000,
	Write:     20_000,
	Bandwidth: 16,
	Compute:   1,
}

type Manager struct {
	// gas per unit of complexity
	rates Dimensions
}

func NewManager(rates Dimensions) *Manager {
	return &Manager{
		rates: rates,
	}
}

func (m *Manager) Rates() Dimensions {
	return m.rates
}

// CalculateFee must be a stateless method
func (m *Manager) CalculateFee(units Dimensions) (uint64, error) {
	fee := uint64(0)
	for i := Dimension(0); i < FeeDimensions; i++ {
		contribution, err := safemath.Mul64(m.rates[i], units[i])
		if err != nil {
			return 0, fmt.Errorf("%w: dimension %d", err, i)
		}
		fee, err = safemath.Add64(contribution, fee)
		if err != nil {
			return 0, err
		}
	}
	return fee, nil
}
