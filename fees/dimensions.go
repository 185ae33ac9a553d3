// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import (
	"errors"

	safemath "github.com/ava-labs/assetregistry/utils/math"
)

const (
	Read      Dimension = 0
	Write     Dimension = 1 // includes overwrites
	Bandwidth Dimension = 2 // bytes of stored data
	Compute   Dimension = 3 // fixed overhead, log emission

	readString      string = "Read"
	writeString     string = "Write"
	bandwidthString string = "Bandwidth"
	computeString   string = "Compute"

	FeeDimensions = 4
)

var (
	errUnknownDimension = errors.New("unknown dimension")

	Empty = Dimensions{}

	DimensionStrings = []string{
		readString,
		writeString,
		bandwidthString,
		computeString,
	}
)

type (
	Dimension  int
	Dimensions [FeeDimensions]uint64
)

func (d Dimension) String() (string, error) {
	if d < 0 || d >= FeeDimensions {
		return "", errUnknownDimension
	}
	return DimensionStrings[d], nil
}

func Add(lhs, rhs Dimensions) (Dimensions, error) {
	var res Dimensions
	for i := Dimension(0); i < FeeDimensions; i++ {
		v, err := safemath.Add64(lhs[i], rhs[i])
		if err != nil {
			return res, err
		}
		res[i] = v
	}
	return res, nil
}

// [Compare] returns true only if rhs[i] >= lhs[i] for each dimensions
// Arrays ordering is not total, so we avoided naming [Compare] as [Less]
// to discourage improper use
func Compare(lhs, rhs Dimensions) bool {
	for i := Dimension(0); i < FeeDimensions; i++ {
		if lhs[i] > rhs[i] {
			return false
		}
	}
	return true
}
