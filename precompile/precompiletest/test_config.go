// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package precompiletest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/assetregistry/precompile/precompileconfig"
)

// ConfigVerifyTest is a test case for verifying a config
type ConfigVerifyTest struct {
	Config      precompileconfig.Config
	ExpectedErr error
}

// ConfigEqualTest is a test case for comparing two configs
type ConfigEqualTest struct {
	Config   precompileconfig.Config
	Other    precompileconfig.Config
	Expected bool
}

func RunVerifyTests(t *testing.T, tests map[string]ConfigVerifyTest) {
	t.Helper()

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.Config.Verify()
			require.ErrorIs(t, err, test.ExpectedErr)
		})
	}
}

func RunEqualTests(t *testing.T, tests map[string]ConfigEqualTest) {
	t.Helper()

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, test.Expected, test.Config.Equal(test.Other))
		})
	}
}
