// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelJSON(t *testing.T) {
	require := require.New(t)

	for _, level := range []Level{Off, Fatal, Error, Warn, Info, Trace, Debug, Verbo} {
		b, err := json.Marshal(level)
		require.NoError(err)

		var parsed Level
		require.NoError(json.Unmarshal(b, &parsed))
		require.Equal(level, parsed)
	}
}

func TestToLevel(t *testing.T) {
	tests := []struct {
		input       string
		expected    Level
		expectedErr error
	}{
		{input: "info", expected: Info},
		{input: "TRACE", expected: Trace},
		{input: "Verbo", expected: Verbo},
		{input: "off", expected: Off},
		{input: "loud", expected: Off, expectedErr: ErrUnknownLevel},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			require := require.New(t)

			level, err := ToLevel(test.input)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expected, level)
		})
	}
}

func TestLevelOrdering(t *testing.T) {
	require := require.New(t)

	require.Less(Verbo, Debug)
	require.Less(Debug, Trace)
	require.Less(Trace, Info)
	require.Less(Fatal, Off)
	require.Equal("INFO ", Info.AlignedString())
	require.Equal("trace", Trace.LowerString())
}
