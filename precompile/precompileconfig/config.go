// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Defines the stateless interface for unmarshalling an arbitrary config of a precompile
package precompileconfig

// Config is the interface that every precompile configuration implements.
type Config interface {
	// Key returns the unique key used in upgrade files for this precompile.
	Key() string
	// Timestamp returns the timestamp at which this config activates, or
	// nil if it never does.
	Timestamp() *uint64
	// IsDisabled returns true if this config deactivates the precompile.
	IsDisabled() bool
	// Equal returns true if the provided argument configures the same
	// precompile with the same parameters.
	Equal(Config) bool
	// Verify returns an error if the config is invalid.
	Verify() error
}
