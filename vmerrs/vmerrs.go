// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vmerrs

import "github.com/ava-labs/libevm/core/vm"

// Execution errors returned to the host by precompile calls.
var (
	ErrOutOfGas          = vm.ErrOutOfGas
	ErrExecutionReverted = vm.ErrExecutionReverted
	ErrWriteProtection   = vm.ErrWriteProtection
	ErrGasUintOverflow   = vm.ErrGasUintOverflow
)

// IsRevert reports whether [err] leaves the remaining gas to the caller.
// Every other execution error consumes all supplied gas.
func IsRevert(err error) bool {
	return err == ErrExecutionReverted //nolint:errorlint
}
