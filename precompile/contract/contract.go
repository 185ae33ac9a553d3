// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"errors"
	"fmt"

	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/crypto"
	"github.com/holiman/uint256"

	"github.com/ava-labs/assetregistry/vmerrs"
)

const SelectorLen = 4

var (
	_ StatefulPrecompiledContract = (*statefulPrecompileWithFunctionSelectors)(nil)

	// The message of each error is the revert reason returned to callers.
	ErrUnknownSelector = errors.New("unknown selector")
	ErrNonPayable      = errors.New("function is not payable")
	ErrStaticCall      = errors.New("can't call non-static function in static context")
	ErrInvalidInput    = errors.New("invalid input")

	errDuplicateSelector = errors.New("duplicate function selector")

	revertSelector = crypto.Keccak256([]byte("Error(string)"))[:SelectorLen]
	revertArgs     = abi.Arguments{{Type: mustNewType("string")}}
)

func mustNewType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}

// Modifier restricts the context a function may be called in.
type Modifier uint8

const (
	NonPayable Modifier = iota
	View
	Payable
)

// ModifierOf returns the modifier declared by the state mutability of
// [method].
func ModifierOf(method abi.Method) Modifier {
	switch method.StateMutability {
	case "view", "pure":
		return View
	case "payable":
		return Payable
	default:
		return NonPayable
	}
}

func (m Modifier) String() string {
	switch m {
	case View:
		return "view"
	case Payable:
		return "payable"
	default:
		return "nonpayable"
	}
}

// Verify returns an error if a call with [value] attached, in a static
// context iff [readOnly], is not allowed for [m].
func (m Modifier) Verify(value *uint256.Int, readOnly bool) error {
	if m == Payable {
		return nil
	}
	if value != nil && !value.IsZero() {
		return ErrNonPayable
	}
	if m == NonPayable && readOnly {
		return ErrStaticCall
	}
	return nil
}

// RunStatefulPrecompileFunc is the signature of a single precompile
// function. [input] excludes the selector. A returned error, other than
// running out of gas, reverts the call with the error as the reason.
type RunStatefulPrecompileFunc func(
	accessibleState AccessibleState,
	caller common.Address,
	addr common.Address,
	input []byte,
	suppliedGas uint64,
	readOnly bool,
) (ret []byte, remainingGas uint64, err error)

// StatefulPrecompileFunction defines a function implemented by a stateful precompile
type StatefulPrecompileFunction struct {
	// selector is the 4 byte function selector for this function
	// This should be calculated from the function signature using CalculateFunctionSelector
	selector []byte
	modifier Modifier
	// execute is performed when this function is selected
	execute RunStatefulPrecompileFunc
}

// NewStatefulPrecompileFunction creates a stateful precompile function with the given arguments
func NewStatefulPrecompileFunction(selector []byte, modifier Modifier, execute RunStatefulPrecompileFunc) *StatefulPrecompileFunction {
	return &StatefulPrecompileFunction{
		selector: selector,
		modifier: modifier,
		execute:  execute,
	}
}

// NewStatefulPrecompileFunctionFromABI creates a function for [method] with
// the modifier its state mutability declares.
func NewStatefulPrecompileFunctionFromABI(method abi.Method, execute RunStatefulPrecompileFunc) *StatefulPrecompileFunction {
	return NewStatefulPrecompileFunction(method.ID, ModifierOf(method), execute)
}

// statefulPrecompileWithFunctionSelectors implements StatefulPrecompiledContract by using 4 byte function selectors to pass
// off responsibilities to internal execution functions.
type statefulPrecompileWithFunctionSelectors struct {
	functions map[string]*StatefulPrecompileFunction
}

// NewStatefulPrecompileContract generates new StatefulPrecompile using [functions] as the available functions.
func NewStatefulPrecompileContract(functions []*StatefulPrecompileFunction) (StatefulPrecompiledContract, error) {
	contract := &statefulPrecompileWithFunctionSelectors{
		functions: make(map[string]*StatefulPrecompileFunction, len(functions)),
	}
	for _, function := range functions {
		key := string(function.selector)
		if _, exists := contract.functions[key]; exists {
			return nil, fmt.Errorf("%w: %x", errDuplicateSelector, function.selector)
		}
		contract.functions[key] = function
	}
	return contract, nil
}

// Run selects the function using the 4 byte function selector at the start of the input and executes the underlying function on the
// given arguments.
func (s *statefulPrecompileWithFunctionSelectors) Run(
	accessibleState AccessibleState,
	caller common.Address,
	addr common.Address,
	input []byte,
	suppliedGas uint64,
	readOnly bool,
	value *uint256.Int,
) ([]byte, uint64, error) {
	if len(input) < SelectorLen {
		return Revert(ErrUnknownSelector, suppliedGas)
	}

	selector := input[:SelectorLen]
	function, ok := s.functions[string(selector)]
	if !ok {
		return Revert(fmt.Errorf("%w: %x", ErrUnknownSelector, selector), suppliedGas)
	}
	if err := function.modifier.Verify(value, readOnly); err != nil {
		return Revert(err, suppliedGas)
	}

	ret, remainingGas, err := function.execute(accessibleState, caller, addr, input[SelectorLen:], suppliedGas, readOnly)
	switch {
	case err == nil:
		return ret, remainingGas, nil
	case errors.Is(err, vmerrs.ErrOutOfGas):
		return nil, 0, err
	default:
		return Revert(err, remainingGas)
	}
}

// Revert returns the result of a call reverted because of [err].
func Revert(err error, remainingGas uint64) ([]byte, uint64, error) {
	return PackRevert(RevertReason(err)), remainingGas, vmerrs.ErrExecutionReverted
}

// RevertReason returns the message of the innermost error wrapped by [err].
func RevertReason(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

// PackRevert returns the ABI encoding of Error([reason]).
func PackRevert(reason string) []byte {
	packed, err := revertArgs.Pack(reason)
	if err != nil {
		// Packing a string can't fail.
		panic(err)
	}
	return append(common.CopyBytes(revertSelector), packed...)
}

// UnpackRevert returns the reason of a revert packed by [PackRevert].
func UnpackRevert(data []byte) (string, error) {
	return abi.UnpackRevert(data)
}
