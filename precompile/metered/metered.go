// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metered

import (
	"errors"

	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/common"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/assetregistry/precompile/contract"
	"github.com/ava-labs/assetregistry/utils/wrappers"
	"github.com/ava-labs/assetregistry/vmerrs"
)

const (
	precompileLabel = "precompile"
	methodLabel     = "method"

	// unknownMethod labels calls whose selector is not part of the ABI, so
	// arbitrary input can't grow the label set.
	unknownMethod = "unknown"
)

var (
	_ contract.StatefulPrecompiledContract = (*precompile)(nil)

	labelNames = []string{precompileLabel, methodLabel}
)

// Metrics records the outcome of precompile calls.
type Metrics struct {
	calls    *prometheus.CounterVec
	reverts  *prometheus.CounterVec
	outOfGas *prometheus.CounterVec
	gasUsed  *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calls",
				Help: "number of precompile calls",
			},
			labelNames,
		),
		reverts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reverts",
				Help: "number of precompile calls that reverted",
			},
			labelNames,
		),
		outOfGas: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "out_of_gas",
				Help: "number of precompile calls that ran out of gas",
			},
			labelNames,
		),
		gasUsed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gas_used",
				Help: "gas consumed by precompile calls",
			},
			labelNames,
		),
	}

	errs := wrappers.Errs{}
	errs.Add(
		reg.Register(m.calls),
		reg.Register(m.reverts),
		reg.Register(m.outOfGas),
		reg.Register(m.gasUsed),
	)
	return m, errs.Err
}

// Wrap returns [c] recording its calls under [name]. Methods are labeled
// with their name in [contractABI].
func (m *Metrics) Wrap(name string, contractABI *abi.ABI, c contract.StatefulPrecompiledContract) contract.StatefulPrecompiledContract {
	return &precompile{
		name:     name,
		abi:      contractABI,
		contract: c,
		metrics:  m,
	}
}

type precompile struct {
	name     string
	abi      *abi.ABI
	contract contract.StatefulPrecompiledContract
	metrics  *Metrics
}

func (p *precompile) Run(
	accessibleState contract.AccessibleState,
	caller common.Address,
	addr common.Address,
	input []byte,
	suppliedGas uint64,
	readOnly bool,
	value *uint256.Int,
) ([]byte, uint64, error) {
	ret, remainingGas, err := p.contract.Run(accessibleState, caller, addr, input, suppliedGas, readOnly, value)

	labels := prometheus.Labels{
		precompileLabel: p.name,
		methodLabel:     p.method(input),
	}
	p.metrics.calls.With(labels).Inc()
	switch {
	case errors.Is(err, vmerrs.ErrOutOfGas):
		p.metrics.outOfGas.With(labels).Inc()
	case err != nil:
		p.metrics.reverts.With(labels).Inc()
	}
	p.metrics.gasUsed.With(labels).Add(float64(suppliedGas - remainingGas))
	return ret, remainingGas, err
}

func (p *precompile) method(input []byte) string {
	if p.abi == nil || len(input) < contract.SelectorLen {
		return unknownMethod
	}
	method, err := p.abi.MethodById(input[:contract.SelectorLen])
	if err != nil {
		return unknownMethod
	}
	return method.Name
}
