// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dispatch

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/common/hexutil"
	"github.com/ava-labs/libevm/core/types"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/ava-labs/assetregistry/precompile/contract"
	"github.com/ava-labs/assetregistry/precompile/metered"
	"github.com/ava-labs/assetregistry/precompile/modules"
	"github.com/ava-labs/assetregistry/utils/logging"
	"github.com/ava-labs/assetregistry/vmerrs"
)

var (
	ErrNotPrecompile = errors.New("address is not a precompile")
	ErrNotActivated  = errors.New("precompile is not activated")
)

// StateDB is the state a call executes against.
type StateDB interface {
	contract.StateDB

	Logs() []*types.Log
}

// Message is a call to a precompile.
type Message struct {
	From     common.Address
	To       common.Address
	Input    []byte
	Gas      uint64
	Value    *uint256.Int
	ReadOnly bool
}

// Result is the outcome of a call. A failed call leaves no state changes
// and no logs behind.
type Result struct {
	ReturnData   hexutil.Bytes `json:"returnData"`
	GasUsed      uint64        `json:"gasUsed"`
	Logs         []*types.Log  `json:"logs"`
	Err          error         `json:"-"`
	RevertReason string        `json:"revertReason,omitempty"`
}

// Failed returns true if the call reverted or ran out of gas.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// Dispatcher routes calls to the registered precompiles that [upgrades] has
// activated.
type Dispatcher struct {
	log       logging.Logger
	upgrades  *UpgradeConfig
	contracts map[string]contract.StatefulPrecompiledContract
}

// New returns a dispatcher for every registered module. If [metrics] is
// non-nil every call is recorded in it.
func New(log logging.Logger, upgrades *UpgradeConfig, metrics *metered.Metrics) *Dispatcher {
	if upgrades == nil {
		upgrades = &UpgradeConfig{}
	}
	registered := modules.RegisteredModules()
	contracts := make(map[string]contract.StatefulPrecompiledContract, len(registered))
	for _, module := range registered {
		c := module.Contract
		if metrics != nil {
			c = metrics.Wrap(module.ConfigKey, module.ABI, c)
		}
		contracts[module.ConfigKey] = c
	}
	return &Dispatcher{
		log:       log,
		upgrades:  upgrades,
		contracts: contracts,
	}
}

// Configure applies every upgrade that takes effect at or before the block
// timestamp and hasn't been applied to [stateDB] yet. Modules are configured
// in address order.
func (d *Dispatcher) Configure(stateDB contract.StateDB, blockContext contract.BlockContext) error {
	blockTimestamp := blockContext.Timestamp()
	for _, module := range modules.RegisteredModules() {
		last, applied, err := getActivation(stateDB, module.ConfigKey)
		if err != nil {
			return err
		}
		for _, config := range d.upgrades.configs(module.ConfigKey) {
			timestamp := *config.Timestamp()
			if timestamp > blockTimestamp {
				break
			}
			if applied && timestamp <= last.Timestamp {
				continue
			}

			if config.IsDisabled() {
				d.log.Info("disabling precompile",
					zap.String("name", module.ConfigKey),
					zap.Uint64("timestamp", timestamp),
				)
			} else {
				var printIntf interface{}
				marshalled, err := json.Marshal(config)
				if err == nil {
					printIntf = string(marshalled)
				} else {
					printIntf = config
				}
				d.log.Info("activating precompile",
					zap.String("name", module.ConfigKey),
					zap.Any("config", printIntf),
				)
				if err := module.Configure(config, stateDB, blockContext); err != nil {
					return fmt.Errorf("could not configure precompile, name: %s, reason: %w", module.ConfigKey, err)
				}
			}

			last = activation{
				Timestamp: timestamp,
				Enabled:   !config.IsDisabled(),
			}
			applied = true
			if err := putActivation(stateDB, module.ConfigKey, last); err != nil {
				return err
			}
		}
	}
	return nil
}

// Call executes [msg] against [stateDB]. Failures of the call itself are
// reported in the result, the returned error is only set if [msg] doesn't
// target an active precompile or the state can't be read.
func (d *Dispatcher) Call(stateDB StateDB, blockContext contract.BlockContext, msg Message) (*Result, error) {
	module, ok := modules.GetPrecompileModuleByAddress(msg.To)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotPrecompile, msg.To)
	}
	active, err := IsActivated(stateDB, module.ConfigKey)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, fmt.Errorf("%w: %s", ErrNotActivated, module.ConfigKey)
	}

	var (
		snapshot = stateDB.Snapshot()
		numLogs  = len(stateDB.Logs())
		state    = &accessibleState{
			stateDB:      stateDB,
			blockContext: blockContext,
		}
	)
	ret, remainingGas, err := d.contracts[module.ConfigKey].Run(
		state,
		msg.From,
		msg.To,
		msg.Input,
		msg.Gas,
		msg.ReadOnly,
		msg.Value,
	)
	result := &Result{
		ReturnData: ret,
		GasUsed:    msg.Gas - remainingGas,
		Err:        err,
	}
	if err != nil {
		stateDB.RevertToSnapshot(snapshot)
		if errors.Is(err, vmerrs.ErrExecutionReverted) {
			// The precompiles always pack a reason.
			result.RevertReason, _ = contract.UnpackRevert(ret)
		}
	} else {
		result.Logs = append([]*types.Log(nil), stateDB.Logs()[numLogs:]...)
	}

	d.log.Debug("precompile call",
		zap.String("name", module.ConfigKey),
		zap.Stringer("from", msg.From),
		zap.Stringer("to", msg.To),
		zap.Uint64("gasUsed", result.GasUsed),
		zap.Int("numLogs", len(result.Logs)),
		zap.String("revertReason", result.RevertReason),
		zap.Error(err),
	)
	return result, nil
}
