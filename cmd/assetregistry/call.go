// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/common/hexutil"
	"github.com/ava-labs/libevm/core/types"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ava-labs/assetregistry/precompile/dispatch"
)

const (
	FromKey      = "from"
	ToKey        = "to"
	InputKey     = "input"
	GasKey       = "gas"
	ValueKey     = "value"
	StaticKey    = "static"
	TimestampKey = "timestamp"
	BlockKey     = "block"
)

func addCallFlags(flags *pflag.FlagSet) {
	flags.String(FromKey, common.Address{}.Hex(), "Caller of the precompile")
	flags.String(ToKey, "", "Address of the precompile to call")
	flags.String(InputKey, "", "Hex encoded call data")
	flags.Uint64(GasKey, 1_000_000, "Gas supplied to the call")
	flags.String(ValueKey, "0", "Value attached to the call")
	flags.Bool(StaticKey, false, "Execute the call in a static context")
	flags.Uint64(TimestampKey, 0, "Timestamp of the block executing the call")
	flags.Uint64(BlockKey, 0, "Number of the block executing the call")
}

type callConfig struct {
	Message   dispatch.Message
	Timestamp uint64
	Block     uint64
}

func parseCallFlags(flags *pflag.FlagSet) (*callConfig, error) {
	fromStr, err := flags.GetString(FromKey)
	if err != nil {
		return nil, err
	}
	from, err := parseAddress(fromStr)
	if err != nil {
		return nil, err
	}

	toStr, err := flags.GetString(ToKey)
	if err != nil {
		return nil, err
	}
	to, err := parseAddress(toStr)
	if err != nil {
		return nil, err
	}

	inputStr, err := flags.GetString(InputKey)
	if err != nil {
		return nil, err
	}
	input, err := hexutil.Decode(inputStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	gas, err := flags.GetUint64(GasKey)
	if err != nil {
		return nil, err
	}

	valueStr, err := flags.GetString(ValueKey)
	if err != nil {
		return nil, err
	}
	rawValue, err := parseBig(valueStr)
	if err != nil {
		return nil, err
	}
	value, overflow := uint256.FromBig(rawValue)
	if overflow {
		return nil, fmt.Errorf("%w: value %s overflows", errInvalidNumber, valueStr)
	}

	static, err := flags.GetBool(StaticKey)
	if err != nil {
		return nil, err
	}
	timestamp, err := flags.GetUint64(TimestampKey)
	if err != nil {
		return nil, err
	}
	block, err := flags.GetUint64(BlockKey)
	if err != nil {
		return nil, err
	}

	return &callConfig{
		Message: dispatch.Message{
			From:     from,
			To:       to,
			Input:    input,
			Gas:      gas,
			Value:    value,
			ReadOnly: static,
		},
		Timestamp: timestamp,
		Block:     block,
	}, nil
}

func callCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "call",
		Short: "Executes one call to a precompile and commits its changes",
		Args:  cobra.NoArgs,
		RunE:  callFunc,
	}
	addCallFlags(c.Flags())
	return c
}

// callOutput is the JSON printed by the call command.
type callOutput struct {
	ReturnData   hexutil.Bytes `json:"returnData"`
	GasUsed      uint64        `json:"gasUsed"`
	Logs         []*types.Log  `json:"logs"`
	Error        string        `json:"error,omitempty"`
	RevertReason string        `json:"revertReason,omitempty"`
}

func callFunc(c *cobra.Command, _ []string) (err error) {
	callConfig, err := parseCallFlags(c.Flags())
	if err != nil {
		return err
	}

	n, err := newNode(c)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := n.close(); err == nil {
			err = closeErr
		}
	}()

	var (
		stateDB      = n.state()
		blockContext = dispatch.NewBlockContext(new(big.Int).SetUint64(callConfig.Block), callConfig.Timestamp)
	)
	if err := n.dispatcher.Configure(stateDB, blockContext); err != nil {
		stateDB.Abort()
		return err
	}
	result, err := n.dispatcher.Call(stateDB, blockContext, callConfig.Message)
	if err != nil {
		stateDB.Abort()
		return err
	}
	// A failed call already reverted its own changes, the upgrades applied by
	// Configure are kept.
	if err := stateDB.Commit(); err != nil {
		return err
	}

	output := callOutput{
		ReturnData:   result.ReturnData,
		GasUsed:      result.GasUsed,
		Logs:         result.Logs,
		RevertReason: result.RevertReason,
	}
	if result.Failed() {
		output.Error = result.Err.Error()
	}
	n.log.Info("executed call",
		zap.Stringer("to", callConfig.Message.To),
		zap.Uint64("gasUsed", result.GasUsed),
		zap.Bool("failed", result.Failed()),
	)

	outputJSON, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), string(outputJSON))
	return err
}
