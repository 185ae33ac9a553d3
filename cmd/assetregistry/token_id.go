// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ava-labs/libevm/common/math"
	"github.com/spf13/cobra"

	"github.com/ava-labs/assetregistry/evolution"
)

var errInvalidNumber = errors.New("invalid number")

func tokenIDCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "token-id <slot> <address>",
		Short: "Prints the id of the token minted at a slot for an address",
		Args:  cobra.ExactArgs(2),
		RunE:  tokenIDFunc,
	}
	c.AddCommand(&cobra.Command{
		Use:   "split <tokenId>",
		Short: "Prints the slot and the address a token id is made of",
		Args:  cobra.ExactArgs(1),
		RunE:  splitTokenIDFunc,
	})
	return c
}

func tokenIDFunc(c *cobra.Command, args []string) error {
	rawSlot, err := parseBig(args[0])
	if err != nil {
		return err
	}
	slot, err := evolution.ValidateSlot(rawSlot)
	if err != nil {
		return err
	}
	addr, err := parseAddress(args[1])
	if err != nil {
		return err
	}

	tokenID := evolution.NewTokenID(slot, addr)
	_, err = fmt.Fprintf(c.OutOrStdout(), "%s\n%s\n", tokenID, tokenID.Big())
	return err
}

func splitTokenIDFunc(c *cobra.Command, args []string) error {
	raw, err := parseBig(args[0])
	if err != nil {
		return err
	}
	tokenID, err := evolution.TokenIDFromBig(raw)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.OutOrStdout(), "slot: %s\naddress: %s\n", tokenID.Slot().ToBig(), tokenID.Owner())
	return err
}

// parseBig accepts decimal and 0x prefixed hex numbers.
func parseBig(s string) (*big.Int, error) {
	n, ok := math.ParseBig256(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errInvalidNumber, s)
	}
	return n, nil
}
