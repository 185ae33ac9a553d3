// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ava-labs/libevm/common"
	"github.com/spf13/cobra"

	"github.com/ava-labs/assetregistry/evolution"
)

var errInvalidAddress = errors.New("invalid address")

func addressCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "address",
		Short: "Converts between collection ids and collection addresses",
	}
	c.AddCommand(
		&cobra.Command{
			Use:   "encode <collectionId>",
			Short: "Prints the address of a collection",
			Args:  cobra.ExactArgs(1),
			RunE:  encodeAddressFunc,
		},
		&cobra.Command{
			Use:   "decode <address>",
			Short: "Prints the collection id of an address",
			Args:  cobra.ExactArgs(1),
			RunE:  decodeAddressFunc,
		},
	)
	return c
}

func encodeAddressFunc(c *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		return fmt.Errorf("failed to parse collection id: %w", err)
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), evolution.CollectionAddress(id))
	return err
}

func decodeAddressFunc(c *cobra.Command, args []string) error {
	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	id, err := evolution.CollectionIDFromAddress(addr)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), id)
	return err
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", errInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}
