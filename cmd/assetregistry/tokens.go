// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ava-labs/assetregistry/evolution"
)

func tokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <collectionId>",
		Short: "Lists the minted tokens of a collection",
		Args:  cobra.ExactArgs(1),
		RunE:  tokensFunc,
	}
}

func tokensFunc(c *cobra.Command, args []string) (err error) {
	id, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		return fmt.Errorf("failed to parse collection id: %w", err)
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

	stateDB := n.state()
	owner, ok, err := evolution.CollectionOwner(stateDB, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d", evolution.ErrCollectionDoesNotExist, id)
	}
	publicMinting, err := evolution.IsPublicMintingEnabled(stateDB, id)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "collection\t%s\n", evolution.CollectionAddress(id))
	fmt.Fprintf(w, "owner\t%s\n", owner)
	fmt.Fprintf(w, "public minting\t%t\n", publicMinting)

	it := evolution.Tokens(stateDB, id)
	defer it.Release()
	for it.Next() {
		tokenID := it.TokenID()
		fmt.Fprintf(w, "%s\t%s\t%s\t%q\n", tokenID, tokenID.Slot().ToBig(), tokenID.Owner(), it.URI())
	}
	if err := it.Error(); err != nil {
		return err
	}
	return w.Flush()
}
