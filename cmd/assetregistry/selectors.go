// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/spf13/cobra"

	"github.com/ava-labs/assetregistry/precompile/modules"

	_ "github.com/ava-labs/assetregistry/precompile/registry"
)

func selectorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "selectors",
		Short: "Prints the function selectors and event topics of every precompile",
		Args:  cobra.NoArgs,
		RunE:  selectorsFunc,
	}
}

func selectorsFunc(c *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(c.OutOrStdout(), 0, 8, 2, ' ', 0)
	for _, module := range modules.RegisteredModules() {
		if module.ABI == nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", module.ConfigKey, module.Address)
		writeSelectors(w, module.ABI)
	}
	return w.Flush()
}

func writeSelectors(w io.Writer, contractABI *abi.ABI) {
	methods := make([]abi.Method, 0, len(contractABI.Methods))
	for _, method := range contractABI.Methods {
		methods = append(methods, method)
	}
	slices.SortFunc(methods, func(a, b abi.Method) int {
		return strings.Compare(a.Sig, b.Sig)
	})
	for _, method := range methods {
		fmt.Fprintf(w, "  function\t%s\t0x%x\n", method.Sig, method.ID)
	}

	events := make([]abi.Event, 0, len(contractABI.Events))
	for _, event := range contractABI.Events {
		events = append(events, event)
	}
	slices.SortFunc(events, func(a, b abi.Event) int {
		return strings.Compare(a.Sig, b.Sig)
	})
	for _, event := range events {
		fmt.Fprintf(w, "  event\t%s\t%s\n", event.Sig, event.ID)
	}
}
