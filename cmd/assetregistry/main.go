// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava-labs/assetregistry/config"
)

func init() {
	cobra.EnablePrefixMatching = true
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed %v\n", config.AppName, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	c := &cobra.Command{
		Use:          config.AppName,
		Short:        "Inspects and calls the evolving asset registry precompiles",
		SilenceUsage: true,
	}
	c.PersistentFlags().AddFlagSet(config.BuildFlagSet())
	c.AddCommand(
		addressCommand(),
		tokenIDCommand(),
		selectorsCommand(),
		callCommand(),
		tokensCommand(),
	)
	return c
}
