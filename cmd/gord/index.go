package main

import (
	"github.com/spf13/cobra"

	"github.com/gordtool/gord/internal/index"
	"github.com/gordtool/gord/internal/options"
)

func indexCmd(o *options.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Update the inscription index",
		Long: `Connect to Dogecoin Core, verify it is on the selected chain and bring
the inscription index up to date with the node's best chain tip.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(o)
		},
	}
}

func runIndex(o *options.Options) error {
	idx, err := index.Open(o)
	if err != nil {
		return err
	}
	defer idx.Close()

	return idx.Update()
}
