package main

import (
	"github.com/spf13/cobra"

	"github.com/gordtool/gord/internal/node"
	"github.com/gordtool/gord/internal/options"
	"github.com/gordtool/gord/internal/output"
)

func walletCmd(o *options.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Operate on the gord wallet",
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the configured wallet is a gord wallet",
		Long: `Connect to Dogecoin Core and run the wallet preflight: the node must
meet the minimum supported version and the wallet's output descriptors must
have the shape gord creates.

Example:
  gord --wallet ord wallet check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWalletCheck(o)
		},
	}

	cmd.AddCommand(checkCmd)

	return cmd
}

func runWalletCheck(o *options.Options) error {
	client, err := node.Dial(o)
	if err != nil {
		return err
	}
	defer client.Close()

	check, err := client.PreflightWallet(o.Wallet, false)
	if err != nil {
		return err
	}

	output.RenderWalletCheck(o.Wallet, check)
	return nil
}
