package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gordtool/gord/internal/chain"
	"github.com/gordtool/gord/internal/options"
)

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	root, _ := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

// newRootCmd builds the gord command tree. All flags are persistent so every
// subcommand shares one resolved Options value; the network flags form a
// mutually exclusive group rejected at parse time.
func newRootCmd() (*cobra.Command, *options.Options) {
	o := &options.Options{}
	var chainName string

	cmd := &cobra.Command{
		Use:           "gord",
		Short:         "Dogecoin ordinals tool",
		Long:          "gord indexes, inspects and manages Dogecoin ordinals and inscriptions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			selected, err := chain.Parse(chainName)
			if err != nil {
				return err
			}
			o.ChainArg = selected
			o.FirstHeightSet = cmd.Flags().Changed("first-inscription-height")
			o.HeightLimitSet = cmd.Flags().Changed("height-limit")
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.DogecoinDataDir, "dogecoin-data-dir", "", "load Dogecoin Core data dir from this path")
	pf.StringVar(&chainName, "chain", "mainnet", "use chain: mainnet, testnet, signet or regtest")
	pf.StringVar(&o.ConfigPath, "config", "", "load configuration from this file")
	pf.StringVar(&o.ConfigDir, "config-dir", "", "load configuration from gord.yaml in this directory")
	pf.StringVar(&o.CookiePath, "cookie-file", "", "load Dogecoin Core RPC cookie file from this path")
	pf.StringVar(&o.DataDirPath, "data-dir", "", "store the index in this directory")
	pf.Uint64Var(&o.FirstInscriptionHeight, "first-inscription-height", 0, "don't look for inscriptions below this height")
	pf.Uint64Var(&o.HeightLimit, "height-limit", 0, "limit the index to this many blocks")
	pf.StringVar(&o.IndexPath, "index", "", "use the index at this path")
	pf.BoolVar(&o.IndexSats, "index-sats", false, "track the location of all satoshis")
	pf.BoolVarP(&o.Signet, "signet", "s", false, "use signet, equivalent to --chain signet")
	pf.BoolVarP(&o.Regtest, "regtest", "r", false, "use regtest, equivalent to --chain regtest")
	pf.BoolVarP(&o.Testnet, "testnet", "t", false, "use testnet, equivalent to --chain testnet")
	pf.StringVar(&o.RPCEndpoint, "rpc-url", "", "connect to Dogecoin Core RPC at this URL")
	pf.StringVar(&o.Wallet, "wallet", options.DefaultWallet, "use the wallet with this name")

	cmd.MarkFlagsMutuallyExclusive("chain", "signet", "regtest", "testnet")

	cmd.AddCommand(statusCmd(o))
	cmd.AddCommand(indexCmd(o))
	cmd.AddCommand(walletCmd(o))

	return cmd, o
}
