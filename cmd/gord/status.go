package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gordtool/gord/internal/config"
	"github.com/gordtool/gord/internal/index"
	"github.com/gordtool/gord/internal/options"
	"github.com/gordtool/gord/internal/output"
)

func statusCmd(o *options.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the resolved configuration",
		Long: `Resolve chain, paths, endpoint and configuration exactly as the other
commands would, and print the result without contacting the node.

Example:
  gord --signet status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(o)
		},
	}
}

func runStatus(o *options.Options) error {
	cookieFile, err := o.CookieFile()
	if err != nil {
		return err
	}

	dataDir, err := o.DataDir()
	if err != nil {
		return err
	}

	// Surface a malformed config document here rather than at first use.
	if _, err := o.LoadConfig(); err != nil {
		return err
	}

	indexPath := o.IndexPath
	if indexPath == "" {
		indexPath = filepath.Join(dataDir, index.Filename)
	}

	configSource := "none"
	switch {
	case o.ConfigPath != "":
		configSource = o.ConfigPath
	case o.ConfigDir != "":
		configSource = filepath.Join(o.ConfigDir, config.Filename)
	}

	heightLimit := "none"
	if o.HeightLimitSet {
		heightLimit = fmt.Sprintf("%d", o.HeightLimit)
	}

	output.RenderStatus(&output.Status{
		Chain:        o.Chain().String(),
		RPCURL:       o.RPCURL(),
		CookieFile:   cookieFile,
		DataDir:      dataDir,
		IndexPath:    indexPath,
		Wallet:       o.Wallet,
		ConfigSource: configSource,
		FirstHeight:  o.FirstHeight(),
		HeightLimit:  heightLimit,
		IndexSats:    o.IndexSats,
	})

	return nil
}
