// Package options holds the effective runtime configuration of a single gord
// invocation and derives the paths, endpoint and chain every command works
// with. An Options value is built once from the command line and never
// mutated afterwards.
package options

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/gordtool/gord/internal/chain"
	"github.com/gordtool/gord/internal/config"
)

const (
	// DefaultWallet is the wallet name used when --wallet is not given.
	DefaultWallet = "ord"

	// CookieFilename is the name of the credential file Dogecoin Core
	// writes into its data directory.
	CookieFilename = ".cookie"
)

// Options is the resolved command line of one invocation. Flag values are
// bound directly into the exported fields; everything derived from them goes
// through the methods below.
type Options struct {
	DogecoinDataDir        string
	ChainArg               chain.Chain
	ConfigPath             string
	ConfigDir              string
	CookiePath             string
	DataDirPath            string
	FirstInscriptionHeight uint64
	FirstHeightSet         bool
	HeightLimit            uint64
	HeightLimitSet         bool
	IndexPath              string
	IndexSats              bool
	Signet                 bool
	Regtest                bool
	Testnet                bool
	RPCEndpoint            string
	Wallet                 string

	// Platform directory lookups, substitutable in tests. Nil means the
	// Dogecoin Core and gord application directory conventions.
	DogecoinBaseDir func() string
	DataBaseDir     func() string
}

// ConfigError reports a configuration the operator has to correct: a missing
// platform directory, a malformed config document, a chain mismatch or an
// unexpected wallet shape.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string { return e.Message }

func (e *ConfigError) Unwrap() error { return e.Err }

// Chain returns the selected network. The boolean shortcut flags win over
// the --chain argument; combining them is rejected at flag parsing, so at
// most one of the shortcuts is ever set here.
func (o *Options) Chain() chain.Chain {
	switch {
	case o.Signet:
		return chain.Signet
	case o.Regtest:
		return chain.Regtest
	case o.Testnet:
		return chain.Testnet
	default:
		return o.ChainArg
	}
}

// FirstHeight returns the height inscription scanning starts at: the
// explicit override if one was given, otherwise the chain default. Regtest
// defaults to zero regardless of the chain table.
func (o *Options) FirstHeight() uint64 {
	if o.FirstHeightSet {
		return o.FirstInscriptionHeight
	}
	if o.Chain() == chain.Regtest {
		return 0
	}
	return o.Chain().FirstInscriptionHeight()
}

// RPCURL returns the node endpoint: the --rpc-url override if given,
// otherwise localhost on the chain's default port, routed to the configured
// wallet.
func (o *Options) RPCURL() string {
	if o.RPCEndpoint != "" {
		return o.RPCEndpoint
	}
	return fmt.Sprintf("127.0.0.1:%d/wallet/%s", o.Chain().DefaultRPCPort(), o.Wallet)
}

// CookieFile returns the path of the RPC credential file: the --cookie-file
// override if given, otherwise the chain-scoped Dogecoin Core data directory
// (either --dogecoin-data-dir or the platform convention) joined with the
// cookie filename.
func (o *Options) CookieFile() (string, error) {
	if o.CookiePath != "" {
		return o.CookiePath, nil
	}

	base := o.DogecoinDataDir
	if base == "" {
		base = o.dogecoinBase()
		if base == "" {
			return "", &ConfigError{Message: "failed to retrieve Dogecoin Core data dir"}
		}
	}

	return filepath.Join(o.Chain().Join(base), CookieFilename), nil
}

// DataDir returns the chain-scoped directory gord keeps its own state in:
// the --data-dir override if given, otherwise the platform's per-user
// application directory for gord.
func (o *Options) DataDir() (string, error) {
	base := o.DataDirPath
	if base == "" {
		base = o.dataBase()
		if base == "" {
			return "", &ConfigError{Message: "failed to retrieve data dir"}
		}
	}

	return o.Chain().Join(base), nil
}

// LoadConfig loads the configuration document. An explicit --config path
// must exist and parse; a --config-dir is consulted only if it contains the
// conventionally named file; otherwise the default empty configuration is
// returned.
func (o *Options) LoadConfig() (config.Config, error) {
	switch {
	case o.ConfigPath != "":
		cfg, err := config.Load(o.ConfigPath)
		if err != nil {
			return config.Config{}, &ConfigError{
				Message: fmt.Sprintf("failed to load config from %s: %v", o.ConfigPath, err),
				Err:     err,
			}
		}
		return cfg, nil
	case o.ConfigDir != "":
		path := filepath.Join(o.ConfigDir, config.Filename)
		if _, err := os.Stat(path); err != nil {
			return config.Config{}, nil
		}
		cfg, err := config.Load(path)
		if err != nil {
			return config.Config{}, &ConfigError{
				Message: fmt.Sprintf("failed to load config from %s: %v", path, err),
				Err:     err,
			}
		}
		return cfg, nil
	default:
		return config.Config{}, nil
	}
}

func (o *Options) dogecoinBase() string {
	if o.DogecoinBaseDir != nil {
		return appDir(o.DogecoinBaseDir())
	}
	return appDir(btcutil.AppDataDir("dogecoin", false))
}

func (o *Options) dataBase() string {
	if o.DataBaseDir != nil {
		return appDir(o.DataBaseDir())
	}
	return appDir(btcutil.AppDataDir("gord", false))
}

// appDir normalizes btcutil.AppDataDir's failure value ("." when no home
// directory can be found) to the empty string.
func appDir(dir string) string {
	if dir == "." {
		return ""
	}
	return dir
}
