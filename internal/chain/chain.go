// Package chain defines the Dogecoin networks gord can operate on and the
// per-network constants derived from them: default RPC ports, data directory
// layout and the first block that can carry an inscription.
package chain

import (
	"fmt"
	"path/filepath"
)

// Chain identifies one of the mutually exclusive Dogecoin networks.
type Chain int

const (
	Mainnet Chain = iota
	Testnet
	Signet
	Regtest
)

// String returns the canonical chain name, matching the spelling used in
// error messages and the --chain flag.
func (c Chain) String() string {
	switch c {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	case Signet:
		return "signet"
	case Regtest:
		return "regtest"
	default:
		return fmt.Sprintf("chain(%d)", int(c))
	}
}

// Parse converts a --chain flag value into a Chain. The short aliases "main"
// and "test" are accepted alongside the canonical names.
func Parse(name string) (Chain, error) {
	switch name {
	case "main", "mainnet":
		return Mainnet, nil
	case "test", "testnet":
		return Testnet, nil
	case "signet":
		return Signet, nil
	case "regtest":
		return Regtest, nil
	default:
		return 0, fmt.Errorf("invalid chain %q (expected mainnet, testnet, signet or regtest)", name)
	}
}

// FromRPC maps the chain name reported by getblockchaininfo to a Chain.
// Dogecoin Core reports "main" and "test", not the canonical names.
func FromRPC(name string) (Chain, error) {
	switch name {
	case "main":
		return Mainnet, nil
	case "test":
		return Testnet, nil
	case "signet":
		return Signet, nil
	case "regtest":
		return Regtest, nil
	default:
		return 0, fmt.Errorf("unknown chain %q", name)
	}
}

// DefaultRPCPort returns the port Dogecoin Core listens on by default for
// this network.
func (c Chain) DefaultRPCPort() int {
	switch c {
	case Mainnet:
		return 22555
	case Testnet:
		return 44555
	case Signet:
		return 38332
	default:
		return 18332
	}
}

// FirstInscriptionHeight returns the first block height worth scanning for
// inscriptions on this network. Earlier blocks cannot contain any.
func (c Chain) FirstInscriptionHeight() uint64 {
	if c == Mainnet {
		return 4609723
	}
	return 0
}

// Join applies the network's data directory layout to base. Mainnet state
// lives directly in the base directory; every other network keeps its state
// in a named subdirectory. Note the testnet directory is "testnet3".
func (c Chain) Join(base string) string {
	switch c {
	case Mainnet:
		return base
	case Testnet:
		return filepath.Join(base, "testnet3")
	default:
		return filepath.Join(base, c.String())
	}
}
