package node

import (
	"fmt"
	"strings"

	"github.com/gordtool/gord/internal/options"
)

// MinNodeVersion is the oldest Dogecoin Core version gord's wallet commands
// support. Older nodes lack the descriptor wallet RPCs.
const MinNodeVersion = 1140600

// FormatNodeVersion renders Dogecoin Core's version integer in its dotted
// four-part notation, e.g. 1140600 -> "1.14.6.0".
func FormatNodeVersion(version uint64) string {
	return fmt.Sprintf(
		"%d.%d.%d.%d",
		version/1000000,
		version%1000000/10000,
		version%10000/100,
		version%100,
	)
}

// WalletCheck summarizes the descriptor shape found during preflight.
type WalletCheck struct {
	TR    int
	RawTR int
	Total int
}

// PreflightWallet validates the node and wallet before a wallet command
// runs: the node must meet MinNodeVersion, the wallet must be loaded (it is
// loaded on demand if not), and its descriptors must have the shape gord
// creates: exactly two tr() descriptors plus any number of rawtr() ones.
// When create is true the command is about to create the wallet, so
// everything past the version gate is skipped.
func (c *Client) PreflightWallet(wallet string, create bool) (*WalletCheck, error) {
	version, err := c.NodeVersion()
	if err != nil {
		return nil, &ConnectError{Endpoint: c.endpoint, CookiePath: c.cookiePath, Err: err}
	}
	if version < MinNodeVersion {
		return nil, &VersionError{
			Required: FormatNodeVersion(MinNodeVersion),
			Actual:   FormatNodeVersion(version),
		}
	}

	if create {
		return &WalletCheck{}, nil
	}

	wallets, err := c.ListWallets()
	if err != nil {
		return nil, &ConnectError{Endpoint: c.endpoint, CookiePath: c.cookiePath, Err: err}
	}
	if !contains(wallets, wallet) {
		if err := c.LoadWallet(wallet); err != nil {
			return nil, &ConnectError{Endpoint: c.endpoint, CookiePath: c.cookiePath, Err: err}
		}
	}

	descriptors, err := c.ListDescriptors()
	if err != nil {
		return nil, &ConnectError{Endpoint: c.endpoint, CookiePath: c.cookiePath, Err: err}
	}

	check := &WalletCheck{Total: len(descriptors)}
	for _, descriptor := range descriptors {
		switch {
		case strings.HasPrefix(descriptor.Desc, "tr("):
			check.TR++
		case strings.HasPrefix(descriptor.Desc, "rawtr("):
			check.RawTR++
		}
	}

	if check.TR != 2 || check.Total != 2+check.RawTR {
		return nil, &options.ConfigError{
			Message: fmt.Sprintf(
				"wallet %q contains unexpected output descriptors, and does not appear to be a gord wallet, create a new wallet with `gord wallet create`",
				wallet,
			),
		}
	}

	return check, nil
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
