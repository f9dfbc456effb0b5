// Package node talks to a Dogecoin Core RPC server. It exposes the handful
// of calls gord issues (chain info, node version, wallet listing and loading,
// descriptor listing) behind a narrow client so commands and tests never
// depend on the full RPC surface.
package node

import (
	"encoding/json"
	"fmt"

	"github.com/gordtool/gord/internal/chain"
	"github.com/gordtool/gord/internal/options"
)

// rawCaller is the slice of the underlying RPC connection the client needs.
// *rpcclient.Client satisfies it; tests substitute a fake.
type rawCaller interface {
	RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	Shutdown()
}

// Client is an opened connection to a Dogecoin Core RPC server, tagged with
// the endpoint and credential path it was built from.
type Client struct {
	raw        rawCaller
	endpoint   string
	cookiePath string
}

// NewClient wraps an established RPC connection. Most callers want Dial
// instead, which also resolves credentials and verifies the chain.
func NewClient(raw rawCaller, endpoint, cookiePath string) *Client {
	return &Client{raw: raw, endpoint: endpoint, cookiePath: cookiePath}
}

// Endpoint returns the RPC endpoint this client is connected to.
func (c *Client) Endpoint() string { return c.endpoint }

// Close shuts the underlying connection down.
func (c *Client) Close() { c.raw.Shutdown() }

// call issues one RPC and unmarshals the result into result, unless result
// is nil.
func (c *Client) call(result any, method string, params ...any) error {
	raw := make([]json.RawMessage, 0, len(params))
	for _, param := range params {
		encoded, err := json.Marshal(param)
		if err != nil {
			return fmt.Errorf("%s: failed to encode parameter: %w", method, err)
		}
		raw = append(raw, encoded)
	}

	response, err := c.raw.RawRequest(method, raw)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(response, result); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", method, err)
	}
	return nil
}

// BlockchainInfo is the subset of getblockchaininfo gord reads.
type BlockchainInfo struct {
	Chain  string `json:"chain"`
	Blocks uint64 `json:"blocks"`
}

// BlockchainInfo fetches the node's reported chain and block count.
func (c *Client) BlockchainInfo() (BlockchainInfo, error) {
	var info BlockchainInfo
	err := c.call(&info, "getblockchaininfo")
	return info, err
}

// NodeVersion fetches the node's version integer from getnetworkinfo.
func (c *Client) NodeVersion() (uint64, error) {
	var info struct {
		Version uint64 `json:"version"`
	}
	err := c.call(&info, "getnetworkinfo")
	return info.Version, err
}

// BlockCount fetches the height of the node's best chain tip.
func (c *Client) BlockCount() (uint64, error) {
	var count uint64
	err := c.call(&count, "getblockcount")
	return count, err
}

// ListWallets returns the names of the wallets currently loaded by the node.
func (c *Client) ListWallets() ([]string, error) {
	var wallets []string
	err := c.call(&wallets, "listwallets")
	return wallets, err
}

// LoadWallet asks the node to load the named wallet.
func (c *Client) LoadWallet(name string) error {
	return c.call(nil, "loadwallet", name)
}

// Descriptor is a single output descriptor as reported by listdescriptors.
// Only the encoded string is read.
type Descriptor struct {
	Desc string `json:"desc"`
}

// ListDescriptors returns the output descriptors of the wallet the endpoint
// is routed to.
func (c *Client) ListDescriptors() ([]Descriptor, error) {
	var result struct {
		Descriptors []Descriptor `json:"descriptors"`
	}
	err := c.call(&result, "listdescriptors")
	return result.Descriptors, err
}

// VerifyChain queries the node's reported chain and fails unless it matches
// the locally selected one. Every client construction runs this check.
func (c *Client) VerifyChain(local chain.Chain) error {
	info, err := c.BlockchainInfo()
	if err != nil {
		return &ConnectError{Endpoint: c.endpoint, CookiePath: c.cookiePath, Err: err}
	}

	remote, err := chain.FromRPC(info.Chain)
	if err != nil {
		return &options.ConfigError{
			Message: fmt.Sprintf("Dogecoin Core RPC server on unknown chain: %s", info.Chain),
		}
	}

	if remote != local {
		return &options.ConfigError{
			Message: fmt.Sprintf("Dogecoin Core RPC server is on %s but gord is on %s", remote, local),
		}
	}

	return nil
}
