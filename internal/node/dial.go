package node

import (
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btcd/rpcclient"
	log "github.com/sirupsen/logrus"

	"github.com/gordtool/gord/internal/options"
)

// Dial resolves the credential file and endpoint from the options, opens an
// authenticated connection and verifies the node is on the selected chain.
// The caller owns the returned client for the duration of one command.
func Dial(o *options.Options) (*Client, error) {
	cookiePath, err := o.CookieFile()
	if err != nil {
		return nil, err
	}

	endpoint := o.RPCURL()

	log.Infof("connecting to Dogecoin Core RPC server at %s using credentials from %s", endpoint, cookiePath)

	user, pass, err := readCookie(cookiePath)
	if err != nil {
		return nil, &ConnectError{Endpoint: endpoint, CookiePath: cookiePath, Err: err}
	}

	raw, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         endpoint,
		User:         user,
		Pass:         pass,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
	if err != nil {
		return nil, &ConnectError{Endpoint: endpoint, CookiePath: cookiePath, Err: err}
	}

	client := NewClient(raw, endpoint, cookiePath)

	if err := client.VerifyChain(o.Chain()); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

// DialWallet is Dial followed by the wallet preflight. create indicates the
// command is about to create the wallet, which skips the shape checks.
func DialWallet(o *options.Options, create bool) (*Client, error) {
	client, err := Dial(o)
	if err != nil {
		return nil, err
	}

	if _, err := client.PreflightWallet(o.Wallet, create); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

// readCookie reads a single-line "username:password" credential file. The
// contents are returned to the transport layer and never logged.
func readCookie(path string) (user, pass string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	line := strings.TrimRight(string(data), "\r\n")
	user, pass, found := strings.Cut(line, ":")
	if !found {
		return "", "", fmt.Errorf("invalid cookie file %s", path)
	}

	return user, pass, nil
}
