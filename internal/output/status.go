// Package output contains the terminal rendering for gord commands.
// Commands keep resolution and RPC logic separate from presentation by
// delegating all human-readable output here.
package output

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/gordtool/gord/internal/node"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

// Status is the resolved configuration of one invocation, ready to print.
type Status struct {
	Chain        string
	RPCURL       string
	CookieFile   string
	DataDir      string
	IndexPath    string
	Wallet       string
	ConfigSource string
	FirstHeight  uint64
	HeightLimit  string
	IndexSats    bool
}

// RenderStatus prints the resolved configuration as a two-column table.
func RenderStatus(s *Status) {
	fmt.Println(bold("Resolved configuration"))

	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	tbl := table.New("Setting", "Value")
	tbl.WithHeaderFormatter(headerFmt)

	tbl.AddRow("chain", cyan(s.Chain))
	tbl.AddRow("rpc url", s.RPCURL)
	tbl.AddRow("cookie file", s.CookieFile)
	tbl.AddRow("data dir", s.DataDir)
	tbl.AddRow("index", s.IndexPath)
	tbl.AddRow("wallet", s.Wallet)
	tbl.AddRow("config", s.ConfigSource)
	tbl.AddRow("first inscription height", fmt.Sprintf("%d", s.FirstHeight))
	tbl.AddRow("height limit", s.HeightLimit)
	tbl.AddRow("index sats", fmt.Sprintf("%t", s.IndexSats))

	tbl.Print()
	fmt.Println()
}

// RenderWalletCheck prints the outcome of a successful wallet preflight.
func RenderWalletCheck(wallet string, check *node.WalletCheck) {
	fmt.Printf("%s wallet %q is a gord wallet (%d taproot, %d raw taproot descriptors)\n",
		green("ok:"), wallet, check.TR, check.RawTR)
}
