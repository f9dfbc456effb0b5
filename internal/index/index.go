// Package index is the boundary between the connection core and the
// inscription indexing engine. It assembles everything the engine needs (a
// chain-verified client, the loaded configuration and the resolved index
// path) and reports how far the index would have to scan.
package index

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/gordtool/gord/internal/config"
	"github.com/gordtool/gord/internal/node"
	"github.com/gordtool/gord/internal/options"
)

// Filename is the index database file created inside the data directory
// when no --index override is given.
const Filename = "index.db"

// Index holds the validated collaborators of one indexing run.
type Index struct {
	Client      *node.Client
	Config      config.Config
	Path        string
	FirstHeight uint64
	HeightLimit uint64
	HasLimit    bool
	IndexSats   bool
}

// Open resolves options into a ready-to-run Index: it loads the config
// document, resolves the index path and dials a chain-verified client. The
// caller must Close the returned Index.
func Open(o *options.Options) (*Index, error) {
	cfg, err := o.LoadConfig()
	if err != nil {
		return nil, err
	}

	path := o.IndexPath
	if path == "" {
		dataDir, err := o.DataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dataDir, Filename)
	}

	client, err := node.Dial(o)
	if err != nil {
		return nil, err
	}

	return &Index{
		Client:      client,
		Config:      cfg,
		Path:        path,
		FirstHeight: o.FirstHeight(),
		HeightLimit: o.HeightLimit,
		HasLimit:    o.HeightLimitSet,
		IndexSats:   o.IndexSats,
	}, nil
}

// IsHidden reports whether an inscription id is suppressed by configuration.
func (i *Index) IsHidden(id string) bool { return i.Config.IsHidden(id) }

// Pending returns how many blocks the index would have to scan, given the
// node's current tip.
func (i *Index) Pending(tip uint64) uint64 {
	target := tip
	if i.HasLimit && i.HeightLimit < target {
		target = i.HeightLimit
	}
	if target <= i.FirstHeight {
		return 0
	}
	return target - i.FirstHeight
}

// Update queries the node's chain tip and reports the block range pending
// for this index. It performs no writes; the scan itself belongs to the
// indexing engine.
func (i *Index) Update() error {
	tip, err := i.Client.BlockCount()
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"index":        i.Path,
		"tip":          tip,
		"first_height": i.FirstHeight,
		"index_sats":   i.IndexSats,
	}).Infof("%d blocks pending", i.Pending(tip))

	return nil
}

// Close releases the node connection.
func (i *Index) Close() { i.Client.Close() }
