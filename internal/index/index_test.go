package index

import (
	"encoding/json"
	"testing"

	"github.com/gordtool/gord/internal/config"
	"github.com/gordtool/gord/internal/node"
)

type fakeNode struct {
	blocks uint64
}

func (f *fakeNode) RawRequest(method string, params []json.RawMessage) (json.RawMessage, error) {
	return json.Marshal(f.blocks)
}

func (f *fakeNode) Shutdown() {}

func TestPending(t *testing.T) {
	tests := []struct {
		name  string
		index Index
		tip   uint64
		want  uint64
	}{
		{"from_genesis", Index{}, 100, 100},
		{"first_height_subtracted", Index{FirstHeight: 40}, 100, 60},
		{"tip_below_first_height", Index{FirstHeight: 200}, 100, 0},
		{"height_limit_caps_target", Index{HasLimit: true, HeightLimit: 50}, 100, 50},
		{"limit_above_tip_ignored", Index{HasLimit: true, HeightLimit: 500}, 100, 100},
		{"limit_below_first_height", Index{FirstHeight: 80, HasLimit: true, HeightLimit: 50}, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.index.Pending(tt.tip); got != tt.want {
				t.Errorf("Pending(%d) = %d, want %d", tt.tip, got, tt.want)
			}
		})
	}
}

func TestUpdateReadsTipFromNode(t *testing.T) {
	idx := &Index{
		Client: node.NewClient(&fakeNode{blocks: 4610000}, "127.0.0.1:22555", "/tmp/.cookie"),
		Path:   "index.db",
	}

	if err := idx.Update(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIsHidden(t *testing.T) {
	idx := &Index{Config: config.Config{Hidden: config.IDSet{"abc": {}}}}
	if !idx.IsHidden("abc") {
		t.Error("IsHidden(abc) = false, want true")
	}
	if idx.IsHidden("def") {
		t.Error("IsHidden(def) = true, want false")
	}
}
