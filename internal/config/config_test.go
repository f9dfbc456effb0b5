package config

import (
	"os"
	"path/filepath"
	"testing"
)

const inscriptionID = "8d363b28528b0cb86b5fd48615493fb175bdf132d2a3d20b4251bba3f130a5abi0"

func TestLoadHiddenList(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	if err := os.WriteFile(path, []byte("hidden:\n- \""+inscriptionID+"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Hidden) != 1 {
		t.Fatalf("hidden set size = %d, want 1", len(cfg.Hidden))
	}
	if !cfg.IsHidden(inscriptionID) {
		t.Errorf("IsHidden(%q) = false, want true", inscriptionID)
	}
	if cfg.IsHidden("other") {
		t.Error("IsHidden(other) = true, want false")
	}
}

func TestLoadDeduplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	doc := "hidden:\n- \"" + inscriptionID + "\"\n- \"" + inscriptionID + "\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Hidden) != 1 {
		t.Errorf("hidden set size = %d, want 1", len(cfg.Hidden))
	}
}

func TestLoadEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Hidden) != 0 {
		t.Errorf("hidden set size = %d, want 0", len(cfg.Hidden))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), Filename)); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	if err := os.WriteFile(path, []byte("hidden: {not: [a, list"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed document")
	}
}

func TestZeroValueHidesNothing(t *testing.T) {
	var cfg Config
	if cfg.IsHidden(inscriptionID) {
		t.Error("zero-value config should hide nothing")
	}
}
