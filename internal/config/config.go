// Package config loads gord's optional YAML configuration document.
//
// The document currently recognizes a single key, "hidden": a list of
// inscription ids that should be suppressed from normal operation. A missing
// document (or a document without the key) is equivalent to an empty set; a
// document that exists but cannot be parsed is a hard error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Filename is the conventional name of the config document inside a
// directory passed via --config-dir.
const Filename = "gord.yaml"

// IDSet is an unordered set of opaque inscription id strings. It unmarshals
// from a YAML sequence, deduplicating entries.
type IDSet map[string]struct{}

// UnmarshalYAML decodes a YAML sequence of strings into the set.
func (s *IDSet) UnmarshalYAML(value *yaml.Node) error {
	var ids []string
	if err := value.Decode(&ids); err != nil {
		return err
	}
	*s = make(IDSet, len(ids))
	for _, id := range ids {
		(*s)[id] = struct{}{}
	}
	return nil
}

// Contains reports whether id is in the set. A nil set contains nothing.
func (s IDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Config is the persisted configuration document. The zero value is the
// default configuration: nothing hidden.
type Config struct {
	Hidden IDSet `yaml:"hidden"`
}

// IsHidden reports whether the given inscription id is configured as hidden.
func (c Config) IsHidden(id string) bool {
	return c.Hidden.Contains(id)
}

// Load reads and parses the config document at path. Unlike an absent
// document, a present but unreadable or malformed one is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
