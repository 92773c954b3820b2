// Package config loads the seed data the demo binary starts its cache with.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

/*
LoadSeed reads a YAML mapping of keys to values.

	greeting: hello
	answer: 42
	enabled: true

An empty path returns an empty seed. Parsing into map[string]any keeps keys
as strings whatever they look like in the file.
*/
func LoadSeed(path string) (map[string]any, error) {
	seed := map[string]any{}
	if path == "" {
		return seed, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if seed == nil {
		seed = map[string]any{}
	}
	return seed, nil
}
