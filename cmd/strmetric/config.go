package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tamirms/strmetric"
)

// loadCardinalityConfig reads a YAML weights file such as
//
//	lower: 26
//	unicode: 500
//	keep_nul: true
//
// Absent keys keep their defaults. Unknown keys are rejected so that a
// misspelled weight does not silently fall back to the default.
func loadCardinalityConfig(path string) (strmetric.CardinalityConfig, error) {
	var cfg strmetric.CardinalityConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
