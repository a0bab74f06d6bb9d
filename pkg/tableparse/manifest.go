package tableparse

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes one table generation run.
type Manifest struct {
	// Version is the WMO table version label, recorded in log events.
	Version string `yaml:"version"`

	// Package is the Go package name of the generated files.
	// Defaults to "tables".
	Package string `yaml:"package"`

	// Output is the directory the generated files are written to.
	Output string `yaml:"output"`

	Tables ManifestTables `yaml:"tables"`
}

// ManifestTables holds the source file paths, one per table.
type ManifestTables struct {
	B string `yaml:"b"`
	C string `yaml:"c"`
	D string `yaml:"d"`
}

// ParseManifest parses a generation manifest from YAML bytes.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if m.Tables.B == "" || m.Tables.C == "" || m.Tables.D == "" {
		return nil, fmt.Errorf("manifest must name all three table sources (tables.b, tables.c, tables.d)")
	}
	if m.Package == "" {
		m.Package = "tables"
	}
	return &m, nil
}

// LoadManifest loads and parses a generation manifest from a file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseManifest(data)
}
