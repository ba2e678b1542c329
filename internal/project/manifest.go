// Package project locates and parses the wire.toml project manifest: the
// [package] identity section, [emit] options for wire-DSP output, and
// [transpile] options for the ingestion pipeline.
package project

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// EmitConfig is the [emit] section.
type EmitConfig struct {
	Pretty      bool     `toml:"pretty"`
	ExtractCSE  bool     `toml:"extract_cse"`
	IndentWidth int      `toml:"indent_width"`
	Imports     []string `toml:"imports"`
}

// TranspileConfig is the [transpile] section.
type TranspileConfig struct {
	MaxDiagnostics int  `toml:"max_diagnostics"`
	Jobs           int  `toml:"jobs"`
	Cache          bool `toml:"cache"`
}

// Manifest is a parsed wire.toml.
type Manifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Emit      EmitConfig      `toml:"emit"`
	Transpile TranspileConfig `toml:"transpile"`
}

// DefaultManifest returns the configuration used when no wire.toml exists.
func DefaultManifest() Manifest {
	var m Manifest
	m.Emit.IndentWidth = 4
	m.Transpile.MaxDiagnostics = 256
	return m
}

// LoadManifest parses a wire.toml file, filling unset fields with defaults.
func LoadManifest(path string) (Manifest, error) {
	m := DefaultManifest()
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("package", "name") {
		m.Package.Name = strings.TrimSpace(m.Package.Name)
	}
	if m.Emit.IndentWidth <= 0 {
		m.Emit.IndentWidth = 4
	}
	if m.Transpile.MaxDiagnostics <= 0 {
		m.Transpile.MaxDiagnostics = 256
	}
	return m, nil
}

// ResolveManifest walks up from startDir, loading wire.toml when present and
// falling back to defaults otherwise.
func ResolveManifest(startDir string) (Manifest, string, error) {
	path, ok, err := FindWireToml(startDir)
	if err != nil {
		return Manifest{}, "", err
	}
	if !ok {
		return DefaultManifest(), "", nil
	}
	m, err := LoadManifest(path)
	if err != nil {
		return Manifest{}, "", err
	}
	return m, path, nil
}
