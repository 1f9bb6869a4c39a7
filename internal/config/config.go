// Package config locates and parses .pls.yml files and compiles the
// node specs they declare.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/pls/internal/types"
)

// ConfigFileName is the per-project configuration file pls looks for.
const ConfigFileName = ".pls.yml"

// defaultSpecs holds the built-in node specs shipped with pls. User
// specs from .pls.yml are matched before these.
//
//go:embed defaults.yml
var defaultSpecs []byte

// Discover walks up from dir looking for a .pls.yml file, checking dir
// itself and at most depth ancestors. It returns the path of the first
// file found.
func Discover(dir string, depth int) (string, bool) {
	current := filepath.Clean(dir)
	for level := 0; level <= depth; level++ {
		candidate := filepath.Join(current, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", false
}

// Parse decodes a .pls.yml document.
func Parse(data []byte) (types.Config, error) {
	var cfg types.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return types.Config{}, fmt.Errorf("%w: %w", ErrParseConfig, err)
	}
	return cfg, nil
}

// Load reads the nearest .pls.yml for dir and compiles its node specs,
// appending the built-in specs after the user's so user entries shadow
// them. A missing config file is not an error; the built-ins still
// apply.
func Load(dir string, depth int) (types.Config, []*Spec, error) {
	var cfg types.Config
	if path, ok := Discover(dir, depth); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return types.Config{}, nil, fmt.Errorf("%w %s: %w", ErrReadConfig, path, err)
		}
		cfg, err = Parse(data)
		if err != nil {
			return types.Config{}, nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	builtin, err := Parse(defaultSpecs)
	if err != nil {
		return types.Config{}, nil, err
	}

	specs, err := CompileSpecs(append(cfg.NodeSpecs, builtin.NodeSpecs...))
	if err != nil {
		return types.Config{}, nil, err
	}
	return cfg, specs, nil
}
