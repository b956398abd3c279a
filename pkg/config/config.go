// Package config loads host-level defaults for tannenbaum.
//
// Configuration is an optional TOML file resolved via the XDG standard
// ($XDG_CONFIG_HOME/tannenbaum/config.toml, falling back to
// ~/.config/tannenbaum/config.toml). A missing file yields the built-in
// defaults; a malformed file is an INVALID_CONFIG error. Command-line
// flags override config values, which override the built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tannenbaum/pkg/errors"
	"github.com/matzehuels/tannenbaum/pkg/tree/styles"
)

// appName is the application name used for config directories.
const appName = "tannenbaum"

// DefaultHeight is the built-in default tree height.
const DefaultHeight = 10

// Config holds host-level render defaults.
type Config struct {
	Height int    `toml:"height"` // default tree height
	Branch string `toml:"branch"` // branch rune as a string
	Trunk  string `toml:"trunk"`  // trunk rune as a string
	Style  string `toml:"style"`  // display style name
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Height: DefaultHeight,
		Branch: "*",
		Trunk:  "|",
		Style:  styles.NamePlain,
	}
}

// Load reads the config file at path and merges it over the defaults.
// An empty path resolves via Dir. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		dir, err := Dir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config %s", path)
	}

	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Dir returns the config directory using the XDG standard
// (~/.config/tannenbaum/).
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// BranchRune returns the configured branch rune.
func (c Config) BranchRune() rune { return firstRune(c.Branch, '*') }

// TrunkRune returns the configured trunk rune.
func (c Config) TrunkRune() rune { return firstRune(c.Trunk, '|') }

func (c Config) validate() error {
	if err := errors.ValidateHeight(c.Height); err != nil {
		return err
	}
	if err := errors.ValidateFillRune(c.BranchRune()); err != nil {
		return err
	}
	if err := errors.ValidateFillRune(c.TrunkRune()); err != nil {
		return err
	}
	if _, err := styles.For(c.Style); err != nil {
		return err
	}
	return nil
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
