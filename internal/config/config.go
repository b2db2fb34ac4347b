// Package config loads optional CLI defaults for the bigword command from
// a TOML file, falling back to built-in defaults when absent.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI's default word width and stringify format.
type Config struct {
	Width     int    `toml:"width"`
	Base      string `toml:"base"`
	Separator string `toml:"separator"`
}

// Default returns the built-in defaults: width 32, decimal base, no separator.
func Default() Config {
	return Config{Width: 32, Base: "dec", Separator: ""}
}

// Load reads a bigword.toml config file at path, overlaying its fields on
// top of Default. A missing file is not an error: Default is returned
// unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
