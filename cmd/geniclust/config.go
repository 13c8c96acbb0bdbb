package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// fileConfig holds the settings geniclust.toml may override; every field
// has a zero value that means "use the flag/default instead", so loading
// a config file and then applying flags on top never clobbers an explicit
// flag with a config default.
type fileConfig struct {
	GiniThreshold *float64 `toml:"gini_threshold"`
	NoiseLeaves   *bool    `toml:"noise_leaves"`
	LogLevel      string   `toml:"log_level"`
}

// loadConfig reads a TOML config file. A missing path is not an error: the
// CLI runs fine on flags and defaults alone.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "loading config file %q", path)
	}
	return cfg, nil
}
