// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Log      LogConfig      `toml:"log"`
	Theme    ThemeConfig    `toml:"theme"`
}

// PracticeConfig maps layout and input settings.
type PracticeConfig struct {
	WidthRatio *float64 `toml:"width-ratio"`
	Width      *int     `toml:"width"`
	Symbols    *string  `toml:"symbols"`
}

// LogConfig maps diagnostic log settings.
type LogConfig struct {
	File  *string `toml:"file"`
	Level *string `toml:"level"`
}

// ThemeConfig maps cell colors.
type ThemeConfig struct {
	Correct   *string `toml:"correct"`
	Incorrect *string `toml:"incorrect"`
	Untyped   *string `toml:"untyped"`
	Next      *string `toml:"next"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
