// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Editor EditorConfig `toml:"editor"`
	Stats  StatsConfig  `toml:"stats"`
}

// EditorConfig maps editor-related settings.
type EditorConfig struct {
	Limit      *string `toml:"limit"`
	LimitValue *int    `toml:"limit-value"`
	WPM        *int    `toml:"wpm"`
}

// StatsConfig maps statistics-related settings.
type StatsConfig struct {
	TopWords  *int    `toml:"top-words"`
	WPM       *int    `toml:"wpm"`
	StopWords *string `toml:"stopwords"`
	Window    *int    `toml:"window"`
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
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
