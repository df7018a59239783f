package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
// YAML files use the same keys.
type FileConfig struct {
	ImagePaths             []string `toml:"image_paths" yaml:"image_paths"`
	Interval               string   `toml:"interval" yaml:"interval"`
	TransitionType         string   `toml:"transition_type" yaml:"transition_type"`
	TransitionDurationSecs *int     `toml:"transition_duration_secs" yaml:"transition_duration_secs"`
	TriggerFile            string   `toml:"trigger_file" yaml:"trigger_file"`
	SwwwBin                string   `toml:"swww_bin" yaml:"swww_bin"`
	LogLevel               string   `toml:"log_level" yaml:"log_level"`
	Once                   *bool    `toml:"once" yaml:"once"`
}

// LoadFileConfig reads and parses a config file from the given path.
// Files ending in .yaml or .yml are parsed as YAML, anything else as TOML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse toml %s: %w", path, err)
		}
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.wallcycle/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".wallcycle", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setStrings(FlagImagePaths, fc.ImagePaths, &cfg.ImagePaths)
	s.setString(FlagTransitionType, fc.TransitionType, &cfg.TransitionType)
	s.setString(FlagTriggerFile, fc.TriggerFile, &cfg.TriggerFile)
	s.setString(FlagSwwwBin, fc.SwwwBin, &cfg.SwwwBin)
	s.setString(FlagLogLevel, fc.LogLevel, &cfg.LogLevel)

	if err := s.setInterval(FlagInterval, fc.Interval, &cfg.Interval); err != nil {
		return err
	}

	s.setInt(FlagTransitionDuration, fc.TransitionDurationSecs, &cfg.TransitionDurationSecs)
	s.setBool(FlagOnce, fc.Once, &cfg.Once)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
