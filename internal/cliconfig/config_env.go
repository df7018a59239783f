package cliconfig

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "WALLCYCLE_"

// LoadEnvFile loads KEY=value pairs from a dotenv file into the process
// environment. Variables that are already set are left untouched.
func LoadEnvFile(path string) error {
	return godotenv.Load(path)
}

// ApplyEnvConfig applies configuration from environment variables (WALLCYCLE_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setStrings(FlagImagePaths, splitPathList(os.Getenv(EnvPrefix+"IMAGE_PATHS")), &cfg.ImagePaths)
	s.setString(FlagTransitionType, os.Getenv(EnvPrefix+"TRANSITION_TYPE"), &cfg.TransitionType)
	s.setString(FlagTriggerFile, os.Getenv(EnvPrefix+"TRIGGER_FILE"), &cfg.TriggerFile)
	s.setString(FlagSwwwBin, os.Getenv(EnvPrefix+"SWWW_BIN"), &cfg.SwwwBin)
	s.setString(FlagLogLevel, os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setInterval(FlagInterval, os.Getenv(EnvPrefix+"INTERVAL"), &cfg.Interval); err != nil {
		return err
	}
	if err := s.setIntFromString(FlagTransitionDuration, os.Getenv(EnvPrefix+"TRANSITION_DURATION_SECS"), &cfg.TransitionDurationSecs); err != nil {
		return err
	}

	s.setBoolFromString(FlagOnce, os.Getenv(EnvPrefix+"ONCE"), &cfg.Once)

	return nil
}

// splitPathList splits a PATH-style list, dropping empty elements.
func splitPathList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, p := range filepath.SplitList(value) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
