package cliconfig

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/bft-labs/wallcycle/internal/adapters/swww"
	"github.com/bft-labs/wallcycle/internal/domain"
)

// Flag names, shared by the CLI and the precedence rules of file/env config.
const (
	FlagImagePaths         = "image-paths"
	FlagInterval           = "interval-in-secs"
	FlagTransitionType     = "transition-type"
	FlagTransitionDuration = "transition-duration-secs"
	FlagTriggerFile        = "trigger-file"
	FlagSwwwBin            = "swww-bin"
	FlagLogLevel           = "log-level"
	FlagOnce               = "once"
)

// Config holds CLI configuration for wallcycle.
type Config struct {
	ImagePaths []string

	Interval               time.Duration
	TransitionType         string
	TransitionDurationSecs int

	TriggerFile string
	SwwwBin     string
	LogLevel    string
	Once        bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Interval:               domain.DefaultInterval,
		TransitionType:         domain.DefaultTransitionType,
		TransitionDurationSecs: domain.DefaultTransitionDurationSecs,
		SwwwBin:                swww.DefaultBinary,
		LogLevel:               zerolog.LevelInfoValue,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
// Every problem is reported, not just the first one.
func (c *Config) Validate() error {
	var result *multierror.Error

	if len(c.ImagePaths) == 0 {
		result = multierror.Append(result, fmt.Errorf("%s is required", FlagImagePaths))
	}
	for i, p := range c.ImagePaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("resolve image path %q: %w", p, err))
			continue
		}
		c.ImagePaths[i] = abs
	}

	if c.Interval <= 0 {
		result = multierror.Append(result, fmt.Errorf("interval must be positive"))
	}
	if c.TransitionType == "" {
		result = multierror.Append(result, fmt.Errorf("%s must not be empty", FlagTransitionType))
	}
	if c.TransitionDurationSecs < 0 {
		result = multierror.Append(result, fmt.Errorf("%s must not be negative", FlagTransitionDuration))
	}

	if c.SwwwBin == "" {
		c.SwwwBin = swww.DefaultBinary
	}
	if c.LogLevel == "" {
		c.LogLevel = zerolog.LevelInfoValue
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("%s: %w", FlagLogLevel, err))
	}

	if c.TriggerFile != "" {
		abs, err := filepath.Abs(c.TriggerFile)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("resolve trigger file %q: %w", c.TriggerFile, err))
		} else {
			c.TriggerFile = abs
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return nil
}

// RotationConfig returns the parameters of the rotation loop.
func (c Config) RotationConfig() domain.RotationConfig {
	return domain.RotationConfig{
		Interval: c.Interval,
		Transition: domain.Transition{
			Type:         c.TransitionType,
			DurationSecs: c.TransitionDurationSecs,
		},
		Once: c.Once,
	}
}

// ParseInterval accepts a plain number of seconds ("3600") or a Go
// duration ("1h", "90s").
func ParseInterval(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if secs, err := strconv.Atoi(value); err == nil {
		return SecondsToInterval(secs)
	}
	return time.ParseDuration(value)
}

// maxIntervalSecs is the largest whole-second interval a time.Duration holds.
const maxIntervalSecs = math.MaxInt64 / int64(time.Second)

// SecondsToInterval converts whole seconds to an interval, rejecting values
// that would overflow time.Duration.
func SecondsToInterval(secs int) (time.Duration, error) {
	if int64(secs) > maxIntervalSecs {
		return 0, fmt.Errorf("%w: %s %d exceeds %d", domain.ErrInvalidConfig, FlagInterval, secs, maxIntervalSecs)
	}
	return time.Duration(secs) * time.Second, nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings replaces a list if the new one is not empty and flag not changed.
func (s *configSetter) setStrings(flag string, values []string, dst *[]string) {
	if len(values) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), values...)
}

// setInt sets an int value if present, not negative and flag not changed.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || *value < 0 || s.changed[flag] {
		return
	}
	*dst = *value
}

// setInterval parses and sets an interval if valid and flag not changed.
func (s *configSetter) setInterval(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := ParseInterval(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i < 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
