package cliconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	five, zero := 5, 0

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				ImagePaths:             []string{"/a", "/b"},
				Interval:               "30m",
				TransitionType:         "fade",
				TransitionDurationSecs: &five,
				TriggerFile:            "/run/next",
				SwwwBin:                "/opt/swww",
				LogLevel:               "debug",
				Once:                   &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				ImagePaths:             []string{"/a", "/b"},
				Interval:               30 * time.Minute,
				TransitionType:         "fade",
				TransitionDurationSecs: 5,
				TriggerFile:            "/run/next",
				SwwwBin:                "/opt/swww",
				LogLevel:               "debug",
				Once:                   true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				ImagePaths:     []string{"/from/file"},
				TransitionType: "wipe",
				Interval:       "10",
			},
			changed: map[string]bool{FlagImagePaths: true, FlagInterval: true},
			initial: Config{
				ImagePaths: []string{"/from/flag"},
				Interval:   time.Minute,
			},
			expected: Config{
				ImagePaths:     []string{"/from/flag"},
				Interval:       time.Minute,
				TransitionType: "wipe",
			},
		},
		{
			name:       "zero transition duration is applied",
			fileConfig: FileConfig{TransitionDurationSecs: &zero},
			changed:    map[string]bool{},
			initial:    Config{TransitionDurationSecs: 3},
			expected:   Config{TransitionDurationSecs: 0},
		},
		{
			name:       "interval as plain seconds",
			fileConfig: FileConfig{Interval: "120"},
			changed:    map[string]bool{},
			expected:   Config{Interval: 2 * time.Minute},
		},
		{
			name:       "empty values keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name:       "returns error for invalid interval",
			fileConfig: FileConfig{Interval: "not-a-duration"},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyFileConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(cfg, tt.expected) {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
image_paths = ["/home/me/Pictures/walls", "/srv/shared/walls"]
interval = "15m"
transition_type = "grow"
transition_duration_secs = 2
trigger_file = "/tmp/wallcycle-next"
once = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if !reflect.DeepEqual(fc.ImagePaths, []string{"/home/me/Pictures/walls", "/srv/shared/walls"}) {
		t.Errorf("ImagePaths = %v", fc.ImagePaths)
	}
	if fc.Interval != "15m" || fc.TransitionType != "grow" || fc.TransitionDurationSecs == nil || *fc.TransitionDurationSecs != 2 {
		t.Errorf("unexpected values: %+v", fc)
	}
	if fc.TriggerFile != "/tmp/wallcycle-next" {
		t.Errorf("TriggerFile = %q", fc.TriggerFile)
	}
	if fc.Once == nil || !*fc.Once {
		t.Errorf("Once = %v, want true", fc.Once)
	}
}

func TestLoadFileConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `image_paths:
  - /home/me/Pictures/walls
interval: "3600"
transition_type: outer
log_level: warn
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if !reflect.DeepEqual(fc.ImagePaths, []string{"/home/me/Pictures/walls"}) {
		t.Errorf("ImagePaths = %v", fc.ImagePaths)
	}
	if fc.Interval != "3600" || fc.TransitionType != "outer" || fc.LogLevel != "warn" {
		t.Errorf("unexpected values: %+v", fc)
	}
	if fc.Once != nil {
		t.Errorf("Once = %v, want nil when absent", *fc.Once)
	}
}

func TestLoadFileConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFileConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadFileConfig(missing) error = nil, want error")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("image_paths = [unterminated"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFileConfig(bad); err == nil {
		t.Error("LoadFileConfig(bad toml) error = nil, want error")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if !FileExists(path) {
		t.Error("FileExists(present) = false")
	}
	if FileExists(filepath.Join(dir, "absent")) {
		t.Error("FileExists(absent) = true")
	}
}
