package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Practice.Width != nil || cfg.Log.File != nil || cfg.Theme.Correct != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[practice]
width-ratio = 0.5
symbols = " .,"

[log]
file = "/tmp/linetype.log"
level = "info"

[theme]
incorrect = "#FF0000"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Practice.WidthRatio == nil || *cfg.Practice.WidthRatio != 0.5 {
		t.Fatalf("unexpected width ratio: %v", cfg.Practice.WidthRatio)
	}
	if cfg.Practice.Width != nil {
		t.Fatalf("expected width to be unset")
	}
	if cfg.Practice.Symbols == nil || *cfg.Practice.Symbols != " .," {
		t.Fatalf("unexpected symbols: %v", cfg.Practice.Symbols)
	}
	if cfg.Log.File == nil || *cfg.Log.File != "/tmp/linetype.log" {
		t.Fatalf("unexpected log file: %v", cfg.Log.File)
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "info" {
		t.Fatalf("unexpected log level: %v", cfg.Log.Level)
	}
	if cfg.Theme.Incorrect == nil || *cfg.Theme.Incorrect != "#FF0000" {
		t.Fatalf("unexpected theme: %+v", cfg.Theme)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[practice]\nwords = 10\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "practice.words") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[practice\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "linetype", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/state", "linetype", "linetype.log") {
		t.Fatalf("unexpected log path: %s", got)
	}
}
