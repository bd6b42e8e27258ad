package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Berucha/FitStreak/internal/tracker"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultGoal != tracker.DefaultGoal {
		t.Errorf("expected default goal %d, got %d", tracker.DefaultGoal, cfg.DefaultGoal)
	}
	if cfg.HistoryDisplayLimit != 30 {
		t.Errorf("expected history display limit 30, got %d", cfg.HistoryDisplayLimit)
	}
	if cfg.StorePath == "" {
		t.Error("expected a resolved default store path")
	}
	if cfg.NoColor {
		t.Error("expected color enabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")

	content := `
store_path = "/tmp/fitstreak-test.db"
default_goal = 1800
history_display_limit = 10
no_color = true
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StorePath != "/tmp/fitstreak-test.db" {
		t.Errorf("unexpected store path %q", cfg.StorePath)
	}
	if cfg.DefaultGoal != 1800 {
		t.Errorf("expected goal 1800, got %d", cfg.DefaultGoal)
	}
	if cfg.HistoryDisplayLimit != 10 {
		t.Errorf("expected limit 10, got %d", cfg.HistoryDisplayLimit)
	}
	if !cfg.NoColor {
		t.Error("expected no_color true")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
