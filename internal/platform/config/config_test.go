package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"questlog/internal/platform/config"
)

func TestNewUsesDefaultsWithoutFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Evaluation.StreakThreshold != config.DefaultStreakThreshold {
		t.Fatalf("expected default threshold, got %d", cfg.Evaluation.StreakThreshold)
	}
	if cfg.Storage.Driver != "sqlite" || cfg.DBPath != filepath.Join(dir, "questlog.db") {
		t.Fatalf("unexpected storage defaults: %+v %s", cfg.Storage, cfg.DBPath)
	}
	if cfg.Calendar.Timezone != "Local" {
		t.Fatalf("expected local timezone default, got %s", cfg.Calendar.Timezone)
	}
}

func TestNewReadsYAMLAndResolvesPluginPath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	raw := `log:
  level: debug
calendar:
  timezone: UTC
evaluation:
  streak_threshold: 80
coach:
  plugin:
    binary: plugins/coach
    timeout: 3s
`
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Calendar.Timezone != "UTC" || cfg.Evaluation.StreakThreshold != 80 {
		t.Fatalf("unexpected config: %+v", cfg.File)
	}
	if cfg.Coach.Plugin.Binary != filepath.Join(dir, "plugins", "coach") {
		t.Fatalf("expected plugin path resolved against data dir, got %s", cfg.Coach.Plugin.Binary)
	}
	if cfg.Coach.Plugin.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.Coach.Plugin.Timeout)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"threshold":     "evaluation:\n  streak_threshold: 150\n",
		"driver":        "storage:\n  driver: mongo\n",
		"postgres dsn":  "storage:\n  driver: postgres\n",
		"unknown field": "colour: blue\n",
	}
	for name, raw := range cases {
		name, raw := name, raw
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(raw), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := config.New(dir); err == nil {
				t.Fatalf("expected config error")
			}
		})
	}
	if _, err := config.New(""); err == nil {
		t.Fatalf("empty data path should fail")
	}
}
