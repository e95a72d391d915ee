package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	FileName                = "config.yaml"
	DefaultStreakThreshold  = 50
	DefaultCoachCallTimeout = 10 * time.Second
)

type LogConfig struct {
	Level string `yaml:"level"`
}

type CalendarConfig struct {
	// Timezone is an IANA zone name or "Local".
	Timezone string `yaml:"timezone"`
}

type EvaluationConfig struct {
	StreakThreshold int `yaml:"streak_threshold"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn,omitempty"`
}

type CoachPluginConfig struct {
	Binary  string        `yaml:"binary,omitempty"`
	SHA256  string        `yaml:"sha256,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

type CoachConfig struct {
	Plugin CoachPluginConfig `yaml:"plugin"`
}

// File models <data>/config.yaml.
type File struct {
	Log        LogConfig        `yaml:"log"`
	Calendar   CalendarConfig   `yaml:"calendar"`
	Evaluation EvaluationConfig `yaml:"evaluation"`
	Storage    StorageConfig    `yaml:"storage"`
	Coach      CoachConfig      `yaml:"coach"`
}

type Config struct {
	DataPath   string
	DBPath     string
	ConfigPath string
	File
}

func Defaults() File {
	return File{
		Log:        LogConfig{Level: "warn"},
		Calendar:   CalendarConfig{Timezone: "Local"},
		Evaluation: EvaluationConfig{StreakThreshold: DefaultStreakThreshold},
		Storage:    StorageConfig{Driver: "sqlite"},
		Coach:      CoachConfig{Plugin: CoachPluginConfig{Timeout: DefaultCoachCallTimeout}},
	}
}

func New(dataPath string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	cfg := Config{
		DataPath:   dataPath,
		DBPath:     filepath.Join(dataPath, "questlog.db"),
		ConfigPath: filepath.Join(dataPath, FileName),
		File:       Defaults(),
	}
	raw, err := os.ReadFile(cfg.ConfigPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg.File); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode %s: %w", cfg.ConfigPath, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Evaluation.StreakThreshold < 0 || c.Evaluation.StreakThreshold > 100 {
		return fmt.Errorf("evaluation.streak_threshold must be within 0..100, got %d", c.Evaluation.StreakThreshold)
	}
	switch c.Storage.Driver {
	case "", "sqlite":
		c.Storage.Driver = "sqlite"
	case "postgres":
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported storage.driver %q", c.Storage.Driver)
	}
	if c.Coach.Plugin.Timeout <= 0 {
		c.Coach.Plugin.Timeout = DefaultCoachCallTimeout
	}
	if c.Coach.Plugin.Binary != "" && !filepath.IsAbs(c.Coach.Plugin.Binary) {
		c.Coach.Plugin.Binary = filepath.Clean(filepath.Join(c.DataPath, c.Coach.Plugin.Binary))
	}
	return nil
}
