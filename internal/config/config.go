package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the optional user-tunable settings. Every field has a
// sensible default; a missing config file is not an error.
type Config struct {
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Quiz struct {
		ChapterTimerSeconds int `yaml:"chapterTimerSeconds"`
		DailyTimerSeconds   int `yaml:"dailyTimerSeconds"`
		DailyQuestionCount  int `yaml:"dailyQuestionCount"`
	} `yaml:"quiz"`
}

// Default returns the built-in settings.
func Default() Config {
	cfg := Config{}
	cfg.Quiz.ChapterTimerSeconds = 30
	cfg.Quiz.DailyTimerSeconds = 20
	cfg.Quiz.DailyQuestionCount = 5
	return cfg
}

// Load reads YAML config from path, layered over the defaults. A missing
// file returns the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Quiz.ChapterTimerSeconds <= 0 {
		cfg.Quiz.ChapterTimerSeconds = 30
	}
	if cfg.Quiz.DailyTimerSeconds <= 0 {
		cfg.Quiz.DailyTimerSeconds = 20
	}
	if cfg.Quiz.DailyQuestionCount <= 0 {
		cfg.Quiz.DailyQuestionCount = 5
	}
	return cfg, nil
}

// DefaultPath returns the config file location, honoring OWLERY_CONFIG
// and XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	if p := os.Getenv("OWLERY_CONFIG"); p != "" {
		return p, nil
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "owlery", "config.yaml"), nil
}
