package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if cfg.Quiz.ChapterTimerSeconds != 30 || cfg.Quiz.DailyTimerSeconds != 20 {
		t.Errorf("timer defaults = %d/%d, want 30/20",
			cfg.Quiz.ChapterTimerSeconds, cfg.Quiz.DailyTimerSeconds)
	}
	if cfg.Quiz.DailyQuestionCount != 5 {
		t.Errorf("daily question count = %d, want 5", cfg.Quiz.DailyQuestionCount)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "quiz:\n  chapterTimerSeconds: 45\ndatabase:\n  path: /tmp/owl.db\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Quiz.ChapterTimerSeconds != 45 {
		t.Errorf("ChapterTimerSeconds = %d, want 45", cfg.Quiz.ChapterTimerSeconds)
	}
	if cfg.Quiz.DailyTimerSeconds != 20 {
		t.Errorf("untouched DailyTimerSeconds = %d, want default 20", cfg.Quiz.DailyTimerSeconds)
	}
	if cfg.Database.Path != "/tmp/owl.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("quiz: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load malformed YAML succeeded, want error")
	}
}

func TestLoadZeroValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "quiz:\n  dailyTimerSeconds: 0\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Quiz.DailyTimerSeconds != 20 {
		t.Errorf("zero timer = %d, want fallback 20", cfg.Quiz.DailyTimerSeconds)
	}
}
