package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config must not error: %v", err)
	}
	if cfg.Quiz.Mode != nil || cfg.Speech.Player != nil {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[quiz]
mode = "spelling"
count = 20
sentence-ratio = 0.85

[speech]
player = "mpv --no-video"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Quiz.Mode == nil || *cfg.Quiz.Mode != "spelling" {
		t.Fatalf("unexpected mode: %+v", cfg.Quiz.Mode)
	}
	if cfg.Quiz.Count == nil || *cfg.Quiz.Count != 20 {
		t.Fatalf("unexpected count: %+v", cfg.Quiz.Count)
	}
	if cfg.Quiz.SentenceRatio == nil || *cfg.Quiz.SentenceRatio != 0.85 {
		t.Fatalf("unexpected ratio: %+v", cfg.Quiz.SentenceRatio)
	}
	if cfg.Quiz.Order != nil {
		t.Fatalf("order must stay unset, got %v", *cfg.Quiz.Order)
	}
	if cfg.Speech.Player == nil || *cfg.Speech.Player != "mpv --no-video" {
		t.Fatalf("unexpected player: %+v", cfg.Speech.Player)
	}
}

func TestLoadConfigRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}
