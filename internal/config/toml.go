// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Quiz   QuizConfig   `toml:"quiz"`
	Speech SpeechConfig `toml:"speech"`
}

// QuizConfig maps quiz-related settings. Pointer fields distinguish "unset"
// from a zero value so CLI flags can override only what the user set.
type QuizConfig struct {
	Mode          *string  `toml:"mode"`
	Count         *int     `toml:"count"`
	Order         *string  `toml:"order"`
	SentenceRatio *float64 `toml:"sentence-ratio"`
}

// SpeechConfig maps pronunciation playback settings.
type SpeechConfig struct {
	Player *string `toml:"player"`
	Lang   *string `toml:"lang"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
