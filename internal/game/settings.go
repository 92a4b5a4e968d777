package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the optional tuning file. Everything has a sensible default;
// the game runs fine with no file at all.
type Settings struct {
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	SFXVolume    float64 `yaml:"sfx_volume"`
	StartLives   int     `yaml:"start_lives"`
	StartPapers  int     `yaml:"start_papers"`
	Seed         uint64  `yaml:"seed"` // 0 = random per run
}

func DefaultSettings() Settings {
	return Settings{
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		SFXVolume:    0.8,
		StartLives:   StartLives,
		StartPapers:  StartPapers,
	}
}

// LoadSettings reads the YAML settings file at path. A missing file returns
// the defaults; a malformed file is an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings: %w", err)
	}
	if s.WindowWidth <= 0 {
		s.WindowWidth = WindowWidth
	}
	if s.WindowHeight <= 0 {
		s.WindowHeight = WindowHeight
	}
	s.SFXVolume = clampF(s.SFXVolume, 0, 1)
	if s.StartLives <= 0 {
		s.StartLives = StartLives
	}
	if s.StartPapers <= 0 {
		s.StartPapers = StartPapers
	}
	return s, nil
}
