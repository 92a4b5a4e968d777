package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileGivesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultSettings(), s)
}

func TestLoadSettingsEmptyPathGivesDefaults(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	require.Equal(t, DefaultSettings(), s)
}

func TestLoadSettingsReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window_width: 1920\nstart_papers: 50\nsfx_volume: 0.5\nseed: 7\n"), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	require.Equal(t, 1920, s.WindowWidth)
	require.Equal(t, 50, s.StartPapers)
	require.Equal(t, 0.5, s.SFXVolume)
	require.Equal(t, uint64(7), s.Seed)
	require.Equal(t, StartLives, s.StartLives, "unset fields keep defaults")
}

func TestLoadSettingsClampsNonsense(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window_width: -5\nsfx_volume: 3.0\nstart_lives: -1\n"), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	require.Equal(t, WindowWidth, s.WindowWidth)
	require.Equal(t, 1.0, s.SFXVolume)
	require.Equal(t, StartLives, s.StartLives)
}

func TestLoadSettingsMalformedIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window_width: [not a number\n"), 0o644))

	_, err := LoadSettings(path)
	require.Error(t, err)
}
