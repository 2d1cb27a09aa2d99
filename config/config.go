// Package config persists the small set of user-facing settings to a JSON
// file. The location comes from IVORY_CONFIG, falling back to
// ~/.config/ivory/settings.json.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ganten7/ivory/util"
)

const (
	DefaultPollIntervalMs = 100

	minPollIntervalMs = 10
	maxPollIntervalMs = 1000
)

type Settings struct {
	PreferFlats    bool `json:"prefer_flats"`
	PollIntervalMs int  `json:"poll_interval_ms"`
}

func Default() Settings {
	return Settings{
		PreferFlats:    true,
		PollIntervalMs: DefaultPollIntervalMs,
	}
}

// Sanitize pulls out-of-range values back to something usable.
func (s *Settings) Sanitize() {
	s.PollIntervalMs = util.Clamp(s.PollIntervalMs, minPollIntervalMs, maxPollIntervalMs)
}

func Path() string {
	if path := os.Getenv("IVORY_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "settings.json"
	}
	return filepath.Join(home, ".config", "ivory", "settings.json")
}

// Load reads the settings file. A missing file is not an error and yields
// the defaults.
func Load() (Settings, error) {
	settings := Default()
	dat, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("could not read settings: %w", err)
	}
	if err := json.Unmarshal(dat, &settings); err != nil {
		return Default(), fmt.Errorf("could not parse settings: %w", err)
	}
	settings.Sanitize()
	return settings, nil
}

func Save(settings Settings) error {
	settings.Sanitize()
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create settings dir: %w", err)
	}
	dat, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode settings: %w", err)
	}
	if err := os.WriteFile(path, dat, 0644); err != nil {
		return fmt.Errorf("could not write settings: %w", err)
	}
	return nil
}
