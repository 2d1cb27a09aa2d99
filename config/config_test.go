package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadReturnsDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("IVORY_CONFIG", filepath.Join(t.TempDir(), "settings.json"))

	settings, err := Load()
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(Default(), settings)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	t.Setenv("IVORY_CONFIG", filepath.Join(t.TempDir(), "nested", "settings.json"))

	want := Settings{PreferFlats: false, PollIntervalMs: 250}
	assert := assert.New(t)
	assert.NoError(Save(want))

	got, err := Load()
	assert.NoError(err)
	assert.Equal(want, got)
}

func TestLoadClampsPollInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	t.Setenv("IVORY_CONFIG", path)

	err := os.WriteFile(path, []byte(`{"prefer_flats":true,"poll_interval_ms":999999}`), 0644)
	assert := assert.New(t)
	assert.NoError(err)

	settings, err := Load()
	assert.NoError(err)
	assert.Equal(1000, settings.PollIntervalMs)
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	t.Setenv("IVORY_CONFIG", path)

	err := os.WriteFile(path, []byte("not json"), 0644)
	assert := assert.New(t)
	assert.NoError(err)

	settings, err := Load()
	assert.Error(err)
	assert.Equal(Default(), settings)
}
