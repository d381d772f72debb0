package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestSaveThenLoadConfig(t *testing.T) {
	dir := t.TempDir()

	want := &Config{Version: "1", DataDir: "/somewhere/else"}
	require.NoError(t, SaveConfig(dir, want))

	got, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDataDirEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	got, err := DataDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestDataDirConfigOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	override := filepath.Join(dir, "nested", "data")
	require.NoError(t, SaveConfig(dir, &Config{DataDir: override}))

	got, err := DataDir()
	require.NoError(t, err)
	assert.Equal(t, override, got)
}
