package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CASTQC_CONFIG", "")

	cfg, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(dir), cfg)
	assert.Equal(t, filepath.Join(dir, "castings.db"), cfg.DBPath)
	assert.True(t, cfg.ClearOnSuccess)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"db_path: /srv/qc/castings.db\nclear_on_success: false\nlog_level: warn\n"), 0o644))

	cfg, err := Load(dir, path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/qc/castings.db", cfg.DBPath)
	assert.False(t, cfg.ClearOnSuccess)
	assert.Equal(t, "warn", cfg.LogLevel)
	// Unset keys keep their defaults.
	assert.Equal(t, filepath.Join(dir, "lists.json"), cfg.ListsPath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("db_path: from-file.db\n"), 0o644))
	t.Setenv("CASTQC_CONFIG", "")
	t.Setenv("CASTQC_DB", "from-env.db")
	t.Setenv("CASTQC_LISTS", "lists-env.json")
	t.Setenv("CASTQC_CLEAR_ON_SUCCESS", "false")

	cfg, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.DBPath)
	assert.Equal(t, "lists-env.json", cfg.ListsPath)
	assert.False(t, cfg.ClearOnSuccess)
}

func TestLoad_InvalidBoolEnvIgnored(t *testing.T) {
	t.Setenv("CASTQC_CONFIG", "")
	t.Setenv("CASTQC_CLEAR_ON_SUCCESS", "sometimes")

	cfg, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.True(t, cfg.ClearOnSuccess)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: [unterminated\n"), 0o644))

	_, err := Load(dir, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestFlags_ApplyOverridesEverything(t *testing.T) {
	var f Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Register(fs)
	require.NoError(t, fs.Parse([]string{"--db", "flag.db", "-v"}))

	cfg := DefaultConfig(t.TempDir())
	cfg.ListsPath = "keep.json"
	f.Apply(&cfg)

	assert.Equal(t, "flag.db", cfg.DBPath)
	assert.Equal(t, "keep.json", cfg.ListsPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}
