package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/castqc/internal/cli"
	"github.com/alexanderramin/castqc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"CASTQC_CONFIG", "CASTQC_DB", "CASTQC_LISTS", "CASTQC_LOG_FILE", "CASTQC_LOG_LEVEL", "CASTQC_CLEAR_ON_SUCCESS"} {
		t.Setenv(k, "")
	}
}

func TestSetup_WiresServicesWithoutOpeningDB(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	w := &wiring{dir: dir}
	t.Cleanup(w.close)

	app := &cli.App{}
	require.NoError(t, w.setup(context.Background(), app))

	assert.NotNil(t, app.Inspections)
	assert.NotNil(t, app.PickLists)
	assert.Empty(t, app.Warnings)
	assert.Equal(t, filepath.Join(dir, "castings.db"), app.Config.DBPath)
	assert.False(t, w.database.Opened())

	l, err := app.PickLists.List(domain.ListCastingNames)
	require.NoError(t, err)
	assert.True(t, l.Contains("Ригель"))
}

func TestSetup_CorruptListsBecomeWarning(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lists.json"), []byte("{not json"), 0o644))
	w := &wiring{dir: dir}
	t.Cleanup(w.close)

	app := &cli.App{}
	require.NoError(t, w.setup(context.Background(), app))

	require.Len(t, app.Warnings, 1)
	assert.Contains(t, app.Warnings[0], "lists.json")
	l, err := app.PickLists.List(domain.ListCastingNames)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLists().CastingNames, l)
}

func TestSetup_FlagsOverrideConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	w := &wiring{dir: dir}
	t.Cleanup(w.close)

	app := &cli.App{}
	app.Flags.DBPath = filepath.Join(dir, "flag.db")
	require.NoError(t, w.setup(context.Background(), app))

	assert.Equal(t, filepath.Join(dir, "flag.db"), app.Config.DBPath)
	assert.Equal(t, filepath.Join(dir, "flag.db"), w.database.Path())
}
