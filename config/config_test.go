package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadWithLocalOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "typegen.json5"), []byte(`{
		// shared settings
		output_path: "gen/api.d.ts",
		raw_dir: "raw",
	}`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "typegen.local.json5"), []byte(`{
		raw_dir: "raw-local",
		timeout: 5000000000,
	}`), 0600))

	cfg, err := Load(filepath.Join(dir, "typegen.json5"))
	require.NoError(t, err)
	require.Equal(t, DefaultIndexURL, cfg.IndexURL)
	require.Equal(t, "gen/api.d.ts", cfg.OutputPath)
	require.Equal(t, "raw-local", cfg.RawDir)
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.True(t, cfg.Headless)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typegen.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{ output_path: `), 0600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadExplicitFalseAndEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "typegen.json5"), []byte(`{
		headless: false,
		raw_dir: "raw",
		browser: true,
	}`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "typegen.local.json5"), []byte(`{
		raw_dir: "",
	}`), 0600))

	cfg, err := Load(filepath.Join(dir, "typegen.json5"))
	require.NoError(t, err)
	require.False(t, cfg.Headless)
	require.True(t, cfg.Browser)
	require.Equal(t, "", cfg.RawDir)
	require.Equal(t, DefaultOutputPath, cfg.OutputPath)
}

func TestLoadDoesNotChangeDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "typegen.json5"), []byte(`{ headless: false }`), 0600))

	_, err := Load(filepath.Join(dir, "typegen.json5"))
	require.NoError(t, err)
	require.True(t, Default().Headless)
}
