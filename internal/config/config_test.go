package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromBytesMergePrecedence(t *testing.T) {
	t.Parallel()

	global := []byte(`{"options":{"watch":false,"images":"blocks"}}`)
	local := []byte(`{"options":{"watch":true}}`)

	cfg, err := loadFromBytes([][]byte{global, local})
	require.NoError(t, err)
	require.True(t, cfg.Options.Watch)
	require.Equal(t, "blocks", cfg.Options.Images)
}

func TestLoadFromBytesEmpty(t *testing.T) {
	t.Parallel()

	cfg, err := loadFromBytes(nil)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.False(t, cfg.Options.Watch)
}

func TestSetDefaults(t *testing.T) {
	t.Parallel()

	var cfg Config
	cfg.setDefaults("/work", "")
	require.Equal(t, "/work", cfg.WorkingDir())
	require.Equal(t, filepath.Join("/work", defaultDataDirectory), cfg.Options.DataDirectory)
	require.Equal(t, ImagesAuto, cfg.Options.Images)
}

func TestSetDefaultsExplicitDataDir(t *testing.T) {
	t.Parallel()

	var cfg Config
	cfg.setDefaults("/work", "/elsewhere/data")
	require.Equal(t, "/elsewhere/data", cfg.Options.DataDirectory)
}

func TestConfigFieldRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{dataConfigDir: filepath.Join(dir, "taste.json")}

	require.False(t, cfg.HasConfigField("options.images"))
	require.NoError(t, cfg.SetConfigField("options.images", "kitty"))
	require.True(t, cfg.HasConfigField("options.images"))

	data, err := os.ReadFile(cfg.dataConfigDir)
	require.NoError(t, err)
	require.JSONEq(t, `{"options":{"images":"kitty"}}`, string(data))

	require.NoError(t, cfg.RemoveConfigField("options.images"))
	require.False(t, cfg.HasConfigField("options.images"))
}

func TestSetImagesMode(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{dataConfigDir: filepath.Join(dir, "taste.json")}

	require.NoError(t, cfg.SetImagesMode(ImagesBlocks))
	require.Equal(t, ImagesBlocks, cfg.Options.Images)

	data, err := os.ReadFile(cfg.dataConfigDir)
	require.NoError(t, err)
	require.JSONEq(t, `{"options":{"images":"blocks"}}`, string(data))
}

func TestLoadReadsProjectConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASTE_GLOBAL_CONFIG", filepath.Join(dir, "global"))
	t.Setenv("TASTE_GLOBAL_DATA", filepath.Join(dir, "data"))

	work := filepath.Join(dir, "project")
	require.NoError(t, os.MkdirAll(work, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(work, "taste.json"),
		[]byte(`{"options":{"backend":"basic"}}`), 0o644))

	cfg, err := Load(work, "", false)
	require.NoError(t, err)
	require.Equal(t, "basic", cfg.Options.Backend)
	require.Equal(t, work, cfg.WorkingDir())
}

func TestGlobalConfigHonorsOverride(t *testing.T) {
	t.Setenv("TASTE_GLOBAL_CONFIG", "/custom")
	require.Equal(t, filepath.Join("/custom", "taste.json"), GlobalConfig())
}

func TestGlobalConfigDataHonorsXDG(t *testing.T) {
	t.Setenv("TASTE_GLOBAL_DATA", "")
	t.Setenv("XDG_DATA_HOME", "/xdg-data")
	require.Equal(t, filepath.Join("/xdg-data", "taste", "taste.json"), GlobalConfigData())
}
