package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "stderr", cfg.Logger.OutputPath)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 100, cfg.Preview.MaxOccurrences)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
language: ru
output: yaml
logger:
  level: debug
  format: json
cache:
  enabled: false
  ttl: 1m
preview:
  count: 3
  window: 720h
`), 0o600))

	cfg, err := Load(viper.New(), file)
	require.NoError(t, err)

	assert.Equal(t, "ru", cfg.Language)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 1000, cfg.Cache.MaxEntries)
	assert.Equal(t, 3, cfg.Preview.Count)
	assert.Equal(t, 720*time.Hour, cfg.Preview.Window)
}

func TestLoad_SearchPath(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "rrule2text.yaml"), []byte("language: de\n"), 0o600))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Language)
}

func TestLoad_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RRULE2TEXT_LANGUAGE", "ru")
	t.Setenv("RRULE2TEXT_LOGGER_LEVEL", "error")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "ru", cfg.Language)
	assert.Equal(t, "error", cfg.Logger.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
