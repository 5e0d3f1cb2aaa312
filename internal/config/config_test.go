package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cosmos506/Gamification-life/internal/engine"
	"github.com/Cosmos506/Gamification-life/internal/storage"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(storage.EnvDBPath, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultMaxLevel, cfg.MaxLevel)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/from-file.db\nmax_level: 120\nlog_format: json\n"), 0o644))

	t.Setenv(storage.EnvDBPath, "")
	t.Setenv(EnvLogLevel, "debug")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-file.db", cfg.DBPath)
	assert.Equal(t, 120, cfg.MaxLevel)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)

	t.Setenv(storage.EnvDBPath, "/tmp/from-env.db")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", cfg.DBPath)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv(storage.EnvDBPath, "")
	t.Setenv(EnvLogLevel, "")
	dir := t.TempDir()

	bad := map[string]string{
		"syntax":    "max_level: [",
		"low level": "max_level: 1\n",
		"format":    "log_format: xml\n",
		"log level": "log_level: loud\n",
	}
	for name, body := range bad {
		path := filepath.Join(dir, name+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		_, err := Load(path)
		assert.Error(t, err, name)
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}
