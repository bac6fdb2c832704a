package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := writeConfigFile(t, `{
		"database_dsn": "json.db",
		"backend_latency": "150ms",
		"signing_key": "json-key",
		"token_validity": "24h"
	}`)
	withArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "json.db", cfg.DatabaseDSN)
	assert.Equal(t, 150*time.Millisecond, cfg.BackendLatency)
	assert.Equal(t, "json-key", cfg.SigningKey)
	assert.Equal(t, 24*time.Hour, cfg.TokenValidity)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"database_dsn": "only.db"}`)
	withArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "only.db", cfg.DatabaseDSN)
	assert.Equal(t, time.Second, cfg.BackendLatency)
}

func TestParseJson_FlagsWinOverJson(t *testing.T) {
	path := writeConfigFile(t, `{"database_dsn": "json.db"}`)
	withArgs(t, "-c", path, "-d", "flag.db")

	cfg := LoadConfig()
	assert.Equal(t, "flag.db", cfg.DatabaseDSN)
}

func TestParseJson_BadFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	withArgs(t, "-c", path)

	assert.Panics(t, func() { LoadConfig() })
}
