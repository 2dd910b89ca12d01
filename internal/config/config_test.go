package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Ledger.Path = "/data/home.gnucash"
	cfg.Server.Addr = "0.0.0.0:9000"
	cfg.Display.Currency = "$"

	path := filepath.Join(t.TempDir(), "ledgerdash.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.Ledger.Path)
	assert.Equal(t, "127.0.0.1:8050", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, "€", cfg.Display.Currency)
	assert.Equal(t, 365, cfg.Display.DefaultRangeDays)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgerdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  default_range_days: 90\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.Display.DefaultRangeDays)
	assert.Equal(t, "127.0.0.1:8050", cfg.Server.Addr, "unset keys keep defaults")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LEDGERDASH_SERVER_ADDR", ":7000")
	t.Setenv("LEDGERDASH_LEDGER_PATH", "/tmp/env.gnucash")

	path := filepath.Join(t.TempDir(), "ledgerdash.yaml")
	require.NoError(t, Save(path, Default()))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "/tmp/env.gnucash", cfg.Ledger.Path)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "server: [\n"},
		{"empty addr", "server:\n  addr: \"\"\n"},
		{"zero range", "display:\n  default_range_days: 0\n"},
		{"bad log format", "log:\n  format: xml\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ledgerdash.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default()
	cfg.Ledger.Path = "/data/home.gnucash"
	path := filepath.Join(t.TempDir(), "ledgerdash.yaml")
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "path: /data/home.gnucash")
	assert.Contains(t, contents, "127.0.0.1:8050")
	assert.Contains(t, contents, "default_range_days: 365")
	assert.Contains(t, contents, "shutdown_timeout_seconds: 10")
}
