package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EarlierConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "from-env"}},
		&StructuredConfig{App: App{Version: "from-json", TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

func TestWithDefaults_FillsOnlyEmptyFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Server: Server{HTTPAddress: ":9999"}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultGRPCAddress, cfg.Server.GRPCAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultServerURL, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRunTimeout, cfg.Sandbox.RunTimeout)
	assert.Equal(t, time.Duration(0), cfg.Workers.RefreshInterval)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "file:editor.db"}},
		"sandbox": map[string]any{"run_timeout": "2s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "file:editor.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Second, cfg.Sandbox.RunTimeout)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/config.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

// ── load ──────────────────────────────────────────────────────────────────────

func TestLoad_EnvBeatsFlagsBeatsJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"version": "json", "token_issuer": "json-issuer", "log_level": "warn"},
		"adapter": map[string]any{"http_address": "http://json:1"},
	})

	t.Setenv("APP_VERSION", "env")

	cfg, err := load([]string{"-version", "flag", "-token-issuer", "flag-issuer", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "http://json:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

func TestLoad_BadFlag(t *testing.T) {
	_, err := load([]string{"-a", "nonsense"})
	require.Error(t, err)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "soon")

	_, err := load(nil)
	require.Error(t, err)
}
