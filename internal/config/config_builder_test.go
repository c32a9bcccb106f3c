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

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_DefaultsAreValid(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "fileadmin/nr_sync", cfg.Storage.Files.SyncDir)
	assert.Equal(t, "fileadmin/nr_sync_temp", cfg.Storage.Files.ScratchDir)
	assert.Equal(t, "?eID=nr_sync&task=clearCache&data=%s&v8=true", cfg.Adapter.ClearCacheURL)
	assert.Equal(t, 15*time.Minute, cfg.Workers.WaitingThreshold)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:1"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:2"}, Storage: Storage{DB: DB{DSN: "dsn"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:2", cfg.Server.HTTPAddress)
	assert.Equal(t, "dsn", cfg.Storage.DB.DSN)
	// untouched defaults survive
	assert.Equal(t, 8*time.Minute, cfg.Server.RequestTimeout)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_PathFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": "localhost:7070"},
	})

	cfg, err := newConfigBuilder().withDefaults().withJSONPath(path).withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:7070", cfg.Server.HTTPAddress)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSONPath("/does/not/exist.json").withJSON()
	require.Error(t, b.err)

	_, err := b.build()
	assert.Error(t, err)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg, err := newConfigBuilder().withDefaults().build()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(*StructuredConfig) {}},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no scratch dir", mutate: func(c *StructuredConfig) { c.Storage.Files.ScratchDir = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "clear cache url without verb", mutate: func(c *StructuredConfig) { c.Adapter.ClearCacheURL = "?eID=nr_sync" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "scheduled modules without interval", mutate: func(c *StructuredConfig) { c.Workers.ScheduledModules = []int{8} }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateForServer(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.ErrorIs(t, cfg.ValidateForServer(), ErrInvalidStorageConfigs)

	cfg.Storage.DB.DSN = "postgres://localhost/staging"
	assert.ErrorIs(t, cfg.ValidateForServer(), ErrInvalidAppConfigs)

	cfg.App.TokenSignKey = "secret"
	assert.NoError(t, cfg.ValidateForServer())
}
