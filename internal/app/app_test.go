package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/models"
)

func testConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()
	return &config.StructuredConfig{
		App: config.App{Version: "1.0.0", TokenSignKey: "key", TokenIssuer: "nr-sync"},
		Storage: config.Storage{
			DB:    config.DB{Driver: config.DriverSQLite, DSN: ":memory:"},
			Files: config.Files{Root: t.TempDir(), SyncDir: "sync", ScratchDir: "scratch"},
		},
	}
}

func TestNew_WiresServices(t *testing.T) {
	a, err := New(context.Background(), testConfig(t), models.NewAppBuildInfo("v1", "today", "abc"), logger.Nop())
	require.NoError(t, err)
	defer a.Close()

	require.NotNil(t, a.DB)
	assert.Equal(t, config.DriverSQLite, a.DB.Driver())
	require.NotNil(t, a.Services)
	assert.NotNil(t, a.Services.SyncService)
	assert.NotNil(t, a.Services.LockService)
	assert.NotNil(t, a.Services.SyncListService)
	assert.NotNil(t, a.Services.CacheService)
	assert.NotNil(t, a.Services.AuthService)
	assert.Equal(t, "1.0.0", a.Services.AppInfoService.GetAppVersion(context.Background()))
}

func TestNew_MissingCatalogFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sync.AreasFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := New(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())

	assert.Error(t, err)
}

func TestNew_UnsupportedDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.DB.Driver = "mysql"

	_, err := New(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())

	assert.Error(t, err)
}

func TestClose_Nil(t *testing.T) {
	assert.NoError(t, (&App{}).Close())
}
