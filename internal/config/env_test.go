// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEnv_SyncDeployment(t *testing.T) {
	cfg, err := readEnv(map[string]string{
		"CONFIG":                    "/etc/nrsync/config.json",
		"APP_TOKEN_SIGN_KEY":        "jwt_secret",
		"APP_TOKEN_DURATION":        "8h",
		"SERVER_ADDRESS":            "127.0.0.1:8090",
		"STORAGE_DB_DATABASE_URI":   "postgres://typo3@staging/typo3",
		"STORAGE_DB_DRIVER":         DriverPostgres,
		"STORAGE_FILES_SYNC_DIR":    "/srv/nrsync/outbox",
		"STORAGE_FILES_ROOT":        "/srv/typo3",
		"ADAPTER_RETRY_COUNT":       "4",
		"ADAPTER_SIGN_KEY":          "hmac",
		"SYNC_DEFAULT_TARGET":       "production",
		"SYNC_EXPORT_TIMEOUT":       "90s",
		"WORKERS_SCHEDULED_MODULES": "8,31,46",
		"WORKERS_WAITING_THRESHOLD": "15m",
	})
	require.NoError(t, err)

	assert.Equal(t, "/etc/nrsync/config.json", cfg.JSONFilePath)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, 8*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "127.0.0.1:8090", cfg.Server.HTTPAddress)
	assert.Equal(t, DB{DSN: "postgres://typo3@staging/typo3", Driver: DriverPostgres}, cfg.Storage.DB)
	assert.Equal(t, Files{SyncDir: "/srv/nrsync/outbox", Root: "/srv/typo3"}, cfg.Storage.Files)
	assert.Equal(t, uint(4), cfg.Adapter.RetryCount)
	assert.Equal(t, "hmac", cfg.Adapter.SignKey)
	assert.Equal(t, "production", cfg.Sync.DefaultTarget)
	assert.Equal(t, 90*time.Second, cfg.Sync.ExportTimeout)
	assert.Equal(t, []int{8, 31, 46}, cfg.Workers.ScheduledModules)
	assert.Equal(t, 15*time.Minute, cfg.Workers.WaitingThreshold)
}

func TestReadEnv_NothingSet(t *testing.T) {
	cfg, err := readEnv(map[string]string{"HOME": "/root"})
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestReadEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv("SYNC_DEFAULT_TARGET", "integration")

	cfg, err := readEnv(nil)
	require.NoError(t, err)
	assert.Equal(t, "integration", cfg.Sync.DefaultTarget)
}

func TestReadEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"SERVER_REQUEST_TIMEOUT":    "soon",
		"ADAPTER_RETRY_COUNT":       "-1",
		"WORKERS_SCHEDULED_MODULES": "8,fal",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			_, err := readEnv(map[string]string{key: value})
			require.Error(t, err)
			assert.ErrorIs(t, err, errEnv)
		})
	}
}

func TestReadEnv_ReportsEveryBadVariable(t *testing.T) {
	_, err := readEnv(map[string]string{
		"SERVER_REQUEST_TIMEOUT": "soon",
		"ADAPTER_RETRY_COUNT":    "-1",
	})

	require.ErrorIs(t, err, errEnv)
	assert.Contains(t, err.Error(), "RequestTimeout")
	assert.Contains(t, err.Error(), "RetryCount")
}
