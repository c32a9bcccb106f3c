package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Get(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	repo := NewRegistryRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT entry_value FROM tx_nrsync_registry WHERE entry_key = $1 AND namespace = $2")).
		WithArgs("lock", "nr_sync").
		WillReturnRows(sqlmock.NewRows([]string{"entry_value"}).AddRow("1"))

	value, ok, err := repo.Get(context.Background(), "nr_sync", "lock")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", value)
}

func TestRegistry_Get_Missing(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	repo := NewRegistryRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT entry_value").WillReturnRows(sqlmock.NewRows([]string{"entry_value"}))

	_, ok, err := repo.Get(context.Background(), "nr_sync", "lock")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_Set(t *testing.T) {
	db, mock := newTestDB(t, config.DriverSQLite)
	repo := NewRegistryRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tx_nrsync_registry (namespace,entry_key,entry_value) VALUES (?,?,?) ON CONFLICT")).
		WithArgs("nr_sync", "lock_message", "maintenance").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Set(context.Background(), "nr_sync", "lock_message", "maintenance"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistry_Delete(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	repo := NewRegistryRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tx_nrsync_registry WHERE entry_key = $1 AND namespace = $2")).
		WithArgs("lock", "nr_sync").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "nr_sync", "lock"))
}

func TestRegistry_Delete_Error(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	repo := NewRegistryRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM").WillReturnError(errors.New("read only"))

	err := repo.Delete(context.Background(), "nr_sync", "lock")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
