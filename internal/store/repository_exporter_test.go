package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ExportTable ──

func TestExportTable_WithWhere(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	exporter := NewTableExporter(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM tt_content WHERE uid IN ($1,$2)")).
		WithArgs(5, 6).
		WillReturnRows(sqlmock.NewRows([]string{"uid", "header", "bodytext"}).
			AddRow(5, "Hello", []byte("text")).
			AddRow(6, "World", nil))

	rows, err := exporter.ExportTable(context.Background(), "tt_content", sq.Eq{"uid": []int64{5, 6}})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"uid", "header", "bodytext"}, rows[0].Columns)
	body, ok := rows[0].Get("bodytext")
	require.True(t, ok)
	assert.Equal(t, "text", body, "byte values must be converted to strings")

	body, ok = rows[1].Get("bodytext")
	require.True(t, ok)
	assert.Nil(t, body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExportTable_NilWhereExportsAll(t *testing.T) {
	db, mock := newTestDB(t, config.DriverSQLite)
	exporter := NewTableExporter(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sys_domain")).
		WillReturnRows(sqlmock.NewRows([]string{"uid", "domainName"}).AddRow(1, "example.org"))

	rows, err := exporter.ExportTable(context.Background(), "sys_domain", nil)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExportTable_InvalidTable(t *testing.T) {
	db, _ := newTestDB(t, config.DriverPostgres)
	exporter := NewTableExporter(db, logger.Nop())

	_, err := exporter.ExportTable(context.Background(), "pages;--", nil)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestExportTable_QueryError(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	exporter := NewTableExporter(db, logger.Nop())

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("timeout"))

	_, err := exporter.ExportTable(context.Background(), "pages", nil)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── CountRows ──

func TestCountRows(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	exporter := NewTableExporter(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM pages WHERE tstamp > $1")).
		WithArgs(150).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := exporter.CountRows(context.Background(), "pages", sq.Gt{"tstamp": 150})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

// ── Timestamp ──

func TestTimestamp(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	exporter := NewTableExporter(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT tstamp FROM pages WHERE uid = $1")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"tstamp"}).AddRow(300))

	tstamp, err := exporter.Timestamp(context.Background(), "pages", "tstamp", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(300), tstamp)
}

func TestTimestamp_MissingRow(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	exporter := NewTableExporter(db, logger.Nop())

	mock.ExpectQuery("SELECT tstamp FROM pages").
		WillReturnRows(sqlmock.NewRows([]string{"tstamp"}))

	tstamp, err := exporter.Timestamp(context.Background(), "pages", "tstamp", 99)
	require.NoError(t, err)
	assert.Zero(t, tstamp)
}

func TestTimestamp_InvalidField(t *testing.T) {
	db, _ := newTestDB(t, config.DriverPostgres)
	exporter := NewTableExporter(db, logger.Nop())

	_, err := exporter.Timestamp(context.Background(), "pages", "tstamp OR 1=1", 1)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}
