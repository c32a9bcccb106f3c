package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T, driver string) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{DB: conn, driver: driver, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCheckIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain table", "tt_content", false},
		{"state table", "tx_nrsync_syncstat_production", false},
		{"leading digit", "1pages", true},
		{"quote", `pages"`, true},
		{"space", "pages; DROP", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkIdentifier(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIdentifier)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuilder_Placeholders(t *testing.T) {
	pg := &DB{driver: config.DriverPostgres}
	query, _, err := pg.Builder().Select("uid").From("pages").Where("pid = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT uid FROM pages WHERE pid = $1", query)

	lite := &DB{driver: config.DriverSQLite}
	query, _, err = lite.Builder().Select("uid").From("pages").Where("pid = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT uid FROM pages WHERE pid = ?", query)
}

func TestDB_Classify(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}
	assert.Equal(t, Retryable, db.Classify(pgError("40P01")))
	assert.Equal(t, NonRetryable, db.Classify(pgError("23505")))

	bare := &DB{}
	assert.Equal(t, NonRetryable, bare.Classify(pgError("40P01")))
}

func TestCreateLocalDBFileIfNotExists_InMemory(t *testing.T) {
	assert.NoError(t, createLocalDBFileIfNotExists(":memory:"))
	assert.NoError(t, createLocalDBFileIfNotExists("file::memory:?cache=shared"))
}

func TestCreateLocalDBFileIfNotExists_CreatesFile(t *testing.T) {
	path := t.TempDir() + "/staging.db"

	require.NoError(t, createLocalDBFileIfNotExists("file:"+path+"?_busy_timeout=5000"))
	assert.FileExists(t, path)
}
