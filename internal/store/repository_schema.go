package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/logger"
)

// schemaRepository reads column lists from the live database catalog.
type schemaRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSchemaRepository constructs a [SchemaRepository] backed by db.
func NewSchemaRepository(db *DB, logger *logger.Logger) SchemaRepository {
	return &schemaRepository{db: db, logger: logger}
}

// Columns returns the column names of table in ordinal order.
// [ErrTableNotFound] is returned when the table has no columns.
func (r *schemaRepository) Columns(ctx context.Context, table string) ([]string, error) {
	log := logger.FromContext(ctx)

	query := postgresColumns
	if r.db.driver == config.DriverSQLite {
		query = sqliteColumns
	}

	rows, err := r.db.QueryContext(ctx, query, table)
	if err != nil {
		log.Err(err).Str("func", "*schemaRepository.Columns").Str("table", table).Msg("failed to read columns")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			log.Err(err).Str("func", "*schemaRepository.Columns").Str("table", table).Msg("failed to scan column name")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}

	return columns, nil
}
