package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/models"
)

// tableExporter reads rows of catalog tables with direct driver queries.
type tableExporter struct {
	db     *DB
	logger *logger.Logger
}

// NewTableExporter constructs a [TableExporter] backed by db.
func NewTableExporter(db *DB, logger *logger.Logger) TableExporter {
	return &tableExporter{db: db, logger: logger}
}

// ExportTable returns every row of table matching where. A nil where
// exports the whole table. Byte values are returned as strings.
func (e *tableExporter) ExportTable(ctx context.Context, table string, where sq.Sqlizer) ([]models.Row, error) {
	log := logger.FromContext(ctx)

	if err := checkIdentifier(table); err != nil {
		return nil, err
	}

	query, args, err := e.db.Builder().Select("*").From(table).Where(where).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tableExporter.ExportTable").Str("table", table).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tableExporter.ExportTable").Str("table", table).Msg("failed to export table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	var result []models.Row
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			log.Err(err).Str("func", "*tableExporter.ExportTable").Str("table", table).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}

		result = append(result, models.Row{Columns: columns, Values: values})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// CountRows returns the number of rows of table matching where.
func (e *tableExporter) CountRows(ctx context.Context, table string, where sq.Sqlizer) (int64, error) {
	log := logger.FromContext(ctx)

	if err := checkIdentifier(table); err != nil {
		return 0, err
	}

	query, args, err := e.db.Builder().Select("COUNT(*)").From(table).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := e.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*tableExporter.CountRows").Str("table", table).Msg("failed to count rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// Timestamp returns the value of the modification column field of row uid.
// A missing row or a NULL value yields 0.
func (e *tableExporter) Timestamp(ctx context.Context, table, field string, uid int64) (int64, error) {
	log := logger.FromContext(ctx)

	if err := checkIdentifier(table, field); err != nil {
		return 0, err
	}

	query, args, err := e.db.Builder().Select(field).From(table).Where(sq.Eq{"uid": uid}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var tstamp sql.NullInt64
	err = e.db.QueryRowContext(ctx, query, args...).Scan(&tstamp)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		log.Err(err).Str("func", "*tableExporter.Timestamp").Str("table", table).Int64("uid", uid).Msg("failed to read row timestamp")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tstamp.Int64, nil
}
