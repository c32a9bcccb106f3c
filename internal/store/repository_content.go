package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-content-sync/internal/logger"
)

type contentRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewContentRepository constructs a [ContentRepository] backed by db.
func NewContentRepository(db *DB, logger *logger.Logger) ContentRepository {
	return &contentRepository{db: db, logger: logger}
}

// NewsPluginPageIDs returns the pages holding a news plugin content element.
func (r *contentRepository) NewsPluginPageIDs(ctx context.Context) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("pid").
		Distinct().
		From("tt_content").
		Where(sq.And{sq.Like{"list_type": "%news%"}, sq.Eq{"deleted": 0}}).
		OrderBy("pid").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.NewsPluginPageIDs").Msg("failed to read news plugin pages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var pids []int64
	for rows.Next() {
		var pid int64
		if err := rows.Scan(&pid); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		pids = append(pids, pid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return pids, nil
}

// DanglingFileReferences counts live file references not attached to any record.
func (r *contentRepository) DanglingFileReferences(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("COUNT(*)").
		From("sys_file_reference").
		Where(sq.Eq{"uid_foreign": 0, "deleted": 0}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*contentRepository.DanglingFileReferences").Msg("failed to count file references")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
