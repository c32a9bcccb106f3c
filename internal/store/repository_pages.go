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

type pageRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPageRepository constructs a [PageRepository] over the pages table.
func NewPageRepository(db *DB, logger *logger.Logger) PageRepository {
	return &pageRepository{db: db, logger: logger}
}

// Page returns the page with the given uid or [ErrPageNotFound].
func (r *pageRepository) Page(ctx context.Context, uid int64) (models.Page, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().Select(pageColumns...).From("pages").Where(sq.Eq{"uid": uid}).ToSql()
	if err != nil {
		return models.Page{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	page, err := scanPage(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Page{}, fmt.Errorf("%w: %d", ErrPageNotFound, uid)
	case err != nil:
		log.Err(err).Str("func", "*pageRepository.Page").Int64("uid", uid).Msg("failed to read page")
		return models.Page{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return page, nil
}

// Children returns the direct subpages of pid, deleted ones included.
func (r *pageRepository) Children(ctx context.Context, pid int64) ([]models.Page, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(pageColumns...).
		From("pages").
		Where(sq.Eq{"pid": pid}).
		OrderBy("uid").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.Children").Int64("pid", pid).Msg("failed to read subpages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var pages []models.Page
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		pages = append(pages, page)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return pages, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner) (models.Page, error) {
	var (
		page              models.Page
		deleted, siteRoot int
	)
	if err := row.Scan(&page.UID, &page.PID, &page.DocType, &deleted, &page.PermsUserID, &page.PermsEverybody, &siteRoot); err != nil {
		return models.Page{}, err
	}
	page.Deleted = deleted != 0
	page.IsSiteRoot = siteRoot != 0
	return page, nil
}
