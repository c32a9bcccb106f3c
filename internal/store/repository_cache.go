package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-content-sync/internal/logger"
)

type cacheRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCacheRepository constructs a [CacheRepository] over the page cache tables.
func NewCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	return &cacheRepository{db: db, logger: logger}
}

// FlushByTags removes the cache_pages entries tagged with any of tags and
// the tags themselves. It returns the number of removed tag rows.
func (r *cacheRepository) FlushByTags(ctx context.Context, tags []string) (int64, error) {
	log := logger.FromContext(ctx)

	if len(tags) == 0 {
		return 0, nil
	}

	builder := r.db.Builder()
	tagged := builder.Select("identifier").From("cache_pages_tags").Where(sq.Eq{"tag": tags})
	pagesQuery, pagesArgs, err := builder.
		Delete("cache_pages").
		Where(sq.Expr("identifier IN (?)", tagged)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tagsQuery, tagsArgs, err := builder.Delete("cache_pages_tags").Where(sq.Eq{"tag": tags}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*cacheRepository.FlushByTags").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, pagesQuery, pagesArgs...); err != nil {
		log.Err(err).Str("func", "*cacheRepository.FlushByTags").Msg("failed to delete cache pages")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, tagsQuery, tagsArgs...)
	if err != nil {
		log.Err(err).Str("func", "*cacheRepository.FlushByTags").Msg("failed to delete cache tags")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	flushed, _ := result.RowsAffected()
	log.Debug().Str("func", "*cacheRepository.FlushByTags").Int64("flushed", flushed).Strs("tags", tags).Msg("page cache flushed")

	return flushed, nil
}
