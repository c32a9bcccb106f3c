package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-content-sync/internal/logger"
)

type registryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRegistryRepository constructs a [RegistryRepository] over the
// tx_nrsync_registry table.
func NewRegistryRepository(db *DB, logger *logger.Logger) RegistryRepository {
	return &registryRepository{db: db, logger: logger}
}

func (r *registryRepository) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("entry_value").
		From(registryTable).
		Where(sq.Eq{"namespace": namespace, "entry_key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		log.Err(err).Str("func", "*registryRepository.Get").Str("key", key).Msg("failed to read registry entry")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (r *registryRepository) Set(ctx context.Context, namespace, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert(registryTable).
		Columns("namespace", "entry_key", "entry_value").
		Values(namespace, key, value).
		Suffix(upsertRegistrySuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*registryRepository.Set").Str("key", key).Msg("failed to write registry entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *registryRepository) Delete(ctx context.Context, namespace, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(registryTable).
		Where(sq.Eq{"namespace": namespace, "entry_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*registryRepository.Delete").Str("key", key).Msg("failed to delete registry entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
