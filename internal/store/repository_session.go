package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-content-sync/internal/logger"
)

// sessionRepository keeps backend session blobs in tx_nrsync_session.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: logger}
}

func (r *sessionRepository) Load(ctx context.Context, sessionID, key string) ([]byte, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("data").
		From(sessionTable).
		Where(sq.Eq{"session_id": sessionID, "session_key": key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&data)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, false, nil
	case err != nil:
		log.Err(err).Str("func", "*sessionRepository.Load").Str("key", key).Msg("failed to load session data")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return []byte(data), true, nil
}

func (r *sessionRepository) Save(ctx context.Context, sessionID, key string, data []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert(sessionTable).
		Columns("session_id", "session_key", "data", "updated_at").
		Values(sessionID, key, string(data), time.Now().Unix()).
		Suffix(upsertSessionSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Save").Str("key", key).Msg("failed to save session data")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
