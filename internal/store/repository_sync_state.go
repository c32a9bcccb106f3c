package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/models"
	"github.com/jackc/pgerrcode"
)

// syncStateRepository stores sync watermarks. Each target has its own state
// table; table level rows use uid_foreign = 0.
type syncStateRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSyncStateRepository constructs a [SyncStateRepository] backed by db.
func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	return &syncStateRepository{db: db, logger: logger}
}

// EnsureTable creates stateTable when it does not exist yet.
func (r *syncStateRepository) EnsureTable(ctx context.Context, stateTable string) error {
	log := logger.FromContext(ctx)

	if err := checkIdentifier(stateTable); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, fmt.Sprintf(createSyncStateTable, stateTable)); err != nil {
		log.Err(err).Str("func", "*syncStateRepository.EnsureTable").Str("state_table", stateTable).Msg("failed to create state table")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get returns the state of (table, uid). The boolean is false when no
// state was recorded yet.
func (r *syncStateRepository) Get(ctx context.Context, stateTable, table string, uid int64) (models.SyncState, bool, error) {
	log := logger.FromContext(ctx)

	if err := checkIdentifier(stateTable); err != nil {
		return models.SyncState{}, false, err
	}

	query, args, err := r.db.Builder().
		Select(syncStateColumns...).
		From(stateTable).
		Where(sq.Eq{"tab": table, "uid_foreign": uid}).
		ToSql()
	if err != nil {
		return models.SyncState{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var state models.SyncState
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&state.Table, &state.RowUID, &state.Full, &state.Incr, &state.CRUserID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.SyncState{}, false, nil
	case postgresError(err) == pgerrcode.UndefinedTable:
		// state tables are created lazily on the first stamp
		return models.SyncState{}, false, nil
	case err != nil:
		log.Err(err).Str("func", "*syncStateRepository.Get").Str("table", table).Int64("uid", uid).Msg("failed to read sync state")
		return models.SyncState{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return state, true, nil
}

// List returns the table level states of tables plus the all-tables sentinel.
func (r *syncStateRepository) List(ctx context.Context, stateTable string, tables []string) ([]models.SyncState, error) {
	log := logger.FromContext(ctx)

	if err := checkIdentifier(stateTable); err != nil {
		return nil, err
	}

	names := append([]string{models.AllTablesSentinel}, tables...)
	query, args, err := r.db.Builder().
		Select(syncStateColumns...).
		From(stateTable).
		Where(sq.Eq{"uid_foreign": 0, "tab": names}).
		OrderBy("tab").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*syncStateRepository.List").Str("state_table", stateTable).Msg("failed to list sync states")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var states []models.SyncState
	for rows.Next() {
		var state models.SyncState
		if err := rows.Scan(&state.Table, &state.RowUID, &state.Full, &state.Incr, &state.CRUserID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		states = append(states, state)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return states, nil
}

// Stamp upserts the kind timestamp and the acting user of state.
// The other timestamp of an existing row is left untouched.
func (r *syncStateRepository) Stamp(ctx context.Context, stateTable string, state models.SyncState, kind models.SyncKind) error {
	log := logger.FromContext(ctx)

	if err := checkIdentifier(stateTable); err != nil {
		return err
	}

	column, value := "incr_sync", state.Incr
	if kind == models.SyncFull {
		column, value = "full_sync", state.Full
	}

	query, args, err := r.db.Builder().
		Insert(stateTable).
		Columns("tab", "uid_foreign", column, "cruser_id").
		Values(state.Table, state.RowUID, value, state.CRUserID).
		Suffix(fmt.Sprintf(upsertSyncStateSuffix, column)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.retry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "*syncStateRepository.Stamp").
			Str("table", state.Table).
			Int64("uid", state.RowUID).
			Str("kind", string(kind)).
			Msg("failed to stamp sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
