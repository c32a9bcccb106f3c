package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/store"
	"github.com/MKhiriev/go-content-sync/models"
)

const stateTablePrefix = "tx_nrsync_syncstat"

// defaultLastSync is used when neither the table nor the sentinel was ever synced.
var defaultLastSync = time.Date(2013, time.February, 1, 0, 0, 0, 0, time.Local)

// StateTableName returns the sync state table of target.
func StateTableName(target string) string {
	if target == "" || strings.EqualFold(target, models.TargetAll) {
		return stateTablePrefix
	}
	return stateTablePrefix + "_" + strings.ToLower(target)
}

// isJoinTable reports whether rows of table always pass the sync filter.
func isJoinTable(table string) bool {
	return strings.Contains(table, "_mm")
}

// syncTracker reads and writes the sync watermarks of one run.
type syncTracker struct {
	states   store.SyncStateRepository
	exporter store.TableExporter
	meta     MetadataProvider

	stateTable string
	userID     int64
	kind       models.SyncKind
	now        func() time.Time

	lastSync map[string]int64
}

func newSyncTracker(states store.SyncStateRepository, exporter store.TableExporter, meta MetadataProvider,
	req models.SyncRequest, now func() time.Time) *syncTracker {
	kind := models.SyncIncr
	if req.IsFull() {
		kind = models.SyncFull
	}
	return &syncTracker{
		states:     states,
		exporter:   exporter,
		meta:       meta,
		stateTable: StateTableName(req.Target),
		userID:     req.UserID,
		kind:       kind,
		now:        now,
		lastSync:   make(map[string]int64),
	}
}

func (t *syncTracker) ensure(ctx context.Context) error {
	return t.states.EnsureTable(ctx, t.stateTable)
}

// isRowSyncable reports whether row uid of table changed since it was last
// captured. Rows without a modification time are skipped; tables without a
// modification column are always dumped.
func (t *syncTracker) isRowSyncable(ctx context.Context, table string, uid int64) (bool, error) {
	if isJoinTable(table) {
		return true, nil
	}

	field, err := t.meta.TstampField(table)
	if err != nil {
		return false, err
	}
	if field == "" {
		return true, nil
	}

	modified, err := t.exporter.Timestamp(ctx, table, field, uid)
	if err != nil {
		return false, fmt.Errorf("reading modification time of %s:%d: %w", table, uid, err)
	}
	if modified == 0 {
		return false, nil
	}

	state, _, err := t.states.Get(ctx, t.stateTable, table, uid)
	if err != nil {
		return false, err
	}

	watermark, err := t.lastSyncTime(ctx, table)
	if err != nil {
		return false, err
	}

	return modified > max(state.Full, watermark), nil
}

// lastSyncTime returns the latest table level stamp of table or of the
// all-tables sentinel, falling back to a fixed epoch.
func (t *syncTracker) lastSyncTime(ctx context.Context, table string) (int64, error) {
	if last, ok := t.lastSync[table]; ok {
		return last, nil
	}

	var last int64
	for _, name := range []string{table, models.AllTablesSentinel} {
		state, found, err := t.states.Get(ctx, t.stateTable, name, 0)
		if err != nil {
			return 0, err
		}
		if found {
			last = max(last, state.LastTime())
		}
	}
	if last == 0 {
		last = defaultLastSync.Unix()
	}

	t.lastSync[table] = last
	return last, nil
}

// stampRow records that row uid of table was dumped now. uid 0 stamps the table.
func (t *syncTracker) stampRow(ctx context.Context, table string, uid int64) error {
	return t.stamp(ctx, table, uid, t.kind)
}

func (t *syncTracker) stamp(ctx context.Context, table string, uid int64, kind models.SyncKind) error {
	now := t.now().Unix()
	state := models.SyncState{Table: table, RowUID: uid, CRUserID: t.userID}
	if kind == models.SyncFull {
		state.Full = now
	} else {
		state.Incr = now
	}

	if err := t.states.Stamp(ctx, t.stateTable, state, kind); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*syncTracker.stamp").
			Str("table", table).
			Int64("uid", uid).
			Msg("failed to stamp sync state")
		return err
	}
	return nil
}

// filterSyncable drops lines of rows that did not change since they were
// last captured. Join lines always pass.
func (t *syncTracker) filterSyncable(ctx context.Context, set models.ChangeSet) (models.ChangeSet, error) {
	verdicts := make(map[rowRef]bool)
	keep := func(line models.ChangeLine) (bool, error) {
		if line.Join {
			return true, nil
		}
		ref := refOf(line.Key)
		if ok, seen := verdicts[ref]; seen {
			return ok, nil
		}
		ok, err := t.isRowSyncable(ctx, line.Key.Table, line.RowUID)
		if err != nil {
			return false, err
		}
		verdicts[ref] = ok
		return ok, nil
	}

	var out models.ChangeSet
	for _, line := range set.Deletes {
		ok, err := keep(line)
		if err != nil {
			return models.ChangeSet{}, err
		}
		if ok {
			out.Deletes = append(out.Deletes, line)
		}
	}
	for _, line := range set.Inserts {
		ok, err := keep(line)
		if err != nil {
			return models.ChangeSet{}, err
		}
		if ok {
			out.Inserts = append(out.Inserts, line)
		}
	}
	return out, nil
}

// stampInserts stamps every row that was written as an insert. Join rows
// have no state of their own.
func (t *syncTracker) stampInserts(ctx context.Context, lines []models.ChangeLine) error {
	for _, line := range lines {
		if line.RowUID == 0 || line.Join || isJoinTable(line.Key.Table) {
			continue
		}
		if err := t.stampRow(ctx, line.Key.Table, line.RowUID); err != nil {
			return err
		}
	}
	return nil
}

// tableStats merges the table level states of tables with the sentinel.
func tableStats(states []models.SyncState, tables []string) []models.TableStats {
	byTable := make(map[string]models.SyncState, len(states))
	for _, s := range states {
		byTable[s.Table] = s
	}
	sentinel := byTable[models.AllTablesSentinel]

	stats := make([]models.TableStats, 0, len(tables))
	for _, table := range tables {
		s := byTable[table]
		st := models.TableStats{
			Table:    table,
			Full:     max(s.Full, sentinel.Full),
			Incr:     max(s.Incr, sentinel.Incr),
			LastUser: s.CRUserID,
		}
		if sentinel.LastTime() > s.LastTime() {
			st.LastUser = sentinel.CRUserID
		}

		merged := models.SyncState{Full: st.Full, Incr: st.Incr}
		if last := merged.LastTime(); last > 0 {
			st.LastTime = time.Unix(last, 0)
			st.LastType = merged.LastKind()
		}
		stats = append(stats, st)
	}
	return stats
}
