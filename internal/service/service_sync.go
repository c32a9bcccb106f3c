package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/store"
	"github.com/MKhiriev/go-content-sync/models"
)

const fileMetadataTable = "sys_file_metadata"

// syncService is the concrete implementation of SyncService. It resolves
// the module, builds the artifact in scratch and hands it to the delivery
// coordinator.
type syncService struct {
	meta     MetadataProvider
	exporter store.TableExporter
	states   store.SyncStateRepository
	pages    store.PageRepository
	blobs    BlobStore
	sessions func(sessionID string) SyncSession

	modules  *moduleRegistry
	delivery *deliveryCoordinator
	areas    []models.Area

	scratchDir    string
	syncDir       string
	lockDir       string
	exportTimeout time.Duration
	clearCacheURL string
	defaultTarget string
	now           func() time.Time

	logger *logger.Logger
}

// SyncDeps are the collaborators of the sync service.
type SyncDeps struct {
	Storages *store.Storages
	Meta     MetadataProvider
	Blobs    BlobStore
	Notifier TargetNotifier
	Sessions func(sessionID string) SyncSession
	Areas    []models.Area

	// LockDir is an OS directory for dump lock files. Empty disables them.
	LockDir string
}

// NewSyncService constructs the sync orchestrator.
func NewSyncService(deps SyncDeps, cfg config.StructuredConfig, logger *logger.Logger) SyncService {
	now := time.Now
	return &syncService{
		meta:          deps.Meta,
		exporter:      deps.Storages.Exporter,
		states:        deps.Storages.SyncState,
		pages:         deps.Storages.Pages,
		blobs:         deps.Blobs,
		sessions:      deps.Sessions,
		modules:       newModuleRegistry(deps.Storages.Content),
		delivery:      newDeliveryCoordinator(deps.Blobs, deps.Storages.Registry, deps.Notifier, deps.Areas, cfg.Storage.Files.SyncDir, now),
		areas:         deps.Areas,
		scratchDir:    cfg.Storage.Files.ScratchDir,
		syncDir:       cfg.Storage.Files.SyncDir,
		lockDir:       deps.LockDir,
		exportTimeout: cfg.Sync.ExportTimeout,
		clearCacheURL: cfg.Adapter.ClearCacheURL,
		defaultTarget: cfg.Sync.DefaultTarget,
		now:           now,
		logger:        logger,
	}
}

func (s *syncService) Modules(_ context.Context, accessLevel int) []models.ModuleInfo {
	return s.modules.list(accessLevel)
}

// Run executes one sync module. Errors that abort the run are returned and
// also recorded as error messages in the result.
func (s *syncService) Run(ctx context.Context, req models.SyncRequest) (models.SyncResult, error) {
	log := logger.FromContext(ctx)
	result := models.SyncResult{Messages: []models.Message{}}

	m, err := s.modules.get(req.ModuleID)
	if err != nil {
		return result, err
	}
	if req.AccessLevel < m.Info().AccessLevel {
		return result, ErrAccessDenied
	}
	if req.Target == "" {
		req.Target = s.defaultTarget
	}

	log.Info().
		Str("func", "*syncService.Run").
		Int("module", req.ModuleID).
		Str("target", req.Target).
		Bool("full", req.IsFull()).
		Int64("user", req.UserID).
		Msg("starting sync")

	if err := m.run(ctx, s, req, &result); err != nil {
		log.Err(err).Str("func", "*syncService.Run").Int("module", req.ModuleID).Msg("sync failed")
		if !errors.Is(err, ErrAreaSync) {
			result.Add(models.SeverityError, userMessage(err))
		}
		return result, err
	}
	return result, nil
}

// State returns the sync stats of the module's tables for target.
func (s *syncService) State(ctx context.Context, moduleID int, target string) ([]models.TableStats, error) {
	m, err := s.modules.get(moduleID)
	if err != nil {
		return nil, err
	}
	if target == "" {
		target = s.defaultTarget
	}

	stateTable := StateTableName(target)
	if err := s.states.EnsureTable(ctx, stateTable); err != nil {
		return nil, err
	}

	tables := m.Info().Tables
	states, err := s.states.List(ctx, stateTable, tables)
	if err != nil {
		return nil, err
	}
	return tableStats(states, tables), nil
}

// ── dump pipeline ──────────────────────────────────────────────────────────

// dumpRun is the per-artifact state shared by the builder flushes.
type dumpRun struct {
	meta    MetadataProvider
	tracker *syncTracker
	lines   *lineStore
	writer  *dumpWriter
	force   bool
	today   int64
}

// flush filters, deduplicates and writes one batch, then stamps the rows
// that were written as inserts.
func (r *dumpRun) flush(ctx context.Context, set models.ChangeSet) error {
	if !r.force {
		filtered, err := r.tracker.filterSyncable(ctx, set)
		if err != nil {
			return err
		}
		set = filtered
	}

	set = r.lines.recordAndDedupe(set)
	if err := r.writer.appendDeletes(set.Deletes); err != nil {
		return err
	}
	r.writer.addInserts(set.Inserts)
	return r.tracker.stampInserts(ctx, set.Inserts)
}

func (r *dumpRun) registerObsolete(table string) error {
	control, err := r.meta.Control(table)
	if err != nil {
		return err
	}
	r.writer.addObsoleteCleanup(obsoleteRowsStatement(table, control, r.today))
	return nil
}

// writeFunc fills the opened artifact.
type writeFunc func(ctx context.Context, run *dumpRun) error

// artifactPrefix is <full|inc>_<target>.
func artifactPrefix(req models.SyncRequest) string {
	kind := "inc"
	if req.IsFull() {
		kind = "full"
	}
	target := strings.ToLower(req.Target)
	if target == "" {
		target = models.TargetAll
	}
	return kind + "_" + target
}

// artifactName is <full|inc>_<target>_<timestamp>_<dump file>.
func artifactName(dumpFile string, req models.SyncRequest, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s", artifactPrefix(req), now.Format("20060102150405"), dumpFile)
}

// areaDumpFile tags dumpFile with the id of any area but the default one,
// so the areas of one page list run never share an artifact name.
func areaDumpFile(dumpFile string, areaID int64) string {
	if areaID == 0 {
		return dumpFile
	}
	ext := path.Ext(dumpFile)
	return fmt.Sprintf("%s_area%d%s", strings.TrimSuffix(dumpFile, ext), areaID, ext)
}

// dumpLockPath is the lock file shared by every run of dumpFile for the
// same kind and target. Empty when file locks are disabled.
func (s *syncService) dumpLockPath(dumpFile string, req models.SyncRequest) string {
	if s.lockDir == "" {
		return ""
	}
	return filepath.Join(s.lockDir, artifactPrefix(req)+"_"+dumpFile+".lock")
}

// clearCacheURLs renders the clear-cache signal of pageIDs.
func (s *syncService) clearCacheURLs(pageIDs []int64) []string {
	if len(pageIDs) == 0 || s.clearCacheURL == "" {
		return nil
	}
	signal := make([]string, 0, len(pageIDs))
	for _, id := range pageIDs {
		signal = append(signal, "pages:"+strconv.FormatInt(id, 10))
	}
	return []string{fmt.Sprintf(s.clearCacheURL, strings.Join(signal, ","))}
}

// dumpAndDeliver builds one artifact for area, delivers it and notifies the
// targets. It reports whether the artifact reached the targets.
func (s *syncService) dumpAndDeliver(ctx context.Context, m baseModule, area models.Area, req models.SyncRequest,
	write writeFunc, clearPages func(ctx context.Context) ([]int64, error), result *models.SyncResult) (bool, error) {
	log := logger.FromContext(ctx)

	if err := s.delivery.checkLocks(ctx, area, req.Target); err != nil {
		return false, err
	}
	targets, err := selectTargets(area, req.Target)
	if err != nil {
		return false, err
	}

	now := s.now()
	tracker := newSyncTracker(s.states, s.exporter, s.meta, req, s.now)
	if err := tracker.ensure(ctx); err != nil {
		return false, err
	}

	name := artifactName(m.dumpFile, req, now)
	writer, err := openDump(s.blobs, s.scratchDir, s.delivery.targetDirs(targets), s.dumpLockPath(m.dumpFile, req), name)
	if err != nil {
		return false, err
	}
	defer writer.Close()

	run := &dumpRun{
		meta:    s.meta,
		tracker: tracker,
		lines:   newLineStore(),
		writer:  writer,
		force:   req.IsFull(),
		today:   midnight(now),
	}
	if err := write(ctx, run); err != nil {
		return false, err
	}

	artifact, err := writer.finalize()
	if errors.Is(err, ErrEmptyDump) {
		log.Info().Str("func", "*syncService.dumpAndDeliver").Int64("area", area.ID).Msg("nothing to sync")
		result.Add(models.SeverityInfo, fmt.Sprintf("No data dumped for area %q, nothing changed.", area.Name))
		return false, nil
	}
	if err != nil {
		return false, err
	}

	delivered, err := s.delivery.deliver(ctx, artifact, targets, result)
	if err != nil {
		return false, err
	}
	if len(delivered) == 0 {
		return false, nil
	}

	fileName := path.Base(artifact)
	names := make([]string, 0, len(delivered))
	for _, t := range delivered {
		names = append(names, t.Name)
	}

	var pageIDs []int64
	if clearPages != nil {
		if pageIDs, err = clearPages(ctx); err != nil {
			return false, err
		}
	}
	if err := s.delivery.notify(ctx, delivered, fileName, s.clearCacheURLs(pageIDs)); err != nil {
		return false, err
	}

	result.Artifact = fileName
	result.Delivered = append(result.Delivered, names...)
	result.Add(models.SeveritySuccess, fmt.Sprintf("Sync initiated: %s delivered to %s.",
		fileName, strings.Join(names, ", ")))
	return true, nil
}

// ── page list modules ──────────────────────────────────────────────────────

// runPageList dumps the queued pages, one artifact per area. A delivered
// area is removed from the session sync list. An area that fails is
// reported and the remaining areas are still attempted.
func (s *syncService) runPageList(ctx context.Context, m baseModule, req models.SyncRequest, result *models.SyncResult) error {
	var (
		session SyncSession
		list    *syncList
		err     error
	)
	if len(req.PageIDs) > 0 {
		session = NewMemorySession()
		list, err = s.listFromPageIDs(ctx, req.PageIDs)
	} else {
		session = s.sessions(req.SessionID)
		list, err = loadSyncList(ctx, session, m.id)
	}
	if err != nil {
		return err
	}
	if list.isEmpty() {
		return ErrNoPagesMarked
	}

	log := logger.FromContext(ctx)
	walker := newPageWalker(s.pages, s.areas, req.UserID, req.AccessLevel)

	var failed []error
	for _, areaID := range list.areas() {
		if err := ctx.Err(); err != nil {
			failed = append(failed, err)
			break
		}
		if err := s.syncArea(ctx, m, areaID, walker, list, session, req, result); err != nil {
			log.Err(err).Str("func", "*syncService.runPageList").Int64("area", areaID).Msg("area sync failed")
			result.Add(models.SeverityError, fmt.Sprintf("Area %d: %s", areaID, userMessage(err)))
			failed = append(failed, err)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: %w", ErrAreaSync, errors.Join(failed...))
	}
	return nil
}

// syncArea dumps and delivers the queued pages of one area.
func (s *syncService) syncArea(ctx context.Context, m baseModule, areaID int64, walker *pageWalker,
	list *syncList, session SyncSession, req models.SyncRequest, result *models.SyncResult) error {
	area, err := s.delivery.area(areaID)
	if err != nil {
		return err
	}

	pageIDs, err := walker.allPageIDs(ctx, list.data[areaID], area.DocTypesExclude)
	if err != nil {
		return err
	}
	if len(pageIDs) == 0 {
		result.Add(models.SeverityWarning, fmt.Sprintf("No accessible pages in area %q.", area.Name))
		return nil
	}

	write := func(ctx context.Context, run *dumpRun) error {
		builder := newChangeSetBuilder(s.meta, s.exporter, run.flush)
		if req.DeleteObsolete {
			builder.obsolete = run.registerObsolete
		}
		for _, table := range m.tables {
			if err := builder.buildChangesForRows(ctx, table, pageIDs, false); err != nil {
				return err
			}
		}
		return nil
	}
	clearPages := func(context.Context) ([]int64, error) { return pageIDs, nil }

	am := m
	am.dumpFile = areaDumpFile(m.dumpFile, areaID)
	delivered, err := s.dumpAndDeliver(ctx, am, area, req, write, clearPages, result)
	if err != nil || !delivered {
		return err
	}
	list.emptyArea(areaID)
	return list.save(ctx, session)
}

// listFromPageIDs queues pageIDs as single pages in their areas.
func (s *syncService) listFromPageIDs(ctx context.Context, pageIDs []int64) (*syncList, error) {
	list := &syncList{data: models.SyncListData{}}
	for _, id := range pageIDs {
		area, err := resolveArea(ctx, s.pages, s.areas, id)
		if err != nil {
			return nil, err
		}
		if err := list.add(area.ID, models.SyncListEntry{PageID: id, Type: models.EntryPage}); err != nil && !errors.Is(err, ErrDuplicatePage) {
			return nil, err
		}
	}
	return list, nil
}

// ── table set modules ──────────────────────────────────────────────────────

func (s *syncService) runTableSet(ctx context.Context, m baseModule, req models.SyncRequest,
	clearPages func(ctx context.Context) ([]int64, error), result *models.SyncResult) error {
	write := func(ctx context.Context, run *dumpRun) error {
		return s.dumpTables(ctx, m.tables, req, run, result)
	}
	_, err := s.dumpAndDeliver(ctx, m, s.delivery.defaultArea(), req, write, clearPages, result)
	return err
}

// dumpTables writes whole tables. Tables with a modification column are
// dumped incrementally unless the run is forced; all others are truncated
// and written in full.
func (s *syncService) dumpTables(ctx context.Context, tables []string, req models.SyncRequest, run *dumpRun, result *models.SyncResult) error {
	log := logger.FromContext(ctx)

	for _, table := range tables {
		if !s.meta.HasTable(table) {
			return fmt.Errorf("%w: %s", ErrUnknownTable, table)
		}
		columns, err := s.meta.Columns(ctx, table)
		if err != nil {
			return err
		}
		field, err := s.meta.TstampField(table)
		if err != nil {
			return err
		}

		if !req.IsFull() && field != "" {
			written, err := s.dumpTableIncremental(ctx, table, field, columns, run)
			if err != nil {
				return err
			}
			if !written {
				log.Info().Str("func", "*syncService.dumpTables").Str("table", table).Msg("table skipped, no changes")
				result.Add(models.SeverityInfo, fmt.Sprintf("Table %q skipped - no changes since last sync.", table))
			}
			continue
		}

		if err := s.dumpTableFull(ctx, table, columns, run); err != nil {
			return err
		}
	}

	if req.DeleteObsolete {
		for _, table := range tables {
			if err := run.registerObsolete(table); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *syncService) dumpTableIncremental(ctx context.Context, table, field string, columns []string, run *dumpRun) (bool, error) {
	last, err := run.tracker.lastSyncTime(ctx, table)
	if err != nil {
		return false, err
	}

	exportCtx, cancel := s.exportContext(ctx)
	defer cancel()

	where := sq.Gt{field: last}
	count, err := s.exporter.CountRows(exportCtx, table, where)
	if err != nil {
		return false, err
	}
	if count == 0 {
		return false, nil
	}

	rows, err := s.exporter.ExportTable(exportCtx, table, where)
	if err != nil {
		return false, fmt.Errorf("exporting %s: %w", table, err)
	}
	statements := make([]string, 0, len(rows))
	for _, row := range rows {
		statements = append(statements, replaceLine(table, columns, rowValues(row, columns)))
	}
	if err := run.writer.appendRaw(statements); err != nil {
		return false, err
	}
	return true, run.tracker.stamp(ctx, table, 0, models.SyncIncr)
}

func (s *syncService) dumpTableFull(ctx context.Context, table string, columns []string, run *dumpRun) error {
	exportCtx, cancel := s.exportContext(ctx)
	defer cancel()

	rows, err := s.exporter.ExportTable(exportCtx, table, nil)
	if err != nil {
		return fmt.Errorf("exporting %s: %w", table, err)
	}

	statements := make([]string, 0, len(rows)+1)
	statements = append(statements, truncateLine(table))
	for _, row := range rows {
		values := rowValues(row, columns)
		if table == fileMetadataTable {
			statements = append(statements, replaceLine(table, columns, values))
		} else {
			statements = append(statements, insertLine(table, columns, values))
		}
	}
	if err := run.writer.appendRaw(statements); err != nil {
		return err
	}
	return run.tracker.stamp(ctx, table, 0, models.SyncFull)
}

func (s *syncService) exportContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.exportTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.exportTimeout)
}

// ── notify only and table state ────────────────────────────────────────────

// runNotifyOnly triggers the unlocked targets of the default area.
func (s *syncService) runNotifyOnly(ctx context.Context, req models.SyncRequest, result *models.SyncResult) error {
	area := s.delivery.defaultArea()
	if err := s.delivery.checkLocks(ctx, area, req.Target); err != nil {
		return err
	}
	targets, err := selectTargets(area, req.Target)
	if err != nil {
		return err
	}

	var unlocked []models.Target
	for _, t := range targets {
		if s.delivery.isTargetLocked(t) {
			result.Add(models.SeverityWarning, fmt.Sprintf("Target %q is locked, not triggered.", t.Name))
			continue
		}
		unlocked = append(unlocked, t)
	}

	if err := s.delivery.notify(ctx, unlocked, "", nil); err != nil {
		return err
	}
	for _, t := range unlocked {
		result.Delivered = append(result.Delivered, t.Name)
	}
	result.Add(models.SeveritySuccess, "Targets triggered.")
	return nil
}

// runTableState snapshots the column list of every catalog table into the
// sync directory and reports differences to the previous snapshot.
func (s *syncService) runTableState(ctx context.Context, dumpFile string, result *models.SyncResult) error {
	snapshot := make(map[string][]string)
	for _, table := range s.meta.Tables() {
		columns, err := s.meta.Columns(ctx, table)
		if err != nil {
			return err
		}
		snapshot[table] = columns
	}

	current, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoding table state: %w", err)
	}

	file := path.Join(s.syncDir, dumpFile)
	if s.blobs.HasFile(file) {
		previous, err := s.blobs.GetContents(file)
		if err != nil {
			return err
		}
		diff, err := schemaDrift(previous, current)
		if err != nil {
			return err
		}
		if diff != "" {
			logger.FromContext(ctx).Warn().Str("func", "*syncService.runTableState").Msg("table definitions changed")
			result.Add(models.SeverityWarning, "Table definitions changed since the last snapshot:\n"+diff)
		}
	}

	if err := s.blobs.SetContents(file, current); err != nil {
		return err
	}
	result.Artifact = dumpFile
	result.Add(models.SeveritySuccess, fmt.Sprintf("Table state of %d tables saved.", len(snapshot)))
	return nil
}

// schemaDrift returns a unified diff of two snapshots, empty when equal.
func schemaDrift(previous, current []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(previous)),
		B:        difflib.SplitLines(string(current)),
		FromFile: "previous",
		ToFile:   "current",
		Context:  1,
	})
}

// userMessage is the text shown to editors for err.
func userMessage(err error) string {
	switch {
	case errors.Is(err, ErrDumpInProgress):
		return "Last sync not finished, try again later."
	case errors.Is(err, ErrNoPagesMarked):
		return "Please mark pages for synchronization."
	case errors.Is(err, ErrNotify):
		return "Targets could not be notified, the sync was reverted."
	default:
		return err.Error()
	}
}
