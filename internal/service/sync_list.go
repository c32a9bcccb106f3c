package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/store"
	"github.com/MKhiriev/go-content-sync/models"
)

const (
	syncListKeyPrefix = "nr_sync_synclist"

	// editPermission is the page permission bit needed to sync a page.
	editPermission = 2

	maxRootlineDepth = 100
)

// syncList is the page selection of one module in one session.
type syncList struct {
	key  string
	data models.SyncListData
}

func loadSyncList(ctx context.Context, session SyncSession, moduleID int) (*syncList, error) {
	l := &syncList{
		key:  syncListKeyPrefix + strconv.Itoa(moduleID),
		data: models.SyncListData{},
	}

	raw, ok, err := session.Get(ctx, l.key)
	if err != nil {
		return nil, err
	}
	if ok && len(raw) > 0 {
		if err := json.Unmarshal(raw, &l.data); err != nil {
			return nil, fmt.Errorf("decoding sync list: %w", err)
		}
	}
	return l, nil
}

func (l *syncList) save(ctx context.Context, session SyncSession) error {
	raw, err := json.Marshal(l.data)
	if err != nil {
		return err
	}
	return session.Set(ctx, l.key, raw)
}

// add queues entry in area unless the page is already queued there.
func (l *syncList) add(areaID int64, entry models.SyncListEntry) error {
	for _, e := range l.data[areaID] {
		if e.PageID == entry.PageID {
			return fmt.Errorf("%w: %d", ErrDuplicatePage, entry.PageID)
		}
	}
	entry.Removable = true
	l.data[areaID] = append(l.data[areaID], entry)
	return nil
}

// remove drops the first removable entry of pageID in area.
func (l *syncList) remove(areaID, pageID int64) error {
	entries := l.data[areaID]
	for i, e := range entries {
		if !e.Removable || e.PageID != pageID {
			continue
		}
		entries = slices.Delete(entries, i, i+1)
		if len(entries) == 0 {
			delete(l.data, areaID)
		} else {
			l.data[areaID] = entries
		}
		return nil
	}
	return fmt.Errorf("%w: %d", ErrPageNotInList, pageID)
}

func (l *syncList) emptyArea(areaID int64) {
	delete(l.data, areaID)
}

func (l *syncList) isEmpty() bool {
	return len(l.data) == 0
}

// areas returns the queued area ids in ascending order.
func (l *syncList) areas() []int64 {
	ids := make([]int64, 0, len(l.data))
	for id := range l.data {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// pageWalker resolves sync list entries into page ids for one editor.
type pageWalker struct {
	pages   store.PageRepository
	areaIDs map[int64]struct{}
	userID  int64
	admin   bool
}

func newPageWalker(pages store.PageRepository, areas []models.Area, userID int64, accessLevel int) *pageWalker {
	ids := make(map[int64]struct{}, len(areas))
	for _, a := range areas {
		if a.ID != 0 {
			ids[a.ID] = struct{}{}
		}
	}
	return &pageWalker{pages: pages, areaIDs: ids, userID: userID, admin: accessLevel >= models.AccessAdmin}
}

func (w *pageWalker) canEdit(p models.Page) bool {
	return w.admin ||
		(w.userID != 0 && p.PermsUserID == w.userID) ||
		p.PermsEverybody&editPermission != 0
}

// walk collects the editable pages below pid down to levelMax levels
// (0 is unbounded). Excluded doc types and other areas are not entered.
func (w *pageWalker) walk(ctx context.Context, pid int64, level, levelMax int, exclude []int, count *models.PageCount) ([]int64, error) {
	if pid < 0 || (levelMax != 0 && level >= levelMax) {
		return nil, nil
	}

	children, err := w.pages.Children(ctx, pid)
	if err != nil {
		return nil, err
	}

	var ids []int64
	for _, p := range children {
		if slices.Contains(exclude, p.DocType) {
			continue
		}
		if _, ok := w.areaIDs[p.UID]; ok || p.IsSiteRoot {
			continue
		}

		sub, err := w.walk(ctx, p.UID, level+1, levelMax, exclude, count)
		if err != nil {
			return nil, err
		}

		if w.canEdit(p) {
			ids = append(ids, p.UID)
		} else {
			count.NoAccess++
		}
		ids = append(ids, sub...)

		count.Count++
		if p.Deleted {
			count.Deleted++
		}
	}
	return ids, nil
}

// allPageIDs resolves entries into a unique list of page ids.
func (w *pageWalker) allPageIDs(ctx context.Context, entries []models.SyncListEntry, exclude []int) ([]int64, error) {
	seen := make(map[int64]struct{})
	var ids []int64
	appendID := func(id int64) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, entry := range entries {
		page, err := w.pages.Page(ctx, entry.PageID)
		if err != nil {
			return nil, err
		}
		if w.canEdit(page) {
			appendID(page.UID)
		}

		if entry.Type != models.EntryTree {
			continue
		}
		var count models.PageCount
		sub, err := w.walk(ctx, entry.PageID, 0, entry.LevelMax, exclude, &count)
		if err != nil {
			return nil, err
		}
		for _, id := range sub {
			appendID(id)
		}
	}
	return ids, nil
}

// resolveArea returns the nearest configured area on the rootline of
// pageID, or the catch-all area.
func resolveArea(ctx context.Context, pages store.PageRepository, areas []models.Area, pageID int64) (models.Area, error) {
	byID := make(map[int64]models.Area, len(areas))
	for _, a := range areas {
		byID[a.ID] = a
	}

	uid := pageID
	for range maxRootlineDepth {
		if a, ok := byID[uid]; ok && uid != 0 {
			return a, nil
		}
		page, err := pages.Page(ctx, uid)
		if err != nil {
			return models.Area{}, err
		}
		if page.PID <= 0 {
			break
		}
		uid = page.PID
	}

	if a, ok := byID[0]; ok {
		return a, nil
	}
	return models.Area{}, fmt.Errorf("%w: no area for page %d", ErrUnknownArea, pageID)
}

type syncListService struct {
	sessions func(sessionID string) SyncSession
	pages    store.PageRepository
	modules  *moduleRegistry
	areas    []models.Area

	logger *logger.Logger
}

// NewSyncListService constructs a [SyncListService]. sessions opens the
// session store of a backend session.
func NewSyncListService(sessions func(sessionID string) SyncSession, pages store.PageRepository,
	content store.ContentRepository, areas []models.Area, logger *logger.Logger) SyncListService {
	return &syncListService{
		sessions: sessions,
		pages:    pages,
		modules:  newModuleRegistry(content),
		areas:    areas,
		logger:   logger,
	}
}

func (s *syncListService) module(moduleID, accessLevel int) error {
	m, err := s.modules.get(moduleID)
	if err != nil {
		return err
	}
	info := m.Info()
	if !info.UsesSyncList {
		return fmt.Errorf("%w: %d", ErrNoSyncListArea, moduleID)
	}
	if accessLevel < info.AccessLevel {
		return ErrAccessDenied
	}
	return nil
}

func (s *syncListService) List(ctx context.Context, sessionID string, moduleID int) (models.SyncListData, error) {
	if err := s.module(moduleID, models.AccessAdmin); err != nil {
		return nil, err
	}

	list, err := loadSyncList(ctx, s.sessions(sessionID), moduleID)
	if err != nil {
		return nil, err
	}
	return list.data, nil
}

// Add queues a page or page tree. The area is taken from the page's rootline.
func (s *syncListService) Add(ctx context.Context, req models.SyncListRequest) (models.SyncListEntry, error) {
	log := logger.FromContext(ctx)

	if err := s.module(req.ModuleID, req.AccessLevel); err != nil {
		return models.SyncListEntry{}, err
	}

	area, err := resolveArea(ctx, s.pages, s.areas, req.PageID)
	if err != nil {
		log.Err(err).Str("func", "*syncListService.Add").Int64("page", req.PageID).Msg("failed to resolve area")
		return models.SyncListEntry{}, err
	}

	entry := models.SyncListEntry{PageID: req.PageID, Type: models.EntryPage}
	if req.Type == models.EntryTree {
		entry.Type = models.EntryTree
		entry.LevelMax = req.LevelMax

		walker := newPageWalker(s.pages, s.areas, req.UserID, req.AccessLevel)
		var count models.PageCount
		if _, err := walker.walk(ctx, req.PageID, 0, req.LevelMax, area.DocTypesExclude, &count); err != nil {
			return models.SyncListEntry{}, err
		}
		entry.Count, entry.Deleted, entry.NoAccess = count.Count, count.Deleted, count.NoAccess
	}

	session := s.sessions(req.SessionID)
	list, err := loadSyncList(ctx, session, req.ModuleID)
	if err != nil {
		return models.SyncListEntry{}, err
	}
	if err := list.add(area.ID, entry); err != nil {
		return models.SyncListEntry{}, err
	}
	if err := list.save(ctx, session); err != nil {
		log.Err(err).Str("func", "*syncListService.Add").Msg("failed to save sync list")
		return models.SyncListEntry{}, err
	}

	entry.Removable = true
	return entry, nil
}

func (s *syncListService) Remove(ctx context.Context, req models.SyncListRequest) error {
	if err := s.module(req.ModuleID, req.AccessLevel); err != nil {
		return err
	}

	session := s.sessions(req.SessionID)
	list, err := loadSyncList(ctx, session, req.ModuleID)
	if err != nil {
		return err
	}
	if err := list.remove(req.AreaID, req.PageID); err != nil {
		return err
	}
	return list.save(ctx, session)
}
