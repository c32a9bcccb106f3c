package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/store"
	"github.com/MKhiriev/go-content-sync/models"
)

// pageTree builds the page fixture shared by the sync list tests:
//
//	1            root of the catch-all area
//	├── 10       editable
//	│   ├── 11   editable, deleted
//	│   ├── 12   owned by user 7
//	│   └── 13   excluded doc type
//	├── 20       root of area 20
//	│   └── 21
//	└── 30       site root
func pageTree() *fakePages {
	return newFakePages(
		models.Page{UID: 1, PID: 0, PermsEverybody: editPermission},
		models.Page{UID: 10, PID: 1, PermsEverybody: editPermission},
		models.Page{UID: 11, PID: 10, PermsEverybody: editPermission, Deleted: true},
		models.Page{UID: 12, PID: 10, PermsUserID: 7},
		models.Page{UID: 13, PID: 10, DocType: 254, PermsEverybody: editPermission},
		models.Page{UID: 20, PID: 1, PermsEverybody: editPermission},
		models.Page{UID: 21, PID: 20, PermsEverybody: editPermission},
		models.Page{UID: 30, PID: 1, IsSiteRoot: true, PermsEverybody: editPermission},
	)
}

var listAreas = []models.Area{
	{ID: 0, Name: "Default", DocTypesExclude: []int{255, 254}},
	{ID: 20, Name: "Microsite"},
}

// ─────────────────────────────────────────────
// Page walk
// ─────────────────────────────────────────────

func TestPageWalker_Walk(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		userID      int64
		accessLevel int
		pid         int64
		levelMax    int
		wantIDs     []int64
		wantCount   models.PageCount
	}{
		{
			name: "editor sees deleted and counts foreign pages", userID: 5, pid: 10,
			wantIDs:   []int64{11},
			wantCount: models.PageCount{Count: 2, Deleted: 1, NoAccess: 1},
		},
		{
			name: "owner may edit own page", userID: 7, pid: 10,
			wantIDs:   []int64{11, 12},
			wantCount: models.PageCount{Count: 2, Deleted: 1},
		},
		{
			name: "admin", accessLevel: models.AccessAdmin, pid: 10,
			wantIDs:   []int64{11, 12},
			wantCount: models.PageCount{Count: 2, Deleted: 1},
		},
		{
			name: "other areas and site roots are not entered", userID: 5, pid: 1,
			wantIDs:   []int64{10, 11},
			wantCount: models.PageCount{Count: 3, Deleted: 1, NoAccess: 1},
		},
		{
			name: "level limit", userID: 5, pid: 1, levelMax: 1,
			wantIDs:   []int64{10},
			wantCount: models.PageCount{Count: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newPageWalker(pageTree(), listAreas, tt.userID, tt.accessLevel)

			var count models.PageCount
			ids, err := w.walk(ctx, tt.pid, 0, tt.levelMax, listAreas[0].DocTypesExclude, &count)

			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestPageWalker_AllPageIDs_Unique(t *testing.T) {
	w := newPageWalker(pageTree(), listAreas, 5, 0)

	ids, err := w.allPageIDs(context.Background(), []models.SyncListEntry{
		{PageID: 10, Type: models.EntryTree},
		{PageID: 11, Type: models.EntryPage},
		{PageID: 12, Type: models.EntryPage},
	}, listAreas[0].DocTypesExclude)

	require.NoError(t, err)
	assert.Equal(t, []int64{10, 11}, ids)
}

func TestPageWalker_AllPageIDs_MissingPage(t *testing.T) {
	w := newPageWalker(pageTree(), listAreas, 5, 0)

	_, err := w.allPageIDs(context.Background(), []models.SyncListEntry{{PageID: 404}}, nil)
	assert.ErrorIs(t, err, store.ErrPageNotFound)
}

func TestResolveArea(t *testing.T) {
	ctx := context.Background()
	pages := pageTree()

	a, err := resolveArea(ctx, pages, listAreas, 21)
	require.NoError(t, err)
	assert.Equal(t, int64(20), a.ID)

	a, err = resolveArea(ctx, pages, listAreas, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(20), a.ID)

	a, err = resolveArea(ctx, pages, listAreas, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(0), a.ID)

	_, err = resolveArea(ctx, pages, listAreas[1:], 11)
	assert.ErrorIs(t, err, ErrUnknownArea)
}

// ─────────────────────────────────────────────
// Sync list
// ─────────────────────────────────────────────

func TestSyncList_AddRemove(t *testing.T) {
	l := &syncList{data: models.SyncListData{}}

	require.NoError(t, l.add(0, models.SyncListEntry{PageID: 10, Type: models.EntryTree}))
	require.NoError(t, l.add(20, models.SyncListEntry{PageID: 21, Type: models.EntryPage}))
	assert.ErrorIs(t, l.add(0, models.SyncListEntry{PageID: 10}), ErrDuplicatePage)
	assert.True(t, l.data[0][0].Removable)
	assert.Equal(t, []int64{0, 20}, l.areas())

	assert.ErrorIs(t, l.remove(0, 21), ErrPageNotInList)
	require.NoError(t, l.remove(20, 21))
	assert.Equal(t, []int64{0}, l.areas())

	l.emptyArea(0)
	assert.True(t, l.isEmpty())
}

func TestSyncList_PersistsInSession(t *testing.T) {
	ctx := context.Background()
	session := NewMemorySession()

	l, err := loadSyncList(ctx, session, ModulePages)
	require.NoError(t, err)
	assert.True(t, l.isEmpty())

	require.NoError(t, l.add(0, models.SyncListEntry{PageID: 10}))
	require.NoError(t, l.save(ctx, session))

	raw, ok, err := session.Get(ctx, "nr_sync_synclist46")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), `"page_id":10`)

	reloaded, err := loadSyncList(ctx, session, ModulePages)
	require.NoError(t, err)
	assert.Equal(t, l.data, reloaded.data)
}

// ─────────────────────────────────────────────
// Service
// ─────────────────────────────────────────────

func newTestSyncListService() (SyncListService, *MemorySession) {
	session := NewMemorySession()
	sessions := func(string) SyncSession { return session }
	return NewSyncListService(sessions, pageTree(), &fakeContent{}, listAreas, logger.Nop()), session
}

func TestSyncListService_AddTree(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestSyncListService()

	entry, err := svc.Add(ctx, models.SyncListRequest{
		SessionID: "s1", ModuleID: ModulePages, UserID: 5, PageID: 10, Type: models.EntryTree,
	})
	require.NoError(t, err)
	assert.Equal(t, models.SyncListEntry{
		PageID: 10, Type: models.EntryTree, Removable: true, Count: 2, Deleted: 1, NoAccess: 1,
	}, entry)

	_, err = svc.Add(ctx, models.SyncListRequest{SessionID: "s1", ModuleID: ModulePages, UserID: 5, PageID: 21})
	require.NoError(t, err)

	data, err := svc.List(ctx, "s1", ModulePages)
	require.NoError(t, err)
	require.Len(t, data[0], 1)
	require.Len(t, data[20], 1)
	assert.Equal(t, models.EntryPage, data[20][0].Type)

	_, err = svc.Add(ctx, models.SyncListRequest{SessionID: "s1", ModuleID: ModulePages, UserID: 5, PageID: 10})
	assert.ErrorIs(t, err, ErrDuplicatePage)
}

func TestSyncListService_Remove(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestSyncListService()

	_, err := svc.Add(ctx, models.SyncListRequest{SessionID: "s1", ModuleID: ModulePages, PageID: 10})
	require.NoError(t, err)

	req := models.SyncListRequest{SessionID: "s1", ModuleID: ModulePages, AreaID: 0, PageID: 10}
	require.NoError(t, svc.Remove(ctx, req))
	assert.ErrorIs(t, svc.Remove(ctx, req), ErrPageNotInList)

	data, err := svc.List(ctx, "s1", ModulePages)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestSyncListService_ModuleChecks(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestSyncListService()

	_, err := svc.Add(ctx, models.SyncListRequest{ModuleID: ModuleFAL, PageID: 10})
	assert.ErrorIs(t, err, ErrNoSyncListArea)

	_, err = svc.List(ctx, "s1", 999)
	assert.ErrorIs(t, err, ErrUnknownModule)

	_, err = svc.Add(ctx, models.SyncListRequest{ModuleID: ModulePages, PageID: 404})
	assert.ErrorIs(t, err, store.ErrPageNotFound)
}
