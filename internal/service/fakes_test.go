package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-content-sync/internal/store"
	"github.com/MKhiriev/go-content-sync/models"
)

// ── metadata ──────────────────────────────────────────────────────────────

type fakeTable struct {
	columns   []string
	relations []models.RelationConfig
	control   models.ControlFields
	tstamp    string
}

type fakeMeta struct {
	tables map[string]fakeTable
}

func (m *fakeMeta) Tables() []string {
	names := make([]string, 0, len(m.tables))
	for name := range m.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *fakeMeta) HasTable(table string) bool {
	_, ok := m.tables[table]
	return ok
}

func (m *fakeMeta) table(table string) (fakeTable, error) {
	t, ok := m.tables[table]
	if !ok {
		return fakeTable{}, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return t, nil
}

func (m *fakeMeta) Columns(_ context.Context, table string) ([]string, error) {
	t, err := m.table(table)
	return t.columns, err
}

func (m *fakeMeta) Relations(table string) ([]models.RelationConfig, error) {
	t, err := m.table(table)
	return t.relations, err
}

func (m *fakeMeta) Control(table string) (models.ControlFields, error) {
	t, err := m.table(table)
	return t.control, err
}

func (m *fakeMeta) TstampField(table string) (string, error) {
	t, err := m.table(table)
	return t.tstamp, err
}

// ── exporter ──────────────────────────────────────────────────────────────

// fakeExporter serves rows from memory and understands the predicates the
// service builds: nil, sq.Eq (scalar or slice values) and sq.Gt.
type fakeExporter struct {
	rows map[string][]models.Row

	exportErr error
	exports   []string
}

func row(columns []string, values ...any) models.Row {
	return models.Row{Columns: columns, Values: values}
}

func (e *fakeExporter) ExportTable(_ context.Context, table string, where sq.Sqlizer) ([]models.Row, error) {
	e.exports = append(e.exports, table)
	if e.exportErr != nil {
		return nil, e.exportErr
	}

	var out []models.Row
	for _, r := range e.rows[table] {
		if matches(r, where) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (e *fakeExporter) CountRows(ctx context.Context, table string, where sq.Sqlizer) (int64, error) {
	rows, err := e.ExportTable(ctx, table, where)
	return int64(len(rows)), err
}

func (e *fakeExporter) Timestamp(_ context.Context, table, field string, uid int64) (int64, error) {
	for _, r := range e.rows[table] {
		if rowUID(r) != uid {
			continue
		}
		v, ok := r.Get(field)
		if !ok {
			return 0, fmt.Errorf("no column %s", field)
		}
		return toInt64(v), nil
	}
	return 0, nil
}

func matches(r models.Row, where sq.Sqlizer) bool {
	switch w := where.(type) {
	case nil:
		return true
	case sq.Eq:
		for column, want := range w {
			got, ok := r.Get(column)
			if !ok {
				return false
			}
			if ids, isSlice := want.([]int64); isSlice {
				if !slices.Contains(ids, toInt64(got)) {
					return false
				}
				continue
			}
			if fmt.Sprint(got) != fmt.Sprint(want) {
				return false
			}
		}
		return true
	case sq.Gt:
		for column, bound := range w {
			got, ok := r.Get(column)
			if !ok || toInt64(got) <= toInt64(bound) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("unsupported predicate %T", where))
	}
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	case string:
		i, _ := strconv.ParseInt(n, 10, 64)
		return i
	default:
		return 0
	}
}

// ── sync state ────────────────────────────────────────────────────────────

type stateKey struct {
	stateTable string
	table      string
	uid        int64
}

type fakeStates struct {
	mu      sync.Mutex
	states  map[stateKey]models.SyncState
	ensured []string
}

func newFakeStates() *fakeStates {
	return &fakeStates{states: make(map[stateKey]models.SyncState)}
}

func (s *fakeStates) put(stateTable string, state models.SyncState) {
	s.states[stateKey{stateTable, state.Table, state.RowUID}] = state
}

func (s *fakeStates) EnsureTable(_ context.Context, stateTable string) error {
	s.ensured = append(s.ensured, stateTable)
	return nil
}

func (s *fakeStates) Get(_ context.Context, stateTable, table string, uid int64) (models.SyncState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[stateKey{stateTable, table, uid}]
	return state, ok, nil
}

func (s *fakeStates) List(_ context.Context, stateTable string, tables []string) ([]models.SyncState, error) {
	var out []models.SyncState
	for _, name := range append([]string{models.AllTablesSentinel}, tables...) {
		if state, ok := s.states[stateKey{stateTable, name, 0}]; ok {
			out = append(out, state)
		}
	}
	return out, nil
}

func (s *fakeStates) Stamp(_ context.Context, stateTable string, state models.SyncState, kind models.SyncKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := stateKey{stateTable, state.Table, state.RowUID}
	current := s.states[key]
	current.Table, current.RowUID, current.CRUserID = state.Table, state.RowUID, state.CRUserID
	if kind == models.SyncFull {
		current.Full = state.Full
	} else {
		current.Incr = state.Incr
	}
	s.states[key] = current
	return nil
}

// ── registry, pages, content ──────────────────────────────────────────────

type fakeRegistry struct {
	values map[string]string
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{values: make(map[string]string)}
}

func (r *fakeRegistry) Get(_ context.Context, namespace, key string) (string, bool, error) {
	v, ok := r.values[namespace+"/"+key]
	return v, ok, nil
}

func (r *fakeRegistry) Set(_ context.Context, namespace, key, value string) error {
	r.values[namespace+"/"+key] = value
	return nil
}

func (r *fakeRegistry) Delete(_ context.Context, namespace, key string) error {
	delete(r.values, namespace+"/"+key)
	return nil
}

type fakePages struct {
	pages map[int64]models.Page
}

func newFakePages(pages ...models.Page) *fakePages {
	p := &fakePages{pages: make(map[int64]models.Page)}
	for _, page := range pages {
		p.pages[page.UID] = page
	}
	return p
}

func (p *fakePages) Page(_ context.Context, uid int64) (models.Page, error) {
	page, ok := p.pages[uid]
	if !ok {
		return models.Page{}, fmt.Errorf("%w: %d", store.ErrPageNotFound, uid)
	}
	return page, nil
}

func (p *fakePages) Children(_ context.Context, pid int64) ([]models.Page, error) {
	var children []models.Page
	for _, page := range p.pages {
		if page.PID == pid {
			children = append(children, page)
		}
	}
	sort.Slice(children, func(i, j int) bool { return children[i].UID < children[j].UID })
	return children, nil
}

type fakeContent struct {
	newsPages []int64
	dangling  int64
}

func (c *fakeContent) NewsPluginPageIDs(context.Context) ([]int64, error) {
	return c.newsPages, nil
}

func (c *fakeContent) DanglingFileReferences(context.Context) (int64, error) {
	return c.dangling, nil
}

// ── notifier ──────────────────────────────────────────────────────────────

type notifyCall struct {
	target string
	urls   []string
}

type fakeNotifier struct {
	calls []notifyCall
	// failOn makes Notify fail for the named target.
	failOn    string
	retracted []string
}

var errNotifyFailed = errors.New("hook answered 500")

func (n *fakeNotifier) Notify(_ context.Context, target models.Target, urls []string) error {
	n.calls = append(n.calls, notifyCall{target: target.Name, urls: urls})
	if n.failOn != "" && target.Name == n.failOn {
		return errNotifyFailed
	}
	return nil
}

func (n *fakeNotifier) Retract(_ context.Context, target models.Target, _ []string) error {
	n.retracted = append(n.retracted, target.Name)
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
