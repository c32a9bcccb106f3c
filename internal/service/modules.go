package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-content-sync/internal/store"
	"github.com/MKhiriev/go-content-sync/models"
)

// Module ids are shared with the backend menu and must stay stable.
const (
	ModulePages      = 46
	ModuleFAL        = 8
	ModuleDomains    = 31
	ModuleFEGroups   = 9
	ModuleBEUsers    = 10
	ModuleScheduler  = 40
	ModuleRedirects  = 47
	ModuleNews       = 48
	ModuleAssets     = 35
	ModuleTableState = 17
)

// syncModule is one entry of the closed module set.
type syncModule interface {
	Info() models.ModuleInfo
	run(ctx context.Context, s *syncService, req models.SyncRequest, result *models.SyncResult) error
}

type baseModule struct {
	id          int
	name        string
	accessLevel int
	tables      []string
	dumpFile    string
}

func (m baseModule) Info() models.ModuleInfo {
	return models.ModuleInfo{
		ID:          m.id,
		Name:        m.name,
		AccessLevel: m.accessLevel,
		Tables:      m.tables,
		DumpFile:    m.dumpFile,
	}
}

// pageListModule dumps the pages queued in the session sync list.
type pageListModule struct{ baseModule }

func (m pageListModule) Info() models.ModuleInfo {
	info := m.baseModule.Info()
	info.UsesSyncList = true
	return info
}

func (m pageListModule) run(ctx context.Context, s *syncService, req models.SyncRequest, result *models.SyncResult) error {
	return s.runPageList(ctx, m.baseModule, req, result)
}

// tableSetModule dumps a fixed list of tables.
type tableSetModule struct {
	baseModule

	// preflight adds module specific warnings before the dump.
	preflight func(ctx context.Context, result *models.SyncResult) error
	// clearCache lists pages whose cache is flushed after delivery.
	clearCache func(ctx context.Context) ([]int64, error)
}

func (m tableSetModule) run(ctx context.Context, s *syncService, req models.SyncRequest, result *models.SyncResult) error {
	if m.preflight != nil {
		if err := m.preflight(ctx, result); err != nil {
			return err
		}
	}
	return s.runTableSet(ctx, m.baseModule, req, m.clearCache, result)
}

// notifyModule only triggers the targets.
type notifyModule struct{ baseModule }

func (m notifyModule) run(ctx context.Context, s *syncService, req models.SyncRequest, result *models.SyncResult) error {
	return s.runNotifyOnly(ctx, req, result)
}

// tableStateModule snapshots the column lists of every catalog table.
type tableStateModule struct{ baseModule }

func (m tableStateModule) run(ctx context.Context, s *syncService, _ models.SyncRequest, result *models.SyncResult) error {
	return s.runTableState(ctx, m.dumpFile, result)
}

// moduleRegistry is the ordered set of sync modules built at startup.
type moduleRegistry struct {
	modules []syncModule
	byID    map[int]syncModule
}

func newModuleRegistry(content store.ContentRepository) *moduleRegistry {
	modules := []syncModule{
		pageListModule{baseModule{
			id: ModulePages, name: "Single pages with content", accessLevel: 0,
			tables:   []string{"pages", "pages_language_overlay", "tt_content", "sys_template", "sys_file_reference"},
			dumpFile: "partly-pages.sql",
		}},
		tableSetModule{
			baseModule: baseModule{
				id: ModuleFAL, name: "FAL", accessLevel: 0,
				tables: []string{"sys_file", "sys_category", "sys_filemounts", "sys_category_record_mm",
					"sys_file_reference", "sys_collection", "sys_file_metadata"},
				dumpFile: "fal.sql",
			},
			preflight: func(ctx context.Context, result *models.SyncResult) error {
				dangling, err := content.DanglingFileReferences(ctx)
				if err != nil {
					return err
				}
				if dangling > 0 {
					result.Add(models.SeverityWarning,
						fmt.Sprintf("%d file references point to no record (uid_foreign = 0).", dangling))
				}
				return nil
			},
		},
		tableSetModule{baseModule: baseModule{
			id: ModuleDomains, name: "Domain records", accessLevel: 0,
			tables: []string{"sys_domain"}, dumpFile: "sys_domain.sql",
		}},
		tableSetModule{baseModule: baseModule{
			id: ModuleFEGroups, name: "FE groups", accessLevel: 0,
			tables: []string{"fe_groups"}, dumpFile: "fe_groups.sql",
		}},
		tableSetModule{baseModule: baseModule{
			id: ModuleBEUsers, name: "BE users and groups", accessLevel: models.AccessAdmin,
			tables: []string{"be_users", "be_groups"}, dumpFile: "be_users_groups.sql",
		}},
		tableSetModule{baseModule: baseModule{
			id: ModuleScheduler, name: "Scheduler", accessLevel: models.AccessAdmin,
			tables: []string{"tx_scheduler_task"}, dumpFile: "scheduler.sql",
		}},
		tableSetModule{baseModule: baseModule{
			id: ModuleRedirects, name: "Redirects", accessLevel: 50,
			tables: []string{"sys_redirect"}, dumpFile: "sys_redirect.sql",
		}},
		tableSetModule{
			baseModule: baseModule{
				id: ModuleNews, name: "News", accessLevel: 0,
				tables: []string{"tx_news_domain_model_news", "tx_news_domain_model_tag", "tx_news_domain_model_link",
					"sys_category", "sys_category_record_mm", "sys_file_reference"},
				dumpFile: "news.sql",
			},
			clearCache: func(ctx context.Context) ([]int64, error) {
				return content.NewsPluginPageIDs(ctx)
			},
		},
		notifyModule{baseModule{id: ModuleAssets, name: "Assets", accessLevel: models.AccessAdmin}},
		tableStateModule{baseModule{
			id: ModuleTableState, name: "Table state", accessLevel: models.AccessAdmin,
			dumpFile: "tables_serialized.txt",
		}},
	}

	r := &moduleRegistry{modules: modules, byID: make(map[int]syncModule, len(modules))}
	for _, m := range modules {
		r.byID[m.Info().ID] = m
	}
	return r
}

func (r *moduleRegistry) get(id int) (syncModule, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModule, id)
	}
	return m, nil
}

// list returns the modules available at accessLevel in registration order.
func (r *moduleRegistry) list(accessLevel int) []models.ModuleInfo {
	var infos []models.ModuleInfo
	for _, m := range r.modules {
		info := m.Info()
		if info.AccessLevel <= accessLevel {
			infos = append(infos, info)
		}
	}
	return infos
}
