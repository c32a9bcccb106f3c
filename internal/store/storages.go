package store

import "github.com/MKhiriev/go-content-sync/internal/logger"

// Storages bundles every repository backed by one database connection.
type Storages struct {
	DB *DB

	Schema    SchemaRepository
	Exporter  TableExporter
	SyncState SyncStateRepository
	Registry  RegistryRepository
	Sessions  SessionRepository
	Pages     PageRepository
	Cache     CacheRepository
	Content   ContentRepository
}

// NewStorages wires all repositories to db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	log.Debug().Str("func", "NewStorages").Msg("creating repositories")
	return &Storages{
		DB:        db,
		Schema:    NewSchemaRepository(db, log),
		Exporter:  NewTableExporter(db, log),
		SyncState: NewSyncStateRepository(db, log),
		Registry:  NewRegistryRepository(db, log),
		Sessions:  NewSessionRepository(db, log),
		Pages:     NewPageRepository(db, log),
		Cache:     NewCacheRepository(db, log),
		Content:   NewContentRepository(db, log),
	}
}
