package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-content-sync/models"
)

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SchemaRepository reads the live column list of a table.
type SchemaRepository interface {
	Columns(ctx context.Context, table string) ([]string, error)
}

// TableExporter reads rows of arbitrary catalog tables.
type TableExporter interface {
	ExportTable(ctx context.Context, table string, where sq.Sqlizer) ([]models.Row, error)
	CountRows(ctx context.Context, table string, where sq.Sqlizer) (int64, error)
	Timestamp(ctx context.Context, table, field string, uid int64) (int64, error)
}

// SyncStateRepository persists sync watermarks in a per-target state table.
type SyncStateRepository interface {
	EnsureTable(ctx context.Context, stateTable string) error
	Get(ctx context.Context, stateTable, table string, uid int64) (models.SyncState, bool, error)
	List(ctx context.Context, stateTable string, tables []string) ([]models.SyncState, error)
	Stamp(ctx context.Context, stateTable string, state models.SyncState, kind models.SyncKind) error
}

// RegistryRepository is a namespaced key/value store.
type RegistryRepository interface {
	Get(ctx context.Context, namespace, key string) (string, bool, error)
	Set(ctx context.Context, namespace, key, value string) error
	Delete(ctx context.Context, namespace, key string) error
}

// SessionRepository stores serialized session blobs per backend session.
type SessionRepository interface {
	Load(ctx context.Context, sessionID, key string) ([]byte, bool, error)
	Save(ctx context.Context, sessionID, key string, data []byte) error
}

// PageRepository reads the page tree.
type PageRepository interface {
	Page(ctx context.Context, uid int64) (models.Page, error)
	Children(ctx context.Context, pid int64) ([]models.Page, error)
}

// CacheRepository flushes page cache entries on the receiving side.
type CacheRepository interface {
	FlushByTags(ctx context.Context, tags []string) (int64, error)
}

// ContentRepository answers module specific content questions.
type ContentRepository interface {
	NewsPluginPageIDs(ctx context.Context) ([]int64, error)
	DanglingFileReferences(ctx context.Context) (int64, error)
}
