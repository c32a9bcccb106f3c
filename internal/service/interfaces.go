package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-content-sync/internal/blob"
	"github.com/MKhiriev/go-content-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MetadataProvider is the read-only view on the table catalog.
type MetadataProvider interface {
	Tables() []string
	HasTable(table string) bool
	Columns(ctx context.Context, table string) ([]string, error)
	Relations(table string) ([]models.RelationConfig, error)
	Control(table string) (models.ControlFields, error)
	TstampField(table string) (string, error)
}

// BlobStore is the hierarchical file store artifacts move through.
// *blob.Store implements it.
type BlobStore interface {
	HasFile(name string) bool
	HasFolder(name string) bool
	CreateFolder(name string) error
	CreateFile(name string) error
	GetContents(name string) ([]byte, error)
	SetContents(name string, data []byte) error
	AppendContents(name string, data []byte) error
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)
	CopyFile(src, dst string) error
	DeleteFile(name string) error
	ListFiles(dir string) ([]blob.FileInfo, error)
}

// SyncSession stores keyed blobs of one backend session.
type SyncSession interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
}

// TargetNotifier tells a target that a new artifact arrived. urls are the
// clear-cache urls the target should call after import.
type TargetNotifier interface {
	Notify(ctx context.Context, target models.Target, urls []string) error
}

// NotifyRetractor is implemented by notifiers that leave something on a
// target, such as a url file, which must go when the sync is reverted.
type NotifyRetractor interface {
	Retract(ctx context.Context, target models.Target, urls []string) error
}

// SyncService runs sync modules.
type SyncService interface {
	Modules(ctx context.Context, accessLevel int) []models.ModuleInfo
	Run(ctx context.Context, req models.SyncRequest) (models.SyncResult, error)
	State(ctx context.Context, moduleID int, target string) ([]models.TableStats, error)
}

// LockService reads and toggles the module lock and the target locks.
type LockService interface {
	ModuleLock(ctx context.Context) (ModuleLock, error)
	SetModuleLock(ctx context.Context, accessLevel int, locked bool, message string) error
	Targets(ctx context.Context) ([]models.WaitingFiles, error)
	SetTargetLock(ctx context.Context, accessLevel int, target string, locked bool) error
}

// SyncListService manages the page selections of a backend session.
type SyncListService interface {
	List(ctx context.Context, sessionID string, moduleID int) (models.SyncListData, error)
	Add(ctx context.Context, req models.SyncListRequest) (models.SyncListEntry, error)
	Remove(ctx context.Context, req models.SyncListRequest) error
}

// CacheService clears page caches on the receiving side.
type CacheService interface {
	ClearCache(ctx context.Context, task, data string) error
}

// AuthService issues and parses editor tokens.
type AuthService interface {
	CreateToken(ctx context.Context, userID int64, accessLevel int) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo(ctx context.Context) models.AppBuildInfo
}
