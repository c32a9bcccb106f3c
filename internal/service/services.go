package service

import (
	"path/filepath"

	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/store"
	"github.com/MKhiriev/go-content-sync/models"
)

type Services struct {
	SyncService     SyncService
	LockService     LockService
	SyncListService SyncListService
	CacheService    CacheService
	AuthService     AuthService
	AppInfoService  AppInfoService
}

// Dependencies are the non-database collaborators of the services.
type Dependencies struct {
	Catalog   config.TableCatalog
	Areas     []models.Area
	Blobs     BlobStore
	Notifier  TargetNotifier
	BuildInfo models.AppBuildInfo
}

func NewServices(storages *store.Storages, deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, deps.BuildInfo, logger)
	if err != nil {
		return nil, err
	}

	sessions := func(sessionID string) SyncSession {
		return NewDBSession(storages.Sessions, sessionID)
	}
	meta := NewMetadataProvider(deps.Catalog, storages.Schema)

	return &Services{
		SyncService: NewSyncService(SyncDeps{
			Storages: storages,
			Meta:     meta,
			Blobs:    deps.Blobs,
			Notifier: deps.Notifier,
			Sessions: sessions,
			Areas:    deps.Areas,
			LockDir:  filepath.Join(cfg.Storage.Files.Root, cfg.Storage.Files.ScratchDir),
		}, cfg, logger),
		LockService:     NewLockService(deps.Blobs, storages.Registry, deps.Areas, cfg.Storage.Files.SyncDir, logger),
		SyncListService: NewSyncListService(sessions, storages.Pages, storages.Content, deps.Areas, logger),
		CacheService:    NewCacheService(storages.Cache, logger),
		AuthService:     NewAuthService(cfg.App, logger),
		AppInfoService:  appInfo,
	}, nil
}
