// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the storage, blob store, notify hooks and services from
// a loaded configuration. The HTTP server and the nrsync CLI share it.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-content-sync/internal/adapter"
	"github.com/MKhiriev/go-content-sync/internal/blob"
	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/service"
	"github.com/MKhiriev/go-content-sync/internal/store"
	"github.com/MKhiriev/go-content-sync/models"
)

type App struct {
	Config   *config.StructuredConfig
	DB       *store.DB
	Storages *store.Storages
	Services *service.Services

	logger *logger.Logger
}

// New connects to the staging database and builds every service. The caller
// owns the returned App and must Close it.
func New(ctx context.Context, cfg *config.StructuredConfig, build models.AppBuildInfo, log *logger.Logger) (*App, error) {
	areas, err := config.LoadAreas(cfg.Sync.AreasFile)
	if err != nil {
		return nil, fmt.Errorf("loading areas: %w", err)
	}
	catalog, err := config.LoadTableCatalog(cfg.Sync.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading table catalog: %w", err)
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	storages := store.NewStorages(db, log)
	blobs := blob.NewOS(cfg.Storage.Files.Root)

	services, err := service.NewServices(storages, service.Dependencies{
		Catalog:   catalog,
		Areas:     areas,
		Blobs:     blobs,
		Notifier:  adapter.NewNotifier(cfg.Adapter, blobs, cfg.Storage.Files.SyncDir, log),
		BuildInfo: build,
	}, *cfg, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	log.Info().
		Str("func", "app.New").
		Str("driver", db.Driver()).
		Str("files_root", filepath.Clean(cfg.Storage.Files.Root)).
		Int("areas", len(areas)).
		Msg("application wired")

	return &App{
		Config:   cfg,
		DB:       db,
		Storages: storages,
		Services: services,
		logger:   log,
	}, nil
}

// Migrate applies the embedded migrations to the staging database.
func (a *App) Migrate() error {
	if err := a.DB.Migrate(); err != nil {
		a.logger.Err(err).Str("func", "*App.Migrate").Msg("migration failed")
		return err
	}
	return nil
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
