package service

import (
	"context"

	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/models"
)

type appInfoService struct {
	build models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService combines the linker-injected build metadata with the
// configured version. A configured version wins over the build version.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		build:  models.NewAppBuildInfo(version, build.BuildDate(), build.BuildCommit()),
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.build.BuildVersion()
}

func (s *appInfoService) BuildInfo(_ context.Context) models.AppBuildInfo {
	return s.build
}
