package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/store"
	"github.com/MKhiriev/go-content-sync/models"
)

// lockService exposes the module lock, the target locks and the waiting
// files report to editors. Only admins may toggle locks.
type lockService struct {
	delivery *deliveryCoordinator

	logger *logger.Logger
}

func NewLockService(blobs BlobStore, registry store.RegistryRepository, areas []models.Area, syncDir string, logger *logger.Logger) LockService {
	return &lockService{
		delivery: newDeliveryCoordinator(blobs, registry, nil, areas, syncDir, time.Now),
		logger:   logger,
	}
}

func (s *lockService) ModuleLock(ctx context.Context) (ModuleLock, error) {
	return s.delivery.moduleLock(ctx)
}

func (s *lockService) SetModuleLock(ctx context.Context, accessLevel int, locked bool, message string) error {
	if accessLevel < models.AccessAdmin {
		return ErrAccessDenied
	}

	if err := s.delivery.setModuleLock(ctx, locked, message); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*lockService.SetModuleLock").Bool("locked", locked).Msg("failed to toggle module lock")
		return err
	}
	return nil
}

// Targets reports waiting artifacts and lock state of the visible targets.
func (s *lockService) Targets(_ context.Context) ([]models.WaitingFiles, error) {
	return s.delivery.waitingFiles()
}

func (s *lockService) SetTargetLock(ctx context.Context, accessLevel int, target string, locked bool) error {
	if accessLevel < models.AccessAdmin {
		return ErrAccessDenied
	}

	if err := s.delivery.setTargetLock(target, locked); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*lockService.SetTargetLock").Str("target", target).Msg("failed to toggle target lock")
		return err
	}
	return nil
}
