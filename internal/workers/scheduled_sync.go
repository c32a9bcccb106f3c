package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/service"
	"github.com/MKhiriev/go-content-sync/models"
)

// scheduledSync runs the configured modules as the system user on every tick.
type scheduledSync struct {
	sync       service.SyncService
	modules    []int
	interval   time.Duration
	runTimeout time.Duration

	logger *logger.Logger
}

func newScheduledSync(sync service.SyncService, cfg config.Workers, logger *logger.Logger) *scheduledSync {
	return &scheduledSync{
		sync:       sync,
		modules:    cfg.ScheduledModules,
		interval:   cfg.SyncInterval,
		runTimeout: cfg.RunTimeout,
		logger:     logger,
	}
}

func (s *scheduledSync) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce syncs every module in order. A failing module does not stop the
// others.
func (s *scheduledSync) runOnce(ctx context.Context) {
	for _, moduleID := range s.modules {
		if ctx.Err() != nil {
			return
		}
		s.runModule(ctx, moduleID)
	}
}

func (s *scheduledSync) runModule(ctx context.Context, moduleID int) {
	if s.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.runTimeout)
		defer cancel()
	}
	ctx = s.logger.WithContext(ctx)

	req := models.SyncRequest{
		ModuleID:    moduleID,
		AccessLevel: models.AccessAdmin,
	}

	result, err := s.sync.Run(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*scheduledSync.runModule").Int("module", moduleID).Msg("scheduled sync failed")
		return
	}

	for _, m := range result.Messages {
		s.logger.Info().
			Str("func", "*scheduledSync.runModule").
			Int("module", moduleID).
			Str("severity", string(m.Severity)).
			Msg(m.Text)
	}
}
