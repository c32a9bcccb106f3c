package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/service"
)

const monitorInterval = time.Minute

type Workers struct {
	workers []Worker
}

// NewWorkers builds the jobs enabled in cfg. The scheduled sync is enabled by
// a non-zero interval and at least one module; the waiting monitor by a
// non-zero threshold.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.SyncInterval > 0 && len(cfg.ScheduledModules) > 0 {
		w.workers = append(w.workers, newScheduledSync(services.SyncService, cfg, logger))
	}
	if cfg.WaitingThreshold > 0 {
		w.workers = append(w.workers, newWaitingMonitor(services.LockService, monitorInterval, cfg.WaitingThreshold, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("workers created")
	return w
}

// Run starts every worker and returns once all of them returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
