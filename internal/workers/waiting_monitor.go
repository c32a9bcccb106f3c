package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/service"
)

// waitingMonitor warns about targets whose oldest artifact waits longer than
// threshold; usually the import job on the target side is down.
type waitingMonitor struct {
	locks     service.LockService
	interval  time.Duration
	threshold time.Duration

	logger *logger.Logger
}

func newWaitingMonitor(locks service.LockService, interval, threshold time.Duration, logger *logger.Logger) *waitingMonitor {
	return &waitingMonitor{locks: locks, interval: interval, threshold: threshold, logger: logger}
}

func (m *waitingMonitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// check returns the names of the targets that were reported.
func (m *waitingMonitor) check(ctx context.Context) []string {
	waiting, err := m.locks.Targets(ctx)
	if err != nil {
		m.logger.Err(err).Str("func", "*waitingMonitor.check").Msg("failed to list waiting files")
		return nil
	}

	var stale []string
	for _, w := range waiting {
		if time.Duration(w.OldestAge)*time.Second <= m.threshold {
			continue
		}
		stale = append(stale, w.Target)
		m.logger.Warn().
			Str("func", "*waitingMonitor.check").
			Str("target", w.Target).
			Int("files", len(w.Files)).
			Int64("total_size", w.TotalSize).
			Int64("oldest_age_seconds", w.OldestAge).
			Bool("locked", w.Locked).
			Msg("artifacts are waiting longer than threshold")
	}
	return stale
}
