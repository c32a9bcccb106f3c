package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/models"
)

// dispatcher picks the hook of each target by its notify kind.
type dispatcher struct {
	hooks map[models.NotifyKind]Notifier
}

// NewNotifier returns the notifier used by the sync service. url files are
// written through files below syncDir.
func NewNotifier(cfg config.Adapter, files URLFiles, syncDir string, logger *logger.Logger) Notifier {
	return &dispatcher{hooks: map[models.NotifyKind]Notifier{
		models.NotifyHTTP:    NewHTTPNotifier(cfg, logger),
		models.NotifyURLFile: NewURLFileNotifier(files, syncDir),
		models.NotifyNone:    noopNotifier{},
	}}
}

func kindOf(target models.Target) models.NotifyKind {
	if target.Notify == "" {
		return models.NotifyNone
	}
	return target.Notify
}

func (d *dispatcher) Notify(ctx context.Context, target models.Target, urls []string) error {
	kind := kindOf(target)
	hook, ok := d.hooks[kind]
	if !ok {
		return fmt.Errorf("%w: %q for target %s", ErrUnsupportedNotify, kind, target.Name)
	}
	return hook.Notify(ctx, target, urls)
}

// Retract forwards to the target's hook when it left something behind.
func (d *dispatcher) Retract(ctx context.Context, target models.Target, urls []string) error {
	if r, ok := d.hooks[kindOf(target)].(Retractor); ok {
		return r.Retract(ctx, target, urls)
	}
	return nil
}
