package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/store"
	"github.com/MKhiriev/go-content-sync/models"
)

const (
	registryNamespace = "nr_sync"
	registryLock      = "lock"
	registryLockMsg   = "lock_message"

	targetLockFile    = ".lock"
	targetLockContent = "lock"

	waitingErrorAge = 15 * time.Minute
)

// ModuleLock is the module-wide lock state.
type ModuleLock struct {
	Locked  bool   `json:"locked"`
	Message string `json:"message,omitempty"`
}

// deliveryCoordinator owns the module lock, the target locks and the
// movement of finished artifacts into the target directories.
type deliveryCoordinator struct {
	blobs    BlobStore
	registry store.RegistryRepository
	notifier TargetNotifier
	areas    []models.Area
	syncDir  string
	now      func() time.Time
}

func newDeliveryCoordinator(blobs BlobStore, registry store.RegistryRepository, notifier TargetNotifier,
	areas []models.Area, syncDir string, now func() time.Time) *deliveryCoordinator {
	return &deliveryCoordinator{
		blobs:    blobs,
		registry: registry,
		notifier: notifier,
		areas:    areas,
		syncDir:  syncDir,
		now:      now,
	}
}

func (d *deliveryCoordinator) moduleLock(ctx context.Context) (ModuleLock, error) {
	value, _, err := d.registry.Get(ctx, registryNamespace, registryLock)
	if err != nil {
		return ModuleLock{}, err
	}
	message, _, err := d.registry.Get(ctx, registryNamespace, registryLockMsg)
	if err != nil {
		return ModuleLock{}, err
	}
	return ModuleLock{Locked: value == "1", Message: message}, nil
}

func (d *deliveryCoordinator) setModuleLock(ctx context.Context, locked bool, message string) error {
	if !locked {
		if err := d.registry.Delete(ctx, registryNamespace, registryLock); err != nil {
			return err
		}
		return d.registry.Delete(ctx, registryNamespace, registryLockMsg)
	}

	if err := d.registry.Set(ctx, registryNamespace, registryLock, "1"); err != nil {
		return err
	}
	return d.registry.Set(ctx, registryNamespace, registryLockMsg, message)
}

func (d *deliveryCoordinator) targetDir(t models.Target) string {
	return path.Join(d.syncDir, t.Directory)
}

func (d *deliveryCoordinator) isTargetLocked(t models.Target) bool {
	return d.blobs.HasFile(path.Join(d.targetDir(t), targetLockFile))
}

// allTargets lists every configured target once, keyed by directory.
func (d *deliveryCoordinator) allTargets() []models.Target {
	seen := make(map[string]struct{})
	var targets []models.Target
	for _, area := range d.areas {
		for _, t := range area.Targets {
			if _, ok := seen[t.Directory]; ok {
				continue
			}
			seen[t.Directory] = struct{}{}
			targets = append(targets, t)
		}
	}
	return targets
}

func (d *deliveryCoordinator) findTarget(name string) (models.Target, error) {
	for _, t := range d.allTargets() {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return models.Target{}, fmt.Errorf("%w: %s", ErrUnknownTarget, name)
}

func (d *deliveryCoordinator) setTargetLock(name string, locked bool) error {
	t, err := d.findTarget(name)
	if err != nil {
		return err
	}

	lockFile := path.Join(d.targetDir(t), targetLockFile)
	if !locked {
		if !d.blobs.HasFile(lockFile) {
			return nil
		}
		return d.blobs.DeleteFile(lockFile)
	}
	return d.blobs.SetContents(lockFile, []byte(targetLockContent))
}

// area returns the configured area with id.
func (d *deliveryCoordinator) area(id int64) (models.Area, error) {
	for _, a := range d.areas {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Area{}, fmt.Errorf("%w: %d", ErrUnknownArea, id)
}

// defaultArea is the area table-set modules deliver to.
func (d *deliveryCoordinator) defaultArea() models.Area {
	if a, err := d.area(0); err == nil {
		return a
	}
	return d.areas[0]
}

// selectTargets narrows the targets of area to target. Any name other
// than "all" keeps the named target plus the hidden ones.
func selectTargets(area models.Area, target string) ([]models.Target, error) {
	if target == "" || strings.EqualFold(target, models.TargetAll) {
		return area.Targets, nil
	}

	var (
		selected []models.Target
		found    bool
	)
	for _, t := range area.Targets {
		switch {
		case strings.EqualFold(t.Name, target):
			found = true
			selected = append(selected, t)
		case t.Hide:
			selected = append(selected, t)
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, target)
	}
	return selected, nil
}

// checkLocks fails with ErrLocked when the module is locked or the single
// requested target is locked.
func (d *deliveryCoordinator) checkLocks(ctx context.Context, area models.Area, target string) error {
	lock, err := d.moduleLock(ctx)
	if err != nil {
		return err
	}
	if lock.Locked {
		if lock.Message != "" {
			return fmt.Errorf("%w: %s", ErrLocked, lock.Message)
		}
		return fmt.Errorf("%w: sync module is locked", ErrLocked)
	}

	if target == "" || strings.EqualFold(target, models.TargetAll) {
		return nil
	}
	for _, t := range area.Targets {
		if strings.EqualFold(t.Name, target) && d.isTargetLocked(t) {
			return fmt.Errorf("%w: target %s is locked", ErrLocked, t.Name)
		}
	}
	return nil
}

func (d *deliveryCoordinator) targetDirs(targets []models.Target) []string {
	dirs := make([]string, 0, len(targets))
	for _, t := range targets {
		dirs = append(dirs, d.targetDir(t))
	}
	return dirs
}

// deliver copies the compressed artifact into every unlocked target. The
// first failing copy stops the loop; copies made before stay in place.
// The scratch artifact is removed once the loop is over.
func (d *deliveryCoordinator) deliver(ctx context.Context, artifact string, targets []models.Target, result *models.SyncResult) ([]models.Target, error) {
	log := logger.FromContext(ctx)

	defer func() {
		if err := d.blobs.DeleteFile(artifact); err != nil {
			log.Err(err).Str("func", "*deliveryCoordinator.deliver").Str("artifact", artifact).Msg("failed to remove scratch artifact")
		}
	}()

	name := path.Base(artifact)
	var delivered []models.Target
	for _, t := range targets {
		if d.isTargetLocked(t) {
			log.Warn().Str("func", "*deliveryCoordinator.deliver").Str("target", t.Name).Msg("target is locked, skipping")
			result.Add(models.SeverityWarning, fmt.Sprintf("Target %q is locked, nothing delivered.", t.Name))
			continue
		}

		dst := path.Join(d.targetDir(t), name)
		if err := d.blobs.CopyFile(artifact, dst); err != nil {
			log.Err(err).Str("func", "*deliveryCoordinator.deliver").Str("target", t.Name).Msg("failed to copy artifact")
			result.Add(models.SeverityError, fmt.Sprintf("Could not copy %s to %s.", name, dst))
			return delivered, fmt.Errorf("%w: %s: %w", ErrDelivery, t.Name, err)
		}
		delivered = append(delivered, t)
	}
	return delivered, nil
}

// notify calls the notify hook of every target. When a hook fails, the
// artifact is removed from all targets again, together with what the
// earlier hooks left behind.
func (d *deliveryCoordinator) notify(ctx context.Context, targets []models.Target, fileName string, urls []string) error {
	log := logger.FromContext(ctx)

	for i, t := range targets {
		if err := d.notifier.Notify(ctx, t, urls); err != nil {
			log.Err(err).Str("func", "*deliveryCoordinator.notify").Str("target", t.Name).Msg("notify hook failed, retracting artifact")
			d.retractNotices(ctx, targets[:i], urls)
			if fileName != "" {
				d.retract(ctx, targets, fileName)
			}
			return fmt.Errorf("%w: %s: %w", ErrNotify, t.Name, err)
		}
	}
	return nil
}

func (d *deliveryCoordinator) retractNotices(ctx context.Context, targets []models.Target, urls []string) {
	r, ok := d.notifier.(NotifyRetractor)
	if !ok {
		return
	}
	for _, t := range targets {
		if err := r.Retract(ctx, t, urls); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*deliveryCoordinator.retractNotices").Str("target", t.Name).Msg("failed to retract notice")
		}
	}
}

func (d *deliveryCoordinator) retract(ctx context.Context, targets []models.Target, fileName string) {
	log := logger.FromContext(ctx)

	plain := strings.TrimSuffix(fileName, gzipExt)
	for _, t := range targets {
		for _, name := range []string{plain, plain + gzipExt} {
			p := path.Join(d.targetDir(t), name)
			if !d.blobs.HasFile(p) {
				continue
			}
			if err := d.blobs.DeleteFile(p); err != nil {
				log.Err(err).Str("func", "*deliveryCoordinator.retract").Str("file", p).Msg("failed to retract artifact")
			}
		}
	}
}

// waitingFiles reports the artifacts not yet imported by each visible target.
func (d *deliveryCoordinator) waitingFiles() ([]models.WaitingFiles, error) {
	now := d.now()

	var report []models.WaitingFiles
	for _, t := range d.allTargets() {
		if t.Hide {
			continue
		}

		files, err := d.blobs.ListFiles(d.targetDir(t))
		if err != nil {
			return nil, err
		}

		w := models.WaitingFiles{Target: t.Name, Locked: d.isTargetLocked(t), Files: []string{}}
		var oldest time.Time
		for _, f := range files {
			w.Files = append(w.Files, f.Name)
			w.TotalSize += f.Size
			if oldest.IsZero() || f.ModTime.Before(oldest) {
				oldest = f.ModTime
			}
		}
		if len(files) > 0 {
			age := now.Sub(oldest)
			w.OldestAge = int64(age / time.Second)
			w.Severity = models.SeverityInfo
			if age > waitingErrorAge {
				w.Severity = models.SeverityError
			}
		}
		report = append(report, w)
	}
	return report, nil
}
