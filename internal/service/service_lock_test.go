package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-content-sync/internal/blob"
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/models"
)

func TestLockService_ModuleLock(t *testing.T) {
	ctx := context.Background()
	svc := NewLockService(blob.NewMemory(), newFakeRegistry(), testAreas, "sync", logger.Nop())

	assert.ErrorIs(t, svc.SetModuleLock(ctx, 50, true, "nope"), ErrAccessDenied)

	require.NoError(t, svc.SetModuleLock(ctx, models.AccessAdmin, true, "Deployment"))
	lock, err := svc.ModuleLock(ctx)
	require.NoError(t, err)
	assert.Equal(t, ModuleLock{Locked: true, Message: "Deployment"}, lock)

	require.NoError(t, svc.SetModuleLock(ctx, models.AccessAdmin, false, ""))
	lock, err = svc.ModuleLock(ctx)
	require.NoError(t, err)
	assert.False(t, lock.Locked)
}

func TestLockService_TargetLock(t *testing.T) {
	ctx := context.Background()
	blobs := blob.NewMemory()
	svc := NewLockService(blobs, newFakeRegistry(), testAreas, "sync", logger.Nop())

	assert.ErrorIs(t, svc.SetTargetLock(ctx, 0, "Production", true), ErrAccessDenied)
	assert.ErrorIs(t, svc.SetTargetLock(ctx, models.AccessAdmin, "staging", true), ErrUnknownTarget)

	require.NoError(t, svc.SetTargetLock(ctx, models.AccessAdmin, "Production", true))
	assert.True(t, blobs.HasFile("sync/production/.lock"))

	report, err := svc.Targets(ctx)
	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.True(t, report[0].Locked)
	assert.False(t, report[1].Locked)

	require.NoError(t, svc.SetTargetLock(ctx, models.AccessAdmin, "Production", false))
	assert.False(t, blobs.HasFile("sync/production/.lock"))
}
