package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-content-sync/internal/blob"
	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/mock"
	"github.com/MKhiriev/go-content-sync/models"
)

func TestURLFileNotify_WritesOnceFile(t *testing.T) {
	blobs := blob.NewMemory()
	n := NewURLFileNotifier(blobs, "sync").(*urlFileNotifier)
	n.now = func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }

	production := models.Target{Name: "Production", Directory: "production", URLPath: "production/url"}
	require.NoError(t, n.Notify(context.Background(), production, []string{"a", "b"}))
	require.NoError(t, n.Notify(context.Background(), production, []string{"c"}))

	data, err := blobs.GetContents("sync/production/url/20261018120000-once.txt")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\n", string(data))

	files, err := blobs.ListFiles("sync/production")
	require.NoError(t, err)
	assert.Empty(t, files, "url files live below the artifact directory")
}

func TestURLFileNotify_DefaultDirectoryAndNoURLs(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockURLFiles(ctrl)
	n := NewURLFileNotifier(files, "sync").(*urlFileNotifier)
	n.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	integration := models.Target{Name: "Integration", Directory: "integration"}
	files.EXPECT().AppendContents("sync/integration/url/20260102030405-once.txt", []byte("x\n")).Return(nil)

	require.NoError(t, n.Notify(context.Background(), integration, []string{"x"}))
	require.NoError(t, n.Notify(context.Background(), integration, nil), "no urls, no file")
}

func TestURLFileNotify_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockURLFiles(ctrl)
	boom := errors.New("read-only file system")
	files.EXPECT().AppendContents(gomock.Any(), gomock.Any()).Return(boom)

	err := NewURLFileNotifier(files, "sync").Notify(context.Background(), models.Target{Directory: "p"}, []string{"x"})
	assert.ErrorIs(t, err, boom)
}

func TestURLFileRetract_DropsNewestBlock(t *testing.T) {
	blobs := blob.NewMemory()
	n := NewURLFileNotifier(blobs, "sync").(*urlFileNotifier)
	production := models.Target{Name: "Production", Directory: "production"}
	ctx := context.Background()

	n.now = func() time.Time { return time.Date(2026, 10, 18, 11, 0, 0, 0, time.UTC) }
	require.NoError(t, n.Notify(ctx, production, []string{"pages:1"}))
	n.now = func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }
	require.NoError(t, n.Notify(ctx, production, []string{"pages:7"}))
	require.NoError(t, n.Notify(ctx, production, []string{"pages:1"}))

	require.NoError(t, n.Retract(ctx, production, []string{"pages:1"}))

	older, err := blobs.GetContents("sync/production/url/20261018110000-once.txt")
	require.NoError(t, err)
	assert.Equal(t, "pages:1\n", string(older), "an earlier sync keeps its urls")
	newer, err := blobs.GetContents("sync/production/url/20261018120000-once.txt")
	require.NoError(t, err)
	assert.Equal(t, "pages:7\n", string(newer))

	require.NoError(t, n.Retract(ctx, production, []string{"pages:7"}))
	assert.False(t, blobs.HasFile("sync/production/url/20261018120000-once.txt"), "an emptied file is removed")
}

func TestURLFileRetract_NothingWritten(t *testing.T) {
	blobs := blob.NewMemory()
	n := NewURLFileNotifier(blobs, "sync").(*urlFileNotifier)
	production := models.Target{Name: "Production", Directory: "production"}

	require.NoError(t, n.Retract(context.Background(), production, []string{"pages:1"}))
	require.NoError(t, n.Retract(context.Background(), production, nil))
}

func TestURLFileRetract_MatchesWholeLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockURLFiles(ctrl)
	n := NewURLFileNotifier(files, "sync").(*urlFileNotifier)
	production := models.Target{Name: "Production", Directory: "production"}

	files.EXPECT().ListFiles("sync/production/url").Return([]blob.FileInfo{{Name: "20261018120000-once.txt"}}, nil)
	files.EXPECT().GetContents("sync/production/url/20261018120000-once.txt").Return([]byte("xpages:1\npages:1\n"), nil)
	files.EXPECT().SetContents("sync/production/url/20261018120000-once.txt", []byte("xpages:1\n")).Return(nil)

	require.NoError(t, n.Retract(context.Background(), production, []string{"pages:1"}))
}

// ─────────────────────────────────────────────
// Dispatcher
// ─────────────────────────────────────────────

func TestDispatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	httpHook := mock.NewMockNotifier(ctrl)
	fileHook := mock.NewMockNotifier(ctrl)
	d := &dispatcher{hooks: map[models.NotifyKind]Notifier{
		models.NotifyHTTP:    httpHook,
		models.NotifyURLFile: fileHook,
		models.NotifyNone:    noopNotifier{},
	}}
	ctx := context.Background()
	urls := []string{"u"}

	remote := models.Target{Name: "Production", Notify: models.NotifyHTTP}
	local := models.Target{Name: "Integration", Notify: models.NotifyURLFile}
	httpHook.EXPECT().Notify(ctx, remote, urls).Return(nil)
	fileHook.EXPECT().Notify(ctx, local, urls).Return(nil)

	require.NoError(t, d.Notify(ctx, remote, urls))
	require.NoError(t, d.Notify(ctx, local, urls))
	require.NoError(t, d.Notify(ctx, models.Target{Name: "archive"}, urls), "empty kind means none")

	err := d.Notify(ctx, models.Target{Name: "ftp", Notify: "ftp"}, urls)
	assert.ErrorIs(t, err, ErrUnsupportedNotify)
}

func TestDispatcher_Retract(t *testing.T) {
	ctrl := gomock.NewController(t)
	fileHook := mock.NewMockRetractor(ctrl)
	d := &dispatcher{hooks: map[models.NotifyKind]Notifier{
		models.NotifyURLFile: struct {
			Notifier
			Retractor
		}{mock.NewMockNotifier(ctrl), fileHook},
		models.NotifyNone: noopNotifier{},
	}}
	ctx := context.Background()
	urls := []string{"u"}

	local := models.Target{Name: "Integration", Notify: models.NotifyURLFile}
	fileHook.EXPECT().Retract(ctx, local, urls).Return(nil)

	require.NoError(t, d.Retract(ctx, local, urls))
	require.NoError(t, d.Retract(ctx, models.Target{Name: "archive"}, urls), "none leaves nothing behind")
	require.NoError(t, d.Retract(ctx, models.Target{Name: "ftp", Notify: "ftp"}, urls))
}

func TestNewNotifier_WiresAllKinds(t *testing.T) {
	n := NewNotifier(config.Adapter{RequestTimeout: time.Second}, blob.NewMemory(), "sync", logger.Nop()).(*dispatcher)

	assert.Len(t, n.hooks, 3)
	assert.IsType(t, &httpNotifier{}, n.hooks[models.NotifyHTTP])
	assert.IsType(t, &urlFileNotifier{}, n.hooks[models.NotifyURLFile])
}
