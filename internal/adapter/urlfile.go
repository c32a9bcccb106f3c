package adapter

import (
	"bytes"
	"context"
	"path"
	"strings"
	"time"

	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/models"
)

const urlFileSuffix = "-once.txt"

// urlFileNotifier leaves the clear-cache urls in the target's url directory.
// The import job on the target calls them once and removes the file.
type urlFileNotifier struct {
	files   URLFiles
	syncDir string
	now     func() time.Time
}

func NewURLFileNotifier(files URLFiles, syncDir string) Notifier {
	return &urlFileNotifier{files: files, syncDir: syncDir, now: time.Now}
}

func (n *urlFileNotifier) Notify(ctx context.Context, target models.Target, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	name := path.Join(n.dir(target), n.now().Format("20060102150405")+urlFileSuffix)
	if err := n.files.AppendContents(name, urlBlock(urls)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*urlFileNotifier.Notify").Str("file", name).Msg("failed to write url file")
		return err
	}
	return nil
}

// Retract removes the newest block of urls from the target's once files.
// A file left empty is deleted.
func (n *urlFileNotifier) Retract(ctx context.Context, target models.Target, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	dir := n.dir(target)
	files, err := n.files.ListFiles(dir)
	if err != nil {
		return err
	}

	block := urlBlock(urls)
	for i := len(files) - 1; i >= 0; i-- {
		f := files[i]
		if !strings.HasSuffix(f.Name, urlFileSuffix) {
			continue
		}
		name := path.Join(dir, f.Name)
		data, err := n.files.GetContents(name)
		if err != nil {
			return err
		}
		rest, found := cutBlock(data, block)
		if !found {
			continue
		}

		if len(rest) == 0 {
			err = n.files.DeleteFile(name)
		} else {
			err = n.files.SetContents(name, rest)
		}
		if err != nil {
			log.Err(err).Str("func", "*urlFileNotifier.Retract").Str("file", name).Msg("failed to retract url file")
		}
		return err
	}
	return nil
}

func (n *urlFileNotifier) dir(target models.Target) string {
	dir := target.URLPath
	if dir == "" {
		dir = path.Join(target.Directory, "url")
	}
	return path.Join(n.syncDir, dir)
}

func urlBlock(urls []string) []byte {
	return []byte(strings.Join(urls, "\n") + "\n")
}

// cutBlock drops the last occurrence of block that starts a line in data.
func cutBlock(data, block []byte) ([]byte, bool) {
	for i := bytes.LastIndex(data, block); i >= 0; i = bytes.LastIndex(data[:i], block) {
		if i == 0 || data[i-1] == '\n' {
			rest := make([]byte, 0, len(data)-len(block))
			rest = append(rest, data[:i]...)
			return append(rest, data[i+len(block):]...), true
		}
	}
	return nil, false
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, models.Target, []string) error {
	return nil
}
