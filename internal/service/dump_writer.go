package service

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/klauspost/compress/gzip"

	"github.com/MKhiriev/go-content-sync/internal/blob"
	"github.com/MKhiriev/go-content-sync/models"
)

const gzipExt = ".gz"

// dumpWriter builds one artifact in the scratch directory. Deletes and raw
// table dumps are appended as they arrive, inserts are held back and
// written as a trailing block by finalize.
type dumpWriter struct {
	blobs   BlobStore
	scratch string
	name    string
	lock    *flock.Flock

	dataLines int

	inserts     map[string][]string
	insertOrder []string

	obsolete     []string
	obsoleteSeen map[string]struct{}
}

// openDump creates the artifact name in scratchDir. It fails with
// ErrDumpInProgress when name or its compressed form is still present in
// scratch or any target directory, or when another process holds lockPath.
// An empty lockPath skips the file lock.
func openDump(blobs BlobStore, scratchDir string, targetDirs []string, lockPath, name string) (*dumpWriter, error) {
	for _, dir := range append([]string{scratchDir}, targetDirs...) {
		p := path.Join(dir, name)
		if blobs.HasFile(p) || blobs.HasFile(p+gzipExt) {
			return nil, fmt.Errorf("%w: %s", ErrDumpInProgress, p)
		}
	}

	w := &dumpWriter{
		blobs:        blobs,
		scratch:      scratchDir,
		name:         name,
		inserts:      make(map[string][]string),
		obsoleteSeen: make(map[string]struct{}),
	}

	if lockPath != "" {
		if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating lock directory: %w", err)
		}
		w.lock = flock.New(lockPath)
		locked, err := w.lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquiring dump lock: %w", err)
		}
		if !locked {
			return nil, fmt.Errorf("%w: %s is locked", ErrDumpInProgress, name)
		}
	}

	if err := blobs.CreateFile(w.path()); err != nil {
		w.Close()
		if errors.Is(err, blob.ErrExists) {
			return nil, fmt.Errorf("%w: %w", ErrDumpInProgress, err)
		}
		return nil, err
	}
	return w, nil
}

func (w *dumpWriter) path() string {
	return path.Join(w.scratch, w.name)
}

// appendDeletes writes delete lines grouped per table, keeping the order
// in which tables first appear.
func (w *dumpWriter) appendDeletes(lines []models.ChangeLine) error {
	if len(lines) == 0 {
		return nil
	}

	groups := make(map[string][]string)
	var order []string
	for _, line := range lines {
		if _, ok := groups[line.Key.Table]; !ok {
			order = append(order, line.Key.Table)
		}
		groups[line.Key.Table] = append(groups[line.Key.Table], line.Statement)
	}

	var sb strings.Builder
	for _, table := range order {
		sb.WriteString(strings.Join(groups[table], "\n"))
		sb.WriteString("\n\n")
	}

	w.dataLines += len(lines)
	return w.blobs.AppendContents(w.path(), []byte(sb.String()))
}

// appendRaw writes statements as they are.
func (w *dumpWriter) appendRaw(statements []string) error {
	if len(statements) == 0 {
		return nil
	}
	w.dataLines += len(statements)
	return w.blobs.AppendContents(w.path(), []byte(strings.Join(statements, "\n")+"\n\n"))
}

// addInserts buffers insert lines for the trailing block.
func (w *dumpWriter) addInserts(lines []models.ChangeLine) {
	for _, line := range lines {
		table := line.Key.Table
		if _, ok := w.inserts[table]; !ok {
			w.insertOrder = append(w.insertOrder, table)
		}
		w.inserts[table] = append(w.inserts[table], line.Statement)
	}
	w.dataLines += len(lines)
}

// addObsoleteCleanup queues a cleanup statement unless the same statement
// was queued before.
func (w *dumpWriter) addObsoleteCleanup(statement string) {
	if statement == "" {
		return
	}
	sum := sha1.Sum([]byte(statement))
	key := hex.EncodeToString(sum[:])
	if _, ok := w.obsoleteSeen[key]; ok {
		return
	}
	w.obsoleteSeen[key] = struct{}{}
	w.obsolete = append(w.obsolete, statement)
}

// finalize appends the cleanup and insert blocks, compresses the artifact
// and removes the plain file. It returns the path of the compressed file,
// or ErrEmptyDump when no data line was written.
func (w *dumpWriter) finalize() (string, error) {
	if w.dataLines == 0 {
		if err := w.blobs.DeleteFile(w.path()); err != nil {
			return "", err
		}
		return "", ErrEmptyDump
	}

	var sb strings.Builder
	if len(w.obsolete) > 0 {
		sb.WriteString(obsoleteBanner + "\n")
		sb.WriteString(strings.Join(w.obsolete, "\n"))
		sb.WriteString("\n\n")
	}
	for _, table := range w.insertOrder {
		sb.WriteString(insertBannerPrefix + table + "\n")
		sb.WriteString(strings.Join(w.inserts[table], "\n"))
		sb.WriteString("\n\n")
	}
	if err := w.blobs.AppendContents(w.path(), []byte(sb.String())); err != nil {
		return "", err
	}

	compressed := w.path() + gzipExt
	if err := w.compress(compressed); err != nil {
		return "", err
	}
	if err := w.blobs.DeleteFile(w.path()); err != nil {
		return "", err
	}
	return compressed, nil
}

func (w *dumpWriter) compress(dst string) (err error) {
	src, err := w.blobs.Open(w.path())
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := w.blobs.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw, err := gzip.NewWriterLevel(out, gzip.BestCompression)
	if err != nil {
		return err
	}
	zw.Name = w.name
	if _, err := io.Copy(zw, src); err != nil {
		return fmt.Errorf("compressing %s: %w", w.name, err)
	}
	return zw.Close()
}

// Close releases the dump lock. The lock file stays in place so every
// process locks the same inode; the artifact is left alone too.
func (w *dumpWriter) Close() {
	if w.lock == nil {
		return
	}
	_ = w.lock.Unlock()
	w.lock = nil
}
