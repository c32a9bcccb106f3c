// Package blob implements the hierarchical blob store the dump artifacts
// move through. It is a thin layer over a go-billy filesystem: osfs in
// production, memfs in tests.
package blob

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"time"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

var (
	// ErrExists is returned by CreateFile when the file is already present.
	ErrExists = errors.New("file already exists")

	// ErrNotFound is returned when a file to read, copy or delete is missing.
	ErrNotFound = errors.New("file not found")
)

// FileInfo describes one file of a folder listing.
type FileInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Store is a blob store rooted at a billy filesystem.
type Store struct {
	fs billy.Filesystem
}

// New wraps fs.
func New(fs billy.Filesystem) *Store {
	return &Store{fs: fs}
}

// NewOS returns a store rooted at the directory root.
func NewOS(root string) *Store {
	return New(osfs.New(root))
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Store {
	return New(memfs.New())
}

// Root returns the root of the underlying filesystem.
func (s *Store) Root() string {
	return s.fs.Root()
}

func (s *Store) ensureDir(name string) error {
	dir := path.Dir(name)
	if dir == "." || dir == "/" {
		return nil
	}
	return s.fs.MkdirAll(dir, 0o755)
}

// HasFile reports whether name exists and is a regular file.
func (s *Store) HasFile(name string) bool {
	info, err := s.fs.Stat(name)
	return err == nil && !info.IsDir()
}

// HasFolder reports whether name exists and is a directory.
func (s *Store) HasFolder(name string) bool {
	info, err := s.fs.Stat(name)
	return err == nil && info.IsDir()
}

// CreateFolder creates name and any missing parents.
func (s *Store) CreateFolder(name string) error {
	return s.fs.MkdirAll(name, 0o755)
}

// CreateFile creates an empty file and fails with ErrExists if it is
// already present.
func (s *Store) CreateFile(name string) error {
	if err := s.ensureDir(name); err != nil {
		return err
	}

	f, err := s.fs.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, name)
		}
		return err
	}
	return f.Close()
}

// GetContents returns the full content of name.
func (s *Store) GetContents(name string) ([]byte, error) {
	data, err := util.ReadFile(s.fs, name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return data, err
}

// SetContents replaces the content of name, creating it when needed.
func (s *Store) SetContents(name string, data []byte) error {
	if err := s.ensureDir(name); err != nil {
		return err
	}
	return util.WriteFile(s.fs, name, data, 0o644)
}

// AppendContents appends data to name, creating it when needed.
func (s *Store) AppendContents(name string, data []byte) error {
	if err := s.ensureDir(name); err != nil {
		return err
	}

	f, err := s.fs.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Open returns a reader for name.
func (s *Store) Open(name string) (io.ReadCloser, error) {
	f, err := s.fs.Open(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return f, err
}

// Create truncates or creates name and returns a writer for it.
func (s *Store) Create(name string) (io.WriteCloser, error) {
	if err := s.ensureDir(name); err != nil {
		return nil, err
	}
	return s.fs.Create(name)
}

// CopyFile copies src to dst, replacing dst.
func (s *Store) CopyFile(src, dst string) error {
	in, err := s.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := s.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// DeleteFile removes name. A missing file is reported as ErrNotFound.
func (s *Store) DeleteFile(name string) error {
	err := s.fs.Remove(name)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return err
}

// ListFiles returns the regular files directly inside dir sorted by name.
// Hidden files (leading dot) are skipped. A missing dir yields no files.
func (s *Store) ListFiles(dir string) ([]FileInfo, error) {
	entries, err := s.fs.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	files := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || e.Name()[0] == '.' {
			continue
		}
		files = append(files, FileInfo{Name: e.Name(), Size: e.Size(), ModTime: e.ModTime()})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
