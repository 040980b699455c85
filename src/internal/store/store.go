// Package store persists the whole catalog as a single file.
package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"library/src/internal/book"
	"library/src/internal/liberr"
	"library/src/internal/logging"
)

// DefaultPath is the catalog file used when none is configured.
const DefaultPath = "library.json"

var errNotSequence = errors.New("expected a list of books")

// Store loads and saves the full catalog as a unit.
type Store interface {
	Load() ([]book.Book, error)
	Save(books []book.Book) error
}

var _ Store = (*FileStore)(nil)

// FileStore is a Store backed by one JSON or YAML file.
type FileStore struct {
	path  string
	codec codec
	log   zerolog.Logger
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithLogger sets the logger used for load and save events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *FileStore) { s.log = l }
}

// New returns a FileStore for path. An empty path means DefaultPath.
func New(path string, opts ...Option) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	s := &FileStore{path: path, codec: codecFor(path), log: *logging.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string { return s.path }

// Load reads the catalog. A missing or unparseable file yields an empty
// catalog; only a file that exists but cannot be read is an error.
func (s *FileStore) Load() ([]book.Book, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug().Str("path", s.path).Msg("no catalog file, starting fresh")
		return []book.Book{}, nil
	}
	if err != nil {
		return nil, liberr.NewIOError("read", s.path, err)
	}
	books, err := s.codec.unmarshal(data)
	if err != nil {
		s.log.Warn().Err(liberr.NewParseError(s.codec.name(), s.path, err)).Msg("catalog file unreadable, starting fresh")
		return []book.Book{}, nil
	}
	if books == nil {
		books = []book.Book{}
	}
	s.log.Debug().Str("path", s.path).Int("books", len(books)).Msg("catalog loaded")
	return books, nil
}

// Save replaces the file with books. The data is written to a temporary file
// in the same directory and renamed over the target, so readers see either
// the old or the new catalog.
func (s *FileStore) Save(books []book.Book) error {
	data, err := s.codec.marshal(books)
	if err != nil {
		return liberr.NewParseError(s.codec.name(), s.path, err)
	}
	if err := writeAtomic(s.path, data); err != nil {
		return err
	}
	s.log.Debug().Str("path", s.path).Int("books", len(books)).Msg("catalog saved")
	return nil
}

// Check makes sure the catalog directory exists and accepts new files.
func (s *FileStore) Check() error {
	if fi, err := os.Stat(s.path); err == nil && fi.IsDir() {
		return liberr.NewIOError("open", s.path, errors.New("is a directory"))
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return liberr.NewIOError("mkdir", dir, err)
	}
	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return liberr.NewIOError("create", dir, err)
	}
	name := probe.Name()
	_ = probe.Close()
	if err := os.Remove(name); err != nil {
		return liberr.NewIOError("remove", name, err)
	}
	return nil
}

// replaceTarget resolves symlinks, so the link survives the rename, and
// returns the permissions of the file being replaced.
func replaceTarget(path string) (string, fs.FileMode) {
	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}
	mode := fs.FileMode(0o644)
	if fi, err := os.Stat(target); err == nil {
		mode = fi.Mode().Perm()
	}
	return target, mode
}

func writeAtomic(path string, data []byte) (err error) {
	path, mode := replaceTarget(path)
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return liberr.NewIOError("create", dir, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return liberr.NewIOError("write", tmpPath, err)
	}
	if err = tmp.Chmod(mode); err != nil {
		return liberr.NewIOError("chmod", tmpPath, err)
	}
	if err = tmp.Sync(); err != nil {
		return liberr.NewIOError("sync", tmpPath, err)
	}
	if err = tmp.Close(); err != nil {
		return liberr.NewIOError("close", tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return liberr.NewIOError("rename", path, err)
	}
	return nil
}
