// Package store keeps the uploaded percentages workbook and scratch copies of
// invoice uploads in one directory.
package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// PercentagesFile is the name the percentages workbook is stored under.
const PercentagesFile = "Film percentages.xlsx"

const lockFile = ".filmperc.lock"

// ErrNoWorkbook indicates no percentages workbook has been uploaded yet.
var ErrNoWorkbook = errors.New("no percentages workbook uploaded")

// Store guards the upload directory. Writers replace the workbook with an
// atomic rename while holding an exclusive lock; readers hold a shared lock
// for as long as they read it. The file lock covers other processes, the
// mutex covers goroutines of this one. Readers of this process share one
// file lock, taken by the first and released by the last.
type Store struct {
	dir  string
	mu   sync.RWMutex
	lock *flock.Flock

	readersMu sync.Mutex
	readers   int
}

// New opens the store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory %q: %w", dir, err)
	}
	return &Store{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, lockFile)),
	}, nil
}

// Dir returns the upload directory.
func (s *Store) Dir() string {
	return s.dir
}

// SavePercentages replaces the stored percentages workbook with the contents of r.
func (s *Store) SavePercentages(r io.Reader) (string, error) {
	tmp, err := s.writeScratch(r, ".xlsx")
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.lock.Lock(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("acquire store lock: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	dest := filepath.Join(s.dir, PercentagesFile)
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("store workbook: %w", err)
	}
	return dest, nil
}

// WithPercentages calls fn with the path of the stored workbook while holding a shared lock.
func (s *Store) WithPercentages(fn func(path string) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.acquireShared(); err != nil {
		return err
	}
	defer s.releaseShared()

	path := filepath.Join(s.dir, PercentagesFile)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNoWorkbook
		}
		return fmt.Errorf("stat workbook: %w", err)
	}
	return fn(path)
}

// acquireShared takes the shared file lock for the first concurrent reader.
// Callers hold mu.RLock, so no writer owns the lock meanwhile.
func (s *Store) acquireShared() error {
	s.readersMu.Lock()
	defer s.readersMu.Unlock()
	if s.readers == 0 {
		if err := s.lock.RLock(); err != nil {
			return fmt.Errorf("acquire store lock: %w", err)
		}
	}
	s.readers++
	return nil
}

func (s *Store) releaseShared() {
	s.readersMu.Lock()
	defer s.readersMu.Unlock()
	s.readers--
	if s.readers == 0 {
		_ = s.lock.Unlock()
	}
}

// SaveScratch writes r to a uniquely named file and returns its path along
// with a function that removes it.
func (s *Store) SaveScratch(r io.Reader, ext string) (string, func(), error) {
	path, err := s.writeScratch(r, ext)
	if err != nil {
		return "", nil, err
	}
	return path, func() { _ = os.Remove(path) }, nil
}

func (s *Store) writeScratch(r io.Reader, ext string) (string, error) {
	path := filepath.Join(s.dir, "upload-"+uuid.NewString()+ext)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close upload file: %w", err)
	}
	return path, nil
}
