package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sandgren/gift-rates/internal/logger"
	"github.com/sandgren/gift-rates/internal/models"
)

// FileStore persists rate snapshots as a single JSON file keyed by base
// currency. A missing, unreadable, or corrupted file behaves like an empty
// cache; corruption is never an error for readers. The mutex covers
// concurrent use inside one process only; concurrent processes may race on
// the file, with the last writer winning a full, equally valid snapshot.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the given file path. The file and
// its directory are created lazily on the first successful write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultCachePath returns the cache file location under the user's
// configuration directory.
func DefaultCachePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "gift-rates", "exchange-rates.json"), nil
}

// load reads and parses the whole cache file. The caller distinguishes a
// missing file (fs.ErrNotExist) from a present-but-broken one.
func (s *FileStore) load() (models.CacheFile, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var data models.CacheFile
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("cache file %s is corrupted: %v", s.path, err)
	}
	return data, nil
}

// ReadSnapshot returns the snapshot for a base currency, or absent on a
// missing file, unreadable file, malformed JSON, or missing entry.
func (s *FileStore) ReadSnapshot(_ context.Context, base string) (models.RateSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Log.Warnw("rate cache unreadable, treating as empty", "path", s.path, "error", err)
		}
		return models.RateSnapshot{}, false
	}
	snap, ok := data[base]
	if !ok || snap.Rates == nil {
		return models.RateSnapshot{}, false
	}
	return snap, true
}

// WriteSnapshot merges the snapshot for one base currency into the cache
// file, preserving other bases' entries, and rewrites the whole file. A
// corrupted existing file is discarded and replaced.
func (s *FileStore) WriteSnapshot(_ context.Context, base string, snap models.RateSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil || data == nil {
		data = models.CacheFile{}
	}
	data[base] = snap

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache file: %w", err)
	}
	if err := os.WriteFile(s.path, content, 0o600); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}

// Clear deletes the cache file. A file that never existed is not an error.
func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove cache file: %w", err)
	}
	return nil
}

// Status inspects the snapshot for a base currency without modifying it.
func (s *FileStore) Status(_ context.Context, base string, ttlHours int) models.CacheStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		st := models.CacheStatus{Expired: true, TTLHours: ttlHours}
		if !errors.Is(err, fs.ErrNotExist) {
			st.Error = err.Error()
		}
		return st
	}
	snap, ok := data[base]
	if !ok || snap.Rates == nil {
		return models.CacheStatus{Expired: true, TTLHours: ttlHours}
	}
	return snapshotStatus(snap, ttlHours)
}

// snapshotStatus derives age and expiry for a snapshot that exists. Age is
// the floor of elapsed whole hours; a snapshot is expired once its age
// reaches the TTL.
func snapshotStatus(snap models.RateSnapshot, ttlHours int) models.CacheStatus {
	ts := time.UnixMilli(snap.Timestamp)
	age := int(time.Since(ts).Hours())
	return models.CacheStatus{
		Exists:    true,
		Expired:   age >= ttlHours,
		AgeHours:  &age,
		TTLHours:  ttlHours,
		Timestamp: ts.UTC().Format(time.RFC3339),
	}
}
