// Package cache persists one day's fetched showtimes as a flat JSON file
// and decides when that file is stale. It is the only reader and writer of
// the cache file.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vmunix/marquee/internal/config"
	"github.com/vmunix/marquee/internal/showtimes"
)

// FetchFunc retrieves today's movie listing for one theater. It is the
// narrow seam between the cache and the external search API.
type FetchFunc func(ctx context.Context, theater, location string) ([]showtimes.Movie, string, error)

// Store reads and writes the dated snapshot file.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a store backed by the file at path.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Load reads the persisted snapshot. A missing, unreadable, or malformed
// file is reported as absent, never as an error: a corrupt cache must not
// take down the display loop.
func (s *Store) Load() (*showtimes.Snapshot, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("cache unreadable, treating as absent", "path", s.path, "error", err)
		}
		return nil, false
	}

	var snap showtimes.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("cache malformed, treating as absent", "path", s.path, "error", err)
		return nil, false
	}
	if snap.Date == "" {
		s.logger.Warn("cache missing date, treating as absent", "path", s.path)
		return nil, false
	}
	return &snap, true
}

// IsFresh reports whether the snapshot was fetched on the given UTC
// calendar day. Calendar-date equality is the sole staleness rule.
func (s *Store) IsFresh(snap *showtimes.Snapshot, today string) bool {
	return snap != nil && snap.Date == today
}

// Write persists the snapshot, replacing any prior one. The write goes to
// a temp file in the same directory followed by a rename, so a concurrent
// reader never observes a half-written file.
func (s *Store) Write(snap *showtimes.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp cache file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}

// RefreshAll fetches every configured theater in order and produces a
// snapshot stamped with today's date. A theater whose fetch fails is
// recorded with an empty movie list so one bad theater never blocks the
// rest; even an all-failed refresh yields a complete snapshot, because the
// display loop must always have something to render. The snapshot is
// persisted before returning; a persistence failure is logged and the
// in-memory snapshot returned anyway (the next refresh writes again).
func (s *Store) RefreshAll(ctx context.Context, theaters []config.Theater, fetch FetchFunc, today string) *showtimes.Snapshot {
	snap := &showtimes.Snapshot{
		Date:     today,
		Theaters: make([]showtimes.Theater, 0, len(theaters)),
	}

	for _, th := range theaters {
		entry := showtimes.Theater{Name: th.Name, Location: th.Location}
		movies, address, err := fetch(ctx, th.Name, th.Location)
		if err != nil {
			s.logger.Warn("fetch failed, recording empty listing",
				"theater", th.Name, "error", err)
		} else {
			entry.Movies = movies
			entry.Address = address
		}
		snap.Theaters = append(snap.Theaters, entry)
	}

	if err := s.Write(snap); err != nil {
		s.logger.Error("cache write failed, continuing with in-memory snapshot",
			"path", s.path, "error", err)
	}

	return snap
}
