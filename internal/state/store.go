package state

import (
	"fmt"
	"sync"
	"time"
)

// Snapshot is the export status as last seen by the UI.
type Snapshot struct {
	DeckID      string
	Running     bool
	Page        int
	Total       int
	Path        string // last document written
	StartedAt   time.Time
	LastUpdated time.Time
	LastError   error
	Failures    int // consecutive failed exports
}

// Fraction returns export progress in [0, 1].
func (s Snapshot) Fraction() float64 {
	if s.Total <= 0 {
		return 0
	}
	f := float64(s.Page) / float64(s.Total)
	if f > 1 {
		return 1
	}
	return f
}

// Done reports whether an export has finished, successfully or not.
func (s Snapshot) Done() bool {
	return !s.Running && !s.StartedAt.IsZero()
}

// Store coordinates updates from the export goroutine with UI reads.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Start records a new export. It returns false when one is already running.
func (s *Store) Start(deckID string, total int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Running {
		return false
	}
	now := time.Now()
	s.snapshot = Snapshot{
		DeckID:      deckID,
		Running:     true,
		Total:       total,
		StartedAt:   now,
		LastUpdated: now,
		Failures:    s.snapshot.Failures,
	}
	return true
}

// Progress records the page just captured.
func (s *Store) Progress(page, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Page = page
	if total > 0 {
		s.snapshot.Total = total
	}
	s.snapshot.LastUpdated = time.Now()
}

// Finish ends the running export. On error the page count is kept so the
// UI can say how far it got.
func (s *Store) Finish(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Running = false
	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.Failures++
		return
	}
	s.snapshot.Path = path
	s.snapshot.Page = s.snapshot.Total
	s.snapshot.LastError = nil
	s.snapshot.Failures = 0
}

// Snapshot returns a copy of the current status.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
