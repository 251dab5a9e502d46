package state

import (
	"fmt"
	"sync"
	"time"
)

// DefaultImageURL is the sentinel for the bundled placeholder shown before
// the first successful fetch.
const DefaultImageURL = "asset://default-fox"

// Snapshot represents the latest image state available to the UI.
type Snapshot struct {
	ImageURL    string
	Link        string
	Loading     bool
	LastError   error
	LastUpdated time.Time
	Fetches     int // completed successful fetches
}

// ShowingDefault reports whether the snapshot still shows the bundled placeholder.
func (s Snapshot) ShowingDefault() bool {
	return s.ImageURL == DefaultImageURL
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// New returns a Store showing the bundled placeholder.
func New() *Store {
	return &Store{snapshot: Snapshot{ImageURL: DefaultImageURL}}
}

// Begin marks a request as outstanding. The displayed image is untouched
// until the request completes.
func (s *Store) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Loading = true
}

// Complete resolves an outstanding request. On success the image URL is
// replaced; on failure the previous image is kept and only the error is
// recorded. The loading flag is cleared either way.
func (s *Store) Complete(imageURL, link string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Loading = false
	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		return
	}
	s.snapshot.ImageURL = imageURL
	s.snapshot.Link = link
	s.snapshot.LastError = nil
	s.snapshot.Fetches++
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
