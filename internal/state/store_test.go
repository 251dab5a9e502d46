package state

import (
	"errors"
	"testing"
	"time"
)

func TestStore_InitialSnapshot(t *testing.T) {
	s := New()

	snap := s.Snapshot()
	if snap.ImageURL != DefaultImageURL {
		t.Fatalf("ImageURL = %q, want %q", snap.ImageURL, DefaultImageURL)
	}
	if !snap.ShowingDefault() {
		t.Fatal("ShowingDefault() = false, want true")
	}
	if snap.Loading {
		t.Fatal("Loading = true before any Begin")
	}
	if snap.Fetches != 0 {
		t.Fatalf("Fetches = %d, want 0", snap.Fetches)
	}
}

func TestStore_BeginKeepsImage(t *testing.T) {
	s := New()
	s.Complete("https://x/a.png", "https://x/1", nil)

	s.Begin()
	snap := s.Snapshot()
	if !snap.Loading {
		t.Fatal("Loading = false after Begin")
	}
	if snap.ImageURL != "https://x/a.png" {
		t.Fatalf("ImageURL changed during outstanding request: %q", snap.ImageURL)
	}
}

func TestStore_CompleteSuccess(t *testing.T) {
	s := New()
	s.Begin()

	before := time.Now()
	s.Complete("https://x/a.png", "https://x/1", nil)

	snap := s.Snapshot()
	if snap.Loading {
		t.Fatal("Loading = true after Complete")
	}
	if snap.ImageURL != "https://x/a.png" {
		t.Fatalf("ImageURL = %q, want https://x/a.png", snap.ImageURL)
	}
	if snap.Link != "https://x/1" {
		t.Fatalf("Link = %q, want https://x/1", snap.Link)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.Fetches != 1 {
		t.Fatalf("Fetches = %d, want 1", snap.Fetches)
	}
}

func TestStore_CompleteErrorKeepsPreviousImage(t *testing.T) {
	s := New()
	s.Complete("https://x/a.png", "https://x/1", nil)

	s.Begin()
	origErr := errors.New("boom")
	s.Complete("", "", origErr)

	snap := s.Snapshot()
	if snap.ImageURL != "https://x/a.png" {
		t.Fatalf("ImageURL changed on error: %q", snap.ImageURL)
	}
	if snap.Loading {
		t.Fatal("Loading = true after failed Complete")
	}
	if snap.LastError == nil || !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError = %v, want wrapped %v", snap.LastError, origErr)
	}
	if snap.Fetches != 1 {
		t.Fatalf("Fetches = %d, want 1 (errors do not count)", snap.Fetches)
	}
}

func TestStore_ErrorBeforeFirstSuccessKeepsDefault(t *testing.T) {
	s := New()
	s.Begin()
	s.Complete("", "", errors.New("http 500"))

	snap := s.Snapshot()
	if !snap.ShowingDefault() {
		t.Fatalf("ImageURL = %q, want default asset", snap.ImageURL)
	}
}

func TestStore_RepeatedIdenticalSuccess(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		s.Begin()
		s.Complete("https://x/a.png", "https://x/1", nil)
	}

	snap := s.Snapshot()
	if snap.ImageURL != "https://x/a.png" {
		t.Fatalf("ImageURL = %q, want stable value", snap.ImageURL)
	}
	if snap.Fetches != 3 {
		t.Fatalf("Fetches = %d, want 3", snap.Fetches)
	}
}

func TestStore_LastResolutionWins(t *testing.T) {
	s := New()

	// Two overlapping requests; the one that completes last is displayed
	// even if it was issued first.
	s.Begin()
	s.Begin()
	s.Complete("https://x/second.png", "", nil)
	s.Complete("https://x/first.png", "", nil)

	snap := s.Snapshot()
	if snap.ImageURL != "https://x/first.png" {
		t.Fatalf("ImageURL = %q, want the last completion", snap.ImageURL)
	}
}
