package state

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestStore_StartAndProgress(t *testing.T) {
	var s Store

	before := time.Now()
	if !s.Start("northwind", 10) {
		t.Fatal("Start() = false on an idle store")
	}
	if s.Start("lumen", 3) {
		t.Fatal("Start() = true while an export is running")
	}

	s.Progress(4, 10)
	snap := s.Snapshot()
	if snap.DeckID != "northwind" || !snap.Running {
		t.Fatalf("snapshot = %#v, want running northwind export", snap)
	}
	if snap.Page != 4 || snap.Total != 10 {
		t.Fatalf("progress = %d/%d, want 4/10", snap.Page, snap.Total)
	}
	if got := snap.Fraction(); got != 0.4 {
		t.Fatalf("Fraction() = %v, want 0.4", got)
	}
	if snap.StartedAt.Before(before) || snap.LastUpdated.Before(before) {
		t.Fatalf("timestamps not set: %#v", snap)
	}
	if snap.Done() {
		t.Fatal("Done() = true while running")
	}
}

func TestStore_FinishSuccess(t *testing.T) {
	var s Store
	s.Start("lumen", 7)
	s.Progress(3, 7)
	s.Finish("/tmp/lumen-health-2026-01-02.pdf", nil)

	snap := s.Snapshot()
	if snap.Running || !snap.Done() {
		t.Fatalf("snapshot = %#v, want finished", snap)
	}
	if snap.Path != "/tmp/lumen-health-2026-01-02.pdf" {
		t.Fatalf("Path = %q", snap.Path)
	}
	if snap.Page != 7 || snap.Fraction() != 1 {
		t.Fatalf("progress = %d/%d, want complete", snap.Page, snap.Total)
	}
	if snap.LastError != nil || snap.Failures != 0 {
		t.Fatalf("error state = %v/%d, want clear", snap.LastError, snap.Failures)
	}
}

func TestStore_FinishErrorKeepsProgress(t *testing.T) {
	var s Store
	s.Start("harbor", 5)
	s.Progress(2, 5)

	origErr := errors.New("boom")
	s.Finish("", origErr)

	snap := s.Snapshot()
	if snap.Page != 2 {
		t.Fatalf("Page = %d, want 2", snap.Page)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError should wrap the original error")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if snap.Path != "" {
		t.Fatalf("Path = %q, want empty after failure", snap.Path)
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	for i := 1; i <= 2; i++ {
		s.Start("northwind", 1)
		s.Finish("", errors.New("fail"))
		if got := s.Snapshot().Failures; got != i {
			t.Fatalf("Failures = %d, want %d", got, i)
		}
	}

	// A new start keeps the count; only a success resets it.
	s.Start("northwind", 1)
	if got := s.Snapshot().Failures; got != 2 {
		t.Fatalf("Failures after Start = %d, want 2", got)
	}
	s.Finish("out.pdf", nil)
	if got := s.Snapshot().Failures; got != 0 {
		t.Fatalf("Failures after success = %d, want 0", got)
	}
}

func TestSnapshot_ZeroValue(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	if snap.Running || snap.Done() || snap.Fraction() != 0 {
		t.Fatalf("zero snapshot = %#v", snap)
	}
}
