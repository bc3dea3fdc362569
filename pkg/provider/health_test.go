package provider

import (
	"sync"
	"testing"
)

func TestHealthTracker_SuccessResetsFailureStreak(t *testing.T) {
	tracker := NewHealthTracker([]string{"p1"})

	tracker.ReportFailure("p1", ErrorKindTimeout)
	tracker.ReportFailure("p1", ErrorKindRejected)

	h, ok := tracker.Status("p1")
	if !ok {
		t.Fatal("Expected record for p1")
	}
	if h.ConsecutiveFailures != 2 {
		t.Errorf("Expected 2 failures, got %d", h.ConsecutiveFailures)
	}
	if h.LastErrorKind != ErrorKindRejected {
		t.Errorf("Expected last error kind rejected, got %q", h.LastErrorKind)
	}

	tracker.ReportSuccess("p1")

	h, _ = tracker.Status("p1")
	if h.ConsecutiveFailures != 0 {
		t.Errorf("Expected success to reset streak, got %d", h.ConsecutiveFailures)
	}
	if h.LastSuccessAt.IsZero() {
		t.Error("Expected success timestamp to be set")
	}
	if h.LastFailureAt.IsZero() {
		t.Error("Expected failure timestamp to survive a success")
	}
}

func TestHealthTracker_SkipDoesNotTouchStreak(t *testing.T) {
	tracker := NewHealthTracker([]string{"p1"})

	tracker.ReportFailure("p1", ErrorKindTimeout)
	tracker.ReportSkip("p1")

	h, _ := tracker.Status("p1")
	if h.ConsecutiveFailures != 1 {
		t.Errorf("Expected skip to preserve streak, got %d", h.ConsecutiveFailures)
	}
	if h.LastSkippedAt.IsZero() {
		t.Error("Expected skip timestamp to be set")
	}
}

func TestHealthTracker_UnknownProvider(t *testing.T) {
	tracker := NewHealthTracker([]string{"p1"})

	if _, ok := tracker.Status("unknown"); ok {
		t.Error("Expected no record for unknown provider")
	}

	// Reports for unknown providers are dropped, not panicking
	tracker.ReportSuccess("unknown")
	tracker.ReportFailure("unknown", ErrorKindTimeout)
	tracker.ReportSkip("unknown")

	if len(tracker.Snapshot()) != 1 {
		t.Errorf("Expected snapshot to keep only registered providers")
	}
}

func TestHealthTracker_SnapshotIsACopy(t *testing.T) {
	tracker := NewHealthTracker([]string{"p1"})
	tracker.ReportFailure("p1", ErrorKindTimeout)

	snapshot := tracker.Snapshot()
	entry := snapshot["p1"]
	entry.ConsecutiveFailures = 99
	snapshot["p1"] = entry

	h, _ := tracker.Status("p1")
	if h.ConsecutiveFailures != 1 {
		t.Errorf("Expected tracker state untouched by snapshot mutation, got %d", h.ConsecutiveFailures)
	}
}

func TestHealthTracker_ConcurrentReports(t *testing.T) {
	tracker := NewHealthTracker([]string{"p1", "p2"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			tracker.ReportFailure("p1", ErrorKindTimeout)
		}()
		go func() {
			defer wg.Done()
			tracker.ReportSuccess("p2")
		}()
		go func() {
			defer wg.Done()
			tracker.Snapshot()
		}()
	}
	wg.Wait()

	h, _ := tracker.Status("p1")
	if h.ConsecutiveFailures != 50 {
		t.Errorf("Expected 50 failures, got %d", h.ConsecutiveFailures)
	}
}
