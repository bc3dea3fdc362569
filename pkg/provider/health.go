package provider

import (
	"sync"
	"time"
)

// Health is the rolling status of one provider. The tracker owns the
// mutable records; everything handed out is a copy.
type Health struct {
	LastSuccessAt       time.Time
	LastFailureAt       time.Time
	LastSkippedAt       time.Time
	ConsecutiveFailures int
	LastErrorKind       ErrorKind
}

// HealthTracker records the latest known state of every configured
// provider. Safe for concurrent use by parallel in-flight requests.
type HealthTracker struct {
	mu      sync.RWMutex
	records map[string]*Health
}

// NewHealthTracker creates one record per configured provider id.
// Records are never added or removed after startup.
func NewHealthTracker(providerIDs []string) *HealthTracker {
	records := make(map[string]*Health, len(providerIDs))
	for _, id := range providerIDs {
		records[id] = &Health{}
	}
	return &HealthTracker{records: records}
}

// ReportSuccess resets the failure streak
func (t *HealthTracker) ReportSuccess(providerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	record, ok := t.records[providerID]
	if !ok {
		return
	}
	record.LastSuccessAt = time.Now()
	record.ConsecutiveFailures = 0
	record.LastErrorKind = ErrorKindNone
}

// ReportFailure extends the failure streak
func (t *HealthTracker) ReportFailure(providerID string, kind ErrorKind) {
	t.mu.Lock()
	defer t.mu.Unlock()

	record, ok := t.records[providerID]
	if !ok {
		return
	}
	record.LastFailureAt = time.Now()
	record.ConsecutiveFailures++
	record.LastErrorKind = kind
}

// ReportSkip records a cooldown skip. Skips do not touch the failure
// streak — the provider was never attempted.
func (t *HealthTracker) ReportSkip(providerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	record, ok := t.records[providerID]
	if !ok {
		return
	}
	record.LastSkippedAt = time.Now()
}

// Status returns a copy of one provider's record
func (t *HealthTracker) Status(providerID string) (Health, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	record, ok := t.records[providerID]
	if !ok {
		return Health{}, false
	}
	return *record, true
}

// Snapshot returns a read-only copy of every record, never a live handle
func (t *HealthTracker) Snapshot() map[string]Health {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snapshot := make(map[string]Health, len(t.records))
	for id, record := range t.records {
		snapshot[id] = *record
	}
	return snapshot
}
