package provider

import (
	"context"
	"errors"
	"time"

	"chat-orchestrator/pkg/log"
)

// Manager drives the fallback chains: for each request it walks the chain
// for the requested kind in priority order, short-circuits on the first
// success, and records every outcome into the health tracker.
type Manager struct {
	chains map[Kind][]Provider
	health *HealthTracker
	config *Config
	logger log.Logger
}

// Config defines the skip-on-cooldown policy
type Config struct {
	// FailureThreshold is how many consecutive failures put a provider
	// on cooldown
	FailureThreshold int

	// Cooldown is how long a provider stays skipped after reaching the
	// threshold
	Cooldown time.Duration
}

// ProviderStatus is the externally visible state of one provider
type ProviderStatus struct {
	Available           bool      `json:"available"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	LastErrorKind       ErrorKind `json:"last_error_kind,omitempty"`
}

// NewManager creates a Manager over pre-built chains. The health tracker
// gets one record per provider across all chains.
func NewManager(chains map[Kind][]Provider, config *Config, logger log.Logger) *Manager {
	var ids []string
	for _, chain := range chains {
		for _, p := range chain {
			ids = append(ids, p.Name())
		}
	}

	return &Manager{
		chains: chains,
		health: NewHealthTracker(ids),
		config: config,
		logger: logger,
	}
}

// Execute walks the chain for kind in priority order. Each provider gets
// exactly one attempt per request; retries happen on later requests via
// the health mechanism, never through busy-retry here.
func (m *Manager) Execute(ctx context.Context, kind Kind, req *Request) (*Result, error) {
	chain := m.chains[kind]
	if len(chain) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var attempted, skipped []string
	var lastErr error
	lastKind := ErrorKindNone

	for _, p := range chain {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if m.onCooldown(p.Name()) {
			m.health.ReportSkip(p.Name())
			skipped = append(skipped, p.Name())
			m.logger.Debugf(ctx, "provider %s on cooldown, skipping", p.Name())
			continue
		}

		attemptCtx, cancel := context.WithTimeout(ctx, p.Timeout())
		result, err := p.Send(attemptCtx, req)
		cancel()

		attempted = append(attempted, p.Name())

		if err == nil {
			m.health.ReportSuccess(p.Name())
			m.logger.Infof(ctx, "provider %s succeeded for %s request", p.Name(), kind)
			result.Provider = p.Name()
			return result, nil
		}

		errKind := classifyError(err)
		m.health.ReportFailure(p.Name(), errKind)
		m.logger.Warnf(ctx, "provider %s failed (%s): %v", p.Name(), errKind, err)

		lastErr = err
		lastKind = errKind
	}

	return nil, &ExhaustedError{
		Kind:          kind,
		Attempted:     attempted,
		Skipped:       skipped,
		LastErrorKind: lastKind,
		LastErr:       lastErr,
	}
}

// Health exposes the tracker for status endpoints
func (m *Manager) Health() *HealthTracker {
	return m.health
}

// StatusSnapshot maps every provider to its externally visible status
func (m *Manager) StatusSnapshot() map[string]ProviderStatus {
	snapshot := m.health.Snapshot()

	statuses := make(map[string]ProviderStatus, len(snapshot))
	for id, h := range snapshot {
		statuses[id] = ProviderStatus{
			Available:           !cooldownActive(h, m.config),
			ConsecutiveFailures: h.ConsecutiveFailures,
			LastErrorKind:       h.LastErrorKind,
		}
	}
	return statuses
}

func (m *Manager) onCooldown(providerID string) bool {
	h, ok := m.health.Status(providerID)
	if !ok {
		return false
	}
	return cooldownActive(h, m.config)
}

func cooldownActive(h Health, cfg *Config) bool {
	return h.ConsecutiveFailures >= cfg.FailureThreshold &&
		time.Since(h.LastFailureAt) < cfg.Cooldown
}

// classifyError buckets a provider error for the health record
func classifyError(err error) ErrorKind {
	var attemptErr *AttemptError
	if errors.As(err, &attemptErr) {
		return attemptErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorKindTimeout
	}
	return ErrorKindRejected
}
