package usecase

import (
	"context"

	"chat-orchestrator/internal/router"
	"chat-orchestrator/internal/session"
	pkgLog "chat-orchestrator/pkg/log"
	"chat-orchestrator/pkg/provider"
)

// Executor drives a provider fallback chain. Satisfied by
// provider.Manager.
type Executor interface {
	Execute(ctx context.Context, kind provider.Kind, req *provider.Request) (*provider.Result, error)
	StatusSnapshot() map[string]provider.ProviderStatus
}

type implUseCase struct {
	l        pkgLog.Logger
	router   router.Router
	executor Executor
	sessions session.Store
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	r router.Router,
	executor Executor,
	sessions session.Store,
) *implUseCase {
	return &implUseCase{
		l:        l,
		router:   r,
		executor: executor,
		sessions: sessions,
	}
}
