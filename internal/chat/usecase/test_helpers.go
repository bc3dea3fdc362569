package usecase

import (
	"context"

	"chat-orchestrator/pkg/provider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockExecutor is a test implementation of the Executor interface. Each
// kind gets its own handler; unset handlers fail the request.
type mockExecutor struct {
	executeFunc func(ctx context.Context, kind provider.Kind, req *provider.Request) (*provider.Result, error)
	statuses    map[string]provider.ProviderStatus

	requests []*provider.Request
	kinds    []provider.Kind
}

func (m *mockExecutor) Execute(ctx context.Context, kind provider.Kind, req *provider.Request) (*provider.Result, error) {
	m.requests = append(m.requests, req)
	m.kinds = append(m.kinds, kind)
	return m.executeFunc(ctx, kind, req)
}

func (m *mockExecutor) StatusSnapshot() map[string]provider.ProviderStatus {
	return m.statuses
}
