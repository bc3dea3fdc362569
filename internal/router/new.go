package router

import (
	"context"

	"chat-orchestrator/pkg/log"
)

// Router is the interface for intent classification
type Router interface {
	Classify(ctx context.Context, message string, conversationHistory []string) Decision
}

// KeywordRouter classifies user intent against static keyword tables.
// Classification is a pure function of the utterance: no network calls,
// no shared mutable state.
type KeywordRouter struct {
	l log.Logger
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(l log.Logger) *KeywordRouter {
	return &KeywordRouter{l: l}
}
