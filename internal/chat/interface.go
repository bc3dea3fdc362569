package chat

import (
	"context"

	"chat-orchestrator/internal/session"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Handle runs one chat turn: classify the utterance, drive the
	// matching provider chain, compose the envelope and append the turn
	// to the session history.
	Handle(ctx context.Context, input HandleInput) (ResponseEnvelope, error)

	// History returns the stored conversation for a session.
	History(ctx context.Context, sessionID string) []session.Message

	// Clear drops the conversation for a session.
	Clear(ctx context.Context, sessionID string)

	// Status reports provider availability and session count.
	Status(ctx context.Context) StatusOutput
}
