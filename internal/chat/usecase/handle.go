package usecase

import (
	"context"
	"fmt"
	"strings"

	"chat-orchestrator/internal/chat"
	"chat-orchestrator/internal/router"
	"chat-orchestrator/internal/session"
	"chat-orchestrator/pkg/provider"
)

// Handle runs one chat turn.
// Convention: Method accepts context.Context as first parameter
func (uc *implUseCase) Handle(ctx context.Context, input chat.HandleInput) (chat.ResponseEnvelope, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.ResponseEnvelope{}, chat.ErrEmptyMessage
	}

	history := uc.sessions.Recent(input.SessionID, HistoryTail)
	decision := uc.router.Classify(ctx, message, historyContents(history))

	var envelope chat.ResponseEnvelope
	var err error

	switch decision.Intent {
	case router.IntentImageGeneration:
		envelope, err = uc.handleImage(ctx, decision)
	case router.IntentSearchAugmented:
		envelope, err = uc.handleSearch(ctx, message, decision, history)
	default:
		envelope, err = uc.handleConversational(ctx, message, history)
	}
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixHandle, err)
		return chat.ResponseEnvelope{}, err
	}

	uc.appendTurn(input.SessionID, message, envelope)
	return envelope, nil
}

func (uc *implUseCase) handleConversational(ctx context.Context, message string, history []session.Message) (chat.ResponseEnvelope, error) {
	req := &provider.Request{
		Messages:    buildMessages(SystemPromptPlain, history, message),
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}

	result, err := uc.executor.Execute(ctx, provider.KindConversational, req)
	if err != nil {
		return chat.ResponseEnvelope{}, &chat.OrchestrationError{Stage: "conversational", Err: err}
	}

	return composeText(result), nil
}

func (uc *implUseCase) handleImage(ctx context.Context, decision router.Decision) (chat.ResponseEnvelope, error) {
	result, err := uc.executor.Execute(ctx, provider.KindImage, &provider.Request{Prompt: decision.Prompt})
	if err != nil {
		return chat.ResponseEnvelope{}, &chat.OrchestrationError{Stage: "image", Err: err}
	}

	return composeImage(result), nil
}

// handleSearch runs the search chain first and feeds what it found into
// the conversational provider. An exhausted search chain degrades to a
// plain conversational answer instead of failing the whole turn.
func (uc *implUseCase) handleSearch(ctx context.Context, message string, decision router.Decision, history []session.Message) (chat.ResponseEnvelope, error) {
	searchResult, err := uc.executor.Execute(ctx, provider.KindSearch, &provider.Request{
		Query:    decision.Query,
		Category: string(decision.Category),
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: search chain exhausted, answering without augmentation: %v", LogPrefixHandle, err)
		return uc.handleConversational(ctx, message, history)
	}

	prompt := fmt.Sprintf(searchPromptFormat, message, searchContext(searchResult))
	req := &provider.Request{
		Messages:    buildMessages(SystemPromptSearch, history, prompt),
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}

	answer, err := uc.executor.Execute(ctx, provider.KindConversational, req)
	if err != nil {
		return chat.ResponseEnvelope{}, &chat.OrchestrationError{Stage: "conversational", Err: err}
	}

	return composeSearch(answer, searchResult), nil
}

// History returns the stored conversation for a session.
func (uc *implUseCase) History(ctx context.Context, sessionID string) []session.Message {
	return uc.sessions.History(sessionID)
}

// Clear drops the conversation for a session.
func (uc *implUseCase) Clear(ctx context.Context, sessionID string) {
	uc.sessions.Clear(sessionID)
	uc.l.Infof(ctx, "%s: cleared session %s", LogPrefixHandle, sessionID)
}

// Status reports provider availability and session count.
func (uc *implUseCase) Status(ctx context.Context) chat.StatusOutput {
	return chat.StatusOutput{
		Status:    "ready",
		Providers: uc.executor.StatusSnapshot(),
		Sessions:  uc.sessions.Len(),
	}
}

func (uc *implUseCase) appendTurn(sessionID, message string, envelope chat.ResponseEnvelope) {
	userMsg := session.Message{Role: "user", Content: message}

	assistantMsg := session.Message{Role: "assistant", Content: envelope.Text}
	if envelope.Kind == chat.EnvelopeImage {
		assistantMsg.Type = "image"
		assistantMsg.ImageURL = envelope.ImageURL
		assistantMsg.Prompt = envelope.Prompt
		assistantMsg.Service = envelope.Provider
	}

	uc.sessions.Append(sessionID, userMsg, assistantMsg)
}

// buildMessages assembles the provider message list: system prompt, the
// history tail, then the current utterance
func buildMessages(systemPrompt string, history []session.Message, current string) []provider.Message {
	messages := make([]provider.Message, 0, len(history)+2)
	messages = append(messages, provider.Message{Role: "system", Content: systemPrompt})

	for _, m := range history {
		if m.Role != "user" && m.Role != "assistant" {
			continue
		}
		messages = append(messages, provider.Message{Role: m.Role, Content: m.Content})
	}

	messages = append(messages, provider.Message{Role: "user", Content: current})
	return messages
}

func historyContents(history []session.Message) []string {
	contents := make([]string, 0, len(history))
	for _, m := range history {
		contents = append(contents, m.Content)
	}
	return contents
}
