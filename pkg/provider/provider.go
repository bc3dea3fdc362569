package provider

import (
	"context"
	"time"
)

// Kind is the capability a provider implements
type Kind string

const (
	KindConversational Kind = "conversational"
	KindImage          Kind = "image"
	KindSearch         Kind = "search"
)

// Provider defines the uniform interface every external provider adapter
// implements. The executor is polymorphic over this capability and never
// depends on a specific provider's wire format.
type Provider interface {
	// Send performs one request against the external service
	Send(ctx context.Context, req *Request) (*Result, error)

	// Name returns the provider id (e.g. "gigachat", "yandex")
	Name() string

	// Kind returns the capability this provider implements
	Kind() Kind

	// Timeout returns the per-attempt timeout for this provider
	Timeout() time.Duration
}

// Request is a normalized provider request. Which fields matter depends on
// the provider kind: Messages for conversational, Prompt for image,
// Query/Category for search.
type Request struct {
	Messages    []Message
	Prompt      string
	Query       string
	Category    string
	Temperature float64
	MaxTokens   int
}

// Message is one conversation turn
type Message struct {
	Role    string
	Content string
}

// Result is a normalized provider result
type Result struct {
	Provider    string
	Text        string
	ImageURL    string
	ImagePrompt string
	Snippets    []Snippet
}

// Snippet is one retrieved search fragment with its source
type Snippet struct {
	Title string
	URL   string
	Text  string
}
