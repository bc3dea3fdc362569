package chat

import "chat-orchestrator/pkg/provider"

// EnvelopeKind discriminates the response payload
type EnvelopeKind string

const (
	EnvelopeText                EnvelopeKind = "text"
	EnvelopeImage               EnvelopeKind = "image"
	EnvelopeSearchAugmentedText EnvelopeKind = "search_augmented_text"
)

// Citation is one inline source reference inside a search-augmented answer
type Citation struct {
	Index    int    `json:"index"` // 1-based marker as it appears in the text
	Provider string `json:"provider"`
	URL      string `json:"url,omitempty"`
	Title    string `json:"title,omitempty"`
}

// ResponseEnvelope is the normalized response returned to the caller
// regardless of which provider satisfied the request
type ResponseEnvelope struct {
	Kind EnvelopeKind `json:"kind"`

	// Text carries the answer for text and search_augmented_text kinds.
	// For search-augmented answers citation markers are already
	// interleaved into it.
	Text string `json:"text,omitempty"`

	// ImageURL and Prompt are set only for image kind
	ImageURL string `json:"image_url,omitempty"`
	Prompt   string `json:"prompt,omitempty"`

	// Provider attributes the envelope to the provider that produced the
	// primary payload
	Provider string `json:"provider"`

	Citations []Citation `json:"citations,omitempty"`
}

// HandleInput is the input for one chat turn
type HandleInput struct {
	SessionID string
	Message   string
}

// StatusOutput reports orchestrator health for the status endpoint
type StatusOutput struct {
	Status    string                             `json:"status"`
	Providers map[string]provider.ProviderStatus `json:"providers"`
	Sessions  int                                `json:"sessions"`
}
