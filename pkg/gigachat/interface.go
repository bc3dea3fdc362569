package gigachat

import "context"

// IGigaChat defines the interface for the GigaChat API client.
// Implementations are safe for concurrent use.
type IGigaChat interface {
	// Chat sends a completion request to the GigaChat API
	Chat(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new GigaChat client with the given configuration
func New(cfg Config) (IGigaChat, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &gigaChatImpl{
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		tokens:     NewTokenManager(cfg),
		httpClient: cfg.HTTPClient,
	}, nil
}
