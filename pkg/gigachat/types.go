package gigachat

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds GigaChat client configuration
type Config struct {
	AuthKey       string // base64-encoded client credentials for the Basic auth header
	Scope         string
	AuthURL       string
	BaseURL       string
	Model         string
	RefreshMargin time.Duration
	HTTPClient    *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.AuthKey == "" {
		return fmt.Errorf("gigachat: AuthKey is required")
	}
	if c.Scope == "" {
		c.Scope = DefaultScope
	}
	if c.AuthURL == "" {
		c.AuthURL = DefaultAuthURL
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.RefreshMargin <= 0 {
		c.RefreshMargin = DefaultRefreshMargin
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// gigaChatImpl is the internal implementation of IGigaChat
type gigaChatImpl struct {
	baseURL    string
	model      string
	tokens     *TokenManager
	httpClient *http.Client
}

// Message represents a conversation message
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// Request represents a GigaChat completion request
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Response represents a GigaChat completion response
type Response struct {
	Content string
	Usage   *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Wire types for the GigaChat API
type chatRequest struct {
	Model          string    `json:"model"`
	Messages       []Message `json:"messages"`
	Temperature    float64   `json:"temperature,omitempty"`
	MaxTokens      int       `json:"max_tokens,omitempty"`
	N              int       `json:"n"`
	Stream         bool      `json:"stream"`
	UpdateInterval int       `json:"update_interval"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type oauthResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // unix milliseconds
}
