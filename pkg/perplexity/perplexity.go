package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultModel is the online search model
	DefaultModel = "llama-3.1-sonar-small-128k-online"

	// DefaultBaseURL is the Perplexity API endpoint
	DefaultBaseURL = "https://api.perplexity.ai"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 20 * time.Second

	// systemPrompt keeps answers short and in Russian
	systemPrompt = "Ты помощник для поиска актуальной информации. Отвечай кратко и точно на русском языке."
)

// Config holds Perplexity client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("perplexity: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Answer is a search-grounded answer with source citations
type Answer struct {
	Content   string
	Citations []string
}

// IPerplexity defines the interface for the Perplexity search client.
type IPerplexity interface {
	Search(ctx context.Context, query string) (*Answer, error)
}

// New creates a new Perplexity client with the given configuration
func New(cfg Config) (IPerplexity, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &perplexityImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}

type perplexityImpl struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type wireRequest struct {
	Model                  string        `json:"model"`
	Messages               []wireMessage `json:"messages"`
	MaxTokens              int           `json:"max_tokens"`
	Temperature            float64       `json:"temperature"`
	TopP                   float64       `json:"top_p"`
	ReturnImages           bool          `json:"return_images"`
	ReturnRelatedQuestions bool          `json:"return_related_questions"`
	SearchRecencyFilter    string        `json:"search_recency_filter"`
	Stream                 bool          `json:"stream"`
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type wireResponse struct {
	Choices []struct {
		Message wireMessage `json:"message"`
	} `json:"choices"`
	Citations []string `json:"citations"`
}

// Search asks the online model for a grounded answer to the query
func (p *perplexityImpl) Search(ctx context.Context, query string) (*Answer, error) {
	wireReq := wireRequest{
		Model: p.model,
		Messages: []wireMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: query},
		},
		MaxTokens:           500,
		Temperature:         0.2,
		TopP:                0.9,
		SearchRecencyFilter: "month",
	}

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("perplexity: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("perplexity: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("perplexity: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("perplexity: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var wireResp wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("perplexity: failed to decode response: %w", err)
	}

	if len(wireResp.Choices) == 0 {
		return nil, fmt.Errorf("perplexity: empty response")
	}

	citations := wireResp.Citations
	if len(citations) > 3 {
		citations = citations[:3]
	}

	return &Answer{
		Content:   wireResp.Choices[0].Message.Content,
		Citations: citations,
	}, nil
}
