package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the Russian Wikipedia REST endpoint
	DefaultBaseURL = "https://ru.wikipedia.org/api/rest_v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second
)

// Config holds Wikipedia client configuration
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Summary is a page summary
type Summary struct {
	Title   string
	Extract string
	PageURL string
}

// IWikipedia defines the interface for the Wikipedia summary client.
type IWikipedia interface {
	Summary(ctx context.Context, topic string) (*Summary, error)
}

// New creates a new Wikipedia client with the given configuration
func New(cfg Config) (IWikipedia, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &wikipediaImpl{baseURL: cfg.BaseURL, httpClient: cfg.HTTPClient}, nil
}

type wikipediaImpl struct {
	baseURL    string
	httpClient *http.Client
}

type wireResponse struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// Summary fetches the page summary for a topic
func (w *wikipediaImpl) Summary(ctx context.Context, topic string) (*Summary, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		w.baseURL+"/page/summary/"+url.PathEscape(topic), nil)
	if err != nil {
		return nil, fmt.Errorf("wikipedia: failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", "Mozilla/5.0 (ChatBot/1.0)")

	resp, err := w.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("wikipedia: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia: API error %d", resp.StatusCode)
	}

	var wireResp wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("wikipedia: failed to decode response: %w", err)
	}

	if wireResp.Extract == "" {
		return nil, fmt.Errorf("wikipedia: no summary for topic")
	}

	return &Summary{
		Title:   wireResp.Title,
		Extract: wireResp.Extract,
		PageURL: wireResp.ContentURLs.Desktop.Page,
	}, nil
}
