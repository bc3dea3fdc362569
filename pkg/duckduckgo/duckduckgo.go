package duckduckgo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the Instant Answer API endpoint
	DefaultBaseURL = "https://api.duckduckgo.com"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 15 * time.Second

	// MaxRelatedTopics caps related-topic snippets per answer
	MaxRelatedTopics = 3
)

// Config holds DuckDuckGo client configuration
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

// Answer is an instant answer assembled from the API fields
type Answer struct {
	Abstract   string
	Definition string
	QuickText  string
	SourceURL  string
	Related    []string
}

// Empty reports whether the API had nothing to say about the query
func (a *Answer) Empty() bool {
	return a.Abstract == "" && a.Definition == "" && a.QuickText == "" && len(a.Related) == 0
}

// IDuckDuckGo defines the interface for the Instant Answer client.
type IDuckDuckGo interface {
	Search(ctx context.Context, query string) (*Answer, error)
}

// New creates a new DuckDuckGo client with the given configuration
func New(cfg Config) (IDuckDuckGo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &duckDuckGoImpl{baseURL: cfg.BaseURL, httpClient: cfg.HTTPClient}, nil
}

type duckDuckGoImpl struct {
	baseURL    string
	httpClient *http.Client
}

type wireResponse struct {
	AbstractText  string      `json:"AbstractText"`
	AbstractURL   string      `json:"AbstractURL"`
	Definition    string      `json:"Definition"`
	Answer        string      `json:"Answer"`
	RelatedTopics []wireTopic `json:"RelatedTopics"`
}

type wireTopic struct {
	Text string `json:"Text"`
}

// Search queries the Instant Answer API. Queries without an instant answer
// return an error so a fallback source can be tried.
func (d *duckDuckGoImpl) Search(ctx context.Context, query string) (*Answer, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		d.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", "Mozilla/5.0 (ChatBot/1.0)")

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo: API error %d", resp.StatusCode)
	}

	var wireResp wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("duckduckgo: failed to decode response: %w", err)
	}

	answer := &Answer{
		Abstract:   wireResp.AbstractText,
		Definition: wireResp.Definition,
		QuickText:  wireResp.Answer,
		SourceURL:  wireResp.AbstractURL,
	}
	for _, topic := range wireResp.RelatedTopics {
		if topic.Text == "" {
			continue
		}
		answer.Related = append(answer.Related, topic.Text)
		if len(answer.Related) >= MaxRelatedTopics {
			break
		}
	}

	if answer.Empty() {
		return nil, fmt.Errorf("duckduckgo: no instant answer for query")
	}

	return answer, nil
}
