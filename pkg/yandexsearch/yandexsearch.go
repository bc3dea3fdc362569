package yandexsearch

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the Yandex XML search endpoint
	DefaultBaseURL = "https://yandex.com/search/xml"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 15 * time.Second

	// DefaultRegion is the Moscow search region
	DefaultRegion = 213

	// MaxResults caps how many documents a search returns
	MaxResults = 3
)

// htmlTags matches highlight markup inside titles and passages
var htmlTags = regexp.MustCompile(`<[^>]+>`)

// Config holds Yandex search client configuration
type Config struct {
	APIKey     string
	User       string
	BaseURL    string
	Region     int
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("yandexsearch: APIKey is required")
	}
	if c.User == "" {
		c.User = "chatbot"
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Region <= 0 {
		c.Region = DefaultRegion
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Result is one search hit
type Result struct {
	Title   string
	URL     string
	Snippet string
}

// IYandexSearch defines the interface for the Yandex XML search client.
type IYandexSearch interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// New creates a new Yandex search client with the given configuration
func New(cfg Config) (IYandexSearch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &yandexImpl{
		apiKey:     cfg.APIKey,
		user:       cfg.User,
		baseURL:    cfg.BaseURL,
		region:     cfg.Region,
		httpClient: cfg.HTTPClient,
	}, nil
}

type yandexImpl struct {
	apiKey     string
	user       string
	baseURL    string
	region     int
	httpClient *http.Client
}

// Wire types for the XML response. Titles and passages keep their inner
// markup so highlight tags can be stripped afterwards.
type xmlResponse struct {
	Groups []xmlGroup `xml:"response>results>grouping>group"`
}

type xmlGroup struct {
	Docs []xmlDoc `xml:"doc"`
}

type xmlDoc struct {
	Title    xmlRich   `xml:"title"`
	URL      string    `xml:"url"`
	Passages []xmlRich `xml:"passages>passage"`
}

// xmlRich captures raw inner XML so <hlword> highlight tags survive
// decoding and can be stripped as plain markup.
type xmlRich struct {
	Inner string `xml:",innerxml"`
}

// Search runs a relevance-sorted query and returns up to MaxResults hits
func (y *yandexImpl) Search(ctx context.Context, query string) ([]Result, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("user", y.user)
	params.Set("key", y.apiKey)
	params.Set("lr", strconv.Itoa(y.region))
	params.Set("l10n", "ru")
	params.Set("sortby", "rlv")
	params.Set("filter", "none")
	params.Set("maxpassages", "3")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		y.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("yandexsearch: failed to create request: %w", err)
	}

	resp, err := y.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("yandexsearch: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("yandexsearch: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var wireResp xmlResponse
	if err := xml.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("yandexsearch: failed to decode response: %w", err)
	}

	var results []Result
	for _, group := range wireResp.Groups {
		for _, doc := range group.Docs {
			if doc.Title.Inner == "" || len(doc.Passages) == 0 {
				continue
			}
			results = append(results, Result{
				Title:   stripTags(doc.Title.Inner),
				URL:     doc.URL,
				Snippet: stripTags(doc.Passages[0].Inner),
			})
			if len(results) >= MaxResults {
				return results, nil
			}
		}
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("yandexsearch: no results for query")
	}

	return results, nil
}

var entities = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'", "&amp;", "&")

func stripTags(s string) string {
	return entities.Replace(htmlTags.ReplaceAllString(s, ""))
}
