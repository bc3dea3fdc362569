package picsum

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the Lorem Picsum endpoint
	DefaultBaseURL = "https://picsum.photos"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	DefaultWidth  = 1024
	DefaultHeight = 1024
)

// Config holds Picsum client configuration
type Config struct {
	BaseURL    string
	Width      int
	Height     int
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Image is a random image reference
type Image struct {
	URL    string
	Prompt string
}

// IPicsum defines the interface for the Picsum fallback image client.
// Picsum serves random stock photos, so the prompt only travels along
// for attribution — it does not influence the picture.
type IPicsum interface {
	Generate(ctx context.Context, prompt string) (*Image, error)
}

// New creates a new Picsum client with the given configuration
func New(cfg Config) (IPicsum, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &picsumImpl{
		baseURL:    cfg.BaseURL,
		width:      cfg.Width,
		height:     cfg.Height,
		httpClient: cfg.HTTPClient,
	}, nil
}

type picsumImpl struct {
	baseURL    string
	width      int
	height     int
	httpClient *http.Client
}

func (p *picsumImpl) Generate(ctx context.Context, prompt string) (*Image, error) {
	imageURL := fmt.Sprintf("%s/%d/%d?random=%d", p.baseURL, p.width, p.height, time.Now().Unix())

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("picsum: failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("picsum: availability check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("picsum: service returned %d", resp.StatusCode)
	}

	return &Image{URL: imageURL, Prompt: prompt}, nil
}
