package pollinations

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the free Pollinations image endpoint
	DefaultBaseURL = "https://image.pollinations.ai/prompt"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	DefaultWidth  = 1024
	DefaultHeight = 1024
)

// Config holds Pollinations client configuration
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

// Image is a generated image reference
type Image struct {
	URL    string
	Prompt string
}

// IPollinations defines the interface for the Pollinations image client.
type IPollinations interface {
	// Generate builds an image URL for the prompt and verifies it resolves
	Generate(ctx context.Context, prompt string) (*Image, error)
}

// New creates a new Pollinations client with the given configuration
func New(cfg Config) (IPollinations, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &pollinationsImpl{
		baseURL:    cfg.BaseURL,
		width:      cfg.Width,
		height:     cfg.Height,
		httpClient: cfg.HTTPClient,
	}, nil
}

type pollinationsImpl struct {
	baseURL    string
	width      int
	height     int
	httpClient *http.Client
}

// Generate builds the generation URL and checks it is reachable. Pollinations
// renders the image on first GET, so a HEAD probe is enough to validate it.
func (p *pollinationsImpl) Generate(ctx context.Context, prompt string) (*Image, error) {
	imageURL := fmt.Sprintf("%s/%s?width=%d&height=%d&seed=%d&enhance=true",
		p.baseURL, url.PathEscape(prompt), p.width, p.height, time.Now().Unix())

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("pollinations: failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pollinations: availability check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pollinations: service returned %d", resp.StatusCode)
	}

	return &Image{URL: imageURL, Prompt: prompt}, nil
}
