package wttr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the wttr.in endpoint
	DefaultBaseURL = "https://wttr.in"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second
)

// Config holds wttr.in client configuration
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

// Conditions describes the current weather in a city
type Conditions struct {
	City        string // localized display name
	TempC       string
	FeelsLikeC  string
	Description string
	Humidity    string
	WindKmph    string
}

// IWttr defines the interface for the weather client.
type IWttr interface {
	Current(ctx context.Context, city City) (*Conditions, error)
}

// New creates a new wttr.in client with the given configuration
func New(cfg Config) (IWttr, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &wttrImpl{baseURL: cfg.BaseURL, httpClient: cfg.HTTPClient}, nil
}

type wttrImpl struct {
	baseURL    string
	httpClient *http.Client
}

type wireResponse struct {
	CurrentCondition []struct {
		TempC         string `json:"temp_C"`
		FeelsLikeC    string `json:"FeelsLikeC"`
		Humidity      string `json:"humidity"`
		WindspeedKmph string `json:"windspeedKmph"`
		WeatherDesc   []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
}

// Current fetches the current conditions for a city
func (w *wttrImpl) Current(ctx context.Context, city City) (*Conditions, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		w.baseURL+"/"+url.PathEscape(city.Query)+"?format=j1", nil)
	if err != nil {
		return nil, fmt.Errorf("wttr: failed to create request: %w", err)
	}

	resp, err := w.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("wttr: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wttr: API error %d", resp.StatusCode)
	}

	var wireResp wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("wttr: failed to decode response: %w", err)
	}

	if len(wireResp.CurrentCondition) == 0 {
		return nil, fmt.Errorf("wttr: no conditions in response")
	}

	current := wireResp.CurrentCondition[0]
	description := ""
	if len(current.WeatherDesc) > 0 {
		description = current.WeatherDesc[0].Value
	}

	return &Conditions{
		City:        city.NameRu,
		TempC:       current.TempC,
		FeelsLikeC:  current.FeelsLikeC,
		Description: description,
		Humidity:    current.Humidity,
		WindKmph:    current.WindspeedKmph,
	}, nil
}
