package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chat-orchestrator/pkg/duckduckgo"
	"chat-orchestrator/pkg/gigachat"
	"chat-orchestrator/pkg/perplexity"
	"chat-orchestrator/pkg/picsum"
	"chat-orchestrator/pkg/pollinations"
	"chat-orchestrator/pkg/wikipedia"
	"chat-orchestrator/pkg/wttr"
	"chat-orchestrator/pkg/yandexsearch"
)

// adapterMeta carries the descriptor fields shared by every adapter
type adapterMeta struct {
	name    string
	kind    Kind
	timeout time.Duration
}

func (a adapterMeta) Name() string           { return a.name }
func (a adapterMeta) Kind() Kind             { return a.kind }
func (a adapterMeta) Timeout() time.Duration { return a.timeout }

// GigaChatAdapter adapts pkg/gigachat to the Provider interface
type GigaChatAdapter struct {
	adapterMeta
	client gigachat.IGigaChat
}

// NewGigaChatAdapter creates a new GigaChat adapter
func NewGigaChatAdapter(client gigachat.IGigaChat, timeout time.Duration) *GigaChatAdapter {
	return &GigaChatAdapter{
		adapterMeta: adapterMeta{name: "gigachat", kind: KindConversational, timeout: timeout},
		client:      client,
	}
}

// Send implements Provider
func (a *GigaChatAdapter) Send(ctx context.Context, req *Request) (*Result, error) {
	messages := make([]gigachat.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = gigachat.Message{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.Chat(ctx, &gigachat.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		if errors.Is(err, gigachat.ErrAuthUnavailable) {
			return nil, &AttemptError{Kind: ErrorKindAuth, Err: err}
		}
		return nil, err
	}

	return &Result{Text: resp.Content}, nil
}

// PollinationsAdapter adapts pkg/pollinations to the Provider interface
type PollinationsAdapter struct {
	adapterMeta
	client pollinations.IPollinations
}

// NewPollinationsAdapter creates a new Pollinations adapter
func NewPollinationsAdapter(client pollinations.IPollinations, timeout time.Duration) *PollinationsAdapter {
	return &PollinationsAdapter{
		adapterMeta: adapterMeta{name: "pollinations", kind: KindImage, timeout: timeout},
		client:      client,
	}
}

// Send implements Provider
func (a *PollinationsAdapter) Send(ctx context.Context, req *Request) (*Result, error) {
	image, err := a.client.Generate(ctx, req.Prompt)
	if err != nil {
		return nil, err
	}
	return &Result{ImageURL: image.URL, ImagePrompt: image.Prompt}, nil
}

// PicsumAdapter adapts pkg/picsum to the Provider interface
type PicsumAdapter struct {
	adapterMeta
	client picsum.IPicsum
}

// NewPicsumAdapter creates a new Picsum adapter
func NewPicsumAdapter(client picsum.IPicsum, timeout time.Duration) *PicsumAdapter {
	return &PicsumAdapter{
		adapterMeta: adapterMeta{name: "picsum", kind: KindImage, timeout: timeout},
		client:      client,
	}
}

// Send implements Provider
func (a *PicsumAdapter) Send(ctx context.Context, req *Request) (*Result, error) {
	image, err := a.client.Generate(ctx, req.Prompt)
	if err != nil {
		return nil, err
	}
	return &Result{ImageURL: image.URL, ImagePrompt: image.Prompt}, nil
}

// PerplexityAdapter adapts pkg/perplexity to the Provider interface
type PerplexityAdapter struct {
	adapterMeta
	client perplexity.IPerplexity
}

// NewPerplexityAdapter creates a new Perplexity adapter
func NewPerplexityAdapter(client perplexity.IPerplexity, timeout time.Duration) *PerplexityAdapter {
	return &PerplexityAdapter{
		adapterMeta: adapterMeta{name: "perplexity", kind: KindSearch, timeout: timeout},
		client:      client,
	}
}

// Send implements Provider
func (a *PerplexityAdapter) Send(ctx context.Context, req *Request) (*Result, error) {
	answer, err := a.client.Search(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	result := &Result{Text: answer.Content}
	for _, citation := range answer.Citations {
		result.Snippets = append(result.Snippets, Snippet{URL: citation, Text: answer.Content})
	}
	return result, nil
}

// YandexAdapter adapts pkg/yandexsearch to the Provider interface
type YandexAdapter struct {
	adapterMeta
	client yandexsearch.IYandexSearch
}

// NewYandexAdapter creates a new Yandex search adapter
func NewYandexAdapter(client yandexsearch.IYandexSearch, timeout time.Duration) *YandexAdapter {
	return &YandexAdapter{
		adapterMeta: adapterMeta{name: "yandex", kind: KindSearch, timeout: timeout},
		client:      client,
	}
}

// Send implements Provider
func (a *YandexAdapter) Send(ctx context.Context, req *Request) (*Result, error) {
	results, err := a.client.Search(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, r := range results {
		result.Snippets = append(result.Snippets, Snippet{Title: r.Title, URL: r.URL, Text: r.Snippet})
	}
	return result, nil
}

// DuckDuckGoAdapter adapts pkg/duckduckgo to the Provider interface
type DuckDuckGoAdapter struct {
	adapterMeta
	client duckduckgo.IDuckDuckGo
}

// NewDuckDuckGoAdapter creates a new DuckDuckGo adapter
func NewDuckDuckGoAdapter(client duckduckgo.IDuckDuckGo, timeout time.Duration) *DuckDuckGoAdapter {
	return &DuckDuckGoAdapter{
		adapterMeta: adapterMeta{name: "duckduckgo", kind: KindSearch, timeout: timeout},
		client:      client,
	}
}

// Send implements Provider
func (a *DuckDuckGoAdapter) Send(ctx context.Context, req *Request) (*Result, error) {
	answer, err := a.client.Search(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	if answer.Abstract != "" {
		result.Snippets = append(result.Snippets, Snippet{URL: answer.SourceURL, Text: answer.Abstract})
	}
	if answer.Definition != "" {
		result.Snippets = append(result.Snippets, Snippet{URL: answer.SourceURL, Text: answer.Definition})
	}
	if answer.QuickText != "" {
		result.Snippets = append(result.Snippets, Snippet{URL: answer.SourceURL, Text: answer.QuickText})
	}
	for _, related := range answer.Related {
		result.Snippets = append(result.Snippets, Snippet{Text: related})
	}
	return result, nil
}

// WikipediaAdapter adapts pkg/wikipedia to the Provider interface
type WikipediaAdapter struct {
	adapterMeta
	client wikipedia.IWikipedia
}

// NewWikipediaAdapter creates a new Wikipedia adapter
func NewWikipediaAdapter(client wikipedia.IWikipedia, timeout time.Duration) *WikipediaAdapter {
	return &WikipediaAdapter{
		adapterMeta: adapterMeta{name: "wikipedia", kind: KindSearch, timeout: timeout},
		client:      client,
	}
}

// Send implements Provider
func (a *WikipediaAdapter) Send(ctx context.Context, req *Request) (*Result, error) {
	summary, err := a.client.Summary(ctx, req.Query)
	if err != nil {
		return nil, err
	}
	return &Result{
		Snippets: []Snippet{{Title: summary.Title, URL: summary.PageURL, Text: summary.Extract}},
	}, nil
}

// WttrAdapter adapts pkg/wttr to the Provider interface. It only serves
// weather-category queries; anything else fails over to the next search
// provider in the chain.
type WttrAdapter struct {
	adapterMeta
	client wttr.IWttr
}

// NewWttrAdapter creates a new weather adapter
func NewWttrAdapter(client wttr.IWttr, timeout time.Duration) *WttrAdapter {
	return &WttrAdapter{
		adapterMeta: adapterMeta{name: "wttr", kind: KindSearch, timeout: timeout},
		client:      client,
	}
}

// Send implements Provider
func (a *WttrAdapter) Send(ctx context.Context, req *Request) (*Result, error) {
	if req.Category != "weather" {
		return nil, &AttemptError{Kind: ErrorKindRejected, Err: fmt.Errorf("wttr: not a weather query")}
	}

	city := wttr.ExtractCity(req.Query)
	conditions, err := a.client.Current(ctx, city)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("Погода в %s: %s°C (ощущается как %s°C), %s, влажность %s%%, ветер %s км/ч",
		conditions.City, conditions.TempC, conditions.FeelsLikeC,
		conditions.Description, conditions.Humidity, conditions.WindKmph)

	return &Result{
		Text:     text,
		Snippets: []Snippet{{Title: "Погода в " + conditions.City, URL: "https://wttr.in", Text: text}},
	}, nil
}
