package provider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"chat-orchestrator/config"
	"chat-orchestrator/pkg/duckduckgo"
	"chat-orchestrator/pkg/gigachat"
	"chat-orchestrator/pkg/perplexity"
	"chat-orchestrator/pkg/picsum"
	"chat-orchestrator/pkg/pollinations"
	"chat-orchestrator/pkg/wikipedia"
	"chat-orchestrator/pkg/wttr"
	"chat-orchestrator/pkg/yandexsearch"
)

// Per-kind attempt deadlines used when a provider entry has no timeout of its own.
var defaultTimeouts = map[Kind]time.Duration{
	KindConversational: 10 * time.Second,
	KindImage:          30 * time.Second,
	KindSearch:         10 * time.Second,
}

// InitializeChains creates the per-kind fallback chains from configuration.
// Each chain is sorted by priority (ascending) with disabled providers
// filtered out. Providers that fail to initialize are skipped instead of
// failing the entire service, as long as each kind keeps at least one
// working provider.
func InitializeChains(cfg *config.Config) (map[Kind][]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	chains := make(map[Kind][]Provider)
	kinds := []struct {
		kind    Kind
		entries []config.ProviderConfig
	}{
		{KindConversational, cfg.Providers.Conversational},
		{KindImage, cfg.Providers.Image},
		{KindSearch, cfg.Providers.Search},
	}

	for _, k := range kinds {
		chain, err := buildChain(k.kind, k.entries, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s chain: %w", k.kind, err)
		}
		chains[k.kind] = chain
	}

	return chains, nil
}

func buildChain(kind Kind, entries []config.ProviderConfig, cfg *config.Config) ([]Provider, error) {
	var enabled []config.ProviderConfig
	for _, e := range entries {
		if e.Enabled {
			enabled = append(enabled, e)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, e := range enabled {
		p, err := createProvider(kind, e, cfg)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", e.Name, e.Priority, err)
			initErrors = append(initErrors, errMsg)
			fmt.Printf("Warning: %s\n", errMsg)
			continue
		}
		providers = append(providers, p)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}
	if len(initErrors) > 0 {
		fmt.Printf("Warning: %d provider(s) failed to initialize but continuing with %d working provider(s)\n",
			len(initErrors), len(providers))
	}

	return providers, nil
}

func createProvider(kind Kind, e config.ProviderConfig, cfg *config.Config) (Provider, error) {
	timeout := defaultTimeouts[kind]
	if e.Timeout != "" {
		d, err := time.ParseDuration(e.Timeout)
		if err != nil {
			return nil, fmt.Errorf("provider %s: invalid timeout %q: %w", e.Name, e.Timeout, err)
		}
		timeout = d
	}

	switch e.Name {
	case "gigachat":
		client, err := gigachat.New(gigachat.Config{
			AuthKey:       cfg.GigaChat.AuthKey,
			Scope:         cfg.GigaChat.Scope,
			AuthURL:       cfg.GigaChat.AuthURL,
			BaseURL:       cfg.GigaChat.BaseURL,
			Model:         cfg.GigaChat.Model,
			RefreshMargin: cfg.GigaChat.RefreshMargin,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gigachat client: %w", err)
		}
		return NewGigaChatAdapter(client, timeout), nil

	case "pollinations":
		client, err := pollinations.New(pollinations.Config{BaseURL: e.BaseURL})
		if err != nil {
			return nil, fmt.Errorf("failed to create pollinations client: %w", err)
		}
		return NewPollinationsAdapter(client, timeout), nil

	case "picsum":
		client, err := picsum.New(picsum.Config{BaseURL: e.BaseURL})
		if err != nil {
			return nil, fmt.Errorf("failed to create picsum client: %w", err)
		}
		return NewPicsumAdapter(client, timeout), nil

	case "perplexity":
		client, err := perplexity.New(perplexity.Config{
			APIKey:  e.APIKey,
			BaseURL: e.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create perplexity client: %w", err)
		}
		return NewPerplexityAdapter(client, timeout), nil

	case "yandex":
		// Yandex XML credentials travel as "user:key".
		user, key, ok := strings.Cut(e.APIKey, ":")
		if !ok {
			return nil, fmt.Errorf("provider yandex: api_key must be in user:key form")
		}
		client, err := yandexsearch.New(yandexsearch.Config{
			User:    user,
			APIKey:  key,
			BaseURL: e.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create yandex client: %w", err)
		}
		return NewYandexAdapter(client, timeout), nil

	case "wttr":
		client, err := wttr.New(wttr.Config{BaseURL: e.BaseURL})
		if err != nil {
			return nil, fmt.Errorf("failed to create wttr client: %w", err)
		}
		return NewWttrAdapter(client, timeout), nil

	case "duckduckgo":
		client, err := duckduckgo.New(duckduckgo.Config{BaseURL: e.BaseURL})
		if err != nil {
			return nil, fmt.Errorf("failed to create duckduckgo client: %w", err)
		}
		return NewDuckDuckGoAdapter(client, timeout), nil

	case "wikipedia":
		client, err := wikipedia.New(wikipedia.Config{BaseURL: e.BaseURL})
		if err != nil {
			return nil, fmt.Errorf("failed to create wikipedia client: %w", err)
		}
		return NewWikipediaAdapter(client, timeout), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", e.Name)
	}
}
