package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Conversational provider credentials
	GigaChat GigaChatConfig

	// Provider chains per capability
	Providers ProvidersConfig

	// Fallback-chain health policy
	Health HealthConfig

	// Per-browser-session chat history
	Session SessionConfig

	// Chat endpoint rate limiting
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GigaChatConfig holds credentials and tuning for the conversational provider.
type GigaChatConfig struct {
	AuthKey       string // base64 client credentials for the OAuth exchange
	Scope         string
	AuthURL       string
	BaseURL       string
	Model         string
	Temperature   float64
	MaxTokens     int
	RefreshMargin time.Duration // refresh the token this long before expiry
}

// ProvidersConfig enumerates fallback-chain membership per capability.
type ProvidersConfig struct {
	Conversational []ProviderConfig `yaml:"conversational"`
	Image          []ProviderConfig `yaml:"image"`
	Search         []ProviderConfig `yaml:"search"`
}

// ProviderConfig holds configuration for a single external provider.
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Timeout  string `yaml:"timeout"`
}

// HealthConfig tunes the skip-on-cooldown policy of the chain executor.
type HealthConfig struct {
	FailureThreshold int
	Cooldown         time.Duration
}

type SessionConfig struct {
	TTL         time.Duration
	MaxSessions int
	MaxMessages int
}

type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// GigaChat
	cfg.GigaChat.AuthKey = expandEnvVar(viper.GetString("gigachat.auth_key"))
	cfg.GigaChat.Scope = viper.GetString("gigachat.scope")
	cfg.GigaChat.AuthURL = viper.GetString("gigachat.auth_url")
	cfg.GigaChat.BaseURL = viper.GetString("gigachat.base_url")
	cfg.GigaChat.Model = viper.GetString("gigachat.model")
	cfg.GigaChat.Temperature = viper.GetFloat64("gigachat.temperature")
	cfg.GigaChat.MaxTokens = viper.GetInt("gigachat.max_tokens")
	cfg.GigaChat.RefreshMargin = viper.GetDuration("gigachat.refresh_margin")
	if authKey := viper.GetString("gigachat_auth_key"); authKey != "" {
		cfg.GigaChat.AuthKey = authKey
	}

	// Provider chains
	cfg.Providers.Conversational = loadProviderList("providers.conversational")
	cfg.Providers.Image = loadProviderList("providers.image")
	cfg.Providers.Search = loadProviderList("providers.search")

	if err := validateProviders(&cfg.Providers); err != nil {
		return nil, err
	}

	// Health policy
	cfg.Health.FailureThreshold = viper.GetInt("health.failure_threshold")
	cfg.Health.Cooldown = viper.GetDuration("health.cooldown")

	// Session store
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.MaxMessages = viper.GetInt("session.max_messages")

	// Rate limiting
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	return cfg, nil
}

// loadProviderList reads one providers.<kind> list from viper.
func loadProviderList(key string) []ProviderConfig {
	if !viper.IsSet(key) {
		return nil
	}

	providersRaw := viper.Get(key)
	providersList, ok := providersRaw.([]interface{})
	if !ok {
		return nil
	}

	var providers []ProviderConfig
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Timeout:  getStringFromMap(providerMap, "timeout"),
		})
	}
	return providers
}

// validateProviders checks that every capability has at least one enabled
// provider and that priorities within a kind do not collide.
func validateProviders(cfg *ProvidersConfig) error {
	kinds := map[string][]ProviderConfig{
		"conversational": cfg.Conversational,
		"image":          cfg.Image,
		"search":         cfg.Search,
	}

	for kind, providers := range kinds {
		if len(providers) == 0 {
			return fmt.Errorf("no %s providers configured - please add providers.%s section to config.yaml", kind, kind)
		}

		enabledCount := 0
		priorityMap := make(map[int]bool)

		for i, provider := range providers {
			if provider.Name == "" {
				return fmt.Errorf("providers.%s[%d]: name is required", kind, i)
			}
			if !provider.Enabled {
				continue
			}
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}

		if enabledCount == 0 {
			return fmt.Errorf("no enabled %s providers", kind)
		}
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// GigaChat defaults
	viper.SetDefault("gigachat.scope", "GIGACHAT_API_PERS")
	viper.SetDefault("gigachat.auth_url", "https://ngw.devices.sberbank.ru:9443/api/v2/oauth")
	viper.SetDefault("gigachat.base_url", "https://gigachat.devices.sberbank.ru/api/v1")
	viper.SetDefault("gigachat.model", "GigaChat")
	viper.SetDefault("gigachat.temperature", 0.7)
	viper.SetDefault("gigachat.max_tokens", 512)
	viper.SetDefault("gigachat.refresh_margin", "5m")

	// Health defaults
	viper.SetDefault("health.failure_threshold", 3)
	viper.SetDefault("health.cooldown", "60s")

	// Session defaults
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.max_sessions", 1024)
	viper.SetDefault("session.max_messages", 20)

	// Rate-limit defaults
	viper.SetDefault("rate_limit.per_minute", 60)
	viper.SetDefault("rate_limit.burst", 10)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
