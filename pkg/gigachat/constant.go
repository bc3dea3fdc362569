package gigachat

import "time"

const (
	// DefaultModel is the default GigaChat model
	DefaultModel = "GigaChat"

	// DefaultBaseURL is the default GigaChat API endpoint
	DefaultBaseURL = "https://gigachat.devices.sberbank.ru/api/v1"

	// DefaultAuthURL is the OAuth token exchange endpoint
	DefaultAuthURL = "https://ngw.devices.sberbank.ru:9443/api/v2/oauth"

	// DefaultScope is the personal API scope
	DefaultScope = "GIGACHAT_API_PERS"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// DefaultRefreshMargin is how long before expiry a proactive refresh starts
	DefaultRefreshMargin = 5 * time.Minute

	// DefaultTokenLifetime is assumed when the OAuth response carries no expiry.
	// GigaChat tokens live 30 minutes.
	DefaultTokenLifetime = 30 * time.Minute
)
