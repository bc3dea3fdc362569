package gigachat

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// TokenManager keeps a current GigaChat access token. It implements
// oauth2.TokenSource.
//
// Concurrent callers never trigger duplicate exchanges: at most one refresh
// is in flight, and every caller waiting on an expired token awaits the same
// result. A refresh that starts while the token is still inside the refresh
// margin runs in the background, so request-path callers keep getting the
// current token without blocking on the OAuth round trip.
type TokenManager struct {
	authKey    string
	scope      string
	authURL    string
	margin     time.Duration
	httpClient *http.Client

	mu       sync.Mutex
	token    *oauth2.Token
	inflight chan struct{} // non-nil while a refresh is running
	lastErr  error
}

var _ oauth2.TokenSource = (*TokenManager)(nil)

// NewTokenManager creates a TokenManager from a validated Config.
func NewTokenManager(cfg Config) *TokenManager {
	return &TokenManager{
		authKey:    cfg.AuthKey,
		scope:      cfg.Scope,
		authURL:    cfg.AuthURL,
		margin:     cfg.RefreshMargin,
		httpClient: cfg.HTTPClient,
	}
}

// Token returns a currently valid access token, refreshing it if needed.
// A refresh failure keeps the previous token usable until it actually
// expires; only an expired and unrefreshable token yields ErrAuthUnavailable.
func (m *TokenManager) Token() (*oauth2.Token, error) {
	m.mu.Lock()

	if tok := m.token; tok != nil && time.Until(tok.Expiry) > 0 {
		if time.Until(tok.Expiry) < m.margin && m.inflight == nil {
			m.startRefreshLocked()
		}
		t := *tok
		m.mu.Unlock()
		return &t, nil
	}

	// No usable token: join the in-flight refresh or start one.
	if m.inflight == nil {
		m.startRefreshLocked()
	}
	done := m.inflight
	m.mu.Unlock()

	<-done

	m.mu.Lock()
	defer m.mu.Unlock()

	if tok := m.token; tok != nil && time.Until(tok.Expiry) > 0 {
		t := *tok
		return &t, nil
	}
	if m.lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthUnavailable, m.lastErr)
	}
	return nil, ErrAuthUnavailable
}

// Invalidate drops the cached token so the next caller re-authenticates.
// Used after the API rejects a token that should still have been valid.
func (m *TokenManager) Invalidate() {
	m.mu.Lock()
	m.token = nil
	m.mu.Unlock()
}

// startRefreshLocked launches a single refresh goroutine. Caller must hold mu.
func (m *TokenManager) startRefreshLocked() {
	done := make(chan struct{})
	m.inflight = done

	go func() {
		tok, err := m.exchange(context.Background())

		m.mu.Lock()
		if err != nil {
			m.lastErr = err
		} else {
			m.token = tok
			m.lastErr = nil
		}
		m.inflight = nil
		m.mu.Unlock()

		close(done)
	}()
}

// exchange performs the OAuth client-credentials exchange against the
// GigaChat auth endpoint.
func (m *TokenManager) exchange(ctx context.Context) (*oauth2.Token, error) {
	form := url.Values{}
	form.Set("scope", m.scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.authURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("gigachat: failed to create auth request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("RqUID", uuid.NewString())
	req.Header.Set("Authorization", "Basic "+m.authKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gigachat: auth call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gigachat: auth error %d: %s", resp.StatusCode, string(body))
	}

	var oauthResp oauthResponse
	if err := json.NewDecoder(resp.Body).Decode(&oauthResp); err != nil {
		return nil, fmt.Errorf("gigachat: failed to decode auth response: %w", err)
	}
	if oauthResp.AccessToken == "" {
		return nil, fmt.Errorf("gigachat: auth response carried no access token")
	}

	expiry := time.UnixMilli(oauthResp.ExpiresAt)
	if oauthResp.ExpiresAt == 0 {
		expiry = time.Now().Add(DefaultTokenLifetime)
	}

	return &oauth2.Token{
		AccessToken: oauthResp.AccessToken,
		TokenType:   "Bearer",
		Expiry:      expiry,
	}, nil
}
