package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/providers"
	"github.com/AlexSchroder3798/FlyFishing3/pkg/config"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

const defaultHTTPTimeout = 10 * time.Second

// Client talks to a GoTrue-compatible identity endpoint. It owns the
// current session and broadcasts state changes to subscribers, so callers
// get both the pull-style probe and the push-style stream the session
// coordinator races.
type Client struct {
	baseURL     string
	apiKey      string
	redirectURL string
	httpClient  *http.Client

	mu          sync.RWMutex
	session     *entities.Session
	subscribers map[chan entities.AuthEvent]struct{}
}

// Ensure Client implements IdentityProvider
var _ providers.IdentityProvider = (*Client)(nil)

// NewClient creates a new identity-provider client
func NewClient(cfg *config.AuthConfig) *Client {
	return NewClientWithOptions(cfg.BaseURL, cfg.APIKey, cfg.RedirectURL, nil)
}

// NewClientWithOptions allows overriding the HTTP client (used for tests)
func NewClientWithOptions(baseURL, apiKey, redirectURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		redirectURL: redirectURL,
		httpClient:  httpClient,
		subscribers: make(map[chan entities.AuthEvent]struct{}),
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

type apiError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"msg"`
}

func (e *apiError) reason() string {
	switch {
	case e.ErrorDescription != "":
		return e.ErrorDescription
	case e.Message != "":
		return e.Message
	case e.Error != "":
		return e.Error
	}
	return "authentication request failed"
}

// SignUp registers a new identity with email and password
func (c *Client) SignUp(ctx context.Context, email, password, username string) (*entities.Session, error) {
	if username == "" {
		username = strings.SplitN(email, "@", 2)[0]
	}
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]any{"username": username},
	}

	var resp tokenResponse
	if err := c.post(ctx, "/signup", "", body, &resp); err != nil {
		return nil, err
	}

	return c.installSession(&resp, entities.AuthEventSignedIn), nil
}

// SignInWithPassword authenticates with email and password
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*entities.Session, error) {
	body := map[string]any{"email": email, "password": password}

	var resp tokenResponse
	if err := c.post(ctx, "/token?grant_type=password", "", body, &resp); err != nil {
		return nil, err
	}

	return c.installSession(&resp, entities.AuthEventSignedIn), nil
}

// OAuthAuthorizeURL returns the provider redirect URL to open in a browser
func (c *Client) OAuthAuthorizeURL(provider string) (string, error) {
	switch provider {
	case "google", "apple":
	default:
		return "", apperrors.NewAuthError(fmt.Sprintf("unsupported oauth provider %q", provider), nil)
	}

	q := url.Values{}
	q.Set("provider", provider)
	q.Set("redirect_to", c.redirectURL)
	return fmt.Sprintf("%s/authorize?%s", c.baseURL, q.Encode()), nil
}

// GetSession returns the current session, refreshing it when expired.
// A signed-out client returns (nil, nil).
func (c *Client) GetSession(ctx context.Context) (*entities.Session, error) {
	c.mu.RLock()
	session := c.session
	c.mu.RUnlock()

	if session == nil {
		return nil, nil
	}

	if time.Until(session.ExpiresAt) > 30*time.Second {
		copied := *session
		return &copied, nil
	}

	return c.refresh(ctx, session.RefreshToken)
}

// SetSession installs a session from redirect-delivered tokens. The
// refresh-token grant is always exercised so the returned session reflects
// provider state rather than echoing the fragment.
func (c *Client) SetSession(ctx context.Context, tokens entities.TokenPair) (*entities.Session, error) {
	if tokens.RefreshToken == "" {
		return nil, apperrors.NewAuthError("missing refresh token in redirect", nil)
	}
	return c.refresh(ctx, tokens.RefreshToken)
}

// ExchangeCode trades a PKCE authorization code for a session
func (c *Client) ExchangeCode(ctx context.Context, code string) (*entities.Session, error) {
	if code == "" {
		return nil, apperrors.NewAuthError("missing authorization code in redirect", nil)
	}
	body := map[string]any{"auth_code": code}

	var resp tokenResponse
	if err := c.post(ctx, "/token?grant_type=pkce", "", body, &resp); err != nil {
		return nil, err
	}

	return c.installSession(&resp, entities.AuthEventSignedIn), nil
}

// SignOut invalidates the current session
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	session := c.session
	c.session = nil
	c.mu.Unlock()

	c.broadcast(entities.AuthEvent{Type: entities.AuthEventSignedOut})

	if session == nil {
		return nil
	}
	if err := c.post(ctx, "/logout", session.AccessToken, nil, nil); err != nil {
		// Local state is already cleared; the provider-side revocation
		// failure is still reported.
		return err
	}
	return nil
}

// Subscribe returns the auth state-change stream; cancelling ctx
// unsubscribes and closes the channel
func (c *Client) Subscribe(ctx context.Context) (<-chan entities.AuthEvent, error) {
	events := make(chan entities.AuthEvent, 16)

	c.mu.Lock()
	c.subscribers[events] = struct{}{}
	c.mu.Unlock()

	go func() {
		<-ctx.Done()
		c.mu.Lock()
		if _, ok := c.subscribers[events]; ok {
			delete(c.subscribers, events)
			close(events)
		}
		c.mu.Unlock()
	}()

	return events, nil
}

func (c *Client) refresh(ctx context.Context, refreshToken string) (*entities.Session, error) {
	if refreshToken == "" {
		return nil, apperrors.NewAuthError("session expired and no refresh token available", nil)
	}
	body := map[string]any{"refresh_token": refreshToken}

	var resp tokenResponse
	if err := c.post(ctx, "/token?grant_type=refresh_token", "", body, &resp); err != nil {
		return nil, err
	}

	return c.installSession(&resp, entities.AuthEventTokenRefreshed), nil
}

func (c *Client) installSession(resp *tokenResponse, eventType entities.AuthEventType) *entities.Session {
	session := &entities.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
		UserID:       resp.User.ID,
		Email:        resp.User.Email,
	}

	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	copied := *session
	c.broadcast(entities.AuthEvent{Type: eventType, Session: &copied})

	returned := *session
	return &returned
}

func (c *Client) broadcast(event entities.AuthEvent) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for subscriber := range c.subscribers {
		select {
		case subscriber <- event:
		default:
			// Subscriber channel full, skip event
		}
	}
}

func (c *Client) post(ctx context.Context, path, bearer string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewInternalError("failed to encode auth request", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return apperrors.NewInternalError("failed to build auth request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewAuthError("identity provider unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewAuthError("failed to read identity provider response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		_ = json.Unmarshal(raw, &apiErr)
		return apperrors.NewAuthError(apiErr.reason(), nil)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperrors.NewAuthError("malformed identity provider response", err)
		}
	}
	return nil
}
