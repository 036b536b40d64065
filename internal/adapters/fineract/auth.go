package fineract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/oauth2"

	apperrors "github.com/openmf/fieldops/internal/errors"
)

// Authenticator signs requests to the remote API.
type Authenticator interface {
	Authorize(ctx context.Context, req *http.Request) error
	// Invalidate drops cached credentials after the server rejects them.
	Invalidate()
}

// AuthenticatedUser is the session returned by the authentication endpoint.
type AuthenticatedUser struct {
	UserID        int64  `json:"userId"`
	Username      string `json:"username"`
	OfficeID      int64  `json:"officeId"`
	OfficeName    string `json:"officeName"`
	Authenticated bool   `json:"authenticated"`
	Key           string `json:"base64EncodedAuthenticationKey"`
}

// BasicAuthConfig configures BasicAuthenticator.
type BasicAuthConfig struct {
	BaseURL    string
	Tenant     string
	Username   string
	Password   string
	HTTPClient *http.Client
}

// BasicAuthenticator logs in once with username/password and sends the
// returned key as a Basic authorization header.
type BasicAuthenticator struct {
	cfg BasicAuthConfig
	hc  *http.Client

	mu   sync.Mutex
	user *AuthenticatedUser
}

// NewBasicAuthenticator creates a BasicAuthenticator.
func NewBasicAuthenticator(cfg BasicAuthConfig) *BasicAuthenticator {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &BasicAuthenticator{cfg: cfg, hc: hc}
}

// Authorize implements Authenticator.
func (a *BasicAuthenticator) Authorize(ctx context.Context, req *http.Request) error {
	user, err := a.Login(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Basic "+user.Key)
	return nil
}

// Invalidate implements Authenticator.
func (a *BasicAuthenticator) Invalidate() {
	a.mu.Lock()
	a.user = nil
	a.mu.Unlock()
}

// Login returns the cached session, authenticating when there is none.
func (a *BasicAuthenticator) Login(ctx context.Context) (*AuthenticatedUser, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user != nil {
		return a.user, nil
	}

	body, err := json.Marshal(map[string]string{"username": a.cfg.Username, "password": a.cfg.Password})
	if err != nil {
		return nil, fmt.Errorf("encode credentials: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.BaseURL+"/authentication", bytes.NewReader(body))
	if err != nil {
		return nil, &apperrors.TransportError{Op: "authenticate", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tenantHeader, a.cfg.Tenant)

	resp, err := a.hc.Do(req)
	if err != nil {
		return nil, &apperrors.TransportError{Op: "authenticate", Cause: err}
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &apperrors.TransportError{Op: "authenticate", Status: resp.StatusCode, Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		te := parseError(resp.StatusCode, raw)
		te.Op = "authenticate"
		return nil, te
	}

	var user AuthenticatedUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, &apperrors.TransportError{Op: "authenticate", Status: resp.StatusCode, Message: "unexpected response from server", Cause: err}
	}
	if !user.Authenticated || user.Key == "" {
		return nil, &apperrors.TransportError{Op: "authenticate", Status: http.StatusUnauthorized, Message: "Invalid username or password."}
	}
	a.user = &user
	return a.user, nil
}

// OAuth2Config configures OAuth2Authenticator.
type OAuth2Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	HTTPClient   *http.Client
}

// OAuth2Authenticator obtains a token with the resource owner password grant
// and refreshes it through an oauth2.TokenSource.
type OAuth2Authenticator struct {
	conf     *oauth2.Config
	username string
	password string
	hc       *http.Client

	mu sync.Mutex
	ts oauth2.TokenSource
}

// NewOAuth2Authenticator creates an OAuth2Authenticator.
func NewOAuth2Authenticator(cfg OAuth2Config) *OAuth2Authenticator {
	return &OAuth2Authenticator{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: cfg.TokenURL, AuthStyle: oauth2.AuthStyleInParams},
		},
		username: cfg.Username,
		password: cfg.Password,
		hc:       cfg.HTTPClient,
	}
}

// Authorize implements Authenticator.
func (a *OAuth2Authenticator) Authorize(ctx context.Context, req *http.Request) error {
	ts, err := a.tokenSource(ctx)
	if err != nil {
		return err
	}
	tok, err := ts.Token()
	if err != nil {
		a.Invalidate()
		return &apperrors.TransportError{Op: "oauth2 token", Status: http.StatusUnauthorized, Cause: err}
	}
	tok.SetAuthHeader(req)
	return nil
}

// Invalidate implements Authenticator.
func (a *OAuth2Authenticator) Invalidate() {
	a.mu.Lock()
	a.ts = nil
	a.mu.Unlock()
}

func (a *OAuth2Authenticator) tokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ts != nil {
		return a.ts, nil
	}
	if a.hc != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, a.hc)
	}
	tok, err := a.conf.PasswordCredentialsToken(ctx, a.username, a.password)
	if err != nil {
		return nil, &apperrors.TransportError{Op: "oauth2 token", Status: http.StatusUnauthorized, Cause: err}
	}
	// The refresh context must outlive this request.
	refreshCtx := context.Background()
	if a.hc != nil {
		refreshCtx = context.WithValue(refreshCtx, oauth2.HTTPClient, a.hc)
	}
	a.ts = oauth2.ReuseTokenSource(tok, a.conf.TokenSource(refreshCtx, tok))
	return a.ts, nil
}
