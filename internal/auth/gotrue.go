package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "butce/internal/errors"
)

// GoTrueGateway talks to a GoTrue-compatible identity provider (Supabase
// Auth). Provider failures are surfaced verbatim as user-displayable
// messages.
type GoTrueGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewGoTrueGateway creates a gateway for the provider at baseURL.
func NewGoTrueGateway(baseURL, apiKey string) *GoTrueGateway {
	return &GoTrueGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`

	// GoTrue error shapes vary by endpoint and version.
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

// SignIn exchanges credentials for a session via the password grant.
func (g *GoTrueGateway) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	return g.post(ctx, "/token?grant_type=password", email, password)
}

// SignUp registers a new account. Providers configured for auto-confirm
// return a session immediately, matching the original flow's auto-login.
func (g *GoTrueGateway) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	return g.post(ctx, "/signup", email, password)
}

func (g *GoTrueGateway) post(ctx context.Context, path, email, password string) (*Identity, error) {
	body, err := json.Marshal(credentialsPayload{Email: email, Password: password})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("apikey", g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAuthFailed, err)
	}

	var session sessionResponse
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAuthFailed, fmt.Errorf("unexpected provider response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.WithMessage(apperrors.ErrAuthFailed, session.errorMessage())
	}

	return &Identity{
		UserID:      session.User.ID,
		Email:       session.User.Email,
		AccessToken: session.AccessToken,
		ExpiresAt:   time.Now().Add(time.Duration(session.ExpiresIn) * time.Second),
	}, nil
}

// errorMessage picks the provider's message field, whichever is set.
func (s sessionResponse) errorMessage() string {
	for _, msg := range []string{s.ErrorDescription, s.Msg, s.Message} {
		if msg != "" {
			return msg
		}
	}
	return "Authentication failed"
}
