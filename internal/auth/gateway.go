// Package auth provides the sign-in/sign-up gateway. Authentication is
// delegated to an identity provider; the rest of the application only sees
// the Gateway interface and the Identity it yields. Failures carry the
// provider's message verbatim and are never retried here.
package auth

import (
	"context"
	"fmt"
	"time"

	"butce/internal/config"
)

// Identity is an authenticated-user handle returned by a provider.
type Identity struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Gateway exposes the two operations the application consumes from an
// identity provider.
type Gateway interface {
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	SignUp(ctx context.Context, email, password string) (*Identity, error)
}

// NewFromConfig builds the configured gateway: a GoTrue-compatible remote
// provider, or the in-process local provider by default.
func NewFromConfig(cfg *config.Config) (Gateway, error) {
	switch cfg.AuthProvider {
	case "gotrue":
		if cfg.AuthURL == "" {
			return nil, fmt.Errorf("AUTH_URL is required when AUTH_PROVIDER is gotrue")
		}
		return NewGoTrueGateway(cfg.AuthURL, cfg.AuthAPIKey), nil
	case "local":
		return NewLocalGateway(), nil
	}
	return nil, fmt.Errorf("unsupported auth provider %q", cfg.AuthProvider)
}
