package auth

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	apperrors "butce/internal/errors"
	"butce/internal/uuid"
)

// LocalGateway is an in-process identity provider. It keeps the API
// runnable in development without an external auth service and mirrors
// the remote provider's contract, including its error behavior.
type LocalGateway struct {
	mu       sync.Mutex
	accounts map[string]localAccount // keyed by lowercased email
}

type localAccount struct {
	id           string
	passwordHash []byte
}

// NewLocalGateway creates an empty local provider.
func NewLocalGateway() *LocalGateway {
	return &LocalGateway{accounts: make(map[string]localAccount)}
}

// SignUp registers a new account and signs it in immediately.
func (g *LocalGateway) SignUp(_ context.Context, email, password string) (*Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email is required")
	}
	if len(password) < 6 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	g.mu.Lock()
	if _, exists := g.accounts[email]; exists {
		g.mu.Unlock()
		return nil, apperrors.ErrEmailTaken
	}
	account := localAccount{id: uuid.New(), passwordHash: hash}
	g.accounts[email] = account
	g.mu.Unlock()

	return g.identity(account.id, email)
}

// SignIn authenticates an existing account.
func (g *LocalGateway) SignIn(_ context.Context, email, password string) (*Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	g.mu.Lock()
	account, exists := g.accounts[email]
	g.mu.Unlock()

	if !exists || bcrypt.CompareHashAndPassword(account.passwordHash, []byte(password)) != nil {
		return nil, apperrors.WithMessage(apperrors.ErrAuthFailed, "Invalid login credentials")
	}

	return g.identity(account.id, email)
}

func (g *LocalGateway) identity(userID, email string) (*Identity, error) {
	token, expiresAt, err := IssueToken(userID, email)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &Identity{
		UserID:      userID,
		Email:       email,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
