// Package services wires the entity store, the query engine, and the
// persistence adapter together: each mutation validates its input, applies
// the store operation, then writes the affected collection through to the
// blob store.
package services

import (
	"fmt"
	"net/url"
	"strings"

	apperrors "butce/internal/errors"
	"butce/internal/models"
	"butce/internal/persist"
	"butce/internal/store"
)

// UserService handles household user management.
type UserService struct {
	store   *store.Store
	persist *persist.Adapter
}

// NewUserService creates a new UserService.
func NewUserService(s *store.Store, p *persist.Adapter) *UserService {
	return &UserService{store: s, persist: p}
}

// List returns all users in insertion order.
func (s *UserService) List() []models.User {
	return s.store.Users()
}

// Create adds a new user. The avatar URL is derived from the name.
func (s *UserService) Create(name, phone string) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}

	user := s.store.CreateUser(name, phone, avatarURL(name))
	s.persist.SaveUsers(s.store.Users())
	return user, nil
}

// Update replaces a user's name and phone, regenerating the avatar URL.
func (s *UserService) Update(id, name, phone string) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}

	user, err := s.store.UpdateUser(id, name, phone, avatarURL(name))
	if err != nil {
		return models.User{}, err
	}
	s.persist.SaveUsers(s.store.Users())
	return user, nil
}

// Delete removes a user. Their transactions are intentionally left in
// place; views render an absent-user placeholder for them.
func (s *UserService) Delete(id string) error {
	if err := s.store.DeleteUser(id); err != nil {
		return err
	}
	s.persist.SaveUsers(s.store.Users())
	return nil
}

// avatarURL builds a generated-avatar URL for a display name, as the
// original client did.
func avatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))
}
