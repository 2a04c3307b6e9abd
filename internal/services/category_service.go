package services

import (
	"strings"

	apperrors "butce/internal/errors"
	"butce/internal/models"
	"butce/internal/persist"
	"butce/internal/store"
)

// CategoryService handles category management. Category names are not
// required to be unique, matching the original behavior.
type CategoryService struct {
	store   *store.Store
	persist *persist.Adapter
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(s *store.Store, p *persist.Adapter) *CategoryService {
	return &CategoryService{store: s, persist: p}
}

// List returns both category groups.
func (s *CategoryService) List() models.CategorySet {
	return s.store.Categories()
}

// Create adds a category to the named group.
func (s *CategoryService) Create(group models.CategoryGroup, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	category, err := s.store.CreateCategory(group, name)
	if err != nil {
		return models.Category{}, err
	}
	s.persist.SaveCategories(s.store.Categories())
	return category, nil
}

// Update renames a category and moves it to another group when the group
// differs, keeping its id. Transactions labeled with the old name keep
// that label: history is not rewritten.
func (s *CategoryService) Update(id string, group models.CategoryGroup, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	category, err := s.store.UpdateCategory(id, group, name)
	if err != nil {
		return models.Category{}, err
	}
	s.persist.SaveCategories(s.store.Categories())
	return category, nil
}

// Delete removes a category from the named group. Transactions keep the
// category name as an orphaned label.
func (s *CategoryService) Delete(group models.CategoryGroup, id string) error {
	if err := s.store.DeleteCategory(group, id); err != nil {
		return err
	}
	s.persist.SaveCategories(s.store.Categories())
	return nil
}
