// Package store holds the in-memory collections of users, categories, and
// transactions. The store is the sole owner of entity data; readers get
// defensive copies and persistence is the caller's responsibility after
// each mutation.
package store

import (
	"sync"

	apperrors "butce/internal/errors"
	"butce/internal/models"
	"butce/internal/uuid"
)

// State is a snapshot of the three collections, used to seed the store at
// startup and to serialize it for persistence.
type State struct {
	Users        []models.User
	Categories   models.CategorySet
	Transactions []models.Transaction
}

// Store owns the current users, categories, and transactions.
//
// The original control flow was strictly single-threaded; the HTTP surface
// serves requests concurrently, so every operation takes the lock.
type Store struct {
	mu           sync.RWMutex
	users        []models.User
	categories   models.CategorySet
	transactions []models.Transaction
	newID        func() string
}

// New creates an empty store with time-ordered UUID ids.
func New() *Store {
	return &Store{newID: uuid.New}
}

// NewWithIDs creates an empty store with a custom id generator. Tests use
// this to get deterministic ids.
func NewWithIDs(newID func() string) *Store {
	return &Store{newID: newID}
}

// Restore replaces the store's contents with a deep copy of state.
func (s *Store) Restore(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]models.User(nil), state.Users...)
	s.categories = state.Categories.Clone()
	s.transactions = append([]models.Transaction(nil), state.Transactions...)
}

// State returns a deep copy of the store's contents.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Users:        append([]models.User(nil), s.users...),
		Categories:   s.categories.Clone(),
		Transactions: append([]models.Transaction(nil), s.transactions...),
	}
}

// Users returns a copy of the user list in insertion order.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

// Categories returns a copy of both category groups.
func (s *Store) Categories() models.CategorySet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories.Clone()
}

// Transactions returns a copy of the transaction list, most recently
// created first.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Transaction(nil), s.transactions...)
}

// CreateUser appends a new user with a fresh id.
func (s *Store) CreateUser(name, phone, avatarURL string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := models.User{
		ID:        s.newID(),
		Name:      name,
		Phone:     phone,
		AvatarURL: avatarURL,
	}
	s.users = append(s.users, user)
	return user
}

// UpdateUser replaces the mutable fields of the user with the given id.
func (s *Store) UpdateUser(id, name, phone, avatarURL string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Name = name
			s.users[i].Phone = phone
			s.users[i].AvatarURL = avatarURL
			return s.users[i], nil
		}
	}
	return models.User{}, apperrors.ErrUserNotFound
}

// DeleteUser removes the user with the given id. Transactions referencing
// the user are left in place with a dangling user id.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

// CreateCategory appends a new category to the named group.
func (s *Store) CreateCategory(group models.CategoryGroup, name string) (models.Category, error) {
	if !group.Valid() {
		return models.Category{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown category group")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	category := models.Category{ID: s.newID(), Name: name}
	switch group {
	case models.CategoryGroupIncome:
		s.categories.Income = append(s.categories.Income, category)
	case models.CategoryGroupExpense:
		s.categories.Expense = append(s.categories.Expense, category)
	}
	return category, nil
}

// UpdateCategory renames the category with the given id and, when newGroup
// differs from its current group, moves it there. The id is preserved
// across a move: the category is removed from its old group's list and
// appended to the new one.
func (s *Store) UpdateCategory(id string, newGroup models.CategoryGroup, newName string) (models.Category, error) {
	if !newGroup.Valid() {
		return models.Category{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown category group")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	currentGroup, idx := s.findCategory(id)
	if idx < 0 {
		return models.Category{}, apperrors.ErrCategoryNotFound
	}

	if currentGroup == newGroup {
		list := s.groupList(currentGroup)
		(*list)[idx].Name = newName
		return (*list)[idx], nil
	}

	oldList := s.groupList(currentGroup)
	*oldList = append((*oldList)[:idx], (*oldList)[idx+1:]...)
	moved := models.Category{ID: id, Name: newName}
	newList := s.groupList(newGroup)
	*newList = append(*newList, moved)
	return moved, nil
}

// DeleteCategory removes the category with the given id from the named
// group. Transactions labeled with its name keep the label.
func (s *Store) DeleteCategory(group models.CategoryGroup, id string) error {
	if !group.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown category group")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.groupList(group)
	for i := range *list {
		if (*list)[i].ID == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCategoryNotFound
}

// CreateTransaction prepends a new transaction with a fresh id, so the
// default listing order is most recently added first.
func (s *Store) CreateTransaction(fields models.Transaction) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	fields.ID = s.newID()
	s.transactions = append([]models.Transaction{fields}, s.transactions...)
	return fields
}

// UpdateTransaction replaces every field of the transaction with the given
// id except the id itself.
func (s *Store) UpdateTransaction(id string, fields models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			fields.ID = id
			s.transactions[i] = fields
			return fields, nil
		}
	}
	return models.Transaction{}, apperrors.ErrTransactionNotFound
}

// DeleteTransaction removes the transaction with the given id.
func (s *Store) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrTransactionNotFound
}

// findCategory locates a category by id across both groups. Callers must
// hold the lock.
func (s *Store) findCategory(id string) (models.CategoryGroup, int) {
	for i := range s.categories.Income {
		if s.categories.Income[i].ID == id {
			return models.CategoryGroupIncome, i
		}
	}
	for i := range s.categories.Expense {
		if s.categories.Expense[i].ID == id {
			return models.CategoryGroupExpense, i
		}
	}
	return "", -1
}

// groupList returns a pointer to the backing slice for a group. Callers
// must hold the lock.
func (s *Store) groupList(group models.CategoryGroup) *[]models.Category {
	if group == models.CategoryGroupIncome {
		return &s.categories.Income
	}
	return &s.categories.Expense
}
