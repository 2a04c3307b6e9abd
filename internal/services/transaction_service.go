package services

import (
	"strings"

	apperrors "butce/internal/errors"
	"butce/internal/models"
	"butce/internal/persist"
	"butce/internal/query"
	"butce/internal/store"
)

// TransactionService handles transaction entry and listing.
type TransactionService struct {
	store   *store.Store
	persist *persist.Adapter
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(s *store.Store, p *persist.Adapter) *TransactionService {
	return &TransactionService{store: s, persist: p}
}

// ListMonth returns the transactions of the calendar month of ref matching
// the user filter, sorted by the given key and direction.
func (s *TransactionService) ListMonth(ref models.Date, filter query.UserFilter, key query.SortKey, dir query.Direction) []models.Transaction {
	matched := query.ForMonth(s.store.Transactions(), ref, filter)
	return query.SortBy(matched, s.store.Users(), key, dir)
}

// Create validates and records a new transaction.
func (s *TransactionService) Create(userID string, txType models.TransactionType, amount int64, description, category string, date models.Date) (models.Transaction, error) {
	tx, err := buildTransaction(userID, txType, amount, description, category, date)
	if err != nil {
		return models.Transaction{}, err
	}

	created := s.store.CreateTransaction(tx)
	s.persist.SaveTransactions(s.store.Transactions())
	return created, nil
}

// Update replaces every field of an existing transaction, keeping its id.
func (s *TransactionService) Update(id, userID string, txType models.TransactionType, amount int64, description, category string, date models.Date) (models.Transaction, error) {
	tx, err := buildTransaction(userID, txType, amount, description, category, date)
	if err != nil {
		return models.Transaction{}, err
	}

	updated, err := s.store.UpdateTransaction(id, tx)
	if err != nil {
		return models.Transaction{}, err
	}
	s.persist.SaveTransactions(s.store.Transactions())
	return updated, nil
}

// Delete removes a transaction by id.
func (s *TransactionService) Delete(id string) error {
	if err := s.store.DeleteTransaction(id); err != nil {
		return err
	}
	s.persist.SaveTransactions(s.store.Transactions())
	return nil
}

// buildTransaction validates the caller-supplied fields. The query engine
// relies on never seeing a transaction with an empty user, empty category,
// non-positive amount, or missing date.
func buildTransaction(userID string, txType models.TransactionType, amount int64, description, category string, date models.Date) (models.Transaction, error) {
	if strings.TrimSpace(userID) == "" {
		return models.Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "user is required")
	}
	if strings.TrimSpace(category) == "" {
		return models.Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if strings.TrimSpace(description) == "" {
		return models.Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if !txType.Valid() {
		return models.Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}
	if amount <= 0 {
		return models.Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if date.IsZero() {
		date = models.Today()
	}

	return models.Transaction{
		UserID:      userID,
		Type:        txType,
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
	}, nil
}
