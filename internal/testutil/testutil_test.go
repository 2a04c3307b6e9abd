package testutil_test

import (
	"testing"

	"butce/internal/errors"
	"butce/internal/models"
	"butce/internal/testutil"
)

func TestSeededStore(t *testing.T) {
	s := testutil.NewSeededStore()

	if len(s.Users()) != 2 {
		t.Fatalf("expected 2 seed users, got %d", len(s.Users()))
	}
	cats := s.Categories()
	if len(cats.Income) != 3 || len(cats.Expense) != 5 {
		t.Errorf("unexpected seed category counts: %d income, %d expense", len(cats.Income), len(cats.Expense))
	}
	if len(s.Transactions()) != 0 {
		t.Errorf("expected no seed transactions, got %d", len(s.Transactions()))
	}
}

func TestTransactionFixture(t *testing.T) {
	tx := testutil.Transaction("u1", models.TransactionTypeIncome, 1000, "2024-03-05")
	if tx.Amount != 1000 {
		t.Errorf("expected amount 1000, got %d", tx.Amount)
	}
	if got := tx.Date.String(); got != "2024-03-05" {
		t.Errorf("expected date 2024-03-05, got %s", got)
	}
	if tx.Description == "" || tx.Category == "" {
		t.Error("fixture should fill description and category")
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrUserNotFound, "custom message")
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
