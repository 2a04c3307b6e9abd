package models

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single income or expense entry.
//
// UserID and Category are weak references: deleting a user or renaming a
// category leaves existing transactions untouched, and readers must
// tolerate references that no longer resolve. Category holds the category
// name, not its id, so a rename never rewrites historical entries.
// Amount is in minor currency units (kuruş/cents) and is always positive;
// Type determines the sign in derived views.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Type        TransactionType `json:"type"`
	Amount      int64           `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
}
