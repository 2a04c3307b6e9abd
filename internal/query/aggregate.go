package query

import "butce/internal/models"

// Totals holds summed income, summed expense, and their difference for a
// set of transactions. Amounts are in minor currency units.
type Totals struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}

// Sum aggregates a transaction set into income, expense, and balance.
// An empty set sums to zero.
func Sum(transactions []models.Transaction) Totals {
	var t Totals
	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionTypeIncome:
			t.Income += tx.Amount
		case models.TransactionTypeExpense:
			t.Expense += tx.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}

// UserTotals pairs a user with their totals over some transaction set.
type UserTotals struct {
	User models.User `json:"user"`
	Totals
}

// PerUser computes each listed user's totals restricted to their own
// transactions, in the users' input order. Users with no matching
// transactions get all-zero totals. Transactions whose user id resolves to
// no listed user contribute to no row here even though Sum over the same
// set still counts them.
func PerUser(users []models.User, transactions []models.Transaction) []UserTotals {
	byUser := make(map[string][]models.Transaction, len(users))
	for _, tx := range transactions {
		byUser[tx.UserID] = append(byUser[tx.UserID], tx)
	}

	out := make([]UserTotals, 0, len(users))
	for _, u := range users {
		out = append(out, UserTotals{User: u, Totals: Sum(byUser[u.ID])})
	}
	return out
}

// Distribution groups transactions of the given type by category name and
// sums their amounts. Categories without matching transactions are absent
// from the result rather than present with a zero value.
func Distribution(transactions []models.Transaction, txType models.TransactionType) map[string]int64 {
	dist := make(map[string]int64)
	for _, tx := range transactions {
		if tx.Type == txType {
			dist[tx.Category] += tx.Amount
		}
	}
	return dist
}
