// Package query derives the dashboard views from the transaction log:
// period filtering, sorted listings, totals, per-user balances, category
// distributions, and multi-month trend series. Every function is pure:
// inputs are never mutated and identical inputs yield identical outputs.
package query

import "butce/internal/models"

// UserFilter selects which users' transactions participate in a view.
// Matching all users and matching an explicit set are distinct variants so
// that an emptied selection cannot be confused with "no selection".
// The zero value matches no one; use AllUsers for the unrestricted filter.
type UserFilter struct {
	all bool
	ids map[string]struct{}
}

// AllUsers returns a filter that matches every transaction.
func AllUsers() UserFilter {
	return UserFilter{all: true}
}

// SomeUsers returns a filter matching only transactions attributed to the
// given user ids. Ids that resolve to no user are legal and simply match
// nothing. With zero ids the filter matches no transactions at all.
func SomeUsers(ids ...string) UserFilter {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return UserFilter{ids: set}
}

// Matches reports whether a transaction attributed to userID passes the filter.
func (f UserFilter) Matches(userID string) bool {
	if f.all {
		return true
	}
	_, ok := f.ids[userID]
	return ok
}

// ForMonth returns the transactions whose date falls in the calendar month
// of ref and whose user passes the filter. Input order is preserved; the
// result is a fresh slice.
func ForMonth(transactions []models.Transaction, ref models.Date, filter UserFilter) []models.Transaction {
	matched := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Date.InMonth(ref) && filter.Matches(tx.UserID) {
			matched = append(matched, tx)
		}
	}
	return matched
}
