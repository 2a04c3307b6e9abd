package query

import (
	"sort"
	"strings"

	"butce/internal/models"
)

// SortKey names a sortable column of the transaction listing.
type SortKey string

const (
	SortByDate        SortKey = "date"
	SortByAmount      SortKey = "amount"
	SortByUser        SortKey = "user"
	SortByCategory    SortKey = "category"
	SortByDescription SortKey = "description"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortByDate, SortByAmount, SortByUser, SortByCategory, SortByDescription:
		return true
	}
	return false
}

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

// SortBy returns a new slice of transactions ordered by the given key and
// direction. The sort is stable: transactions with equal keys keep their
// relative input order. Amounts compare numerically and dates
// chronologically. The user key resolves each user id to its display name
// before comparing (case-sensitive, empty string for an unresolvable id);
// category and description compare case-insensitively.
func SortBy(transactions []models.Transaction, users []models.User, key SortKey, dir Direction) []models.Transaction {
	sorted := append([]models.Transaction(nil), transactions...)

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	cmp := func(a, b models.Transaction) int {
		switch key {
		case SortByAmount:
			switch {
			case a.Amount < b.Amount:
				return -1
			case a.Amount > b.Amount:
				return 1
			}
			return 0
		case SortByDate:
			return a.Date.Compare(b.Date.Time)
		case SortByUser:
			return strings.Compare(names[a.UserID], names[b.UserID])
		case SortByCategory:
			return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
		default:
			return strings.Compare(strings.ToLower(a.Description), strings.ToLower(b.Description))
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		c := cmp(sorted[i], sorted[j])
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return sorted
}
