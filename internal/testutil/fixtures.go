package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"butce/internal/models"
	"butce/internal/store"
)

// counter provides unique sequential ids across fixtures within a test run.
var counter atomic.Int64

// SequentialIDs returns an id generator producing "test-1", "test-2", and so
// on. Stores built with it have predictable ids without depending on the
// UUID clock.
func SequentialIDs() func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("test-%d", n.Add(1))
	}
}

// NewSeededStore builds a store loaded with the default seed data and a
// sequential id generator.
func NewSeededStore() *store.Store {
	s := store.NewWithIDs(SequentialIDs())
	s.Restore(store.Seed())
	return s
}

// Transaction builds a transaction fixture for the given user, type, amount,
// and "YYYY-MM-DD" date. The description and category get unique filler
// values; override them on the returned struct when a test cares.
func Transaction(userID string, txType models.TransactionType, amount int64, date string) models.Transaction {
	d, err := models.ParseDate(date)
	if err != nil {
		panic(fmt.Sprintf("testutil: bad fixture date %q: %v", date, err))
	}
	n := counter.Add(1)
	return models.Transaction{
		ID:          fmt.Sprintf("tx-%d", n),
		UserID:      userID,
		Type:        txType,
		Amount:      amount,
		Description: fmt.Sprintf("fixture %d", n),
		Category:    "Market",
		Date:        d,
	}
}

// MustDate parses a "YYYY-MM-DD" string, failing the test on error.
func MustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}
