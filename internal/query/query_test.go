package query_test

import (
	"testing"

	"butce/internal/models"
	"butce/internal/query"
	"butce/internal/testutil"
)

func TestUserFilterVariants(t *testing.T) {
	all := query.AllUsers()
	if !all.Matches("1") || !all.Matches("anything") {
		t.Error("AllUsers must match every user id")
	}

	some := query.SomeUsers("1", "2")
	if !some.Matches("1") || !some.Matches("2") {
		t.Error("SomeUsers must match its listed ids")
	}
	if some.Matches("3") {
		t.Error("SomeUsers must not match unlisted ids")
	}

	none := query.SomeUsers()
	if none.Matches("1") {
		t.Error("an empty selection matches nothing")
	}

	var zero query.UserFilter
	if zero.Matches("1") {
		t.Error("the zero filter matches nothing")
	}
}

func TestForMonth(t *testing.T) {
	txs := []models.Transaction{
		testutil.Transaction("1", models.TransactionTypeIncome, 100, "2024-03-05"),
		testutil.Transaction("2", models.TransactionTypeExpense, 40, "2024-03-20"),
		testutil.Transaction("1", models.TransactionTypeExpense, 30, "2024-02-28"),
		testutil.Transaction("1", models.TransactionTypeIncome, 50, "2023-03-05"),
	}
	ref := testutil.MustDate(t, "2024-03-15")

	march := query.ForMonth(txs, ref, query.AllUsers())
	if len(march) != 2 {
		t.Fatalf("expected 2 transactions in 2024-03, got %d", len(march))
	}
	if march[0].ID != txs[0].ID || march[1].ID != txs[1].ID {
		t.Error("ForMonth must preserve input order")
	}

	onlyFirst := query.ForMonth(txs, ref, query.SomeUsers("1"))
	if len(onlyFirst) != 1 || onlyFirst[0].UserID != "1" {
		t.Errorf("user filter not applied: %+v", onlyFirst)
	}
}

// The filtered subset of any month is exactly the union of per-user
// subsets for the selected users.
func TestForMonthPartition(t *testing.T) {
	txs := []models.Transaction{
		testutil.Transaction("1", models.TransactionTypeIncome, 100, "2024-03-01"),
		testutil.Transaction("2", models.TransactionTypeExpense, 40, "2024-03-02"),
		testutil.Transaction("3", models.TransactionTypeExpense, 10, "2024-03-03"),
	}
	ref := testutil.MustDate(t, "2024-03-01")

	both := query.ForMonth(txs, ref, query.SomeUsers("1", "2"))
	separate := len(query.ForMonth(txs, ref, query.SomeUsers("1"))) +
		len(query.ForMonth(txs, ref, query.SomeUsers("2")))
	if len(both) != separate {
		t.Errorf("partition mismatch: combined %d, separate %d", len(both), separate)
	}
}

func TestSumBalanceIdentity(t *testing.T) {
	txs := []models.Transaction{
		testutil.Transaction("1", models.TransactionTypeIncome, 100, "2024-03-01"),
		testutil.Transaction("1", models.TransactionTypeExpense, 40, "2024-03-02"),
	}

	totals := query.Sum(txs)
	if totals.Income != 100 || totals.Expense != 40 || totals.Balance != 60 {
		t.Errorf("expected {100 40 60}, got %+v", totals)
	}

	empty := query.Sum(nil)
	if empty != (query.Totals{}) {
		t.Errorf("empty set must sum to zero, got %+v", empty)
	}
}

func TestPerUser(t *testing.T) {
	users := []models.User{
		{ID: "1", Name: "Engin"},
		{ID: "2", Name: "Eylül"},
	}
	txs := []models.Transaction{
		testutil.Transaction("1", models.TransactionTypeIncome, 100, "2024-03-01"),
		testutil.Transaction("1", models.TransactionTypeExpense, 30, "2024-03-02"),
		testutil.Transaction("ghost", models.TransactionTypeIncome, 999, "2024-03-03"),
	}

	rows := query.PerUser(users, txs)
	if len(rows) != 2 {
		t.Fatalf("expected one row per listed user, got %d", len(rows))
	}
	if rows[0].User.ID != "1" || rows[0].Income != 100 || rows[0].Expense != 30 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].User.ID != "2" || rows[1].Totals != (query.Totals{}) {
		t.Errorf("users without transactions get zero totals, got %+v", rows[1])
	}

	// The orphan transaction still counts in the overall totals even
	// though no per-user row carries it.
	var rowIncome int64
	for _, r := range rows {
		rowIncome += r.Income
	}
	if overall := query.Sum(txs); overall.Income == rowIncome {
		t.Error("expected overall income to exceed the per-user rows when an orphan exists")
	}
}

func TestDistribution(t *testing.T) {
	mk := func(txType models.TransactionType, amount int64, category string) models.Transaction {
		tx := testutil.Transaction("1", txType, amount, "2024-03-01")
		tx.Category = category
		return tx
	}
	txs := []models.Transaction{
		mk(models.TransactionTypeExpense, 40, "Market"),
		mk(models.TransactionTypeExpense, 60, "Market"),
		mk(models.TransactionTypeExpense, 25, "Fatura"),
		mk(models.TransactionTypeIncome, 1000, "Maaş"),
	}

	dist := query.Distribution(txs, models.TransactionTypeExpense)
	if len(dist) != 2 {
		t.Fatalf("expected 2 expense categories, got %d", len(dist))
	}
	if dist["Market"] != 100 || dist["Fatura"] != 25 {
		t.Errorf("unexpected distribution: %v", dist)
	}
	if _, ok := dist["Maaş"]; ok {
		t.Error("income categories must not appear in an expense distribution")
	}
}
