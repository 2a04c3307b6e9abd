package services_test

import (
	"testing"

	"butce/internal/models"
	"butce/internal/query"
	"butce/internal/services"
	"butce/internal/store"
	"butce/internal/testutil"
)

func dashboardFixture(t *testing.T) (*store.Store, *services.DashboardService) {
	t.Helper()
	s := testutil.NewSeededStore()
	svc := services.NewDashboardService(s)
	return s, svc
}

func addTx(s *store.Store, userID string, txType models.TransactionType, amount int64, category, date string) {
	tx := testutil.Transaction(userID, txType, amount, date)
	tx.Category = category
	s.CreateTransaction(tx)
}

func TestOverviewTotals(t *testing.T) {
	s, svc := dashboardFixture(t)
	addTx(s, "1", models.TransactionTypeIncome, 100, "Maaş", "2024-03-05")
	addTx(s, "1", models.TransactionTypeExpense, 40, "Market", "2024-03-10")
	addTx(s, "1", models.TransactionTypeIncome, 999, "Maaş", "2024-04-01")

	ref := testutil.MustDate(t, "2024-03-15")
	ov := svc.Overview(ref, query.AllUsers())

	if ov.Month != "2024-03" {
		t.Errorf("expected month 2024-03, got %q", ov.Month)
	}
	want := query.Totals{Income: 100, Expense: 40, Balance: 60}
	if ov.Totals != want {
		t.Errorf("expected totals %+v, got %+v", want, ov.Totals)
	}
}

func TestOverviewPerUserAndDistributions(t *testing.T) {
	s, svc := dashboardFixture(t)
	addTx(s, "1", models.TransactionTypeIncome, 1000, "Maaş", "2024-03-01")
	addTx(s, "2", models.TransactionTypeExpense, 300, "Market", "2024-03-02")
	addTx(s, "2", models.TransactionTypeExpense, 200, "Market", "2024-03-03")

	ov := svc.Overview(testutil.MustDate(t, "2024-03-15"), query.AllUsers())

	if len(ov.Users) != 2 {
		t.Fatalf("expected a row per seeded user, got %d", len(ov.Users))
	}
	if ov.Users[0].Income != 1000 || ov.Users[1].Expense != 500 {
		t.Errorf("per-user totals wrong: %+v", ov.Users)
	}
	if ov.ExpenseByCategory["Market"] != 500 {
		t.Errorf("expense distribution wrong: %v", ov.ExpenseByCategory)
	}
	if ov.IncomeByCategory["Maaş"] != 1000 {
		t.Errorf("income distribution wrong: %v", ov.IncomeByCategory)
	}
}

func TestOverviewRespectsUserFilter(t *testing.T) {
	s, svc := dashboardFixture(t)
	addTx(s, "1", models.TransactionTypeIncome, 1000, "Maaş", "2024-03-01")
	addTx(s, "2", models.TransactionTypeIncome, 400, "Maaş", "2024-03-02")

	ov := svc.Overview(testutil.MustDate(t, "2024-03-15"), query.SomeUsers("2"))
	if ov.Totals.Income != 400 {
		t.Errorf("filter not applied to totals: %+v", ov.Totals)
	}
	if len(ov.Trend) != query.DefaultTrendWindow {
		t.Fatalf("expected %d trend points, got %d", query.DefaultTrendWindow, len(ov.Trend))
	}
	if last := ov.Trend[len(ov.Trend)-1]; last.Income != 400 {
		t.Errorf("filter not applied to trend: %+v", last)
	}
}

func TestOverviewUnchangedAfterUserDelete(t *testing.T) {
	s, svc := dashboardFixture(t)
	addTx(s, "1", models.TransactionTypeIncome, 1000, "Maaş", "2024-03-01")

	ref := testutil.MustDate(t, "2024-03-15")
	before := svc.Overview(ref, query.AllUsers())

	if err := s.DeleteUser("1"); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	after := svc.Overview(ref, query.AllUsers())

	if after.Totals != before.Totals {
		t.Errorf("overall totals must survive a user delete: before %+v, after %+v", before.Totals, after.Totals)
	}
	if len(after.Users) != len(before.Users)-1 {
		t.Errorf("deleted user should lose their row, got %d rows", len(after.Users))
	}
}
