package services

import (
	"butce/internal/models"
	"butce/internal/query"
	"butce/internal/store"
)

// Overview bundles every derived view the dashboard renders for one month
// and user selection.
type Overview struct {
	Month             string             `json:"month"`
	Totals            query.Totals       `json:"totals"`
	Users             []query.UserTotals `json:"users"`
	IncomeByCategory  map[string]int64   `json:"income_by_category"`
	ExpenseByCategory map[string]int64   `json:"expense_by_category"`
	Trend             []query.TrendPoint `json:"trend"`
}

// DashboardService derives the dashboard views. Nothing is cached: every
// call recomputes from current store state.
type DashboardService struct {
	store *store.Store
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(s *store.Store) *DashboardService {
	return &DashboardService{store: s}
}

// Overview computes the month's totals, per-user balances, category
// distributions, and the rolling trend series for the given selection.
func (s *DashboardService) Overview(ref models.Date, filter query.UserFilter) Overview {
	transactions := s.store.Transactions()
	users := s.store.Users()
	month := query.ForMonth(transactions, ref, filter)

	return Overview{
		Month:             ref.Format("2006-01"),
		Totals:            query.Sum(month),
		Users:             query.PerUser(users, month),
		IncomeByCategory:  query.Distribution(month, models.TransactionTypeIncome),
		ExpenseByCategory: query.Distribution(month, models.TransactionTypeExpense),
		Trend:             query.Trend(transactions, ref, filter, query.DefaultTrendWindow),
	}
}
