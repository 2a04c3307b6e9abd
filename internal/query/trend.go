package query

import (
	"time"

	"butce/internal/models"
)

// DefaultTrendWindow is the number of months the dashboard's comparison
// chart covers.
const DefaultTrendWindow = 4

// TrendPoint holds one month's income and expense totals.
type TrendPoint struct {
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

// Trend computes income/expense totals for each of the window consecutive
// calendar months ending at and including the month of ref, oldest first.
// Every month yields a point, zero-valued when no transactions match.
// A window below 1 falls back to DefaultTrendWindow.
func Trend(transactions []models.Transaction, ref models.Date, filter UserFilter, window int) []TrendPoint {
	if window < 1 {
		window = DefaultTrendWindow
	}

	points := make([]TrendPoint, 0, window)
	for i := window - 1; i >= 0; i-- {
		// Anchor on the first of the month so a day-31 reference cannot
		// skip short months during subtraction.
		first := time.Date(ref.Year(), ref.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		month := models.Date{Time: first}
		totals := Sum(ForMonth(transactions, month, filter))
		points = append(points, TrendPoint{
			Month:   first.Format("January 2006"),
			Income:  totals.Income,
			Expense: totals.Expense,
		})
	}
	return points
}
