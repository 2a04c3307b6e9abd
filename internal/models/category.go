package models

// CategoryGroup names one of the two disjoint category partitions.
type CategoryGroup string

const (
	CategoryGroupIncome  CategoryGroup = "income"
	CategoryGroupExpense CategoryGroup = "expense"
)

// Valid reports whether g is one of the two known groups.
func (g CategoryGroup) Valid() bool {
	return g == CategoryGroupIncome || g == CategoryGroupExpense
}

// Category is a named transaction label. Group membership is a property of
// the containing CategorySet, not of the category itself, so an edit can
// move a category between groups while its id stays stable.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategorySet holds the income and expense category lists. The two groups
// are disjoint by id; names are not required to be unique.
type CategorySet struct {
	Income  []Category `json:"income"`
	Expense []Category `json:"expense"`
}

// Group returns the list for the named group. Unknown groups return nil.
func (s CategorySet) Group(g CategoryGroup) []Category {
	switch g {
	case CategoryGroupIncome:
		return s.Income
	case CategoryGroupExpense:
		return s.Expense
	}
	return nil
}

// Clone returns a deep copy of the set.
func (s CategorySet) Clone() CategorySet {
	out := CategorySet{
		Income:  make([]Category, len(s.Income)),
		Expense: make([]Category, len(s.Expense)),
	}
	copy(out.Income, s.Income)
	copy(out.Expense, s.Expense)
	return out
}
