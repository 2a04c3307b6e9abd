package store

import "butce/internal/models"

// Seed returns the built-in starter dataset: two household users and a
// fixed set of income and expense categories, with no transactions. The
// persistence adapter falls back to it when stored state is missing or
// unreadable.
func Seed() State {
	return State{
		Users: []models.User{
			{ID: "1", Name: "Engin", Phone: "555-0000", AvatarURL: "https://ui-avatars.com/api/?name=Engin&background=0D8ABC&color=fff"},
			{ID: "2", Name: "Eylül", Phone: "555-1111", AvatarURL: "https://ui-avatars.com/api/?name=Eylul&background=random"},
		},
		Categories: models.CategorySet{
			Income: []models.Category{
				{ID: "inc-1", Name: "Maaş"},
				{ID: "inc-2", Name: "Kira Geliri"},
				{ID: "inc-3", Name: "Ek İş"},
			},
			Expense: []models.Category{
				{ID: "exp-1", Name: "Market"},
				{ID: "exp-2", Name: "Fatura"},
				{ID: "exp-3", Name: "Kira"},
				{ID: "exp-4", Name: "Ulaşım"},
				{ID: "exp-5", Name: "Eğlence"},
			},
		},
		Transactions: []models.Transaction{},
	}
}
