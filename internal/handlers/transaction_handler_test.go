package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"butce/internal/blob"
	"butce/internal/handlers"
	"butce/internal/models"
	"butce/internal/persist"
	"butce/internal/services"
	"butce/internal/store"
	"butce/internal/testutil"
	"butce/internal/validator"
)

var registerOnce sync.Once

func setupRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	registerOnce.Do(validator.Register)

	s := testutil.NewSeededStore()
	adapter := persist.New(blob.NewMemoryStore())

	txHandler := handlers.NewTransactionHandler(services.NewTransactionService(s, adapter))
	dashHandler := handlers.NewDashboardHandler(services.NewDashboardService(s))

	r := gin.New()
	r.GET("/transactions", txHandler.List)
	r.POST("/transactions", txHandler.Create)
	r.PUT("/transactions/:id", txHandler.Update)
	r.DELETE("/transactions/:id", txHandler.Delete)
	r.GET("/dashboard", dashHandler.Overview)
	return r, s
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTransaction(t *testing.T) {
	r, s := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/transactions", gin.H{
		"user_id":     "1",
		"type":        "expense",
		"amount":      4200,
		"description": "weekly groceries",
		"category":    "Market",
		"date":        "2024-03-10",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Transaction models.Transaction `json:"transaction"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Transaction.ID == "" || resp.Transaction.Amount != 4200 {
		t.Errorf("unexpected created transaction: %+v", resp.Transaction)
	}
	if len(s.Transactions()) != 1 {
		t.Error("transaction not stored")
	}
}

func TestCreateTransactionRejectsBadPayload(t *testing.T) {
	r, _ := setupRouter(t)

	cases := []struct {
		name    string
		payload gin.H
	}{
		{"bad type", gin.H{"user_id": "1", "type": "transfer", "amount": 100, "description": "d", "category": "Market", "date": "2024-03-10"}},
		{"bad date", gin.H{"user_id": "1", "type": "expense", "amount": 100, "description": "d", "category": "Market", "date": "10.03.2024"}},
		{"negative amount", gin.H{"user_id": "1", "type": "expense", "amount": -1, "description": "d", "category": "Market", "date": "2024-03-10"}},
		{"missing user", gin.H{"type": "expense", "amount": 100, "description": "d", "category": "Market", "date": "2024-03-10"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/transactions", tc.payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestListTransactionsDefaultsAndPaging(t *testing.T) {
	r, s := setupRouter(t)
	s.CreateTransaction(testutil.Transaction("1", models.TransactionTypeExpense, 100, "2024-03-05"))
	s.CreateTransaction(testutil.Transaction("1", models.TransactionTypeExpense, 200, "2024-03-20"))
	s.CreateTransaction(testutil.Transaction("1", models.TransactionTypeExpense, 300, "2024-04-01"))

	w := doJSON(t, r, http.MethodGet, "/transactions?month=2024-03", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data       []models.Transaction `json:"data"`
		TotalItems int64                `json:"total_items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalItems != 2 {
		t.Fatalf("expected 2 March transactions, got %d", resp.TotalItems)
	}
	// Default sort is date descending.
	if resp.Data[0].Amount != 200 || resp.Data[1].Amount != 100 {
		t.Errorf("unexpected default order: %+v", resp.Data)
	}
}

func TestListTransactionsRejectsBadSort(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/transactions?sort=color", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown sort key, got %d", w.Code)
	}
}

func TestUpdateAndDeleteTransaction(t *testing.T) {
	r, s := setupRouter(t)
	created := s.CreateTransaction(testutil.Transaction("1", models.TransactionTypeExpense, 100, "2024-03-05"))

	w := doJSON(t, r, http.MethodPut, "/transactions/"+created.ID, gin.H{
		"user_id":     "2",
		"type":        "income",
		"amount":      900,
		"description": "side job",
		"category":    "Ek İş",
		"date":        "2024-03-12",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/transactions/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/transactions/"+created.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a missing transaction, got %d", w.Code)
	}
}

func TestDashboardOverview(t *testing.T) {
	r, s := setupRouter(t)
	s.CreateTransaction(testutil.Transaction("1", models.TransactionTypeIncome, 100, "2024-03-05"))
	s.CreateTransaction(testutil.Transaction("1", models.TransactionTypeExpense, 40, "2024-03-10"))

	w := doJSON(t, r, http.MethodGet, "/dashboard?month=2024-03", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp services.Overview
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Month != "2024-03" {
		t.Errorf("unexpected month: %q", resp.Month)
	}
	if resp.Totals.Income != 100 || resp.Totals.Expense != 40 || resp.Totals.Balance != 60 {
		t.Errorf("unexpected totals: %+v", resp.Totals)
	}
}

func TestDashboardRejectsBadMonth(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/dashboard?month=March", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a malformed month, got %d", w.Code)
	}
}
