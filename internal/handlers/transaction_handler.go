package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "butce/internal/errors"
	"butce/internal/models"
	"butce/internal/pagination"
	"butce/internal/query"
	"butce/internal/services"
)

// TransactionHandler handles transaction entry and listing requests.
type TransactionHandler struct {
	transactionService *services.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest is the payload for creating or updating a transaction.
// Amount is in minor currency units. Category is the category name, not an
// id; the reference is intentionally by value.
type TransactionRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	Type        string `json:"type" binding:"required,transaction_type"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description" binding:"required,max=500"`
	Category    string `json:"category" binding:"required,max=100"`
	Date        string `json:"date" binding:"required,calendar_date"`
}

// ListQuery holds the listing parameters: month, user selection, and sort.
type ListQuery struct {
	Sort string `form:"sort" binding:"omitempty,sort_key"`
	Dir  string `form:"dir" binding:"omitempty,sort_dir"`
	pagination.PageRequest
}

// List returns the selected month's transactions, sorted and paginated.
// Defaults match the original dashboard: current month, all users, newest
// first by date.
func (h *TransactionHandler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if q.Sort == "" {
		q.Sort = string(query.SortByDate)
	}
	if q.Dir == "" {
		q.Dir = string(query.Descending)
	}

	month, err := parseMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions := h.transactionService.ListMonth(month, parseUserFilter(c), query.SortKey(q.Sort), query.Direction(q.Dir))
	c.JSON(http.StatusOK, pagination.Slice(transactions, q.PageRequest))
}

// Create records a new transaction.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.transactionService.Create(req.UserID, models.TransactionType(req.Type), req.Amount, req.Description, req.Category, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// Update replaces every field of a transaction except its id.
func (h *TransactionHandler) Update(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.transactionService.Update(c.Param("id"), req.UserID, models.TransactionType(req.Type), req.Amount, req.Description, req.Category, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// Delete removes a transaction.
func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.transactionService.Delete(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}
