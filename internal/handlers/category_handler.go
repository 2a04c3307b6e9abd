package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "butce/internal/errors"
	"butce/internal/models"
	"butce/internal/services"
)

// CategoryHandler handles category management requests.
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest is the payload for creating or updating a category. On
// update, a group differing from the category's current group moves it.
type CategoryRequest struct {
	Group string `json:"group" binding:"required,category_group"`
	Name  string `json:"name" binding:"required,max=100"`
}

// List returns both category groups, or a single group when the "group"
// query parameter is present.
func (h *CategoryHandler) List(c *gin.Context) {
	set := h.categoryService.List()

	if raw := c.Query("group"); raw != "" {
		group := models.CategoryGroup(raw)
		if !group.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "group must be income or expense"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": set.Group(group)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": set})
}

// Create adds a category to a group.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.Create(models.CategoryGroup(req.Group), req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// Update renames and/or moves a category.
func (h *CategoryHandler) Update(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.Update(c.Param("id"), models.CategoryGroup(req.Group), req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// Delete removes a category from the group named by the "group" query
// parameter. Transactions keep the category name as an orphaned label.
func (h *CategoryHandler) Delete(c *gin.Context) {
	group := models.CategoryGroup(c.Query("group"))
	if !group.Valid() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "group must be income or expense"))
		return
	}

	if err := h.categoryService.Delete(group, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
