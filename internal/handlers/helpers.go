package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "butce/internal/errors"
	"butce/internal/logger"
	"butce/internal/models"
	"butce/internal/query"
)

// parseMonth parses the optional "month" query parameter (YYYY-MM). When
// absent, the current month is used.
func parseMonth(c *gin.Context) (models.Date, error) {
	raw := c.Query("month")
	if raw == "" {
		return models.Today(), nil
	}
	date, err := models.ParseDate(raw + "-01")
	if err != nil {
		return models.Date{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be in YYYY-MM format")
	}
	return date, nil
}

// parseUserFilter parses the optional "users" query parameter, a
// comma-separated list of user ids. An absent or blank parameter means all
// users.
func parseUserFilter(c *gin.Context) query.UserFilter {
	raw := strings.TrimSpace(c.Query("users"))
	if raw == "" {
		return query.AllUsers()
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return query.AllUsers()
	}
	return query.SomeUsers(ids...)
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
