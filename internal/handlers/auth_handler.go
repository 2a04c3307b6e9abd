package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"butce/internal/auth"
	apperrors "butce/internal/errors"
)

// AuthHandler forwards sign-in and sign-up requests to the auth gateway.
type AuthHandler struct {
	gateway auth.Gateway
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(gateway auth.Gateway) *AuthHandler {
	return &AuthHandler{gateway: gateway}
}

// CredentialsRequest is the payload for both sign-in and sign-up.
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SignIn authenticates against the identity provider.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	identity, err := h.gateway.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"identity": identity})
}

// SignUp registers a new account with the identity provider and signs it in.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	identity, err := h.gateway.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"identity": identity})
}
