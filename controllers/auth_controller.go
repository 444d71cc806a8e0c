package controllers

import (
	"context"
	"net/http"

	"github.com/code-on-sunday/django-ecommerce-cart/apperrors"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the expected login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type IAuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type AuthController struct {
	auth IAuthService
}

func NewAuthController(auth IAuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login handles credential verification and token issuance. A malformed
// body gets the same generic rejection as bad credentials.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.ErrInvalidCredentials)
		return
	}

	token, err := ac.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}
