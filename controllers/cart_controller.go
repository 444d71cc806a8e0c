package controllers

import (
	"context"
	"net/http"

	"github.com/code-on-sunday/django-ecommerce-cart/apperrors"
	"github.com/code-on-sunday/django-ecommerce-cart/middleware"
	"github.com/code-on-sunday/django-ecommerce-cart/models"
	"github.com/code-on-sunday/django-ecommerce-cart/services"

	"github.com/gin-gonic/gin"
)

type ICartService interface {
	GetCartSummary(ctx context.Context, user *models.User) (*services.CartSummary, error)
}

type CartController struct {
	carts ICartService
}

func NewCartController(carts ICartService) *CartController {
	return &CartController{carts: carts}
}

// GetCart returns the authenticated user's cart summary.
func (cc *CartController) GetCart(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		// Only reachable if the route is wired without RequireAuth.
		apperrors.Respond(c, apperrors.ErrMissingToken)
		return
	}

	summary, err := cc.carts.GetCartSummary(c.Request.Context(), user)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
