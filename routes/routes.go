package routes

import (
	"net/http"

	"github.com/code-on-sunday/django-ecommerce-cart/controllers"

	"github.com/gin-gonic/gin"
)

// Register wires the public HTTP surface. The cart route is protected by
// the bearer-token guard; login is open.
func Register(r *gin.Engine, auth *controllers.AuthController, cart *controllers.CartController, requireAuth gin.HandlerFunc) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	r.POST("/login/", auth.Login)
	r.GET("/cart/", requireAuth, cart.GetCart)
}
