package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/code-on-sunday/django-ecommerce-cart/apperrors"
	"github.com/code-on-sunday/django-ecommerce-cart/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const userContextKey = "currentUser"

type tokenValidator interface {
	Validate(tokenStr string) (jwt.MapClaims, error)
}

type userResolver interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// RequireAuth guards a route with bearer-token authentication. A missing or
// malformed Authorization header is rejected before any token parsing; a
// token that fails validation, or whose subject no longer resolves to a
// user, is rejected as invalid. On success the resolved user is stored in
// the request context for downstream handlers.
func RequireAuth(tokens tokenValidator, users userResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.Respond(c, apperrors.ErrMissingToken)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			apperrors.Respond(c, apperrors.ErrMissingToken)
			c.Abort()
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			apperrors.Respond(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			apperrors.Respond(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}
		userID, err := uuid.Parse(sub)
		if err != nil {
			apperrors.Respond(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		// A valid signature for a deleted account is still an invalid token.
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			apperrors.Respond(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser extracts the authenticated user from the gin context.
func CurrentUser(c *gin.Context) (*models.User, error) {
	if val, ok := c.Get(userContextKey); ok {
		if user, ok := val.(*models.User); ok {
			return user, nil
		}
	}
	return nil, errors.New("user not found in context")
}
