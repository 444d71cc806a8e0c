package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/code-on-sunday/django-ecommerce-cart/apperrors"
	"github.com/code-on-sunday/django-ecommerce-cart/middleware"
	"github.com/code-on-sunday/django-ecommerce-cart/models"
	"github.com/code-on-sunday/django-ecommerce-cart/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartService struct{ mock.Mock }

func (m *MockCartService) GetCartSummary(ctx context.Context, user *models.User) (*services.CartSummary, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CartSummary), args.Error(1)
}

type MockUserResolver struct{ mock.Mock }

func (m *MockUserResolver) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestGetCartController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokenService := services.NewTokenService("test-secret", time.Hour)
	user := &models.User{ID: uuid.New(), FirstName: "John", LastName: "Doe", Email: "john.doe@example.com"}

	newRouter := func(cartSvc ICartService, users *MockUserResolver) *gin.Engine {
		router := gin.New()
		router.GET("/cart/", middleware.RequireAuth(tokenService, users), NewCartController(cartSvc).GetCart)
		return router
	}

	t.Run("Authenticated - 200 with summary payload", func(t *testing.T) {
		// Arrange
		mockUsers := new(MockUserResolver)
		mockUsers.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()

		summary := &services.CartSummary{
			UserName:   "John Doe",
			TotalItems: 3,
			TotalPrice: decimal.RequireFromString("29.97"),
			Items: []services.CartSummaryItem{
				{Name: "Product 1", Price: decimal.RequireFromString("9.99"), Quantity: 3},
			},
		}
		mockCartSvc := new(MockCartService)
		mockCartSvc.On("GetCartSummary", mock.Anything, user).Return(summary, nil).Once()

		token, err := tokenService.Generate(user.ID.String())
		require.NoError(t, err)

		req, _ := http.NewRequest(http.MethodGet, "/cart/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		// Act
		newRouter(mockCartSvc, mockUsers).ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Contains(t, body, "user_name")
		assert.Contains(t, body, "total_items")
		assert.Contains(t, body, "total_price")
		assert.Contains(t, body, "items")
		assert.Contains(t, recorder.Body.String(), "29.97")
		mockCartSvc.AssertExpectations(t)
		mockUsers.AssertExpectations(t)
	})

	t.Run("No Authorization header - 401", func(t *testing.T) {
		mockCartSvc := new(MockCartService)
		req, _ := http.NewRequest(http.MethodGet, "/cart/", nil)
		recorder := httptest.NewRecorder()

		newRouter(mockCartSvc, new(MockUserResolver)).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Missing token")
		mockCartSvc.AssertNotCalled(t, "GetCartSummary")
	})

	t.Run("Invalid bearer token - 401", func(t *testing.T) {
		mockCartSvc := new(MockCartService)
		req, _ := http.NewRequest(http.MethodGet, "/cart/", nil)
		req.Header.Set("Authorization", "Bearer invalid_token")
		recorder := httptest.NewRecorder()

		newRouter(mockCartSvc, new(MockUserResolver)).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid token")
		mockCartSvc.AssertNotCalled(t, "GetCartSummary")
	})

	t.Run("No cart - 404", func(t *testing.T) {
		mockUsers := new(MockUserResolver)
		mockUsers.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()

		mockCartSvc := new(MockCartService)
		mockCartSvc.On("GetCartSummary", mock.Anything, user).Return(nil, apperrors.ErrCartNotFound).Once()

		token, err := tokenService.Generate(user.ID.String())
		require.NoError(t, err)

		req, _ := http.NewRequest(http.MethodGet, "/cart/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		newRouter(mockCartSvc, mockUsers).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Cart not found")
	})
}
