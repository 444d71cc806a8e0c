package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/code-on-sunday/django-ecommerce-cart/apperrors"
	"github.com/code-on-sunday/django-ecommerce-cart/models"
	"github.com/code-on-sunday/django-ecommerce-cart/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// CartSummary is the aggregated, display-ready view of a cart. Decimal
// fields serialize as quoted strings, which keeps 29.97 exactly 29.97.
type CartSummary struct {
	UserName   string            `json:"user_name"`
	TotalItems int               `json:"total_items"`
	TotalPrice decimal.Decimal   `json:"total_price"`
	Items      []CartSummaryItem `json:"items"`
}

type CartSummaryItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type CartService struct {
	carts repository.CartRepository
}

func NewCartService(carts repository.CartRepository) *CartService {
	return &CartService{carts: carts}
}

// GetCartSummary loads the user's cart and aggregates item quantities and
// prices. The caller is trusted to have authenticated the user already.
// Read-only: store state is never mutated here.
func (s *CartService) GetCartSummary(ctx context.Context, user *models.User) (*CartSummary, error) {
	cart, err := s.carts.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCartNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	summary := &CartSummary{
		UserName:   user.FullName(),
		TotalPrice: decimal.Zero,
		Items:      []CartSummaryItem{},
	}

	var unit currency.Unit
	for i, item := range cart.Items {
		u, err := currency.ParseISO(item.Product.Currency)
		if err != nil {
			return nil, fmt.Errorf("product %q: currency %q is not valid: %w",
				item.Product.Name, item.Product.Currency, err)
		}
		if i == 0 {
			unit = u
		} else if u != unit {
			return nil, fmt.Errorf("cart mixes currencies %s and %s", unit, u)
		}

		line := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		summary.TotalItems += item.Quantity
		summary.TotalPrice = summary.TotalPrice.Add(line)
		summary.Items = append(summary.Items, CartSummaryItem{
			Name:     item.Product.Name,
			Price:    item.Product.Price,
			Quantity: item.Quantity,
		})
	}

	return summary, nil
}
