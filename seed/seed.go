package seed

import (
	"context"
	"fmt"

	"github.com/code-on-sunday/django-ecommerce-cart/models"
	"github.com/code-on-sunday/django-ecommerce-cart/repository"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type sampleUser struct {
	firstName string
	lastName  string
	email     string
	password  string
}

var sampleUsers = []sampleUser{
	{"John", "Doe", "john.doe@example.com", "password1"},
	{"Jane", "Smith", "jane.smith@example.com", "password2"},
	{"Bob", "Johnson", "bob.johnson@example.com", "password3"},
}

type sampleProduct struct {
	name        string
	description string
	price       string
}

var sampleProducts = []sampleProduct{
	{"Product 1", "This is the first product.", "9.99"},
	{"Product 2", "This is the second product.", "19.99"},
	{"Product 3", "This is the third product.", "29.99"},
}

// Users inserts the fixed set of sample accounts. Passwords are hashed
// with bcrypt before they ever touch the store.
func Users(ctx context.Context, users repository.UserRepository) error {
	for _, su := range sampleUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", su.email, err)
		}
		user := &models.User{
			ID:        uuid.New(),
			Email:     su.email,
			Password:  string(hash),
			FirstName: su.firstName,
			LastName:  su.lastName,
		}
		if err := users.Create(ctx, user); err != nil {
			return fmt.Errorf("create user %s: %w", su.email, err)
		}
	}
	return nil
}

// Products inserts the fixed set of sample products.
func Products(ctx context.Context, products repository.ProductRepository) error {
	for _, sp := range sampleProducts {
		product := &models.Product{
			ID:          uuid.New(),
			Name:        sp.name,
			Description: sp.description,
			Price:       decimal.RequireFromString(sp.price),
			Currency:    "USD",
		}
		if err := products.Create(ctx, product); err != nil {
			return fmt.Errorf("create product %s: %w", sp.name, err)
		}
	}
	return nil
}

// Carts creates one cart per existing user and fills it with 1-5 randomly
// chosen items, each with quantity 1-5. Intentionally non-deterministic.
func Carts(ctx context.Context, users repository.UserRepository, products repository.ProductRepository, carts repository.CartRepository) error {
	allUsers, err := users.List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	allProducts, err := products.List(ctx)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	if len(allProducts) == 0 {
		return fmt.Errorf("no products to seed carts with, run product seeding first")
	}

	for _, user := range allUsers {
		cart := &models.Cart{ID: uuid.New(), UserID: user.ID}
		if err := carts.Create(ctx, cart); err != nil {
			return fmt.Errorf("create cart for %s: %w", user.Email, err)
		}

		for i := 0; i < gofakeit.Number(1, 5); i++ {
			product := allProducts[gofakeit.Number(0, len(allProducts)-1)]
			item := &models.CartItem{
				CartID:    cart.ID,
				ProductID: product.ID,
				Quantity:  gofakeit.Number(1, 5),
			}
			if err := carts.AddItem(ctx, item); err != nil {
				return fmt.Errorf("add item to cart for %s: %w", user.Email, err)
			}
		}
	}
	return nil
}
