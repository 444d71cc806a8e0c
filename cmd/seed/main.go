// Seeds the database with sample users, products and carts.
//
// Usage: seed [users|products|carts|all]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/code-on-sunday/django-ecommerce-cart/config"
	"github.com/code-on-sunday/django-ecommerce-cart/database"
	"github.com/code-on-sunday/django-ecommerce-cart/logger"
	"github.com/code-on-sunday/django-ecommerce-cart/models"
	"github.com/code-on-sunday/django-ecommerce-cart/repository"
	"github.com/code-on-sunday/django-ecommerce-cart/seed"

	"go.uber.org/zap"
)

func main() {
	group := "all"
	if len(os.Args) > 1 {
		group = os.Args[1]
	}
	switch group {
	case "users", "products", "carts", "all":
	default:
		fmt.Fprintf(os.Stderr, "unknown group %q, expected users|products|carts|all\n", group)
		os.Exit(2)
	}

	cfg := config.Load()
	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("Could not connect to PostgreSQL", zap.Error(err))
	}
	if err := models.Migrate(db); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)

	if group == "users" || group == "all" {
		if err := seed.Users(ctx, userRepo); err != nil {
			logger.Log.Fatal("Seeding users failed", zap.Error(err))
		}
		logger.Log.Info("Successfully seeded users")
	}
	if group == "products" || group == "all" {
		if err := seed.Products(ctx, productRepo); err != nil {
			logger.Log.Fatal("Seeding products failed", zap.Error(err))
		}
		logger.Log.Info("Successfully seeded products")
	}
	if group == "carts" || group == "all" {
		if err := seed.Carts(ctx, userRepo, productRepo, cartRepo); err != nil {
			logger.Log.Fatal("Seeding carts failed", zap.Error(err))
		}
		logger.Log.Info("Successfully seeded carts and cart items")
	}
}
