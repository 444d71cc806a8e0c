package main

import (
	"time"

	"github.com/code-on-sunday/django-ecommerce-cart/config"
	"github.com/code-on-sunday/django-ecommerce-cart/controllers"
	"github.com/code-on-sunday/django-ecommerce-cart/database"
	"github.com/code-on-sunday/django-ecommerce-cart/logger"
	"github.com/code-on-sunday/django-ecommerce-cart/middleware"
	"github.com/code-on-sunday/django-ecommerce-cart/models"
	"github.com/code-on-sunday/django-ecommerce-cart/repository"
	"github.com/code-on-sunday/django-ecommerce-cart/routes"
	"github.com/code-on-sunday/django-ecommerce-cart/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
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

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(userRepo, tokenService)
	cartService := services.NewCartService(cartRepo)

	routes.Register(r,
		controllers.NewAuthController(authService),
		controllers.NewCartController(cartService),
		middleware.RequireAuth(tokenService, userRepo),
	)

	logger.Log.Info("Server started", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
