package database

import (
	"github.com/code-on-sunday/django-ecommerce-cart/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a postgres connection from the loaded configuration.
func Connect(cfg config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
}
