package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User model. Password always holds a bcrypt hash, never plaintext.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email     string    `gorm:"unique;not null"`
	Password  string    `gorm:"not null"`
	FirstName string    `gorm:"size:100;not null"`
	LastName  string    `gorm:"size:100;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// FullName returns the display name used in cart summaries.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Product model. Price is stored as numeric, not a float.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string          `gorm:"size:200;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null;default:'USD'"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}

// Cart model, exactly one per user.
type Cart struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	User      User       `gorm:"constraint:OnDelete:CASCADE"`
	Items     []CartItem `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

// CartItem model. The serial primary key preserves insertion order.
type CartItem struct {
	ID        uint      `gorm:"primaryKey"`
	CartID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Product   Product   `gorm:"constraint:OnDelete:CASCADE"`
	Quantity  int       `gorm:"not null;check:quantity >= 1"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Migrate function for auto migration
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Product{}, &Cart{}, &CartItem{})
}
