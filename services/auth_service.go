package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/code-on-sunday/django-ecommerce-cart/apperrors"
	"github.com/code-on-sunday/django-ecommerce-cart/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ITokenService issues tokens for authenticated users.
type ITokenService interface {
	Generate(userID string) (string, error)
}

type AuthService struct {
	users  repository.UserRepository
	tokens ITokenService
}

func NewAuthService(users repository.UserRepository, tokens ITokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies the credentials and returns a signed bearer token. Unknown
// emails and wrong passwords produce the same error, so the response cannot
// be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID.String())
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
