package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tommy251/Atlas2.0/app/models"
	"github.com/tommy251/Atlas2.0/app/repositories"
	"github.com/tommy251/Atlas2.0/pkg/auth"
)

// ErrInvalidCredentials is returned for any failed login. It deliberately
// does not say whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService owns signup and login against the account directory.
type AuthService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Signup creates an account with a bcrypt-hashed password.
// Returns repositories.ErrUsernameTaken when the username exists; the
// stored account is left untouched in that case.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("signup: hash: %w", err)
	}

	err = s.users.Create(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if errors.Is(err, repositories.ErrUsernameTaken) {
		return err
	}
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	return nil
}

// Login verifies the credentials and issues a 24-hour bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.Username, auth.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("login: token: %w", err)
	}
	return token, nil
}
