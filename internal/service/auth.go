package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eternalrights/ssmp-go/internal/crypto"
	"github.com/eternalrights/ssmp-go/internal/model"
	"github.com/eternalrights/ssmp-go/internal/repository"
)

var (
	ErrPhoneRequired    = errors.New("phone number is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrUserNotFound     = errors.New("user does not exist")
	ErrWrongPassword    = errors.New("wrong password")
)

// UserStore is the credential store consulted during login.
type UserStore interface {
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*model.User, error)
	GetNameByID(ctx context.Context, id int64) (string, error)
}

// AuthService handles the login flow: credential lookup, password
// verification and token issuance.
type AuthService struct {
	users     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Login authenticates a user by phone number and password and returns an
// AuthResult carrying a signed token. There is no attempt counting or
// lockout; brute-force mitigation lives in the rate-limit middleware.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResult, error) {
	if req.PhoneNumber == "" {
		return model.AuthResult{}, ErrPhoneRequired
	}
	if req.Password == "" {
		return model.AuthResult{}, ErrPasswordRequired
	}

	user, err := s.users.GetByPhoneNumber(ctx, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResult{}, ErrUserNotFound
		}
		return model.AuthResult{}, fmt.Errorf("looking up user: %w", err)
	}

	match, err := crypto.VerifyPassword(req.Password, user.Password)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("verifying password: %w", err)
	}
	if !match {
		return model.AuthResult{}, ErrWrongPassword
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("signing token: %w", err)
	}

	sanitized := *user
	sanitized.Password = ""

	return model.AuthResult{
		Token:     token,
		ExpiresIn: int(s.jwtExpiry.Seconds()),
		User:      sanitized,
		Success:   true,
	}, nil
}
