package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/eternalrights/ssmp-go/internal/crypto"
	"github.com/eternalrights/ssmp-go/internal/model"
	"github.com/eternalrights/ssmp-go/internal/repository"
)

// fakeUserStore is an in-memory UserStore for service tests.
type fakeUserStore struct {
	usersByPhone map[string]*model.User
	namesByID    map[int64]string
}

func (f *fakeUserStore) GetByPhoneNumber(_ context.Context, phone string) (*model.User, error) {
	u, ok := f.usersByPhone[phone]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetNameByID(_ context.Context, id int64) (string, error) {
	name, ok := f.namesByID[id]
	if !ok {
		return "", repository.ErrUserNotFound
	}
	return name, nil
}

func newTestAuthService(t *testing.T, password string) (*AuthService, *model.User) {
	t.Helper()

	hash, err := crypto.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	user := &model.User{
		ID:          3,
		PhoneNumber: "13800000001",
		Password:    hash,
		Name:        "Alice",
	}

	store := &fakeUserStore{
		usersByPhone: map[string]*model.User{user.PhoneNumber: user},
		namesByID:    map[int64]string{user.ID: user.Name},
	}

	return NewAuthService(store, "test-secret", time.Hour), user
}

func TestLoginSuccess(t *testing.T) {
	svc, user := newTestAuthService(t, "password123")

	res, err := svc.Login(context.Background(), model.LoginRequest{
		PhoneNumber: user.PhoneNumber,
		Password:    "password123",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	if !res.Success {
		t.Error("Login() Success = false, want true")
	}
	if res.Token == "" {
		t.Error("Login() returned empty token")
	}
	if res.ExpiresIn != 3600 {
		t.Errorf("Login() ExpiresIn = %d, want 3600", res.ExpiresIn)
	}
	if res.User.Password != "" {
		t.Error("Login() leaked password hash in result")
	}

	claims, err := crypto.ValidateToken(res.Token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("token UserID = %d, want %d", claims.UserID, user.ID)
	}
}

func TestLoginLegacyMD5User(t *testing.T) {
	sum := md5.Sum([]byte("123456"))
	user := &model.User{
		ID:          9,
		PhoneNumber: "13800000009",
		Password:    hex.EncodeToString(sum[:]),
	}
	store := &fakeUserStore{usersByPhone: map[string]*model.User{user.PhoneNumber: user}}
	svc := NewAuthService(store, "test-secret", time.Hour)

	res, err := svc.Login(context.Background(), model.LoginRequest{
		PhoneNumber: user.PhoneNumber,
		Password:    "123456",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error for legacy hash: %v", err)
	}
	if !res.Success {
		t.Error("Login() Success = false, want true")
	}
}

func TestLoginUnknownPhone(t *testing.T) {
	svc, _ := newTestAuthService(t, "password123")

	_, err := svc.Login(context.Background(), model.LoginRequest{
		PhoneNumber: "13899999999",
		Password:    "password123",
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Login() error = %v, want ErrUserNotFound", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, user := newTestAuthService(t, "password123")

	_, err := svc.Login(context.Background(), model.LoginRequest{
		PhoneNumber: user.PhoneNumber,
		Password:    "not-the-password",
	})
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("Login() error = %v, want ErrWrongPassword", err)
	}
}

func TestLoginEmptyPhone(t *testing.T) {
	svc, _ := newTestAuthService(t, "password123")

	_, err := svc.Login(context.Background(), model.LoginRequest{
		PhoneNumber: "",
		Password:    "password123",
	})
	if !errors.Is(err, ErrPhoneRequired) {
		t.Errorf("Login() error = %v, want ErrPhoneRequired", err)
	}
}

func TestLoginEmptyPassword(t *testing.T) {
	svc, user := newTestAuthService(t, "password123")

	_, err := svc.Login(context.Background(), model.LoginRequest{
		PhoneNumber: user.PhoneNumber,
		Password:    "",
	})
	if !errors.Is(err, ErrPasswordRequired) {
		t.Errorf("Login() error = %v, want ErrPasswordRequired", err)
	}
}
