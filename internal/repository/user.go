package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/eternalrights/ssmp-go/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByPhoneNumber retrieves a user by their phone number.
func (r *UserRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*model.User, error) {
	query := `SELECT id, phone_number, password, name, gender, age, create_time, update_time
		FROM user WHERE phone_number = ?`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, phoneNumber).Scan(
		&user.ID, &user.PhoneNumber, &user.Password, &user.Name,
		&user.Gender, &user.Age, &user.CreateTime, &user.UpdateTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// GetNameByID retrieves a user's display name by their ID.
func (r *UserRepository) GetNameByID(ctx context.Context, id int64) (string, error) {
	query := `SELECT name FROM user WHERE id = ?`

	var name string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	return name, nil
}
