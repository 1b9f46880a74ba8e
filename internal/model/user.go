package model

import "time"

// User represents a pharmacy user in the database. Password holds the
// stored hash and is never serialized.
type User struct {
	ID          int64     `json:"id"`
	PhoneNumber string    `json:"phoneNumber"`
	Password    string    `json:"-"`
	Name        string    `json:"name"`
	Gender      int       `json:"gender"`
	Age         int       `json:"age"`
	CreateTime  time.Time `json:"createTime"`
	UpdateTime  time.Time `json:"updateTime"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// AuthResult represents a successful authentication: the signed token,
// its lifetime in seconds and the authenticated user.
type AuthResult struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
	User      User   `json:"user"`
	Success   bool   `json:"success"`
}
