package model

import "time"

// UserEntity represents the user table entity
type UserEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email,omitempty"`
	Phone        string     `db:"phone" json:"phone"`
	PasswordHash string     `db:"password_hash" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
	Phone string
}

// UserProfileEntity represents the user_profile table entity
type UserProfileEntity struct {
	UserID     uint64     `db:"user_id" json:"user_id"`
	Address    string     `db:"address" json:"address"`
	City       string     `db:"city" json:"city"`
	PostalCode string     `db:"postal_code" json:"postal_code"`
	UpdatedAt  *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// Session is the authenticated identity resolved from a bearer token
type Session struct {
	UserID  uint64
	TokenID string
}

// Caller carries the verified identity of the user performing an operation
type Caller struct {
	UserID uint64
	Roles  []string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,phone"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest for user login (accepts email or phone)
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"` // email or phone
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Token string `json:"token"`
}

type RegisterResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OTPRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
}

type OTPRequestResponse struct {
	ExpiresIn int64 `json:"expires_in"`
}

type OTPVerifyRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
	Code  string `json:"code" validate:"required,numeric"`
	Name  string `json:"name" validate:"omitempty,max=100"`
}

type UpdateProfileRequest struct {
	Address    string `json:"address" validate:"max=255"`
	City       string `json:"city" validate:"max=100"`
	PostalCode string `json:"postal_code" validate:"max=16"`
}

type ProfileResponse struct {
	ID         uint64   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone"`
	Roles      []string `json:"roles"`
	Address    string   `json:"address"`
	City       string   `json:"city"`
	PostalCode string   `json:"postal_code"`
}

type AssignRoleRequest struct {
	Role string `json:"role" validate:"required"`
}
