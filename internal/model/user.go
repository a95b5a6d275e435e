package model

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MinPasswordLength is the shortest accepted plain-text password.
	MinPasswordLength = 8
	// MaxPasswordLength is the bcrypt input limit in bytes.
	MaxPasswordLength = 72
	// MaxEmailLength matches the users.email column.
	MaxEmailLength = 100
)

// User is a registered back-office account.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// NewUser builds a user from an already hashed password.
func NewUser(email, passwordHash string) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
	}
}

// UpdatePassword replaces the stored hash.
func (u *User) UpdatePassword(passwordHash string) {
	u.PasswordHash = passwordHash
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse projects u for API output.
func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterRequest represents the request payload for user registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the field constraints of the request.
func (r *RegisterRequest) Validate() error {
	verr := &ValidationError{}
	checkEmail(verr, r.Email)

	switch {
	case strings.TrimSpace(r.Password) == "":
		verr.add("password", "password is required")
	case len(r.Password) < MinPasswordLength:
		verr.add("password", "password must be at least 8 characters")
	case len(r.Password) > MaxPasswordLength:
		verr.add("password", "password must be at most 72 bytes")
	}

	return verr.orNil()
}

// LoginRequest represents the request payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the field constraints of the request.
func (r *LoginRequest) Validate() error {
	verr := &ValidationError{}
	checkEmail(verr, r.Email)

	switch {
	case strings.TrimSpace(r.Password) == "":
		verr.add("password", "password is required")
	case len(r.Password) > MaxPasswordLength:
		verr.add("password", "password must be at most 72 bytes")
	}

	return verr.orNil()
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	Token string `json:"token"`
}

func checkEmail(verr *ValidationError, email string) {
	if strings.TrimSpace(email) == "" {
		verr.add("email", "email is required")
		return
	}
	if utf8.RuneCountInString(email) > MaxEmailLength {
		verr.add("email", "email must be at most 100 characters")
		return
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		verr.add("email", "email is not a valid address")
	}
}
