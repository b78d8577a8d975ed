// internal/model/auth.go
package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenPair is the access/refresh pair returned by registro, login and
// refresh.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type RegisterResponse struct {
	Message string      `json:"mensaje"`
	User    *User       `json:"usuario"`
	Tokens  TokenPair   `json:"tokens"`
	Profile interface{} `json:"perfil,omitempty"`
}

type LoginResponse struct {
	Message string      `json:"mensaje"`
	User    *User       `json:"usuario"`
	Profile interface{} `json:"perfil"`
	Tokens  TokenPair   `json:"tokens"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

// AccessClaims is the JWT payload of an access token. Subject holds the
// user id; Role drives the role guards.
type AccessClaims struct {
	Role UserRole `json:"rol"`
	jwt.RegisteredClaims
}

// RefreshToken is a persisted, revocable refresh credential. Logout deletes
// the row; refresh rotates it.
type RefreshToken struct {
	Token     string    `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
