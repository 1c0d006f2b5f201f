package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Password  string    `json:"-"`                        // Store hashed password, ignore for JSON serialization
	ImagePath string    `json:"image_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserSummary is the reduced user shape returned by listings. The account
// directory exposes id/name/email/created_at; follow listings expose
// id/name/email/image_path. Columns that were not selected stay zero and
// are omitted from the JSON.
type UserSummary struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ImagePath string    `json:"image_path,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Profile is a user merged with the derived follow counts and the average
// grade across all reviews of the user's recipes. Average is -1 when the
// user owns no recipes.
type Profile struct {
	User
	Following int64   `json:"following"`
	Followers int64   `json:"followers"`
	Average   float64 `json:"average"`
}

type CreateUserRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	ImagePath string `json:"image_path,omitempty"`
}

type UpdateUserRequest struct {
	Name      string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Password  string `json:"password,omitempty"`
	ImagePath string `json:"image_path,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
