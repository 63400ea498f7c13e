package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:150"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	Posts    []Post    `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// SignupForm is the registration form payload.
type SignupForm struct {
	Username    string `form:"username" validate:"required,min=2,max=150,alphanum"`
	Email       string `form:"email" validate:"required,email"`
	DisplayName string `form:"display_name" validate:"omitempty,max=150"`
	Password    string `form:"password" validate:"required,min=8"`
}

// LoginForm is the login form payload.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// SessionClaims are the custom claims carried in the session cookie,
// extending standard jwt.RegisteredClaims.
type SessionClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
