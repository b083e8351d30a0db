package models

import (
	"time"
)

type User struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	Firstname  string    `json:"firstname" gorm:"not null"`
	Lastname   string    `json:"lastname" gorm:"not null"`
	Email      string    `json:"email" gorm:"unique;not null"`
	Password   string    `json:"-" gorm:"not null"`
	IsVerified bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
}

// EmailVerification holds the one outstanding signup code per email.
// A new code replaces the previous row; consuming a code deletes it.
type EmailVerification struct {
	Email     string    `json:"email" gorm:"primaryKey;size:100"`
	Code      string    `json:"code" gorm:"size:6;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (EmailVerification) TableName() string {
	return "email_verification"
}

type SendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SignupRequest struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Code      string `json:"code" validate:"required,len=6"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
