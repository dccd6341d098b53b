package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id              uuid.UUID
	Email           string
	PasswordHash    *string
	FullName        string
	Status          UserStatus
	EmailVerified   bool
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PendingUser holds a registration until its OTP is verified. Verifying
// promotes it to a User row and deletes the pending record.
type PendingUser struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	OtpCode      string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

type PasswordResetOtp struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	OtpCode   string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}
