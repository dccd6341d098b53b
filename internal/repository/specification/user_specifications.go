package specification

import (
	"gorm.io/gorm"

	"github.com/google/uuid"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ActiveUsers struct{}

func (s ActiveUsers) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", "active")
}

type ByOtpCode struct {
	Code string
}

func (s ByOtpCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("otp_code = ?", s.Code)
}

type Unused struct{}

func (s Unused) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("used = ?", false)
}
