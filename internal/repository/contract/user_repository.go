package contract

import (
	"context"

	"samvidhan-ai-be/internal/entity"
	"samvidhan-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error

	// Pending registrations (promoted to users on OTP verification)
	CreatePendingUser(ctx context.Context, pending *entity.PendingUser) error
	FindPendingUser(ctx context.Context, specs ...specification.Specification) (*entity.PendingUser, error)
	UpdatePendingUser(ctx context.Context, pending *entity.PendingUser) error
	DeletePendingUser(ctx context.Context, id uuid.UUID) error

	// Password reset OTPs
	CreatePasswordResetOtp(ctx context.Context, otp *entity.PasswordResetOtp) error
	FindPasswordResetOtp(ctx context.Context, specs ...specification.Specification) (*entity.PasswordResetOtp, error)
	MarkOtpUsed(ctx context.Context, id uuid.UUID) error
}
