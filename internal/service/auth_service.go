package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"samvidhan-ai-be/internal/dto"
	"samvidhan-ai-be/internal/entity"
	"samvidhan-ai-be/internal/pkg/mailer"
	"samvidhan-ai-be/internal/repository/specification"
	"samvidhan-ai-be/internal/repository/unitofwork"

	"samvidhan-ai-be/pkg/events"
	pktNats "samvidhan-ai-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Distinct rejection outcomes so the controller can map them to precise
// HTTP responses.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified. please check your inbox for the otp code")
	ErrOtpExpired         = errors.New("otp code expired")
	ErrOtpInvalid         = errors.New("invalid otp code")
	ErrAccountBlocked     = errors.New("user account is blocked")
)

// Registration codes are short lived; a re-register refreshes them.
// Reset codes get a little longer since the user initiates them deliberately.
const (
	registrationOtpExpiry = 3 * time.Minute
	resetOtpExpiry        = 5 * time.Minute
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyOtp(ctx context.Context, req *dto.VerifyOtpRequest) (*dto.LoginResponse, error)
	ResendOtp(ctx context.Context, req *dto.ResendOtpRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	otpCode, err := generateOTP()
	if err != nil {
		return nil, err
	}

	// Re-registering before verification just refreshes the pending
	// record and OTP.
	pending, _ := uow.UserRepository().FindPendingUser(ctx, specification.ByEmail{Email: req.Email})
	if pending != nil {
		pending.PasswordHash = string(hash)
		pending.FullName = req.FullName
		pending.OtpCode = otpCode
		pending.ExpiresAt = time.Now().Add(registrationOtpExpiry)
		if err := uow.UserRepository().UpdatePendingUser(ctx, pending); err != nil {
			return nil, err
		}
	} else {
		pending = &entity.PendingUser{
			Id:           uuid.New(),
			Email:        req.Email,
			PasswordHash: string(hash),
			FullName:     req.FullName,
			OtpCode:      otpCode,
			ExpiresAt:    time.Now().Add(registrationOtpExpiry),
			CreatedAt:    time.Now(),
		}
		if err := uow.UserRepository().CreatePendingUser(ctx, pending); err != nil {
			return nil, err
		}
	}

	go func() {
		if emailErr := s.emailService.SendOTP(pending.Email, otpCode); emailErr != nil {
			fmt.Printf("Error sending registration email: %v\n", emailErr)
		}
	}()

	return &dto.RegisterResponse{Email: pending.Email}, nil
}

func (s *authService) VerifyOtp(ctx context.Context, req *dto.VerifyOtpRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pending, err := uow.UserRepository().FindPendingUser(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, ErrOtpInvalid
	}
	if pending.OtpCode != req.Otp {
		return nil, ErrOtpInvalid
	}
	if time.Now().After(pending.ExpiresAt) {
		return nil, ErrOtpExpired
	}

	// Promote pending registration to a verified user atomically.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()
	hashStr := pending.PasswordHash
	user := &entity.User{
		Id:              uuid.New(),
		Email:           pending.Email,
		PasswordHash:    &hashStr,
		FullName:        pending.FullName,
		Status:          entity.UserStatusActive,
		EmailVerified:   true,
		EmailVerifiedAt: &now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().DeletePendingUser(ctx, pending.Id); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "USER_REGISTERED", map[string]interface{}{
		"user_id": user.Id,
		"email":   user.Email,
	})

	return s.issueToken(user)
}

func (s *authService) ResendOtp(ctx context.Context, req *dto.ResendOtpRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pending, err := uow.UserRepository().FindPendingUser(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return err
	}
	if pending == nil {
		return errors.New("no pending registration for this email")
	}

	otpCode, err := generateOTP()
	if err != nil {
		return err
	}
	pending.OtpCode = otpCode
	pending.ExpiresAt = time.Now().Add(registrationOtpExpiry)
	if err := uow.UserRepository().UpdatePendingUser(ctx, pending); err != nil {
		return err
	}

	go func() {
		if emailErr := s.emailService.SendOTP(pending.Email, otpCode); emailErr != nil {
			fmt.Printf("Error resending OTP email: %v\n", emailErr)
		}
	}()
	return nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if user == nil {
		// A pending registration distinguishes "verify first" from
		// plain bad credentials.
		pending, _ := uow.UserRepository().FindPendingUser(ctx, specification.ByEmail{Email: req.Email})
		if pending != nil {
			return nil, ErrEmailNotVerified
		}
		return nil, ErrInvalidCredentials
	}

	if user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status == entity.UserStatusPending || !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status == entity.UserStatusBlocked {
		return nil, ErrAccountBlocked
	}

	s.publishEvent(ctx, "USER_LOGIN", map[string]interface{}{
		"user_id": user.Id,
		"time":    time.Now().Format(time.RFC822),
	})

	return s.issueToken(user)
}

func (s *authService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		// Do not reveal whether the email exists.
		return nil
	}

	otpCode, err := generateOTP()
	if err != nil {
		return err
	}

	otp := &entity.PasswordResetOtp{
		Id:        uuid.New(),
		UserId:    user.Id,
		OtpCode:   otpCode,
		ExpiresAt: time.Now().Add(resetOtpExpiry),
		CreatedAt: time.Now(),
	}
	if err := uow.UserRepository().CreatePasswordResetOtp(ctx, otp); err != nil {
		return err
	}

	go func() {
		if emailErr := s.emailService.SendPasswordResetOTP(user.Email, otpCode); emailErr != nil {
			fmt.Printf("Error sending reset email: %v\n", emailErr)
		}
	}()
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		return ErrOtpInvalid
	}

	otp, err := uow.UserRepository().FindPasswordResetOtp(ctx,
		specification.UserOwnedBy{UserID: user.Id},
		specification.ByOtpCode{Code: req.Otp},
		specification.Unused{},
	)
	if err != nil {
		return err
	}
	if otp == nil {
		return ErrOtpInvalid
	}
	if time.Now().After(otp.ExpiresAt) {
		return ErrOtpExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().UpdatePassword(ctx, user.Id, string(hash)); err != nil {
		return err
	}
	if err := uow.UserRepository().MarkOtpUsed(ctx, otp.Id); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	return &dto.UserDTO{
		Id:       user.Id,
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}

func (s *authService) issueToken(user *entity.User) (*dto.LoginResponse, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signedToken,
		User: dto.UserDTO{
			Id:       user.Id,
			Email:    user.Email,
			FullName: user.FullName,
		},
	}, nil
}

func (s *authService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}
