package implementation

import (
	"context"
	"errors"

	"samvidhan-ai-be/internal/entity"
	"samvidhan-ai-be/internal/mapper"
	"samvidhan-ai-be/internal/model"
	"samvidhan-ai-be/internal/repository/contract"
	"samvidhan-ai-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{}).Error
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var models []*model.User
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.User{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).Update("password_hash", hash).Error
}

// Pending users

func (r *UserRepositoryImpl) CreatePendingUser(ctx context.Context, pending *entity.PendingUser) error {
	m := r.mapper.PendingUserToModel(pending)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*pending = *r.mapper.PendingUserToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) FindPendingUser(ctx context.Context, specs ...specification.Specification) (*entity.PendingUser, error) {
	var m model.PendingUser
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PendingUserToEntity(&m), nil
}

func (r *UserRepositoryImpl) UpdatePendingUser(ctx context.Context, pending *entity.PendingUser) error {
	m := r.mapper.PendingUserToModel(pending)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *UserRepositoryImpl) DeletePendingUser(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PendingUser{}, id).Error
}

// Password reset OTPs

func (r *UserRepositoryImpl) CreatePasswordResetOtp(ctx context.Context, otp *entity.PasswordResetOtp) error {
	m := r.mapper.PasswordResetOtpToModel(otp)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*otp = *r.mapper.PasswordResetOtpToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) FindPasswordResetOtp(ctx context.Context, specs ...specification.Specification) (*entity.PasswordResetOtp, error) {
	var m model.PasswordResetOtp
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PasswordResetOtpToEntity(&m), nil
}

func (r *UserRepositoryImpl) MarkOtpUsed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.PasswordResetOtp{}).Where("id = ?", id).Update("used", true).Error
}
