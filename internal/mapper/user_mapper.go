package mapper

import (
	"samvidhan-ai-be/internal/entity"
	"samvidhan-ai-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:              u.Id,
		Email:           u.Email,
		PasswordHash:    u.PasswordHash,
		FullName:        u.FullName,
		Status:          entity.UserStatus(u.Status),
		EmailVerified:   u.EmailVerified,
		EmailVerifiedAt: u.EmailVerifiedAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:              u.Id,
		Email:           u.Email,
		PasswordHash:    u.PasswordHash,
		FullName:        u.FullName,
		Status:          string(u.Status),
		EmailVerified:   u.EmailVerified,
		EmailVerifiedAt: u.EmailVerifiedAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) PendingUserToEntity(p *model.PendingUser) *entity.PendingUser {
	if p == nil {
		return nil
	}
	return &entity.PendingUser{
		Id:           p.Id,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		FullName:     p.FullName,
		OtpCode:      p.OtpCode,
		ExpiresAt:    p.ExpiresAt,
		CreatedAt:    p.CreatedAt,
	}
}

func (m *UserMapper) PendingUserToModel(p *entity.PendingUser) *model.PendingUser {
	if p == nil {
		return nil
	}
	return &model.PendingUser{
		Id:           p.Id,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		FullName:     p.FullName,
		OtpCode:      p.OtpCode,
		ExpiresAt:    p.ExpiresAt,
		CreatedAt:    p.CreatedAt,
	}
}

func (m *UserMapper) PasswordResetOtpToEntity(t *model.PasswordResetOtp) *entity.PasswordResetOtp {
	if t == nil {
		return nil
	}
	return &entity.PasswordResetOtp{
		Id:        t.Id,
		UserId:    t.UserId,
		OtpCode:   t.OtpCode,
		ExpiresAt: t.ExpiresAt,
		Used:      t.Used,
		CreatedAt: t.CreatedAt,
	}
}

func (m *UserMapper) PasswordResetOtpToModel(t *entity.PasswordResetOtp) *model.PasswordResetOtp {
	if t == nil {
		return nil
	}
	return &model.PasswordResetOtp{
		Id:        t.Id,
		UserId:    t.UserId,
		OtpCode:   t.OtpCode,
		ExpiresAt: t.ExpiresAt,
		Used:      t.Used,
		CreatedAt: t.CreatedAt,
	}
}
