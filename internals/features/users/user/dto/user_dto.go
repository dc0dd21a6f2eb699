// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"stepwise_backend/internals/features/users/user/model"
)

// =======================
// Request DTO
// =======================

type UserCreateDTO struct {
	UserName     string  `json:"user_name"      validate:"required,min=3,max=50"`
	UserEmail    string  `json:"user_email"     validate:"required,email"`
	UserPassword string  `json:"user_password"  validate:"required,min=8"`
	UserFullName *string `json:"user_full_name" validate:"omitempty,max=255"`
	UserRole     string  `json:"user_role"      validate:"required,oneof=admin teacher student"`
}

type UserUpdateDTO struct {
	UserEmail    *string `json:"user_email,omitempty"     validate:"omitempty,email"`
	UserFullName *string `json:"user_full_name,omitempty" validate:"omitempty,max=255"`
	UserIsActive *bool   `json:"user_is_active,omitempty"`
}

// =======================
// Response DTO
// =======================

type UserResponseDTO struct {
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	UserEmail    string    `json:"user_email"`
	UserFullName *string   `json:"user_full_name,omitempty"`
	UserRole     string    `json:"user_role"`
	UserIsActive bool      `json:"user_is_active"`
	UserCreated  time.Time `json:"user_created_at"`
}

// =======================
// Helpers
// =======================

func (p *UserCreateDTO) Normalize() {
	p.UserName = strings.TrimSpace(p.UserName)
	p.UserEmail = strings.ToLower(strings.TrimSpace(p.UserEmail))
	p.UserRole = strings.ToLower(strings.TrimSpace(p.UserRole))
}

func (p *UserCreateDTO) ToModel(hashedPassword string) model.UserModel {
	return model.UserModel{
		UserName:     p.UserName,
		UserEmail:    p.UserEmail,
		UserPassword: hashedPassword,
		UserFullName: p.UserFullName,
		UserRole:     p.UserRole,
		UserIsActive: true,
	}
}

func (u *UserUpdateDTO) ApplyUpdates(ent *model.UserModel) {
	if u.UserEmail != nil {
		ent.UserEmail = strings.ToLower(strings.TrimSpace(*u.UserEmail))
	}
	if u.UserFullName != nil {
		ent.UserFullName = u.UserFullName
	}
	if u.UserIsActive != nil {
		ent.UserIsActive = *u.UserIsActive
	}
}

func FromModel(ent model.UserModel) UserResponseDTO {
	return UserResponseDTO{
		UserID:       ent.UserID,
		UserName:     ent.UserName,
		UserEmail:    ent.UserEmail,
		UserFullName: ent.UserFullName,
		UserRole:     ent.UserRole,
		UserIsActive: ent.UserIsActive,
		UserCreated:  ent.UserCreatedAt,
	}
}

func FromModels(list []model.UserModel) []UserResponseDTO {
	out := make([]UserResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
