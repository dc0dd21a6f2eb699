// file: internals/features/users/user/model/user_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName     string    `gorm:"size:50;uniqueIndex;not null;column:user_name" json:"user_name"`
	UserEmail    string    `gorm:"size:255;uniqueIndex;not null;column:user_email" json:"user_email"`
	UserPassword string    `gorm:"not null;column:user_password" json:"-"`
	UserFullName *string   `gorm:"size:255;column:user_full_name" json:"user_full_name,omitempty"`

	// admin | teacher | student
	UserRole string `gorm:"type:varchar(20);not null;column:user_role" json:"user_role"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeSave(tx *gorm.DB) error {
	m.UserName = strings.TrimSpace(m.UserName)
	m.UserEmail = strings.ToLower(strings.TrimSpace(m.UserEmail))
	if m.UserFullName != nil {
		f := strings.TrimSpace(*m.UserFullName)
		if f == "" {
			m.UserFullName = nil
		} else {
			m.UserFullName = &f
		}
	}
	return nil
}
