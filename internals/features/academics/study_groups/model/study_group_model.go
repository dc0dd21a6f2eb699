// file: internals/features/academics/study_groups/model/study_group_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudyGroupModel struct {
	StudyGroupID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:study_group_id" json:"study_group_id"`
	StudyGroupName string    `gorm:"size:100;not null;uniqueIndex;column:study_group_name" json:"study_group_name"`
	// Intake year, e.g. 2024
	StudyGroupYear int `gorm:"not null;column:study_group_year" json:"study_group_year"`

	StudyGroupCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:study_group_created_at" json:"study_group_created_at"`
	StudyGroupUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:study_group_updated_at" json:"study_group_updated_at"`
	StudyGroupDeletedAt gorm.DeletedAt `gorm:"column:study_group_deleted_at;index" json:"study_group_deleted_at,omitempty"`
}

func (StudyGroupModel) TableName() string { return "study_groups" }

func (m *StudyGroupModel) BeforeSave(tx *gorm.DB) error {
	m.StudyGroupName = strings.TrimSpace(m.StudyGroupName)
	return nil
}

// StudyGroupMemberModel is the roster join row: one student in one group.
type StudyGroupMemberModel struct {
	StudyGroupMemberID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:study_group_member_id" json:"study_group_member_id"`
	StudyGroupMemberGroupID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_group_student;column:study_group_member_group_id" json:"study_group_member_group_id"`
	StudyGroupMemberStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_group_student;column:study_group_member_student_id" json:"study_group_member_student_id"`

	StudyGroupMemberCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:study_group_member_created_at" json:"study_group_member_created_at"`
}

func (StudyGroupMemberModel) TableName() string { return "study_group_members" }
