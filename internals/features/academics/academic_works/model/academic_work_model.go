// file: internals/features/academics/academic_works/model/academic_work_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkType string

const (
	WorkTypeCoursework WorkType = "COURSEWORK"
	WorkTypeDiploma    WorkType = "DIPLOMA"
)

func (t WorkType) Valid() bool {
	return t == WorkTypeCoursework || t == WorkTypeDiploma
}

// AcademicWorkModel is an assignment: one teacher supervising one study
// group through one work template. Creating it fans out a project per
// student in the group.
type AcademicWorkModel struct {
	AcademicWorkID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_work_id" json:"academic_work_id"`
	AcademicWorkTitle string    `gorm:"size:200;not null;column:academic_work_title" json:"academic_work_title"`
	AcademicWorkType  WorkType  `gorm:"type:varchar(20);not null;column:academic_work_type" json:"academic_work_type"`

	AcademicWorkTemplateID uuid.UUID `gorm:"type:uuid;not null;index;column:academic_work_template_id" json:"academic_work_template_id"`
	AcademicWorkGroupID    uuid.UUID `gorm:"type:uuid;not null;index;column:academic_work_group_id" json:"academic_work_group_id"`
	AcademicWorkTeacherID  uuid.UUID `gorm:"type:uuid;not null;index;column:academic_work_teacher_id" json:"academic_work_teacher_id"`

	AcademicWorkDeadline *time.Time `gorm:"type:timestamptz;column:academic_work_deadline" json:"academic_work_deadline,omitempty"`

	AcademicWorkCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:academic_work_created_at" json:"academic_work_created_at"`
	AcademicWorkUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:academic_work_updated_at" json:"academic_work_updated_at"`
}

func (AcademicWorkModel) TableName() string { return "academic_works" }

func (m *AcademicWorkModel) BeforeSave(tx *gorm.DB) error {
	m.AcademicWorkTitle = strings.TrimSpace(m.AcademicWorkTitle)
	m.AcademicWorkType = WorkType(strings.ToUpper(strings.TrimSpace(string(m.AcademicWorkType))))
	return nil
}
