// file: internals/features/projects/project/model/project_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectModel is one student's run through one academic work. Defense
// approval is a one-way latch set by the supervising teacher once every
// required chapter is approved. Projects are never deleted.
type ProjectModel struct {
	ProjectID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:project_id" json:"project_id"`
	ProjectAcademicWorkID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_work_student;column:project_academic_work_id" json:"project_academic_work_id"`
	ProjectStudentID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_work_student;index;column:project_student_id" json:"project_student_id"`

	ProjectTitle       *string `gorm:"size:200;column:project_title" json:"project_title,omitempty"`
	ProjectDescription *string `gorm:"type:text;column:project_description" json:"project_description,omitempty"`

	ProjectIsApprovedForDefense bool       `gorm:"not null;default:false;column:project_is_approved_for_defense" json:"project_is_approved_for_defense"`
	ProjectApprovedForDefenseAt *time.Time `gorm:"type:timestamptz;column:project_approved_for_defense_at" json:"project_approved_for_defense_at,omitempty"`

	ProjectCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:project_created_at" json:"project_created_at"`
	ProjectUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:project_updated_at" json:"project_updated_at"`
}

func (ProjectModel) TableName() string { return "projects" }

func (m *ProjectModel) BeforeSave(tx *gorm.DB) error {
	if m.ProjectTitle != nil {
		v := strings.TrimSpace(*m.ProjectTitle)
		m.ProjectTitle = &v
	}
	return nil
}
