// file: internals/features/projects/project/dto/project_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	projectmodel "stepwise_backend/internals/features/projects/project/model"
)

/* ===================== REQUESTS ===================== */

type ProjectUpdateDTO struct {
	ProjectTitle       *string `json:"project_title,omitempty" validate:"omitempty,min=2,max=200"`
	ProjectDescription *string `json:"project_description,omitempty" validate:"omitempty,max=5000"`
}

func (d *ProjectUpdateDTO) Normalize() {
	if d.ProjectTitle != nil {
		v := strings.TrimSpace(*d.ProjectTitle)
		d.ProjectTitle = &v
	}
	if d.ProjectDescription != nil {
		v := strings.TrimSpace(*d.ProjectDescription)
		d.ProjectDescription = &v
	}
}

/* ===================== RESPONSES ===================== */

type ProjectResponseDTO struct {
	ProjectID             uuid.UUID  `json:"project_id"`
	ProjectAcademicWorkID uuid.UUID  `json:"project_academic_work_id"`
	ProjectStudentID      uuid.UUID  `json:"project_student_id"`
	ProjectTitle          *string    `json:"project_title,omitempty"`
	ProjectDescription    *string    `json:"project_description,omitempty"`
	IsApprovedForDefense  bool       `json:"project_is_approved_for_defense"`
	ApprovedForDefenseAt  *time.Time `json:"project_approved_for_defense_at,omitempty"`
	ProjectCreatedAt      time.Time  `json:"project_created_at"`
}

func FromModel(m *projectmodel.ProjectModel) *ProjectResponseDTO {
	return &ProjectResponseDTO{
		ProjectID:             m.ProjectID,
		ProjectAcademicWorkID: m.ProjectAcademicWorkID,
		ProjectStudentID:      m.ProjectStudentID,
		ProjectTitle:          m.ProjectTitle,
		ProjectDescription:    m.ProjectDescription,
		IsApprovedForDefense:  m.ProjectIsApprovedForDefense,
		ApprovedForDefenseAt:  m.ProjectApprovedForDefenseAt,
		ProjectCreatedAt:      m.ProjectCreatedAt,
	}
}

func FromModels(ms []projectmodel.ProjectModel) []ProjectResponseDTO {
	out := make([]ProjectResponseDTO, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}
