// file: internals/features/academics/academic_works/dto/academic_work_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	awmodel "stepwise_backend/internals/features/academics/academic_works/model"
)

/* ===================== REQUESTS ===================== */

type AcademicWorkCreateDTO struct {
	AcademicWorkTitle string     `json:"academic_work_title" validate:"required,min=2,max=200"`
	AcademicWorkType  string     `json:"academic_work_type" validate:"required,oneof=COURSEWORK DIPLOMA"`
	TemplateID        uuid.UUID  `json:"template_id" validate:"required"`
	GroupID           uuid.UUID  `json:"group_id" validate:"required"`
	TeacherID         uuid.UUID  `json:"teacher_id" validate:"required"`
	Deadline          *time.Time `json:"deadline,omitempty"`
}

func (d *AcademicWorkCreateDTO) Normalize() {
	d.AcademicWorkTitle = strings.TrimSpace(d.AcademicWorkTitle)
	d.AcademicWorkType = strings.ToUpper(strings.TrimSpace(d.AcademicWorkType))
}

func (d *AcademicWorkCreateDTO) ToModel() *awmodel.AcademicWorkModel {
	return &awmodel.AcademicWorkModel{
		AcademicWorkTitle:      d.AcademicWorkTitle,
		AcademicWorkType:       awmodel.WorkType(d.AcademicWorkType),
		AcademicWorkTemplateID: d.TemplateID,
		AcademicWorkGroupID:    d.GroupID,
		AcademicWorkTeacherID:  d.TeacherID,
		AcademicWorkDeadline:   d.Deadline,
	}
}

/* ===================== RESPONSES ===================== */

type AcademicWorkResponseDTO struct {
	AcademicWorkID        uuid.UUID  `json:"academic_work_id"`
	AcademicWorkTitle     string     `json:"academic_work_title"`
	AcademicWorkType      string     `json:"academic_work_type"`
	TemplateID            uuid.UUID  `json:"template_id"`
	GroupID               uuid.UUID  `json:"group_id"`
	TeacherID             uuid.UUID  `json:"teacher_id"`
	Deadline              *time.Time `json:"deadline,omitempty"`
	AcademicWorkCreatedAt time.Time  `json:"academic_work_created_at"`
	ProjectsCreated       int        `json:"projects_created,omitempty"`
}

func FromModel(m *awmodel.AcademicWorkModel) *AcademicWorkResponseDTO {
	return &AcademicWorkResponseDTO{
		AcademicWorkID:        m.AcademicWorkID,
		AcademicWorkTitle:     m.AcademicWorkTitle,
		AcademicWorkType:      string(m.AcademicWorkType),
		TemplateID:            m.AcademicWorkTemplateID,
		GroupID:               m.AcademicWorkGroupID,
		TeacherID:             m.AcademicWorkTeacherID,
		Deadline:              m.AcademicWorkDeadline,
		AcademicWorkCreatedAt: m.AcademicWorkCreatedAt,
	}
}

func FromModels(ms []awmodel.AcademicWorkModel) []AcademicWorkResponseDTO {
	out := make([]AcademicWorkResponseDTO, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}
