// file: internals/features/academics/study_groups/dto/study_group_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	sgmodel "stepwise_backend/internals/features/academics/study_groups/model"
)

/* ===================== REQUESTS ===================== */

type StudyGroupCreateDTO struct {
	StudyGroupName string `json:"study_group_name" validate:"required,min=2,max=100"`
	StudyGroupYear int    `json:"study_group_year" validate:"required,min=2000,max=2100"`
}

func (d *StudyGroupCreateDTO) Normalize() {
	d.StudyGroupName = strings.TrimSpace(d.StudyGroupName)
}

func (d *StudyGroupCreateDTO) ToModel() *sgmodel.StudyGroupModel {
	return &sgmodel.StudyGroupModel{
		StudyGroupName: d.StudyGroupName,
		StudyGroupYear: d.StudyGroupYear,
	}
}

type StudyGroupUpdateDTO struct {
	StudyGroupName *string `json:"study_group_name,omitempty" validate:"omitempty,min=2,max=100"`
	StudyGroupYear *int    `json:"study_group_year,omitempty" validate:"omitempty,min=2000,max=2100"`
}

func (d *StudyGroupUpdateDTO) Normalize() {
	if d.StudyGroupName != nil {
		v := strings.TrimSpace(*d.StudyGroupName)
		d.StudyGroupName = &v
	}
}

func (d *StudyGroupUpdateDTO) ApplyUpdates(m *sgmodel.StudyGroupModel) {
	if d.StudyGroupName != nil {
		m.StudyGroupName = *d.StudyGroupName
	}
	if d.StudyGroupYear != nil {
		m.StudyGroupYear = *d.StudyGroupYear
	}
}

type StudyGroupAddMemberDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type StudyGroupResponseDTO struct {
	StudyGroupID        uuid.UUID `json:"study_group_id"`
	StudyGroupName      string    `json:"study_group_name"`
	StudyGroupYear      int       `json:"study_group_year"`
	StudyGroupCreatedAt time.Time `json:"study_group_created_at"`
	StudyGroupUpdatedAt time.Time `json:"study_group_updated_at"`
}

func FromModel(m *sgmodel.StudyGroupModel) *StudyGroupResponseDTO {
	return &StudyGroupResponseDTO{
		StudyGroupID:        m.StudyGroupID,
		StudyGroupName:      m.StudyGroupName,
		StudyGroupYear:      m.StudyGroupYear,
		StudyGroupCreatedAt: m.StudyGroupCreatedAt,
		StudyGroupUpdatedAt: m.StudyGroupUpdatedAt,
	}
}

func FromModels(ms []sgmodel.StudyGroupModel) []StudyGroupResponseDTO {
	out := make([]StudyGroupResponseDTO, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}
