// file: internals/features/academics/work_templates/dto/work_template_dto.go
package dto

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	wtmodel "stepwise_backend/internals/features/academics/work_templates/model"
)

/* ===================== REQUESTS ===================== */

type TemplateChapterDTO struct {
	OrderNumber int    `json:"order_number" validate:"required,min=1"`
	Title       string `json:"title" validate:"required,min=2,max=200"`
}

type WorkTemplateCreateDTO struct {
	WorkTemplateName string               `json:"work_template_name" validate:"required,min=2,max=150"`
	Chapters         []TemplateChapterDTO `json:"chapters" validate:"required,min=1,dive"`
}

func (d *WorkTemplateCreateDTO) Normalize() {
	d.WorkTemplateName = strings.TrimSpace(d.WorkTemplateName)
	for i := range d.Chapters {
		d.Chapters[i].Title = strings.TrimSpace(d.Chapters[i].Title)
	}
	sort.SliceStable(d.Chapters, func(i, j int) bool {
		return d.Chapters[i].OrderNumber < d.Chapters[j].OrderNumber
	})
}

// ChaptersContiguous reports whether order numbers run 1..N without gaps
// or repeats.
func (d *WorkTemplateCreateDTO) ChaptersContiguous() bool {
	for i := range d.Chapters {
		if d.Chapters[i].OrderNumber != i+1 {
			return false
		}
	}
	return len(d.Chapters) > 0
}

func (d *WorkTemplateCreateDTO) ToModel() *wtmodel.WorkTemplateModel {
	chapters := make([]wtmodel.TemplateChapterModel, 0, len(d.Chapters))
	for _, ch := range d.Chapters {
		chapters = append(chapters, wtmodel.TemplateChapterModel{
			TemplateChapterOrderNumber: ch.OrderNumber,
			TemplateChapterTitle:       ch.Title,
		})
	}
	return &wtmodel.WorkTemplateModel{
		WorkTemplateName:            d.WorkTemplateName,
		WorkTemplateCountOfChapters: len(chapters),
		WorkTemplateChapters:        chapters,
	}
}

/* ===================== RESPONSES ===================== */

type TemplateChapterResponseDTO struct {
	TemplateChapterID uuid.UUID `json:"template_chapter_id"`
	OrderNumber       int       `json:"order_number"`
	Title             string    `json:"title"`
}

type WorkTemplateResponseDTO struct {
	WorkTemplateID              uuid.UUID                    `json:"work_template_id"`
	WorkTemplateName            string                       `json:"work_template_name"`
	WorkTemplateCountOfChapters int                          `json:"work_template_count_of_chapters"`
	WorkTemplateCreatedAt       time.Time                    `json:"work_template_created_at"`
	Chapters                    []TemplateChapterResponseDTO `json:"chapters,omitempty"`
}

func FromModel(m *wtmodel.WorkTemplateModel) *WorkTemplateResponseDTO {
	chapters := make([]TemplateChapterResponseDTO, 0, len(m.WorkTemplateChapters))
	for i := range m.WorkTemplateChapters {
		ch := &m.WorkTemplateChapters[i]
		chapters = append(chapters, TemplateChapterResponseDTO{
			TemplateChapterID: ch.TemplateChapterID,
			OrderNumber:       ch.TemplateChapterOrderNumber,
			Title:             ch.TemplateChapterTitle,
		})
	}
	return &WorkTemplateResponseDTO{
		WorkTemplateID:              m.WorkTemplateID,
		WorkTemplateName:            m.WorkTemplateName,
		WorkTemplateCountOfChapters: m.WorkTemplateCountOfChapters,
		WorkTemplateCreatedAt:       m.WorkTemplateCreatedAt,
		Chapters:                    chapters,
	}
}

func FromModels(ms []wtmodel.WorkTemplateModel) []WorkTemplateResponseDTO {
	out := make([]WorkTemplateResponseDTO, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}
