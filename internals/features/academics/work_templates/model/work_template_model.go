// file: internals/features/academics/work_templates/model/work_template_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkTemplateModel is the reusable blueprint for an academic work: an
// ordered chapter outline plus the number of chapters a project must get
// approved before it is complete.
type WorkTemplateModel struct {
	WorkTemplateID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:work_template_id" json:"work_template_id"`
	WorkTemplateName string    `gorm:"size:150;not null;uniqueIndex;column:work_template_name" json:"work_template_name"`

	// Number of approved chapters required for completion. Kept as an
	// explicit column so deleting chapter rows later never loosens the gate.
	WorkTemplateCountOfChapters int `gorm:"not null;column:work_template_count_of_chapters" json:"work_template_count_of_chapters"`

	WorkTemplateCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:work_template_created_at" json:"work_template_created_at"`
	WorkTemplateUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:work_template_updated_at" json:"work_template_updated_at"`
	WorkTemplateDeletedAt gorm.DeletedAt `gorm:"column:work_template_deleted_at;index" json:"work_template_deleted_at,omitempty"`

	WorkTemplateChapters []TemplateChapterModel `gorm:"foreignKey:TemplateChapterTemplateID;references:WorkTemplateID" json:"work_template_chapters,omitempty"`
}

func (WorkTemplateModel) TableName() string { return "work_templates" }

func (m *WorkTemplateModel) BeforeSave(tx *gorm.DB) error {
	m.WorkTemplateName = strings.TrimSpace(m.WorkTemplateName)
	return nil
}

// TemplateChapterModel is one outline entry. Order numbers start at 1 and
// are unique within a template.
type TemplateChapterModel struct {
	TemplateChapterID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:template_chapter_id" json:"template_chapter_id"`
	TemplateChapterTemplateID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_template_order;column:template_chapter_template_id" json:"template_chapter_template_id"`
	TemplateChapterOrderNumber int       `gorm:"not null;uniqueIndex:uq_template_order;column:template_chapter_order_number" json:"template_chapter_order_number"`
	TemplateChapterTitle       string    `gorm:"size:200;not null;column:template_chapter_title" json:"template_chapter_title"`

	TemplateChapterCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:template_chapter_created_at" json:"template_chapter_created_at"`
}

func (TemplateChapterModel) TableName() string { return "template_chapters" }

func (m *TemplateChapterModel) BeforeSave(tx *gorm.DB) error {
	m.TemplateChapterTitle = strings.TrimSpace(m.TemplateChapterTitle)
	return nil
}
