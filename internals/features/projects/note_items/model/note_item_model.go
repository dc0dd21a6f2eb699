// file: internals/features/projects/note_items/model/note_item_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ItemStatus is the review state of one chapter document.
type ItemStatus string

const (
	StatusDraft     ItemStatus = "DRAFT"
	StatusSubmitted ItemStatus = "SUBMITTED"
	StatusApproved  ItemStatus = "APPROVED"
	StatusRejected  ItemStatus = "REJECTED"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// NoteItemModel is one chapter document inside a project. Order numbers
// are 0-based, contiguous and never repeat within a project; the row for a
// rejected chapter is reused on redraft rather than replaced.
type NoteItemModel struct {
	NoteItemID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:note_item_id" json:"note_item_id"`
	NoteItemProjectID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_project_order;index;column:note_item_project_id" json:"note_item_project_id"`
	NoteItemOrderNumber int        `gorm:"not null;uniqueIndex:uq_project_order;column:note_item_order_number" json:"note_item_order_number"`
	NoteItemStatus      ItemStatus `gorm:"type:varchar(20);not null;column:note_item_status" json:"note_item_status"`
	NoteItemFileName    string     `gorm:"size:255;not null;column:note_item_file_name" json:"note_item_file_name"`

	NoteItemDraftedAt   time.Time  `gorm:"type:timestamptz;not null;column:note_item_drafted_at" json:"note_item_drafted_at"`
	NoteItemSubmittedAt *time.Time `gorm:"type:timestamptz;column:note_item_submitted_at" json:"note_item_submitted_at,omitempty"`
	NoteItemApprovedAt  *time.Time `gorm:"type:timestamptz;column:note_item_approved_at" json:"note_item_approved_at,omitempty"`
	NoteItemRejectedAt  *time.Time `gorm:"type:timestamptz;column:note_item_rejected_at" json:"note_item_rejected_at,omitempty"`

	NoteItemCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:note_item_created_at" json:"note_item_created_at"`
	NoteItemUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:note_item_updated_at" json:"note_item_updated_at"`
}

func (NoteItemModel) TableName() string { return "note_items" }

// ItemHistoryModel is the append-only audit trail of item transitions.
// Rows are only ever inserted.
type ItemHistoryModel struct {
	ItemHistoryID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:item_history_id" json:"item_history_id"`
	ItemHistoryItemID          uuid.UUID      `gorm:"type:uuid;not null;index;column:item_history_item_id" json:"item_history_item_id"`
	ItemHistoryPreviousStatus  *ItemStatus    `gorm:"type:varchar(20);column:item_history_previous_status" json:"item_history_previous_status,omitempty"`
	ItemHistoryNewStatus       ItemStatus     `gorm:"type:varchar(20);not null;column:item_history_new_status" json:"item_history_new_status"`
	ItemHistoryTeacherComment  *string        `gorm:"type:text;column:item_history_teacher_comment" json:"item_history_teacher_comment,omitempty"`
	ItemHistoryChangedByUserID uuid.UUID      `gorm:"type:uuid;not null;column:item_history_changed_by_user_id" json:"item_history_changed_by_user_id"`
	ItemHistoryChangedAt       time.Time      `gorm:"type:timestamptz;not null;column:item_history_changed_at" json:"item_history_changed_at"`
	ItemHistoryMeta            datatypes.JSON `gorm:"type:jsonb;column:item_history_meta" json:"item_history_meta,omitempty"`
}

func (ItemHistoryModel) TableName() string { return "item_history" }
