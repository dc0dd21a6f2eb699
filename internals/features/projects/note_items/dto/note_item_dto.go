// file: internals/features/projects/note_items/dto/note_item_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	itemmodel "stepwise_backend/internals/features/projects/note_items/model"
)

/* ===================== REQUESTS ===================== */

type ItemReviewDTO struct {
	Comment string `json:"comment" validate:"max=5000"`
}

/* ===================== RESPONSES ===================== */

type NoteItemResponseDTO struct {
	NoteItemID  uuid.UUID            `json:"note_item_id"`
	ProjectID   uuid.UUID            `json:"project_id"`
	OrderNumber int                  `json:"order_number"`
	Status      itemmodel.ItemStatus `json:"status"`
	FileName    string               `json:"file_name"`
	DraftedAt   time.Time            `json:"drafted_at"`
	SubmittedAt *time.Time           `json:"submitted_at,omitempty"`
	ApprovedAt  *time.Time           `json:"approved_at,omitempty"`
	RejectedAt  *time.Time           `json:"rejected_at,omitempty"`
}

func FromModel(m *itemmodel.NoteItemModel) *NoteItemResponseDTO {
	return &NoteItemResponseDTO{
		NoteItemID:  m.NoteItemID,
		ProjectID:   m.NoteItemProjectID,
		OrderNumber: m.NoteItemOrderNumber,
		Status:      m.NoteItemStatus,
		FileName:    m.NoteItemFileName,
		DraftedAt:   m.NoteItemDraftedAt,
		SubmittedAt: m.NoteItemSubmittedAt,
		ApprovedAt:  m.NoteItemApprovedAt,
		RejectedAt:  m.NoteItemRejectedAt,
	}
}

func FromModels(ms []itemmodel.NoteItemModel) []NoteItemResponseDTO {
	out := make([]NoteItemResponseDTO, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}

type ItemHistoryResponseDTO struct {
	ItemHistoryID   uuid.UUID             `json:"item_history_id"`
	ItemID          uuid.UUID             `json:"item_id"`
	PreviousStatus  *itemmodel.ItemStatus `json:"previous_status,omitempty"`
	NewStatus       itemmodel.ItemStatus  `json:"new_status"`
	TeacherComment  *string               `json:"teacher_comment,omitempty"`
	ChangedByUserID uuid.UUID             `json:"changed_by_user_id"`
	ChangedAt       time.Time             `json:"changed_at"`
	Meta            datatypes.JSON        `json:"meta,omitempty"`
}

func HistoryFromModels(ms []itemmodel.ItemHistoryModel) []ItemHistoryResponseDTO {
	out := make([]ItemHistoryResponseDTO, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		out = append(out, ItemHistoryResponseDTO{
			ItemHistoryID:   m.ItemHistoryID,
			ItemID:          m.ItemHistoryItemID,
			PreviousStatus:  m.ItemHistoryPreviousStatus,
			NewStatus:       m.ItemHistoryNewStatus,
			TeacherComment:  m.ItemHistoryTeacherComment,
			ChangedByUserID: m.ItemHistoryChangedByUserID,
			ChangedAt:       m.ItemHistoryChangedAt,
			Meta:            m.ItemHistoryMeta,
		})
	}
	return out
}
