// file: internals/features/projects/note_items/service/state_machine.go
package service

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	itemmodel "stepwise_backend/internals/features/projects/note_items/model"
)

// Legal transitions:
//
//	(none)    -> DRAFT       first draft of a chapter
//	DRAFT     -> SUBMITTED   student hands in
//	SUBMITTED -> APPROVED    teacher signs off
//	SUBMITTED -> REJECTED    teacher returns with a comment
//	REJECTED  -> DRAFT       student redrafts the same row
//
// Everything else is a conflict. Transition funcs mutate the item in place
// and return the history row to append; they touch no storage.

func historyRow(item *itemmodel.NoteItemModel, prev *itemmodel.ItemStatus, next itemmodel.ItemStatus, actorID uuid.UUID, comment *string, now time.Time, meta map[string]any) itemmodel.ItemHistoryModel {
	var raw datatypes.JSON
	if len(meta) > 0 {
		if b, err := json.Marshal(meta); err == nil {
			raw = datatypes.JSON(b)
		}
	}
	return itemmodel.ItemHistoryModel{
		ItemHistoryItemID:          item.NoteItemID,
		ItemHistoryPreviousStatus:  prev,
		ItemHistoryNewStatus:       next,
		ItemHistoryTeacherComment:  comment,
		ItemHistoryChangedByUserID: actorID,
		ItemHistoryChangedAt:       now,
		ItemHistoryMeta:            raw,
	}
}

// FirstDraftHistory records the birth of a new item row. The item must
// already carry its ID (call after the insert).
func FirstDraftHistory(item *itemmodel.NoteItemModel, actorID uuid.UUID, now time.Time) itemmodel.ItemHistoryModel {
	return historyRow(item, nil, itemmodel.StatusDraft, actorID, nil, now,
		map[string]any{"file_name": item.NoteItemFileName, "order_number": item.NoteItemOrderNumber})
}

func TransitionSubmit(item *itemmodel.NoteItemModel, actorID uuid.UUID, now time.Time) (itemmodel.ItemHistoryModel, error) {
	if item.NoteItemStatus != itemmodel.StatusDraft {
		return itemmodel.ItemHistoryModel{}, fiber.NewError(fiber.StatusConflict,
			"Only a draft can be submitted")
	}
	prev := item.NoteItemStatus
	item.NoteItemStatus = itemmodel.StatusSubmitted
	item.NoteItemSubmittedAt = &now
	return historyRow(item, &prev, itemmodel.StatusSubmitted, actorID, nil, now, nil), nil
}

func TransitionApprove(item *itemmodel.NoteItemModel, actorID uuid.UUID, comment *string, now time.Time) (itemmodel.ItemHistoryModel, error) {
	if item.NoteItemStatus != itemmodel.StatusSubmitted {
		return itemmodel.ItemHistoryModel{}, fiber.NewError(fiber.StatusConflict,
			"Only a submitted item can be approved")
	}
	if comment != nil {
		v := strings.TrimSpace(*comment)
		if v == "" {
			comment = nil
		} else {
			comment = &v
		}
	}
	prev := item.NoteItemStatus
	item.NoteItemStatus = itemmodel.StatusApproved
	item.NoteItemApprovedAt = &now
	return historyRow(item, &prev, itemmodel.StatusApproved, actorID, comment, now, nil), nil
}

func TransitionReject(item *itemmodel.NoteItemModel, actorID uuid.UUID, comment string, now time.Time) (itemmodel.ItemHistoryModel, error) {
	if item.NoteItemStatus != itemmodel.StatusSubmitted {
		return itemmodel.ItemHistoryModel{}, fiber.NewError(fiber.StatusConflict,
			"Only a submitted item can be rejected")
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return itemmodel.ItemHistoryModel{}, fiber.NewError(fiber.StatusUnprocessableEntity,
			"A rejection requires a teacher comment")
	}
	prev := item.NoteItemStatus
	item.NoteItemStatus = itemmodel.StatusRejected
	item.NoteItemRejectedAt = &now
	return historyRow(item, &prev, itemmodel.StatusRejected, actorID, &comment, now, nil), nil
}

// TransitionRedraft reuses the rejected row for the replacement document.
// The chapter keeps its identity and order number.
func TransitionRedraft(item *itemmodel.NoteItemModel, actorID uuid.UUID, fileName string, now time.Time) (itemmodel.ItemHistoryModel, error) {
	if item.NoteItemStatus != itemmodel.StatusRejected && item.NoteItemStatus != itemmodel.StatusDraft {
		return itemmodel.ItemHistoryModel{}, fiber.NewError(fiber.StatusConflict,
			"Only a rejected item can be redrafted")
	}
	prev := item.NoteItemStatus
	item.NoteItemStatus = itemmodel.StatusDraft
	item.NoteItemFileName = fileName
	item.NoteItemDraftedAt = now
	item.NoteItemSubmittedAt = nil
	item.NoteItemRejectedAt = nil
	return historyRow(item, &prev, itemmodel.StatusDraft, actorID, nil, now,
		map[string]any{"file_name": fileName, "order_number": item.NoteItemOrderNumber}), nil
}
