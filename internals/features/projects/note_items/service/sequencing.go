// file: internals/features/projects/note_items/service/sequencing.go
package service

import (
	"github.com/gofiber/fiber/v2"

	itemmodel "stepwise_backend/internals/features/projects/note_items/model"
)

// DraftDecision says what a draft request should do: start a fresh chapter
// or replace the document of the latest rejected one.
type DraftDecision struct {
	// Redraft is nil for a fresh chapter; otherwise the item to reuse.
	Redraft *itemmodel.NoteItemModel
	// OrderNumber of the new chapter when Redraft is nil.
	OrderNumber int
}

// DecideDraft inspects the project's items, ordered by order number, and
// picks the drafting action. requiredChapters comes from the work template.
// A fresh chapter's order number is the count of existing items, so orders
// always run 0..n-1.
//
// The saturation guard runs before the per-status rules: once the project
// holds as many items as required and the latest is past drafting, no new
// chapter may start.
func DecideDraft(items []itemmodel.NoteItemModel, requiredChapters int) (DraftDecision, error) {
	if requiredChapters < 1 {
		return DraftDecision{}, fiber.NewError(fiber.StatusConflict,
			"Project requires no chapters")
	}
	if len(items) == 0 {
		return DraftDecision{OrderNumber: 0}, nil
	}

	last := &items[len(items)-1]
	saturated := len(items) >= requiredChapters

	switch last.NoteItemStatus {
	case itemmodel.StatusApproved:
		if saturated {
			return DraftDecision{}, fiber.NewError(fiber.StatusConflict,
				"All required chapters already exist")
		}
		return DraftDecision{OrderNumber: last.NoteItemOrderNumber + 1}, nil

	case itemmodel.StatusDraft, itemmodel.StatusRejected:
		// The latest chapter is still open: replace its document.
		return DraftDecision{Redraft: last}, nil

	case itemmodel.StatusSubmitted:
		if saturated {
			return DraftDecision{}, fiber.NewError(fiber.StatusConflict,
				"All required chapters already exist")
		}
		return DraftDecision{}, fiber.NewError(fiber.StatusConflict,
			"The latest chapter is awaiting review")

	default:
		return DraftDecision{}, fiber.NewError(fiber.StatusInternalServerError,
			"Unknown item status")
	}
}

// CountApproved is the completion-gate input: the number of approved items.
func CountApproved(items []itemmodel.NoteItemModel) int {
	n := 0
	for i := range items {
		if items[i].NoteItemStatus == itemmodel.StatusApproved {
			n++
		}
	}
	return n
}

// IsComplete holds exactly when every required chapter is approved.
func IsComplete(approvedCount, requiredChapters int) bool {
	return requiredChapters > 0 && approvedCount == requiredChapters
}
