// file: internals/features/projects/note_items/service/state_machine_test.go
package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	itemmodel "stepwise_backend/internals/features/projects/note_items/model"
)

func newItem(status itemmodel.ItemStatus, order int) *itemmodel.NoteItemModel {
	return &itemmodel.NoteItemModel{
		NoteItemID:          uuid.New(),
		NoteItemProjectID:   uuid.New(),
		NoteItemOrderNumber: order,
		NoteItemStatus:      status,
		NoteItemFileName:    "chapter.pdf",
		NoteItemDraftedAt:   time.Now().UTC(),
	}
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T", err)
	return fe.Code
}

func TestTransitionSubmit(t *testing.T) {
	actor := uuid.New()
	now := time.Now().UTC()

	t.Run("from draft", func(t *testing.T) {
		item := newItem(itemmodel.StatusDraft, 1)
		hist, err := TransitionSubmit(item, actor, now)
		require.NoError(t, err)
		assert.Equal(t, itemmodel.StatusSubmitted, item.NoteItemStatus)
		require.NotNil(t, item.NoteItemSubmittedAt)
		assert.Equal(t, now, *item.NoteItemSubmittedAt)
		require.NotNil(t, hist.ItemHistoryPreviousStatus)
		assert.Equal(t, itemmodel.StatusDraft, *hist.ItemHistoryPreviousStatus)
		assert.Equal(t, itemmodel.StatusSubmitted, hist.ItemHistoryNewStatus)
		assert.Equal(t, actor, hist.ItemHistoryChangedByUserID)
	})

	for _, from := range []itemmodel.ItemStatus{itemmodel.StatusSubmitted, itemmodel.StatusApproved, itemmodel.StatusRejected} {
		t.Run("illegal from "+string(from), func(t *testing.T) {
			item := newItem(from, 1)
			_, err := TransitionSubmit(item, actor, now)
			require.Error(t, err)
			assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
			assert.Equal(t, from, item.NoteItemStatus, "illegal transition must not mutate")
		})
	}
}

func TestTransitionApprove(t *testing.T) {
	actor := uuid.New()
	now := time.Now().UTC()

	t.Run("from submitted without comment", func(t *testing.T) {
		item := newItem(itemmodel.StatusSubmitted, 1)
		hist, err := TransitionApprove(item, actor, nil, now)
		require.NoError(t, err)
		assert.Equal(t, itemmodel.StatusApproved, item.NoteItemStatus)
		require.NotNil(t, item.NoteItemApprovedAt)
		assert.Nil(t, hist.ItemHistoryTeacherComment)
	})

	t.Run("optional comment is kept", func(t *testing.T) {
		item := newItem(itemmodel.StatusSubmitted, 1)
		comment := "solid chapter"
		hist, err := TransitionApprove(item, actor, &comment, now)
		require.NoError(t, err)
		require.NotNil(t, hist.ItemHistoryTeacherComment)
		assert.Equal(t, "solid chapter", *hist.ItemHistoryTeacherComment)
	})

	t.Run("blank comment is dropped", func(t *testing.T) {
		item := newItem(itemmodel.StatusSubmitted, 1)
		comment := "   "
		hist, err := TransitionApprove(item, actor, &comment, now)
		require.NoError(t, err)
		assert.Nil(t, hist.ItemHistoryTeacherComment)
	})

	for _, from := range []itemmodel.ItemStatus{itemmodel.StatusDraft, itemmodel.StatusApproved, itemmodel.StatusRejected} {
		t.Run("illegal from "+string(from), func(t *testing.T) {
			item := newItem(from, 1)
			_, err := TransitionApprove(item, actor, nil, now)
			require.Error(t, err)
			assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
		})
	}
}

func TestTransitionReject(t *testing.T) {
	actor := uuid.New()
	now := time.Now().UTC()

	t.Run("requires a comment", func(t *testing.T) {
		item := newItem(itemmodel.StatusSubmitted, 1)
		_, err := TransitionReject(item, actor, "  ", now)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
		assert.Equal(t, itemmodel.StatusSubmitted, item.NoteItemStatus)
	})

	t.Run("from submitted", func(t *testing.T) {
		item := newItem(itemmodel.StatusSubmitted, 1)
		hist, err := TransitionReject(item, actor, " needs a literature review ", now)
		require.NoError(t, err)
		assert.Equal(t, itemmodel.StatusRejected, item.NoteItemStatus)
		require.NotNil(t, item.NoteItemRejectedAt)
		require.NotNil(t, hist.ItemHistoryTeacherComment)
		assert.Equal(t, "needs a literature review", *hist.ItemHistoryTeacherComment)
	})

	for _, from := range []itemmodel.ItemStatus{itemmodel.StatusDraft, itemmodel.StatusApproved, itemmodel.StatusRejected} {
		t.Run("illegal from "+string(from), func(t *testing.T) {
			item := newItem(from, 1)
			_, err := TransitionReject(item, actor, "comment", now)
			require.Error(t, err)
			assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
		})
	}
}

func TestTransitionRedraft(t *testing.T) {
	actor := uuid.New()
	now := time.Now().UTC()

	t.Run("keeps identity and order", func(t *testing.T) {
		item := newItem(itemmodel.StatusRejected, 3)
		origID := item.NoteItemID
		submitted := now.Add(-time.Hour)
		item.NoteItemSubmittedAt = &submitted
		item.NoteItemRejectedAt = &submitted

		hist, err := TransitionRedraft(item, actor, "chapter-v2.pdf", now)
		require.NoError(t, err)
		assert.Equal(t, origID, item.NoteItemID)
		assert.Equal(t, 3, item.NoteItemOrderNumber)
		assert.Equal(t, itemmodel.StatusDraft, item.NoteItemStatus)
		assert.Equal(t, "chapter-v2.pdf", item.NoteItemFileName)
		assert.Nil(t, item.NoteItemSubmittedAt)
		assert.Nil(t, item.NoteItemRejectedAt)
		assert.Equal(t, now, item.NoteItemDraftedAt)
		require.NotNil(t, hist.ItemHistoryPreviousStatus)
		assert.Equal(t, itemmodel.StatusRejected, *hist.ItemHistoryPreviousStatus)
		assert.Equal(t, itemmodel.StatusDraft, hist.ItemHistoryNewStatus)
		assert.Contains(t, string(hist.ItemHistoryMeta), "chapter-v2.pdf")
	})

	for _, from := range []itemmodel.ItemStatus{itemmodel.StatusSubmitted, itemmodel.StatusApproved} {
		t.Run("illegal from "+string(from), func(t *testing.T) {
			item := newItem(from, 1)
			_, err := TransitionRedraft(item, actor, "x.pdf", now)
			require.Error(t, err)
			assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
		})
	}
}
