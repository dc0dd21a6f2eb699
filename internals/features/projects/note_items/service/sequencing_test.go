// file: internals/features/projects/note_items/service/sequencing_test.go
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

func itemsOf(statuses ...itemmodel.ItemStatus) []itemmodel.NoteItemModel {
	out := make([]itemmodel.NoteItemModel, 0, len(statuses))
	for i, s := range statuses {
		out = append(out, *newItem(s, i))
	}
	return out
}

func TestDecideDraft(t *testing.T) {
	t.Run("empty project starts at order zero", func(t *testing.T) {
		d, err := DecideDraft(nil, 3)
		require.NoError(t, err)
		assert.Nil(t, d.Redraft)
		assert.Equal(t, 0, d.OrderNumber)
	})

	t.Run("zero required chapters is a conflict", func(t *testing.T) {
		_, err := DecideDraft(nil, 0)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
	})

	t.Run("last approved starts the next chapter", func(t *testing.T) {
		items := itemsOf(itemmodel.StatusApproved)
		d, err := DecideDraft(items, 3)
		require.NoError(t, err)
		assert.Nil(t, d.Redraft)
		assert.Equal(t, 1, d.OrderNumber, "order number is the count of existing items")
	})

	t.Run("last draft is redrafted in place", func(t *testing.T) {
		items := itemsOf(itemmodel.StatusApproved, itemmodel.StatusDraft)
		d, err := DecideDraft(items, 3)
		require.NoError(t, err)
		require.NotNil(t, d.Redraft)
		assert.Equal(t, 1, d.Redraft.NoteItemOrderNumber)
	})

	t.Run("last rejected is redrafted in place", func(t *testing.T) {
		items := itemsOf(itemmodel.StatusRejected)
		d, err := DecideDraft(items, 2)
		require.NoError(t, err)
		require.NotNil(t, d.Redraft)
		assert.Equal(t, 0, d.Redraft.NoteItemOrderNumber)
	})

	t.Run("last submitted blocks a new draft", func(t *testing.T) {
		items := itemsOf(itemmodel.StatusSubmitted)
		_, err := DecideDraft(items, 3)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
	})

	t.Run("saturated with last approved blocks a new chapter", func(t *testing.T) {
		items := itemsOf(itemmodel.StatusApproved, itemmodel.StatusApproved)
		_, err := DecideDraft(items, 2)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
	})

	t.Run("saturation wins over the submitted message", func(t *testing.T) {
		items := itemsOf(itemmodel.StatusApproved, itemmodel.StatusSubmitted)
		_, err := DecideDraft(items, 2)
		require.Error(t, err)
		fe := err.(*fiber.Error)
		assert.Equal(t, fiber.StatusConflict, fe.Code)
		assert.Contains(t, fe.Message, "already exist")
	})

	t.Run("saturated but last rejected still allows redraft", func(t *testing.T) {
		items := itemsOf(itemmodel.StatusApproved, itemmodel.StatusRejected)
		d, err := DecideDraft(items, 2)
		require.NoError(t, err)
		require.NotNil(t, d.Redraft)
		assert.Equal(t, 1, d.Redraft.NoteItemOrderNumber)
	})

	t.Run("orders stay contiguous from zero across a full run", func(t *testing.T) {
		var items []itemmodel.NoteItemModel
		for i := 0; i < 3; i++ {
			d, err := DecideDraft(items, 3)
			require.NoError(t, err)
			require.Nil(t, d.Redraft)
			assert.Equal(t, i, d.OrderNumber)
			items = append(items, *newItem(itemmodel.StatusApproved, d.OrderNumber))
		}
		for i := range items {
			assert.Equal(t, i, items[i].NoteItemOrderNumber)
		}
	})
}

func TestCompletionGate(t *testing.T) {
	cases := []struct {
		name     string
		approved int
		required int
		complete bool
	}{
		{"fewer than required", 1, 2, false},
		{"exactly required", 2, 2, true},
		{"more than required", 3, 2, false},
		{"nothing approved", 0, 2, false},
		{"zero required never completes", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.complete, IsComplete(tc.approved, tc.required))
		})
	}
}

func TestCountApproved(t *testing.T) {
	items := itemsOf(itemmodel.StatusApproved, itemmodel.StatusRejected, itemmodel.StatusApproved, itemmodel.StatusSubmitted)
	assert.Equal(t, 2, CountApproved(items))
	assert.Equal(t, 0, CountApproved(nil))
}

// The scenarios below drive the pure core through the same operation
// sequences the HTTP surface produces.

func TestScenarioFirstDraft(t *testing.T) {
	d, err := DecideDraft(nil, 2)
	require.NoError(t, err)
	assert.Nil(t, d.Redraft)
	assert.Equal(t, 0, d.OrderNumber)
}

func TestScenarioDraftWhileSubmitted(t *testing.T) {
	student := uuid.New()
	now := time.Now().UTC()

	item := newItem(itemmodel.StatusDraft, 0)
	_, err := TransitionSubmit(item, student, now)
	require.NoError(t, err)

	_, err = DecideDraft([]itemmodel.NoteItemModel{*item}, 2)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestScenarioRejectThenRedraft(t *testing.T) {
	student := uuid.New()
	teacher := uuid.New()
	now := time.Now().UTC()

	item := newItem(itemmodel.StatusDraft, 0)
	origID := item.NoteItemID

	var history []itemmodel.ItemHistoryModel
	history = append(history, FirstDraftHistory(item, student, now))

	h, err := TransitionSubmit(item, student, now.Add(time.Minute))
	require.NoError(t, err)
	history = append(history, h)

	h, err = TransitionReject(item, teacher, "fix intro", now.Add(2*time.Minute))
	require.NoError(t, err)
	history = append(history, h)
	assert.Equal(t, itemmodel.StatusRejected, item.NoteItemStatus)

	d, err := DecideDraft([]itemmodel.NoteItemModel{*item}, 2)
	require.NoError(t, err)
	require.NotNil(t, d.Redraft)

	h, err = TransitionRedraft(item, student, "chapter-v2.pdf", now.Add(3*time.Minute))
	require.NoError(t, err)
	history = append(history, h)

	assert.Equal(t, origID, item.NoteItemID)
	assert.Equal(t, itemmodel.StatusDraft, item.NoteItemStatus)
	assert.Equal(t, "chapter-v2.pdf", item.NoteItemFileName)
	assert.Len(t, history, 4)
	for _, row := range history {
		assert.Equal(t, origID, row.ItemHistoryItemID)
	}
}

func TestScenarioExactApprovalCompletes(t *testing.T) {
	items := itemsOf(itemmodel.StatusApproved)
	assert.True(t, IsComplete(CountApproved(items), 1))
}

func TestScenarioMissingChaptersDoNotComplete(t *testing.T) {
	items := itemsOf(itemmodel.StatusApproved)
	assert.False(t, IsComplete(CountApproved(items), 2))
}
