package store

import (
	"context"
	"testing"
	"time"

	"github.com/PackPilot/packpilot-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checklistFor(t *testing.T, userID string) *types.TripChecklist {
	t.Helper()
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	req, err := types.NewTripRequest("Osaka", start, start.AddDate(0, 0, 2), types.PurposeLeisure, userID)
	require.NoError(t, err)
	return types.NewTripChecklist(req, []types.ChecklistItem{
		types.NewChecklistItem("Wallet and cards", types.CategoryMoney, false),
	}, types.TemplateLeisureDomestic)
}

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	checklist := checklistFor(t, "user-1")

	require.NoError(t, s.CreateChecklist(ctx, checklist))

	t.Run("duplicate create conflicts", func(t *testing.T) {
		assert.ErrorIs(t, s.CreateChecklist(ctx, checklist), ErrConflict)
	})

	t.Run("get returns the stored checklist", func(t *testing.T) {
		got, err := s.GetChecklist(ctx, checklist.ID)
		require.NoError(t, err)
		assert.Equal(t, checklist.ID, got.ID)
		assert.Len(t, got.Items, 1)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := s.GetChecklist(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update replaces state", func(t *testing.T) {
		checklist.Status = types.StatusOngoing
		require.NoError(t, s.UpdateChecklist(ctx, checklist))
		got, err := s.GetChecklist(ctx, checklist.ID)
		require.NoError(t, err)
		assert.Equal(t, types.StatusOngoing, got.Status)
	})

	t.Run("update unknown id", func(t *testing.T) {
		other := checklistFor(t, "user-1")
		assert.ErrorIs(t, s.UpdateChecklist(ctx, other), ErrNotFound)
	})

	t.Run("delete removes the checklist", func(t *testing.T) {
		require.NoError(t, s.DeleteChecklist(ctx, checklist.ID))
		_, err := s.GetChecklist(ctx, checklist.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.DeleteChecklist(ctx, checklist.ID), ErrNotFound)
	})
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first := checklistFor(t, "user-1")
	first.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	second := checklistFor(t, "user-1")
	second.CreatedAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	other := checklistFor(t, "user-2")

	require.NoError(t, s.CreateChecklist(ctx, first))
	require.NoError(t, s.CreateChecklist(ctx, second))
	require.NoError(t, s.CreateChecklist(ctx, other))

	got, err := s.ListChecklists(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)

	empty, err := s.ListChecklists(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	checklist := checklistFor(t, "user-1")
	require.NoError(t, s.CreateChecklist(ctx, checklist))

	got, err := s.GetChecklist(ctx, checklist.ID)
	require.NoError(t, err)
	got.Items[0].Checked = true

	again, err := s.GetChecklist(ctx, checklist.ID)
	require.NoError(t, err)
	assert.False(t, again.Items[0].Checked)
}
