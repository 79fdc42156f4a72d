package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/PackPilot/packpilot-backend/errors"
	"github.com/PackPilot/packpilot-backend/internal/engine"
	"github.com/PackPilot/packpilot-backend/store"
	"github.com/PackPilot/packpilot-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *ChecklistService {
	t.Helper()
	eng := engine.NewEngine(
		filepath.Join("..", "templates"),
		filepath.Join("..", "data", "transport_rules.yaml"),
	)
	return NewChecklistService(eng, store.NewMemoryStore())
}

func newTestChecklist(t *testing.T, svc *ChecklistService, nights int) *types.TripChecklist {
	t.Helper()
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	req, err := types.NewTripRequest("Osaka", start, start.AddDate(0, 0, nights), types.PurposeLeisure, "user-1")
	require.NoError(t, err)

	checklist, err := svc.GenerateChecklist(context.Background(), req)
	require.NoError(t, err)
	return checklist
}

func TestGenerateChecklistPersists(t *testing.T) {
	svc := newTestService(t)
	checklist := newTestChecklist(t, svc, 2)

	stored, err := svc.GetChecklist(context.Background(), checklist.ID)
	require.NoError(t, err)
	assert.Equal(t, checklist.ID, stored.ID)
	assert.NotEmpty(t, stored.Items)
	assert.Equal(t, types.StatusPlanning, stored.Status)
}

func TestGetChecklistUnknown(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetChecklist(context.Background(), "missing")
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ChecklistNotFound, appErr.Type)
}

func TestListChecklists(t *testing.T) {
	svc := newTestService(t)
	newTestChecklist(t, svc, 2)
	newTestChecklist(t, svc, 3)

	checklists, err := svc.ListChecklists(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, checklists, 2)

	none, err := svc.ListChecklists(context.Background(), "somebody-else")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteChecklist(t *testing.T) {
	svc := newTestService(t)
	checklist := newTestChecklist(t, svc, 2)
	ctx := context.Background()

	require.NoError(t, svc.DeleteChecklist(ctx, checklist.ID))
	_, err := svc.GetChecklist(ctx, checklist.ID)
	assert.Error(t, err)
	assert.Error(t, svc.DeleteChecklist(ctx, checklist.ID))
}

func TestToggleItem(t *testing.T) {
	svc := newTestService(t)
	checklist := newTestChecklist(t, svc, 2)
	ctx := context.Background()
	itemID := checklist.Items[0].ID

	checked, err := svc.ToggleItem(ctx, checklist.ID, itemID)
	require.NoError(t, err)
	assert.True(t, checked)

	stored, err := svc.GetChecklist(ctx, checklist.ID)
	require.NoError(t, err)
	assert.True(t, stored.Items[0].Checked)

	checked, err = svc.ToggleItem(ctx, checklist.ID, itemID)
	require.NoError(t, err)
	assert.False(t, checked)

	t.Run("unknown item propagates the mutation error", func(t *testing.T) {
		_, err := svc.ToggleItem(ctx, checklist.ID, "no-such-item")
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ItemNotFoundError, appErr.Type)
	})

	t.Run("unknown checklist", func(t *testing.T) {
		_, err := svc.ToggleItem(ctx, "missing", itemID)
		assert.Error(t, err)
	})
}

func TestAddAndRemoveItem(t *testing.T) {
	svc := newTestService(t)
	checklist := newTestChecklist(t, svc, 2)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, checklist.ID, "Portable fan", types.CategoryDaily)
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.False(t, item.AutoAdded)

	stored, err := svc.GetChecklist(ctx, checklist.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, len(checklist.Items)+1)

	require.NoError(t, svc.RemoveItem(ctx, checklist.ID, item.ID))
	assert.Error(t, svc.RemoveItem(ctx, checklist.ID, item.ID))
}

func TestReschedule(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("extending across both thresholds", func(t *testing.T) {
		checklist := newTestChecklist(t, svc, 2)

		messages, err := svc.Reschedule(ctx, checklist.ID, start, start.AddDate(0, 0, 5))
		require.NoError(t, err)
		assert.NotEmpty(t, messages)

		stored, err := svc.GetChecklist(ctx, checklist.ID)
		require.NoError(t, err)
		assert.Equal(t, start.AddDate(0, 0, 5), stored.EndDate)

		names := []string{}
		for _, item := range stored.Items {
			names = append(names, item.Name)
		}
		assert.Contains(t, names, "Travel-size laundry detergent")
		assert.Contains(t, names, "Nail clippers")
		assert.Contains(t, names, "Spare charging cable")
	})

	t.Run("invalid dates rejected before mutation", func(t *testing.T) {
		checklist := newTestChecklist(t, svc, 2)

		_, err := svc.Reschedule(ctx, checklist.ID, start, start.AddDate(0, 0, -1))
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ValidationError, appErr.Type)
	})

	t.Run("unknown checklist", func(t *testing.T) {
		_, err := svc.Reschedule(ctx, "missing", start, start.AddDate(0, 0, 3))
		assert.Error(t, err)
	})
}
