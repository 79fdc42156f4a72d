package types

import (
	"strings"
	"testing"
	"time"

	apperrors "github.com/PackPilot/packpilot-backend/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest(t *testing.T) *TripRequest {
	t.Helper()
	req, err := NewTripRequest(
		"Sapporo",
		time.Date(2026, 6, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		PurposeBusiness,
		"user-1",
	)
	require.NoError(t, err)
	return req
}

func TestCompletionPercentage(t *testing.T) {
	req := testRequest(t)

	t.Run("empty list is zero, not NaN", func(t *testing.T) {
		cl := NewTripChecklist(req, nil, TemplateSapporoBusiness)
		assert.Equal(t, 0.0, cl.CompletionPercentage())
	})

	t.Run("half checked", func(t *testing.T) {
		items := []ChecklistItem{
			NewChecklistItem("Toothbrush", CategoryDaily, true),
			NewChecklistItem("Charger", CategoryDaily, false),
		}
		cl := NewTripChecklist(req, items, TemplateSapporoBusiness)
		assert.InDelta(t, 50.0, cl.CompletionPercentage(), 0.001)
		assert.Equal(t, 1, cl.CompletedCount())
		assert.Equal(t, 2, cl.TotalCount())
	})
}

func TestItemsByCategoryPartitions(t *testing.T) {
	req := testRequest(t)
	items := []ChecklistItem{
		NewChecklistItem("Tickets", CategoryTransport, false),
		NewChecklistItem("Laptop", CategoryWork, false),
		NewChecklistItem("Power bank", CategoryTransport, false),
		NewChecklistItem("Umbrella", CategoryWeather, false),
	}
	cl := NewTripChecklist(req, items, TemplateDomesticBusiness)

	groups := cl.ItemsByCategory()
	require.Len(t, groups, 3)

	// First-seen order preserved.
	assert.Equal(t, CategoryTransport, groups[0].Category)
	assert.Equal(t, CategoryWork, groups[1].Category)
	assert.Equal(t, CategoryWeather, groups[2].Category)

	// Exact partition: every item in exactly one bucket.
	total := 0
	seen := make(map[string]bool)
	for _, g := range groups {
		for _, item := range g.Items {
			assert.False(t, seen[item.ID], "item %s appears in two buckets", item.Name)
			seen[item.ID] = true
			total++
		}
	}
	assert.Equal(t, len(items), total)
}

func TestToggleItem(t *testing.T) {
	req := testRequest(t)
	item := NewChecklistItem("Passport", CategoryTransport, false)
	cl := NewTripChecklist(req, []ChecklistItem{item}, TemplateLeisureDomestic)

	checked, err := cl.ToggleItem(item.ID)
	require.NoError(t, err)
	assert.True(t, checked)

	checked, err = cl.ToggleItem(item.ID)
	require.NoError(t, err)
	assert.False(t, checked)

	t.Run("unknown id is an error", func(t *testing.T) {
		_, err := cl.ToggleItem("no-such-id")
		require.Error(t, err)
		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, apperrors.ItemNotFoundError, appErr.Type)
	})
}

func TestRemoveItem(t *testing.T) {
	req := testRequest(t)
	item := NewChecklistItem("Socks", CategoryClothing, false)
	cl := NewTripChecklist(req, []ChecklistItem{item}, TemplateLeisureDomestic)

	require.NoError(t, cl.RemoveItem(item.ID))
	assert.Empty(t, cl.Items)
	assert.Error(t, cl.RemoveItem(item.ID))
}

func TestAdjustForDurationChange(t *testing.T) {
	t.Run("growing from 2 to 5 crosses both thresholds", func(t *testing.T) {
		req := testRequest(t)
		cl := NewTripChecklist(req, nil, TemplateSapporoBusiness)

		adjustments := cl.AdjustForDurationChange(2, 5)

		names := itemNames(cl)
		assert.Contains(t, names, "Travel-size laundry detergent")
		assert.Contains(t, names, "Nail clippers")
		assert.Contains(t, names, "Spare charging cable")

		joined := strings.Join(adjustments, "\n")
		assert.Contains(t, joined, "3 nights")
		assert.Contains(t, joined, "5 nights")
	})

	t.Run("shrinking below 3 removes laundry items", func(t *testing.T) {
		req := testRequest(t)
		cl := NewTripChecklist(req, nil, TemplateSapporoBusiness)
		cl.AdjustForDurationChange(2, 4)
		require.Contains(t, itemNames(cl), "Travel-size laundry detergent")

		cl.AdjustForDurationChange(4, 1)
		assert.NotContains(t, itemNames(cl), "Travel-size laundry detergent")
	})

	t.Run("shrinking below 5 removes extended-stay items symmetrically", func(t *testing.T) {
		req := testRequest(t)
		cl := NewTripChecklist(req, nil, TemplateSapporoBusiness)
		cl.AdjustForDurationChange(2, 6)

		cl.AdjustForDurationChange(6, 4)
		names := itemNames(cl)
		assert.NotContains(t, names, "Nail clippers")
		assert.NotContains(t, names, "Spare charging cable")
		// 3-night threshold not crossed, laundry stays.
		assert.Contains(t, names, "Travel-size laundry detergent")
	})

	t.Run("unchanged duration does nothing", func(t *testing.T) {
		req := testRequest(t)
		cl := NewTripChecklist(req, nil, TemplateSapporoBusiness)
		adjustments := cl.AdjustForDurationChange(2, 2)
		assert.Empty(t, adjustments)
		assert.Empty(t, cl.Items)
	})
}

func TestToMarkdown(t *testing.T) {
	req := testRequest(t)
	items := []ChecklistItem{
		NewChecklistItem("Tickets", CategoryTransport, true),
		NewAutoItem("Folding umbrella", CategoryWeather, "70% chance of rain"),
	}
	cl := NewTripChecklist(req, items, TemplateSapporoBusiness)

	md := cl.ToMarkdown()
	assert.Contains(t, md, "# Sapporo Trip Checklist")
	assert.Contains(t, md, "**Progress**: 50.0% (1/2)")
	assert.Contains(t, md, "## Transport")
	assert.Contains(t, md, "- [x] Tickets")
	assert.Contains(t, md, "## Weather Response")
	assert.Contains(t, md, "- [ ] Folding umbrella")
	assert.Contains(t, md, "  - ⭐ 70% chance of rain")
}

func itemNames(cl *TripChecklist) []string {
	names := make([]string, 0, len(cl.Items))
	for _, item := range cl.Items {
		names = append(names, item.Name)
	}
	return names
}
