package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/PackPilot/packpilot-backend/errors"
	"github.com/google/uuid"
)

// ChecklistStatus tracks the lifecycle of a checklist. It is set by the
// calling layer, never by the generation engine.
type ChecklistStatus string

const (
	StatusPlanning  ChecklistStatus = "planning"
	StatusOngoing   ChecklistStatus = "ongoing"
	StatusCompleted ChecklistStatus = "completed"
)

// TemplateType names the template branch selected for a trip.
type TemplateType string

const (
	TemplateDomesticBusiness TemplateType = "domestic_business"
	TemplateSapporoBusiness  TemplateType = "sapporo_business"
	TemplateLeisureDomestic  TemplateType = "leisure_domestic"
)

// ChecklistItem is one packable or task entry. Identity is the generated ID;
// only Checked is expected to change after creation.
type ChecklistItem struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Category  ItemCategory `json:"category"`
	Checked   bool         `json:"checked"`
	AutoAdded bool         `json:"autoAdded"`
	Reason    string       `json:"reason,omitempty"`
}

// NewChecklistItem creates a template-derived (not auto-added) item.
func NewChecklistItem(name string, category ItemCategory, checked bool) ChecklistItem {
	return ChecklistItem{
		ID:       uuid.New().String(),
		Name:     name,
		Category: category,
		Checked:  checked,
	}
}

// NewAutoItem creates a rule-derived item carrying the reason it was added.
func NewAutoItem(name string, category ItemCategory, reason string) ChecklistItem {
	return ChecklistItem{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  category,
		AutoAdded: true,
		Reason:    reason,
	}
}

// CategoryGroup is one category bucket of a checklist, in first-seen order.
type CategoryGroup struct {
	Category ItemCategory    `json:"category"`
	Items    []ChecklistItem `json:"items"`
}

// WeatherSnapshot is the summary attached to a checklist when weather data
// was available at generation time.
type WeatherSnapshot struct {
	AverageTemperature float64  `json:"averageTemperature"`
	MaxTemperature     float64  `json:"maxTemperature"`
	MinTemperature     float64  `json:"minTemperature"`
	RainProbability    float64  `json:"rainProbability"`
	Conditions         []string `json:"conditions"`
	ForecastDate       string   `json:"forecastDate"`
}

// TripChecklist is the aggregate result of checklist generation.
//
// Concurrent mutation of the same instance is undefined behavior: the calling
// layer serializes access per checklist.
type TripChecklist struct {
	ID           string           `json:"id"`
	Destination  string           `json:"destination"`
	StartDate    time.Time        `json:"startDate"`
	EndDate      time.Time        `json:"endDate"`
	Purpose      TripPurpose      `json:"purpose"`
	Items        []ChecklistItem  `json:"items"`
	Status       ChecklistStatus  `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
	UserID       string           `json:"userId"`
	TemplateUsed TemplateType     `json:"templateUsed,omitempty"`
	WeatherData  *WeatherSnapshot `json:"weatherData,omitempty"`
}

// NewTripChecklist assembles a checklist for a request with the given items.
func NewTripChecklist(req *TripRequest, items []ChecklistItem, template TemplateType) *TripChecklist {
	now := time.Now().UTC()
	return &TripChecklist{
		ID:           uuid.New().String(),
		Destination:  req.Destination,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Purpose:      req.Purpose,
		Items:        items,
		Status:       StatusPlanning,
		CreatedAt:    now,
		UpdatedAt:    now,
		UserID:       req.UserID,
		TemplateUsed: template,
	}
}

// ItemsByCategory partitions items into category buckets, preserving
// first-seen category order and item order within each bucket.
func (c *TripChecklist) ItemsByCategory() []CategoryGroup {
	index := make(map[ItemCategory]int)
	groups := make([]CategoryGroup, 0)

	for _, item := range c.Items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, CategoryGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// CompletionPercentage returns checked/total*100, 0.0 for an empty list.
func (c *TripChecklist) CompletionPercentage() float64 {
	if len(c.Items) == 0 {
		return 0.0
	}
	return float64(c.CompletedCount()) / float64(len(c.Items)) * 100
}

// CompletedCount returns the number of checked items.
func (c *TripChecklist) CompletedCount() int {
	count := 0
	for _, item := range c.Items {
		if item.Checked {
			count++
		}
	}
	return count
}

// TotalCount returns the total number of items.
func (c *TripChecklist) TotalCount() int {
	return len(c.Items)
}

// PendingItems returns the unchecked items in list order.
func (c *TripChecklist) PendingItems() []ChecklistItem {
	pending := make([]ChecklistItem, 0)
	for _, item := range c.Items {
		if !item.Checked {
			pending = append(pending, item)
		}
	}
	return pending
}

// ToggleItem flips the checked state of the item with the given ID and
// returns the new state. Unknown IDs are an error, not a no-op: a stale ID
// means a caller bug that should not be masked.
func (c *TripChecklist) ToggleItem(itemID string) (bool, error) {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Checked = !c.Items[i].Checked
			c.UpdatedAt = time.Now().UTC()
			return c.Items[i].Checked, nil
		}
	}
	return false, errors.ItemNotFound(itemID)
}

// AddItem appends a new item.
func (c *TripChecklist) AddItem(item ChecklistItem) {
	c.Items = append(c.Items, item)
	c.UpdatedAt = time.Now().UTC()
}

// RemoveItem deletes the item with the given ID.
func (c *TripChecklist) RemoveItem(itemID string) error {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return errors.ItemNotFound(itemID)
}

// AdjustForDurationChange adds or removes long-stay items when a reschedule
// crosses the 3-night or 5-night thresholds, and returns human-readable
// descriptions of what changed. Shrinking removes the same auto-added items
// that growing adds, on both thresholds.
func (c *TripChecklist) AdjustForDurationChange(oldDuration, newDuration int) []string {
	adjustments := make([]string, 0)

	if newDuration > oldDuration {
		if c.hasClothingChangeItems() {
			adjustments = append(adjustments, fmt.Sprintf(
				"Consider packing changes of clothes for %d nights instead of %d", newDuration, oldDuration))
		}

		if newDuration >= 3 && oldDuration < 3 {
			c.AddItem(NewAutoItem(
				"Travel-size laundry detergent",
				CategoryDaily,
				fmt.Sprintf("Long stay of %d nights", newDuration),
			))
			adjustments = append(adjustments, "Added laundry detergent (3 nights or more)")
		}

		if newDuration >= 5 && oldDuration < 5 {
			for _, name := range []string{"Nail clippers", "Spare charging cable"} {
				c.AddItem(NewAutoItem(name, CategoryDaily,
					fmt.Sprintf("Long stay of %d nights", newDuration)))
			}
			adjustments = append(adjustments, "Added extended-stay items (5 nights or more)")
		}
	} else if newDuration < oldDuration {
		if newDuration < 3 && oldDuration >= 3 {
			for _, removed := range c.removeAutoItemsByName("laundry") {
				adjustments = append(adjustments, fmt.Sprintf("Removed %s (short stay)", removed))
			}
		}
		if newDuration < 5 && oldDuration >= 5 {
			for _, name := range []string{"Nail clippers", "Spare charging cable"} {
				for _, removed := range c.removeAutoItemsByName(name) {
					adjustments = append(adjustments, fmt.Sprintf("Removed %s (short stay)", removed))
				}
			}
		}
		adjustments = append(adjustments, fmt.Sprintf(
			"Consider reducing changes of clothes from %d nights to %d", oldDuration, newDuration))
	}

	return adjustments
}

func (c *TripChecklist) hasClothingChangeItems() bool {
	for _, item := range c.Items {
		if item.Category == CategoryClothing && strings.Contains(strings.ToLower(item.Name), "change of clothes") {
			return true
		}
	}
	return false
}

// removeAutoItemsByName removes auto-added items whose name contains the
// given substring (case-insensitive) and returns the removed names.
func (c *TripChecklist) removeAutoItemsByName(substr string) []string {
	removed := make([]string, 0)
	lower := strings.ToLower(substr)

	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.AutoAdded && strings.Contains(strings.ToLower(item.Name), lower) {
			removed = append(removed, item.Name)
			continue
		}
		kept = append(kept, item)
	}
	if len(removed) > 0 {
		c.Items = kept
		c.UpdatedAt = time.Now().UTC()
	}
	return removed
}

// ToMarkdown serializes the checklist in the format consumed by the
// persistence collaborator: a heading, summary lines, then one ## section per
// category with checkbox lines. Auto-added items carry a starred reason
// sub-line.
func (c *TripChecklist) ToMarkdown() string {
	lines := []string{
		fmt.Sprintf("# %s Trip Checklist", c.Destination),
		fmt.Sprintf("**Period**: %s - %s", c.StartDate.Format("2006-01-02"), c.EndDate.Format("2006-01-02")),
		fmt.Sprintf("**Purpose**: %s", c.Purpose),
		fmt.Sprintf("**Progress**: %.1f%% (%d/%d)", c.CompletionPercentage(), c.CompletedCount(), c.TotalCount()),
		"",
	}

	for _, group := range c.ItemsByCategory() {
		lines = append(lines, fmt.Sprintf("## %s", group.Category.DisplayName()))
		for _, item := range group.Items {
			check := " "
			if item.Checked {
				check = "x"
			}
			lines = append(lines, fmt.Sprintf("- [%s] %s", check, item.Name))
			if item.AutoAdded && item.Reason != "" {
				lines = append(lines, fmt.Sprintf("  - ⭐ %s", item.Reason))
			}
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
