package types

import "strings"

// ItemCategory is the fixed taxonomy every checklist item belongs to.
type ItemCategory string

const (
	CategoryTransport ItemCategory = "transport"
	CategoryWork      ItemCategory = "work"
	CategoryClothing  ItemCategory = "clothing"
	CategoryDaily     ItemCategory = "daily"
	CategoryMoney     ItemCategory = "money"
	CategoryWeather   ItemCategory = "weather"
	CategoryRegional  ItemCategory = "regional"
)

// DisplayName returns the heading used for the category in rendered markdown.
func (c ItemCategory) DisplayName() string {
	switch c {
	case CategoryTransport:
		return "Transport"
	case CategoryWork:
		return "Work"
	case CategoryClothing:
		return "Clothing & Grooming"
	case CategoryDaily:
		return "Daily Necessities"
	case CategoryMoney:
		return "Money"
	case CategoryWeather:
		return "Weather Response"
	case CategoryRegional:
		return "Region Specific"
	default:
		return string(c)
	}
}

// IsValid checks if the category is part of the taxonomy.
func (c ItemCategory) IsValid() bool {
	switch c {
	case CategoryTransport, CategoryWork, CategoryClothing, CategoryDaily,
		CategoryMoney, CategoryWeather, CategoryRegional:
		return true
	default:
		return false
	}
}

// categoryKeywords maps heading keywords to categories. Checked in order so
// the more specific phrases win over generic ones.
var categoryKeywords = []struct {
	keyword  string
	category ItemCategory
}{
	{"transport", CategoryTransport},
	{"transit", CategoryTransport},
	{"travel documents", CategoryTransport},
	{"tickets", CategoryTransport},
	{"business", CategoryWork},
	{"work", CategoryWork},
	{"meeting", CategoryWork},
	{"clothing", CategoryClothing},
	{"grooming", CategoryClothing},
	{"outfit", CategoryClothing},
	{"wardrobe", CategoryClothing},
	{"money", CategoryMoney},
	{"payment", CategoryMoney},
	{"budget", CategoryMoney},
	{"cash", CategoryMoney},
	{"weather", CategoryWeather},
	{"climate", CategoryWeather},
	{"region", CategoryRegional},
	{"local specialties", CategoryRegional},
	{"daily", CategoryDaily},
	{"toiletries", CategoryDaily},
	{"essentials", CategoryDaily},
}

// NormalizeCategory maps a free-form heading name onto the fixed taxonomy.
// Exact taxonomy values and display names hit first, then a substring keyword
// table; anything unrecognized falls back to daily necessities.
func NormalizeCategory(name string) ItemCategory {
	trimmed := strings.TrimSpace(name)

	if c := ItemCategory(strings.ToLower(trimmed)); c.IsValid() {
		return c
	}
	for _, c := range []ItemCategory{
		CategoryTransport, CategoryWork, CategoryClothing, CategoryDaily,
		CategoryMoney, CategoryWeather, CategoryRegional,
	} {
		if strings.EqualFold(trimmed, c.DisplayName()) {
			return c
		}
	}

	lower := strings.ToLower(trimmed)
	for _, entry := range categoryKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.category
		}
	}

	return CategoryDaily
}
