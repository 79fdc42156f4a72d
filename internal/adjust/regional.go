// Package adjust holds the pure checklist adjustment resolvers: regional,
// duration and weather. Each returns auto-added items with a reason and has
// no side effects, so the generation pipeline can apply them in a fixed
// order.
package adjust

import (
	"strings"

	"github.com/PackPilot/packpilot-backend/types"
)

var coldMonths = map[int]bool{10: true, 11: true, 12: true, 1: true, 2: true, 3: true}
var coolSummerMonths = map[int]bool{6: true, 7: true, 8: true}

// RegionalItems returns destination-specific additions based on where the
// trip goes and which month it starts in.
func RegionalItems(req *types.TripRequest) []types.ChecklistItem {
	items := []types.ChecklistItem{}
	dest := req.Destination
	month := int(req.StartDate.Month())

	switch {
	case strings.Contains(dest, "Hokkaido") || strings.Contains(dest, "Sapporo"):
		if coldMonths[month] {
			items = append(items,
				types.NewAutoItem("Cold-weather jacket (down)", types.CategoryClothing, "Hokkaido winters are cold"),
				types.NewAutoItem("Gloves and scarf", types.CategoryClothing, "Cold-weather protection"),
			)
		}
		if coolSummerMonths[month] {
			items = append(items,
				types.NewAutoItem("Light jacket", types.CategoryClothing, "Hokkaido mornings and evenings are cool even in summer"),
			)
		}
	case strings.Contains(dest, "Okinawa"):
		items = append(items,
			types.NewAutoItem("Sunscreen (SPF50+)", types.CategoryDaily, "Strong sunlight in Okinawa"),
			types.NewAutoItem("Insect repellent spray", types.CategoryDaily, "Subtropical climate"),
		)
	}

	return items
}
