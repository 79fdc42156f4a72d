package adjust

import (
	"fmt"

	"github.com/PackPilot/packpilot-backend/types"
)

// longStayNights is the point past which a trip needs laundry and spare
// clothing on top of the template baseline.
const longStayNights = 4

// DurationItems returns additions for long stays. Trips of one night or
// less get no additions; trimming short-trip items is left to future work.
func DurationItems(req *types.TripRequest) []types.ChecklistItem {
	duration := req.Duration()
	if duration < longStayNights {
		return nil
	}

	return []types.ChecklistItem{
		types.NewAutoItem("Travel-size laundry detergent", types.CategoryDaily,
			fmt.Sprintf("Extended stay of %d nights", duration)),
		types.NewAutoItem("Extra change of clothes", types.CategoryClothing, "Extended stay"),
	}
}
