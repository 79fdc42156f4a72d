package adjust

import (
	"fmt"

	"github.com/PackPilot/packpilot-backend/types"
)

// Threshold values for the weather additions below. All temperatures are
// Celsius, rain probability is a percentage.
const (
	rainUmbrellaThreshold = 30
	rainGearThreshold     = 60
	coldJacketThreshold   = 10
	heatPackThreshold     = 5
	hotWeatherThreshold   = 30
)

// WeatherItems maps a forecast summary to checklist additions. Every item
// carries a reason; threshold-triggered ones cite the forecast value that
// crossed the line.
func WeatherItems(summary *types.WeatherSummary) []types.ChecklistItem {
	if summary == nil {
		return nil
	}

	items := []types.ChecklistItem{}

	if summary.HasRain || summary.MaxRainProbability > rainUmbrellaThreshold {
		items = append(items, types.NewAutoItem("Folding umbrella", types.CategoryWeather,
			fmt.Sprintf("Forecast rain probability of %.0f%%", summary.MaxRainProbability)))

		if summary.MaxRainProbability > rainGearThreshold {
			items = append(items,
				types.NewAutoItem("Raincoat", types.CategoryWeather, "High chance of rain"),
				types.NewAutoItem("Waterproof bag cover", types.CategoryWeather, "Keep luggage dry in the rain"),
			)
		}
	}

	if summary.MinTemperature < coldJacketThreshold {
		items = append(items, types.NewAutoItem("Warm jacket or coat", types.CategoryClothing,
			fmt.Sprintf("Forecast low of %.1f°C", summary.MinTemperature)))

		if summary.MinTemperature < heatPackThreshold {
			items = append(items, types.NewAutoItem("Disposable heat packs", types.CategoryWeather, "Protection against the cold"))
		}
	}

	if summary.MaxTemperature > hotWeatherThreshold {
		items = append(items,
			types.NewAutoItem("Sunscreen (SPF30+)", types.CategoryDaily,
				fmt.Sprintf("Forecast high of %.1f°C", summary.MaxTemperature)),
			types.NewAutoItem("Cooling towel", types.CategoryDaily, "Protection against the heat"),
			types.NewAutoItem("Water bottle", types.CategoryDaily, "Stay hydrated in hot weather"),
		)
	}

	if summary.HasCondition("Snow") {
		items = append(items, types.NewAutoItem("Slip-resistant footwear", types.CategoryClothing, "Snow in the forecast"))
	}
	if summary.HasCondition("Wind") {
		items = append(items, types.NewAutoItem("Windbreaker", types.CategoryClothing, "Strong winds in the forecast"))
	}

	return items
}
