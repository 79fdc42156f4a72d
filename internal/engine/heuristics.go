package engine

import (
	"strings"

	"github.com/PackPilot/packpilot-backend/internal/rules"
	"github.com/PackPilot/packpilot-backend/types"
)

// TransportHinter derives the condition flags the transport rules evaluate
// (shinkansen usage, rental likelihood, highway or night bus, distance)
// from the trip request. It is a best-effort guess with no confirmation
// step, so it lives behind an interface the orchestrator can swap out.
type TransportHinter interface {
	Hints(req *types.TripRequest) rules.Context
}

// shinkansenCities are destinations served by a bullet-train station. A
// train trip to any of them is assumed to use the shinkansen.
var shinkansenCities = []string{
	"Tokyo", "Shinagawa", "Shin-Yokohama", "Odawara", "Atami", "Mishima",
	"Shizuoka", "Kakegawa", "Hamamatsu", "Toyohashi", "Nagoya", "Gifu",
	"Maibara", "Kyoto", "Shin-Osaka", "Osaka", "Kobe", "Akashi", "Himeji",
	"Okayama", "Fukuyama", "Hiroshima", "Yamaguchi", "Kokura", "Hakata",
	"Fukuoka", "Sendai", "Morioka", "Aomori", "Hakodate", "Kanazawa",
	"Toyama", "Nagano", "Takasaki", "Omiya", "Kagoshima", "Kumamoto",
	"Nagasaki",
}

// farCities are far enough from the capital region that any train trip
// there counts as long distance regardless of nights stayed.
var farCities = []string{"Sapporo", "Fukuoka", "Sendai", "Hiroshima"}

// touristAreas are destinations where arriving travelers typically rent a
// car rather than drive their own.
var touristAreas = []string{"Okinawa", "Hokkaido", "Ishigaki", "Miyako", "Yakushima", "Shodoshima"}

// nightBusCities are major cities reachable by overnight bus; a zero-night
// bus trip to one of them is assumed to be a night bus.
var nightBusCities = []string{"Osaka", "Nagoya", "Sendai", "Hiroshima"}

// DefaultHinter infers condition flags from destination-name substrings and
// trip length.
type DefaultHinter struct{}

func (DefaultHinter) Hints(req *types.TripRequest) rules.Context {
	ctx := rules.Context{}
	duration := req.Duration()

	switch req.TransportMethod {
	case types.TransportTrain:
		ctx["is_shinkansen"] = matchesAny(req.Destination, shinkansenCities)
		if duration >= 2 || matchesAny(req.Destination, farCities) {
			ctx["long_distance"] = true
		}
	case types.TransportBus:
		ctx["is_highway"] = duration >= 1
		if duration == 0 && matchesAny(req.Destination, nightBusCities) {
			ctx["night_bus"] = true
		}
	case types.TransportCar:
		ctx["is_rental"] = matchesAny(req.Destination, touristAreas)
		if duration >= 2 {
			ctx["distance"] = 200
		} else {
			ctx["distance"] = 100
		}
	case types.TransportOther:
		ctx["sub_method"] = "bicycle"
	}

	if duration >= 2 {
		ctx["long_distance"] = true
	}
	return ctx
}

func matchesAny(destination string, cities []string) bool {
	for _, city := range cities {
		if strings.Contains(destination, city) {
			return true
		}
	}
	return false
}
