package rules

import (
	"path/filepath"
	"testing"

	"github.com/PackPilot/packpilot-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shippedResolver(t *testing.T) *Resolver {
	t.Helper()
	return NewResolver(NewRepository(filepath.Join("..", "..", "data", "transport_rules.yaml")))
}

func names(items []types.ChecklistItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func TestAirplaneDomesticItems(t *testing.T) {
	r := shippedResolver(t)

	items := r.GetTransportItems(types.TransportAirplane, 2, true, 6, nil)
	got := names(items)

	assert.Contains(t, got, "Clear 1L bag for carry-on liquids")
	assert.Contains(t, got, "Power bank (carry-on only)")
	assert.Contains(t, got, "Eye mask and earplugs")
	assert.Contains(t, got, "Neck pillow") // duration >= 2

	// Prohibited bucket is informational only.
	assert.NotContains(t, got, "No aerosols over 500ml")

	for _, item := range items {
		assert.True(t, item.AutoAdded)
		assert.NotEmpty(t, item.Reason)
	}
}

func TestAirplaneDomesticShortTrip(t *testing.T) {
	r := shippedResolver(t)

	got := names(r.GetTransportItems(types.TransportAirplane, 1, true, 6, nil))
	assert.Contains(t, got, "Eye mask and earplugs")
	assert.NotContains(t, got, "Neck pillow")
}

func TestAirplaneInternationalItems(t *testing.T) {
	r := shippedResolver(t)

	got := names(r.GetTransportItems(types.TransportAirplane, 5, false, 7, nil))
	assert.Contains(t, got, "Passport")
	assert.Contains(t, got, "Local currency")
	assert.Contains(t, got, "Plug adapter")

	// Items flagged conditional are left to the user.
	assert.NotContains(t, got, "Visa documents")
}

func TestTrainShinkansenItems(t *testing.T) {
	r := shippedResolver(t)

	got := names(r.GetTransportItems(types.TransportTrain, 2, true, 5, Context{"is_shinkansen": true}))
	assert.Contains(t, got, "Reserved-seat and base fare tickets")
	assert.Contains(t, got, "Drinks and light snacks for the ride")

	// Task entries are not packable.
	assert.NotContains(t, got, "Reserve seats before peak travel days")
}

func TestTrainLocalItems(t *testing.T) {
	r := shippedResolver(t)

	got := names(r.GetTransportItems(types.TransportTrain, 0, true, 5, Context{"is_shinkansen": false}))
	assert.Contains(t, got, "IC transit card")
	assert.NotContains(t, got, "Transit navigation app")
}

func TestCarPersonalItems(t *testing.T) {
	r := shippedResolver(t)

	got := names(r.GetTransportItems(types.TransportCar, 3, true, 8,
		Context{"is_rental": false, "distance": 200, "long_distance": true}))

	assert.Contains(t, got, "Driver's license")
	assert.Contains(t, got, "ETC toll card")
	assert.Contains(t, got, "In-car phone charger (12V socket)")
	assert.Contains(t, got, "Sunglasses for driving") // distance >= 150
	assert.Contains(t, got, "Windshield sunshade")    // August

	// check/equipment entries are excluded.
	assert.NotContains(t, got, "Check engine oil and tire pressure")
	assert.NotContains(t, got, "Warning triangle and first-aid kit")
}

func TestCarWinterItems(t *testing.T) {
	r := shippedResolver(t)

	got := names(r.GetTransportItems(types.TransportCar, 2, true, 1, Context{"is_rental": false}))
	assert.Contains(t, got, "Studless tires or chains")
	assert.Contains(t, got, "De-icer spray")
	assert.NotContains(t, got, "Windshield sunshade")
}

func TestCarMarchSkipsDeicer(t *testing.T) {
	r := shippedResolver(t)

	// March is winter for tires but past the de-icer months gate.
	got := names(r.GetTransportItems(types.TransportCar, 2, true, 3, Context{"is_rental": false}))
	assert.Contains(t, got, "Studless tires or chains")
	assert.NotContains(t, got, "De-icer spray")
}

func TestCarRentalItems(t *testing.T) {
	r := shippedResolver(t)

	got := names(r.GetTransportItems(types.TransportCar, 2, true, 7, Context{"is_rental": true}))
	assert.Contains(t, got, "Driver's license")
	assert.Contains(t, got, "Rental reservation confirmation")
	assert.NotContains(t, got, "Compare insurance options at pickup")
	assert.NotContains(t, got, "ETC toll card")
}

func TestBusHighwayItems(t *testing.T) {
	r := shippedResolver(t)

	got := names(r.GetTransportItems(types.TransportBus, 1, true, 6,
		Context{"is_highway": true, "night_bus": true}))
	assert.Contains(t, got, "Neck pillow")
	assert.Contains(t, got, "Eye mask and earplugs")
	assert.Contains(t, got, "Mobile battery")
}

func TestBusHighwayDaytime(t *testing.T) {
	r := shippedResolver(t)

	got := names(r.GetTransportItems(types.TransportBus, 1, true, 6, Context{"is_highway": true}))
	assert.Contains(t, got, "Neck pillow")
	assert.NotContains(t, got, "Eye mask and earplugs")
}

func TestBusLocalItems(t *testing.T) {
	r := shippedResolver(t)

	got := names(r.GetTransportItems(types.TransportBus, 0, true, 6, Context{"is_highway": false}))
	assert.Equal(t, []string{"IC transit card or small change"}, got)
}

func TestOtherMethodItems(t *testing.T) {
	r := shippedResolver(t)

	t.Run("defaults to bicycle", func(t *testing.T) {
		got := names(r.GetTransportItems(types.TransportOther, 1, true, 6, nil))
		assert.Contains(t, got, "Helmet")
		assert.Contains(t, got, "Rain gear (top and bottom)")
	})

	t.Run("explicit sub-method", func(t *testing.T) {
		got := names(r.GetTransportItems(types.TransportOther, 1, true, 6, Context{"sub_method": "motorbike"}))
		assert.Contains(t, got, "Helmet and gloves")
	})

	t.Run("unknown sub-method yields nothing", func(t *testing.T) {
		got := r.GetTransportItems(types.TransportOther, 1, true, 6, Context{"sub_method": "skateboard"})
		assert.Empty(t, got)
	})
}

func TestUnknownTransportMethod(t *testing.T) {
	r := shippedResolver(t)

	items := r.GetTransportItems(types.TransportMethod("teleporter"), 2, true, 6, nil)
	assert.Empty(t, items)
}

func TestGetTransportItemsIdempotent(t *testing.T) {
	r := shippedResolver(t)

	first := names(r.GetTransportItems(types.TransportAirplane, 2, true, 6, nil))
	second := names(r.GetTransportItems(types.TransportAirplane, 2, true, 6, nil))
	assert.ElementsMatch(t, first, second)
}

func TestGetRecommendations(t *testing.T) {
	r := shippedResolver(t)

	t.Run("airplane includes timing advice", func(t *testing.T) {
		recs := r.GetRecommendations(types.TransportAirplane)
		require.NotEmpty(t, recs)
		assert.Contains(t, recs, "Check in online to skip the ticket counter")
		assert.Contains(t, recs, "Charge all devices the night before departure")
	})

	t.Run("train and bus have method advice", func(t *testing.T) {
		assert.Greater(t, len(r.GetRecommendations(types.TransportTrain)), 3)
		assert.Greater(t, len(r.GetRecommendations(types.TransportBus)), 3)
	})

	t.Run("unknown method still gets general advice", func(t *testing.T) {
		recs := r.GetRecommendations(types.TransportMethod("teleporter"))
		assert.Len(t, recs, 3)
	})
}

func TestEmptyRulesResolveToZeroItems(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "missing.yaml"))
	r := NewResolver(repo)

	items := r.GetTransportItems(types.TransportAirplane, 2, true, 6, nil)
	assert.Empty(t, items)
	assert.Empty(t, r.GetRecommendations(types.TransportAirplane))
}
