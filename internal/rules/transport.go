package rules

import (
	"github.com/PackPilot/packpilot-backend/logger"
	"github.com/PackPilot/packpilot-backend/types"
)

// Buckets inside the airplane branch that carry advice rather than packable
// items and are skipped during item resolution.
const (
	bucketProhibited = "prohibited"
	bucketTiming     = "timing"
)

const defaultSubMethod = "bicycle"

const fallbackReason = "Recommended for this transport method"

// Resolver derives checklist items for a transport method from the rule
// document. Each method has its own traversal because the real-world rules
// are irregular per method (different sub-contexts, different non-packable
// exclusions); all of them funnel through CheckCondition.
type Resolver struct {
	repo *Repository
}

// NewResolver creates a Resolver backed by the given repository.
func NewResolver(repo *Repository) *Resolver {
	return &Resolver{repo: repo}
}

// GetTransportItems resolves the items for a transport method under the trip
// context. Unknown methods and missing rule branches yield an empty list,
// never an error.
func (r *Resolver) GetTransportItems(
	method types.TransportMethod,
	tripDuration int,
	isDomestic bool,
	month int,
	additional Context,
) []types.ChecklistItem {
	doc := r.repo.Load()

	methodRules, ok := doc.TransportMethods[string(method)]
	if !ok {
		logger.GetLogger().Warnw("No rules for transport method", "method", method)
		return []types.ChecklistItem{}
	}

	ctx := Context{}
	for k, v := range additional {
		ctx[k] = v
	}
	ctx["duration"] = tripDuration
	ctx["is_domestic"] = isDomestic
	ctx["month"] = month

	switch method {
	case types.TransportAirplane:
		return r.airplaneItems(methodRules, ctx)
	case types.TransportTrain:
		return r.trainItems(methodRules, ctx)
	case types.TransportCar:
		return r.carItems(methodRules, ctx)
	case types.TransportBus:
		return r.busItems(methodRules, ctx)
	case types.TransportOther:
		return r.otherItems(methodRules, ctx)
	default:
		return []types.ChecklistItem{}
	}
}

// airplaneItems walks restrictions and recommendations for domestic flights,
// or the additional-items block for international ones. The "prohibited"
// bucket is informational only; the "timing" bucket is advice, not packing.
func (r *Resolver) airplaneItems(mr MethodRules, ctx Context) []types.ChecklistItem {
	items := []types.ChecklistItem{}

	if ctx.Flag("is_domestic") {
		if mr.Domestic == nil {
			return items
		}
		for bucket, group := range mr.Domestic.Restrictions {
			if bucket == bucketProhibited {
				continue
			}
			for _, item := range group.Items {
				items = append(items, makeItem(item))
			}
		}
		for bucket, group := range mr.Domestic.Recommendations {
			if bucket == bucketTiming {
				continue
			}
			for _, item := range group.Items {
				if CheckCondition(item, ctx) {
					items = append(items, makeItem(item))
				}
			}
		}
		return items
	}

	if mr.International == nil {
		return items
	}
	for _, group := range mr.International.AdditionalItems {
		for _, item := range group.Items {
			if !item.Conditional {
				items = append(items, makeItem(item))
			}
		}
	}
	return items
}

// trainItems walks the bullet-train groups (excluding task entries) or the
// local-train list (excluding app recommendations).
func (r *Resolver) trainItems(mr MethodRules, ctx Context) []types.ChecklistItem {
	items := []types.ChecklistItem{}

	if ctx.Flag("is_shinkansen") {
		if mr.Shinkansen == nil {
			return items
		}
		for _, group := range mr.Shinkansen.Items {
			for _, item := range group {
				if CheckCondition(item, ctx) && !item.IsType(TypeTask) {
					items = append(items, makeItem(item))
				}
			}
		}
		return items
	}

	if mr.LocalTrain == nil {
		return items
	}
	for _, item := range mr.LocalTrain.Items {
		if !item.IsType(TypeApp) {
			items = append(items, makeItem(item))
		}
	}
	return items
}

// carItems branches on rental vs personal vehicle.
func (r *Resolver) carItems(mr MethodRules, ctx Context) []types.ChecklistItem {
	if ctx.Flag("is_rental") {
		return r.rentalCarItems(mr)
	}
	return r.personalCarItems(mr, ctx)
}

func (r *Resolver) rentalCarItems(mr MethodRules) []types.ChecklistItem {
	items := []types.ChecklistItem{}
	if mr.RentalCar == nil {
		return items
	}
	for _, item := range mr.RentalCar.AdditionalItems {
		if !item.IsType(TypeTask) {
			items = append(items, makeItem(item))
		}
	}
	return items
}

// personalCarItems combines condition-filtered category items (excluding
// task/check/equipment entries) with month-gated seasonal items.
func (r *Resolver) personalCarItems(mr MethodRules, ctx Context) []types.ChecklistItem {
	items := []types.ChecklistItem{}
	if mr.PersonalCar == nil {
		return items
	}

	for _, group := range mr.PersonalCar.Items {
		for _, item := range group {
			if CheckCondition(item, ctx) && !item.IsType(TypeTask, TypeCheck, TypeEquipment) {
				items = append(items, makeItem(item))
			}
		}
	}

	items = append(items, r.seasonalCarItems(mr.PersonalCar, ctx)...)
	return items
}

// seasonMonths maps a season key to the calendar months it spans; each item's
// own months list provides the precise gate within the season.
var seasonMonths = map[string][]int{
	"winter": {12, 1, 2, 3},
	"summer": {6, 7, 8, 9},
}

func (r *Resolver) seasonalCarItems(pc *PersonalCar, ctx Context) []types.ChecklistItem {
	items := []types.ChecklistItem{}
	month := ctx.Int("month")
	if month == 0 {
		return items
	}

	for season, months := range seasonMonths {
		if !containsMonth(months, month) {
			continue
		}
		for _, item := range pc.Seasonal[season] {
			if containsMonth(item.Months, month) {
				items = append(items, makeItem(item))
			}
		}
	}
	return items
}

// busItems walks the highway/overnight groups or the local-route list.
func (r *Resolver) busItems(mr MethodRules, ctx Context) []types.ChecklistItem {
	items := []types.ChecklistItem{}

	if ctx.Flag("is_highway") {
		if mr.HighwayBus == nil {
			return items
		}
		for _, group := range mr.HighwayBus.Items {
			for _, item := range group {
				if CheckCondition(item, ctx) {
					items = append(items, makeItem(item))
				}
			}
		}
		return items
	}

	if mr.LocalBus == nil {
		return items
	}
	for _, item := range mr.LocalBus.Items {
		if CheckCondition(item, ctx) {
			items = append(items, makeItem(item))
		}
	}
	return items
}

// otherItems resolves the sub-method (bicycle by default) and walks its list.
func (r *Resolver) otherItems(mr MethodRules, ctx Context) []types.ChecklistItem {
	items := []types.ChecklistItem{}

	subMethod := defaultSubMethod
	if s, ok := ctx["sub_method"].(string); ok && s != "" {
		subMethod = s
	}

	sub, ok := mr.SubMethods[subMethod]
	if !ok {
		return items
	}
	for _, item := range sub.Items {
		if CheckCondition(item, ctx) {
			items = append(items, makeItem(item))
		}
	}
	return items
}

// GetRecommendations returns general cross-method advice plus the
// method-specific non-packing tips.
func (r *Resolver) GetRecommendations(method types.TransportMethod) []string {
	doc := r.repo.Load()

	recs := []string{}
	recs = append(recs, doc.GeneralRecommendations.AllMethods...)

	mr, ok := doc.TransportMethods[string(method)]
	if !ok {
		return recs
	}

	switch method {
	case types.TransportAirplane:
		if mr.Domestic != nil {
			recs = append(recs, mr.Domestic.Recommendations[bucketTiming].Recommendations...)
		}
	case types.TransportTrain:
		if mr.Shinkansen != nil {
			recs = append(recs, mr.Shinkansen.Recommendations...)
		}
	case types.TransportBus:
		if mr.HighwayBus != nil {
			recs = append(recs, mr.HighwayBus.Recommendations...)
		}
	}

	return recs
}

// makeItem converts a rule entry into an auto-added checklist item.
func makeItem(item RuleItem) types.ChecklistItem {
	category := types.ItemCategory(item.Category)
	if !category.IsValid() {
		category = types.NormalizeCategory(item.Category)
	}

	reason := item.Reason
	if reason == "" {
		reason = fallbackReason
	}

	return types.NewAutoItem(item.Name, category, reason)
}

func containsMonth(months []int, month int) bool {
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}
