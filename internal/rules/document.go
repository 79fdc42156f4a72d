// Package rules loads the declarative transport rule document and resolves
// the conditional packing items it describes.
package rules

// ItemType classifies rule entries that are not packable items. Packable
// entries leave the field empty. The set is closed: anything else in the
// document is treated as packable.
type ItemType string

const (
	TypeTask      ItemType = "task"      // something to do, not to pack
	TypeCheck     ItemType = "check"     // pre-departure inspection
	TypeEquipment ItemType = "equipment" // fixed vehicle equipment
	TypeApp       ItemType = "app"       // app recommendation
)

// RuleItem is one conditional entry in the rule document.
type RuleItem struct {
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	Reason      string   `yaml:"reason"`
	Condition   string   `yaml:"condition"`
	Type        ItemType `yaml:"type"`
	Conditional bool     `yaml:"conditional"`
	Months      []int    `yaml:"months"`
}

// IsType reports whether the item carries one of the given non-packable types.
func (i RuleItem) IsType(ts ...ItemType) bool {
	for _, t := range ts {
		if i.Type == t {
			return true
		}
	}
	return false
}

// ItemGroup is a named bucket of items (e.g. a restriction class).
type ItemGroup struct {
	Items []RuleItem `yaml:"items"`
}

// AdviceGroup is a bucket that may carry items, plain-text advice, or both.
type AdviceGroup struct {
	Items           []RuleItem `yaml:"items"`
	Recommendations []string   `yaml:"recommendations"`
}

// AirDomestic holds the domestic-flight branch: carry-on restrictions and
// comfort recommendations.
type AirDomestic struct {
	Restrictions    map[string]ItemGroup   `yaml:"restrictions"`
	Recommendations map[string]AdviceGroup `yaml:"recommendations"`
}

// AirInternational holds the international-flight additions.
type AirInternational struct {
	AdditionalItems map[string]ItemGroup `yaml:"additional_items"`
}

// GroupedBranch holds items grouped by topic plus optional advice, used for
// the bullet-train and highway-bus branches.
type GroupedBranch struct {
	Items           map[string][]RuleItem `yaml:"items"`
	Recommendations []string              `yaml:"recommendations"`
}

// FlatBranch holds a single undifferentiated item list, used for the
// local-train and local-bus branches.
type FlatBranch struct {
	Items []RuleItem `yaml:"items"`
}

// RentalCar holds the additions for rented vehicles.
type RentalCar struct {
	AdditionalItems []RuleItem `yaml:"additional_items"`
}

// PersonalCar holds category items plus seasonal items for private vehicles.
type PersonalCar struct {
	Items    map[string][]RuleItem `yaml:"items"`
	Seasonal map[string][]RuleItem `yaml:"seasonal"`
}

// SubMethod is a branch of the "other" transport method (bicycle, motorbike).
type SubMethod struct {
	Items []RuleItem `yaml:"items"`
}

// MethodRules is the rule tree for one transport method. Only the branches
// relevant to a method are populated; the "other" method's sub-contexts land
// in SubMethods via the inline map.
type MethodRules struct {
	Domestic      *AirDomestic      `yaml:"domestic"`
	International *AirInternational `yaml:"international"`
	Shinkansen    *GroupedBranch    `yaml:"shinkansen"`
	LocalTrain    *FlatBranch       `yaml:"local_train"`
	RentalCar     *RentalCar        `yaml:"rental_car"`
	PersonalCar   *PersonalCar      `yaml:"personal_car"`
	HighwayBus    *GroupedBranch    `yaml:"highway_bus"`
	LocalBus      *FlatBranch       `yaml:"local_bus"`

	SubMethods map[string]SubMethod `yaml:",inline"`
}

// GeneralRecommendations is the cross-method advice block.
type GeneralRecommendations struct {
	AllMethods []string `yaml:"all_methods"`
}

// RuleDocument is the root of the transport rule configuration.
type RuleDocument struct {
	TransportMethods       map[string]MethodRules `yaml:"transport_methods"`
	GeneralRecommendations GeneralRecommendations `yaml:"general_recommendations"`
}

// EmptyDocument returns a document with no rules, used when the rule file is
// missing or unreadable so callers see a valid zero-item case.
func EmptyDocument() *RuleDocument {
	return &RuleDocument{TransportMethods: map[string]MethodRules{}}
}
