package models

import "strings"

// ProductCategory identifies a family of products sharing one configurator schema
type ProductCategory string

const (
	CategoryGarages      ProductCategory = "garages"
	CategoryGazebos      ProductCategory = "gazebos"
	CategoryPorches      ProductCategory = "porches"
	CategoryOakBeams     ProductCategory = "oak-beams"
	CategoryOakFlooring  ProductCategory = "oak-flooring"
	CategorySpecialDeals ProductCategory = "special-deals"
)

// AllCategories lists every known category in catalog order
var AllCategories = []ProductCategory{
	CategoryGarages,
	CategoryGazebos,
	CategoryPorches,
	CategoryOakBeams,
	CategoryOakFlooring,
	CategorySpecialDeals,
}

// ParseProductCategory normalizes a raw category string and reports whether it is known
func ParseProductCategory(raw string) (ProductCategory, bool) {
	c := ProductCategory(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range AllCategories {
		if c == known {
			return c, true
		}
	}
	return c, false
}

// IsStructural reports whether shipping is bundled into the price of the category
// Garages, gazebos and porches are delivered and erected by the workshop.
func (c ProductCategory) IsStructural() bool {
	switch c {
	case CategoryGarages, CategoryGazebos, CategoryPorches:
		return true
	}
	return false
}

// CalculationStrategy selects the pricing formula applied to a category
type CalculationStrategy string

const (
	StrategyFixed        CalculationStrategy = "fixed"
	StrategyConfigurable CalculationStrategy = "configurable"
	StrategyVolume       CalculationStrategy = "volume"
	StrategyArea         CalculationStrategy = "area"
)
