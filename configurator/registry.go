// Package configurator holds the option schemas of every product category and the pure
// helpers built on them: defaults, boundary validation, descriptions and equality.
package configurator

import (
	"oakframe-configurator/models"
)

// Oak flooring ships two configurator screens with different option sets.
const (
	VariantFlooringType = "flooring-type"
	VariantOakType      = "oak-type"
)

var (
	garageConfig = models.CategoryConfig{
		Category:    models.CategoryGarages,
		Title:       "Oak Frame Garages",
		Description: "Traditional pegged oak frame garages, built to order from one to six bays.",
		Strategy:    models.StrategyConfigurable,
		Options: []models.ConfigOption{
			{ID: "bays", Label: "Number of bays", Kind: models.OptionSlider, Default: []int{1}, Min: 1, Max: 6, Step: 1},
			{ID: "baySize", Label: "Bay size", Kind: models.OptionRadio, Default: "standard", Choices: []models.OptionChoice{
				{Value: "standard", Label: "Standard bays"},
				{Value: "large", Label: "Large bays", PriceDelta: 300},
			}},
			{ID: "beamSize", Label: "Beam size", Kind: models.OptionSelect, Default: "6x6", Choices: []models.OptionChoice{
				{Value: "6x6", Label: "6x6"},
				{Value: "7x7", Label: "7x7", PriceDelta: 200},
				{Value: "8x8", Label: "8x8", PriceDelta: 450},
			}},
			{ID: "catSlide", Label: "Cat slide roof", Kind: models.OptionCheckbox, Default: false},
			{ID: "trussType", Label: "Truss type", Kind: models.OptionSelect, Default: "straight", Choices: []models.OptionChoice{
				{Value: "straight", Label: "straight"},
				{Value: "curved", Label: "curved"},
			}},
		},
	}

	gazeboConfig = models.CategoryConfig{
		Category:    models.CategoryGazebos,
		Title:       "Oak Gazebos",
		Description: "Free standing or wall mounted oak gazebos with optional enclosed sides and floor.",
		Strategy:    models.StrategyConfigurable,
		Options: []models.ConfigOption{
			{ID: "size", Label: "Size", Kind: models.OptionSelect, Default: "medium", Choices: []models.OptionChoice{
				{Value: "small", Label: "Small", PriceDelta: -500},
				{Value: "medium", Label: "Medium"},
				{Value: "large", Label: "Large", PriceDelta: 800},
			}},
			{ID: "roofStyle", Label: "Roof style", Kind: models.OptionRadio, Default: "pyramid", Choices: []models.OptionChoice{
				{Value: "pyramid", Label: "pyramid"},
				{Value: "hipped", Label: "hipped", PriceDelta: 300},
			}},
			{ID: "sides", Label: "Enclosed sides", Kind: models.OptionSlider, Default: 0, Min: 0, Max: 4, Step: 1},
			{ID: "floor", Label: "Oak floor", Kind: models.OptionCheckbox, Default: false},
			{ID: "legType", Label: "Leg type", Kind: models.OptionRadio, Default: "floor", Choices: []models.OptionChoice{
				{Value: "floor", Label: "floor standing"},
				{Value: "wall", Label: "wall mounted"},
			}},
		},
	}

	porchConfig = models.CategoryConfig{
		Category:    models.CategoryPorches,
		Title:       "Oak Porches",
		Description: "Oak porch canopies, wall mounted or on floor standing legs.",
		Strategy:    models.StrategyConfigurable,
		Options: []models.ConfigOption{
			{ID: "legType", Label: "Leg type", Kind: models.OptionRadio, Default: "wall", Choices: []models.OptionChoice{
				{Value: "wall", Label: "wall mounted legs"},
				{Value: "floor", Label: "floor standing legs", PriceDelta: 150},
			}},
			{ID: "sizeType", Label: "Width", Kind: models.OptionSelect, Default: "standard", Choices: []models.OptionChoice{
				{Value: "narrow", Label: "Narrow", PriceDelta: -200},
				{Value: "standard", Label: "Standard"},
				{Value: "wide", Label: "Wide", PriceDelta: 400},
			}},
			{ID: "roofType", Label: "Roof", Kind: models.OptionSelect, Default: "gable", Choices: []models.OptionChoice{
				{Value: "gable", Label: "gable roof"},
				{Value: "lean-to", Label: "lean-to roof"},
			}},
		},
	}

	beamConfig = models.CategoryConfig{
		Category:    models.CategoryOakBeams,
		Title:       "Oak Beams",
		Description: "Structural and decorative oak beams cut to size, priced by volume.",
		Strategy:    models.StrategyVolume,
		Options: []models.ConfigOption{
			{ID: "dimensions", Label: "Dimensions", Kind: models.OptionDimensions, Unit: "cm", Min: 1, Max: 1200,
				Default: models.Dimensions{Length: 200, Width: 15, Thickness: 15}},
			{ID: "oakType", Label: "Oak type", Kind: models.OptionSelect, Default: "green", Choices: []models.OptionChoice{
				{Value: "reclaimed", Label: "Reclaimed"},
				{Value: "kilned", Label: "Kilned"},
				{Value: "green", Label: "Green"},
			}},
		},
	}

	// both flooring schedules charge the same finish surcharge
	flooringFinishOption = models.ConfigOption{ID: "finish", Label: "Finish", Kind: models.OptionSelect, Default: "natural", Choices: []models.OptionChoice{
		{Value: "lacquered", Label: "lacquered", PriceDelta: 5},
		{Value: "oiled", Label: "oiled", PriceDelta: 7},
		{Value: "natural", Label: "natural"},
	}}

	flooringConfig = models.CategoryConfig{
		Category:    models.CategoryOakFlooring,
		Variant:     VariantFlooringType,
		Title:       "Oak Flooring",
		Description: "Solid and engineered oak flooring, priced per square metre.",
		Strategy:    models.StrategyArea,
		Options: []models.ConfigOption{
			{ID: "area", Label: "Floor area", Kind: models.OptionArea, Unit: "m²", Max: 1000,
				Default: models.AreaMeasurement{Length: 500, Width: 400}},
			{ID: "flooringType", Label: "Flooring type", Kind: models.OptionSelect, Default: "engineered", Choices: []models.OptionChoice{
				{Value: "solid", Label: "solid"},
				{Value: "engineered", Label: "engineered"},
			}},
			flooringFinishOption,
		},
	}

	flooringOakTypeConfig = models.CategoryConfig{
		Category:    models.CategoryOakFlooring,
		Variant:     VariantOakType,
		Title:       "Oak Flooring by Grade",
		Description: "Reclaimed and kilned oak boards, priced per square metre.",
		Strategy:    models.StrategyArea,
		Options: []models.ConfigOption{
			{ID: "area", Label: "Floor area", Kind: models.OptionArea, Unit: "m²", Max: 1000,
				Default: models.AreaMeasurement{Length: 500, Width: 400}},
			{ID: "oakType", Label: "Oak type", Kind: models.OptionSelect, Default: "kilned", Choices: []models.OptionChoice{
				{Value: "reclaimed", Label: "reclaimed"},
				{Value: "kilned", Label: "kilned"},
			}},
			flooringFinishOption,
		},
	}

	specialDealsConfig = models.CategoryConfig{
		Category:    models.CategorySpecialDeals,
		Title:       "Special Deals",
		Description: "Fixed price offers, no configuration required.",
		Strategy:    models.StrategyFixed,
		Options:     []models.ConfigOption{},
	}
)

// GetCategoryConfig returns the primary configurator schema of a category
// Unknown categories get an empty fixed-price schema with nothing configurable.
func GetCategoryConfig(category models.ProductCategory) models.CategoryConfig {
	switch category {
	case models.CategoryGarages:
		return garageConfig
	case models.CategoryGazebos:
		return gazeboConfig
	case models.CategoryPorches:
		return porchConfig
	case models.CategoryOakBeams:
		return beamConfig
	case models.CategoryOakFlooring:
		return flooringConfig
	case models.CategorySpecialDeals:
		return specialDealsConfig
	}
	return models.CategoryConfig{
		Category: category,
		Options:  []models.ConfigOption{},
		Strategy: models.StrategyFixed,
	}
}

// GetCategoryConfigVariant returns a named alternate schema, or the primary one
func GetCategoryConfigVariant(category models.ProductCategory, variant string) models.CategoryConfig {
	if category == models.CategoryOakFlooring && variant == VariantOakType {
		return flooringOakTypeConfig
	}
	return GetCategoryConfig(category)
}

// ConfigFor picks the schema matching the option set actually present in a state
func ConfigFor(category models.ProductCategory, state models.ConfigState) models.CategoryConfig {
	if category == models.CategoryOakFlooring {
		return GetCategoryConfigVariant(category, FlooringVariant(state))
	}
	return GetCategoryConfig(category)
}

// FlooringVariant reports which flooring sub-strategy a state was built with
// A flooringType option selects the primary schedule even when oakType is also present.
func FlooringVariant(state models.ConfigState) string {
	if !state.Has("flooringType") && state.Has("oakType") {
		return VariantOakType
	}
	return VariantFlooringType
}

// GetDefaultConfiguration builds a state from every option's default value
func GetDefaultConfiguration(category models.ProductCategory) models.ConfigState {
	return DefaultsFor(GetCategoryConfig(category))
}

// DefaultsFor builds the default state of a schema
func DefaultsFor(cfg models.CategoryConfig) models.ConfigState {
	state := make(models.ConfigState, len(cfg.Options))
	for _, option := range cfg.Options {
		state[option.ID] = option.Default
	}
	return state.Clone()
}
