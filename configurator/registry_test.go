package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oakframe-configurator/models"
)

func TestGetCategoryConfig_KnownCategories(t *testing.T) {
	strategies := map[models.ProductCategory]models.CalculationStrategy{
		models.CategoryGarages:      models.StrategyConfigurable,
		models.CategoryGazebos:      models.StrategyConfigurable,
		models.CategoryPorches:      models.StrategyConfigurable,
		models.CategoryOakBeams:     models.StrategyVolume,
		models.CategoryOakFlooring:  models.StrategyArea,
		models.CategorySpecialDeals: models.StrategyFixed,
	}
	for _, category := range models.AllCategories {
		cfg := GetCategoryConfig(category)
		assert.Equal(t, category, cfg.Category)
		assert.Equal(t, strategies[category], cfg.Strategy, category)
		assert.NotEmpty(t, cfg.Title, category)
	}
}

func TestGetCategoryConfig_UnknownCategory(t *testing.T) {
	cfg := GetCategoryConfig("sheds")
	assert.Empty(t, cfg.Options)
	assert.Equal(t, models.StrategyFixed, cfg.Strategy)
	assert.Empty(t, GetDefaultConfiguration("sheds"))
}

func TestGetDefaultConfiguration_CopiesEveryDefault(t *testing.T) {
	state := GetDefaultConfiguration(models.CategoryGarages)
	require.Len(t, state, len(garageConfig.Options))
	assert.Equal(t, []int{1}, state["bays"])
	assert.Equal(t, "standard", state["baySize"])
	assert.Equal(t, "6x6", state["beamSize"])
	assert.Equal(t, false, state["catSlide"])
	assert.Equal(t, "straight", state["trussType"])

	beams := GetDefaultConfiguration(models.CategoryOakBeams)
	assert.Equal(t, models.Dimensions{Length: 200, Width: 15, Thickness: 15}, beams.Dimensions("dimensions", models.Dimensions{}))
	assert.Equal(t, "green", beams["oakType"])
}

func TestGetDefaultConfiguration_ReturnsIndependentCopies(t *testing.T) {
	first := GetDefaultConfiguration(models.CategoryGarages)
	first["bays"].([]int)[0] = 5
	first["beamSize"] = "8x8"

	second := GetDefaultConfiguration(models.CategoryGarages)
	assert.Equal(t, []int{1}, second["bays"])
	assert.Equal(t, "6x6", second["beamSize"])
}

func TestGetCategoryConfigVariant(t *testing.T) {
	oak := GetCategoryConfigVariant(models.CategoryOakFlooring, VariantOakType)
	assert.Equal(t, VariantOakType, oak.Variant)
	_, hasOakType := oak.Option("oakType")
	assert.True(t, hasOakType)

	primary := GetCategoryConfigVariant(models.CategoryOakFlooring, "")
	assert.Equal(t, VariantFlooringType, primary.Variant)

	assert.Equal(t, GetCategoryConfig(models.CategoryGarages), GetCategoryConfigVariant(models.CategoryGarages, VariantOakType))
}

func TestFlooringVariant(t *testing.T) {
	tests := []struct {
		name  string
		state models.ConfigState
		want  string
	}{
		{"empty state", nil, VariantFlooringType},
		{"flooring type", models.ConfigState{"flooringType": "solid"}, VariantFlooringType},
		{"oak type only", models.ConfigState{"oakType": "reclaimed"}, VariantOakType},
		{"both present", models.ConfigState{"flooringType": "solid", "oakType": "reclaimed"}, VariantFlooringType},
		{"nil oak type", models.ConfigState{"oakType": nil}, VariantFlooringType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FlooringVariant(tt.state))
		})
	}
}
