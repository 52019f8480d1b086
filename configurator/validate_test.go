package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oakframe-configurator/models"
)

func TestValidate_AcceptsDefaults(t *testing.T) {
	for _, category := range models.AllCategories {
		assert.NoError(t, Validate(category, GetDefaultConfiguration(category)), category)
	}
	assert.NoError(t, Validate(models.CategoryOakFlooring, DefaultsFor(flooringOakTypeConfig)))
}

func TestValidate_AcceptsDecodedJSONShapes(t *testing.T) {
	state := models.ConfigState{
		"bays":     []any{float64(3)},
		"beamSize": "8x8",
		"baySize":  "large",
		"catSlide": true,
		"unknown":  "ignored",
	}
	assert.NoError(t, Validate(models.CategoryGarages, state))

	beam := models.ConfigState{
		"dimensions": map[string]any{"length": float64(300), "width": "20", "thickness": float64(20)},
		"oakType":    "kilned",
	}
	assert.NoError(t, Validate(models.CategoryOakBeams, beam))

	floor := models.ConfigState{"area": map[string]any{"area": float64(25)}, "flooringType": "solid"}
	assert.NoError(t, Validate(models.CategoryOakFlooring, floor))

	graded := models.ConfigState{"area": map[string]any{"area": float64(10)}, "oakType": "kilned", "finish": "lacquered"}
	assert.NoError(t, Validate(models.CategoryOakFlooring, graded))
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		category models.ProductCategory
		state    models.ConfigState
		contains string
	}{
		{"unknown choice", models.CategoryGarages, models.ConfigState{"beamSize": "9x9"}, "Beam size"},
		{"choice of wrong kind", models.CategoryGazebos, models.ConfigState{"size": 3}, "Size"},
		{"slider too large", models.CategoryGarages, models.ConfigState{"bays": []int{7}}, "Number of bays"},
		{"slider too small", models.CategoryGarages, models.ConfigState{"bays": []int{0}}, "Number of bays"},
		{"slider as bool", models.CategoryGazebos, models.ConfigState{"sides": true}, "Enclosed sides"},
		{"slider with two values", models.CategoryGarages, models.ConfigState{"bays": []int{1, 2}}, "Number of bays"},
		{"checkbox not bool", models.CategoryGazebos, models.ConfigState{"floor": "maybe"}, "Oak floor"},
		{"zero dimension", models.CategoryOakBeams, models.ConfigState{"dimensions": map[string]any{"length": 0, "width": 15, "thickness": 15}}, "length"},
		{"negative dimension", models.CategoryOakBeams, models.ConfigState{"dimensions": models.Dimensions{Length: 200, Width: -15, Thickness: 15}}, "width"},
		{"oversized dimension", models.CategoryOakBeams, models.ConfigState{"dimensions": models.Dimensions{Length: 5000, Width: 15, Thickness: 15}}, "cannot exceed"},
		{"dimensions not a record", models.CategoryOakBeams, models.ConfigState{"dimensions": "200x15x15"}, "Dimensions"},
		{"zero area", models.CategoryOakFlooring, models.ConfigState{"area": map[string]any{"length": 0, "width": 0}}, "Floor area"},
		{"negative area", models.CategoryOakFlooring, models.ConfigState{"area": models.AreaMeasurement{Area: -4}}, "negative"},
		{"oak type variant choice", models.CategoryOakFlooring, models.ConfigState{"oakType": "green"}, "Oak type"},
		{"oak type variant finish", models.CategoryOakFlooring, models.ConfigState{"area": map[string]any{"area": 10}, "oakType": "kilned", "finish": "glossy"}, "Finish"},
		{"flooring type finish", models.CategoryOakFlooring, models.ConfigState{"flooringType": "solid", "finish": "glossy"}, "Finish"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.category, tt.state)
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidate_NilDimensionsPointer(t *testing.T) {
	var d *models.Dimensions
	err := Validate(models.CategoryOakBeams, models.ConfigState{"dimensions": d})
	assert.ErrorIs(t, err, models.ErrInvalidConfiguration)
}

func TestValidate_UnknownCategoryAcceptsAnything(t *testing.T) {
	assert.NoError(t, Validate("sheds", models.ConfigState{"anything": []string{"x"}}))
}
