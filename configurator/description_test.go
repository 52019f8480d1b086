package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oakframe-configurator/models"
)

func TestGenerateConfigurationDescription(t *testing.T) {
	tests := []struct {
		name     string
		category models.ProductCategory
		state    models.ConfigState
		want     string
	}{
		{
			name:     "garage with extras",
			category: models.CategoryGarages,
			state:    models.ConfigState{"bays": []any{2.0}, "catSlide": true, "beamSize": "7x7", "trussType": "curved"},
			want:     "2 bay oak frame garage with cat slide roof, 7x7 beams, curved trusses",
		},
		{
			name:     "garage defaults",
			category: models.CategoryGarages,
			state:    nil,
			want:     "1 bay oak frame garage with 6x6 beams, straight trusses",
		},
		{
			name:     "garage large bays",
			category: models.CategoryGarages,
			state:    models.ConfigState{"bays": []int{3}, "baySize": "large", "beamSize": "8x8"},
			want:     "3 bay oak frame garage with large bays, 8x8 beams, straight trusses",
		},
		{
			name:     "gazebo enclosed",
			category: models.CategoryGazebos,
			state:    models.ConfigState{"size": "large", "roofStyle": "hipped", "sides": 2, "floor": true},
			want:     "Large oak gazebo with hipped roof, 2 enclosed sides, oak floor",
		},
		{
			name:     "gazebo open wall mounted",
			category: models.CategoryGazebos,
			state:    models.ConfigState{"size": "small", "legType": "wall"},
			want:     "Small oak gazebo with pyramid roof, open sides, wall mounted",
		},
		{
			name:     "porch",
			category: models.CategoryPorches,
			state:    models.ConfigState{"legType": "floor"},
			want:     "Standard oak porch with floor standing legs, gable roof",
		},
		{
			name:     "beam",
			category: models.CategoryOakBeams,
			state:    models.ConfigState{"dimensions": map[string]any{"length": 200, "width": 15, "thickness": 15}, "oakType": "green"},
			want:     "Green oak beam 200 x 15 x 15 cm (0.045 m³)",
		},
		{
			name:     "flooring type",
			category: models.CategoryOakFlooring,
			state:    models.ConfigState{"area": map[string]any{"area": 25}, "flooringType": "engineered", "finish": "oiled"},
			want:     "25 m² engineered oak flooring, oiled finish",
		},
		{
			name:     "flooring oak type",
			category: models.CategoryOakFlooring,
			state:    models.ConfigState{"area": models.AreaMeasurement{Length: 500, Width: 500}, "oakType": "kilned"},
			want:     "25 m² kilned oak flooring",
		},
		{
			name:     "special deals",
			category: models.CategorySpecialDeals,
			state:    nil,
			want:     "",
		},
		{
			name:     "unknown category",
			category: "sheds",
			state:    models.ConfigState{"size": "large"},
			want:     "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateConfigurationDescription(tt.category, tt.state))
		})
	}
}

func TestGenerateConfigurationDescription_Stable(t *testing.T) {
	state := models.ConfigState{"size": "medium", "roofStyle": "pyramid", "sides": 4, "floor": true}
	first := GenerateConfigurationDescription(models.CategoryGazebos, state)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, GenerateConfigurationDescription(models.CategoryGazebos, state))
	}
}
