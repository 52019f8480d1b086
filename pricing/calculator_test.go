package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oakframe-configurator/configurator"
	"oakframe-configurator/models"
)

func TestCalculateProductPrice_Scenarios(t *testing.T) {
	calc := NewCalculator(nil)

	tests := []struct {
		name     string
		category models.ProductCategory
		state    models.ConfigState
		want     float64
	}{
		{
			name:     "three bay garage fully loaded",
			category: models.CategoryGarages,
			state:    models.ConfigState{"bays": []any{3.0}, "beamSize": "8x8", "baySize": "large", "catSlide": true},
			want:     8000 + 2*1500 + 450 + 3*300 + 3*150,
		},
		{
			name:     "single bay garage defaults",
			category: models.CategoryGarages,
			state:    configurator.GetDefaultConfiguration(models.CategoryGarages),
			want:     8000,
		},
		{
			name:     "green oak beam",
			category: models.CategoryOakBeams,
			state:    models.ConfigState{"dimensions": map[string]any{"length": 200, "width": 15, "thickness": 15}, "oakType": "green"},
			want:     36,
		},
		{
			name:     "reclaimed oak beam",
			category: models.CategoryOakBeams,
			state:    models.ConfigState{"dimensions": models.Dimensions{Length: 300, Width: 20, Thickness: 20}, "oakType": "reclaimed"},
			want:     144,
		},
		{
			name:     "engineered flooring oiled",
			category: models.CategoryOakFlooring,
			state:    models.ConfigState{"area": map[string]any{"area": 25}, "flooringType": "engineered", "finish": "oiled"},
			want:     1800,
		},
		{
			name:     "flooring from length and width",
			category: models.CategoryOakFlooring,
			state:    models.ConfigState{"area": map[string]any{"length": 500, "width": 400}, "flooringType": "solid"},
			want:     1500,
		},
		{
			name:     "oak type flooring",
			category: models.CategoryOakFlooring,
			state:    models.ConfigState{"area": models.AreaMeasurement{Area: 10}, "oakType": "reclaimed"},
			want:     900,
		},
		{
			name:     "oak type flooring with finish",
			category: models.CategoryOakFlooring,
			state:    models.ConfigState{"area": models.AreaMeasurement{Area: 10}, "oakType": "kilned", "finish": "lacquered"},
			want:     800,
		},
		{
			name:     "gazebo everything",
			category: models.CategoryGazebos,
			state:    models.ConfigState{"size": "large", "roofStyle": "hipped", "sides": 4, "floor": true},
			want:     5000 + 800 + 300 + 4*250 + 450,
		},
		{
			name:     "small wall mounted gazebo",
			category: models.CategoryGazebos,
			state:    models.ConfigState{"size": "small", "legType": "wall"},
			want:     4500,
		},
		{
			name:     "wide floor standing porch",
			category: models.CategoryPorches,
			state:    models.ConfigState{"legType": "floor", "sizeType": "wide"},
			want:     3500 + 150 + 400,
		},
		{
			name:     "narrow porch",
			category: models.CategoryPorches,
			state:    models.ConfigState{"sizeType": "narrow"},
			want:     3300,
		},
		{
			name:     "special deals use catalog price",
			category: models.CategorySpecialDeals,
			state:    models.ConfigState{"anything": true},
			want:     0,
		},
		{
			name:     "unknown category",
			category: "sheds",
			state:    nil,
			want:     0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.CalculateProductPrice(tt.category, tt.state))
		})
	}
}

func TestCalculateProductPrice_MalformedInputDefaults(t *testing.T) {
	calc := NewCalculator(nil)

	assert.Equal(t, 8000.0, calc.CalculateProductPrice(models.CategoryGarages, models.ConfigState{"bays": "lots", "beamSize": 7, "catSlide": "nope"}))
	assert.Equal(t, 8000.0, calc.CalculateProductPrice(models.CategoryGarages, models.ConfigState{"bays": []int{}}))
	assert.Equal(t, 8000.0, calc.CalculateProductPrice(models.CategoryGarages, models.ConfigState{"bays": []int{-4}}))
	assert.Equal(t, 36.0, calc.CalculateProductPrice(models.CategoryOakBeams, models.ConfigState{"dimensions": "broken", "oakType": "bog"}))
	assert.Equal(t, 5000.0+4*250, calc.CalculateProductPrice(models.CategoryGazebos, models.ConfigState{"sides": 12}))
	assert.Equal(t, 5000.0, calc.CalculateProductPrice(models.CategoryGazebos, models.ConfigState{"sides": -3}))
	assert.Equal(t, 0.0, calc.CalculateProductPrice(models.CategoryOakFlooring, nil))
	assert.Equal(t, 0.0, calc.CalculateProductPrice(models.CategoryOakBeams, models.ConfigState{
		"dimensions": map[string]any{"length": -200, "width": -15, "thickness": 15},
	}))
}

func TestCalculateProductPrice_Monotonic(t *testing.T) {
	calc := NewCalculator(nil)

	prev := 0.0
	for bays := 1; bays <= 6; bays++ {
		price := calc.CalculateProductPrice(models.CategoryGarages, models.ConfigState{"bays": []int{bays}, "catSlide": true})
		assert.Greater(t, price, prev, "bays=%d", bays)
		prev = price
	}

	prev = 0
	for sides := 0; sides <= 4; sides++ {
		price := calc.CalculateProductPrice(models.CategoryGazebos, models.ConfigState{"sides": sides})
		assert.Greater(t, price, prev, "sides=%d", sides)
		prev = price
	}

	prev = 0
	for length := 100.0; length <= 1000; length += 100 {
		price := calc.CalculateProductPrice(models.CategoryOakBeams, models.ConfigState{
			"dimensions": models.Dimensions{Length: length, Width: 20, Thickness: 20},
		})
		assert.Greater(t, price, prev, "length=%g", length)
		prev = price
	}
}

func TestCalculateProductPrice_NeverNegative(t *testing.T) {
	schedule := DefaultSchedule()
	schedule.Gazebo.Base = 400
	schedule.Porch.Base = 100
	calc := NewCalculator(schedule)

	assert.Equal(t, 0.0, calc.CalculateProductPrice(models.CategoryGazebos, models.ConfigState{"size": "small", "legType": "wall"}))
	assert.Equal(t, 0.0, calc.CalculateProductPrice(models.CategoryPorches, models.ConfigState{"sizeType": "narrow"}))
	assert.Equal(t, 0.0, calc.CalculateProductPrice(models.CategoryGarages, models.ConfigState{"bays": []float64{1e308}, "catSlide": true}))
}

func TestCalculateProductPrice_Deterministic(t *testing.T) {
	calc := NewCalculator(nil)
	state := models.ConfigState{"area": map[string]any{"length": 333, "width": 271}, "flooringType": "solid", "finish": "lacquered"}
	first := calc.CalculateProductPrice(models.CategoryOakFlooring, state)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, calc.CalculateProductPrice(models.CategoryOakFlooring, state))
	}
}

func TestCalculateProductPrice_UsesInjectedSchedule(t *testing.T) {
	schedule := DefaultSchedule()
	schedule.Beams.UnitPricePerM3["green"] = 1000
	calc := NewCalculator(schedule)

	assert.Same(t, schedule, calc.Schedule())
	assert.Equal(t, 45.0, calc.CalculateProductPrice(models.CategoryOakBeams, configurator.GetDefaultConfiguration(models.CategoryOakBeams)))
}

func TestBreakdown(t *testing.T) {
	calc := NewCalculator(nil)
	state := models.ConfigState{"bays": []int{3}, "beamSize": "8x8", "baySize": "large", "catSlide": true}

	lines := calc.Breakdown(models.CategoryGarages, state)
	require.Len(t, lines, 5)
	assert.Equal(t, "First bay", lines[0].Label)
	assert.Equal(t, "Additional bays (2)", lines[1].Label)
	assert.Equal(t, 3000.0, lines[1].Amount)

	total := 0.0
	for _, line := range lines {
		total += line.Amount
	}
	assert.Equal(t, calc.CalculateProductPrice(models.CategoryGarages, state), total)

	floor := calc.Breakdown(models.CategoryOakFlooring, models.ConfigState{"area": map[string]any{"area": 25}, "flooringType": "engineered", "finish": "oiled"})
	require.Len(t, floor, 2)
	assert.Equal(t, "25 m² engineered oak at £65.00/m²", floor[0].Label)
	assert.Equal(t, 1625.0, floor[0].Amount)
	assert.Equal(t, "oiled finish at £7.00/m²", floor[1].Label)
	assert.Equal(t, 175.0, floor[1].Amount)

	assert.Empty(t, calc.Breakdown(models.CategorySpecialDeals, nil))
}

func TestStrategyFor(t *testing.T) {
	assert.Equal(t, models.StrategyConfigurable, StrategyFor(models.CategoryPorches))
	assert.Equal(t, models.StrategyVolume, StrategyFor(models.CategoryOakBeams))
	assert.Equal(t, models.StrategyArea, StrategyFor(models.CategoryOakFlooring))
	assert.Equal(t, models.StrategyFixed, StrategyFor(models.CategorySpecialDeals))
	assert.Equal(t, models.StrategyFixed, StrategyFor("sheds"))
}
