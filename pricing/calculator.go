package pricing

import (
	"fmt"
	"math"

	"oakframe-configurator/configurator"
	"oakframe-configurator/models"
	"oakframe-configurator/utils"
)

// Calculator prices configured products against a Schedule
// Every method is pure and total: malformed or missing options fall back to defaults
// and no input makes it fail or return a negative price.
type Calculator struct {
	schedule *Schedule
}

// NewCalculator creates a calculator, using the default schedule when none is given
func NewCalculator(schedule *Schedule) *Calculator {
	if schedule == nil {
		schedule = DefaultSchedule()
	}
	return &Calculator{schedule: schedule}
}

// Schedule returns the price list the calculator was built with
func (c *Calculator) Schedule() *Schedule {
	return c.schedule
}

// StrategyFor returns the calculation strategy of a category
func StrategyFor(category models.ProductCategory) models.CalculationStrategy {
	return configurator.GetCategoryConfig(category).Strategy
}

// FlooringSubStrategy names the flooring schedule a state is priced with
func FlooringSubStrategy(state models.ConfigState) string {
	return configurator.FlooringVariant(state)
}

// CalculateProductPrice returns the unit price of a configured product in pounds
// Fixed-price categories return 0: their catalog price applies instead.
func (c *Calculator) CalculateProductPrice(category models.ProductCategory, state models.ConfigState) float64 {
	var total float64
	for _, line := range c.lines(category, state) {
		total += line.Amount
	}
	switch StrategyFor(category) {
	case models.StrategyVolume, models.StrategyArea:
		total = math.Round(total)
	}
	if math.IsNaN(total) || math.IsInf(total, 0) || total < 0 {
		return 0
	}
	return total
}

// Breakdown returns the labelled contributions to a configured price, rounded to pence
func (c *Calculator) Breakdown(category models.ProductCategory, state models.ConfigState) []models.PriceLine {
	lines := c.lines(category, state)
	for i := range lines {
		lines[i].Amount = math.Round(lines[i].Amount*100) / 100
	}
	return lines
}

func (c *Calculator) lines(category models.ProductCategory, state models.ConfigState) []models.PriceLine {
	switch category {
	case models.CategoryGarages:
		return c.garageLines(state)
	case models.CategoryGazebos:
		return c.gazeboLines(state)
	case models.CategoryPorches:
		return c.porchLines(state)
	case models.CategoryOakBeams:
		return c.beamLines(state)
	case models.CategoryOakFlooring:
		return c.flooringLines(state)
	}
	return []models.PriceLine{}
}

func (c *Calculator) garageLines(state models.ConfigState) []models.PriceLine {
	rates := c.schedule.Garage
	bays := math.Floor(state.FirstNumber("bays", 1))
	if bays < 1 {
		bays = 1
	}

	lines := []models.PriceLine{{Label: "First bay", Amount: rates.FirstBay}}
	if bays > 1 {
		lines = append(lines, models.PriceLine{
			Label:  fmt.Sprintf("Additional bays (%g)", bays-1),
			Amount: rates.AdditionalBay * (bays - 1),
		})
	}
	if state.Bool("catSlide") {
		lines = append(lines, models.PriceLine{
			Label:  fmt.Sprintf("Cat slide roof (%g bays)", bays),
			Amount: rates.CatSlidePerBay * bays,
		})
	}
	beamSize := state.Text("beamSize", "6x6")
	if surcharge := rates.BeamSize[beamSize]; surcharge != 0 {
		lines = append(lines, models.PriceLine{Label: beamSize + " beams", Amount: surcharge})
	}
	if state.Text("baySize", "standard") == "large" {
		lines = append(lines, models.PriceLine{
			Label:  fmt.Sprintf("Large bays (%g bays)", bays),
			Amount: rates.LargeBayPerBay * bays,
		})
	}
	return lines
}

func (c *Calculator) gazeboLines(state models.ConfigState) []models.PriceLine {
	rates := c.schedule.Gazebo
	lines := []models.PriceLine{{Label: "Gazebo frame", Amount: rates.Base}}

	size := state.Text("size", "medium")
	if adj := rates.Size[size]; adj != 0 {
		lines = append(lines, models.PriceLine{Label: "Size: " + size, Amount: adj})
	}
	if state.Text("roofStyle", "pyramid") == "hipped" {
		lines = append(lines, models.PriceLine{Label: "Hipped roof", Amount: rates.HippedRoof})
	}
	sides := math.Floor(state.FirstNumber("sides", 0))
	sides = math.Max(0, math.Min(sides, float64(rates.MaxSides)))
	if sides > 0 {
		lines = append(lines, models.PriceLine{
			Label:  fmt.Sprintf("Enclosed sides (%g)", sides),
			Amount: rates.PerSide * sides,
		})
	}
	if state.Bool("floor") {
		lines = append(lines, models.PriceLine{Label: "Oak floor", Amount: rates.FloorOption})
	}
	return lines
}

func (c *Calculator) porchLines(state models.ConfigState) []models.PriceLine {
	rates := c.schedule.Porch
	lines := []models.PriceLine{{Label: "Porch frame", Amount: rates.Base}}
	if state.Text("legType", "wall") == "floor" {
		lines = append(lines, models.PriceLine{Label: "Floor standing legs", Amount: rates.FloorLeg})
	}
	sizeType := state.Text("sizeType", "standard")
	if adj := rates.SizeType[sizeType]; adj != 0 {
		lines = append(lines, models.PriceLine{Label: "Width: " + sizeType, Amount: adj})
	}
	return lines
}

func (c *Calculator) beamLines(state models.ConfigState) []models.PriceLine {
	rates := c.schedule.Beams
	d := state.Dimensions("dimensions", models.Dimensions{Length: 200, Width: 15, Thickness: 15})
	volume := d.VolumeM3()

	oakType, unit := lookup(rates.UnitPricePerM3, state.Text("oakType", rates.DefaultOakType), rates.DefaultOakType)
	return []models.PriceLine{{
		Label:  fmt.Sprintf("%s m³ %s oak at %s/m³", utils.FormatQuantity(volume, 3), oakType, utils.FormatGBP(unit)),
		Amount: volume * unit,
	}}
}

func (c *Calculator) flooringLines(state models.ConfigState) []models.PriceLine {
	rates := c.schedule.Flooring
	area := state.Area("area", models.AreaMeasurement{}).SquareMetres()

	var grade string
	var unit float64
	if FlooringSubStrategy(state) == configurator.VariantOakType {
		grade, unit = lookup(rates.OakType, state.Text("oakType", rates.DefaultOakType), rates.DefaultOakType)
	} else {
		grade, unit = lookup(rates.FlooringType, state.Text("flooringType", rates.DefaultFlooringType), rates.DefaultFlooringType)
	}

	lines := []models.PriceLine{{
		Label:  fmt.Sprintf("%s m² %s oak at %s/m²", utils.FormatQuantity(area, 2), grade, utils.FormatGBP(unit)),
		Amount: area * unit,
	}}
	finish := state.Text("finish", "natural")
	if surcharge := rates.FinishPerM2[finish]; surcharge > 0 && area > 0 {
		lines = append(lines, models.PriceLine{
			Label:  fmt.Sprintf("%s finish at %s/m²", finish, utils.FormatGBP(surcharge)),
			Amount: area * surcharge,
		})
	}
	return lines
}

func lookup(table map[string]float64, key, def string) (string, float64) {
	if price, ok := table[key]; ok {
		return key, price
	}
	return def, table[def]
}
