package configurator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"oakframe-configurator/models"
	"oakframe-configurator/utils"
)

// GenerateConfigurationDescription renders a one-line summary of a configuration
// The same category and state always produce the same text. Basket lines use it as their name;
// an empty result means the catalog name should be kept.
func GenerateConfigurationDescription(category models.ProductCategory, state models.ConfigState) string {
	switch category {
	case models.CategoryGarages:
		return describeGarage(state)
	case models.CategoryGazebos:
		return describeGazebo(state)
	case models.CategoryPorches:
		return describePorch(state)
	case models.CategoryOakBeams:
		return describeBeam(state)
	case models.CategoryOakFlooring:
		return describeFlooring(state)
	}
	return ""
}

func describeGarage(state models.ConfigState) string {
	bays := int(math.Floor(state.FirstNumber("bays", 1)))
	if bays < 1 {
		bays = 1
	}
	var extras []string
	if state.Bool("catSlide") {
		extras = append(extras, "cat slide roof")
	}
	if state.Text("baySize", "standard") == "large" {
		extras = append(extras, "large bays")
	}
	extras = append(extras,
		state.Text("beamSize", "6x6")+" beams",
		state.Text("trussType", "straight")+" trusses",
	)
	return fmt.Sprintf("%d bay oak frame garage with %s", bays, strings.Join(extras, ", "))
}

func describeGazebo(state models.ConfigState) string {
	size := capitalize(state.Text("size", "medium"))
	parts := []string{state.Text("roofStyle", "pyramid") + " roof"}

	sides := int(math.Floor(state.FirstNumber("sides", 0)))
	switch {
	case sides <= 0:
		parts = append(parts, "open sides")
	case sides == 1:
		parts = append(parts, "1 enclosed side")
	default:
		if sides > 4 {
			sides = 4
		}
		parts = append(parts, fmt.Sprintf("%d enclosed sides", sides))
	}
	if state.Bool("floor") {
		parts = append(parts, "oak floor")
	}
	if state.Text("legType", "floor") == "wall" {
		parts = append(parts, "wall mounted")
	}
	return fmt.Sprintf("%s oak gazebo with %s", size, strings.Join(parts, ", "))
}

func describePorch(state models.ConfigState) string {
	size := capitalize(state.Text("sizeType", "standard"))
	legs := porchConfig.Options[0].ChoiceLabel(state.Text("legType", "wall"))
	roof := porchConfig.Options[2].ChoiceLabel(state.Text("roofType", "gable"))
	return fmt.Sprintf("%s oak porch with %s, %s", size, legs, roof)
}

func describeBeam(state models.ConfigState) string {
	d := state.Dimensions("dimensions", models.Dimensions{Length: 200, Width: 15, Thickness: 15})
	oak := capitalize(state.Text("oakType", "green"))
	return fmt.Sprintf("%s oak beam %s x %s x %s cm (%s m³)",
		oak, formatNumber(d.Length), formatNumber(d.Width), formatNumber(d.Thickness),
		utils.FormatQuantity(d.VolumeM3(), 3))
}

func describeFlooring(state models.ConfigState) string {
	area := state.Area("area", models.AreaMeasurement{}).SquareMetres()
	var grade string
	if FlooringVariant(state) == VariantOakType {
		grade = state.Text("oakType", "kilned")
	} else {
		grade = state.Text("flooringType", "engineered")
	}
	desc := fmt.Sprintf("%s m² %s oak flooring", utils.FormatQuantity(area, 2), grade)
	if finish := state.Text("finish", ""); finish != "" {
		desc += ", " + finish + " finish"
	}
	return desc
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
