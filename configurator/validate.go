package configurator

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"

	"oakframe-configurator/models"
)

// Validate checks a state against the schema of its category before it is priced
// Option ids the schema does not know are ignored; everything else must have the
// right kind, stay inside its bounds and measure something positive.
func Validate(category models.ProductCategory, state models.ConfigState) error {
	cfg := ConfigFor(category, state)
	for _, option := range cfg.Options {
		if !state.Has(option.ID) {
			continue
		}
		if err := validateOption(option, state[option.ID]); err != nil {
			return fmt.Errorf("%w: %s", models.ErrInvalidConfiguration, err.Error())
		}
	}
	return nil
}

func validateOption(option models.ConfigOption, value any) error {
	switch option.Kind {
	case models.OptionSelect, models.OptionRadio:
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s must be one of %s", option.Label, choiceList(option))
		}
		if !option.HasChoice(strings.TrimSpace(str)) {
			return fmt.Errorf("%s must be one of %s", option.Label, choiceList(option))
		}
	case models.OptionSlider:
		n, ok := sliderValue(value)
		if !ok {
			return fmt.Errorf("%s must be a number", option.Label)
		}
		if n < option.Min || (option.Max > option.Min && n > option.Max) {
			return fmt.Errorf("%s must be between %g and %g", option.Label, option.Min, option.Max)
		}
	case models.OptionCheckbox:
		if _, err := cast.ToBoolE(value); err != nil {
			return fmt.Errorf("%s must be true or false", option.Label)
		}
	case models.OptionDimensions:
		var d models.Dimensions
		if err := decodeRecord(value, &d); err != nil {
			return fmt.Errorf("%s must have length, width and thickness", option.Label)
		}
		fields := []struct {
			name  string
			value float64
		}{{"length", d.Length}, {"width", d.Width}, {"thickness", d.Thickness}}
		for _, f := range fields {
			if !(f.value > 0) || math.IsInf(f.value, 0) {
				return fmt.Errorf("%s %s must be greater than 0", option.Label, f.name)
			}
			if option.Max > 0 && f.value > option.Max {
				return fmt.Errorf("%s %s cannot exceed %g%s", option.Label, f.name, option.Max, option.Unit)
			}
		}
	case models.OptionArea:
		var a models.AreaMeasurement
		if err := decodeRecord(value, &a); err != nil {
			return fmt.Errorf("%s must have length and width or an area", option.Label)
		}
		if a.Length < 0 || a.Width < 0 || a.Area < 0 {
			return fmt.Errorf("%s cannot be negative", option.Label)
		}
		if !(a.SquareMetres() > 0) {
			return fmt.Errorf("%s must be greater than 0", option.Label)
		}
		if option.Max > 0 && a.SquareMetres() > option.Max {
			return fmt.Errorf("%s cannot exceed %g m²", option.Label, option.Max)
		}
	}
	return nil
}

func sliderValue(value any) (float64, bool) {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		if v.Len() != 1 {
			return 0, false
		}
		value = v.Index(0).Interface()
	}
	if _, isBool := value.(bool); isBool {
		return 0, false
	}
	n, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func decodeRecord(value any, out any) error {
	switch v := value.(type) {
	case models.Dimensions, models.AreaMeasurement, *models.Dimensions, *models.AreaMeasurement:
		return mapstructure.Decode(structToMap(v), out)
	case map[string]any, models.ConfigState:
		return mapstructure.WeakDecode(v, out)
	}
	return fmt.Errorf("unsupported record %T", value)
}

func structToMap(v any) map[string]any {
	switch t := v.(type) {
	case models.Dimensions:
		return map[string]any{"length": t.Length, "width": t.Width, "thickness": t.Thickness}
	case *models.Dimensions:
		if t == nil {
			return nil
		}
		return structToMap(*t)
	case models.AreaMeasurement:
		return map[string]any{"length": t.Length, "width": t.Width, "area": t.Area}
	case *models.AreaMeasurement:
		if t == nil {
			return nil
		}
		return structToMap(*t)
	}
	return nil
}

func choiceList(option models.ConfigOption) string {
	values := make([]string, 0, len(option.Choices))
	for _, c := range option.Choices {
		values = append(values, c.Value)
	}
	return strings.Join(values, ", ")
}
