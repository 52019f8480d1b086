package models

import "math"

// OptionKind is the kind of control a configurator option is rendered as
type OptionKind string

const (
	OptionSelect     OptionKind = "select"
	OptionSlider     OptionKind = "slider"
	OptionRadio      OptionKind = "radio"
	OptionCheckbox   OptionKind = "checkbox"
	OptionDimensions OptionKind = "dimensions"
	OptionArea       OptionKind = "area"
)

// OptionChoice is one enumerated value of a select or radio option
type OptionChoice struct {
	Value      string  `json:"value"`
	Label      string  `json:"label"`
	PriceDelta float64 `json:"priceDelta,omitempty"` // informative only, the calculator owns prices
}

// ConfigOption describes a single selectable option of a category
// Choices apply to select/radio, Min/Max/Step to slider and to every field of dimensions/area.
type ConfigOption struct {
	ID      string         `json:"id"`
	Label   string         `json:"label"`
	Kind    OptionKind     `json:"kind"`
	Default any            `json:"default"`
	Choices []OptionChoice `json:"choices,omitempty"`
	Min     float64        `json:"min,omitempty"`
	Max     float64        `json:"max,omitempty"`
	Step    float64        `json:"step,omitempty"`
	Unit    string         `json:"unit,omitempty"`
}

// HasChoice reports whether value is one of the enumerated choices
func (o ConfigOption) HasChoice(value string) bool {
	for _, c := range o.Choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

// ChoiceLabel returns the display label of a choice, or the value itself
func (o ConfigOption) ChoiceLabel(value string) string {
	for _, c := range o.Choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// CategoryConfig is the declarative configurator schema of a category
type CategoryConfig struct {
	Category    ProductCategory     `json:"category"`
	Variant     string              `json:"variant,omitempty"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Options     []ConfigOption      `json:"options"`
	Strategy    CalculationStrategy `json:"strategy"`
}

// Option looks up an option by id
func (c CategoryConfig) Option(id string) (ConfigOption, bool) {
	for _, o := range c.Options {
		if o.ID == id {
			return o, true
		}
	}
	return ConfigOption{}, false
}

// Dimensions is the value of a dimensions option, in centimetres
type Dimensions struct {
	Length    float64 `json:"length" mapstructure:"length"`
	Width     float64 `json:"width" mapstructure:"width"`
	Thickness float64 `json:"thickness" mapstructure:"thickness"`
}

// VolumeM3 returns the volume in cubic metres, never negative
func (d Dimensions) VolumeM3() float64 {
	return nonNegative(d.Length/100) * nonNegative(d.Width/100) * nonNegative(d.Thickness/100)
}

// AreaMeasurement is the value of an area option
// Length and Width are centimetres, Area is square metres and wins when positive.
type AreaMeasurement struct {
	Length float64 `json:"length" mapstructure:"length"`
	Width  float64 `json:"width" mapstructure:"width"`
	Area   float64 `json:"area" mapstructure:"area"`
}

// SquareMetres returns the measured area, never negative
func (a AreaMeasurement) SquareMetres() float64 {
	if a.Area > 0 {
		return nonNegative(a.Area)
	}
	return nonNegative(a.Length/100) * nonNegative(a.Width/100)
}

func nonNegative(v float64) float64 {
	if v > 0 && !math.IsInf(v, 1) {
		return v
	}
	return 0
}

// CategoryConfigResponse is the configurator schema of a category together with its default state
type CategoryConfigResponse struct {
	Config   CategoryConfig `json:"config"`
	Defaults ConfigState    `json:"defaults"`
}
