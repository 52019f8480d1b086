package models

import (
	"math"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// ConfigState maps option ids to the currently selected values
// Its shape depends on the category schema and is never trusted: every accessor
// falls back to the supplied default when a value is missing or malformed.
type ConfigState map[string]any

// IsEmpty reports whether the state carries no configuration at all
func (s ConfigState) IsEmpty() bool {
	return len(s) == 0
}

// Has reports whether the option id is present with a non-nil value
func (s ConfigState) Has(id string) bool {
	if s == nil {
		return false
	}
	v, ok := s[id]
	return ok && v != nil
}

// Text returns the trimmed string value of an option
func (s ConfigState) Text(id, def string) string {
	if !s.Has(id) {
		return def
	}
	str, err := cast.ToStringE(s[id])
	if err != nil {
		return def
	}
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}
	return str
}

// Number returns the numeric value of an option
func (s ConfigState) Number(id string, def float64) float64 {
	if !s.Has(id) {
		return def
	}
	return toFinite(s[id], def)
}

// FirstNumber reads a numeric option stored either as a scalar or as a single-element array
// Range sliders post their value as [n].
func (s ConfigState) FirstNumber(id string, def float64) float64 {
	if !s.Has(id) {
		return def
	}
	v := reflect.ValueOf(s[id])
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		if v.Len() == 0 {
			return def
		}
		return toFinite(v.Index(0).Interface(), def)
	}
	return toFinite(s[id], def)
}

// Bool returns the boolean value of an option, false when missing or malformed
func (s ConfigState) Bool(id string) bool {
	if !s.Has(id) {
		return false
	}
	b, err := cast.ToBoolE(s[id])
	if err != nil {
		return false
	}
	return b
}

// Dimensions decodes a {length, width, thickness} record
func (s ConfigState) Dimensions(id string, def Dimensions) Dimensions {
	if !s.Has(id) {
		return def
	}
	switch v := s[id].(type) {
	case Dimensions:
		return v
	case *Dimensions:
		if v != nil {
			return *v
		}
		return def
	}
	out := def
	if err := mapstructure.WeakDecode(s[id], &out); err != nil {
		return def
	}
	out.Length = finiteOr(out.Length, def.Length)
	out.Width = finiteOr(out.Width, def.Width)
	out.Thickness = finiteOr(out.Thickness, def.Thickness)
	return out
}

// Area decodes a {length, width, area} record
func (s ConfigState) Area(id string, def AreaMeasurement) AreaMeasurement {
	if !s.Has(id) {
		return def
	}
	switch v := s[id].(type) {
	case AreaMeasurement:
		return v
	case *AreaMeasurement:
		if v != nil {
			return *v
		}
		return def
	}
	out := def
	if err := mapstructure.WeakDecode(s[id], &out); err != nil {
		return def
	}
	out.Length = finiteOr(out.Length, def.Length)
	out.Width = finiteOr(out.Width, def.Width)
	out.Area = finiteOr(out.Area, def.Area)
	return out
}

// Clone returns a deep copy of the state
func (s ConfigState) Clone() ConfigState {
	if s == nil {
		return nil
	}
	out := make(ConfigState, len(s))
	for k, v := range s {
		out[k] = deepCopy(v)
	}
	return out
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, inner := range t {
			m[k] = deepCopy(inner)
		}
		return m
	case ConfigState:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = deepCopy(inner)
		}
		return out
	case []float64:
		return append([]float64(nil), t...)
	case []int:
		return append([]int(nil), t...)
	case *Dimensions:
		if t == nil {
			return nil
		}
		c := *t
		return &c
	case *AreaMeasurement:
		if t == nil {
			return nil
		}
		c := *t
		return &c
	}
	return v
}

func toFinite(v any, def float64) float64 {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return def
	}
	return finiteOr(f, def)
}

func finiteOr(f, def float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}
