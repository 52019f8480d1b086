package pricing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Schedule holds every unit price and surcharge used by the calculator
// It is loaded once at startup and injected into the calculator and the basket totals.
type Schedule struct {
	Currency string        `json:"currency" yaml:"currency"`
	Garage   GarageRates   `json:"garage" yaml:"garage"`
	Gazebo   GazeboRates   `json:"gazebo" yaml:"gazebo"`
	Porch    PorchRates    `json:"porch" yaml:"porch"`
	Beams    BeamRates     `json:"beams" yaml:"beams"`
	Flooring FlooringRates `json:"flooring" yaml:"flooring"`
	Totals   TotalsRates   `json:"totals" yaml:"totals"`
}

type GarageRates struct {
	FirstBay       float64            `json:"firstBay" yaml:"firstBay"`
	AdditionalBay  float64            `json:"additionalBay" yaml:"additionalBay"`
	CatSlidePerBay float64            `json:"catSlidePerBay" yaml:"catSlidePerBay"`
	LargeBayPerBay float64            `json:"largeBayPerBay" yaml:"largeBayPerBay"`
	BeamSize       map[string]float64 `json:"beamSize" yaml:"beamSize"`
}

type GazeboRates struct {
	Base        float64            `json:"base" yaml:"base"`
	Size        map[string]float64 `json:"size" yaml:"size"`
	HippedRoof  float64            `json:"hippedRoof" yaml:"hippedRoof"`
	PerSide     float64            `json:"perSide" yaml:"perSide"`
	MaxSides    int                `json:"maxSides" yaml:"maxSides"`
	FloorOption float64            `json:"floor" yaml:"floor"`
}

type PorchRates struct {
	Base     float64            `json:"base" yaml:"base"`
	FloorLeg float64            `json:"floorLeg" yaml:"floorLeg"`
	SizeType map[string]float64 `json:"sizeType" yaml:"sizeType"`
}

type BeamRates struct {
	UnitPricePerM3 map[string]float64 `json:"unitPricePerM3" yaml:"unitPricePerM3"`
	DefaultOakType string             `json:"defaultOakType" yaml:"defaultOakType"`
}

// FlooringRates carries both flooring schedules
// FlooringType prices the flooring-type configurator, OakType the oak-type one.
type FlooringRates struct {
	FlooringType        map[string]float64 `json:"flooringType" yaml:"flooringType"`
	DefaultFlooringType string             `json:"defaultFlooringType" yaml:"defaultFlooringType"`
	OakType             map[string]float64 `json:"oakType" yaml:"oakType"`
	DefaultOakType      string             `json:"defaultOakType" yaml:"defaultOakType"`
	FinishPerM2         map[string]float64 `json:"finishPerM2" yaml:"finishPerM2"`
}

type TotalsRates struct {
	VATRate               float64 `json:"vatRate" yaml:"vatRate"`
	FreeShippingThreshold float64 `json:"freeShippingThreshold" yaml:"freeShippingThreshold"`
	ShippingPerM3         float64 `json:"shippingPerM3" yaml:"shippingPerM3"`
	MinimumShipping       float64 `json:"minimumShipping" yaml:"minimumShipping"`
	BoardThicknessCM      float64 `json:"boardThicknessCm" yaml:"boardThicknessCm"`
}

// DefaultSchedule returns the standard GBP price list
func DefaultSchedule() *Schedule {
	return &Schedule{
		Currency: "GBP",
		Garage: GarageRates{
			FirstBay:       8000,
			AdditionalBay:  1500,
			CatSlidePerBay: 150,
			LargeBayPerBay: 300,
			BeamSize:       map[string]float64{"6x6": 0, "7x7": 200, "8x8": 450},
		},
		Gazebo: GazeboRates{
			Base:        5000,
			Size:        map[string]float64{"small": -500, "medium": 0, "large": 800},
			HippedRoof:  300,
			PerSide:     250,
			MaxSides:    4,
			FloorOption: 450,
		},
		Porch: PorchRates{
			Base:     3500,
			FloorLeg: 150,
			SizeType: map[string]float64{"narrow": -200, "standard": 0, "wide": 400},
		},
		Beams: BeamRates{
			UnitPricePerM3: map[string]float64{"reclaimed": 1200, "kilned": 1000, "green": 800},
			DefaultOakType: "green",
		},
		Flooring: FlooringRates{
			FlooringType:        map[string]float64{"solid": 75, "engineered": 65},
			DefaultFlooringType: "engineered",
			OakType:             map[string]float64{"reclaimed": 90, "kilned": 75},
			DefaultOakType:      "kilned",
			FinishPerM2:         map[string]float64{"lacquered": 5, "oiled": 7, "natural": 0},
		},
		Totals: TotalsRates{
			VATRate:               0.20,
			FreeShippingThreshold: 2500,
			ShippingPerM3:         120,
			MinimumShipping:       45,
			BoardThicknessCM:      2,
		},
	}
}

// LoadSchedule reads a schedule file on top of the defaults
// Files ending in .json are decoded as JSON, anything else as YAML.
func LoadSchedule(path string) (*Schedule, error) {
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		path = filepath.Join(wd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read price schedule: %w", err)
	}

	schedule := DefaultSchedule()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, schedule)
	} else {
		err = yaml.Unmarshal(data, schedule)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse price schedule: %w", err)
	}

	if err := schedule.Validate(); err != nil {
		return nil, fmt.Errorf("invalid price schedule: %w", err)
	}

	zap.S().Infof("✅ LoadSchedule: loaded price schedule from %s (currency=%s)", path, schedule.Currency)
	return schedule, nil
}

// Validate checks the schedule for values the calculator cannot work with
func (s *Schedule) Validate() error {
	if s.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if s.Garage.FirstBay <= 0 || s.Gazebo.Base <= 0 || s.Porch.Base <= 0 {
		return fmt.Errorf("base prices must be greater than 0")
	}
	if s.Gazebo.MaxSides < 0 {
		return fmt.Errorf("gazebo maxSides cannot be negative")
	}
	if err := positiveTable("beams.unitPricePerM3", s.Beams.UnitPricePerM3, s.Beams.DefaultOakType); err != nil {
		return err
	}
	if err := positiveTable("flooring.flooringType", s.Flooring.FlooringType, s.Flooring.DefaultFlooringType); err != nil {
		return err
	}
	if err := positiveTable("flooring.oakType", s.Flooring.OakType, s.Flooring.DefaultOakType); err != nil {
		return err
	}
	for finish, surcharge := range s.Flooring.FinishPerM2 {
		if surcharge < 0 {
			return fmt.Errorf("flooring finish %q surcharge cannot be negative", finish)
		}
	}
	if s.Totals.VATRate < 0 || s.Totals.VATRate >= 1 {
		return fmt.Errorf("vatRate must be in [0, 1)")
	}
	if s.Totals.ShippingPerM3 < 0 || s.Totals.MinimumShipping < 0 || s.Totals.FreeShippingThreshold < 0 {
		return fmt.Errorf("shipping rates cannot be negative")
	}
	return nil
}

func positiveTable(name string, table map[string]float64, def string) error {
	if len(table) == 0 {
		return fmt.Errorf("%s is required", name)
	}
	for key, price := range table {
		if price <= 0 {
			return fmt.Errorf("%s[%s] must be greater than 0", name, key)
		}
	}
	if _, ok := table[def]; !ok {
		return fmt.Errorf("%s has no entry for default %q", name, def)
	}
	return nil
}
