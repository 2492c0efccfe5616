// Package packer builds the parametric solid model of a multi-section
// downhole isolation packer: tail tubing, lower slip housing, sealing
// stack, upper bypass housing and top tubing, stacked along the main
// axis with a full-length through-bore.
package packer

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the external parameter surface of the tool. All lengths
// are millimeters. A Config is passed by value into every builder;
// builders never mutate it. Segment heights, slot placements and
// assembly offsets are not configuration: they are each builder's own
// shape contract and live as named constants next to the geometry.
type Config struct {
	TubingRadius float64 `toml:"tubing_radius"`
	BoreRadius   float64 `toml:"bore_radius"`

	BodyRadius        float64 `toml:"body_radius"`
	InnerSleeveRadius float64 `toml:"inner_sleeve_radius"`
	InnerCoreRadius   float64 `toml:"inner_core_radius"`

	SlotCutterRadius float64 `toml:"slot_cutter_radius"`
	SlotCutterLength float64 `toml:"slot_cutter_length"`

	Colors Colors `toml:"colors"`
}

// Colors are display color names for the rendered model. Cosmetic
// only; they never affect geometry.
type Colors struct {
	Metal  string `toml:"metal"`
	Body   string `toml:"body"`
	Rubber string `toml:"rubber"`
	Sleeve string `toml:"sleeve"`
	Core   string `toml:"core"`
}

// DefaultConfig returns the reference tool dimensions: 73mm OD tubing
// with a 62mm bore.
func DefaultConfig() Config {
	return Config{
		TubingRadius:      36.5,
		BoreRadius:        31.0,
		BodyRadius:        68.0,
		InnerSleeveRadius: 64.0,
		InnerCoreRadius:   62.0,
		SlotCutterRadius:  8.0,
		SlotCutterLength:  180.0,
		Colors: Colors{
			Metal:  "DimGray",
			Body:   "FireBrick",
			Rubber: "darkslategray",
			Sleeve: "lightgray",
			Core:   "Black",
		},
	}
}

// Validate checks the configuration before any geometry is built.
// Beyond positivity, the radii must nest as
// bore < inner core < inner sleeve < body, or boolean subtractions
// degenerate (a bore at or beyond the core radius leaves zero or
// negative wall). The slot cutter must be long enough to traverse the
// housing wall on both sides.
func (c Config) Validate() error {
	var errs []error

	positive := map[string]float64{
		"tubing_radius":       c.TubingRadius,
		"bore_radius":         c.BoreRadius,
		"body_radius":         c.BodyRadius,
		"inner_sleeve_radius": c.InnerSleeveRadius,
		"inner_core_radius":   c.InnerCoreRadius,
		"slot_cutter_radius":  c.SlotCutterRadius,
		"slot_cutter_length":  c.SlotCutterLength,
	}
	for _, name := range []string{
		"tubing_radius", "bore_radius", "body_radius",
		"inner_sleeve_radius", "inner_core_radius",
		"slot_cutter_radius", "slot_cutter_length",
	} {
		if v := positive[name]; v <= 0 {
			errs = append(errs, fmt.Errorf("%s is %.4f, must be positive", name, v))
		}
	}

	if c.BoreRadius >= c.InnerCoreRadius {
		errs = append(errs, fmt.Errorf("bore_radius %.4f must be less than inner_core_radius %.4f", c.BoreRadius, c.InnerCoreRadius))
	}
	if c.InnerCoreRadius >= c.InnerSleeveRadius {
		errs = append(errs, fmt.Errorf("inner_core_radius %.4f must be less than inner_sleeve_radius %.4f", c.InnerCoreRadius, c.InnerSleeveRadius))
	}
	if c.InnerSleeveRadius >= c.BodyRadius {
		errs = append(errs, fmt.Errorf("inner_sleeve_radius %.4f must be less than body_radius %.4f", c.InnerSleeveRadius, c.BodyRadius))
	}
	if c.SlotCutterLength <= 2*c.BodyRadius {
		errs = append(errs, fmt.Errorf("slot_cutter_length %.4f must exceed the body diameter %.4f to cut through both walls", c.SlotCutterLength, 2*c.BodyRadius))
	}

	for name, v := range map[string]string{
		"metal":  c.Colors.Metal,
		"body":   c.Colors.Body,
		"rubber": c.Colors.Rubber,
		"sleeve": c.Colors.Sleeve,
		"core":   c.Colors.Core,
	} {
		if v == "" {
			errs = append(errs, fmt.Errorf("colors.%s is empty", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("packer: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// LoadFile reads a TOML parameter file layered over DefaultConfig, so
// the file only needs to name the parameters it changes. The result is
// validated before it is returned.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("packer: decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
