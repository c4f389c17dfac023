/*
Package factory converts configuration files into payroll objects.

PURPOSE:
  Legal reference values (minimum wage, transport allowance) change every
  year by decree. The factory turns JSON or TOML definitions into
  nomina.Constants so a new year means a new file, not a new build. It
  also reads the flat field files the CLI feeds to the calculator.

JSON SCHEMA:
  {
    "preset": "co-2025",
    "year": 2025,
    "minimum_wage": 1423500,
    "transport_allowance": "200000",
    "transport_threshold_multiplier": 2
  }

  Every key is optional. Missing values are taken from "preset", or from
  DefaultPreset when no preset is named. Amounts may be numbers or strings.

TOML SCHEMA:
  preset = "co-2024"
  minimum_wage = 1300000

USAGE:
  c, err := factory.Preset("co-2025")
  c, err := factory.ParseConstants(`{"minimum_wage": 1500000}`)
  c, err := factory.LoadConstantsFile("constants/2026.toml")

SEE ALSO:
  - nomina/constants.go: Constants type definition
  - fields.go: field file loading
*/
package factory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/Hellzyr/Nominer/generic"
	"github.com/Hellzyr/Nominer/nomina"
)

// =============================================================================
// PRESETS
// =============================================================================

// DefaultPreset is used when a definition names no preset.
const DefaultPreset = "co-2025"

var presets = map[string]nomina.Constants{
	"co-2024": {
		Year:                         2024,
		MinimumWage:                  generic.NewMoneyFromInt(1300000),
		TransportAllowance:           generic.NewMoneyFromInt(162000),
		TransportThresholdMultiplier: nomina.DefaultTransportThresholdMultiplier,
	},
	"co-2025": {
		Year:                         2025,
		MinimumWage:                  generic.NewMoneyFromInt(1423500),
		TransportAllowance:           generic.NewMoneyFromInt(200000),
		TransportThresholdMultiplier: nomina.DefaultTransportThresholdMultiplier,
	},
}

// Preset returns the built-in constants registered under name.
func Preset(name string) (nomina.Constants, error) {
	c, ok := presets[name]
	if !ok {
		return nomina.Constants{}, fmt.Errorf("%w: %q (known: %s)", generic.ErrUnknownPreset, name, strings.Join(Presets(), ", "))
	}
	return c, nil
}

// Presets lists the registered preset names in order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// SCHEMA TYPES
// =============================================================================

// ConstantsJSON is the file representation of nomina.Constants.
type ConstantsJSON struct {
	Preset                       string          `json:"preset,omitempty" toml:"preset"`
	Year                         *int            `json:"year,omitempty" toml:"year"`
	MinimumWage                  OptionalDecimal `json:"minimum_wage" toml:"minimum_wage"`
	TransportAllowance           OptionalDecimal `json:"transport_allowance" toml:"transport_allowance"`
	TransportThresholdMultiplier OptionalDecimal `json:"transport_threshold_multiplier" toml:"transport_threshold_multiplier"`
}

// OptionalDecimal is a decimal that remembers whether it was present.
// It accepts numbers and numeric strings from both JSON and TOML.
type OptionalDecimal struct {
	Value decimal.Decimal
	Set   bool
}

func (o *OptionalDecimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if err := o.Value.UnmarshalJSON(data); err != nil {
		return err
	}
	o.Set = true
	return nil
}

func (o *OptionalDecimal) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case int64:
		o.Value = decimal.NewFromInt(x)
	case float64:
		o.Value = decimal.NewFromFloat(x)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return fmt.Errorf("invalid decimal %q: %w", x, err)
		}
		o.Value = d
	default:
		return fmt.Errorf("invalid decimal value of type %T", v)
	}
	o.Set = true
	return nil
}

// =============================================================================
// CONSTANTS FACTORY
// =============================================================================

// ParseConstants parses a JSON definition.
func ParseConstants(jsonStr string) (nomina.Constants, error) {
	var cj ConstantsJSON
	if err := json.Unmarshal([]byte(jsonStr), &cj); err != nil {
		return nomina.Constants{}, fmt.Errorf("failed to parse constants JSON: %w", err)
	}
	return FromJSON(cj)
}

// LoadConstantsFile reads a definition from disk. Files ending in .toml are
// decoded as TOML, anything else as JSON.
func LoadConstantsFile(path string) (nomina.Constants, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nomina.Constants{}, fmt.Errorf("read constants file: %w", err)
	}

	if !isTOML(path) {
		return ParseConstants(string(data))
	}

	var cj ConstantsJSON
	if _, err := toml.Decode(string(data), &cj); err != nil {
		return nomina.Constants{}, fmt.Errorf("failed to parse constants TOML %s: %w", path, err)
	}
	return FromJSON(cj)
}

// FromJSON resolves a definition against its preset.
func FromJSON(cj ConstantsJSON) (nomina.Constants, error) {
	base := cj.Preset
	if base == "" {
		base = DefaultPreset
	}
	c, err := Preset(base)
	if err != nil {
		return nomina.Constants{}, err
	}

	if cj.Year != nil {
		c.Year = *cj.Year
	}
	if cj.MinimumWage.Set {
		c.MinimumWage = generic.NewMoneyFromDecimal(cj.MinimumWage.Value)
	}
	if cj.TransportAllowance.Set {
		c.TransportAllowance = generic.NewMoneyFromDecimal(cj.TransportAllowance.Value)
	}
	if cj.TransportThresholdMultiplier.Set {
		c.TransportThresholdMultiplier = cj.TransportThresholdMultiplier.Value
	}

	if c.MinimumWage.IsNegative() {
		return nomina.Constants{}, &generic.FieldError{Field: "minimum_wage", Message: "must not be negative"}
	}
	if c.TransportAllowance.IsNegative() {
		return nomina.Constants{}, &generic.FieldError{Field: "transport_allowance", Message: "must not be negative"}
	}
	if !c.TransportThresholdMultiplier.IsPositive() {
		return nomina.Constants{}, &generic.FieldError{Field: "transport_threshold_multiplier", Message: "must be greater than zero"}
	}
	return c, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
