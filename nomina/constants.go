package nomina

import (
	"github.com/shopspring/decimal"

	"github.com/Hellzyr/Nominer/generic"
)

// =============================================================================
// CONSTANTS - Period reference values supplied as configuration
// =============================================================================

// Constants are the legal reference values for a payroll year. They change
// every year by decree, so they are configuration, not code (see factory).
type Constants struct {
	Year                         int             `json:"year"`
	MinimumWage                  generic.Money   `json:"minimum_wage"`
	TransportAllowance           generic.Money   `json:"transport_allowance"`
	TransportThresholdMultiplier decimal.Decimal `json:"transport_threshold_multiplier"`
}

// DefaultTransportThresholdMultiplier: the allowance applies up to two minimum wages.
var DefaultTransportThresholdMultiplier = decimal.NewFromInt(2)

// TransportThreshold is the highest base salary that still receives the allowance.
func (c Constants) TransportThreshold() generic.Money {
	m := c.TransportThresholdMultiplier
	if m.IsZero() {
		m = DefaultTransportThresholdMultiplier
	}
	return c.MinimumWage.Mul(m)
}

// =============================================================================
// STATUTORY RATES
// =============================================================================

var (
	healthRate            = decimal.RequireFromString("0.04")
	pensionRate           = decimal.RequireFromString("0.04")
	severanceRate         = decimal.RequireFromString("0.0833")
	severanceInterestRate = decimal.RequireFromString("0.01")
	serviceBonusRate      = decimal.RequireFromString("0.0833")
	vacationRate          = decimal.RequireFromString("0.0417")

	// annual interest on settled severance
	settlementInterestRate = decimal.RequireFromString("0.12")
)

const (
	commercialMonthDays = 30
	commercialYearDays  = 360
	// vacation accrues 15 days per year: half of the year-based figure
	vacationYearDays = 720
)
