package nomina_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hellzyr/Nominer/generic"
	"github.com/Hellzyr/Nominer/nomina"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func cop(s string) generic.Money {
	return generic.ParseMoney(s)
}

func date(year int, month time.Month, day int) *generic.TimePoint {
	tp := generic.NewTimePoint(year, month, day)
	return &tp
}

func constants2025() nomina.Constants {
	return nomina.Constants{
		Year:                         2025,
		MinimumWage:                  cop("1423500"),
		TransportAllowance:           cop("200000"),
		TransportThresholdMultiplier: nomina.DefaultTransportThresholdMultiplier,
	}
}

func assertMoney(t *testing.T, want string, got generic.Money) {
	t.Helper()
	assert.True(t, cop(want).Equal(got), "want %s, got %s", want, got.String())
}

// =============================================================================
// MONTHLY PAYROLL
// =============================================================================

func TestCompute_MinimumWageFullMonth(t *testing.T) {
	// GIVEN: An employee on the 2025 minimum wage who worked the whole month
	// WHEN: Computing the payroll
	// THEN: Full salary, transport allowance, 4% health and pension,
	//       provisions on salary + allowance (vacation on salary only)

	in := nomina.Input{BaseSalary: cop("1423500"), DaysWorked: 30}
	r := nomina.Compute(in, constants2025())

	assertMoney(t, "1423500", r.RegularPay)
	assertMoney(t, "200000", r.TransportAllowance)
	assertMoney(t, "56940", r.HealthDeduction)
	assertMoney(t, "56940", r.PensionDeduction)
	assertMoney(t, "135237.55", r.SeveranceProvision)
	assertMoney(t, "1352.3755", r.SeveranceInterestProvision)
	assertMoney(t, "135237.55", r.ServiceBonusProvision)
	assertMoney(t, "59359.95", r.VacationProvision)
	assertMoney(t, "1623500", r.TotalEarnings)
	assertMoney(t, "113880", r.TotalDeductions)
	assertMoney(t, "1509620", r.NetPay)
	assert.Nil(t, r.Settlement)
}

func TestCompute_ProratesOverCommercialMonth(t *testing.T) {
	tests := []struct {
		name string
		days int
		want string
	}{
		{"half month", 15, "750000"},
		{"one day", 1, "50000"},
		{"zero days", 0, "0"},
		{"thirty-one days", 31, "1550000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := nomina.Compute(nomina.Input{BaseSalary: cop("1500000"), DaysWorked: tt.days}, constants2025())
			assertMoney(t, tt.want, r.RegularPay)
			assertMoney(t, r.RegularPay.MulRate(generic.MustParseDecimal("0.04")).String(), r.HealthDeduction)
		})
	}
}

func TestCompute_TransportAllowanceThreshold(t *testing.T) {
	tests := []struct {
		name   string
		salary string
		want   string
	}{
		{"below threshold", "2000000", "200000"},
		{"exactly two minimum wages", "2847000", "200000"},
		{"one peso above", "2847001", "0"},
		{"well above", "5000000", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := nomina.Compute(nomina.Input{BaseSalary: cop(tt.salary), DaysWorked: 30}, constants2025())
			assertMoney(t, tt.want, r.TransportAllowance)
		})
	}
}

func TestCompute_ThresholdMultiplierIsConfigurable(t *testing.T) {
	c := constants2025()
	c.TransportThresholdMultiplier = generic.MustParseDecimal("1")

	r := nomina.Compute(nomina.Input{BaseSalary: cop("1423501"), DaysWorked: 30}, c)
	assert.True(t, r.TransportAllowance.IsZero())

	// unset multiplier falls back to 2
	c.TransportThresholdMultiplier = generic.MustParseDecimal("0")
	r = nomina.Compute(nomina.Input{BaseSalary: cop("2847000"), DaysWorked: 30}, c)
	assertMoney(t, "200000", r.TransportAllowance)
}

func TestCompute_SupplementaryEarningsAndDeductions(t *testing.T) {
	// GIVEN: Overtime, surcharges, tips and commissions plus a loan and withholding
	// THEN: Earnings pass through untouched and are excluded from the health base

	in := nomina.Input{
		BaseSalary:          cop("3000000"),
		DaysWorked:          30,
		OvertimePay:         cop("120000"),
		NightShiftSurcharge: cop("45000.50"),
		HolidayPay:          cop("80000"),
		Tips:                cop("10000"),
		Commissions:         cop("250000"),
		Bonuses:             cop("100000"),
		LoanDeductions:      cop("300000"),
		WithholdingTax:      cop("95000"),
	}
	r := nomina.Compute(in, constants2025())

	assertMoney(t, "0", r.TransportAllowance)
	assertMoney(t, "120000", r.OvertimePay)
	assertMoney(t, "45000.50", r.NightShiftSurcharge)
	assertMoney(t, "80000", r.HolidayPay)
	assertMoney(t, "10000", r.Tips)
	assertMoney(t, "250000", r.Commissions)
	assertMoney(t, "100000", r.Bonuses)
	assertMoney(t, "120000", r.HealthDeduction)
	assertMoney(t, "3605000.50", r.TotalEarnings)
	assertMoney(t, "635000", r.TotalDeductions)
	assertMoney(t, "2970000.50", r.NetPay)
}

func TestCompute_NetPayIsNotClamped(t *testing.T) {
	// GIVEN: Deductions larger than earnings
	// THEN: Net pay is negative and still equals earnings minus deductions

	in := nomina.Input{BaseSalary: cop("1000000"), DaysWorked: 1, LoanDeductions: cop("5000000")}
	r := nomina.Compute(in, constants2025())

	assert.True(t, r.NetPay.IsNegative())
	assert.True(t, r.TotalEarnings.Sub(r.TotalDeductions).Equal(r.NetPay))
}

func TestCompute_NetPayIdentity(t *testing.T) {
	inputs := []nomina.Input{
		{},
		{BaseSalary: cop("1423500"), DaysWorked: 30},
		{BaseSalary: cop("987654.321"), DaysWorked: 17, Tips: cop("3.33"), WithholdingTax: cop("1.11")},
		{BaseSalary: cop("8000000"), DaysWorked: 29, ContractStart: date(2024, time.March, 5), ContractEnd: date(2025, time.February, 11)},
	}

	for _, in := range inputs {
		r := nomina.Compute(in, constants2025())
		assert.True(t, r.TotalEarnings.Sub(r.TotalDeductions).Equal(r.NetPay),
			"earnings %s - deductions %s != net %s", r.TotalEarnings, r.TotalDeductions, r.NetPay)
	}
}

// =============================================================================
// SETTLEMENT PRESENCE
// =============================================================================

func TestCompute_SettlementRequiresBothDates(t *testing.T) {
	tests := []struct {
		name    string
		start   *generic.TimePoint
		end     *generic.TimePoint
		present bool
	}{
		{"no dates", nil, nil, false},
		{"start only", date(2025, time.January, 1), nil, false},
		{"end only", nil, date(2025, time.January, 31), false},
		{"both dates", date(2025, time.January, 1), date(2025, time.January, 31), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := nomina.Input{
				BaseSalary:       cop("1000000"),
				DaysWorked:       30,
				ContractStart:    tt.start,
				ContractEnd:      tt.end,
				TerminationCause: nomina.CauseWithoutJustCause,
			}
			r := nomina.Compute(in, constants2025())
			if !tt.present {
				assert.Nil(t, r.Settlement)
				return
			}
			require.NotNil(t, r.Settlement)
			assert.Equal(t, 30, r.Settlement.DaysToSettle)
		})
	}
}

func TestCompute_SettlementTotalIsPartOfEarnings(t *testing.T) {
	in := nomina.Input{
		BaseSalary:       cop("1000000"),
		DaysWorked:       30,
		ContractStart:    date(2025, time.January, 1),
		ContractEnd:      date(2025, time.June, 30),
		TerminationCause: nomina.CauseWithoutJustCause,
	}
	r := nomina.Compute(in, constants2025())

	require.NotNil(t, r.Settlement)
	assert.Equal(t, 180, r.Settlement.DaysToSettle)
	assertMoney(t, "2280000", r.Settlement.Total)
	// 1,000,000 salary + 200,000 allowance + 2,280,000 settlement
	assertMoney(t, "3480000", r.TotalEarnings)
}
