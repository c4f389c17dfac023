/*
Package generic provides the domain-agnostic primitives of the payroll engine.

PURPOSE:
  Money arithmetic, calendar dates, periods, error types and the storage
  interface live here so that the payroll domain (package nomina), the
  transport layer and the stores share one vocabulary.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: a decimal quantity with a currency (COP by default)
  - Rate: a plain decimal factor (0.04, 0.0833, ...)

DESIGN PRINCIPLES:
  1. Precision: decimal.Decimal everywhere, never float64
  2. Rounding happens only at the output edge (Money.Rounded)
  3. Values are immutable; every operation returns a new Money

USAGE:
  salary := generic.NewMoney(1423500)
  health := salary.MulRate(generic.MustParseDecimal("0.04"))
  fmt.Println(health.Rounded()) // 56940

SEE ALSO:
  - time.go: TimePoint and DaysBetween
  - errors.go: sentinel and structured errors
  - store.go: DocumentStore interface
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Decimal amount with currency
// =============================================================================

type Money struct {
	Value    decimal.Decimal
	Currency Currency
}

type Currency string

const (
	CurrencyCOP Currency = "COP"
)

var half = decimal.NewFromFloat(0.5)

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value), Currency: CurrencyCOP}
}

func NewMoneyFromInt(value int64) Money {
	return Money{Value: decimal.NewFromInt(value), Currency: CurrencyCOP}
}

func NewMoneyFromDecimal(value decimal.Decimal) Money {
	return Money{Value: value, Currency: CurrencyCOP}
}

// ParseMoney parses a decimal string. Blank or malformed input yields zero,
// matching how optional form amounts behave.
func ParseMoney(s string) Money {
	return Money{Value: MustParseDecimal(s), Currency: CurrencyCOP}
}

func MustParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func ZeroMoney() Money { return Money{Value: decimal.Zero, Currency: CurrencyCOP} }

func (m Money) Add(b Money) Money                 { return Money{Value: m.Value.Add(b.Value), Currency: m.currency()} }
func (m Money) Sub(b Money) Money                 { return Money{Value: m.Value.Sub(b.Value), Currency: m.currency()} }
func (m Money) Mul(s decimal.Decimal) Money       { return Money{Value: m.Value.Mul(s), Currency: m.currency()} }
func (m Money) MulInt(n int) Money                { return m.Mul(decimal.NewFromInt(int64(n))) }
func (m Money) Div(s decimal.Decimal) Money       { return Money{Value: m.Value.Div(s), Currency: m.currency()} }
func (m Money) DivInt(n int) Money                { return m.Div(decimal.NewFromInt(int64(n))) }
func (m Money) MulRate(r decimal.Decimal) Money   { return m.Mul(r) }
func (m Money) IsNegative() bool                  { return m.Value.IsNegative() }
func (m Money) IsZero() bool                      { return m.Value.IsZero() }
func (m Money) Equal(b Money) bool                { return m.Value.Equal(b.Value) }
func (m Money) LessThanOrEqual(b Money) bool      { return m.Value.LessThanOrEqual(b.Value) }
func (m Money) String() string                    { return m.Value.String() }

// Rounded returns the amount rounded to the nearest whole unit, halves going
// toward positive infinity (2.5 -> 3, -2.5 -> -2).
func (m Money) Rounded() int64 {
	return m.Value.Add(half).Floor().IntPart()
}

func (m Money) currency() Currency {
	if m.Currency == "" {
		return CurrencyCOP
	}
	return m.Currency
}

// Sum adds all amounts. An empty list sums to zero.
func Sum(amounts ...Money) Money {
	total := ZeroMoney()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// MarshalJSON writes the amount as a quoted decimal string ("135237.55").
func (m Money) MarshalJSON() ([]byte, error) {
	return m.Value.MarshalJSON()
}

// UnmarshalJSON accepts quoted or bare decimals; the currency is COP.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*m = NewMoneyFromDecimal(d)
	return nil
}
