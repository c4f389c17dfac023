// Package nomina implements the Colombian monthly payroll ("nómina electrónica")
// calculation, the contract-termination settlement, and the XML document built
// from them. It uses the generic primitives for money and dates and performs
// no I/O: every function here is deterministic given its arguments.
package nomina

import "github.com/Hellzyr/Nominer/generic"

// =============================================================================
// TERMINATION CAUSE
// =============================================================================

// TerminationCause is why a contract ended. Only CauseWithoutJustCause
// changes the settlement (it adds the indemnity).
type TerminationCause string

const (
	CauseNone             TerminationCause = ""
	CauseWithoutJustCause TerminationCause = "without_just_cause"
	CauseWithJustCause    TerminationCause = "with_just_cause"
	CauseResignation      TerminationCause = "resignation"
	CauseOther            TerminationCause = "other"
)

// ParseTerminationCause maps a form code to a cause. The Spanish form codes
// (sin_justa, con_justa, renuncia) are accepted alongside the canonical names.
func ParseTerminationCause(s string) TerminationCause {
	switch s {
	case "":
		return CauseNone
	case string(CauseWithoutJustCause), "sin_justa":
		return CauseWithoutJustCause
	case string(CauseWithJustCause), "con_justa":
		return CauseWithJustCause
	case string(CauseResignation), "renuncia":
		return CauseResignation
	default:
		return CauseOther
	}
}

func (c TerminationCause) OwesIndemnity() bool { return c == CauseWithoutJustCause }

// =============================================================================
// INPUT
// =============================================================================

// Input holds the numeric and date fields of a payroll form. All amounts are
// Colombian pesos. Supplementary earnings and deductions are direct amounts,
// not computed.
type Input struct {
	BaseSalary generic.Money
	DaysWorked int

	OvertimePay         generic.Money
	NightShiftSurcharge generic.Money
	HolidayPay          generic.Money
	Tips                generic.Money
	Commissions         generic.Money
	Bonuses             generic.Money

	LoanDeductions generic.Money
	WithholdingTax generic.Money

	// Both dates present means a settlement is computed.
	ContractStart    *generic.TimePoint
	ContractEnd      *generic.TimePoint
	TerminationCause TerminationCause
}

// Contract returns the settlement period, or nil unless both dates are set.
func (in Input) Contract() *generic.Period {
	if in.ContractStart == nil || in.ContractEnd == nil {
		return nil
	}
	return &generic.Period{Start: *in.ContractStart, End: *in.ContractEnd}
}

// =============================================================================
// RESULT
// =============================================================================

// Result is one computed monthly payroll. It is built fresh by Compute and
// never mutated afterwards.
type Result struct {
	RegularPay         generic.Money `json:"regular_pay"`
	TransportAllowance generic.Money `json:"transport_allowance"`

	OvertimePay         generic.Money `json:"overtime_pay"`
	NightShiftSurcharge generic.Money `json:"night_shift_surcharge"`
	HolidayPay          generic.Money `json:"holiday_pay"`
	Tips                generic.Money `json:"tips"`
	Commissions         generic.Money `json:"commissions"`
	Bonuses             generic.Money `json:"bonuses"`

	HealthDeduction  generic.Money `json:"health_deduction"`
	PensionDeduction generic.Money `json:"pension_deduction"`
	LoanDeductions   generic.Money `json:"loan_deductions"`
	WithholdingTax   generic.Money `json:"withholding_tax"`

	SeveranceProvision         generic.Money `json:"severance_provision"`
	SeveranceInterestProvision generic.Money `json:"severance_interest_provision"`
	ServiceBonusProvision      generic.Money `json:"service_bonus_provision"`
	VacationProvision          generic.Money `json:"vacation_provision"`

	TotalEarnings   generic.Money `json:"total_earnings"`
	TotalDeductions generic.Money `json:"total_deductions"`
	NetPay          generic.Money `json:"net_pay"`

	Settlement *Settlement `json:"settlement,omitempty"`
}

// Settlement is the contract liquidation: entitlements accrued since the
// contract start paid out at termination.
type Settlement struct {
	DaysToSettle             int           `json:"days_to_settle"`
	ProportionalSeverance    generic.Money `json:"proportional_severance"`
	SeveranceInterest        generic.Money `json:"severance_interest"`
	ProportionalServiceBonus generic.Money `json:"proportional_service_bonus"`
	ProportionalVacation     generic.Money `json:"proportional_vacation"`
	Indemnity                generic.Money `json:"indemnity"`
	Total                    generic.Money `json:"total"`
}
