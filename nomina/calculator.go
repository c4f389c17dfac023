package nomina

import (
	"github.com/Hellzyr/Nominer/generic"
)

// =============================================================================
// PAYROLL CALCULATOR
// =============================================================================

// Compute builds the monthly payroll for one employee.
//
// Salary is prorated over a 30-day commercial month whatever the calendar
// month's length. Health and pension are taken on the prorated pay only.
// Severance and service bonus provisions include the transport allowance in
// their base, the vacation provision does not.
//
// Compute never fails: degenerate input (zero days, zero salary) yields a
// degenerate result, and NetPay is reported as-is even when negative.
// Validation is the caller's job (see Validate).
func Compute(in Input, c Constants) Result {
	regularPay := in.BaseSalary.MulInt(in.DaysWorked).DivInt(commercialMonthDays)

	transport := generic.ZeroMoney()
	if in.BaseSalary.LessThanOrEqual(c.TransportThreshold()) {
		transport = c.TransportAllowance
	}

	health := regularPay.MulRate(healthRate)
	pension := regularPay.MulRate(pensionRate)

	provisionBase := regularPay.Add(transport)
	severance := provisionBase.MulRate(severanceRate)

	r := Result{
		RegularPay:         regularPay,
		TransportAllowance: transport,

		OvertimePay:         in.OvertimePay,
		NightShiftSurcharge: in.NightShiftSurcharge,
		HolidayPay:          in.HolidayPay,
		Tips:                in.Tips,
		Commissions:         in.Commissions,
		Bonuses:             in.Bonuses,

		HealthDeduction:  health,
		PensionDeduction: pension,
		LoanDeductions:   in.LoanDeductions,
		WithholdingTax:   in.WithholdingTax,

		SeveranceProvision:         severance,
		SeveranceInterestProvision: severance.MulRate(severanceInterestRate),
		ServiceBonusProvision:      provisionBase.MulRate(serviceBonusRate),
		VacationProvision:          regularPay.MulRate(vacationRate),
	}

	settled := generic.ZeroMoney()
	if contract := in.Contract(); contract != nil {
		r.Settlement = Settle(in.BaseSalary, contract.Days(), in.TerminationCause)
		settled = r.Settlement.Total
	}

	r.TotalEarnings = generic.Sum(
		regularPay,
		transport,
		in.OvertimePay,
		in.NightShiftSurcharge,
		in.HolidayPay,
		in.Tips,
		in.Commissions,
		in.Bonuses,
		settled,
	)
	r.TotalDeductions = generic.Sum(health, pension, in.LoanDeductions, in.WithholdingTax)
	r.NetPay = r.TotalEarnings.Sub(r.TotalDeductions)

	return r
}
