package nomina

import "github.com/Hellzyr/Nominer/generic"

// =============================================================================
// CONTRACT SETTLEMENT (liquidación)
// =============================================================================

// Settle computes the contract liquidation for daysToSettle days on a
// 360-day commercial year.
//
// The indemnity is a flat base salary when the contract ended without just
// cause. Labor law scales it with tenure and contract type; that formula is
// not implemented.
func Settle(baseSalary generic.Money, daysToSettle int, cause TerminationCause) *Settlement {
	if daysToSettle < 0 {
		daysToSettle = 0
	}

	perYear := baseSalary.MulInt(daysToSettle)
	severance := perYear.DivInt(commercialYearDays)
	interest := severance.MulInt(daysToSettle).MulRate(settlementInterestRate).DivInt(commercialYearDays)
	bonus := perYear.DivInt(commercialYearDays)
	vacation := perYear.DivInt(vacationYearDays)

	indemnity := generic.ZeroMoney()
	if cause.OwesIndemnity() {
		indemnity = baseSalary
	}

	return &Settlement{
		DaysToSettle:             daysToSettle,
		ProportionalSeverance:    severance,
		SeveranceInterest:        interest,
		ProportionalServiceBonus: bonus,
		ProportionalVacation:     vacation,
		Indemnity:                indemnity,
		Total:                    generic.Sum(severance, interest, bonus, vacation, indemnity),
	}
}
