package nomina

import (
	"strconv"
	"strings"

	"github.com/Hellzyr/Nominer/generic"
)

// FormatCOP renders an amount as es-CO currency text: "$ 1.423.500,00".
// Negative amounts get a leading minus: "-$ 1.000,00".
func FormatCOP(m generic.Money) string {
	fixed := m.Value.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if m.IsNegative() && !m.Value.Round(2).IsZero() {
		b.WriteByte('-')
	}
	b.WriteString("$ ")
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

// SummaryLine is one labelled figure of the on-screen payroll summary.
type SummaryLine struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Summary lists the figures shown next to the form: totals, monthly
// provisions and, when present, the settlement breakdown.
func Summary(r Result) []SummaryLine {
	lines := []SummaryLine{
		{"total_earnings", "Total devengado", FormatCOP(r.TotalEarnings)},
		{"total_deductions", "Total deducciones", FormatCOP(r.TotalDeductions)},
		{"net_pay", "Neto a pagar", FormatCOP(r.NetPay)},
		{"severance_provision", "Cesantías", FormatCOP(r.SeveranceProvision)},
		{"severance_interest_provision", "Intereses sobre cesantías", FormatCOP(r.SeveranceInterestProvision)},
		{"service_bonus_provision", "Prima de servicios", FormatCOP(r.ServiceBonusProvision)},
		{"vacation_provision", "Vacaciones", FormatCOP(r.VacationProvision)},
	}
	if st := r.Settlement; st != nil {
		lines = append(lines,
			SummaryLine{"days_to_settle", "Días a liquidar", strconv.Itoa(st.DaysToSettle)},
			SummaryLine{"settled_vacation", "Vacaciones liquidadas", FormatCOP(st.ProportionalVacation)},
			SummaryLine{"settled_severance", "Cesantías liquidadas", FormatCOP(st.ProportionalSeverance)},
			SummaryLine{"settled_service_bonus", "Prima liquidada", FormatCOP(st.ProportionalServiceBonus)},
			SummaryLine{"indemnity", "Indemnización", FormatCOP(st.Indemnity)},
		)
	}
	return lines
}
