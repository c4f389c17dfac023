package nomina_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hellzyr/Nominer/nomina"
)

func TestSettle_WithoutJustCause(t *testing.T) {
	// GIVEN: 1,000,000 salary, 180 days to settle, dismissed without just cause
	// THEN: Half a year of severance and bonus, 6% interest, 90 days of vacation
	//       pay, and one salary of indemnity

	st := nomina.Settle(cop("1000000"), 180, nomina.CauseWithoutJustCause)

	assert.Equal(t, 180, st.DaysToSettle)
	assertMoney(t, "500000", st.ProportionalSeverance)
	assertMoney(t, "30000", st.SeveranceInterest)
	assertMoney(t, "500000", st.ProportionalServiceBonus)
	assertMoney(t, "250000", st.ProportionalVacation)
	assertMoney(t, "1000000", st.Indemnity)
	assertMoney(t, "2280000", st.Total)
}

func TestSettle_IndemnityOnlyWithoutJustCause(t *testing.T) {
	causes := []nomina.TerminationCause{
		nomina.CauseNone,
		nomina.CauseWithJustCause,
		nomina.CauseResignation,
		nomina.CauseOther,
	}

	for _, cause := range causes {
		t.Run(string(cause), func(t *testing.T) {
			st := nomina.Settle(cop("1000000"), 180, cause)
			assert.True(t, st.Indemnity.IsZero())
			assertMoney(t, "1280000", st.Total)
		})
	}
}

func TestSettle_ZeroDays(t *testing.T) {
	st := nomina.Settle(cop("1000000"), 0, nomina.CauseWithJustCause)

	assert.Equal(t, 0, st.DaysToSettle)
	assert.True(t, st.Total.IsZero())

	st = nomina.Settle(cop("1000000"), -5, nomina.CauseWithoutJustCause)
	assert.Equal(t, 0, st.DaysToSettle, "negative day counts are floored at zero")
	assertMoney(t, "1000000", st.Total)
}

func TestCompute_DaysToSettle(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"january", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), 30},
		{"reversed dates", time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 30},
		{"same day", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 0},
		{"leap february", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 29},
		{"full year", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 366},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := date(tt.start.Year(), tt.start.Month(), tt.start.Day())
			end := date(tt.end.Year(), tt.end.Month(), tt.end.Day())
			r := nomina.Compute(nomina.Input{BaseSalary: cop("1000000"), ContractStart: start, ContractEnd: end}, constants2025())
			require.NotNil(t, r.Settlement)
			assert.Equal(t, tt.want, r.Settlement.DaysToSettle)
		})
	}
}
