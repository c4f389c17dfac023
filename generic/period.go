package generic

// =============================================================================
// PERIOD - Closed calendar range (contract term)
// =============================================================================

// Period is the range [Start, End]. A contract settlement covers the period
// between the contract start and end dates. The dates may arrive in either
// order from a form, so no ordering is enforced here.
type Period struct {
	Start TimePoint
	End   TimePoint
}

// Days returns the calendar-day length of the period, see DaysBetween.
func (p Period) Days() int {
	return DaysBetween(p.Start, p.End)
}

