package generic

import (
	"math"
	"strings"
	"time"
)

// =============================================================================
// TIME POINT - Calendar date at day granularity
// =============================================================================

const DateLayout = "2006-01-02"

type TimePoint struct {
	Time time.Time
}

// Constructors
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func FromTime(t time.Time) TimePoint {
	return NewTimePoint(t.Year(), t.Month(), t.Day())
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (TimePoint, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return TimePoint{}, &DateError{Value: s, Err: err}
	}
	return TimePoint{Time: t}, nil
}

// ParseOptionalDate returns nil for blank or malformed input.
func ParseOptionalDate(s string) *TimePoint {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	tp, err := ParseDate(s)
	if err != nil {
		return nil
	}
	return &tp
}

func (tp TimePoint) normalize() time.Time {
	return time.Date(tp.Time.Year(), tp.Time.Month(), tp.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Properties
func (tp TimePoint) IsZero() bool   { return tp.Time.IsZero() }
func (tp TimePoint) String() string { return tp.Time.Format(DateLayout) }

// DaysBetween returns the calendar-day distance between two dates, rounded
// up and never negative. Order of the arguments does not matter.
func DaysBetween(from, to TimePoint) int {
	diff := to.normalize().Sub(from.normalize())
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}
