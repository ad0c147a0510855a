package calendar

import "time"

// CalendarID identifies a holiday calendar.
type CalendarID string

const (
	// USGovt is the US government securities calendar (SIFMA recommended
	// holidays), the calendar SOFR and EFFR are published against.
	USGovt CalendarID = "USGovt"
)

var holidaySets = map[CalendarID]map[string]struct{}{}

func init() {
	Register(USGovt, usGovtHolidayList)
}

// Register installs (or replaces) the holiday set for a calendar.
// Dates are YYYY-MM-DD strings. Weekend exclusion always applies on top.
func Register(cal CalendarID, holidays []string) {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h] = struct{}{}
	}
	holidaySets[cal] = set
}

func isHoliday(cal CalendarID, t time.Time) bool {
	set, ok := holidaySets[cal]
	if !ok {
		return false
	}
	_, ok = set[t.Format("2006-01-02")]
	return ok
}

// IsBusinessDay checks weekends and holiday sets.
func IsBusinessDay(cal CalendarID, t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	return !isHoliday(cal, t)
}

// AdjustFollowing applies a simple Following convention (no month preservation).
func AdjustFollowing(cal CalendarID, t time.Time) time.Time {
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// AddBusinessDays advances n business days (n can be negative).
func AddBusinessDays(cal CalendarID, t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		t = t.AddDate(0, 0, step)
		if IsBusinessDay(cal, t) {
			n -= step
		}
	}
	return t
}

// NextBusinessDay returns the first business day strictly after t.
func NextBusinessDay(cal CalendarID, t time.Time) time.Time {
	return AddBusinessDays(cal, t, 1)
}

// PreviousBusinessDay returns the last business day strictly before t.
func PreviousBusinessDay(cal CalendarID, t time.Time) time.Time {
	return AddBusinessDays(cal, t, -1)
}

// LastBusinessDayOfMonth returns the last business day of the month containing t.
func LastBusinessDayOfMonth(cal CalendarID, t time.Time) time.Time {
	// Move to first day of next month
	nextMonth := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	// Go back one day and find the prior business day
	return AddBusinessDays(cal, nextMonth, -1)
}

// IsEndOfMonth checks if t is the last business day of its month.
func IsEndOfMonth(cal CalendarID, t time.Time) bool {
	return t.Equal(LastBusinessDayOfMonth(cal, t))
}
