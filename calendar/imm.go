package calendar

import "time"

// QuarterlyMonths is the IMM quarterly cycle (Mar/Jun/Sep/Dec).
var QuarterlyMonths = [4]time.Month{time.March, time.June, time.September, time.December}

// IsQuarterlyMonth reports whether m is on the IMM quarterly cycle.
func IsQuarterlyMonth(m time.Month) bool {
	switch m {
	case time.March, time.June, time.September, time.December:
		return true
	}
	return false
}

// ThirdWednesday returns the third Wednesday of the given month.
func ThirdWednesday(year int, month time.Month) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysUntilWed := (int(time.Wednesday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, daysUntilWed+14)
}

// IMMDate returns the IMM date of the given month: the third Wednesday,
// rolled to the next business day if it falls on a holiday.
func IMMDate(cal CalendarID, year int, month time.Month) time.Time {
	return AdjustFollowing(cal, ThirdWednesday(year, month))
}

// AddMonths adds n months to a (year, month) pair without any day-of-month
// normalization. n may be negative.
func AddMonths(year int, month time.Month, n int) (int, time.Month) {
	m := int(month) - 1 + n
	y := year + m/12
	m %= 12
	if m < 0 {
		m += 12
		y--
	}
	return y, time.Month(m + 1)
}
