package stir

import (
	"time"

	"github.com/EmilienVaast/STIR-Futures/calendar"
)

// ReferencePeriod returns the contract's rate reference period as
// [start, end), end exclusive.
//
// SR1 and ZQ reference the calendar month itself; SR3 references the IMM
// quarter from the contract month's IMM date to the next quarterly IMM date.
func (c Contract) ReferencePeriod(cal calendar.CalendarID) (start, end time.Time) {
	switch c.Type {
	case SR3:
		start = calendar.IMMDate(cal, c.Year, c.Month)
		y, m := calendar.AddMonths(c.Year, c.Month, 3)
		end = calendar.IMMDate(cal, y, m)
		return start, end
	default:
		start = time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	}
}

// LastTradingDay returns the contract's last trading day.
//
// SR1/ZQ trade through the last business day of the contract month. SR3
// trades through the business day preceding the third Wednesday of the
// delivery month (contract month + 3).
func (c Contract) LastTradingDay(cal calendar.CalendarID) time.Time {
	switch c.Type {
	case SR3:
		y, m := calendar.AddMonths(c.Year, c.Month, 3)
		return calendar.PreviousBusinessDay(cal, calendar.ThirdWednesday(y, m))
	default:
		first := time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
		return calendar.LastBusinessDayOfMonth(cal, first)
	}
}
