package calendar_test

import (
	"testing"
	"time"

	"github.com/EmilienVaast/STIR-Futures/calendar"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsBusinessDay_Weekends(t *testing.T) {
	t.Parallel()

	// Walk a full year; every Saturday and Sunday must be non-business.
	for d := date(2026, 1, 1); d.Year() == 2026; d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			if calendar.IsBusinessDay(calendar.USGovt, d) {
				t.Fatalf("%s (%s) should not be a business day", d.Format("2006-01-02"), wd)
			}
		}
	}
}

func TestIsBusinessDay_Holidays(t *testing.T) {
	t.Parallel()

	holidays := []time.Time{
		date(2026, 1, 1),  // New Year's Day
		date(2026, 4, 3),  // Good Friday
		date(2026, 7, 3),  // Independence Day observed
		date(2026, 11, 26), // Thanksgiving
		date(2025, 12, 25),
	}
	for _, d := range holidays {
		if calendar.IsBusinessDay(calendar.USGovt, d) {
			t.Fatalf("%s should be a holiday", d.Format("2006-01-02"))
		}
	}

	if !calendar.IsBusinessDay(calendar.USGovt, date(2026, 1, 2)) {
		t.Fatal("2026-01-02 should be a business day")
	}
}

func TestNextPreviousBusinessDay(t *testing.T) {
	t.Parallel()

	// Friday 2026-01-16 -> MLK Monday 2026-01-19 is a holiday -> Tuesday.
	next := calendar.NextBusinessDay(calendar.USGovt, date(2026, 1, 16))
	if !next.Equal(date(2026, 1, 20)) {
		t.Fatalf("NextBusinessDay: got %s", next.Format("2006-01-02"))
	}

	prev := calendar.PreviousBusinessDay(calendar.USGovt, date(2026, 1, 20))
	if !prev.Equal(date(2026, 1, 16)) {
		t.Fatalf("PreviousBusinessDay: got %s", prev.Format("2006-01-02"))
	}
}

func TestLastBusinessDayOfMonth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   time.Time
		want time.Time
	}{
		// May 2026 ends on a Sunday.
		{date(2026, 5, 10), date(2026, 5, 29)},
		// January 2026 ends on a Saturday.
		{date(2026, 1, 1), date(2026, 1, 30)},
		// June 2026 ends on a Tuesday.
		{date(2026, 6, 15), date(2026, 6, 30)},
	}
	for _, c := range cases {
		got := calendar.LastBusinessDayOfMonth(calendar.USGovt, c.in)
		if !got.Equal(c.want) {
			t.Fatalf("LastBusinessDayOfMonth(%s): got %s want %s",
				c.in.Format("2006-01"), got.Format("2006-01-02"), c.want.Format("2006-01-02"))
		}
	}

	if !calendar.IsEndOfMonth(calendar.USGovt, date(2026, 5, 29)) {
		t.Fatal("2026-05-29 should be end of month")
	}
	if calendar.IsEndOfMonth(calendar.USGovt, date(2026, 5, 28)) {
		t.Fatal("2026-05-28 should not be end of month")
	}
}

func TestAddBusinessDays(t *testing.T) {
	t.Parallel()

	// Wednesday + 3 business days over a weekend.
	got := calendar.AddBusinessDays(calendar.USGovt, date(2026, 6, 10), 3)
	if !got.Equal(date(2026, 6, 15)) {
		t.Fatalf("AddBusinessDays(+3): got %s", got.Format("2006-01-02"))
	}

	got = calendar.AddBusinessDays(calendar.USGovt, date(2026, 6, 15), -3)
	if !got.Equal(date(2026, 6, 10)) {
		t.Fatalf("AddBusinessDays(-3): got %s", got.Format("2006-01-02"))
	}
}

func TestRegister_CustomCalendar(t *testing.T) {
	calendar.Register("TESTCAL", []string{"2026-06-10"})

	if calendar.IsBusinessDay("TESTCAL", date(2026, 6, 10)) {
		t.Fatal("registered holiday should not be a business day")
	}
	if !calendar.IsBusinessDay("TESTCAL", date(2026, 6, 11)) {
		t.Fatal("2026-06-11 should be a business day on TESTCAL")
	}
}
