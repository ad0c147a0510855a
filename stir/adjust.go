package stir

import (
	"time"

	"github.com/EmilienVaast/STIR-Futures/calendar"
)

// AdjustmentConfig controls the EFFR-to-SOFR mapping used when projecting
// SOFR from a policy-rate path. These are scenario assumptions, not measured
// facts: SOFR tends to print a few bps above EFFR, with spikes around
// mid-month and month-end settlement flows.
type AdjustmentConfig struct {
	// SpreadBP is the constant SOFR-over-EFFR basis in bps.
	SpreadBP float64
	// JumpBP is the extra bps applied on the mid-month and month-end jump days.
	JumpBP float64
}

// DefaultAdjustment matches the historical 2025 SOFR/EFFR relationship.
var DefaultAdjustment = AdjustmentConfig{SpreadBP: 3, JumpBP: 10}

// MidMonthJumpDay returns the mid-month spike day: the 15th, or when the 15th
// falls on a weekend, the following Monday (the 16th or 17th).
func MidMonthJumpDay(year int, month time.Month) time.Time {
	d := time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}

// AdjustedRate maps one day's base policy rate (EFFR proxy, percent) to the
// projected SOFR print for that day. The mid-month and month-end jumps are
// independent conditions; when both hit the same date their bps add.
func AdjustedRate(cfg AdjustmentConfig, cal calendar.CalendarID, date time.Time, base float64) float64 {
	date = dateOnly(date)
	rate := base + cfg.SpreadBP/100.0
	if date.Equal(MidMonthJumpDay(date.Year(), date.Month())) {
		rate += cfg.JumpBP / 100.0
	}
	if calendar.IsEndOfMonth(cal, date) {
		rate += cfg.JumpBP / 100.0
	}
	return rate
}

// AdjustPath maps an EFFR path to the projected SOFR path over the same span.
func AdjustPath(cfg AdjustmentConfig, cal calendar.CalendarID, p RatePath) RatePath {
	rates := make([]float64, p.Len())
	day := p.Start()
	for i := range rates {
		r, _ := p.RateOn(day)
		rates[i] = AdjustedRate(cfg, cal, day, r)
		day = day.AddDate(0, 0, 1)
	}
	return RatePath{start: p.Start(), rates: rates}
}
