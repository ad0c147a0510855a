package stir

import (
	"time"

	"github.com/EmilienVaast/STIR-Futures/calendar"
	"github.com/EmilienVaast/STIR-Futures/utils"
)

// compoundSettler prices SR3 per the CME Three-Month SOFR methodology:
// daily compounding of SOFR over the IMM reference quarter on ACT/360.
// Each business day's rate accrues for the calendar-day gap to the next
// business day, so weekend and holiday stub days inherit the preceding
// business day's print. The compounded accrual is annualized by 360/D over
// the D calendar days of the quarter; price = 100 - annualized rate.
type compoundSettler struct {
	e Engine
}

func (s compoundSettler) Settle(c Contract, path RatePath) (SettlementResult, error) {
	start, end := c.ReferencePeriod(s.e.Calendar) // [IMM, next IMM)

	if !path.Covers(start, end.AddDate(0, 0, -1)) {
		missing := start
		if path.Covers(start, start) {
			missing = path.End().AddDate(0, 0, 1)
		}
		return SettlementResult{}, &IncompletePathError{
			Contract: c.Code(), From: start, To: end.AddDate(0, 0, -1), Missing: missing,
		}
	}

	var bdays []time.Time
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		if calendar.IsBusinessDay(s.e.Calendar, day) {
			bdays = append(bdays, day)
		}
	}

	factor := 1.0
	for i, day := range bdays {
		next := end
		if i+1 < len(bdays) {
			next = bdays[i+1]
		}
		rate, _ := path.RateOn(day)
		factor *= 1.0 + utils.YearFraction(day, next, "ACT/360")*rate/100.0
	}

	totalDays := utils.Days(start, end)
	annualized := (factor - 1.0) * (360.0 / totalDays) * 100.0
	return s.e.result(c, annualized)
}
