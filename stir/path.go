package stir

import (
	"fmt"
	"math"
	"time"

	"github.com/EmilienVaast/STIR-Futures/utils"
)

// RatePoint is one day's reference rate in percent.
type RatePoint struct {
	Date time.Time
	Rate float64
}

// RatePath is a dense, gap-free daily rate series over a contiguous span of
// calendar days. Every calendar day in [Start, End] carries a rate, including
// weekends and holidays, since settlement averaging is calendar-day based.
// A RatePath is immutable once built.
type RatePath struct {
	start time.Time
	rates []float64
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewRatePath wraps a dense daily series starting at start.
func NewRatePath(start time.Time, rates []float64) RatePath {
	out := make([]float64, len(rates))
	copy(out, rates)
	return RatePath{start: dateOnly(start), rates: out}
}

// PathFromFixings builds a daily path over [start, end] from an ascending
// business-day fixing series, carrying each fixing forward over weekends and
// holidays. It fails if no fixing exists on or before start, or if fixings
// run out entirely (the last fixing extends forward indefinitely, matching
// published-index conventions).
func PathFromFixings(fixings []RatePoint, start, end time.Time) (RatePath, error) {
	start, end = dateOnly(start), dateOnly(end)
	if end.Before(start) {
		return RatePath{}, fmt.Errorf("PathFromFixings: end %s before start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	n := int(utils.Days(start, end)) + 1
	rates := make([]float64, n)
	last := math.NaN()
	i := 0
	day := start
	for idx := 0; idx < n; idx++ {
		for i < len(fixings) && !dateOnly(fixings[i].Date).After(day) {
			last = fixings[i].Rate
			i++
		}
		if math.IsNaN(last) {
			return RatePath{}, &IncompletePathError{From: start, To: end, Missing: day}
		}
		rates[idx] = last
		day = day.AddDate(0, 0, 1)
	}
	return RatePath{start: start, rates: rates}, nil
}

// Start returns the first covered day.
func (p RatePath) Start() time.Time { return p.start }

// End returns the last covered day.
func (p RatePath) End() time.Time { return p.start.AddDate(0, 0, len(p.rates)-1) }

// Len returns the number of covered days.
func (p RatePath) Len() int { return len(p.rates) }

// RateOn returns the rate for d and whether d is covered.
func (p RatePath) RateOn(d time.Time) (float64, bool) {
	if len(p.rates) == 0 {
		return 0, false
	}
	idx := int(utils.Days(p.start, dateOnly(d)))
	if idx < 0 || idx >= len(p.rates) {
		return 0, false
	}
	return p.rates[idx], true
}

// Covers reports whether every day in [start, end] is present.
func (p RatePath) Covers(start, end time.Time) bool {
	if len(p.rates) == 0 {
		return false
	}
	return !dateOnly(start).Before(p.start) && !dateOnly(end).After(p.End())
}

// Points materializes the path as (date, rate) pairs.
func (p RatePath) Points() []RatePoint {
	out := make([]RatePoint, len(p.rates))
	for i, r := range p.rates {
		out[i] = RatePoint{Date: p.start.AddDate(0, 0, i), Rate: r}
	}
	return out
}
