package stir

import (
	"fmt"
	"time"
)

// PolicyEvent is one FOMC decision: the day the decision is announced and the
// Fed Funds target range (percent bounds) that applies from its effective
// date onward.
type PolicyEvent struct {
	DecisionDate time.Time
	Lower        float64
	Upper        float64
}

// Midpoint returns the middle of the target range, the nominal policy rate.
func (e PolicyEvent) Midpoint() float64 {
	return (e.Lower + e.Upper) / 2.0
}

// Scenario is an ordered, immutable sequence of policy decisions plus the lag
// between a decision and the first day the new range applies.
type Scenario struct {
	// Events must be sorted by DecisionDate ascending, duplicate-free.
	Events []PolicyEvent
	// EffectiveLagDays is the calendar-day lag from decision to effect.
	// Zero means the default of 1 (a decision announced Wednesday afternoon
	// moves the rate printed for Thursday).
	EffectiveLagDays int
}

func (s Scenario) lag() int {
	if s.EffectiveLagDays == 0 {
		return 1
	}
	return s.EffectiveLagDays
}

// EffectiveDates returns the day each event's range takes effect,
// in event order.
func (s Scenario) EffectiveDates() []time.Time {
	out := make([]time.Time, len(s.Events))
	for i, e := range s.Events {
		out[i] = dateOnly(e.DecisionDate).AddDate(0, 0, s.lag())
	}
	return out
}

func (s Scenario) validate() error {
	if len(s.Events) == 0 {
		return fmt.Errorf("scenario: no policy events")
	}
	for i := 1; i < len(s.Events); i++ {
		prev, cur := s.Events[i-1].DecisionDate, s.Events[i].DecisionDate
		if !dateOnly(prev).Before(dateOnly(cur)) {
			return fmt.Errorf("scenario: events out of order at index %d (%s then %s)",
				i, prev.Format("2006-01-02"), cur.Format("2006-01-02"))
		}
	}
	return nil
}

// BuildPath walks every calendar day in [start, end] and produces the daily
// policy midpoint path. Each day takes the range of the latest event whose
// effective date is on or before it; the last known range is held constant
// past the final event, so the span may extend arbitrarily far forward.
// It fails with NoActiveEventError if start precedes the first effective date.
func (s Scenario) BuildPath(start, end time.Time) (RatePath, error) {
	if err := s.validate(); err != nil {
		return RatePath{}, err
	}
	start, end = dateOnly(start), dateOnly(end)
	if end.Before(start) {
		return RatePath{}, fmt.Errorf("scenario: end %s before start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	eff := s.EffectiveDates()
	if start.Before(eff[0]) {
		return RatePath{}, &NoActiveEventError{Date: start}
	}

	var rates []float64
	j := 0
	current := 0.0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for j < len(eff) && !eff[j].After(day) {
			current = s.Events[j].Midpoint()
			j++
		}
		if j == 0 {
			// unreachable given the start check above
			return RatePath{}, &NoActiveEventError{Date: day}
		}
		rates = append(rates, current)
	}
	return RatePath{start: start, rates: rates}, nil
}
