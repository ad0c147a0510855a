package stir_test

import (
	"errors"
	"math"
	"testing"

	"github.com/EmilienVaast/STIR-Futures/stir"
)

func twoEventScenario() stir.Scenario {
	return stir.Scenario{
		Events: []stir.PolicyEvent{
			{DecisionDate: date(2025, 12, 10), Lower: 3.50, Upper: 3.75},
			{DecisionDate: date(2026, 1, 28), Lower: 3.25, Upper: 3.50},
		},
	}
}

func TestBuildPath_OnePointPerDay(t *testing.T) {
	t.Parallel()

	start, end := date(2026, 1, 1), date(2026, 2, 28)
	path, err := twoEventScenario().BuildPath(start, end)
	if err != nil {
		t.Fatalf("BuildPath error: %v", err)
	}
	if path.Len() != 59 {
		t.Fatalf("expected 59 days, got %d", path.Len())
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if _, ok := path.RateOn(d); !ok {
			t.Fatalf("missing day %s", d.Format("2006-01-02"))
		}
	}
}

func TestBuildPath_EffectiveLag(t *testing.T) {
	t.Parallel()

	path, err := twoEventScenario().BuildPath(date(2026, 1, 1), date(2026, 2, 28))
	if err != nil {
		t.Fatalf("BuildPath error: %v", err)
	}

	// The January 28 decision takes effect January 29.
	onDecision, _ := path.RateOn(date(2026, 1, 28))
	if math.Abs(onDecision-3.625) > 1e-12 {
		t.Fatalf("decision day rate: got %v want 3.625", onDecision)
	}
	dayAfter, _ := path.RateOn(date(2026, 1, 29))
	if math.Abs(dayAfter-3.375) > 1e-12 {
		t.Fatalf("effective day rate: got %v want 3.375", dayAfter)
	}
}

func TestBuildPath_HoldsLastRangeForward(t *testing.T) {
	t.Parallel()

	// The span extends well past the last event; the final range must hold.
	path, err := twoEventScenario().BuildPath(date(2026, 1, 1), date(2027, 3, 31))
	if err != nil {
		t.Fatalf("BuildPath error: %v", err)
	}
	r, ok := path.RateOn(date(2027, 3, 31))
	if !ok {
		t.Fatal("path must extend to requested end")
	}
	if math.Abs(r-3.375) > 1e-12 {
		t.Fatalf("held rate: got %v want 3.375", r)
	}
}

func TestBuildPath_NoActiveEvent(t *testing.T) {
	t.Parallel()

	_, err := twoEventScenario().BuildPath(date(2025, 12, 1), date(2026, 1, 31))
	var noEvent *stir.NoActiveEventError
	if !errors.As(err, &noEvent) {
		t.Fatalf("expected NoActiveEventError, got %v", err)
	}
	if !noEvent.Date.Equal(date(2025, 12, 1)) {
		t.Fatalf("error date: got %s", noEvent.Date.Format("2006-01-02"))
	}
}

func TestBuildPath_Deterministic(t *testing.T) {
	t.Parallel()

	s := twoEventScenario()
	a, err := s.BuildPath(date(2026, 1, 1), date(2026, 12, 31))
	if err != nil {
		t.Fatalf("BuildPath error: %v", err)
	}
	b, err := s.BuildPath(date(2026, 1, 1), date(2026, 12, 31))
	if err != nil {
		t.Fatalf("BuildPath error: %v", err)
	}
	if a.Len() != b.Len() {
		t.Fatalf("lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for d := a.Start(); !d.After(a.End()); d = d.AddDate(0, 0, 1) {
		ra, _ := a.RateOn(d)
		rb, _ := b.RateOn(d)
		if ra != rb {
			t.Fatalf("nondeterministic at %s: %v vs %v", d.Format("2006-01-02"), ra, rb)
		}
	}
}

func TestBuildPath_RejectsUnorderedEvents(t *testing.T) {
	t.Parallel()

	s := stir.Scenario{
		Events: []stir.PolicyEvent{
			{DecisionDate: date(2026, 3, 18), Lower: 3.25, Upper: 3.50},
			{DecisionDate: date(2026, 1, 28), Lower: 3.50, Upper: 3.75},
		},
	}
	if _, err := s.BuildPath(date(2026, 2, 1), date(2026, 4, 1)); err == nil {
		t.Fatal("expected error for unordered events")
	}
}

func TestBaselineScenario2026(t *testing.T) {
	t.Parallel()

	s := stir.BaselineScenario2026()
	path, err := s.BuildPath(date(2026, 1, 1), date(2026, 12, 31))
	if err != nil {
		t.Fatalf("BuildPath error: %v", err)
	}

	// Entering 2026 at the 3.50-3.75 midpoint.
	jan1, _ := path.RateOn(date(2026, 1, 1))
	if math.Abs(jan1-3.625) > 1e-12 {
		t.Fatalf("Jan 1 rate: got %v want 3.625", jan1)
	}

	// Four 25 bps cuts by year end: midpoint 2.625 after the October meeting.
	dec31, _ := path.RateOn(date(2026, 12, 31))
	if math.Abs(dec31-2.625) > 1e-12 {
		t.Fatalf("Dec 31 rate: got %v want 2.625", dec31)
	}
}
