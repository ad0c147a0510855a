package stir

import "time"

// FOMCDecisionDates2026 are the scheduled 2026 FOMC meeting end dates.
var FOMCDecisionDates2026 = []time.Time{
	time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC),
	time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC),
	time.Date(2026, 4, 29, 0, 0, 0, 0, time.UTC),
	time.Date(2026, 6, 17, 0, 0, 0, 0, time.UTC),
	time.Date(2026, 7, 29, 0, 0, 0, 0, time.UTC),
	time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
	time.Date(2026, 10, 28, 0, 0, 0, 0, time.UTC),
	time.Date(2026, 12, 9, 0, 0, 0, 0, time.UTC),
}

// fomcDecember2025 anchors the scenario: the range decided at the December
// 2025 meeting is the one in force when 2026 begins.
var fomcDecember2025 = time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)

// BaselineScenario2026 is the cut-at-alternate-meetings scenario: the Fed
// enters 2026 at 3.50-3.75% and cuts 25 bps at the January, April, July, and
// October meetings, holding at the others.
func BaselineScenario2026() Scenario {
	return Scenario2026(3.50, 3.75, map[int]bool{0: true, 2: true, 4: true, 6: true}, 25)
}

// Scenario2026 builds a 2026 policy scenario from a starting target range,
// the set of meetings that cut (0-indexed into FOMCDecisionDates2026), and
// the cut size in bps. Hold meetings re-assert the prevailing range, which
// keeps the event list one-per-meeting.
func Scenario2026(lower, upper float64, cutMeetings map[int]bool, cutBP float64) Scenario {
	events := []PolicyEvent{{DecisionDate: fomcDecember2025, Lower: lower, Upper: upper}}
	for i, d := range FOMCDecisionDates2026 {
		if cutMeetings[i] {
			lower -= cutBP / 100.0
			upper -= cutBP / 100.0
		}
		events = append(events, PolicyEvent{DecisionDate: d, Lower: lower, Upper: upper})
	}
	return Scenario{Events: events, EffectiveLagDays: 1}
}
