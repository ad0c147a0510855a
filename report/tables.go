package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/EmilienVaast/STIR-Futures/calendar"
	"github.com/EmilienVaast/STIR-Futures/marketdata"
	"github.com/EmilienVaast/STIR-Futures/stir"
)

// Config carries the pricing configuration shared by the table builders.
type Config struct {
	Engine stir.Engine
	Adjust stir.AdjustmentConfig
}

// DefaultConfig uses the US government calendar, CME rounding, and the
// default SOFR adjustment assumptions.
func DefaultConfig() Config {
	return Config{Engine: stir.NewEngine(), Adjust: stir.DefaultAdjustment}
}

// contractMonths returns the listing months for a contract type.
func contractMonths(ct stir.ContractType) []time.Month {
	if ct == stir.SR3 {
		return []time.Month{time.March, time.June, time.September, time.December}
	}
	months := make([]time.Month, 12)
	for i := range months {
		months[i] = time.Month(i + 1)
	}
	return months
}

func seriesPoints(s marketdata.Series) []stir.RatePoint {
	out := make([]stir.RatePoint, len(s))
	for i, f := range s {
		out[i] = stir.RatePoint{Date: f.Date, Rate: f.Rate}
	}
	return out
}

func fmtDate(t time.Time) string { return t.Format("2006-01-02") }

// Realized reconstructs a year of final settlements for one contract type
// from historical fixings and compares them to official prices. Pass the
// EFFR series for ZQ and the SOFR series for SR1/SR3. Contracts whose data
// is incomplete render as "No Data"; contracts past asof render as expired.
func Realized(cfg Config, ct stir.ContractType, year int, fixings marketdata.Series, asof time.Time, official map[string]float64) (*Table, error) {
	table := NewTable("Contract", "Month", "Ref Start", "Ref End", "Last Trade",
		"Status", "Model Settle", "Official", "Diff (bps)")

	points := seriesPoints(fixings)
	cal := cfg.Engine.Calendar

	for _, month := range contractMonths(ct) {
		c, err := stir.NewContract(ct, year, month)
		if err != nil {
			return nil, err
		}
		start, end := c.ReferencePeriod(cal)
		ltd := c.LastTradingDay(cal)
		monthLabel := fmt.Sprintf("%s %d", month.String()[:3], year)

		officialStr := "-"
		off, hasOfficial := official[c.Code()]
		if hasOfficial {
			officialStr = fmt.Sprintf("%.4f", off)
		}

		if !ltd.Before(asof) {
			table.AddRow(c.Code(), monthLabel, fmtDate(start), fmtDate(end), fmtDate(ltd),
				"Not expired", "-", officialStr, "N/A")
			continue
		}

		// Forward-fill would happily extend a stale fixing past the end of
		// the data; require an actual print for the period's final business
		// day before reconstructing.
		lastNeeded := calendar.PreviousBusinessDay(cal, end)
		haveData := len(fixings) > 0 && !fixings[len(fixings)-1].Date.Before(lastNeeded)

		modelStr, diffStr := "No Data", "N/A"
		path, err := stir.PathFromFixings(points, start, end.AddDate(0, 0, -1))
		if haveData && err == nil {
			res, serr := cfg.Engine.Settle(c, path)
			var incomplete *stir.IncompletePathError
			switch {
			case serr == nil:
				modelStr = fmt.Sprintf("%.4f", res.Price)
				if hasOfficial {
					diffStr = fmt.Sprintf("%.2f", 100.0*absDiff(res.Price, off))
				}
			case errors.As(serr, &incomplete):
				// leave as No Data
			default:
				return nil, serr
			}
		}

		table.AddRow(c.Code(), monthLabel, fmtDate(start), fmtDate(end), fmtDate(ltd),
			"Expired", modelStr, officialStr, diffStr)
	}
	return table, nil
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

// Expected projects a year of settlements for one contract type from a
// policy scenario. ZQ prices off the policy midpoint path directly; SR1 and
// SR3 price off the SOFR-adjusted path.
func Expected(cfg Config, ct stir.ContractType, year int, scen stir.Scenario) (*Table, error) {
	table := NewTable("Contract", "Month", "Ref Start", "Ref End", "Last Trade",
		"Status", "Rate (rnd %)", "Expected Settle")

	cal := cfg.Engine.Calendar

	// The December SR3 quarter runs into mid-March of the following year;
	// hold the last target range through end of April to cover it.
	pathStart := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	pathEnd := time.Date(year+1, 4, 30, 0, 0, 0, 0, time.UTC)
	policy, err := scen.BuildPath(pathStart, pathEnd)
	if err != nil {
		return nil, fmt.Errorf("expected %s %d: %w", ct, year, err)
	}

	path := policy
	if ct == stir.SR1 || ct == stir.SR3 {
		path = stir.AdjustPath(cfg.Adjust, cal, policy)
	}

	for _, month := range contractMonths(ct) {
		c, err := stir.NewContract(ct, year, month)
		if err != nil {
			return nil, err
		}
		start, end := c.ReferencePeriod(cal)
		ltd := c.LastTradingDay(cal)

		res, err := cfg.Engine.Settle(c, path)
		if err != nil {
			return nil, fmt.Errorf("expected %s: %w", c.Code(), err)
		}

		table.AddRow(c.Code(),
			fmt.Sprintf("%s %d", month.String()[:3], year),
			fmtDate(start), fmtDate(end), fmtDate(ltd),
			"Expected",
			fmt.Sprintf("%.*f", res.Convention.RateDecimals, res.RoundedRate),
			fmt.Sprintf("%.4f", res.Price))
	}
	return table, nil
}
