package marketdata

import (
	"context"
	"sort"
	"time"
)

// Series names understood by the cache and stores.
const (
	SeriesSOFR = "sofr"
	SeriesEFFR = "effr"
)

// Fixing is one published overnight-rate observation, in percent.
type Fixing struct {
	Date time.Time
	Rate float64
}

// Series is an ascending, duplicate-free run of business-day fixings.
type Series []Fixing

// Normalize sorts by date and drops duplicate dates, keeping the last value
// seen for each date.
func (s Series) Normalize() Series {
	if len(s) == 0 {
		return s
	}
	byDate := make(map[string]Fixing, len(s))
	for _, f := range s {
		byDate[f.Date.Format("2006-01-02")] = f
	}
	out := make(Series, 0, len(byDate))
	for _, f := range byDate {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Covers reports whether the series spans [start, end]. Zero bounds are open.
func (s Series) Covers(start, end time.Time) bool {
	if len(s) == 0 {
		return false
	}
	if !start.IsZero() && start.Before(s[0].Date) {
		return false
	}
	if !end.IsZero() && end.After(s[len(s)-1].Date) {
		return false
	}
	return true
}

// Clip returns the sub-series within [start, end]. Zero bounds are open.
func (s Series) Clip(start, end time.Time) Series {
	out := make(Series, 0, len(s))
	for _, f := range s {
		if !start.IsZero() && f.Date.Before(start) {
			continue
		}
		if !end.IsZero() && f.Date.After(end) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Merge combines two series, values from other winning on shared dates.
func (s Series) Merge(other Series) Series {
	combined := make(Series, 0, len(s)+len(other))
	combined = append(combined, s...)
	combined = append(combined, other...)
	return combined.Normalize()
}

// Fetcher retrieves a fixing series from the upstream source for a range.
type Fetcher func(ctx context.Context, start, end time.Time) (Series, error)

// Feed supplies fixings by date.
type Feed interface {
	RateOn(date time.Time) (float64, bool)
}

// MapFeed is a static map-backed Feed for development and testing.
type MapFeed struct {
	rates map[string]float64
}

// NewMapFeed builds a Feed from YYYY-MM-DD keyed rates.
func NewMapFeed(rates map[string]float64) *MapFeed {
	return &MapFeed{rates: rates}
}

func (m *MapFeed) RateOn(date time.Time) (float64, bool) {
	val, ok := m.rates[date.Format("2006-01-02")]
	return val, ok
}

// SeriesFeed adapts a Series to the Feed interface.
func (s Series) Feed() Feed {
	rates := make(map[string]float64, len(s))
	for _, f := range s {
		rates[f.Date.Format("2006-01-02")] = f.Rate
	}
	return &MapFeed{rates: rates}
}
