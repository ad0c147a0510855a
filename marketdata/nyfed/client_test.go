package nyfed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EmilienVaast/STIR-Futures/marketdata/nyfed"
)

const samplePayload = `{
	"refRates": [
		{"effectiveDate": "2025-06-12", "percentRate": 4.28},
		{"effectiveDate": "2025-06-11", "percentRate": "4.31"},
		{"effectiveDate": "bogus", "percentRate": 4.00},
		{"effectiveDate": "2025-06-13", "percentRate": 4.29}
	]
}`

func TestClient_SOFR(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"startDate": r.URL.Query().Get("startDate"),
			"endDate":   r.URL.Query().Get("endDate"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	client := nyfed.NewClient(nyfed.WithEndpoints(srv.URL, srv.URL))
	start := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)

	series, err := client.SOFR(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-11", gotQuery["startDate"])
	assert.Equal(t, "2025-06-13", gotQuery["endDate"])

	// Bad row dropped, remainder sorted ascending.
	require.Len(t, series, 3)
	assert.Equal(t, "2025-06-11", series[0].Date.Format("2006-01-02"))
	assert.InDelta(t, 4.31, series[0].Rate, 1e-12)
	assert.Equal(t, "2025-06-13", series[2].Date.Format("2006-01-02"))
	assert.InDelta(t, 4.29, series[2].Rate, 1e-12)
}

func TestClient_OpenDateRange(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("startDate"))
		assert.False(t, r.URL.Query().Has("endDate"))
		_, _ = w.Write([]byte(`{"refRates": []}`))
	}))
	defer srv.Close()

	client := nyfed.NewClient(nyfed.WithEndpoints(srv.URL, srv.URL))
	series, err := client.EFFR(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := nyfed.NewClient(nyfed.WithEndpoints(srv.URL, srv.URL))
	_, err := client.SOFR(context.Background(), time.Time{}, time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
