package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/EmilienVaast/STIR-Futures/marketdata"
	"github.com/EmilienVaast/STIR-Futures/marketdata/cache"
	"github.com/EmilienVaast/STIR-Futures/marketdata/nyfed"
	"github.com/EmilienVaast/STIR-Futures/marketdata/pgstore"
)

var (
	fetchStart   string
	fetchEnd     string
	fetchRefresh bool
)

var fetchCmd = &cobra.Command{
	Use:       "fetch [sofr|effr]",
	Short:     "Fetch and cache NY Fed reference rates",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"sofr", "effr"},
	RunE: func(cmd *cobra.Command, args []string) error {
		series := args[0]
		start, end, err := parseRange(fetchStart, fetchEnd)
		if err != nil {
			return err
		}

		fixings, err := getFixings(cmd.Context(), series, start, end, fetchRefresh)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Fetched %d rows for %s.\n", len(fixings), series)
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchStart, "start", "", "start date (YYYY-MM-DD)")
	fetchCmd.Flags().StringVar(&fetchEnd, "end", "", "end date (YYYY-MM-DD)")
	fetchCmd.Flags().BoolVar(&fetchRefresh, "refresh", false, "force refresh from the NY Fed API")
	rootCmd.AddCommand(fetchCmd)
}

func parseRange(startStr, endStr string) (start, end time.Time, err error) {
	if startStr != "" {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return start, end, fmt.Errorf("invalid --start: %w", err)
		}
	}
	if endStr != "" {
		end, err = time.Parse("2006-01-02", endStr)
		if err != nil {
			return start, end, fmt.Errorf("invalid --end: %w", err)
		}
	}
	return start, end, nil
}

// fixingsStore is satisfied by both the sqlite cache and the Postgres store.
type fixingsStore interface {
	Get(ctx context.Context, name string, fetch marketdata.Fetcher, start, end time.Time, refresh bool) (marketdata.Series, error)
	Close() error
}

// openStore picks the fixings backend: the shared Postgres store when
// STIR_PG_DSN is set (.env is loaded by the root command), the local
// sqlite cache otherwise.
func openStore(ctx context.Context) (fixingsStore, error) {
	if dsn := os.Getenv("STIR_PG_DSN"); dsn != "" {
		st, err := pgstore.Open(dsn, logger)
		if err != nil {
			return nil, err
		}
		if err := st.Init(ctx); err != nil {
			st.Close()
			return nil, err
		}
		return st, nil
	}
	path, err := cache.DefaultPath()
	if err != nil {
		return nil, err
	}
	return cache.Open(path, logger)
}

// getFixings resolves a series through the configured store, hitting the
// NY Fed API only when the stored span does not cover the request.
func getFixings(ctx context.Context, series string, start, end time.Time, refresh bool) (marketdata.Series, error) {
	var fetch marketdata.Fetcher
	client := nyfed.NewClient(nyfed.WithLogger(logger))
	switch series {
	case marketdata.SeriesSOFR:
		fetch = client.SOFR
	case marketdata.SeriesEFFR:
		fetch = client.EFFR
	default:
		return nil, fmt.Errorf("unknown series %q (want sofr or effr)", series)
	}

	db, err := openStore(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.Get(ctx, series, fetch, start, end, refresh)
}
