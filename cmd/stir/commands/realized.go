package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/EmilienVaast/STIR-Futures/marketdata"
	"github.com/EmilienVaast/STIR-Futures/report"
	"github.com/EmilienVaast/STIR-Futures/stir"
)

var (
	realizedAsof  string
	realizedStart string
	realizedYear  int
)

var realizedCmd = &cobra.Command{
	Use:       "realized [zq|sr1|sr3|all]",
	Short:     "Reconstruct realized final settlements from historical fixings",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"zq", "sr1", "sr3", "all"},
	RunE: func(cmd *cobra.Command, args []string) error {
		asof := time.Now().UTC()
		if realizedAsof != "" {
			var err error
			asof, err = time.Parse("2006-01-02", realizedAsof)
			if err != nil {
				return fmt.Errorf("invalid --asof: %w", err)
			}
		}

		// Fixings from December of the prior year cover the SR3 quarter that
		// starts at the December IMM date.
		start := time.Date(realizedYear-1, 12, 1, 0, 0, 0, 0, time.UTC)
		if realizedStart != "" {
			var err error
			start, err = time.Parse("2006-01-02", realizedStart)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
		}

		cfg := report.DefaultConfig()
		for _, ct := range selectTypes(args[0]) {
			series := marketdata.SeriesSOFR
			if ct == stir.ZQ {
				series = marketdata.SeriesEFFR
			}
			fixings, err := getFixings(cmd.Context(), series, start, asof, false)
			if err != nil {
				return err
			}

			table, err := report.Realized(cfg, ct, realizedYear, fixings, asof, report.Official2025(string(ct)))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nRealized %d settlements: %s\n", realizedYear, ct)
			table.Render(cmd.OutOrStdout())
		}
		return nil
	},
}

func init() {
	realizedCmd.Flags().StringVar(&realizedAsof, "asof", "", "as-of date for expiry status (YYYY-MM-DD, default today)")
	realizedCmd.Flags().StringVar(&realizedStart, "start", "", "first fixing date to load (YYYY-MM-DD)")
	realizedCmd.Flags().IntVar(&realizedYear, "year", 2025, "contract year")
	rootCmd.AddCommand(realizedCmd)
}

func selectTypes(arg string) []stir.ContractType {
	switch arg {
	case "zq":
		return []stir.ContractType{stir.ZQ}
	case "sr1":
		return []stir.ContractType{stir.SR1}
	case "sr3":
		return []stir.ContractType{stir.SR3}
	default:
		return []stir.ContractType{stir.SR3, stir.SR1, stir.ZQ}
	}
}
