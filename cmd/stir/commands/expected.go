package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EmilienVaast/STIR-Futures/report"
	"github.com/EmilienVaast/STIR-Futures/stir"
)

var expectedYear int

var expectedCmd = &cobra.Command{
	Use:       "expected [zq|sr1|sr3|all]",
	Short:     "Project expected settlements from the baseline policy scenario",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"zq", "sr1", "sr3", "all"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if expectedYear != 2026 {
			return fmt.Errorf("no policy scenario defined for %d (only 2026)", expectedYear)
		}
		cfg := report.DefaultConfig()
		scenario := stir.BaselineScenario2026()

		for _, ct := range selectTypes(args[0]) {
			table, err := report.Expected(cfg, ct, expectedYear, scenario)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nExpected %d settlements: %s\n", expectedYear, ct)
			table.Render(cmd.OutOrStdout())
		}
		return nil
	},
}

func init() {
	expectedCmd.Flags().IntVar(&expectedYear, "year", 2026, "contract year")
	rootCmd.AddCommand(expectedCmd)
}
