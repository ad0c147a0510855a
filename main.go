package main

import (
	"fmt"
	"log"
	"os"

	"github.com/EmilienVaast/STIR-Futures/report"
	"github.com/EmilienVaast/STIR-Futures/stir"
)

func main() {
	cfg := report.DefaultConfig()
	scenario := stir.BaselineScenario2026()

	for _, ct := range []stir.ContractType{stir.SR3, stir.SR1, stir.ZQ} {
		fmt.Printf("\nExpected 2026 settlements: %s\n", ct)
		table, err := report.Expected(cfg, ct, 2026, scenario)
		if err != nil {
			log.Fatal(err)
		}
		table.Render(os.Stdout)
	}
}
