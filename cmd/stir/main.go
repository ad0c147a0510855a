package main

import (
	"os"

	"github.com/EmilienVaast/STIR-Futures/cmd/stir/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
