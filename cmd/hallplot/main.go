package main

import (
	"os"

	"github.com/vdobler/hallplot/cmd/hallplot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
