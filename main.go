package main

import (
	"os"

	"github.com/plantops/gspmon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
