package main

import (
	"os"

	"github.com/geoforge/geoprofile/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
