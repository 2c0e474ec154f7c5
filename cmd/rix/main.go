package main

import (
	"os"

	"github.com/jostylr/rix-parser-sub000/cmd/rix/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
