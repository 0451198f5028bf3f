package main

import (
	"os"

	"github.com/mrhapile/BuriBuri-Trading/cmd/advisor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
