// Package main is the entry point for the swipetabs application.
package main

import (
	"os"

	"github.com/billie-coop/swipetabs/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
