// Package main is the entry point for the customer-pricing CLI.
package main

import (
	"os"

	"customer-pricing/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
