// Package main is the entry point for the mensaplan CLI.
package main

import (
	"os"

	"github.com/mensaplan/mensaplan/cmd/mensaplan/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
