package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mensaplan/mensaplan/pkg/fetcher"
	"github.com/mensaplan/mensaplan/pkg/mensa"
)

var canteensCmd = &cobra.Command{
	Use:   "canteens",
	Short: "List the known canteen identifiers",
	RunE:  runCanteens,
}

func init() {
	rootCmd.AddCommand(canteensCmd)
}

func runCanteens(cmd *cobra.Command, args []string) error {
	for _, c := range mensa.Canteens() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", c.Slug(), fetcher.MenuURL(c.Slug()))
	}
	return nil
}
