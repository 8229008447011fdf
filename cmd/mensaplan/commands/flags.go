package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mensaplan/mensaplan/pkg/mensa"
)

var flagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "List the allergen and additive codes used in menus",
	RunE:  runFlags,
}

func init() {
	rootCmd.AddCommand(flagsCmd)
}

func runFlags(cmd *cobra.Command, args []string) error {
	for _, f := range mensa.Flags() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-4s %s\n", f.Abbreviation(), f.Name())
	}
	return nil
}
