// Package commands implements the CLI commands for mensaplan.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mensaplan/mensaplan/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "mensaplan",
	Version: version.String(),
	Short:   "Fetch and parse Studierendenwerk Aachen canteen menus",
	Long: `Mensaplan extracts the weekly menus of the Studierendenwerk Aachen
canteens into structured JSON, JSONL or YAML.

Examples:
  # This week's menu of Mensa Academica
  mensaplan menu -c academica

  # One JSON line per day, written to a file
  mensaplan menu -c ahornstrasse --format jsonl -o week.jsonl

  # Include parser warnings (skipped dishes, unknown flag codes)
  mensaplan menu -c vita --show-warnings`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.mensaplan.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".mensaplan")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MENSAPLAN")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
