package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mensaplan/mensaplan/internal/logger"
	"github.com/mensaplan/mensaplan/internal/output"
	"github.com/mensaplan/mensaplan/pkg/mensa"
)

// dayRecord is one output record: a date with its menu.
type dayRecord struct {
	Date string     `json:"date" yaml:"date"`
	Menu mensa.Menu `json:"menu" yaml:"menu"`
}

// weekRecord wraps a whole week plus warnings for single-document
// formats.
type weekRecord struct {
	Canteen  string          `json:"canteen" yaml:"canteen"`
	Days     []dayRecord     `json:"days" yaml:"days"`
	Warnings []mensa.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Fetch and print a canteen's menu for the current week",
	Long: `Fetch the current week's menu page of a canteen and print the
extracted dishes grouped by date.

Recoverable parse problems (a malformed price, an unknown allergen
code) never abort the extraction; pass --show-warnings to include them
in the output.`,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)

	flags := menuCmd.Flags()
	flags.StringP("canteen", "c", "", "canteen identifier (see 'mensaplan canteens')")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "json", "output format: json, jsonl, yaml")
	flags.Bool("show-warnings", false, "include parser warnings in the output")
	flags.Duration("timeout", 30*time.Second, "request timeout")

	_ = menuCmd.MarkFlagRequired("canteen")

	_ = viper.BindPFlag("canteen", flags.Lookup("canteen"))
}

func runMenu(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slug, _ := cmd.Flags().GetString("canteen")
	canteen, err := mensa.CanteenFromSlug(slug)
	if err != nil {
		logError("%v", err)
		return err
	}

	formatStr, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatStr)
	if err != nil {
		logError("%v", err)
		return err
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")

	client := mensa.New(mensa.WithTimeout(timeout))
	defer func() { _ = client.Close() }()

	logger.Info("fetching menu", "canteen", canteen.Slug())
	result, err := client.GetMenu(ctx, canteen)
	if err != nil {
		logger.Error("extraction failed", "canteen", canteen.Slug(), "error", err)
		return err
	}
	logger.Info("menu extracted",
		"canteen", canteen.Slug(),
		"days", len(result.Days),
		"warnings", len(result.Warnings))

	outFile := os.Stdout
	if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
		f, err := os.Create(outPath) //#nosec G304 -- CLI tool writes to user-specified output file
		if err != nil {
			logError("failed to create output file %s: %v", outPath, err)
			return err
		}
		defer func() { _ = f.Close() }()
		outFile = f
	}

	writer, err := output.NewWriter(outFile, format)
	if err != nil {
		return err
	}
	defer func() { _ = writer.Close() }()

	showWarnings, _ := cmd.Flags().GetBool("show-warnings")
	return writeResult(writer, format, canteen, result, showWarnings)
}

// writeResult renders a Result: JSONL gets one record per day, the
// document formats get the whole week in one record. Days are emitted
// in ascending date order so repeated runs produce identical output.
func writeResult(writer output.Writer, format output.Format, canteen mensa.Canteen, result *mensa.Result, showWarnings bool) error {
	days := make([]dayRecord, 0, len(result.Days))
	for _, date := range result.Dates() {
		days = append(days, dayRecord{
			Date: date.Format("2006-01-02"),
			Menu: result.Days[date],
		})
	}

	if format == output.FormatJSONL {
		for _, day := range days {
			if err := writer.Write(day); err != nil {
				return err
			}
		}
		if showWarnings {
			for _, w := range result.Warnings {
				if err := writer.Write(w); err != nil {
					return err
				}
			}
		}
		return nil
	}

	week := weekRecord{
		Canteen: canteen.Slug(),
		Days:    days,
	}
	if showWarnings {
		week.Warnings = result.Warnings
	}
	return writer.Write(week)
}
