// Package main provides the CLI entry point for filmperc.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/filmperc/filmperc-go/internal/config"
	"github.com/filmperc/filmperc-go/internal/logging"
	"github.com/filmperc/filmperc-go/pkg/filmperc"
	"github.com/filmperc/filmperc-go/pkg/filmperc/output"
	"github.com/filmperc/filmperc-go/pkg/filmperc/parser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool
	outputPath string
	pretty     bool
	sheetName  string
	title      string
	date       string

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filmperc",
		Short: "Look up film percentages per play week",
		Long: `filmperc reads percentage workbooks grouped into play weeks
("Speelweek 14 jun") and finds the rows whose title resembles a query.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "filmperc.toml", "Configuration file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	searchCmd := &cobra.Command{
		Use:   "search [percentages.xlsx]",
		Short: "Find titles in the play week of a date",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearch,
	}
	searchCmd.Flags().StringVarP(&title, "title", "t", "", "Title to look for")
	searchCmd.Flags().StringVarP(&date, "date", "d", "", "Play week date (DD-MM-YYYY)")
	searchCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (default: workbook.percentages_sheet)")
	searchCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	searchCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	_ = searchCmd.MarkFlagRequired("title")
	_ = searchCmd.MarkFlagRequired("date")

	weeksCmd := &cobra.Command{
		Use:   "weeks [percentages.xlsx]",
		Short: "List the play weeks of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runWeeks,
	}
	weeksCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (default: workbook.percentages_sheet)")
	weeksCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	invoiceCmd := &cobra.Command{
		Use:   "invoice [invoice.xlsx]",
		Short: "Extract invoice lines as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInvoice,
	}
	invoiceCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (default: workbook.invoice_sheet or the first sheet)")
	invoiceCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	invoiceCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(searchCmd, weeksCmd, invoiceCmd, newServeCommand())
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, _, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	logger, err = logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	opts := cfg.SearchOptions()
	opts.Logger = logger

	// Reject a bad date before reading the workbook.
	if _, err := filmperc.ParseDate(date); err != nil {
		return err
	}

	table, err := filmperc.LoadTable(args[0], sheetOr(cfg.Workbook.PercentagesSheet))
	if err != nil {
		return fmt.Errorf("load workbook: %w", err)
	}

	result, searchErr := filmperc.FindAndMatch(table, title, date, opts)
	var notFound *filmperc.WeekNotFoundError
	if searchErr != nil && !errors.As(searchErr, &notFound) {
		return searchErr
	}

	if err := writeJSON(output.NewSearchResponse(result, table.Header)); err != nil {
		return err
	}
	return searchErr
}

func runWeeks(cmd *cobra.Command, args []string) error {
	table, err := filmperc.LoadTable(args[0], sheetOr(cfg.Workbook.PercentagesSheet))
	if err != nil {
		return fmt.Errorf("load workbook: %w", err)
	}

	segments := filmperc.Segment(table, cfg.SearchOptions())
	duplicates := parser.DuplicateLabels(segments)
	for _, label := range duplicates {
		logger.Warn("play week label occurs more than once", zap.String("label", label))
	}

	jsonData, err := output.ToJSON(output.SummarizeWeeks(segments, duplicates), pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func runInvoice(cmd *cobra.Command, args []string) error {
	invoices, err := filmperc.LoadInvoices(args[0], sheetOr(cfg.Workbook.InvoiceSheet), cfg.InvoiceColumns())
	if err != nil {
		return fmt.Errorf("read invoices: %w", err)
	}
	logger.Debug("invoices read", zap.Int("lines", len(invoices)))
	return writeJSON(invoices)
}

func sheetOr(fallback string) string {
	if sheetName != "" {
		return sheetName
	}
	return fallback
}

func writeJSON(v interface{}) error {
	jsonData, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}
