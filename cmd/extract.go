package cmd

import (
	"fmt"

	"github.com/paulmaxus/ddproc/core/config"
	"github.com/paulmaxus/ddproc/core/logger"
	"github.com/paulmaxus/ddproc/feature/donation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the extract command
	extractFormat string
	extractOut    string
)

// extractCmd runs the full extraction pipeline and exports the tables.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract all donation tables from the local data archive",
	Long: `Extract classifies the local data archive, applies the participant
replacement table (when configured) and decodes every donation into one
combined table per data type.

Examples:
  # Write one CSV per table into ./tables
  ddproc extract

  # Write everything into a single SQLite database
  ddproc extract --format sqlite --out donations.sqlite`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractFormat, "format", "csv", "Output format: csv or sqlite")
	extractCmd.Flags().StringVar(&extractOut, "out", "", "Output directory (csv) or file (sqlite); defaults to ./tables or donations.sqlite")
	RootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	specs := donation.DefaultSpecs()

	var rules donation.Replacements
	if cfg.Donation.ReplacementFile != "" {
		rules, err = donation.LoadReplacements(cfg.Donation.ReplacementFile, specs)
		if err != nil {
			return err
		}
		l.Info("replacement table loaded",
			zap.String("file", cfg.Donation.ReplacementFile),
			zap.Int("rules", len(rules)))
	}

	processor := donation.NewProcessor(specs, rules, l)
	tables, err := processor.Run(cfg.Donation.ArchivePath())
	if err != nil {
		return err
	}

	for name, table := range tables {
		l.Info("table extracted",
			zap.String("table", name),
			zap.Int("rows", len(table.Rows)),
			zap.Int("columns", len(table.Columns)))
	}

	switch extractFormat {
	case "csv":
		dir := extractOut
		if dir == "" {
			dir = "tables"
		}
		if err := donation.WriteCSV(dir, tables); err != nil {
			return err
		}
		l.Info("tables written", zap.String("dir", dir))
	case "sqlite":
		path := extractOut
		if path == "" {
			path = "donations.sqlite"
		}
		if err := donation.WriteSQLite(path, tables); err != nil {
			return err
		}
		l.Info("tables written", zap.String("database", path))
	default:
		return fmt.Errorf("unknown output format %q (want csv or sqlite)", extractFormat)
	}

	return nil
}
