// Package main provides the CLI entry point for gridlens.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gridlens/gridlens-go/pkg/gridlens"
	"github.com/gridlens/gridlens-go/pkg/gridlens/config"
	"github.com/gridlens/gridlens-go/pkg/gridlens/export"
	"github.com/gridlens/gridlens-go/pkg/gridlens/loader"
	"github.com/gridlens/gridlens-go/pkg/gridlens/models"
)

var (
	configPath string
	outputPath string
	pretty     bool
	mode       string
	sheetName  string
	tablesDir  string
	skipRows   int
	strict     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridlens [workbook.xlsx|sheet.csv]",
		Short: "Infer table structure in loose spreadsheet workbooks",
		Long: `gridlens reads a workbook whose sheets have no stable machine schema,
detects title and header rows, normalizes the data into typed tables, and
derives per-column aggregates and named domain metrics. Results are emitted
as JSON, optionally with per-table CSV exports.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file path (YAML)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&mode, "mode", "standard", "Analysis mode: light, standard, verbose")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Report a single sheet instead of the whole workbook")
	rootCmd.Flags().StringVar(&tablesDir, "tables-dir", "", "Directory for per-table CSV exports")
	rootCmd.Flags().IntVar(&skipRows, "skip-rows", 0, "Physical rows to skip at the top of a CSV source")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Fail when a sheet has no detectable header row")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// A .env next to the binary may carry GRIDLENS_* overrides.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	setupLogger(cfg.Logging)

	var analysisMode gridlens.Mode
	switch mode {
	case "light":
		analysisMode = gridlens.ModeLight
	case "standard":
		analysisMode = gridlens.ModeStandard
	case "verbose":
		analysisMode = gridlens.ModeVerbose
	default:
		return fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", mode)
	}

	wb, err := loadSource(inputPath)
	if err != nil {
		return err
	}

	opts := gridlens.Options{
		Mode:      analysisMode,
		Detection: cfg.DetectionParams(),
		Rules:     cfg.Rules(),
		Strict:    strict,
	}

	report, err := gridlens.Analyze(wb, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	jsonData, err := marshalReport(report)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Println(string(jsonData))
	}

	if tablesDir != "" {
		if err := writeTableFiles(report, tablesDir); err != nil {
			return fmt.Errorf("failed to write table files: %w", err)
		}
	}

	return nil
}

// loadSource reads the input, routing CSV sources through the row-skip path.
func loadSource(path string) (*models.WorkbookData, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return loader.LoadCSV(path, skipRows)
	}
	return loader.Load(path)
}

// marshalReport serializes either the whole report or the one sheet
// selected with --sheet.
func marshalReport(report *models.WorkbookReport) ([]byte, error) {
	if sheetName == "" {
		return export.ToJSON(report, pretty)
	}

	sheet, ok := report.Sheets[strings.TrimSpace(sheetName)]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", gridlens.ErrSheetNotFound, sheetName, report.BookName)
	}
	return export.SheetToJSON(&sheet, pretty)
}

// writeTableFiles exports every analyzed table as CSV, one file per table,
// named sheet.csv for plain sheets and sheet_tableN.csv for title-delimited
// ones.
func writeTableFiles(report *models.WorkbookReport, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, name := range report.SheetNames {
		sheet, ok := report.Sheets[name]
		if !ok {
			continue
		}
		for i, table := range sheet.Tables {
			filename := filepath.Join(dir, safeFileName(name)+".csv")
			if len(sheet.Tables) > 1 {
				filename = filepath.Join(dir, fmt.Sprintf("%s_table%d.csv", safeFileName(name), i+1))
			}

			f, err := os.Create(filename)
			if err != nil {
				return err
			}
			if err := export.TableToCSV(f, table.Table); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
		}
	}

	return nil
}

// safeFileName replaces path separators in sheet names.
func safeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, name)
}

// setupLogger configures the process-wide slog handler.
func setupLogger(cfg config.LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
