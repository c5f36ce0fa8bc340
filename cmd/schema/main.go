/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Akaylee Schema tool. Provides
schema inference, snapshot comparison, and record validation commands with
configuration management and structured logging.
*/

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kleascm/akaylee-schema/cmd/schema/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile   string
	outputFormat string
	reportDir    string

	// Logging configuration
	logLevel    string
	logDir      string
	logFormat   string
	logMaxFiles int
	jsonLogs    bool

	// Get configuration
	snapshotOutput string
	maxPreview     int

	// Compare configuration
	compareSummaryOnly bool

	// Validate configuration
	validateSummaryOnly bool
	maxViolations       int
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "akaylee-schema",
		Short: "Akaylee Schema - Schema inference, snapshot, diff, and validation engine",
		Long: `Akaylee Schema is a structural contract tool for tabular data. It infers a
schema from CSV, JSON, and Excel files, snapshots it as JSON, diffs snapshots
to surface schema drift, and validates individual records against a saved
schema with precise per-column violation reporting.`,
		Version:       "1.0.0",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Help()
			return &commands.ExitError{Code: 1}
		},
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output-format", "text", "Output format (text, json)")
	rootCmd.PersistentFlags().StringVar(&reportDir, "report-dir", "", "Directory for JSON run reports (empty = no reports)")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("output_format", rootCmd.PersistentFlags().Lookup("output-format"))
	viper.BindPFlag("report_dir", rootCmd.PersistentFlags().Lookup("report-dir"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))

	// Add get command
	getCmd := &cobra.Command{
		Use:   "get <data-file>",
		Short: "Infer a schema from a data file",
		Long: `Infer a schema from a tabular data file (CSV, JSON, XLSX). The inferred
schema lists every column with its data type, storage type, nullability, and
distinct values. Pass --snapshot-output to save the schema as a snapshot file
for later comparison and validation runs.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.PerformSchemaInference,
	}

	// Add get command flags
	getCmd.Flags().StringVar(&snapshotOutput, "snapshot-output", "", "Path to save the inferred schema JSON")
	getCmd.Flags().IntVar(&maxPreview, "max-preview", 10, "Maximum columns in the text summary (0 = unlimited)")

	viper.BindPFlag("get.snapshot_output", getCmd.Flags().Lookup("snapshot-output"))
	viper.BindPFlag("get.max_preview", getCmd.Flags().Lookup("max-preview"))

	rootCmd.AddCommand(getCmd)

	// Add compare command
	compareCmd := &cobra.Command{
		Use:   "compare <snapshot1> <snapshot2>",
		Short: "Compare two schema snapshot files",
		Long: `Compare two schema snapshot files column by column. Columns present on one
side only are reported as such; shared columns are diffed property by
property (dataType, actualType, nullable, dataValues). Exits 0 when the
schemas are identical, 1 when they differ, and 2 when a snapshot cannot be
loaded.`,
		Args: cobra.ExactArgs(2),
		RunE: commands.PerformSchemaComparison,
	}

	// Add compare command flags
	compareCmd.Flags().BoolVar(&compareSummaryOnly, "summary-only", false, "Show only per-column statuses, not per-property detail")

	viper.BindPFlag("compare.summary_only", compareCmd.Flags().Lookup("summary-only"))

	rootCmd.AddCommand(compareCmd)

	// Add validate command
	validateCmd := &cobra.Command{
		Use:   "validate <data-file> <snapshot>",
		Short: "Validate a data file against a schema snapshot",
		Long: `Validate every record of a data file against a schema snapshot. Each record
is checked for missing columns, extra columns, null violations, and type
violations, in that order. Exits 0 when all records are valid and 1 when any
record is invalid or an input cannot be loaded.`,
		Args: cobra.ExactArgs(2),
		RunE: commands.PerformSchemaValidation,
	}

	// Add validate command flags
	validateCmd.Flags().BoolVar(&validateSummaryOnly, "summary-only", false, "Show only the overall validation summary, not per-record details")
	validateCmd.Flags().IntVar(&maxViolations, "max-violations", 0, "Maximum violations listed per record (0 = unlimited)")

	viper.BindPFlag("validate.summary_only", validateCmd.Flags().Lookup("summary-only"))
	viper.BindPFlag("validate.max_violations", validateCmd.Flags().Lookup("max-violations"))

	rootCmd.AddCommand(validateCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
