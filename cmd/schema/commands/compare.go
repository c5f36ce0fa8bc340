/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: compare.go
Description: Compare command implementation for the Akaylee Schema tool. Loads
two schema snapshots, diffs them column by column, and reports whether the
schemas drifted apart.
*/

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/kleascm/akaylee-schema/pkg/comparison"
	"github.com/kleascm/akaylee-schema/pkg/interfaces"
	"github.com/kleascm/akaylee-schema/pkg/snapshot"
	"github.com/kleascm/akaylee-schema/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// compareReport is the full JSON output and report artifact for a comparison
type compareReport struct {
	Schema1Path  string                `json:"schema1_path"`
	Schema2Path  string                `json:"schema2_path"`
	AreIdentical bool                  `json:"are_identical"`
	Differences  comparison.DiffReport `json:"differences"`
}

// compareSummary is the JSON output under --summary-only
type compareSummary struct {
	Schema1Path  string `json:"schema1_path"`
	Schema2Path  string `json:"schema2_path"`
	AreIdentical bool   `json:"are_identical"`
}

// PerformSchemaComparison diffs two schema snapshot files
func PerformSchemaComparison(cmd *cobra.Command, args []string) error {
	file1, file2 := args[0], args[1]

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging for comparison
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	if !jsonOutput() {
		fmt.Println("\n--- Comparing Schemas ---")
		fmt.Printf("Schema 1: %s\n", file1)
		fmt.Printf("Schema 2: %s\n", file2)
	}

	schema1, exitErr := loadComparisonSnapshot(file1)
	if exitErr != nil {
		return exitErr
	}
	schema2, exitErr := loadComparisonSnapshot(file2)
	if exitErr != nil {
		return exitErr
	}

	report, different := comparison.CompareSchemas(schema1, schema2)
	logger.LogComparison(file1, file2, !different, len(report), nil)

	writeCompareReport(file1, file2, report, different)

	if jsonOutput() {
		if viper.GetBool("compare.summary_only") {
			printJSON(os.Stdout, compareSummary{
				Schema1Path:  file1,
				Schema2Path:  file2,
				AreIdentical: !different,
			})
		} else {
			printJSON(os.Stdout, compareReport{
				Schema1Path:  file1,
				Schema2Path:  file2,
				AreIdentical: !different,
				Differences:  report,
			})
		}
		if different {
			return &ExitError{Code: 1}
		}
		return nil
	}

	fmt.Println("\n--- Comparison Results ---")
	if different {
		fmt.Println("Schemas are DIFFERENT!")
		if viper.GetBool("compare.summary_only") {
			for _, name := range report.ColumnNames() {
				fmt.Printf("  %s: %s\n", name, report[name].Status)
			}
		} else {
			printJSON(os.Stdout, report)
		}
		fmt.Println("--------------------------")
		fmt.Println()
		return &ExitError{Code: 1}
	}

	fmt.Println("Schemas are IDENTICAL.")
	fmt.Println("--------------------------")
	fmt.Println()
	return nil
}

// loadComparisonSnapshot loads one snapshot, printing the contract error
// message and mapping every failure to exit code 2.
func loadComparisonSnapshot(path string) (*interfaces.Schema, *ExitError) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		printError(fmt.Sprintf("Schema file not found: '%s'", path))
		return nil, &ExitError{Code: 2}
	}

	schema, err := snapshot.Load(path)
	if err != nil {
		if errors.Is(err, interfaces.ErrMalformedInput) {
			printError(fmt.Sprintf("Invalid JSON format in schema file '%s': %v", path, err))
		} else {
			printError(fmt.Sprintf("Error loading schema file '%s': %v", path, err))
		}
		return nil, &ExitError{Code: 2}
	}
	return schema, nil
}

// writeCompareReport writes the run report artifact when a report dir is set
func writeCompareReport(file1 string, file2 string, report comparison.DiffReport, different bool) {
	reportDir := viper.GetString("report_dir")
	if reportDir == "" {
		return
	}

	payload := compareReport{
		Schema1Path:  file1,
		Schema2Path:  file2,
		AreIdentical: !different,
		Differences:  report,
	}
	path, err := utils.WriteReport(reportDir, "compare", payload)
	if err != nil {
		logger.Warning("Failed to write report", map[string]interface{}{"error": err.Error()})
		return
	}
	logger.LogReport(path, nil)
}
