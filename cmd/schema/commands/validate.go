/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: validate.go
Description: Validate command implementation for the Akaylee Schema tool.
Checks every record of a data file against a schema snapshot and reports
per-record violations with an overall verdict.
*/

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/kleascm/akaylee-schema/pkg/interfaces"
	"github.com/kleascm/akaylee-schema/pkg/loader"
	"github.com/kleascm/akaylee-schema/pkg/snapshot"
	"github.com/kleascm/akaylee-schema/pkg/utils"
	"github.com/kleascm/akaylee-schema/pkg/validation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// validateReport is the JSON output and report artifact for a validation run
type validateReport struct {
	DataFile      string              `json:"data_file"`
	SchemaFile    string              `json:"schema_file"`
	OverallValid  bool                `json:"overall_valid"`
	RecordResults []validation.Result `json:"record_results,omitempty"`
}

// PerformSchemaValidation validates a data file against a schema snapshot
func PerformSchemaValidation(cmd *cobra.Command, args []string) error {
	dataFile, schemaFile := args[0], args[1]

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging for validation
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	if !jsonOutput() {
		fmt.Println("\n--- Validating Data Against Schema ---")
		fmt.Printf("Data File: %s\n", dataFile)
		fmt.Printf("Schema File: %s\n", schemaFile)
	}

	if _, err := os.Stat(dataFile); os.IsNotExist(err) {
		printError(fmt.Sprintf("Data file not found: '%s'", dataFile))
		return &ExitError{Code: 1}
	}
	if _, err := os.Stat(schemaFile); os.IsNotExist(err) {
		printError(fmt.Sprintf("Schema file not found: '%s'", schemaFile))
		return &ExitError{Code: 1}
	}

	table, err := loader.LoadTable(dataFile)
	if err != nil {
		printError(dataLoadMessage(dataFile, err))
		return &ExitError{Code: 1}
	}
	logger.LogLoad(dataFile, table.Rows(), len(table.Columns), nil)

	if table.Rows() == 0 || len(table.Columns) == 0 {
		printWarning("No data or empty DataFrame inferred from data file. No validation performed.")
		return nil
	}

	schema, err := snapshot.Load(schemaFile)
	if err != nil {
		if errors.Is(err, interfaces.ErrMalformedInput) {
			printError(fmt.Sprintf("Invalid JSON format in schema file '%s': %v", schemaFile, err))
		} else {
			printError(fmt.Sprintf("An error occurred while loading the schema file '%s': %v", schemaFile, err))
		}
		return &ExitError{Code: 1}
	}

	summaryOnly := viper.GetBool("validate.summary_only")
	maxViolations := viper.GetInt("validate.max_violations")
	showProgress := summaryOnly && !jsonOutput()

	var progress func()
	if showProgress {
		total := table.Rows()
		uiprogress.Start()
		bar := uiprogress.AddBar(total).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return fmt.Sprintf("records %d/%d", b.Current(), total)
		})
		progress = func() { bar.Incr() }
	}

	results, allValid := validation.ValidateTable(table, schema, progress)

	if showProgress {
		uiprogress.Stop()
	}

	invalid := 0
	for _, res := range results {
		if !res.Valid {
			invalid++
		}
	}
	logger.LogValidation(dataFile, len(results), invalid, nil)

	writeValidateReport(dataFile, schemaFile, allValid, results)

	if jsonOutput() {
		payload := validateReport{
			DataFile:     dataFile,
			SchemaFile:   schemaFile,
			OverallValid: allValid,
		}
		if !summaryOnly {
			payload.RecordResults = results
		}
		printJSON(os.Stdout, payload)
		if !allValid {
			return &ExitError{Code: 1}
		}
		return nil
	}

	if !summaryOnly {
		fmt.Println("\n--- Validation Results (Detail) ---")
		for _, res := range results {
			printRecordResult(res, maxViolations)
		}
	}

	fmt.Println("\n--------------------------")
	if allValid {
		fmt.Println("All records are VALID according to the schema.")
	} else {
		fmt.Println("Some records are INVALID according to the schema. Review details above.")
	}
	fmt.Printf("Total records: %d | Valid: %d | Invalid: %d\n", len(results), len(results)-invalid, invalid)
	fmt.Println("--------------------------")
	fmt.Println()

	if !allValid {
		return &ExitError{Code: 1}
	}
	return nil
}

// printRecordResult prints one record verdict with its violations, truncating
// the listing when a violation cap is set.
func printRecordResult(res validation.Result, maxViolations int) {
	if res.Valid {
		fmt.Printf("Record %d: VALID\n", res.RecordNumber)
		return
	}

	fmt.Printf("Record %d: INVALID\n", res.RecordNumber)
	shown := res.Errors
	truncated := 0
	if maxViolations > 0 && len(shown) > maxViolations {
		truncated = len(shown) - maxViolations
		shown = shown[:maxViolations]
	}
	for _, violation := range shown {
		fmt.Printf("   - %s\n", violation)
	}
	if truncated > 0 {
		fmt.Printf("   ... and %d more\n", truncated)
	}
}

// dataLoadMessage maps a loader failure to the contract error message
func dataLoadMessage(dataFile string, err error) string {
	switch {
	case errors.Is(err, interfaces.ErrUnsupportedFormat):
		return fmt.Sprintf("Unsupported data file type: '%s'. Supported types are CSV, XLSX, JSON.", dataFile)
	case errors.Is(err, interfaces.ErrMalformedInput) && strings.EqualFold(filepath.Ext(dataFile), ".json"):
		return fmt.Sprintf("Invalid JSON format in data file '%s': %v", dataFile, err)
	default:
		return fmt.Sprintf("An error occurred while reading the data file '%s': %v", dataFile, err)
	}
}

// writeValidateReport writes the run report artifact when a report dir is set
func writeValidateReport(dataFile string, schemaFile string, allValid bool, results []validation.Result) {
	reportDir := viper.GetString("report_dir")
	if reportDir == "" {
		return
	}

	payload := validateReport{
		DataFile:      dataFile,
		SchemaFile:    schemaFile,
		OverallValid:  allValid,
		RecordResults: results,
	}
	path, err := utils.WriteReport(reportDir, "validate", payload)
	if err != nil {
		logger.Warning("Failed to write report", map[string]interface{}{"error": err.Error()})
		return
	}
	logger.LogReport(path, nil)
}
