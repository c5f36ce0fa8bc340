/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: get.go
Description: Get command implementation for the Akaylee Schema tool. Infers a
schema from a tabular data file, prints it, and optionally saves it as a
snapshot for later comparison and validation runs.
*/

package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/kleascm/akaylee-schema/pkg/inference"
	"github.com/kleascm/akaylee-schema/pkg/interfaces"
	"github.com/kleascm/akaylee-schema/pkg/loader"
	"github.com/kleascm/akaylee-schema/pkg/snapshot"
	"github.com/kleascm/akaylee-schema/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// getReport is the JSON payload written to the report directory after a run
type getReport struct {
	DataFile string             `json:"data_file"`
	Snapshot string             `json:"snapshot,omitempty"`
	Schema   *interfaces.Schema `json:"schema"`
}

// PerformSchemaInference infers a schema from a data file and reports it
func PerformSchemaInference(cmd *cobra.Command, args []string) error {
	dataFile := args[0]

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging for inference
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	snapshotPath := viper.GetString("get.snapshot_output")

	if !jsonOutput() {
		fmt.Printf("\n--- Inferring Schema from: %s ---\n", dataFile)
		fmt.Printf("Input File: %s\n", dataFile)
		if snapshotPath != "" {
			fmt.Printf("Output File: %s\n", snapshotPath)
		}
	}

	if _, err := os.Stat(dataFile); os.IsNotExist(err) {
		printError(fmt.Sprintf("Input file not found: '%s'", dataFile))
		return &ExitError{Code: 1}
	}

	start := time.Now()
	table, err := loader.LoadTable(dataFile)
	if err != nil {
		printError(fmt.Sprintf("Failed to infer schema: %v", err))
		return &ExitError{Code: 1}
	}
	logger.LogLoad(dataFile, table.Rows(), len(table.Columns), nil)

	engine := inference.NewEngine()
	schema, err := engine.InferSchema(table)
	if err != nil {
		printError(fmt.Sprintf("Failed to infer schema: %v", err))
		return &ExitError{Code: 1}
	}
	logger.LogInference(dataFile, len(schema.Columns), time.Since(start), nil)

	if snapshotPath != "" {
		if err := snapshot.Save(schema, snapshotPath); err != nil {
			printError(fmt.Sprintf("Failed to save schema snapshot: %v", err))
			return &ExitError{Code: 1}
		}
		logger.LogSnapshot(snapshotPath, len(schema.Columns), nil)
	}

	writeGetReport(dataFile, snapshotPath, schema)

	if jsonOutput() {
		if snapshotPath != "" {
			printJSON(os.Stdout, statusMessage{
				Status:  "success",
				Message: fmt.Sprintf("Schema successfully inferred and saved to: %s", snapshotPath),
			})
		} else {
			printJSON(os.Stdout, schema)
		}
		return nil
	}

	if snapshotPath != "" {
		fmt.Printf("Schema successfully inferred and saved to: %s\n", snapshotPath)
	}
	fmt.Println("\n--- Inferred Schema (Preview) ---")
	printJSON(os.Stdout, schema)

	printColumnSummary(schema, viper.GetInt("get.max_preview"))
	return nil
}

// printColumnSummary prints one line per column, capped at maxPreview lines
func printColumnSummary(schema *interfaces.Schema, maxPreview int) {
	fmt.Println("\n--- Column Summary ---")

	shown := len(schema.Columns)
	if maxPreview > 0 && shown > maxPreview {
		shown = maxPreview
	}

	for _, col := range schema.Columns[:shown] {
		nullable := "not nullable"
		if col.Nullable {
			nullable = "nullable"
		}
		values := fmt.Sprintf("%d values", len(col.DataValues))
		if col.ValuesCapped() {
			values = interfaces.TooManyValuesMarker
		}
		fmt.Printf("%s: %s (%s) %s, %s\n", col.Name, col.DataType, col.ActualType, nullable, values)
	}

	if remaining := len(schema.Columns) - shown; remaining > 0 {
		fmt.Printf("... and %d more columns\n", remaining)
	}
}

// writeGetReport writes the run report artifact when a report dir is set
func writeGetReport(dataFile string, snapshotPath string, schema *interfaces.Schema) {
	reportDir := viper.GetString("report_dir")
	if reportDir == "" {
		return
	}

	report := getReport{DataFile: dataFile, Snapshot: snapshotPath, Schema: schema}
	path, err := utils.WriteReport(reportDir, "get", report)
	if err != nil {
		logger.Warning("Failed to write report", map[string]interface{}{"error": err.Error()})
		return
	}
	logger.LogReport(path, nil)
}
