/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_writer.go
Description: Utility for writing command reports to the reports directory.
Handles timestamped, run-stamped, and command-specific subdirectory naming.
Ensures directories exist and writes JSON files for easy analysis.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// WriteReport writes a command report to the reports directory with a
// timestamp and a short run ID so repeated runs never collide
func WriteReport(reportDir string, command string, report interface{}) (string, error) {
	if reportDir == "" {
		reportDir = "reports"
	}

	// Ensure reports directory and subdirectory exist
	commandDir := filepath.Join(reportDir, command)
	if err := os.MkdirAll(commandDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	// Generate filename: 2024-06-11_01-30-00_compare_1a2b3c4d.json
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	runID := uuid.New().String()[:8]
	filename := fmt.Sprintf("%s_%s_%s.json", timestamp, command, runID)
	filePath := filepath.Join(commandDir, filename)

	// Marshal report to JSON
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	// Write to file
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return filePath, nil
}
