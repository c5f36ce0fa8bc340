/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Akaylee Schema commands. Provides common
configuration loading, logging setup, exit code plumbing, and output helpers
used across all command implementations.
*/

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kleascm/akaylee-schema/pkg/logging"
	"github.com/spf13/viper"
)

// Global logger instance shared by the commands
var logger *logging.Logger

// ExitError carries a process exit code out of a RunE function. A nil Err
// means the command already printed its result and the code alone matters.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("AKAYLEE_SCHEMA")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system from viper state
func SetupLogging() error {
	format := logging.LogFormat(viper.GetString("log_format"))
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
	}

	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		Timestamp: true,
		Caller:    false,
		Colors:    !viper.GetBool("json_logs"),
	}
	if config.OutputDir != "" {
		if err := config.Validate(); err != nil {
			return fmt.Errorf("invalid logging configuration: %w", err)
		}
	}

	l, err := logging.NewLogger(config)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	logger = l
	return nil
}

// CloseLogging flushes and closes the shared logger
func CloseLogging() {
	if logger != nil {
		logger.Close()
		logger = nil
	}
}

// statusMessage is the JSON envelope for error, warning, and success output
type statusMessage struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// jsonOutput reports whether machine readable output was requested
func jsonOutput() bool {
	return viper.GetString("output_format") == "json"
}

// printError prints an error message based on the output format. Errors always
// go to stderr so stdout stays reserved for command results.
func printError(message string) {
	if jsonOutput() {
		printJSON(os.Stderr, statusMessage{Status: "error", Message: message})
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}

// printWarning prints a warning message based on the output format
func printWarning(message string) {
	if jsonOutput() {
		printJSON(os.Stderr, statusMessage{Status: "warning", Message: message})
		return
	}
	fmt.Fprintf(os.Stderr, "Warning: %s\n", message)
}

// printJSON writes v as 4-space-indented JSON, matching the snapshot format
func printJSON(w *os.File, v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to encode output: %v\n", err)
		return
	}
	fmt.Fprintln(w, string(data))
}
