/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger_test.go
Description: Tests for the logging system: config validation, file output,
cleanup of old log files, and the schema lifecycle formatter.
*/

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(dir string) *LoggerConfig {
	return &LoggerConfig{
		Level:     LogLevelDebug,
		Format:    LogFormatText,
		OutputDir: dir,
		MaxFiles:  10,
		Timestamp: true,
		Caller:    false,
		Colors:    false,
	}
}

func TestLoggerConfigValidate(t *testing.T) {
	assert.NoError(t, validConfig("logs").Validate())

	missingDir := validConfig("")
	assert.Error(t, missingDir.Validate())

	badFiles := validConfig("logs")
	badFiles.MaxFiles = 0
	assert.Error(t, badFiles.Validate())

	badFormat := validConfig("logs")
	badFormat.Format = "xml"
	assert.Error(t, badFormat.Validate())

	badLevel := validConfig("logs")
	badLevel.Level = "loud"
	assert.Error(t, badLevel.Validate())
}

func TestLoggerWritesToFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(validConfig(dir))
	require.NoError(t, err)

	logger.Info("schema run started", map[string]interface{}{"source": "data.csv"})
	require.NoError(t, logger.Close())

	files, err := filepath.Glob(filepath.Join(dir, "akaylee-schema_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "schema run started")
	assert.Contains(t, string(content), "data.csv")
}

func TestLoggerCleanupKeepsNewestFiles(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "akaylee-schema_2020-01-01_00-00-00.log")
	older := filepath.Join(dir, "akaylee-schema_2019-01-01_00-00-00.log")
	require.NoError(t, os.WriteFile(older, []byte("older"), 0644))
	require.NoError(t, os.WriteFile(old, []byte("old"), 0644))

	config := validConfig(dir)
	config.MaxFiles = 1
	logger, err := NewLogger(config)
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	files, err := filepath.Glob(filepath.Join(dir, "akaylee-schema_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func formatEntry(t *testing.T, msg string, fields map[string]interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&SchemaFormatter{CustomFormatter: CustomFormatter{}})
	log.WithFields(fields).Info(msg)
	return buf.String()
}

func TestSchemaFormatterStagePrefixes(t *testing.T) {
	cases := []struct {
		message string
		prefix  string
	}{
		{"Table loaded", "[LOAD]"},
		{"Schema inferred", "[INFER]"},
		{"Snapshot saved", "[SNAPSHOT]"},
		{"Schemas compared", "[COMPARE]"},
		{"Records validated", "[VALIDATE]"},
		{"Report written", "[REPORT]"},
	}
	for _, tc := range cases {
		line := formatEntry(t, tc.message, nil)
		assert.Contains(t, line, tc.prefix)
		assert.Contains(t, line, tc.message)
	}

	plain := formatEntry(t, "something else", nil)
	assert.NotContains(t, plain, "[")
}

func TestSchemaFormatterFields(t *testing.T) {
	line := formatEntry(t, "Schema inferred", map[string]interface{}{
		"columns":  3,
		"duration": 250 * time.Millisecond,
	})
	assert.Contains(t, line, "columns=3")
	assert.Contains(t, line, "duration=250ms")
}

func TestCustomFormatterTruncatesLongValues(t *testing.T) {
	long := ""
	for i := 0; i < 10; i++ {
		long += "0123456789"
	}
	line := formatEntry(t, "Records validated", map[string]interface{}{"data_file": long})
	assert.Contains(t, line, "...")
	assert.NotContains(t, line, long)
}
