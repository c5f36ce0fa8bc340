/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: AkayleeSchema.go
Description: Batch drift auditor for tabular datasets. Scans a data directory in
sorted order, infers a schema per file, diffs consecutive schemas to surface
drift, and writes detailed HTML/JSON reports to ./drift_output. Modular, clean,
and beautiful.
*/

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/kleascm/akaylee-schema/pkg/comparison"
	"github.com/kleascm/akaylee-schema/pkg/inference"
	"github.com/kleascm/akaylee-schema/pkg/interfaces"
	"github.com/kleascm/akaylee-schema/pkg/loader"
)

type DriftResult struct {
	DataFile string   `json:"data_file"`
	Status   string   `json:"status"`
	Error    string   `json:"error,omitempty"`
	Rows     int      `json:"rows,omitempty"`
	Columns  int      `json:"columns,omitempty"`
	Changed  []string `json:"changed_columns,omitempty"`
	Duration string   `json:"duration"`
}

// auditFile infers a schema for one file and diffs it against the baseline.
// Returns the updated baseline; load and inference errors keep the old one.
func auditFile(path string, engine *inference.Engine, baseline *interfaces.Schema) (DriftResult, *interfaces.Schema) {
	start := time.Now()
	result := DriftResult{DataFile: path, Status: "baseline"}

	table, err := loader.LoadTable(path)
	if err != nil {
		result.Status = "error"
		result.Error = err.Error()
		result.Duration = time.Since(start).String()
		return result, baseline
	}
	result.Rows = table.Rows()

	schema, err := engine.InferSchema(table)
	if err != nil {
		result.Status = "error"
		result.Error = err.Error()
		result.Duration = time.Since(start).String()
		return result, baseline
	}
	result.Columns = len(schema.Columns)

	if baseline != nil {
		report, different := comparison.CompareSchemas(baseline, schema)
		if different {
			result.Status = "drift"
			result.Changed = report.ColumnNames()
		} else {
			result.Status = "ok"
		}
	}

	result.Duration = time.Since(start).String()
	return result, schema
}

func supportedData(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".json", ".xlsx", ".xlsm":
		return true
	}
	return false
}

func main() {
	var results []DriftResult
	defer func() {
		if r := recover(); r != nil {
			timestamp := time.Now().Format("2006-01-02_15-04-05")
			jsonPath := filepath.Join("./drift_output", fmt.Sprintf("schema_drift_report_panic_%s.json", timestamp))
			htmlPath := filepath.Join("./drift_output", fmt.Sprintf("schema_drift_report_panic_%s.html", timestamp))
			jsonData, _ := json.MarshalIndent(results, "", "  ")
			os.WriteFile(jsonPath, jsonData, 0644)
			writeHTMLReport(htmlPath, results)
		}
	}()

	dataDir := "./data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}
	outputDir := "./drift_output"
	os.MkdirAll(outputDir, 0755)

	files, _ := filepath.Glob(filepath.Join(dataDir, "*"))
	sort.Strings(files)

	engine := inference.NewEngine()
	var baseline *interfaces.Schema

	for _, file := range files {
		if !supportedData(file) {
			continue
		}
		var res DriftResult
		res, baseline = auditFile(file, engine, baseline)
		results = append(results, res)

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		jsonPath := filepath.Join(outputDir, fmt.Sprintf("schema_drift_report_live_%s.json", timestamp))
		htmlPath := filepath.Join(outputDir, fmt.Sprintf("schema_drift_report_live_%s.html", timestamp))
		jsonData, _ := json.MarshalIndent(results, "", "  ")
		os.WriteFile(jsonPath, jsonData, 0644)
		writeHTMLReport(htmlPath, results)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	jsonPath := filepath.Join(outputDir, fmt.Sprintf("schema_drift_report_final_%s.json", timestamp))
	htmlPath := filepath.Join(outputDir, fmt.Sprintf("schema_drift_report_final_%s.html", timestamp))
	jsonData, _ := json.MarshalIndent(results, "", "  ")
	os.WriteFile(jsonPath, jsonData, 0644)
	writeHTMLReport(htmlPath, results)
}

func writeHTMLReport(path string, results []DriftResult) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	f.WriteString("<html><head><title>Akaylee Schema Drift Report</title><style>body{font-family:sans-serif;}table{border-collapse:collapse;}th,td{border:1px solid #ccc;padding:4px;}th{background:#eee;}tr.drift{background:#fdd;}tr.ok{background:#dfd;}tr.error{background:#ffd;}tr.baseline{background:#ddf;}</style></head><body>")
	f.WriteString("<h1>Akaylee Schema Drift Report</h1><table><tr><th>Data File</th><th>Status</th><th>Error</th><th>Rows</th><th>Columns</th><th>Changed Columns</th><th>Duration</th></tr>")
	for _, r := range results {
		rowClass := r.Status
		f.WriteString(fmt.Sprintf("<tr class='%s'><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%d</td><td>%s</td><td>%s</td></tr>", rowClass, htmlEscape(r.DataFile), r.Status, htmlEscape(r.Error), r.Rows, r.Columns, htmlEscape(strings.Join(r.Changed, ", ")), r.Duration))
	}
	f.WriteString("</table></body></html>")
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
