/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: csv_loader.go
Description: CSV table loader. The first row is the header; cells are sniffed
into typed values since CSV carries no type information of its own. Ragged rows
are malformed input.
*/

package loader

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kleascm/akaylee-schema/pkg/interfaces"
)

// CSVLoader loads comma-separated files.
type CSVLoader struct{}

// Supports reports whether the path names a CSV file.
func (l *CSVLoader) Supports(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}

// Load reads the whole file into the uniform table form. A file with no
// rows at all produces a table with no columns; a header-only file produces
// columns with zero rows. Neither is an error here.
func (l *CSVLoader) Load(path string) (*interfaces.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrIOFailure, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading '%s': %v", interfaces.ErrMalformedInput, path, err)
	}

	table := &interfaces.Table{Source: path}
	if len(rows) == 0 {
		return table, nil
	}

	for _, name := range uniqueNames(rows[0]) {
		table.Columns = append(table.Columns, &interfaces.Column{Name: name})
	}

	// csv.ReadAll enforces a uniform field count, so every row matches the
	// header width.
	for _, row := range rows[1:] {
		for i, col := range table.Columns {
			col.Values = append(col.Values, sniffCell(row[i]))
		}
	}

	for _, col := range table.Columns {
		col.StorageType = storageType(col.Values)
	}
	return table, nil
}

// sniffCell maps raw CSV text to a typed value: empty cells are null, then
// integers, floats, booleans and ISO date/times are recognized by parsing,
// and everything else stays text. NaN and infinity spellings stay text so
// every numeric value survives JSON round-trips.
func sniffCell(s string) interfaces.Value {
	if s == "" {
		return interfaces.Null()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return interfaces.IntValue(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return interfaces.FloatValue(f)
	}
	if strings.EqualFold(s, "true") {
		return interfaces.BoolValue(true)
	}
	if strings.EqualFold(s, "false") {
		return interfaces.BoolValue(false)
	}
	if t, ok := interfaces.ParseTime(s); ok {
		return interfaces.TimeValue(t)
	}
	return interfaces.StringValue(s)
}

// uniqueNames disambiguates duplicate header names with a positional
// suffix, keeping the first occurrence untouched. Blank header cells get a
// synthesized positional name so inferred schemas keep unique, non-empty
// column names.
func uniqueNames(header []string) []string {
	counts := make(map[string]int)
	names := make([]string, len(header))
	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		counts[name]++
		if counts[name] > 1 {
			name = fmt.Sprintf("%s_%d", name, counts[name])
		}
		names[i] = name
	}
	return names
}
