/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: validator.go
Description: Record validator. Checks one record at a time against a schema,
accumulating every violation instead of stopping at the first, so data quality
audits see the complete failure list per record.
*/

package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kleascm/akaylee-schema/pkg/interfaces"
)

// Result is the outcome of validating one record. Records number from 1 in
// source order.
type Result struct {
	RecordNumber int      `json:"record_number"`
	Valid        bool     `json:"is_valid"`
	Errors       []string `json:"errors"`
}

// ValidateRecord checks a record against a schema. Violations accumulate in
// a fixed order: missing schema columns first (declaration order), then
// extra record keys (key order), then per-column null and type checks
// (declaration order). The verdict is true iff no violation was recorded.
func ValidateRecord(record *interfaces.Record, schema *interfaces.Schema) (bool, []string) {
	violations := make([]string, 0)

	for _, col := range schema.Columns {
		if _, ok := record.Get(col.Name); !ok {
			violations = append(violations, fmt.Sprintf("missing column '%s'", col.Name))
		}
	}

	for _, key := range record.Keys() {
		if _, ok := schema.Column(key); !ok {
			violations = append(violations, fmt.Sprintf("extra column '%s' not defined in schema", key))
		}
	}

	for _, col := range schema.Columns {
		value, ok := record.Get(col.Name)
		if !ok {
			continue
		}

		// Absence settles the column one way or the other; no type check runs
		// on an absent value.
		if value.IsAbsent() {
			if !col.Nullable {
				violations = append(violations, fmt.Sprintf("column '%s' cannot be null", col.Name))
			}
			continue
		}

		if msg := checkType(col, value); msg != "" {
			violations = append(violations, msg)
		}
	}

	return len(violations) == 0, violations
}

// ValidateTable runs ValidateRecord over every row of a table. The progress
// callback, when non-nil, fires once per record. The second return is true
// iff every record validated cleanly.
func ValidateTable(table *interfaces.Table, schema *interfaces.Schema, progress func()) ([]Result, bool) {
	results := make([]Result, 0, table.Rows())
	allValid := true

	for i := 0; i < table.Rows(); i++ {
		valid, violations := ValidateRecord(table.Record(i), schema)
		if !valid {
			allValid = false
		}
		results = append(results, Result{
			RecordNumber: i + 1,
			Valid:        valid,
			Errors:       violations,
		})
		if progress != nil {
			progress()
		}
	}

	return results, allValid
}

// checkType verifies a non-absent value against the column's logical type
// and returns the violation message, or "" on a match.
func checkType(col *interfaces.ColumnSchema, value interfaces.Value) string {
	ok := false
	switch col.DataType {
	case interfaces.DataTypeString:
		ok = value.Kind == interfaces.KindString
	case interfaces.DataTypeInteger:
		// Whole numbers only; numeric text does not pass.
		ok = value.IsIntegral()
	case interfaces.DataTypeNumber:
		ok = value.IsNumeric()
	case interfaces.DataTypeBoolean:
		ok = isBooleanValue(value)
	case interfaces.DataTypeDatetime:
		ok = isDatetimeValue(value)
	case interfaces.DataTypeNull:
		// A null column admits only absent values, handled by the caller.
		ok = false
	}

	if ok {
		return ""
	}
	return fmt.Sprintf("column '%s' invalid type: expected %s, got %s (value %s)",
		col.Name, col.DataType, value.TypeName(), renderForMessage(value))
}

// isBooleanValue accepts native booleans and the text forms "true"/"false",
// case-insensitive.
func isBooleanValue(v interfaces.Value) bool {
	if v.Kind == interfaces.KindBool {
		return true
	}
	return v.Kind == interfaces.KindString &&
		(strings.EqualFold(v.Str, "true") || strings.EqualFold(v.Str, "false"))
}

// isDatetimeValue accepts native temporal values and text that parses as one.
func isDatetimeValue(v interfaces.Value) bool {
	if v.Kind == interfaces.KindTime {
		return true
	}
	if v.Kind != interfaces.KindString {
		return false
	}
	_, ok := interfaces.ParseTime(v.Str)
	return ok
}

// renderForMessage quotes string payloads so "5" and 5 stay distinguishable
// in violation text.
func renderForMessage(v interfaces.Value) string {
	if v.Kind == interfaces.KindString {
		return strconv.Quote(v.Str)
	}
	return v.Render()
}
