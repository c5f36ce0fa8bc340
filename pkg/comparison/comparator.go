/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: comparator.go
Description: Schema comparator. Structurally diffs two schemas column by column
and property by property, reporting one-sided columns and per-property
divergences with both sides' values. Symmetric up to the schema1/schema2 labels.
*/

package comparison

import (
	"sort"

	"github.com/kleascm/akaylee-schema/pkg/interfaces"
)

// DiffStatus classifies one column's discrepancy.
type DiffStatus string

const (
	StatusOnlyInSchema1 DiffStatus = "only in schema1"
	StatusOnlyInSchema2 DiffStatus = "only in schema2"
	StatusChanged       DiffStatus = "changed"
)

// Property names reported in a ColumnDiff.
const (
	PropDataType   = "dataType"
	PropActualType = "actualType"
	PropNullable   = "nullable"
	PropDataValues = "dataValues"
)

// FieldDiff carries both sides of one mismatched column property.
type FieldDiff struct {
	Schema1 interface{} `json:"schema1"`
	Schema2 interface{} `json:"schema2"`
}

// ColumnDiff describes one column's discrepancy. One-sided entries carry the
// full column definition from the side that has it; changed entries carry
// the mismatched properties with both sides' values.
type ColumnDiff struct {
	Status     DiffStatus               `json:"status"`
	Column     *interfaces.ColumnSchema `json:"column,omitempty"`
	Properties map[string]FieldDiff     `json:"properties,omitempty"`
}

// DiffReport maps column name to discrepancy. Absent entries mean the column
// is identical in both schemas.
type DiffReport map[string]*ColumnDiff

// ColumnNames returns the differing column names, sorted.
func (r DiffReport) ColumnNames() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CompareSchemas diffs two schemas and reports every discrepancy. The second
// return is true iff the report is non-empty. Swapping the inputs swaps the
// schema1/schema2 labels but preserves the set of differing columns and
// properties.
func CompareSchemas(schema1, schema2 *interfaces.Schema) (DiffReport, bool) {
	report := make(DiffReport)

	for _, name := range unionColumnNames(schema1, schema2) {
		col1, in1 := schema1.Column(name)
		col2, in2 := schema2.Column(name)

		switch {
		case in1 && !in2:
			report[name] = &ColumnDiff{Status: StatusOnlyInSchema1, Column: col1}
		case !in1 && in2:
			report[name] = &ColumnDiff{Status: StatusOnlyInSchema2, Column: col2}
		default:
			if props := compareColumns(col1, col2); len(props) > 0 {
				report[name] = &ColumnDiff{Status: StatusChanged, Properties: props}
			}
		}
	}

	return report, len(report) > 0
}

// compareColumns diffs the properties of a column present in both schemas.
// dataValues compares as a set; everything else compares exactly.
func compareColumns(col1, col2 *interfaces.ColumnSchema) map[string]FieldDiff {
	props := make(map[string]FieldDiff)

	if col1.DataType != col2.DataType {
		props[PropDataType] = FieldDiff{Schema1: col1.DataType, Schema2: col2.DataType}
	}
	if col1.ActualType != col2.ActualType {
		props[PropActualType] = FieldDiff{Schema1: col1.ActualType, Schema2: col2.ActualType}
	}
	if col1.Nullable != col2.Nullable {
		props[PropNullable] = FieldDiff{Schema1: col1.Nullable, Schema2: col2.Nullable}
	}
	if !sameValueSet(col1.DataValues, col2.DataValues) {
		props[PropDataValues] = FieldDiff{Schema1: col1.DataValues, Schema2: col2.DataValues}
	}

	return props
}

// sameValueSet compares two dataValues slices as sets, ignoring capture
// order. Hand-authored snapshots are not required to be pre-sorted.
func sameValueSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)

	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// unionColumnNames collects every column name appearing in either schema,
// sorted so report iteration is deterministic.
func unionColumnNames(schema1, schema2 *interfaces.Schema) []string {
	seen := make(map[string]bool)
	var names []string

	for _, c := range schema1.Columns {
		if !seen[c.Name] {
			seen[c.Name] = true
			names = append(names, c.Name)
		}
	}
	for _, c := range schema2.Columns {
		if !seen[c.Name] {
			seen[c.Name] = true
			names = append(names, c.Name)
		}
	}

	sort.Strings(names)
	return names
}
