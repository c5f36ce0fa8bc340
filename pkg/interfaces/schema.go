/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: schema.go
Description: Schema and ColumnSchema, the structural contract of a dataset.
Plain serializable data with no behavior beyond lookups; produced by the
inference engine, persisted as a snapshot, consumed by comparison and
validation.
*/

package interfaces

// Logical data types a column can classify into. The set is closed; any
// value outside it in a snapshot is a shape error.
const (
	DataTypeString   = "string"
	DataTypeInteger  = "integer"
	DataTypeNumber   = "number"
	DataTypeBoolean  = "boolean"
	DataTypeDatetime = "datetime"
	DataTypeNull     = "null"
)

// MaxDataValues caps the dataValues set per column. A column whose true
// distinct count exceeds the cap records TooManyValuesMarker instead.
const MaxDataValues = 100

// TooManyValuesMarker is the sentinel stored as the sole dataValues entry
// when a column has more distinct values than MaxDataValues. It is excluded
// from value-membership checks.
const TooManyValuesMarker = "more than 100 unique values"

// ColumnSchema describes one column: its logical type, the loader's storage
// tag, whether absent values were observed anywhere in the column, and the
// bounded sorted set of distinct non-null value renderings.
type ColumnSchema struct {
	Name       string   `json:"name"`
	DataType   string   `json:"dataType"`
	ActualType string   `json:"actualType"`
	Nullable   bool     `json:"nullable"`
	DataValues []string `json:"dataValues"`
}

// ValuesCapped reports whether dataValues holds the sentinel marker rather
// than a real value set.
func (c *ColumnSchema) ValuesCapped() bool {
	return len(c.DataValues) == 1 && c.DataValues[0] == TooManyValuesMarker
}

// Schema is the ordered structural contract of a dataset. Column names are
// unique within one schema.
type Schema struct {
	Columns []*ColumnSchema `json:"columns"`
}

// Column returns the column schema with the given name.
func (s *Schema) Column(name string) (*ColumnSchema, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// ColumnNames returns the column names in declaration order.
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// ValidDataType reports whether s is one of the closed set of logical types.
func ValidDataType(s string) bool {
	switch s {
	case DataTypeString, DataTypeInteger, DataTypeNumber, DataTypeBoolean, DataTypeDatetime, DataTypeNull:
		return true
	}
	return false
}
