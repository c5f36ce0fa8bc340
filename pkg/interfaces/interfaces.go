/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared data model for the Akaylee Schema engine. Defines the uniform
in-memory table abstraction produced by the loaders and consumed by inference,
comparison and validation, kept in one package to break import cycles.
*/

package interfaces

// Column is one fully loaded column of a table: the ordered value sequence
// plus the storage-level type tag derived by the loader.
type Column struct {
	Name        string
	StorageType string
	Values      []Value
}

// Table is the uniform in-memory form every loader produces. Columns keep
// source order; all columns have the same length.
type Table struct {
	Source  string
	Columns []*Column
}

// Rows returns the number of data rows in the table.
func (t *Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Record materializes row i as a Record, preserving column order.
func (t *Table) Record(i int) *Record {
	rec := NewRecord()
	for _, c := range t.Columns {
		rec.Set(c.Name, c.Values[i])
	}
	return rec
}

// Record is one row/object to be validated: a mapping from column name to
// value that remembers key insertion order, so violation ordering stays
// deterministic.
type Record struct {
	keys   []string
	values map[string]Value
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]Value)}
}

// Set stores a value under a column name. First insertion fixes the key's
// position; later sets overwrite in place.
func (r *Record) Set(name string, v Value) {
	if _, ok := r.values[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.values[name] = v
}

// Get returns the value stored under a column name.
func (r *Record) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Keys returns the column names in insertion order.
func (r *Record) Keys() []string {
	return r.keys
}

// Len returns the number of columns in the record.
func (r *Record) Len() int {
	return len(r.keys)
}

// TableLoader turns a data file into the uniform table form. Implementations
// signal ErrUnsupportedFormat, ErrMalformedInput or ErrIOFailure.
type TableLoader interface {
	Load(path string) (*Table, error)
	Supports(path string) bool
}
