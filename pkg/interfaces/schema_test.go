/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: schema_test.go
Description: Tests for the schema data model helpers.
*/

package interfaces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaColumnLookup(t *testing.T) {
	schema := &Schema{Columns: []*ColumnSchema{
		{Name: "id", DataType: DataTypeInteger},
		{Name: "name", DataType: DataTypeString},
	}}

	col, ok := schema.Column("name")
	require.True(t, ok)
	assert.Equal(t, DataTypeString, col.DataType)

	_, ok = schema.Column("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"id", "name"}, schema.ColumnNames())
}

func TestValidDataType(t *testing.T) {
	for _, dt := range []string{"string", "integer", "number", "boolean", "datetime", "null"} {
		assert.True(t, ValidDataType(dt), dt)
	}
	assert.False(t, ValidDataType("float"))
	assert.False(t, ValidDataType(""))
	assert.False(t, ValidDataType("Integer"))
}

func TestValuesCapped(t *testing.T) {
	capped := &ColumnSchema{DataValues: []string{TooManyValuesMarker}}
	assert.True(t, capped.ValuesCapped())

	normal := &ColumnSchema{DataValues: []string{"a", "b"}}
	assert.False(t, normal.ValuesCapped())

	empty := &ColumnSchema{}
	assert.False(t, empty.ValuesCapped())
}
