/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: validator_test.go
Description: Tests for the record validator: type checks per logical type,
null handling, missing/extra columns, violation ordering, and table-level
validation.
*/

package validation

import (
	"testing"
	"time"

	"github.com/kleascm/akaylee-schema/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personSchema() *interfaces.Schema {
	return &interfaces.Schema{Columns: []*interfaces.ColumnSchema{
		{Name: "id", DataType: interfaces.DataTypeInteger, ActualType: "int64", Nullable: false, DataValues: []string{"1", "2"}},
		{Name: "name", DataType: interfaces.DataTypeString, ActualType: "text", Nullable: false, DataValues: []string{"Alice", "Bob"}},
	}}
}

func record(pairs ...interface{}) *interfaces.Record {
	rec := interfaces.NewRecord()
	for i := 0; i < len(pairs); i += 2 {
		rec.Set(pairs[i].(string), pairs[i+1].(interfaces.Value))
	}
	return rec
}

func TestValidateValidRecord(t *testing.T) {
	valid, violations := ValidateRecord(record(
		"id", interfaces.IntValue(1),
		"name", interfaces.StringValue("Alice"),
	), personSchema())

	assert.True(t, valid)
	assert.Empty(t, violations)
	assert.NotNil(t, violations)
}

func TestValidateTypeMismatch(t *testing.T) {
	valid, violations := ValidateRecord(record(
		"id", interfaces.StringValue("oops"),
		"name", interfaces.StringValue("Alice"),
	), personSchema())

	assert.False(t, valid)
	require.Len(t, violations, 1)
	assert.Equal(t, `column 'id' invalid type: expected integer, got string (value "oops")`, violations[0])
}

func TestValidateMissingColumn(t *testing.T) {
	valid, violations := ValidateRecord(record(
		"id", interfaces.IntValue(1),
	), personSchema())

	assert.False(t, valid)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "missing column 'name'")
}

func TestValidateExtraColumn(t *testing.T) {
	valid, violations := ValidateRecord(record(
		"id", interfaces.IntValue(1),
		"name", interfaces.StringValue("Alice"),
		"age", interfaces.IntValue(30),
	), personSchema())

	assert.False(t, valid)
	require.Len(t, violations, 1)
	assert.Equal(t, "extra column 'age' not defined in schema", violations[0])
}

func TestValidateViolationOrdering(t *testing.T) {
	// Missing columns come first in schema order, then extra columns in
	// record key order, then per-column checks in schema order.
	schema := &interfaces.Schema{Columns: []*interfaces.ColumnSchema{
		{Name: "a", DataType: interfaces.DataTypeInteger, Nullable: false},
		{Name: "b", DataType: interfaces.DataTypeString, Nullable: false},
		{Name: "c", DataType: interfaces.DataTypeInteger, Nullable: false},
	}}

	rec := record(
		"z", interfaces.IntValue(1),
		"c", interfaces.StringValue("bad"),
		"y", interfaces.IntValue(2),
	)

	valid, violations := ValidateRecord(rec, schema)
	assert.False(t, valid)
	require.Len(t, violations, 5)
	assert.Contains(t, violations[0], "missing column 'a'")
	assert.Contains(t, violations[1], "missing column 'b'")
	assert.Contains(t, violations[2], "extra column 'z'")
	assert.Contains(t, violations[3], "extra column 'y'")
	assert.Contains(t, violations[4], "column 'c' invalid type")
}

func TestValidateNullHandling(t *testing.T) {
	schema := &interfaces.Schema{Columns: []*interfaces.ColumnSchema{
		{Name: "strict", DataType: interfaces.DataTypeInteger, Nullable: false},
		{Name: "loose", DataType: interfaces.DataTypeInteger, Nullable: true},
	}}

	// Nullable column accepts an absent value with no type check.
	valid, violations := ValidateRecord(record(
		"strict", interfaces.IntValue(1),
		"loose", interfaces.Null(),
	), schema)
	assert.True(t, valid)
	assert.Empty(t, violations)

	// Non-nullable column rejects null.
	valid, violations = ValidateRecord(record(
		"strict", interfaces.Null(),
		"loose", interfaces.IntValue(1),
	), schema)
	assert.False(t, valid)
	require.Len(t, violations, 1)
	assert.Equal(t, "column 'strict' cannot be null", violations[0])

	// A whitespace-only string counts as absent.
	valid, violations = ValidateRecord(record(
		"strict", interfaces.StringValue("   "),
		"loose", interfaces.IntValue(1),
	), schema)
	assert.False(t, valid)
	require.Len(t, violations, 1)
	assert.Equal(t, "column 'strict' cannot be null", violations[0])
}

func TestValidateIntegerRules(t *testing.T) {
	schema := &interfaces.Schema{Columns: []*interfaces.ColumnSchema{
		{Name: "n", DataType: interfaces.DataTypeInteger, Nullable: false},
	}}

	valid, _ := ValidateRecord(record("n", interfaces.IntValue(5)), schema)
	assert.True(t, valid)

	// Integral floats pass for integer columns.
	valid, _ = ValidateRecord(record("n", interfaces.FloatValue(5.0)), schema)
	assert.True(t, valid)

	valid, violations := ValidateRecord(record("n", interfaces.FloatValue(5.5)), schema)
	assert.False(t, valid)
	assert.Contains(t, violations[0], "expected integer, got number (value 5.5)")

	// Numeric text never passes an integer column.
	valid, _ = ValidateRecord(record("n", interfaces.StringValue("123")), schema)
	assert.False(t, valid)
}

func TestValidateNumberRules(t *testing.T) {
	schema := &interfaces.Schema{Columns: []*interfaces.ColumnSchema{
		{Name: "x", DataType: interfaces.DataTypeNumber, Nullable: false},
	}}

	for _, v := range []interfaces.Value{interfaces.IntValue(1), interfaces.FloatValue(2.5)} {
		valid, _ := ValidateRecord(record("x", v), schema)
		assert.True(t, valid)
	}

	valid, _ := ValidateRecord(record("x", interfaces.StringValue("2.5")), schema)
	assert.False(t, valid)
}

func TestValidateBooleanRules(t *testing.T) {
	schema := &interfaces.Schema{Columns: []*interfaces.ColumnSchema{
		{Name: "flag", DataType: interfaces.DataTypeBoolean, Nullable: false},
	}}

	accepted := []interfaces.Value{
		interfaces.BoolValue(true),
		interfaces.StringValue("true"),
		interfaces.StringValue("FALSE"),
		interfaces.StringValue("True"),
	}
	for _, v := range accepted {
		valid, violations := ValidateRecord(record("flag", v), schema)
		assert.True(t, valid, "value %v should pass: %v", v, violations)
	}

	rejected := []interfaces.Value{
		interfaces.StringValue("yes"),
		interfaces.IntValue(1),
	}
	for _, v := range rejected {
		valid, _ := ValidateRecord(record("flag", v), schema)
		assert.False(t, valid, "value %v should fail", v)
	}
}

func TestValidateDatetimeRules(t *testing.T) {
	schema := &interfaces.Schema{Columns: []*interfaces.ColumnSchema{
		{Name: "ts", DataType: interfaces.DataTypeDatetime, Nullable: false},
	}}

	valid, _ := ValidateRecord(record("ts", interfaces.TimeValue(time.Now())), schema)
	assert.True(t, valid)

	// Text that parses as a date passes.
	valid, _ = ValidateRecord(record("ts", interfaces.StringValue("2024-03-15")), schema)
	assert.True(t, valid)

	valid, violations := ValidateRecord(record("ts", interfaces.StringValue("not a date")), schema)
	assert.False(t, valid)
	assert.Contains(t, violations[0], "expected datetime, got string")
}

func TestValidateNullTypedColumn(t *testing.T) {
	schema := &interfaces.Schema{Columns: []*interfaces.ColumnSchema{
		{Name: "void", DataType: interfaces.DataTypeNull, Nullable: true},
	}}

	valid, _ := ValidateRecord(record("void", interfaces.Null()), schema)
	assert.True(t, valid)

	valid, violations := ValidateRecord(record("void", interfaces.IntValue(5)), schema)
	assert.False(t, valid)
	assert.Contains(t, violations[0], "expected null, got integer (value 5)")
}

func TestValidateAccumulatesAllViolations(t *testing.T) {
	valid, violations := ValidateRecord(record(
		"id", interfaces.StringValue("oops"),
		"name", interfaces.IntValue(7),
	), personSchema())

	assert.False(t, valid)
	require.Len(t, violations, 2)
	assert.Contains(t, violations[0], "'id'")
	assert.Contains(t, violations[1], "'name'")
}

func TestValidateTable(t *testing.T) {
	table := &interfaces.Table{
		Source: "people.csv",
		Columns: []*interfaces.Column{
			{Name: "id", Values: []interfaces.Value{
				interfaces.IntValue(1), interfaces.StringValue("oops"), interfaces.IntValue(3),
			}},
			{Name: "name", Values: []interfaces.Value{
				interfaces.StringValue("Alice"), interfaces.StringValue("Bob"), interfaces.StringValue("Cara"),
			}},
		},
	}

	ticks := 0
	results, allValid := ValidateTable(table, personSchema(), func() { ticks++ })

	assert.False(t, allValid)
	assert.Equal(t, 3, ticks)
	require.Len(t, results, 3)

	assert.Equal(t, 1, results[0].RecordNumber)
	assert.True(t, results[0].Valid)
	assert.NotNil(t, results[0].Errors)
	assert.Empty(t, results[0].Errors)

	assert.Equal(t, 2, results[1].RecordNumber)
	assert.False(t, results[1].Valid)
	require.Len(t, results[1].Errors, 1)
	assert.Contains(t, results[1].Errors[0], "column 'id' invalid type")

	assert.True(t, results[2].Valid)
}

func TestValidateTableNilProgress(t *testing.T) {
	table := &interfaces.Table{
		Columns: []*interfaces.Column{
			{Name: "id", Values: []interfaces.Value{interfaces.IntValue(1)}},
			{Name: "name", Values: []interfaces.Value{interfaces.StringValue("Alice")}},
		},
	}

	results, allValid := ValidateTable(table, personSchema(), nil)
	assert.True(t, allValid)
	assert.Len(t, results, 1)
}
