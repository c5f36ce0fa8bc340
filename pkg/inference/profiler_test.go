/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: profiler_test.go
Description: Tests for the column profiler. Covers the full-scan/sample-window
split, the distinct value cap boundary, and null-column profiling.
*/

package inference

import (
	"fmt"
	"testing"

	"github.com/kleascm/akaylee-schema/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intColumn(name string, n int) *interfaces.Column {
	col := &interfaces.Column{Name: name, StorageType: "int64"}
	for i := 0; i < n; i++ {
		col.Values = append(col.Values, interfaces.IntValue(int64(i)))
	}
	return col
}

func TestProfileColumnBasic(t *testing.T) {
	col := &interfaces.Column{
		Name:        "name",
		StorageType: "text",
		Values: []interfaces.Value{
			interfaces.StringValue("Bob"),
			interfaces.StringValue("Alice"),
			interfaces.StringValue("Bob"),
		},
	}

	cs := ProfileColumn(col)
	assert.Equal(t, "name", cs.Name)
	assert.Equal(t, interfaces.DataTypeString, cs.DataType)
	assert.Equal(t, "text", cs.ActualType)
	assert.False(t, cs.Nullable)
	assert.Equal(t, []string{"Alice", "Bob"}, cs.DataValues)
}

func TestProfileColumnNullableBeyondSampleWindow(t *testing.T) {
	// First 100 rows non-null, row 101 null: the type decision sees only the
	// sample, but nullability scans everything.
	col := intColumn("id", SampleWindow)
	col.Values = append(col.Values, interfaces.Null())

	cs := ProfileColumn(col)
	assert.Equal(t, interfaces.DataTypeInteger, cs.DataType)
	assert.True(t, cs.Nullable)
}

func TestProfileColumnTypeLockedToSampleWindow(t *testing.T) {
	// A fractional float beyond the sample window does not demote the
	// integer classification; inference is sample-based.
	col := intColumn("id", SampleWindow)
	col.Values = append(col.Values, interfaces.FloatValue(1.5))

	cs := ProfileColumn(col)
	assert.Equal(t, interfaces.DataTypeInteger, cs.DataType)
}

func TestProfileColumnNullsDroppedFromSample(t *testing.T) {
	col := &interfaces.Column{
		Name: "score",
		Values: []interfaces.Value{
			interfaces.Null(),
			interfaces.IntValue(7),
			interfaces.Null(),
		},
	}

	cs := ProfileColumn(col)
	assert.Equal(t, interfaces.DataTypeInteger, cs.DataType)
	assert.True(t, cs.Nullable)
	assert.Equal(t, []string{"7"}, cs.DataValues)
}

func TestProfileColumnAllNull(t *testing.T) {
	col := &interfaces.Column{
		Name:        "blank",
		StorageType: "empty",
		Values:      []interfaces.Value{interfaces.Null(), interfaces.Null()},
	}

	cs := ProfileColumn(col)
	assert.Equal(t, interfaces.DataTypeNull, cs.DataType)
	assert.True(t, cs.Nullable)
	assert.Empty(t, cs.DataValues)
	assert.NotNil(t, cs.DataValues)
}

func TestProfileColumnValueCapBoundary(t *testing.T) {
	// Exactly at the cap: every distinct value is listed, sorted.
	col := intColumn("v", interfaces.MaxDataValues)
	cs := ProfileColumn(col)
	require.Len(t, cs.DataValues, interfaces.MaxDataValues)
	assert.False(t, cs.ValuesCapped())
	assert.Contains(t, cs.DataValues, "0")
	assert.Contains(t, cs.DataValues, fmt.Sprintf("%d", interfaces.MaxDataValues-1))

	// One past the cap: the set collapses to the sentinel.
	col = intColumn("v", interfaces.MaxDataValues+1)
	cs = ProfileColumn(col)
	assert.Equal(t, []string{interfaces.TooManyValuesMarker}, cs.DataValues)
	assert.True(t, cs.ValuesCapped())
}

func TestProfileColumnDuplicatesDoNotCountTowardCap(t *testing.T) {
	col := &interfaces.Column{Name: "v"}
	for i := 0; i < interfaces.MaxDataValues*3; i++ {
		col.Values = append(col.Values, interfaces.IntValue(int64(i%10)))
	}

	cs := ProfileColumn(col)
	assert.Len(t, cs.DataValues, 10)
	assert.False(t, cs.ValuesCapped())
}

func TestProfileColumnValuesSortedLexicographically(t *testing.T) {
	col := &interfaces.Column{
		Name: "n",
		Values: []interfaces.Value{
			interfaces.IntValue(10),
			interfaces.IntValue(2),
			interfaces.IntValue(1),
		},
	}

	cs := ProfileColumn(col)
	// String renderings sort lexicographically, so "10" precedes "2".
	assert.Equal(t, []string{"1", "10", "2"}, cs.DataValues)
}
