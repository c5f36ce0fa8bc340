/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: csv_loader_test.go
Description: Tests for the CSV loader: cell sniffing, null cells, header
handling, and malformed input.
*/

package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kleascm/akaylee-schema/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVLoadTypedColumns(t *testing.T) {
	path := writeFile(t, "people.csv",
		"id,score,active,joined,name\n"+
			"1,2.5,true,2024-01-15,Alice\n"+
			"2,3.5,false,2024-02-20,Bob\n")

	table, err := LoadTable(path)
	require.NoError(t, err)
	require.Len(t, table.Columns, 5)
	assert.Equal(t, 2, table.Rows())
	assert.Equal(t, path, table.Source)

	assert.Equal(t, interfaces.KindInt, table.Columns[0].Values[0].Kind)
	assert.Equal(t, "int64", table.Columns[0].StorageType)

	assert.Equal(t, interfaces.KindFloat, table.Columns[1].Values[0].Kind)
	assert.Equal(t, "float64", table.Columns[1].StorageType)

	assert.Equal(t, interfaces.KindBool, table.Columns[2].Values[0].Kind)
	assert.True(t, table.Columns[2].Values[0].Bool)
	assert.Equal(t, "bool", table.Columns[2].StorageType)

	assert.Equal(t, interfaces.KindTime, table.Columns[3].Values[0].Kind)
	assert.Equal(t, "timestamp", table.Columns[3].StorageType)

	assert.Equal(t, interfaces.KindString, table.Columns[4].Values[0].Kind)
	assert.Equal(t, "text", table.Columns[4].StorageType)
}

func TestCSVEmptyCellsAreNull(t *testing.T) {
	path := writeFile(t, "gaps.csv", "a,b\n1,\n,x\n")

	table, err := LoadTable(path)
	require.NoError(t, err)

	assert.True(t, table.Columns[0].Values[1].IsNull())
	assert.True(t, table.Columns[1].Values[0].IsNull())
	assert.Equal(t, "int64", table.Columns[0].StorageType)
	assert.Equal(t, "text", table.Columns[1].StorageType)
}

func TestCSVHeaderOnly(t *testing.T) {
	path := writeFile(t, "header.csv", "a,b,c\n")

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, table.ColumnNames())
	assert.Equal(t, 0, table.Rows())
	assert.Equal(t, "empty", table.Columns[0].StorageType)
}

func TestCSVEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Equal(t, 0, table.Rows())
}

func TestCSVRaggedRowIsMalformed(t *testing.T) {
	path := writeFile(t, "ragged.csv", "a,b\n1,2\n3\n")

	_, err := LoadTable(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, interfaces.ErrMalformedInput))
}

func TestCSVMissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, interfaces.ErrIOFailure))
}

func TestCSVDuplicateAndBlankHeaders(t *testing.T) {
	path := writeFile(t, "dup.csv", "a,a,,b\n1,2,3,4\n")

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a_2", "column_3", "b"}, table.ColumnNames())
}

func TestCSVMixedColumnStaysText(t *testing.T) {
	path := writeFile(t, "mixed.csv", "v\n1\nhello\n")

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, "mixed", table.Columns[0].StorageType)
	assert.Equal(t, interfaces.KindInt, table.Columns[0].Values[0].Kind)
	assert.Equal(t, interfaces.KindString, table.Columns[0].Values[1].Kind)
}

func TestCSVNaNSpellingStaysText(t *testing.T) {
	path := writeFile(t, "nan.csv", "v\nNaN\n")

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, interfaces.KindString, table.Columns[0].Values[0].Kind)
}
