/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: excel_loader.go
Description: Spreadsheet table loader built on excelize. Reads the first sheet
with the first row as header. Unlike CSV, workbooks carry native cell types, so
values map directly: boolean cells, date-formatted numeric cells, numbers and
text, with no text sniffing.
*/

package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kleascm/akaylee-schema/pkg/interfaces"
)

// ExcelLoader loads xlsx/xlsm workbooks.
type ExcelLoader struct{}

// Supports reports whether the path names a workbook format excelize reads.
func (l *ExcelLoader) Supports(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

// Load reads the first sheet into the uniform table form. Cells missing
// from short rows become null; cells beyond the header width are ignored.
func (l *ExcelLoader) Load(path string) (*interfaces.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, fmt.Errorf("%w: %v", interfaces.ErrIOFailure, statErr)
		}
		return nil, fmt.Errorf("%w: opening '%s': %v", interfaces.ErrMalformedInput, path, err)
	}
	defer f.Close()

	table := &interfaces.Table{Source: path}
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table, nil
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: reading '%s': %v", interfaces.ErrMalformedInput, path, err)
	}
	if len(rows) == 0 {
		return table, nil
	}

	for _, name := range uniqueNames(rows[0]) {
		table.Columns = append(table.Columns, &interfaces.Column{Name: name})
	}

	for r := 1; r < len(rows); r++ {
		for c, col := range table.Columns {
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, fmt.Errorf("%w: '%s': %v", interfaces.ErrMalformedInput, path, err)
			}
			value, err := cellValue(f, sheet, axis)
			if err != nil {
				return nil, fmt.Errorf("%w: cell %s in '%s': %v", interfaces.ErrMalformedInput, axis, path, err)
			}
			col.Values = append(col.Values, value)
		}
	}

	for _, col := range table.Columns {
		col.StorageType = storageType(col.Values)
	}
	return table, nil
}

// cellValue maps one workbook cell to a typed value using the cell's stored
// type and number format. Dates in xlsx are numeric day serials carrying a
// date format, so date detection goes through the cell style.
func cellValue(f *excelize.File, sheet, axis string) (interfaces.Value, error) {
	raw, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return interfaces.Value{}, err
	}
	if raw == "" {
		return interfaces.Null(), nil
	}

	ctype, err := f.GetCellType(sheet, axis)
	if err != nil {
		return interfaces.Value{}, err
	}

	switch ctype {
	case excelize.CellTypeBool:
		return interfaces.BoolValue(raw == "1"), nil
	case excelize.CellTypeDate:
		if t, ok := interfaces.ParseTime(raw); ok {
			return interfaces.TimeValue(t), nil
		}
		return interfaces.StringValue(raw), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return interfaces.StringValue(raw), nil
	case excelize.CellTypeError:
		// Error cells (#DIV/0! and friends) carry no usable value.
		return interfaces.Null(), nil
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if dateStyled(f, sheet, axis) {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return interfaces.TimeValue(t), nil
			}
		}
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return interfaces.IntValue(i), nil
		}
		return interfaces.FloatValue(serial), nil
	}
	return interfaces.StringValue(raw), nil
}

// dateStyled reports whether the cell carries one of the builtin date/time
// number formats.
func dateStyled(f *excelize.File, sheet, axis string) bool {
	styleID, err := f.GetCellStyle(sheet, axis)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	return isDateNumFmt(style.NumFmt)
}

// isDateNumFmt covers the builtin date and time number format IDs.
func isDateNumFmt(id int) bool {
	return (id >= 14 && id <= 22) || (id >= 45 && id <= 47)
}
