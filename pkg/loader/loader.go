/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader.go
Description: Table loading entry point. Dispatches a data file to the loader
that supports its format and derives per-column storage type tags from the
observed value kinds.
*/

package loader

import (
	"fmt"

	"github.com/kleascm/akaylee-schema/pkg/interfaces"
)

// loaders in dispatch order. Each recognizes its own extensions.
var loaders = []interfaces.TableLoader{
	&CSVLoader{},
	&JSONLoader{},
	&ExcelLoader{},
}

// LoadTable turns a data file into the uniform table form, picking the
// loader by file extension. Unrecognized extensions fail with
// ErrUnsupportedFormat.
func LoadTable(path string) (*interfaces.Table, error) {
	for _, l := range loaders {
		if l.Supports(path) {
			return l.Load(path)
		}
	}
	return nil, fmt.Errorf("%w: '%s' (supported types: CSV, JSON, XLSX)", interfaces.ErrUnsupportedFormat, path)
}

// Storage type tags reported in ColumnSchema.actualType. The tag collapses
// the kinds observed across one column: uniform columns carry their kind's
// tag, int and float together widen to float64, anything else mixed is
// "mixed", and all-null columns are "empty". JSON columns holding nested
// objects or arrays are tagged "object" by their loader.
const (
	storageEmpty     = "empty"
	storageInt       = "int64"
	storageFloat     = "float64"
	storageBool      = "bool"
	storageTimestamp = "timestamp"
	storageText      = "text"
	storageMixed     = "mixed"
	storageObject    = "object"
)

// storageType derives the column tag from the value kinds present.
func storageType(values []interfaces.Value) string {
	kinds := make(map[interfaces.ValueKind]bool)
	for _, v := range values {
		if v.Kind != interfaces.KindNull {
			kinds[v.Kind] = true
		}
	}

	if len(kinds) == 0 {
		return storageEmpty
	}
	if len(kinds) == 2 && kinds[interfaces.KindInt] && kinds[interfaces.KindFloat] {
		return storageFloat
	}
	if len(kinds) > 1 {
		return storageMixed
	}

	switch {
	case kinds[interfaces.KindInt]:
		return storageInt
	case kinds[interfaces.KindFloat]:
		return storageFloat
	case kinds[interfaces.KindBool]:
		return storageBool
	case kinds[interfaces.KindTime]:
		return storageTimestamp
	default:
		return storageText
	}
}
