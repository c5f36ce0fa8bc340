/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: classifier.go
Description: Logical type classifier. Collapses the storage-level kinds observed
in a column sample into one of the engine's closed set of logical types, driven
entirely by the loader's per-value tagging rather than re-parsing raw text.
*/

package inference

import (
	"github.com/kleascm/akaylee-schema/pkg/interfaces"
)

// SampleWindow is the number of leading rows examined for type
// classification. Nullability and value sets always scan the full column;
// only the type decision is sample-bounded, to keep inference cost flat on
// large files.
const SampleWindow = 100

// Classify maps a sample of non-null values to one logical type. Priority
// order: datetime, boolean, numeric (integer when every value is
// whole-number valued, including integral floats), otherwise string. An
// empty sample classifies as null.
func Classify(sample []interfaces.Value) string {
	if len(sample) == 0 {
		return interfaces.DataTypeNull
	}

	seen := make(map[interfaces.ValueKind]bool)
	integral := true
	for _, v := range sample {
		seen[v.Kind] = true
		if v.IsNumeric() && !v.IsIntegral() {
			integral = false
		}
	}

	switch {
	case len(seen) == 1 && seen[interfaces.KindTime]:
		return interfaces.DataTypeDatetime
	case len(seen) == 1 && seen[interfaces.KindBool]:
		return interfaces.DataTypeBoolean
	case onlyNumeric(seen):
		if integral {
			return interfaces.DataTypeInteger
		}
		return interfaces.DataTypeNumber
	default:
		return interfaces.DataTypeString
	}
}

// onlyNumeric reports whether every observed kind is int or float.
func onlyNumeric(seen map[interfaces.ValueKind]bool) bool {
	for kind := range seen {
		if kind != interfaces.KindInt && kind != interfaces.KindFloat {
			return false
		}
	}
	return true
}
