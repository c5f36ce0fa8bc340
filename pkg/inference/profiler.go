/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: profiler.go
Description: Column profiler. Produces one ColumnSchema per column through two
explicit passes: a full-column scan for nullability and the distinct value set,
and a bounded sample window for the type decision.
*/

package inference

import (
	"sort"

	"github.com/kleascm/akaylee-schema/pkg/interfaces"
)

// ProfileColumn builds the schema entry for one column. Nullability and
// dataValues come from the entire column; the logical type comes from the
// sample window with null cells dropped. The storage tag is copied verbatim
// from the loader.
func ProfileColumn(col *interfaces.Column) *interfaces.ColumnSchema {
	return &interfaces.ColumnSchema{
		Name:       col.Name,
		DataType:   Classify(sampleWindow(col.Values)),
		ActualType: col.StorageType,
		Nullable:   columnNullable(col.Values),
		DataValues: distinctValues(col.Values),
	}
}

// columnNullable scans every row of the column for a null cell. The sample
// window plays no part here, so a null beyond row 100 still flips the flag.
func columnNullable(values []interfaces.Value) bool {
	for _, v := range values {
		if v.IsNull() {
			return true
		}
	}
	return false
}

// sampleWindow takes the first SampleWindow rows and drops null cells. The
// survivors feed the classifier; a column whose sample is entirely null
// classifies as null.
func sampleWindow(values []interfaces.Value) []interfaces.Value {
	n := len(values)
	if n > SampleWindow {
		n = SampleWindow
	}
	sample := make([]interfaces.Value, 0, n)
	for _, v := range values[:n] {
		if v.IsNull() {
			continue
		}
		sample = append(sample, v)
	}
	return sample
}

// distinctValues renders every non-null cell of the column, deduplicates,
// and sorts. A distinct count beyond MaxDataValues collapses the set to the
// sentinel marker.
func distinctValues(values []interfaces.Value) []string {
	seen := make(map[string]bool)
	for _, v := range values {
		if v.IsNull() {
			continue
		}
		seen[v.Render()] = true
	}

	if len(seen) > interfaces.MaxDataValues {
		return []string{interfaces.TooManyValuesMarker}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
