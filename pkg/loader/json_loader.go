/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: json_loader.go
Description: JSON table loader. Accepts a top-level array of objects, or a
single object treated as one row. Column order is first-encounter key order
across records, recovered by token-stream decoding since Go maps would lose it.
*/

package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kleascm/akaylee-schema/pkg/interfaces"
)

// JSONLoader loads JSON files.
type JSONLoader struct{}

// Supports reports whether the path names a JSON file.
func (l *JSONLoader) Supports(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// Load reads the whole file into the uniform table form. Records missing a
// key that other records carry get a null cell for it; nested objects and
// arrays become their compact JSON text with the column tagged "object".
func (l *JSONLoader) Load(path string) (*interfaces.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrIOFailure, err)
	}

	builder := newTableBuilder()
	trimmed := strings.TrimSpace(string(data))

	switch {
	case strings.HasPrefix(trimmed, "["):
		if err := l.loadArray(data, builder); err != nil {
			return nil, fmt.Errorf("%w: '%s': %v", interfaces.ErrMalformedInput, path, err)
		}
	case strings.HasPrefix(trimmed, "{"):
		if err := builder.addRecordJSON(json.RawMessage(data)); err != nil {
			return nil, fmt.Errorf("%w: '%s': %v", interfaces.ErrMalformedInput, path, err)
		}
	default:
		return nil, fmt.Errorf("%w: '%s': expected a list of objects or a single object", interfaces.ErrMalformedInput, path)
	}

	return builder.table(path), nil
}

// loadArray streams the top-level array, parsing each element as one record.
func (l *JSONLoader) loadArray(data []byte, builder *tableBuilder) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	if _, err := dec.Token(); err != nil {
		return err
	}
	for dec.More() {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if !strings.HasPrefix(strings.TrimSpace(string(raw)), "{") {
			return fmt.Errorf("expected a list of objects or a single object")
		}
		if err := builder.addRecordJSON(raw); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("trailing data after top-level value")
	}
	return nil
}

// tableBuilder accumulates records into columns, backfilling null cells when
// a column first appears partway through the file.
type tableBuilder struct {
	cols   []*interfaces.Column
	index  map[string]int
	nested map[string]bool
	rows   int
}

func newTableBuilder() *tableBuilder {
	return &tableBuilder{
		index:  make(map[string]int),
		nested: make(map[string]bool),
	}
}

// addRecordJSON parses one object with a token stream so key order survives,
// then folds its values into the columns. Duplicate keys within one object
// keep the last value, matching JSON semantics.
func (b *tableBuilder) addRecordJSON(raw json.RawMessage) error {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected an object")
	}

	var keys []string
	vals := make(map[string]interfaces.Value)
	nested := make(map[string]bool)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected an object key")
		}

		var vraw json.RawMessage
		if err := dec.Decode(&vraw); err != nil {
			return err
		}

		value, isNested, err := scalarValue(vraw)
		if err != nil {
			return err
		}
		if _, seen := vals[key]; !seen {
			keys = append(keys, key)
		}
		vals[key] = value
		if isNested {
			nested[key] = true
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("trailing data after object")
	}

	b.addRecord(keys, vals, nested)
	return nil
}

func (b *tableBuilder) addRecord(keys []string, vals map[string]interfaces.Value, nested map[string]bool) {
	for _, key := range keys {
		idx, ok := b.index[key]
		if !ok {
			col := &interfaces.Column{Name: key}
			for i := 0; i < b.rows; i++ {
				col.Values = append(col.Values, interfaces.Null())
			}
			idx = len(b.cols)
			b.cols = append(b.cols, col)
			b.index[key] = idx
		}
		b.cols[idx].Values = append(b.cols[idx].Values, vals[key])
		if nested[key] {
			b.nested[key] = true
		}
	}

	b.rows++
	for _, col := range b.cols {
		if len(col.Values) < b.rows {
			col.Values = append(col.Values, interfaces.Null())
		}
	}
}

// table finalizes the columns with their storage tags.
func (b *tableBuilder) table(source string) *interfaces.Table {
	for _, col := range b.cols {
		if b.nested[col.Name] {
			col.StorageType = storageObject
		} else {
			col.StorageType = storageType(col.Values)
		}
	}
	return &interfaces.Table{Source: source, Columns: b.cols}
}

// scalarValue maps one raw JSON value to a typed cell. JSON strings stay
// strings even when they look like dates, since JSON has no native temporal
// type for the loader to tag. The second return marks nested structures.
func scalarValue(raw json.RawMessage) (interfaces.Value, bool, error) {
	s := strings.TrimSpace(string(raw))
	switch {
	case s == "null":
		return interfaces.Null(), false, nil
	case s == "true":
		return interfaces.BoolValue(true), false, nil
	case s == "false":
		return interfaces.BoolValue(false), false, nil
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return interfaces.Value{}, false, err
		}
		return interfaces.StringValue(str), false, nil
	case strings.HasPrefix(s, "{"), strings.HasPrefix(s, "["):
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return interfaces.Value{}, false, err
		}
		return interfaces.StringValue(buf.String()), true, nil
	default:
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return interfaces.IntValue(i), false, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return interfaces.Value{}, false, fmt.Errorf("unrecognized JSON value: %s", s)
		}
		return interfaces.FloatValue(f), false, nil
	}
}
