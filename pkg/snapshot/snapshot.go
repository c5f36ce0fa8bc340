/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: snapshot.go
Description: Persists inferred schemas as JSON snapshot files and loads them
back. Loading validates the document structure so that later comparison and
validation runs never operate on half-formed schemas.
*/

package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kleascm/akaylee-schema/pkg/interfaces"
)

// Save writes the schema to path as indented JSON, creating parent
// directories as needed. The four space indent matches the snapshot files
// this tool has always produced, so existing snapshots stay diffable.
func Save(schema *interfaces.Schema, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create snapshot directory '%s': %v", interfaces.ErrIOFailure, dir, err)
	}

	data, err := json.MarshalIndent(schema, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal schema: %v", interfaces.ErrIOFailure, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write snapshot '%s': %v", interfaces.ErrIOFailure, path, err)
	}
	return nil
}

// Load reads a schema snapshot from path and validates its shape.
func Load(path string) (*interfaces.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read snapshot '%s': %v", interfaces.ErrIOFailure, path, err)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		if !json.Valid(data) {
			return nil, fmt.Errorf("%w: snapshot '%s' is not valid JSON: %v", interfaces.ErrMalformedInput, path, err)
		}
		return nil, fmt.Errorf("%w: snapshot '%s' must contain a top-level object", interfaces.ErrInvalidSchemaShape, path)
	}

	rawColumns, ok := envelope["columns"]
	if !ok {
		return nil, fmt.Errorf("%w: snapshot '%s' is missing the 'columns' key", interfaces.ErrInvalidSchemaShape, path)
	}

	var columns []*interfaces.ColumnSchema
	if err := json.Unmarshal(rawColumns, &columns); err != nil {
		return nil, fmt.Errorf("%w: 'columns' in '%s' must be an array of column definitions", interfaces.ErrInvalidSchemaShape, path)
	}

	seen := make(map[string]bool)
	for i, col := range columns {
		if col == nil {
			return nil, fmt.Errorf("%w: column %d in '%s' is null", interfaces.ErrInvalidSchemaShape, i, path)
		}
		if col.Name == "" {
			return nil, fmt.Errorf("%w: column %d in '%s' has no name", interfaces.ErrInvalidSchemaShape, i, path)
		}
		if seen[col.Name] {
			return nil, fmt.Errorf("%w: duplicate column '%s' in '%s'", interfaces.ErrInvalidSchemaShape, col.Name, path)
		}
		seen[col.Name] = true
		if !interfaces.ValidDataType(col.DataType) {
			return nil, fmt.Errorf("%w: column '%s' in '%s' has unknown dataType '%s'", interfaces.ErrInvalidSchemaShape, col.Name, path, col.DataType)
		}
	}

	return &interfaces.Schema{Columns: columns}, nil
}
