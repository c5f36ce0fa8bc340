/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inference.go
Description: Schema inference engine. Orchestrates the column profiler over every
column of a loaded table to assemble the full schema. Pure function of its input;
never logs or prints.
*/

package inference

import (
	"fmt"

	"github.com/kleascm/akaylee-schema/pkg/interfaces"
)

// Engine infers schemas from loaded tables.
type Engine struct{}

// NewEngine creates a schema inference engine.
func NewEngine() *Engine {
	return &Engine{}
}

// InferSchema profiles every column in table order and concatenates the
// results. A table with zero data rows fails with ErrEmptySource; a
// header-only file counts as empty.
func (e *Engine) InferSchema(table *interfaces.Table) (*interfaces.Schema, error) {
	if table.Rows() == 0 {
		return nil, fmt.Errorf("%w: %s has no data rows", interfaces.ErrEmptySource, table.Source)
	}

	schema := &interfaces.Schema{
		Columns: make([]*interfaces.ColumnSchema, 0, len(table.Columns)),
	}
	for _, col := range table.Columns {
		schema.Columns = append(schema.Columns, ProfileColumn(col))
	}
	return schema, nil
}
