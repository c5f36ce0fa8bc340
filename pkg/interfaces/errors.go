/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Sentinel errors for the schema engine's failure taxonomy. Callers
wrap these with fmt.Errorf("%w: ...") and match with errors.Is; the engine
itself never logs or prints.
*/

package interfaces

import "errors"

var (
	// ErrEmptySource is returned when a table has no data rows to infer from.
	ErrEmptySource = errors.New("empty source")

	// ErrUnsupportedFormat is returned when no loader handles the file's format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrMalformedInput is returned for unparseable file content, such as an
	// invalid JSON body or a ragged CSV row.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidSchemaShape is returned when a snapshot lacks the required
	// columns key or contains malformed column entries.
	ErrInvalidSchemaShape = errors.New("invalid schema shape")

	// ErrIOFailure is returned when a snapshot cannot be read or written.
	ErrIOFailure = errors.New("io failure")
)
