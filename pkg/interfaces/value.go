/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: value.go
Description: Tagged-union cell value for the schema engine. Loaders normalize every
cell into a Value carrying one of the storage-level kinds, so type classification
and validation operate on tags instead of re-parsing raw text.
*/

package interfaces

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ValueKind identifies the storage-level type of a single cell value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindTime
)

// Value is one cell of a loaded table. Exactly one payload field is
// meaningful, selected by Kind.
type Value struct {
	Kind  ValueKind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	Time  time.Time
}

// Null returns the absent value.
func Null() Value {
	return Value{Kind: KindNull}
}

// BoolValue wraps a native boolean cell.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// IntValue wraps a whole-number cell.
func IntValue(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

// FloatValue wraps a floating-point cell.
func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// StringValue wraps a text cell.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// TimeValue wraps a native date/time cell.
func TimeValue(t time.Time) Value {
	return Value{Kind: KindTime, Time: t}
}

// IsNull reports whether the value is the absent value.
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// IsAbsent reports whether the value counts as missing for nullability and
// validation purposes. A string containing only whitespace is treated the
// same as null.
func (v Value) IsAbsent() bool {
	if v.Kind == KindNull {
		return true
	}
	return v.Kind == KindString && strings.TrimSpace(v.Str) == ""
}

// IsNumeric reports whether the value carries an integer or float payload.
func (v Value) IsNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// IsIntegral reports whether the value is whole-number valued. Floats with a
// zero fractional part count as integral.
func (v Value) IsIntegral() bool {
	switch v.Kind {
	case KindInt:
		return true
	case KindFloat:
		return !math.IsNaN(v.Float) && !math.IsInf(v.Float, 0) && v.Float == math.Trunc(v.Float)
	default:
		return false
	}
}

// Render produces the canonical string form of the value, used for the
// dataValues sets and for violation messages. Null renders empty.
func (v Value) Render() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindString:
		return v.Str
	case KindTime:
		return v.Time.Format(time.RFC3339)
	default:
		return ""
	}
}

// TypeName returns the human-readable logical name of the value's kind,
// matching the dataType vocabulary used in schemas and violation messages.
func (v Value) TypeName() string {
	switch v.Kind {
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindString:
		return "string"
	case KindTime:
		return "datetime"
	default:
		return "null"
	}
}

// timeLayouts are the temporal formats recognized in text cells, tried in
// order. Date-only values parse to midnight UTC.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime attempts to interpret a text value as a date/time using the
// recognized layouts.
func ParseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
