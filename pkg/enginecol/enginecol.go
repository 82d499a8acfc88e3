// Package enginecol realizes spec.md's "engine column" — the typed,
// nullable, in-memory columnar vector the codec reads from (encode
// path) or appends into (decode path). The engine's own container is
// explicitly out of scope ("assumed as a typed append-only sink"); this
// package wires that assumption to a concrete collaborator, Apache
// Arrow's arrow.Array / array.Builder, whose validity bitmap already
// matches the null bitmap layout this codec otherwise hand-rolls for
// the wire side.
package enginecol

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// ElementType is the closed set of engine value representations the
// codec understands.
type ElementType int

const (
	I8 ElementType = iota
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
	Decimal32
	Decimal64
	Decimal128
	Decimal256
	Bytes
	PackedDateTime
)

func (e ElementType) String() string {
	switch e {
	case I8:
		return "I8"
	case I16:
		return "I16"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case U8:
		return "U8"
	case U16:
		return "U16"
	case U32:
		return "U32"
	case U64:
		return "U64"
	case F32:
		return "F32"
	case F64:
		return "F64"
	case Decimal32:
		return "Decimal32"
	case Decimal64:
		return "Decimal64"
	case Decimal128:
		return "Decimal128"
	case Decimal256:
		return "Decimal256"
	case Bytes:
		return "Bytes"
	case PackedDateTime:
		return "PackedDateTime"
	default:
		return "Unknown"
	}
}

// IsInteger reports whether the type is one of the signed/unsigned
// integer widths.
func (e ElementType) IsInteger() bool {
	switch e {
	case I8, I16, I32, I64, U8, U16, U32, U64:
		return true
	default:
		return false
	}
}

// IsUnsigned reports whether the type is an unsigned integer width.
func (e ElementType) IsUnsigned() bool {
	switch e {
	case U8, U16, U32, U64:
		return true
	default:
		return false
	}
}

// IsDecimal reports whether the type is one of the four decimal
// storage widths.
func (e ElementType) IsDecimal() bool {
	switch e {
	case Decimal32, Decimal64, Decimal128, Decimal256:
		return true
	default:
		return false
	}
}

// Column is a borrowed read view over an engine column for the encode
// path (flash_to_wire). Scale is meaningful only when ElementType is
// one of the Decimal* widths.
type Column struct {
	ElementType ElementType
	Scale       int32
	Array       arrow.Array
}

// NewColumn wraps an Arrow array as an engine column of the given
// element type. scale is ignored for non-decimal types.
func NewColumn(elemType ElementType, scale int32, arr arrow.Array) Column {
	return Column{ElementType: elemType, Scale: scale, Array: arr}
}

// Len returns the row count of the underlying array.
func (c Column) Len() int { return c.Array.Len() }

// IsNull reports whether row i is null. Arrow's validity bitmap is the
// same LSB-indexed presence bitmap spec.md §3.5 describes for the wire
// side, so this is a direct pass-through.
func (c Column) IsNull(i int) bool { return c.Array.IsNull(i) }

// Builder is a borrowed append view over an engine column for the
// decode path (wire_to_flash).
type Builder struct {
	ElementType ElementType
	Scale       int32
	Builder     array.Builder
}

// NewBuilder wraps an Arrow builder as an engine column builder.
func NewBuilder(elemType ElementType, scale int32, b array.Builder) Builder {
	return Builder{ElementType: elemType, Scale: scale, Builder: b}
}

// AppendNull appends a null row, delegating to the underlying Arrow
// builder's own validity tracking.
func (b Builder) AppendNull() { b.Builder.AppendNull() }
