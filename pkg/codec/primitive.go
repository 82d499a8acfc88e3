// Package codec implements the four leaf/composite components of the
// columnar codec: the type dispatcher, the decimal codec, the
// date-time codec, and the null-map-driven primitive codec.
package codec

import (
	"encoding/binary"
	"math"

	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/flashwire/flashcodec/pkg/codecerrors"
	"github.com/flashwire/flashcodec/pkg/enginecol"
	"github.com/flashwire/flashcodec/pkg/nullmap"
	"github.com/flashwire/flashcodec/pkg/wirecol"
	"github.com/flashwire/flashcodec/pkg/wiretype"
)

// encodeIntegerColumn appends rows start..end of an integer engine
// column to dst, branching once on the engine array's width for the
// whole column (spec.md §12c); the wire UNSIGNED flag is still tested
// per row in appendSigned/appendUnsigned.
func encodeIntegerColumn(col enginecol.Column, unsigned bool, dst wirecol.Column, start, end int) error {
	switch a := col.Array.(type) {
	case *array.Int8:
		return encodeEach(col, dst, start, end, func(i int) { appendSigned(dst, unsigned, int64(a.Value(i))) })
	case *array.Int16:
		return encodeEach(col, dst, start, end, func(i int) { appendSigned(dst, unsigned, int64(a.Value(i))) })
	case *array.Int32:
		return encodeEach(col, dst, start, end, func(i int) { appendSigned(dst, unsigned, int64(a.Value(i))) })
	case *array.Int64:
		return encodeEach(col, dst, start, end, func(i int) { appendSigned(dst, unsigned, a.Value(i)) })
	case *array.Uint8:
		return encodeEach(col, dst, start, end, func(i int) { appendUnsigned(dst, unsigned, uint64(a.Value(i))) })
	case *array.Uint16:
		return encodeEach(col, dst, start, end, func(i int) { appendUnsigned(dst, unsigned, uint64(a.Value(i))) })
	case *array.Uint32:
		return encodeEach(col, dst, start, end, func(i int) { appendUnsigned(dst, unsigned, uint64(a.Value(i))) })
	case *array.Uint64:
		return encodeEach(col, dst, start, end, func(i int) { appendUnsigned(dst, unsigned, a.Value(i)) })
	default:
		return codecerrors.New(codecerrors.KindLogicalError, "integer width probe failed for all widths").
			WithEngineType(col.ElementType.String())
	}
}

func appendSigned(dst wirecol.Column, unsigned bool, v int64) {
	if unsigned {
		dst.AppendU64(uint64(v))
		return
	}
	dst.AppendI64(v)
}

func appendUnsigned(dst wirecol.Column, unsigned bool, v uint64) {
	if unsigned {
		dst.AppendU64(v)
		return
	}
	dst.AppendI64(int64(v))
}

func encodeEach(col enginecol.Column, dst wirecol.Column, start, end int, appendValue func(i int)) error {
	for i := start; i < end; i++ {
		if col.IsNull(i) {
			dst.AppendNull()
			continue
		}
		appendValue(i)
	}
	return nil
}

// encodeFloatColumn appends rows start..end of a float engine column,
// transmitting FLOAT as its native 4-byte width and DOUBLE as 8 bytes
// (spec.md §4.4.2).
func encodeFloatColumn(col enginecol.Column, dst wirecol.Column, start, end int) error {
	switch a := col.Array.(type) {
	case *array.Float32:
		return encodeEach(col, dst, start, end, func(i int) { dst.AppendF32(a.Value(i)) })
	case *array.Float64:
		return encodeEach(col, dst, start, end, func(i int) { dst.AppendF64(a.Value(i)) })
	default:
		return codecerrors.New(codecerrors.KindLogicalError, "engine column is not a float array").
			WithEngineType(col.ElementType.String())
	}
}

// encodeBytesColumn appends rows start..end of a variable-length bytes
// engine column.
func encodeBytesColumn(col enginecol.Column, dst wirecol.Column, start, end int) error {
	a, ok := col.Array.(*array.Binary)
	if !ok {
		if s, ok2 := col.Array.(*array.String); ok2 {
			return encodeEach(col, dst, start, end, func(i int) { dst.AppendBytes([]byte(s.Value(i))) })
		}
		return codecerrors.New(codecerrors.KindLogicalError, "engine column is not a bytes array").
			WithEngineType(col.ElementType.String())
	}
	return encodeEach(col, dst, start, end, func(i int) { dst.AppendBytes(a.Value(i)) })
}

// decodeIntegerColumn reads length fixed 8-byte little-endian rows
// from cursor and appends them into dst, honoring the null bitmap and
// the wire's UNSIGNED flag. field.Unsigned() governs u64-vs-i64
// reinterpretation (spec.md §4.1 "Integer inner dispatch").
func decodeIntegerColumn(cursor []byte, fieldLength, nullCount int, bitmap nullmap.Bitmap, dst enginecol.Builder, field wiretype.Field, length int) error {
	unsigned := field.Unsigned()
	for row := 0; row < length; row++ {
		if tryAppendNull(bitmap, nullCount, row, dst.AppendNull) {
			continue
		}
		raw := nullmap.LittleEndian(cursor, fieldLength, row)
		bits := binary.LittleEndian.Uint64(raw)
		var err error
		if unsigned {
			err = appendIntegerUnsigned(dst, bits)
		} else {
			err = appendIntegerSigned(dst, int64(bits))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func appendIntegerSigned(dst enginecol.Builder, v int64) error {
	switch dst.ElementType {
	case enginecol.I8:
		return appendInt8Builder(dst, int8(v))
	case enginecol.I16:
		return appendInt16Builder(dst, int16(v))
	case enginecol.I32:
		return appendInt32Builder(dst, int32(v))
	case enginecol.I64:
		return appendInt64Builder(dst, v)
	default:
		return codecerrors.New(codecerrors.KindLogicalError, "signed integer decode target is not an integer engine column").
			WithEngineType(dst.ElementType.String())
	}
}

func appendIntegerUnsigned(dst enginecol.Builder, v uint64) error {
	switch dst.ElementType {
	case enginecol.U8:
		return appendUint8Builder(dst, uint8(v))
	case enginecol.U16:
		return appendUint16Builder(dst, uint16(v))
	case enginecol.U32:
		return appendUint32Builder(dst, uint32(v))
	case enginecol.U64:
		return appendUint64Builder(dst, v)
	default:
		return codecerrors.New(codecerrors.KindLogicalError, "unsigned integer decode target is not an integer engine column").
			WithEngineType(dst.ElementType.String())
	}
}

// decodeFloatColumn reads length fixed-width rows (4 bytes for FLOAT,
// 8 for DOUBLE) and appends them into dst.
func decodeFloatColumn(cursor []byte, fieldLength, nullCount int, bitmap nullmap.Bitmap, dst enginecol.Builder, length int) error {
	for row := 0; row < length; row++ {
		if tryAppendNull(bitmap, nullCount, row, dst.AppendNull) {
			continue
		}
		raw := nullmap.LittleEndian(cursor, fieldLength, row)
		switch fieldLength {
		case 4:
			bits := binary.LittleEndian.Uint32(raw)
			if err := appendFloat32Builder(dst, math.Float32frombits(bits)); err != nil {
				return err
			}
		case 8:
			bits := binary.LittleEndian.Uint64(raw)
			if err := appendFloat64Builder(dst, math.Float64frombits(bits)); err != nil {
				return err
			}
		default:
			return codecerrors.Newf(codecerrors.KindLogicalError, "unexpected float field length %d", fieldLength)
		}
	}
	return nil
}

// decodeBytesColumn reads length variable-length rows located by
// offsets and appends them into dst. Null rows have offsets[i+1] ==
// offsets[i] and still go through AppendNull (spec.md §4.4.3).
func decodeBytesColumn(pos []byte, offsets []int32, nullCount int, bitmap nullmap.Bitmap, dst enginecol.Builder, length int) error {
	for row := 0; row < length; row++ {
		if tryAppendNull(bitmap, nullCount, row, dst.AppendNull) {
			continue
		}
		span := pos[offsets[row]:offsets[row+1]]
		if err := appendBinaryBuilder(dst, span); err != nil {
			return err
		}
	}
	return nil
}
