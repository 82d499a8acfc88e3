package codec

import (
	"github.com/go-mysql-org/go-mysql/mysql"

	"github.com/flashwire/flashcodec/pkg/codecerrors"
	"github.com/flashwire/flashcodec/pkg/enginecol"
	"github.com/flashwire/flashcodec/pkg/nullmap"
	"github.com/flashwire/flashcodec/pkg/wirecol"
	"github.com/flashwire/flashcodec/pkg/wiretype"
)

// EncodeColumn matches an engine column against a declared wire field
// and, if compatible, copies rows [start, end) into dst (spec.md §4.1).
func EncodeColumn(col enginecol.Column, field wiretype.Field, dst wirecol.Column, start, end int) error {
	if err := checkCompatibility(col.ElementType, field); err != nil {
		return err
	}
	// Checked against actual null count rather than the column's declared
	// nullability: Arrow arrays carry no separate nullable flag, only a
	// null count, so a nullable-but-all-present column is accepted here
	// against a NOT NULL field where the source type system would reject
	// it outright.
	if field.NotNull() && col.Array.NullN() > 0 {
		return mismatch(field, col.ElementType, "engine column is nullable but wire declares NOT NULL")
	}

	switch wiretype.FamilyOf(field.Type) {
	case wiretype.FamilyInteger:
		return encodeIntegerColumn(col, field.Unsigned(), dst, start, end)
	case wiretype.FamilyFloat:
		return encodeFloatColumn(col, dst, start, end)
	case wiretype.FamilyTime:
		return encodeDateTimeColumn(col, field.Type, dst, start, end)
	case wiretype.FamilyDecimal:
		return encodeDecimalColumn(col, dst, start, end)
	case wiretype.FamilyString:
		return encodeBytesColumn(col, dst, start, end)
	default:
		return codecerrors.Newf(codecerrors.KindNotImplemented, "unsupported wire type code %d", field.Type).
			WithColumn(field.Name)
	}
}

// DecodeColumn consumes a byte cursor plus a null bitmap (and, for
// strings, an offsets vector) and appends length rows into dst
// (spec.md §4.1).
func DecodeColumn(cursor []byte, fieldLength, nullCount int, bitmap nullmap.Bitmap, offsets []int32, dst enginecol.Builder, field wiretype.Field, length int) error {
	if err := checkCompatibility(dst.ElementType, field); err != nil {
		return err
	}

	switch wiretype.FamilyOf(field.Type) {
	case wiretype.FamilyInteger:
		return decodeIntegerColumn(cursor, fieldLength, nullCount, bitmap, dst, field, length)
	case wiretype.FamilyFloat:
		return decodeFloatColumn(cursor, fieldLength, nullCount, bitmap, dst, length)
	case wiretype.FamilyTime:
		return decodeDateTimeColumn(cursor, fieldLength, nullCount, bitmap, dst, length)
	case wiretype.FamilyDecimal:
		return decodeDecimalColumnRows(cursor, fieldLength, nullCount, bitmap, dst, length)
	case wiretype.FamilyString:
		return decodeBytesColumn(cursor, offsets, nullCount, bitmap, dst, length)
	default:
		return codecerrors.Newf(codecerrors.KindNotImplemented, "unsupported wire type code %d", field.Type).
			WithColumn(field.Name)
	}
}

func decodeDecimalColumnRows(cursor []byte, fieldLength, nullCount int, bitmap nullmap.Bitmap, dst enginecol.Builder, length int) error {
	for row := 0; row < length; row++ {
		if tryAppendNull(bitmap, nullCount, row, dst.AppendNull) {
			continue
		}
		raw := nullmap.LittleEndian(cursor, fieldLength, row)
		if err := DecodeDecimalInto(raw, dst); err != nil {
			return err
		}
	}
	return nil
}

// checkCompatibility implements the dispatcher's compatibility matrix
// (spec.md §4.1). It is called symmetrically from both the encode and
// decode entry points since both name an engine element type and a
// wire field declaration.
func checkCompatibility(elemType enginecol.ElementType, field wiretype.Field) error {
	family := wiretype.FamilyOf(field.Type)

	switch family {
	case wiretype.FamilyInteger:
		if !elemType.IsInteger() {
			return mismatch(field, elemType, "wire integer type requires an integer engine column")
		}
		if field.Unsigned() != elemType.IsUnsigned() {
			return mismatch(field, elemType, "wire UNSIGNED flag disagrees with engine integer signedness")
		}
	case wiretype.FamilyFloat:
		wantF32 := field.Type == mysql.MYSQL_TYPE_FLOAT
		if wantF32 && elemType != enginecol.F32 {
			return mismatch(field, elemType, "wire FLOAT requires an f32 engine column")
		}
		if !wantF32 && elemType != enginecol.F64 {
			return mismatch(field, elemType, "wire DOUBLE requires an f64 engine column")
		}
	case wiretype.FamilyTime:
		if elemType != enginecol.PackedDateTime {
			return mismatch(field, elemType, "wire date/time type requires a packed-datetime engine column")
		}
	case wiretype.FamilyDecimal:
		if !elemType.IsDecimal() {
			return mismatch(field, elemType, "wire NEWDECIMAL requires a decimal engine column")
		}
	case wiretype.FamilyString:
		if elemType != enginecol.Bytes {
			return mismatch(field, elemType, "wire string type requires a bytes engine column")
		}
	default:
		return codecerrors.Newf(codecerrors.KindNotImplemented, "unsupported wire type code %d", field.Type).
			WithColumn(field.Name)
	}
	return nil
}

func mismatch(field wiretype.Field, elemType enginecol.ElementType, msg string) error {
	return codecerrors.New(codecerrors.KindTypeMismatch, msg).
		WithColumn(field.Name).
		WithEngineType(elemType.String())
}
