package codec

import (
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/decimal256"

	"github.com/flashwire/flashcodec/pkg/codecerrors"
	"github.com/flashwire/flashcodec/pkg/enginecol"
)

// appendInt32Builder and its siblings type-assert the engine builder
// down to its concrete Arrow builder type. The assertion can only fail
// if the caller constructed a Builder whose Builder field doesn't
// match its declared ElementType, which is a caller bug, not a
// decode-time condition — it surfaces as LogicalError rather than a
// silently wrong append.

func appendInt8Builder(dst enginecol.Builder, v int8) error {
	b, ok := dst.Builder.(*array.Int8Builder)
	if !ok {
		return builderMismatch(dst, "Int8Builder")
	}
	b.Append(v)
	return nil
}

func appendInt16Builder(dst enginecol.Builder, v int16) error {
	b, ok := dst.Builder.(*array.Int16Builder)
	if !ok {
		return builderMismatch(dst, "Int16Builder")
	}
	b.Append(v)
	return nil
}

func appendInt32Builder(dst enginecol.Builder, v int32) error {
	b, ok := dst.Builder.(*array.Int32Builder)
	if !ok {
		return builderMismatch(dst, "Int32Builder")
	}
	b.Append(v)
	return nil
}

func appendInt64Builder(dst enginecol.Builder, v int64) error {
	b, ok := dst.Builder.(*array.Int64Builder)
	if !ok {
		return builderMismatch(dst, "Int64Builder")
	}
	b.Append(v)
	return nil
}

func appendUint8Builder(dst enginecol.Builder, v uint8) error {
	b, ok := dst.Builder.(*array.Uint8Builder)
	if !ok {
		return builderMismatch(dst, "Uint8Builder")
	}
	b.Append(v)
	return nil
}

func appendUint16Builder(dst enginecol.Builder, v uint16) error {
	b, ok := dst.Builder.(*array.Uint16Builder)
	if !ok {
		return builderMismatch(dst, "Uint16Builder")
	}
	b.Append(v)
	return nil
}

func appendUint32Builder(dst enginecol.Builder, v uint32) error {
	b, ok := dst.Builder.(*array.Uint32Builder)
	if !ok {
		return builderMismatch(dst, "Uint32Builder")
	}
	b.Append(v)
	return nil
}

func appendUint64Builder(dst enginecol.Builder, v uint64) error {
	b, ok := dst.Builder.(*array.Uint64Builder)
	if !ok {
		return builderMismatch(dst, "Uint64Builder")
	}
	b.Append(v)
	return nil
}

func appendFloat32Builder(dst enginecol.Builder, v float32) error {
	b, ok := dst.Builder.(*array.Float32Builder)
	if !ok {
		return builderMismatch(dst, "Float32Builder")
	}
	b.Append(v)
	return nil
}

func appendFloat64Builder(dst enginecol.Builder, v float64) error {
	b, ok := dst.Builder.(*array.Float64Builder)
	if !ok {
		return builderMismatch(dst, "Float64Builder")
	}
	b.Append(v)
	return nil
}

func appendBinaryBuilder(dst enginecol.Builder, v []byte) error {
	b, ok := dst.Builder.(*array.BinaryBuilder)
	if !ok {
		return builderMismatch(dst, "BinaryBuilder")
	}
	b.Append(v)
	return nil
}

func appendDecimal128Builder(dst enginecol.Builder, v decimal128.Num) error {
	b, ok := dst.Builder.(*array.Decimal128Builder)
	if !ok {
		return builderMismatch(dst, "Decimal128Builder")
	}
	b.Append(v)
	return nil
}

func appendDecimal256Builder(dst enginecol.Builder, v decimal256.Num) error {
	b, ok := dst.Builder.(*array.Decimal256Builder)
	if !ok {
		return builderMismatch(dst, "Decimal256Builder")
	}
	b.Append(v)
	return nil
}

func appendUint64BuilderAsPacked(dst enginecol.Builder, v uint64) error {
	b, ok := dst.Builder.(*array.Uint64Builder)
	if !ok {
		return builderMismatch(dst, "Uint64Builder")
	}
	b.Append(v)
	return nil
}

func builderMismatch(dst enginecol.Builder, want string) error {
	return codecerrors.Newf(codecerrors.KindLogicalError,
		"engine builder does not back a %s for declared element type %s", want, dst.ElementType).
		WithEngineType(dst.ElementType.String())
}
