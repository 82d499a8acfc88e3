package codec

import (
	"encoding/binary"
	"math/big"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/decimal256"

	"github.com/flashwire/flashcodec/pkg/codecerrors"
	"github.com/flashwire/flashcodec/pkg/enginecol"
	"github.com/flashwire/flashcodec/pkg/pool"
	"github.com/flashwire/flashcodec/pkg/wirecol"
)

const (
	digitsPerWord  = 9
	wordMax        = 1_000_000_000
	maxWordBufLen  = 9
	decimalWireLen = 4 + maxWordBufLen*4
)

var ten9 = big.NewInt(wordMax)

// EncodeDecimalInt64 builds a WireDecimal from a signed integer stored
// at scale S (spec.md §4.2.1). v is the engine's scaled integer value,
// not the human-readable decimal.
func EncodeDecimalInt64(v int64, scale int32) wirecol.WireDecimal {
	neg := v < 0
	mag := new(big.Int).SetInt64(v)
	mag.Abs(mag)
	return encodeDecimalBigInt(mag, neg, scale)
}

// EncodeDecimalBigInt builds a WireDecimal from an arbitrary-precision
// signed integer (Decimal128/256 storage).
func EncodeDecimalBigInt(v *big.Int, scale int32) wirecol.WireDecimal {
	neg := v.Sign() < 0
	mag := new(big.Int).Abs(v)
	return encodeDecimalBigInt(mag, neg, scale)
}

func encodeDecimalBigInt(mag *big.Int, negative bool, scale int32) wirecol.WireDecimal {
	digits := pool.GetDigits()
	if mag.Sign() == 0 {
		digits = append(digits, 0)
	}
	ten := big.NewInt(10)
	rem := new(big.Int).Set(mag)
	q := new(big.Int)
	m := new(big.Int)
	for rem.Sign() != 0 {
		q.QuoRem(rem, ten, m)
		digits = append(digits, int32(m.Int64()))
		rem, q = q, rem
	}
	for int32(len(digits)) < scale {
		digits = append(digits, 0)
	}

	out := make([]int32, len(digits))
	copy(out, digits)
	pool.PutDigits(digits)

	return wirecol.WireDecimal{
		Scale:    uint8(scale),
		Digits:   out,
		Negative: negative,
	}
}

// encodeDecimalColumn appends rows start..end of a decimal engine
// column to dst. The leaf is chosen by the engine column's concrete
// storage width: Decimal32/Decimal64 are plain scaled integers
// (Arrow has no native 32/64-bit decimal kind), Decimal128/Decimal256
// are Arrow's native wide decimal arrays (spec.md §4.1 "Decimal inner
// dispatch").
func encodeDecimalColumn(col enginecol.Column, dst wirecol.Column, start, end int) error {
	switch a := col.Array.(type) {
	case *array.Int32:
		return encodeEach(col, dst, start, end, func(i int) {
			dst.AppendDecimal(EncodeDecimalInt64(int64(a.Value(i)), col.Scale))
		})
	case *array.Int64:
		return encodeEach(col, dst, start, end, func(i int) {
			dst.AppendDecimal(EncodeDecimalInt64(a.Value(i), col.Scale))
		})
	case *array.Decimal128:
		return encodeEach(col, dst, start, end, func(i int) {
			dst.AppendDecimal(EncodeDecimalBigInt(a.Value(i).BigInt(), col.Scale))
		})
	case *array.Decimal256:
		return encodeEach(col, dst, start, end, func(i int) {
			dst.AppendDecimal(EncodeDecimalBigInt(a.Value(i).BigInt(), col.Scale))
		})
	default:
		return codecerrors.New(codecerrors.KindLogicalError, "decimal width probe failed for all widths").
			WithEngineType(col.ElementType.String())
	}
}

// decimalHeader is the 4-byte fixed header preceding the 9 wire words
// (spec.md §4.2.2).
type decimalHeader struct {
	digitsInt  int
	digitsFrac int
	negative   bool
}

func readDecimalHeader(b []byte) decimalHeader {
	return decimalHeader{
		digitsInt:  int(b[0]),
		digitsFrac: int(b[1]),
		negative:   b[3] != 0,
	}
}

// DecodeDecimalBigInt implements to_engine_decimal (spec.md §4.2.2),
// reading the 40-byte wire decimal record at b and returning the
// accumulated scaled integer as a big.Int. No scale is returned: the
// engine's declared scale is authoritative, and the wire's digits_frac
// only decides how many fractional words and tail digits are read.
func DecodeDecimalBigInt(b []byte) (value *big.Int, negative bool) {
	hdr := readDecimalHeader(b)

	wordInt := (hdr.digitsInt + digitsPerWord - 1) / digitsPerWord
	wordFrac := hdr.digitsFrac / digitsPerWord
	tailDigits := hdr.digitsFrac % digitsPerWord

	words := make([]int32, maxWordBufLen)
	for i := 0; i < maxWordBufLen; i++ {
		off := 4 + i*4
		words[i] = int32(binary.LittleEndian.Uint32(b[off : off+4]))
	}

	value = new(big.Int)
	for k := 0; k < wordInt+wordFrac; k++ {
		value.Mul(value, ten9)
		value.Add(value, big.NewInt(int64(words[k])))
	}

	if tailDigits > 0 {
		tail := words[wordInt+wordFrac]
		for p := 0; p < digitsPerWord-tailDigits; p++ {
			tail /= 10
		}
		scale := int64(1)
		for i := 0; i < tailDigits; i++ {
			scale *= 10
		}
		value.Mul(value, big.NewInt(scale))
		value.Add(value, big.NewInt(int64(tail)))
	}

	if hdr.negative {
		value.Neg(value)
	}
	return value, hdr.negative
}

// DecodeDecimalInto decodes the wire decimal record at b and appends
// it to an engine decimal builder of the matching storage width,
// selected per spec.md §4.2.3: the engine column's declared element
// type governs the result width.
func DecodeDecimalInto(b []byte, dst enginecol.Builder) error {
	value, _ := DecodeDecimalBigInt(b)

	switch dst.ElementType {
	case enginecol.Decimal32:
		if !value.IsInt64() || value.Int64() < -(1<<31) || value.Int64() > (1<<31-1) {
			return codecerrors.New(codecerrors.KindLogicalError, "decimal value overflows Decimal32 storage").
				WithEngineType(dst.ElementType.String())
		}
		return appendInt32Builder(dst, int32(value.Int64()))
	case enginecol.Decimal64:
		if !value.IsInt64() {
			return codecerrors.New(codecerrors.KindLogicalError, "decimal value overflows Decimal64 storage").
				WithEngineType(dst.ElementType.String())
		}
		return appendInt64Builder(dst, value.Int64())
	case enginecol.Decimal128:
		if value.BitLen() > 127 {
			return codecerrors.New(codecerrors.KindLogicalError, "decimal value overflows Decimal128 storage").
				WithEngineType(dst.ElementType.String())
		}
		return appendDecimal128Builder(dst, bigIntToDecimal128(value))
	case enginecol.Decimal256:
		if value.BitLen() > 255 {
			return codecerrors.New(codecerrors.KindLogicalError, "decimal value overflows Decimal256 storage").
				WithEngineType(dst.ElementType.String())
		}
		return appendDecimal256Builder(dst, bigIntToDecimal256(value))
	default:
		return codecerrors.New(codecerrors.KindLogicalError, "decimal width probe failed for all widths").
			WithEngineType(dst.ElementType.String())
	}
}

// bigIntToDecimal128 converts an arbitrary-precision integer into
// Arrow's 128-bit decimal word representation via its big-endian byte
// form, avoiding any dependency on a particular FromBigInt rounding
// convention.
func bigIntToDecimal128(v *big.Int) decimal128.Num {
	neg := v.Sign() < 0
	abs := new(big.Int).Abs(v)
	var buf [16]byte
	abs.FillBytes(buf[:])
	hi := binary.BigEndian.Uint64(buf[0:8])
	lo := binary.BigEndian.Uint64(buf[8:16])
	n := decimal128.New(int64(hi), lo)
	if neg {
		n = n.Negate()
	}
	return n
}

// bigIntToDecimal256 converts an arbitrary-precision integer into
// Arrow's 256-bit decimal word representation (decimal256.New takes
// the most-significant word first).
func bigIntToDecimal256(v *big.Int) decimal256.Num {
	neg := v.Sign() < 0
	abs := new(big.Int).Abs(v)
	var buf [32]byte
	abs.FillBytes(buf[:])
	x4 := binary.BigEndian.Uint64(buf[0:8])
	x3 := binary.BigEndian.Uint64(buf[8:16])
	x2 := binary.BigEndian.Uint64(buf[16:24])
	x1 := binary.BigEndian.Uint64(buf[24:32])
	n := decimal256.New(x4, x3, x2, x1)
	if neg {
		n = n.Negate()
	}
	return n
}
