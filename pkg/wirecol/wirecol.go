// Package wirecol implements the wire column appender abstraction
// (spec.md §3.2): an ordered sink the encode path pushes rows into,
// and the reference byte layouts (decimal, time) that ride on top of
// it. Buffer is a concrete little-endian implementation; callers may
// substitute their own Column as long as it honors the append-order
// and null-preservation invariants.
package wirecol

import (
	"encoding/binary"
	"math"

	"github.com/flashwire/flashcodec/pkg/datetime"
	"github.com/flashwire/flashcodec/pkg/wiretype"
)

// WireDecimal is a scale-carrying packed-decimal value as defined in
// spec.md §3.3: digits are least-significant-first and always at least
// scale long.
type WireDecimal struct {
	Scale    uint8
	Digits   []int32
	Negative bool
}

// WireTime is a view over a packed engine datetime plus the wire field
// type needed to pick serialization width (spec.md §3.4). DATE,
// DATETIME and TIMESTAMP currently share one 20-byte layout; FieldType
// is carried for forward compatibility with a narrower DATE encoding.
type WireTime struct {
	FieldType wiretype.Code
	Packed    datetime.Packed
}

// Column is the append sink an encode call pushes rows into, in
// strictly increasing source-index order (spec.md §3.2).
type Column interface {
	AppendNull()
	AppendU64(v uint64)
	AppendI64(v int64)
	AppendF32(v float32)
	AppendF64(v float64)
	AppendBytes(v []byte)
	AppendDecimal(v WireDecimal)
	AppendTime(v WireTime)
}

// Buffer is a reference Column implementation that serializes directly
// to the little-endian byte layouts in spec.md §6.2, alongside a
// side-by-side null bitmap and, for bytes, an offsets vector.
type Buffer struct {
	data      []byte
	offsets   []int32
	nullCount int
	rows      int
	nulls     []bool
}

// NewBuffer returns an empty wire buffer.
func NewBuffer() *Buffer {
	return &Buffer{offsets: []int32{0}}
}

func (b *Buffer) markRow(isNull bool) {
	b.nulls = append(b.nulls, isNull)
	if isNull {
		b.nullCount++
	}
	b.rows++
}

// AppendNull appends a null row. Fixed-width rows still reserve their
// full field width (zeroed); bytes rows repeat the last offset.
func (b *Buffer) AppendNull() {
	b.markRow(true)
	b.offsets = append(b.offsets, b.offsets[len(b.offsets)-1])
}

func (b *Buffer) appendFixed8(bits uint64) {
	b.markRow(false)
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], bits)
	b.data = append(b.data, tmp[:]...)
}

// AppendU64 appends an 8-byte little-endian unsigned integer row.
func (b *Buffer) AppendU64(v uint64) { b.appendFixed8(v) }

// AppendI64 appends an 8-byte little-endian signed integer row.
func (b *Buffer) AppendI64(v int64) { b.appendFixed8(uint64(v)) }

// AppendF32 appends a 4-byte little-endian FLOAT row.
func (b *Buffer) AppendF32(v float32) {
	b.markRow(false)
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], math.Float32bits(v))
	b.data = append(b.data, tmp[:]...)
}

// AppendF64 appends an 8-byte little-endian DOUBLE row.
func (b *Buffer) AppendF64(v float64) {
	b.markRow(false)
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
	b.data = append(b.data, tmp[:]...)
}

// AppendBytes appends a variable-length row, extending the offsets
// side array (spec.md §4.4.3).
func (b *Buffer) AppendBytes(v []byte) {
	b.markRow(false)
	b.data = append(b.data, v...)
	b.offsets = append(b.offsets, b.offsets[len(b.offsets)-1]+int32(len(v)))
}

// AppendDecimal appends the 40-byte decimal row: a 4-byte header
// (digits_int, digits_frac, result_frac, negative, one byte each) plus
// 9 little-endian i32 words (spec.md §6.2).
func (b *Buffer) AppendDecimal(v WireDecimal) {
	b.markRow(false)

	digitsFrac := int(v.Scale)
	digitsInt := len(v.Digits) - digitsFrac
	if digitsInt < 0 {
		digitsInt = 0
	}

	var negByte byte
	if v.Negative {
		negByte = 1
	}
	header := [4]byte{byte(digitsInt), byte(digitsFrac), 0, negByte}
	b.data = append(b.data, header[:]...)

	words := decimalDigitsToWords(v.Digits, digitsInt, digitsFrac)
	var tmp [4]byte
	for _, w := range words {
		binary.LittleEndian.PutUint32(tmp[:], uint32(w))
		b.data = append(b.data, tmp[:]...)
	}
}

// decimalDigitsToWords packs LSB-first decimal digits into exactly 9
// base-10^9 words, most-significant-word first (integer part words
// before fractional part words), matching the wire layout scenario in
// spec.md §8 #3/#4.
func decimalDigitsToWords(digits []int32, digitsInt, digitsFrac int) [9]int32 {
	var words [9]int32

	wordInt := (digitsInt + 8) / 9
	wordFrac := digitsFrac / 9
	tailDigits := digitsFrac % 9

	// digits is LSB-first over the whole value (fraction then
	// integer part); split it back into fractional and integer runs.
	frac := digits[:digitsFrac]
	intPart := digits[digitsFrac:]

	if tailDigits > 0 {
		tail := int32(0)
		for i := tailDigits - 1; i >= 0; i-- {
			tail = tail*10 + frac[i]
		}
		tailWord := tail
		for p := 0; p < 9-tailDigits; p++ {
			tailWord *= 10
		}
		words[wordInt+wordFrac] = tailWord
	}

	for w := 0; w < wordFrac; w++ {
		start := tailDigits + w*9
		var word int32
		for i := 8; i >= 0; i-- {
			word = word*10 + frac[start+i]
		}
		words[wordInt+wordFrac-1-w] = word
	}

	for w := 0; w < wordInt; w++ {
		lo := w * 9
		hi := lo + 9
		if hi > len(intPart) {
			hi = len(intPart)
		}
		var word int32
		for i := len(intPart[lo:hi]) - 1; i >= 0; i-- {
			word = word*10 + intPart[lo:hi][i]
		}
		words[wordInt-1-w] = word
	}

	return words
}

// AppendTime appends the 20-byte datetime row (spec.md §4.3.2),
// zeroing every reserved position.
func (b *Buffer) AppendTime(v WireTime) {
	b.markRow(false)
	var row [20]byte
	binary.LittleEndian.PutUint32(row[0:4], uint32(v.Packed.Hour()))
	binary.LittleEndian.PutUint32(row[4:8], v.Packed.Microsecond())
	binary.LittleEndian.PutUint16(row[8:10], uint16(v.Packed.Year()))
	row[10] = v.Packed.Month()
	row[11] = v.Packed.Day()
	row[12] = v.Packed.Minute()
	row[13] = v.Packed.Second()
	// row[14:16], row[16], row[17], row[18:20] stay zero: reserved.
	b.data = append(b.data, row[:]...)
}

// Bytes returns the accumulated fixed/variable-length payload.
func (b *Buffer) Bytes() []byte { return b.data }

// Offsets returns the bytes-row offsets vector (only meaningful for a
// buffer exclusively fed via AppendBytes/AppendNull).
func (b *Buffer) Offsets() []int32 { return b.offsets }

// NullCount returns how many rows were appended via AppendNull.
func (b *Buffer) NullCount() int { return b.nullCount }

// Len returns the total row count appended so far.
func (b *Buffer) Len() int { return b.rows }

// IsNull reports whether row i was appended as null.
func (b *Buffer) IsNull(i int) bool { return b.nulls[i] }
