// Package nullmap implements the wire null bitmap: one bit per row,
// packed LSB-first within each byte, padded to a whole number of
// bytes. It is read byte-at-a-time rather than through a bit-indexed
// type, since the wire format makes no alignment promise beyond the
// byte boundary.
package nullmap

// Bitmap is a read-only view over a packed null bitmap.
type Bitmap struct {
	bytes []byte
	rows  int
}

// Wrap interprets raw as a null bitmap covering rows rows. raw must
// contain at least (rows+7)/8 bytes.
func Wrap(raw []byte, rows int) Bitmap {
	return Bitmap{bytes: raw, rows: rows}
}

// Len returns the number of rows the bitmap covers.
func (b Bitmap) Len() int { return b.rows }

// IsNull reports whether row i is null. A row is present iff its bit is
// set; a clear bit marks the row null.
func (b Bitmap) IsNull(i int) bool {
	byteIdx := i >> 3
	bitIdx := uint(i & 7)
	return b.bytes[byteIdx]&(1<<bitIdx) == 0
}

// ByteLen returns the number of bytes needed to pack n rows.
func ByteLen(n int) int {
	return (n + 7) / 8
}

// Builder accumulates a null bitmap one row at a time.
type Builder struct {
	bytes []byte
	rows  int
}

// NewBuilder preallocates a bitmap for an expected row count.
func NewBuilder(expectedRows int) *Builder {
	return &Builder{bytes: make([]byte, ByteLen(expectedRows))}
}

// Append records whether the next row is null. The bit is set for a
// present row and left clear for a null row.
func (b *Builder) Append(isNull bool) {
	byteIdx := b.rows >> 3
	for byteIdx >= len(b.bytes) {
		b.bytes = append(b.bytes, 0)
	}
	if !isNull {
		bitIdx := uint(b.rows & 7)
		b.bytes[byteIdx] |= 1 << bitIdx
	}
	b.rows++
}

// Bytes returns the packed bitmap bytes built so far.
func (b *Builder) Bytes() []byte { return b.bytes }

// Len returns the number of rows appended so far.
func (b *Builder) Len() int { return b.rows }

// Bitmap returns a read-only view over the bytes accumulated so far.
func (b *Builder) Bitmap() Bitmap { return Bitmap{bytes: b.bytes, rows: b.rows} }

// LittleEndian reads a fixed-width little-endian field for row i out of
// a flat, fixed-stride byte buffer. It exists because the wire encodes
// every fixed-width column (ints, floats, packed datetimes) as an array
// of little-endian records rather than a typed slice, so every reader
// goes through the same byte-wise path regardless of engine type.
func LittleEndian(data []byte, stride, row int) []byte {
	off := row * stride
	return data[off : off+stride]
}
