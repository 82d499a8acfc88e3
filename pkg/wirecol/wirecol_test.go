package wirecol

import (
	"encoding/binary"
	"testing"

	"github.com/go-mysql-org/go-mysql/mysql"
	"github.com/stretchr/testify/require"

	"github.com/flashwire/flashcodec/pkg/datetime"
)

func TestBufferAppendFixedWidth(t *testing.T) {
	b := NewBuffer()
	b.AppendI64(-1)
	b.AppendI64(0)
	b.AppendI64(7)
	b.AppendNull()

	require.Equal(t, 4, b.Len())
	require.Equal(t, 1, b.NullCount())
	require.True(t, b.IsNull(3))
	require.Len(t, b.Bytes(), 32)

	require.EqualValues(t, -1, int64(binary.LittleEndian.Uint64(b.Bytes()[0:8])))
}

func TestBufferAppendBytesOffsets(t *testing.T) {
	b := NewBuffer()
	b.AppendBytes([]byte("a"))
	b.AppendNull()
	b.AppendBytes([]byte("bc"))

	require.Equal(t, []int32{0, 1, 1, 3}, b.Offsets())
	require.Equal(t, []byte("abc"), b.Bytes())
}

// spec.md §8 scenario 4, worked forward: encoding value 12345.6789 at
// scale 4 must reproduce the same header and word layout the decode
// scenario consumes.
func TestBufferAppendDecimalMatchesWireWordLayout(t *testing.T) {
	b := NewBuffer()
	b.AppendDecimal(WireDecimal{
		Scale:    4,
		Digits:   []int32{9, 8, 7, 6, 5, 4, 3, 2, 1},
		Negative: false,
	})

	raw := b.Bytes()
	require.Len(t, raw, 40)
	require.EqualValues(t, 5, raw[0])
	require.EqualValues(t, 4, raw[1])
	require.EqualValues(t, 0, raw[3])

	words := make([]int32, 9)
	for i := range words {
		words[i] = int32(binary.LittleEndian.Uint32(raw[4+i*4 : 4+i*4+4]))
	}
	require.Equal(t, []int32{12345, 678900000, 0, 0, 0, 0, 0, 0, 0}, words)
}

func TestBufferAppendTimeZeroesReservedBytes(t *testing.T) {
	b := NewBuffer()
	packed := datetime.New(datetime.Fields{
		Year: 2023, Month: 7, Day: 15,
		Hour: 13, Minute: 45, Second: 30,
		Microsecond: 123456,
	})
	b.AppendTime(WireTime{FieldType: mysql.MYSQL_TYPE_DATETIME, Packed: packed})

	raw := b.Bytes()
	require.Len(t, raw, 20)
	require.Equal(t, []byte{0, 0}, raw[14:16])
	require.Equal(t, byte(0), raw[16])
	require.Equal(t, byte(0), raw[17])
	require.Equal(t, []byte{0, 0}, raw[18:20])
}
