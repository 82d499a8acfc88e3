package codec_test

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/go-mysql-org/go-mysql/mysql"
	"github.com/stretchr/testify/require"

	"github.com/flashwire/flashcodec/pkg/codec"
	"github.com/flashwire/flashcodec/pkg/datetime"
	"github.com/flashwire/flashcodec/pkg/enginecol"
	"github.com/flashwire/flashcodec/pkg/nullmap"
	"github.com/flashwire/flashcodec/pkg/wirecol"
	"github.com/flashwire/flashcodec/pkg/wiretype"
)

// Scenario 5: datetime round trip, spec.md §8 scenario 5.
func TestEncodeDecodeDateTimeRoundTrip(t *testing.T) {
	mem := memory.NewGoAllocator()

	packed := datetime.New(datetime.Fields{
		Year: 2023, Month: 7, Day: 15,
		Hour: 13, Minute: 45, Second: 30,
		Microsecond: 123456,
	})

	b := array.NewUint64Builder(mem)
	defer b.Release()
	b.Append(uint64(packed))
	arr := b.NewUint64Array()
	defer arr.Release()

	col := enginecol.NewColumn(enginecol.PackedDateTime, 0, arr)
	field := wiretype.Field{Name: "ts", Type: mysql.MYSQL_TYPE_DATETIME}

	dst := wirecol.NewBuffer()
	require.NoError(t, codec.EncodeColumn(col, field, dst, 0, arr.Len()))
	require.Len(t, dst.Bytes(), 20)

	raw := dst.Bytes()
	require.EqualValues(t, 13, leUint32(raw[0:4]))
	require.EqualValues(t, 123456, leUint32(raw[4:8]))
	require.EqualValues(t, 2023, leUint16(raw[8:10]))
	require.EqualValues(t, 7, raw[10])
	require.EqualValues(t, 15, raw[11])
	require.EqualValues(t, 45, raw[12])
	require.EqualValues(t, 30, raw[13])
	require.Equal(t, []byte{0, 0}, raw[14:16])
	require.Equal(t, byte(0), raw[16])
	require.Equal(t, byte(0), raw[17])
	require.Equal(t, []byte{0, 0}, raw[18:20])

	outBuilder := array.NewUint64Builder(mem)
	defer outBuilder.Release()
	dstBuilder := enginecol.NewBuilder(enginecol.PackedDateTime, 0, outBuilder)

	nb := nullmap.NewBuilder(1)
	nb.Append(false)

	require.NoError(t, codec.DecodeColumn(raw, 20, 0, nb.Bitmap(), nil, dstBuilder, field, 1))

	out := outBuilder.NewUint64Array()
	defer out.Release()
	require.Equal(t, uint64(packed), out.Value(0))
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func leUint16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}
