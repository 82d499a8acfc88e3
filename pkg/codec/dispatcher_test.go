package codec_test

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/go-mysql-org/go-mysql/mysql"
	"github.com/stretchr/testify/require"

	"github.com/flashwire/flashcodec/pkg/codec"
	"github.com/flashwire/flashcodec/pkg/enginecol"
	"github.com/flashwire/flashcodec/pkg/nullmap"
	"github.com/flashwire/flashcodec/pkg/wirecol"
	"github.com/flashwire/flashcodec/pkg/wiretype"
)

// Scenario 1: signed integer round trip, spec.md §8 scenario 1.
func TestEncodeDecodeSignedIntegerWithNulls(t *testing.T) {
	mem := memory.NewGoAllocator()
	b := array.NewInt32Builder(mem)
	defer b.Release()
	b.Append(-1)
	b.Append(0)
	b.Append(7)
	b.AppendNull()
	arr := b.NewInt32Array()
	defer arr.Release()

	col := enginecol.NewColumn(enginecol.I32, 0, arr)
	field := wiretype.Field{Name: "v", Type: mysql.MYSQL_TYPE_LONGLONG}

	dst := wirecol.NewBuffer()
	require.NoError(t, codec.EncodeColumn(col, field, dst, 0, arr.Len()))

	require.Equal(t, 4, dst.Len())
	require.False(t, dst.IsNull(0))
	require.False(t, dst.IsNull(1))
	require.False(t, dst.IsNull(2))
	require.True(t, dst.IsNull(3))

	outBuilder := array.NewInt32Builder(mem)
	defer outBuilder.Release()
	dstBuilder := enginecol.NewBuilder(enginecol.I32, 0, outBuilder)

	nb := nullmap.NewBuilder(4)
	nb.Append(false)
	nb.Append(false)
	nb.Append(false)
	nb.Append(true)

	require.NoError(t, codec.DecodeColumn(dst.Bytes(), 8, 1, nb.Bitmap(), nil, dstBuilder, field, 4))

	out := outBuilder.NewInt32Array()
	defer out.Release()
	require.Equal(t, 4, out.Len())
	require.Equal(t, int32(-1), out.Value(0))
	require.Equal(t, int32(0), out.Value(1))
	require.Equal(t, int32(7), out.Value(2))
	require.True(t, out.IsNull(3))
}

// Scenario 2: unsigned integer, spec.md §8 scenario 2.
func TestEncodeUnsignedInteger(t *testing.T) {
	mem := memory.NewGoAllocator()
	b := array.NewUint8Builder(mem)
	defer b.Release()
	b.Append(255)
	b.Append(128)
	arr := b.NewUint8Array()
	defer arr.Release()

	col := enginecol.NewColumn(enginecol.U8, 0, arr)
	field := wiretype.Field{Name: "v", Type: mysql.MYSQL_TYPE_TINY, Flags: mysql.UNSIGNED_FLAG | mysql.NOT_NULL_FLAG}

	dst := wirecol.NewBuffer()
	require.NoError(t, codec.EncodeColumn(col, field, dst, 0, arr.Len()))

	require.Equal(t, 2, dst.Len())
	require.Equal(t, uint64(255), leUint64(dst.Bytes()[0:8]))
	require.Equal(t, uint64(128), leUint64(dst.Bytes()[8:16]))
}

// Scenario 6: string with nulls, spec.md §8 scenario 6.
func TestDecodeStringWithNulls(t *testing.T) {
	mem := memory.NewGoAllocator()
	pos := []byte("abc")
	offsets := []int32{0, 1, 1, 3}

	nb := nullmap.NewBuilder(3)
	nb.Append(false)
	nb.Append(true)
	nb.Append(false)

	b := array.NewBinaryBuilder(mem, arrow.BinaryTypes.Binary)
	defer b.Release()
	dstBuilder := enginecol.NewBuilder(enginecol.Bytes, 0, b)

	field := wiretype.Field{Name: "s", Type: mysql.MYSQL_TYPE_VARCHAR}
	require.NoError(t, codec.DecodeColumn(pos, 0, 1, nb.Bitmap(), offsets, dstBuilder, field, 3))

	out := b.NewBinaryArray()
	defer out.Release()
	require.Equal(t, 3, out.Len())
	require.Equal(t, []byte("a"), out.Value(0))
	require.True(t, out.IsNull(1))
	require.Equal(t, []byte("bc"), out.Value(2))
}

func leUint64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
