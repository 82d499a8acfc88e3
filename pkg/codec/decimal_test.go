package codec_test

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"

	"github.com/flashwire/flashcodec/pkg/codec"
	"github.com/flashwire/flashcodec/pkg/enginecol"
)

// Scenario 3: decimal encode, spec.md §8 scenario 3.
func TestEncodeDecimalInt64(t *testing.T) {
	wd := codec.EncodeDecimalInt64(-1234500, 3)

	require.EqualValues(t, 3, wd.Scale)
	require.True(t, wd.Negative)
	require.Equal(t, []int32{0, 0, 5, 4, 3, 2, 1}, wd.Digits)
}

// Invariant 5: sign symmetry.
func TestEncodeDecimalSignSymmetry(t *testing.T) {
	pos := codec.EncodeDecimalInt64(1234500, 3)
	neg := codec.EncodeDecimalInt64(-1234500, 3)

	require.Equal(t, pos.Digits, neg.Digits)
	require.Equal(t, !pos.Negative, neg.Negative)
}

// Invariant 6: fractional padding for a magnitude narrower than scale.
func TestEncodeDecimalPadsFractionalDigits(t *testing.T) {
	wd := codec.EncodeDecimalInt64(5, 4)
	require.GreaterOrEqual(t, len(wd.Digits), 4)
	require.Equal(t, []int32{5, 0, 0, 0}, wd.Digits)
}

func buildDecimalWire(digitsInt, digitsFrac byte, negative bool, words [9]int32) []byte {
	b := make([]byte, 4+9*4)
	b[0] = digitsInt
	b[1] = digitsFrac
	if negative {
		b[3] = 1
	}
	for i, w := range words {
		binary.LittleEndian.PutUint32(b[4+i*4:4+i*4+4], uint32(w))
	}
	return b
}

// Scenario 4: decimal round trip, spec.md §8 scenario 4.
func TestDecodeDecimalBigIntRoundTrip(t *testing.T) {
	raw := buildDecimalWire(5, 4, false, [9]int32{12345, 678900000, 0, 0, 0, 0, 0, 0, 0})

	value, negative := codec.DecodeDecimalBigInt(raw)
	require.False(t, negative)
	require.Equal(t, big.NewInt(123456789), value)
}

func TestDecodeDecimalIntoDecimal64Builder(t *testing.T) {
	raw := buildDecimalWire(5, 4, false, [9]int32{12345, 678900000, 0, 0, 0, 0, 0, 0, 0})

	mem := memory.NewGoAllocator()
	b := array.NewInt64Builder(mem)
	defer b.Release()
	dst := enginecol.NewBuilder(enginecol.Decimal64, 4, b)

	require.NoError(t, codec.DecodeDecimalInto(raw, dst))

	out := b.NewInt64Array()
	defer out.Release()
	require.Equal(t, int64(123456789), out.Value(0))
}

func TestDecodeDecimalNegative(t *testing.T) {
	raw := buildDecimalWire(4, 3, true, [9]int32{1234, 500000000, 0, 0, 0, 0, 0, 0, 0})

	value, negative := codec.DecodeDecimalBigInt(raw)
	require.True(t, negative)
	require.Equal(t, big.NewInt(-1234500), value)
}
