package codec

import (
	"encoding/binary"

	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/flashwire/flashcodec/pkg/codecerrors"
	"github.com/flashwire/flashcodec/pkg/datetime"
	"github.com/flashwire/flashcodec/pkg/enginecol"
	"github.com/flashwire/flashcodec/pkg/nullmap"
	"github.com/flashwire/flashcodec/pkg/wirecol"
	"github.com/flashwire/flashcodec/pkg/wiretype"
)

const dateTimeWireLen = 20

// encodeDateTimeColumn appends rows start..end of a packed-datetime
// engine column as 20-byte wire records (spec.md §4.3.2/§4.3.3). The
// engine stores a packed datetime as a Uint64 array; PackedDateTime's
// bit layout lives entirely in pkg/datetime.
func encodeDateTimeColumn(col enginecol.Column, fieldType wiretype.Code, dst wirecol.Column, start, end int) error {
	a, ok := col.Array.(*array.Uint64)
	if !ok {
		return codecerrors.New(codecerrors.KindLogicalError, "engine column is not a packed-datetime array").
			WithEngineType(col.ElementType.String())
	}
	return encodeEach(col, dst, start, end, func(i int) {
		packed := datetime.Packed(a.Value(i))
		dst.AppendTime(wirecol.WireTime{FieldType: fieldType, Packed: packed})
	})
}

// decodeDateTimeColumn reads length fixed 20-byte records from cursor
// and appends the reassembled packed datetime into dst. The cursor
// always advances by exactly fieldLength per row, including null rows
// (spec.md §4.3.2, invariant 7).
func decodeDateTimeColumn(cursor []byte, fieldLength, nullCount int, bitmap nullmap.Bitmap, dst enginecol.Builder, length int) error {
	if fieldLength != dateTimeWireLen {
		return codecerrors.Newf(codecerrors.KindLogicalError, "datetime field length must be %d, got %d", dateTimeWireLen, fieldLength)
	}
	for row := 0; row < length; row++ {
		if tryAppendNull(bitmap, nullCount, row, dst.AppendNull) {
			continue
		}
		raw := nullmap.LittleEndian(cursor, fieldLength, row)
		fields := datetime.Fields{
			Hour:        uint8(binary.LittleEndian.Uint32(raw[0:4])),
			Microsecond: binary.LittleEndian.Uint32(raw[4:8]),
			Year:        uint32(binary.LittleEndian.Uint16(raw[8:10])),
			Month:       raw[10],
			Day:         raw[11],
			Minute:      raw[12],
			Second:      raw[13],
		}
		packed := datetime.New(fields)
		if err := appendUint64BuilderAsPacked(dst, uint64(packed)); err != nil {
			return err
		}
	}
	return nil
}
