package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/go-mysql-org/go-mysql/mysql"

	"github.com/flashwire/flashcodec/pkg/enginecol"
	"github.com/flashwire/flashcodec/pkg/wiretype"
)

// columnFixture is the JSON shape the encode/decode subcommands read:
// a single column's declared types plus its row values (engine-side
// scaled integers, floats, raw strings, or null).
type columnFixture struct {
	Name        string        `json:"name"`
	ElementType string        `json:"element_type"`
	Scale       int32         `json:"scale"`
	WireType    string        `json:"wire_type"`
	Unsigned    bool          `json:"unsigned"`
	NotNull     bool          `json:"not_null"`
	Values      []interface{} `json:"values"`
}

func loadFixture(path string) (*columnFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f columnFixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

var elementTypeByName = map[string]enginecol.ElementType{
	"I8": enginecol.I8, "I16": enginecol.I16, "I32": enginecol.I32, "I64": enginecol.I64,
	"U8": enginecol.U8, "U16": enginecol.U16, "U32": enginecol.U32, "U64": enginecol.U64,
	"F32": enginecol.F32, "F64": enginecol.F64,
	"Decimal32": enginecol.Decimal32, "Decimal64": enginecol.Decimal64,
	"Decimal128": enginecol.Decimal128, "Decimal256": enginecol.Decimal256,
	"Bytes":          enginecol.Bytes,
	"PackedDateTime": enginecol.PackedDateTime,
}

var wireTypeByName = map[string]wiretype.Code{
	"TINY": mysql.MYSQL_TYPE_TINY, "SHORT": mysql.MYSQL_TYPE_SHORT,
	"INT24": mysql.MYSQL_TYPE_INT24, "LONG": mysql.MYSQL_TYPE_LONG,
	"LONGLONG": mysql.MYSQL_TYPE_LONGLONG, "YEAR": mysql.MYSQL_TYPE_YEAR,
	"FLOAT": mysql.MYSQL_TYPE_FLOAT, "DOUBLE": mysql.MYSQL_TYPE_DOUBLE,
	"DATE": mysql.MYSQL_TYPE_DATE, "DATETIME": mysql.MYSQL_TYPE_DATETIME,
	"TIMESTAMP":  mysql.MYSQL_TYPE_TIMESTAMP,
	"NEWDECIMAL": mysql.MYSQL_TYPE_NEWDECIMAL,
	"VARCHAR":    mysql.MYSQL_TYPE_VARCHAR, "STRING": mysql.MYSQL_TYPE_STRING,
	"BLOB": mysql.MYSQL_TYPE_BLOB,
}

func (f *columnFixture) field() (wiretype.Field, error) {
	code, ok := wireTypeByName[f.WireType]
	if !ok {
		return wiretype.Field{}, fmt.Errorf("unknown wire type %q", f.WireType)
	}
	var flags wiretype.Flags
	if f.Unsigned {
		flags |= mysql.UNSIGNED_FLAG
	}
	if f.NotNull {
		flags |= mysql.NOT_NULL_FLAG
	}
	return wiretype.Field{Name: f.Name, Type: code, Flags: flags}, nil
}

func (f *columnFixture) elementType() (enginecol.ElementType, error) {
	et, ok := elementTypeByName[f.ElementType]
	if !ok {
		return 0, fmt.Errorf("unknown element type %q", f.ElementType)
	}
	return et, nil
}

// buildEngineColumn materializes an Arrow array from the fixture's
// values for the encode path.
func buildEngineColumn(mem memory.Allocator, f *columnFixture) (enginecol.Column, error) {
	et, err := f.elementType()
	if err != nil {
		return enginecol.Column{}, err
	}

	switch et {
	case enginecol.I32, enginecol.Decimal32:
		b := array.NewInt32Builder(mem)
		for _, v := range f.Values {
			if v == nil {
				b.AppendNull()
				continue
			}
			b.Append(int32(v.(float64)))
		}
		return enginecol.NewColumn(et, f.Scale, b.NewInt32Array()), nil
	case enginecol.I64, enginecol.Decimal64:
		b := array.NewInt64Builder(mem)
		for _, v := range f.Values {
			if v == nil {
				b.AppendNull()
				continue
			}
			b.Append(int64(v.(float64)))
		}
		return enginecol.NewColumn(et, f.Scale, b.NewInt64Array()), nil
	case enginecol.PackedDateTime:
		b := array.NewUint64Builder(mem)
		for _, v := range f.Values {
			if v == nil {
				b.AppendNull()
				continue
			}
			b.Append(uint64(v.(float64)))
		}
		return enginecol.NewColumn(et, f.Scale, b.NewUint64Array()), nil
	case enginecol.U8:
		b := array.NewUint8Builder(mem)
		for _, v := range f.Values {
			if v == nil {
				b.AppendNull()
				continue
			}
			b.Append(uint8(v.(float64)))
		}
		return enginecol.NewColumn(et, f.Scale, b.NewUint8Array()), nil
	case enginecol.F64:
		b := array.NewFloat64Builder(mem)
		for _, v := range f.Values {
			if v == nil {
				b.AppendNull()
				continue
			}
			b.Append(v.(float64))
		}
		return enginecol.NewColumn(et, f.Scale, b.NewFloat64Array()), nil
	case enginecol.Bytes:
		b := array.NewBinaryBuilder(mem, arrow.BinaryTypes.Binary)
		for _, v := range f.Values {
			if v == nil {
				b.AppendNull()
				continue
			}
			b.Append([]byte(v.(string)))
		}
		return enginecol.NewColumn(et, f.Scale, b.NewBinaryArray()), nil
	default:
		return enginecol.Column{}, fmt.Errorf("fixture element type %s not supported by the CLI", et)
	}
}

// buildEngineBuilder constructs an empty Arrow builder matching the
// fixture's declared element type, for the decode path.
func buildEngineBuilder(mem memory.Allocator, f *columnFixture) (enginecol.Builder, error) {
	et, err := f.elementType()
	if err != nil {
		return enginecol.Builder{}, err
	}

	switch et {
	case enginecol.I32, enginecol.Decimal32:
		return enginecol.NewBuilder(et, f.Scale, array.NewInt32Builder(mem)), nil
	case enginecol.I64, enginecol.Decimal64:
		return enginecol.NewBuilder(et, f.Scale, array.NewInt64Builder(mem)), nil
	case enginecol.PackedDateTime:
		return enginecol.NewBuilder(et, f.Scale, array.NewUint64Builder(mem)), nil
	case enginecol.U8:
		return enginecol.NewBuilder(et, f.Scale, array.NewUint8Builder(mem)), nil
	case enginecol.F64:
		return enginecol.NewBuilder(et, f.Scale, array.NewFloat64Builder(mem)), nil
	case enginecol.Bytes:
		return enginecol.NewBuilder(et, f.Scale, array.NewBinaryBuilder(mem, arrow.BinaryTypes.Binary)), nil
	default:
		return enginecol.Builder{}, fmt.Errorf("fixture element type %s not supported by the CLI", et)
	}
}

// builderValues drains an Arrow builder into a JSON-friendly slice,
// finishing the underlying array in the process.
func builderValues(b enginecol.Builder) ([]interface{}, error) {
	switch bb := b.Builder.(type) {
	case *array.Int32Builder:
		arr := bb.NewInt32Array()
		return mapArray(arr.Len(), arr.IsNull, func(i int) interface{} { return arr.Value(i) }), nil
	case *array.Int64Builder:
		arr := bb.NewInt64Array()
		return mapArray(arr.Len(), arr.IsNull, func(i int) interface{} { return arr.Value(i) }), nil
	case *array.Uint64Builder:
		arr := bb.NewUint64Array()
		return mapArray(arr.Len(), arr.IsNull, func(i int) interface{} { return arr.Value(i) }), nil
	case *array.Uint8Builder:
		arr := bb.NewUint8Array()
		return mapArray(arr.Len(), arr.IsNull, func(i int) interface{} { return arr.Value(i) }), nil
	case *array.Float64Builder:
		arr := bb.NewFloat64Array()
		return mapArray(arr.Len(), arr.IsNull, func(i int) interface{} { return arr.Value(i) }), nil
	case *array.BinaryBuilder:
		arr := bb.NewBinaryArray()
		return mapArray(arr.Len(), arr.IsNull, func(i int) interface{} { return string(arr.Value(i)) }), nil
	default:
		return nil, fmt.Errorf("unsupported builder type %T", bb)
	}
}

func mapArray(length int, isNull func(int) bool, value func(int) interface{}) []interface{} {
	out := make([]interface{}, length)
	for i := 0; i < length; i++ {
		if isNull(i) {
			out[i] = nil
			continue
		}
		out[i] = value(i)
	}
	return out
}
