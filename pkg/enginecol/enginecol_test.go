package enginecol

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

func TestColumnIsNull(t *testing.T) {
	mem := memory.NewGoAllocator()
	b := array.NewInt32Builder(mem)
	defer b.Release()
	b.Append(1)
	b.AppendNull()
	arr := b.NewInt32Array()
	defer arr.Release()

	col := NewColumn(I32, 0, arr)
	if col.Len() != 2 {
		t.Fatalf("expected len 2, got %d", col.Len())
	}
	if col.IsNull(0) {
		t.Fatal("row 0 should not be null")
	}
	if !col.IsNull(1) {
		t.Fatal("row 1 should be null")
	}
}

func TestElementTypePredicates(t *testing.T) {
	if !I32.IsInteger() || I32.IsUnsigned() || I32.IsDecimal() {
		t.Fatalf("unexpected predicates for I32: %+v", I32)
	}
	if !U32.IsInteger() || !U32.IsUnsigned() {
		t.Fatalf("unexpected predicates for U32")
	}
	if !Decimal128.IsDecimal() || Decimal128.IsInteger() {
		t.Fatalf("unexpected predicates for Decimal128")
	}
}

