package nullmap

import "testing"

func TestBuilderRoundTrip(t *testing.T) {
	b := NewBuilder(10)
	nulls := []bool{false, true, false, false, true, true, false, false, true, false}
	for _, n := range nulls {
		b.Append(n)
	}

	bm := b.Bitmap()
	if bm.Len() != len(nulls) {
		t.Fatalf("expected %d rows, got %d", len(nulls), bm.Len())
	}
	for i, want := range nulls {
		if got := bm.IsNull(i); got != want {
			t.Fatalf("row %d: expected IsNull=%v, got %v", i, want, got)
		}
	}
}

func TestByteLen(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 7: 1, 8: 1, 9: 2, 16: 2, 17: 3}
	for rows, want := range cases {
		if got := ByteLen(rows); got != want {
			t.Fatalf("ByteLen(%d): expected %d, got %d", rows, want, got)
		}
	}
}

func TestLittleEndianSlicing(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	row0 := LittleEndian(data, 4, 0)
	row1 := LittleEndian(data, 4, 1)
	if len(row0) != 4 || row0[0] != 0 || row0[3] != 3 {
		t.Fatalf("unexpected row0: %v", row0)
	}
	if len(row1) != 4 || row1[0] != 4 || row1[3] != 7 {
		t.Fatalf("unexpected row1: %v", row1)
	}
}

func TestWrapFromPackedBits(t *testing.T) {
	// row 0 null, row 3 null, rest present: clear bit0 and bit3, set the
	// rest -> 0b11110110 = 0xf6
	bm := Wrap([]byte{0xf6}, 8)
	for i := 0; i < 8; i++ {
		want := i == 0 || i == 3
		if got := bm.IsNull(i); got != want {
			t.Fatalf("row %d: expected IsNull=%v, got %v", i, want, got)
		}
	}
}
