package main

import "github.com/flashwire/flashcodec/pkg/nullmap"

// packNullBitmap packs a wire buffer's per-row null flags into the
// wire format's LSB-indexed bitmap bytes.
func packNullBitmap(dst interface {
	Len() int
	IsNull(i int) bool
}) []byte {
	b := nullmap.NewBuilder(dst.Len())
	for i := 0; i < dst.Len(); i++ {
		b.Append(dst.IsNull(i))
	}
	return b.Bytes()
}
