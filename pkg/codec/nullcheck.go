package codec

import "github.com/flashwire/flashcodec/pkg/nullmap"

// tryAppendNull fuses the null test and the null append into a single
// call, mirroring the original C++ source's checkNull helper (spec.md
// §12): callers do "if tryAppendNull(...) { continue }" instead of
// testing the bitmap and appending in two separate steps.
func tryAppendNull(bitmap nullmap.Bitmap, nullCount, row int, appendNull func()) bool {
	if nullCount > 0 && bitmap.IsNull(row) {
		appendNull()
		return true
	}
	return false
}
