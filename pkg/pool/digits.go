package pool

// digits is a pool of reusable decimal-digit scratch slices, sized for
// the widest supported decimal (Decimal256 needs at most a few dozen
// base-10 digits). GetDigits truncates a slice to zero length (its
// contents are not zeroed) so callers always append from an empty slice.
var digits = New(
	func() []int32 { return make([]int32, 0, 96) },
	nil,
)

// GetDigits returns a zero-length scratch slice with spare capacity.
func GetDigits() []int32 {
	return digits.Get()[:0]
}

// PutDigits returns a scratch slice to the pool for reuse.
func PutDigits(d []int32) {
	digits.Put(d)
}
