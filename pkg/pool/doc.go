// Package pool provides a small generic object pool built on sync.Pool,
// used by the codec to avoid per-row allocation in hot loops.
//
// The only consumer today is the decimal digit scratch buffer (digits.go),
// reused across rows of a single EncodeColumn call rather than allocated
// fresh per value. Additional typed pools can be added the same way: wrap
// New[T] with a package-level instance and a pair of Get/Put helpers.
package pool
