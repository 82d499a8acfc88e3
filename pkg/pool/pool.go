// Package pool provides a generic, type-safe object pool used to avoid
// per-row allocation in the codec's hot loops — most notably the
// per-value decimal digit scratch buffer (spec: "an implementer should
// reuse a single scratch buffer across the row loop to avoid per-row
// allocation").
package pool

import (
	"sync"
	"sync/atomic"
)

// Pool wraps sync.Pool with type safety, an optional reset hook run
// before an object returns to the pool, and basic allocation/in-use
// statistics for monitoring pool efficiency.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(T)
	stats struct {
		allocated int64
		inUse     int64
	}
}

// New creates a typed pool. newFn allocates a fresh T when the pool is
// empty; resetFn (optional, may be nil) is called on an object before
// it is returned to the pool.
func New[T any](newFn func() T, resetFn func(T)) *Pool[T] {
	p := &Pool[T]{reset: resetFn}
	p.pool.New = func() interface{} {
		atomic.AddInt64(&p.stats.allocated, 1)
		return newFn()
	}
	return p
}

// Get retrieves an object from the pool, allocating a new one if empty.
func (p *Pool[T]) Get() T {
	atomic.AddInt64(&p.stats.inUse, 1)
	return p.pool.Get().(T)
}

// Put returns obj to the pool, running the reset hook first if set.
func (p *Pool[T]) Put(obj T) {
	if p.reset != nil {
		p.reset(obj)
	}
	atomic.AddInt64(&p.stats.inUse, -1)
	p.pool.Put(obj)
}

// Stats reports the number of objects ever allocated by the pool and
// the number currently checked out.
func (p *Pool[T]) Stats() (allocated, inUse int64) {
	return atomic.LoadInt64(&p.stats.allocated), atomic.LoadInt64(&p.stats.inUse)
}
