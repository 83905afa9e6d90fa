package array

import (
	"sync"

	"github.com/cwbudde/algo-ndfilter/nd/shape"
)

// Pool provides sync.Pool-based reuse of scratch slices for repeated sweeps
// over same-sized arrays, reducing GC pressure in processing loops.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Array{}
			},
		},
	}
}

// Get returns a zeroed Array with the given dims. Callers must return it via
// Put when done.
func (p *Pool) Get(dims shape.Dims) *Array {
	a := p.pool.Get().(*Array)
	a.resize(dims)
	a.Zero()
	return a
}

// Put returns an Array to the pool for reuse. The caller must not use the
// array after calling Put.
func (p *Pool) Put(a *Array) {
	if a == nil {
		return
	}
	p.pool.Put(a)
}
