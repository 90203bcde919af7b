// Package pool provides a typed wrapper around sync.Pool.
// Used by carp's usage renderer to reuse output buffers.
package pool

import "sync"

// Pool is a generic, type-safe object pool. It is safe for concurrent use.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // Called on every Get, may be nil
}

// New creates a pool that builds objects with factory.
func New[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return factory() },
		},
	}
}

// NewWithReset creates a pool whose objects are passed to reset before reuse.
func NewWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := New(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns obj to the pool. nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}
