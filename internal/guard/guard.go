// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package guard defines a mutex-protected value that is
// only reachable through a closure.
package guard

import (
	"sync"
)

// Guard wraps a value of type T.
// The value can only be accessed by calling Apply.
// Calling Apply (or Get) on the same Guard from within
// the closure deadlocks.
type Guard[T any] struct {
	mu sync.Mutex
	v  T
}

// New creates a new Guard holding v.
func New[T any](v T) *Guard[T] { return &Guard[T]{v: v} }

// Apply calls f with exclusive access to the guarded value.
func (g *Guard[T]) Apply(f func(*T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	f(&g.v)
}

// Get calls f with exclusive access to the value guarded
// by g and returns its result.
func Get[T, R any](g *Guard[T], f func(*T) R) (r R) {
	g.Apply(func(v *T) { r = f(v) })
	return
}
