// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package warnonce tracks names that were already
// reported so that repeated failures are logged once.
package warnonce

import (
	"sync"
)

// Set is a set of reported names.
// The zero value is ready for use.
type Set struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// First reports whether this is the first call to First
// with the given name.
func (s *Set) First(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[name]; ok {
		return false
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	s.seen[name] = struct{}{}
	return true
}

// Forget removes name from the set, so the next call
// to First with name returns true.
func (s *Set) Forget(name string) {
	s.mu.Lock()
	delete(s.seen, name)
	s.mu.Unlock()
}

// Len returns the number of names in the set.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}
