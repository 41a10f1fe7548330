// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package guard

import (
	"sync"
	"testing"
)

func TestGuard(t *testing.T) {
	g := New(map[string]int{})
	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Apply(func(m *map[string]int) { (*m)["x"]++ })
		}()
	}
	wg.Wait()
	if x := Get(g, func(m *map[string]int) int { return (*m)["x"] }); x != n {
		t.Fatalf("Guard.Apply\nhave %d\nwant %d", x, n)
	}
}

func TestGuardPointer(t *testing.T) {
	type state struct{ a, b int }
	g := New(state{1, 2})
	g.Apply(func(s *state) { s.a, s.b = s.b, s.a })
	if s := Get(g, func(s *state) state { return *s }); s != (state{2, 1}) {
		t.Fatalf("Guard.Apply\nhave %v\nwant {2 1}", s)
	}
}
