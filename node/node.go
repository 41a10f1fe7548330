// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package node implements a transform hierarchy.
//
// Each node stores a local transform relative to its
// immediate ancestor. Graph.Update computes the world
// transform of every node whose local transform, or
// that of any ancestor, has changed since the last call.
package node

import (
	"iter"

	"github.com/gviegas/craft/linear"
)

// Node identifies a node in a Graph.
type Node int

// Nil represents an invalid Node.
// As a parent, it denotes the root of the graph.
const Nil Node = 0

type node struct {
	// prev refers to the immediate ancestor when
	// the node is the first descendant, and to the
	// previous sibling otherwise.
	next Node
	prev Node
	sub  Node

	local   linear.M4[float32]
	world   linear.M4[float32]
	changed bool
	stamp   uint64
	used    bool
}

// Graph is a node graph.
// The zero value is an empty graph ready for use.
type Graph struct {
	nodes []node
	free  []Node
	sub   Node
	pass  uint64
	n     int
}

func (g *Graph) at(n Node) *node {
	if n <= Nil || int(n) > len(g.nodes) || !g.nodes[n-1].used {
		panic("node: invalid node")
	}
	return &g.nodes[n-1]
}

// Insert inserts a new node as immediate descendant of
// parent, or at the root of g if parent is Nil.
func (g *Graph) Insert(local linear.M4[float32], parent Node) Node {
	if parent != Nil {
		g.at(parent)
	}
	var n Node
	if k := len(g.free); k > 0 {
		n = g.free[k-1]
		g.free = g.free[:k-1]
	} else {
		g.nodes = append(g.nodes, node{})
		n = Node(len(g.nodes))
	}
	head := &g.sub
	if parent != Nil {
		head = &g.nodes[parent-1].sub
	}
	g.nodes[n-1] = node{
		next:    *head,
		prev:    parent,
		local:   local,
		world:   local,
		changed: true,
		used:    true,
	}
	if *head != Nil {
		g.nodes[*head-1].prev = n
	}
	*head = n
	g.n++
	return n
}

// unlink removes n from its immediate ancestor (or
// from the root) without touching its descendants.
func (g *Graph) unlink(n Node) {
	nd := g.at(n)
	switch {
	case nd.prev == Nil:
		g.sub = nd.next
	case g.nodes[nd.prev-1].sub == n:
		g.nodes[nd.prev-1].sub = nd.next
	default:
		g.nodes[nd.prev-1].next = nd.next
	}
	if nd.next != Nil {
		g.nodes[nd.next-1].prev = nd.prev
	}
	nd.prev = Nil
	nd.next = Nil
}

// Remove removes n and all of its descendants.
// It returns the number of nodes removed.
// Removed nodes become invalid and their
// identifiers may be reused by Insert.
func (g *Graph) Remove(n Node) int {
	g.unlink(n)
	rm := []Node{n}
	g.walk(g.nodes[n-1].sub, Nil, func(n, _ Node) bool {
		rm = append(rm, n)
		return true
	})
	for _, n := range rm {
		g.nodes[n-1] = node{}
		g.free = append(g.free, n)
	}
	g.n -= len(rm)
	return len(rm)
}

// Len returns the number of nodes in g.
func (g *Graph) Len() int { return g.n }

// Parent returns the immediate ancestor of n.
// It returns Nil if n is a root node.
func (g *Graph) Parent(n Node) Node {
	for {
		p := g.at(n).prev
		if p == Nil || g.nodes[p-1].sub == n {
			return p
		}
		n = p
	}
}

// Local returns the local transform of n.
func (g *Graph) Local(n Node) linear.M4[float32] { return g.at(n).local }

// SetLocal replaces the local transform of n.
func (g *Graph) SetLocal(n Node, local linear.M4[float32]) {
	nd := g.at(n)
	nd.local = local
	nd.changed = true
}

// World returns the world transform of n as of the
// last call to Update.
func (g *Graph) World(n Node) linear.M4[float32] { return g.at(n).world }

// Update computes world transforms.
// Ancestors are processed first.
func (g *Graph) Update() {
	g.pass++
	g.walk(g.sub, Nil, func(n, p Node) bool {
		nd := &g.nodes[n-1]
		switch {
		case p == Nil:
			if !nd.changed {
				return true
			}
			nd.world = nd.local
		case nd.changed || g.nodes[p-1].stamp == g.pass:
			nd.world = g.nodes[p-1].world.Mul(nd.local)
		default:
			return true
		}
		nd.changed = false
		nd.stamp = g.pass
		return true
	})
}

// All returns an iterator over every node in g.
// Ancestors are yielded first.
// The graph must not be changed during iteration.
func (g *Graph) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		g.walk(g.sub, Nil, func(n, _ Node) bool { return yield(n) })
	}
}

// Descendants returns an iterator over every
// descendant of n, ancestors first.
func (g *Graph) Descendants(n Node) iter.Seq[Node] {
	sub := g.at(n).sub
	return func(yield func(Node) bool) {
		g.walk(sub, n, func(n, _ Node) bool { return yield(n) })
	}
}

// walk calls f breadth-first for first and its
// siblings and all of their descendants, passing each
// node along with its immediate ancestor.
// It stops as soon as f returns false.
func (g *Graph) walk(first, parent Node, f func(n, parent Node) bool) {
	if first == Nil {
		return
	}
	type level struct{ first, parent Node }
	que := []level{{first, parent}}
	for len(que) > 0 {
		for n := que[0].first; n != Nil; n = g.nodes[n-1].next {
			if !f(n, que[0].parent) {
				return
			}
			if sub := g.nodes[n-1].sub; sub != Nil {
				que = append(que, level{sub, n})
			}
		}
		que = que[1:]
	}
}
