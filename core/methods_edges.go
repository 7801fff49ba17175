// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Connect/Edge/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges in insertion (id) order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddEdge records that src is consumed to produce dst.
//
// Steps:
//  1. Validate both endpoints exist (ErrNodeNotFound).
//  2. Reject self-loops (ErrSelfLoop).
//  3. Reject a second edge for the same ordered pair (ErrDuplicateEdge).
//  4. Append to the arena and both indices.
//
// Complexity: O(in-degree(dst)) for the duplicate check.
func (g *Graph) AddEdge(src, dst NodeID, attrs Attrs) (EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.valid(src) {
		return 0, fmt.Errorf("%w: source id %d", ErrNodeNotFound, src)
	}
	if !g.valid(dst) {
		return 0, fmt.Errorf("%w: destination id %d", ErrNodeNotFound, dst)
	}
	if src == dst {
		return 0, fmt.Errorf("%w: %q", ErrSelfLoop, g.nodes[src].Name)
	}
	for _, eid := range g.in[dst] {
		if g.edges[eid].Source == src {
			return 0, fmt.Errorf("%w: %q -> %q", ErrDuplicateEdge, g.nodes[src].Name, g.nodes[dst].Name)
		}
	}

	if attrs == nil {
		attrs = make(Attrs)
	}
	e := Edge{ID: EdgeID(len(g.edges)), Source: src, Destination: dst, Attrs: attrs}
	g.edges = append(g.edges, e)
	g.in[dst] = append(g.in[dst], e.ID)
	g.out[src] = append(g.out[src], e.ID)

	return e.ID, nil
}

// Connect is AddEdge addressed by node names.
func (g *Graph) Connect(src, dst string, attrs Attrs) (EdgeID, error) {
	s, err := g.Lookup(src)
	if err != nil {
		return 0, fmt.Errorf("core: Connect source: %w", err)
	}
	d, err := g.Lookup(dst)
	if err != nil {
		return 0, fmt.Errorf("core: Connect destination: %w", err)
	}

	return g.AddEdge(s, d, attrs)
}

// Edge returns a copy of the edge with the given id.
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: id %d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// Edges returns a snapshot of all edges in id order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
