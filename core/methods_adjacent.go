// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Adjacency queries used by traversals: Predecessors, Successors,
//       Degree, Roots, IsInput.

package core

import "fmt"

// Predecessors returns the ids of edges converging on id, in insertion order.
// The returned slice is a copy.
func (g *Graph) Predecessors(id NodeID) ([]EdgeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(id) {
		return nil, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return append([]EdgeID(nil), g.in[id]...), nil
}

// Successors returns the ids of edges leaving id, in insertion order.
func (g *Graph) Successors(id NodeID) ([]EdgeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(id) {
		return nil, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return append([]EdgeID(nil), g.out[id]...), nil
}

// Degree returns the in- and out-degree of id.
func (g *Graph) Degree(id NodeID) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(id) {
		return 0, 0, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return len(g.in[id]), len(g.out[id]), nil
}

// Roots returns the final products: nodes with no outgoing edges, in id order.
// Isolated nodes are roots too; they simply contribute no operations.
func (g *Graph) Roots() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var roots []NodeID
	for i := range g.nodes {
		if len(g.out[i]) == 0 {
			roots = append(roots, NodeID(i))
		}
	}

	return roots
}

// IsInput reports whether id is a raw input: no predecessors and not a reagent.
func (g *Graph) IsInput(id NodeID) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(id) {
		return false, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return len(g.in[id]) == 0 && !g.nodes[id].Reagent, nil
}
