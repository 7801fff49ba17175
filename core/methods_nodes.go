// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in insertion (id) order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddNode inserts a new node named name and returns its id.
//
// Steps:
//  1. Validate non-empty name (ErrEmptyNodeName).
//  2. Under write lock, reject duplicates (ErrDuplicateNode).
//  3. Append to the arena and grow the edge indices.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string, opts ...NodeOption) (NodeID, error) {
	if name == "" {
		return 0, ErrEmptyNodeName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.byName[name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateNode, name)
	}

	n := Node{ID: NodeID(len(g.nodes)), Name: name, Attrs: make(Attrs)}
	for _, opt := range opts {
		opt(&n)
	}

	g.nodes = append(g.nodes, n)
	g.in = append(g.in, nil)
	g.out = append(g.out, nil)
	g.byName[name] = n.ID

	return n.ID, nil
}

// HasNode reports whether id refers to a node.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.valid(id)
}

// Node returns a copy of the node with the given id.
// The attribute map is shared; treat it as read-only.
func (g *Graph) Node(id NodeID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(id) {
		return Node{}, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return g.nodes[id], nil
}

// Lookup resolves a node name to its id.
func (g *Graph) Lookup(name string) (NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return id, nil
}

// Nodes returns a snapshot of all nodes in id order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// valid must be called with mu held.
func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}
