// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeName indicates that a node was added without a name.
	ErrEmptyNodeName = errors.New("core: node name is empty")

	// ErrDuplicateNode indicates a node name is already taken in this graph.
	ErrDuplicateNode = errors.New("core: duplicate node name")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge whose source and destination coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge between the same ordered pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// NodeID addresses a node inside its Graph. Ids are dense, start at 0 and
// follow insertion order.
type NodeID int

// EdgeID addresses an edge inside its Graph. Ids are dense, start at 0 and
// follow insertion order.
type EdgeID int

// Attrs is an arbitrary attribute mapping carried by nodes and edges
// (volume, type, well, ...).
type Attrs map[string]any

// Clone returns a shallow copy of a; nil stays nil.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// Node is a sample, reagent or raw input.
type Node struct {
	// ID is the arena index of this node.
	ID NodeID

	// Name is unique within the graph.
	Name string

	// Reagent marks shared common materials laid out on a trough plate.
	Reagent bool

	// Attrs stores arbitrary user data. It is not deep-copied.
	Attrs Attrs
}

// Edge is a transfer operation: Source is consumed to produce Destination.
type Edge struct {
	// ID is the arena index of this edge.
	ID EdgeID

	// Source is the consumed node.
	Source NodeID

	// Destination is the produced node.
	Destination NodeID

	// Attrs describes the transfer (volume, ...).
	Attrs Attrs
}

// NodeOption configures a node when it is added.
type NodeOption func(n *Node)

// WithReagent marks the node as a reagent.
func WithReagent() NodeOption {
	return func(n *Node) { n.Reagent = true }
}

// WithAttrs merges attrs into the node attribute map.
func WithAttrs(attrs Attrs) NodeOption {
	return func(n *Node) {
		for k, v := range attrs {
			n.Attrs[k] = v
		}
	}
}

// Graph is the arena-backed dependency graph.
//
// mu guards every table. byName maps node names to ids; in and out are the
// per-node edge indices kept in insertion order.
type Graph struct {
	mu sync.RWMutex

	nodes  []Node
	edges  []Edge
	byName map[string]NodeID

	in  [][]EdgeID // in[v] = edges whose Destination is v
	out [][]EdgeID // out[v] = edges whose Source is v
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{byName: make(map[string]NodeID)}
}
