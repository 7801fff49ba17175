// SPDX-License-Identifier: MIT

// Package core provides the dependency graph that drives worklist planning:
// an arena-style directed acyclic graph whose nodes are samples, reagents and
// raw inputs, and whose edges are transfer operations.
//
// The graph G = (V,E) is stored as flat tables addressed by stable integer ids:
//
//   - nodes[NodeID]          name, reagent flag, attribute map
//   - edges[EdgeID]          (source, destination, attribute map) triples
//   - in[NodeID]  []EdgeID   predecessor index (edges converging on a node)
//   - out[NodeID] []EdgeID   successor index (edges leaving a node)
//
// Edges point from the consumed sample to the sample it produces, so final
// products are the nodes with no outgoing edges (Roots) and raw inputs are
// the non-reagent nodes with no incoming edges.
//
// Determinism:
//
//   - Nodes(), Roots() and Edges() enumerate in insertion order.
//   - Predecessors(id) returns incoming edges in insertion order.
//
// Concurrency:
//
//   - A single sync.RWMutex guards all tables; reads may run concurrently once
//     the graph is built. Planning treats the graph as immutable after build.
//
// Errors:
//
//	ErrEmptyNodeName   - node name is the empty string.
//	ErrDuplicateNode   - a node with the same name already exists.
//	ErrNodeNotFound    - an id or name does not refer to a node.
//	ErrEdgeNotFound    - an id does not refer to an edge.
//	ErrSelfLoop        - an edge from a node to itself.
//	ErrDuplicateEdge   - a second edge between the same ordered pair.
package core
