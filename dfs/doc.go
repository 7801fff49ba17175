// SPDX-License-Identifier: MIT

// Package dfs implements the depth-first edge walk and cycle detection that
// worklist planning runs over a core.Graph.
//
// Key features:
//   - WalkEdges(g, opts...): from every root (final product) walk towards raw
//     inputs, visiting each predecessor edge once per path with its level
//   - Explicit frame stack: behaves exactly like the recursive formulation
//     (same order, same levels) without recursion-depth limits
//   - Hooks: OnEdge (called per visited edge) with error aborts
//   - Limits: MaxDepth, explicit root set
//   - Cancellation via context.Context
//   - DetectCycle(g): white/gray/black search over the whole graph
//
// Complexity:
//
//   - WalkEdges:   O(number of root-to-edge paths); O(E) on forests.
//   - DetectCycle: O(V + E) time, O(V) memory.
//
// Errors:
//
//   - ErrGraphNil        if g is nil.
//   - ErrCycleDetected   if a walk re-enters a node on its current path, or
//     DetectCycle is asked to certify a cyclic graph.
//   - context.Canceled   if ctx is done.
//   - any error returned by OnEdge.
package dfs
