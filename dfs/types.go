// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/assemblygenie/core"
)

// Node visitation states used by DetectCycle.
const (
	White = iota // not visited yet
	Gray         // on the current search path
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a cycle was encountered.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// EdgeVisit is one traversed edge together with its endpoints and level.
// Level is the distance of Destination from the root the walk started at.
type EdgeVisit struct {
	Edge        core.Edge
	Source      core.Node
	Destination core.Node
	Level       int

	// SourceIsInput is true when Source has no predecessors and is not a reagent.
	SourceIsInput bool
}

// Option configures optional behavior of WalkEdges.
type Option func(*WalkOptions)

// WalkOptions holds configurable parameters for WalkEdges.
type WalkOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnEdge, if non-nil, is invoked for every visited edge in walk order.
	// Returning an error aborts the walk with that error.
	OnEdge func(v EdgeVisit) error

	// MaxDepth, if non-negative, stops descending below that level.
	// Edges at level MaxDepth are still visited. Default is -1 (no limit).
	MaxDepth int

	// Roots, if non-nil, overrides g.Roots() as the walk starting set.
	Roots []core.NodeID
}

// DefaultOptions returns WalkOptions with a Background context, no hook,
// no depth limit and the graph's own roots.
func DefaultOptions() WalkOptions {
	return WalkOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for the walk. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEdge installs fn as the per-edge hook.
func WithOnEdge(fn func(v EdgeVisit) error) Option {
	return func(o *WalkOptions) {
		o.OnEdge = fn
	}
}

// WithMaxDepth limits how deep the walk descends.
func WithMaxDepth(limit int) Option {
	return func(o *WalkOptions) {
		o.MaxDepth = limit
	}
}

// WithRoots overrides the starting set of the walk.
func WithRoots(roots ...core.NodeID) Option {
	return func(o *WalkOptions) {
		o.Roots = append([]core.NodeID(nil), roots...)
	}
}

// WalkResult captures the outcome of WalkEdges.
type WalkResult struct {
	// Visits lists every visited edge in walk order.
	Visits []EdgeVisit

	// MaxLevel is the deepest level reached, -1 when no edge was visited.
	MaxLevel int
}
