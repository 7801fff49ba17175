// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/assemblygenie/core"
)

// frame is one level of the explicit walk stack: the node being expanded,
// its level, its predecessor edges and the index of the next one to visit.
type frame struct {
	node  core.NodeID
	level int
	preds []core.EdgeID
	next  int
}

// edgeWalker encapsulates state during WalkEdges.
type edgeWalker struct {
	graph  *core.Graph
	opts   WalkOptions
	res    *WalkResult
	onPath map[core.NodeID]bool
}

// WalkEdges walks g from each root towards raw inputs. At a node dest with
// level L, every predecessor edge (src -> dest) is visited at level L and the
// walk then descends into src at level L+1 before the next predecessor.
// Roots are processed in order and each starts at level 0; edges reachable
// through several paths are visited once per path.
func WalkEdges(g *core.Graph, opts ...Option) (*WalkResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	wopts := DefaultOptions()
	for _, fn := range opts {
		fn(&wopts)
	}
	roots := wopts.Roots
	if roots == nil {
		roots = g.Roots()
	}

	// 3. Walk every root in order
	w := &edgeWalker{
		graph:  g,
		opts:   wopts,
		res:    &WalkResult{Visits: make([]EdgeVisit, 0, g.EdgeCount()), MaxLevel: -1},
		onPath: make(map[core.NodeID]bool),
	}
	for _, root := range roots {
		if err := w.walk(root); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// walk runs the explicit-stack expansion for a single root.
func (w *edgeWalker) walk(root core.NodeID) error {
	rootFrame, err := w.newFrame(root, 0)
	if err != nil {
		return err
	}
	stack := []frame{rootFrame}
	w.onPath[root] = true

	for len(stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Pop exhausted frames
		top := &stack[len(stack)-1]
		if top.next == len(top.preds) {
			delete(w.onPath, top.node)
			stack = stack[:len(stack)-1]
			continue
		}
		eid := top.preds[top.next]
		top.next++
		level := top.level

		// 3. Visit the edge
		visit, err := w.visit(eid, level)
		if err != nil {
			return err
		}

		// 4. Descend into the source
		if w.opts.MaxDepth >= 0 && level+1 > w.opts.MaxDepth {
			continue
		}
		src := visit.Source.ID
		if w.onPath[src] {
			return fmt.Errorf("%w: %q is its own ancestor", ErrCycleDetected, visit.Source.Name)
		}
		next, err := w.newFrame(src, level+1)
		if err != nil {
			return err
		}
		w.onPath[src] = true
		stack = append(stack, next)
	}

	return nil
}

// visit resolves edge eid, records it and runs the hook.
func (w *edgeWalker) visit(eid core.EdgeID, level int) (EdgeVisit, error) {
	e, err := w.graph.Edge(eid)
	if err != nil {
		return EdgeVisit{}, fmt.Errorf("dfs: Edge(%d): %w", eid, err)
	}
	src, err := w.graph.Node(e.Source)
	if err != nil {
		return EdgeVisit{}, fmt.Errorf("dfs: Node(%d): %w", e.Source, err)
	}
	dst, err := w.graph.Node(e.Destination)
	if err != nil {
		return EdgeVisit{}, fmt.Errorf("dfs: Node(%d): %w", e.Destination, err)
	}
	isInput, err := w.graph.IsInput(e.Source)
	if err != nil {
		return EdgeVisit{}, err
	}

	v := EdgeVisit{Edge: e, Source: src, Destination: dst, Level: level, SourceIsInput: isInput}
	if w.opts.OnEdge != nil {
		if err = w.opts.OnEdge(v); err != nil {
			return v, fmt.Errorf("dfs: OnEdge hook for %q -> %q: %w", src.Name, dst.Name, err)
		}
	}
	w.res.Visits = append(w.res.Visits, v)
	if level > w.res.MaxLevel {
		w.res.MaxLevel = level
	}

	return v, nil
}

func (w *edgeWalker) newFrame(id core.NodeID, level int) (frame, error) {
	preds, err := w.graph.Predecessors(id)
	if err != nil {
		return frame{}, fmt.Errorf("dfs: Predecessors(%d): %w", id, err)
	}

	return frame{node: id, level: level, preds: preds}, nil
}
