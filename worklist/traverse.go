// SPDX-License-Identifier: MIT

package worklist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/assemblygenie/core"
	"github.com/katalvlaran/assemblygenie/dfs"
)

// Traverse produces one Row per walked edge, roots in order, each root's
// rows in depth-first order. A cyclic graph returns ErrGraphIntegrity and no rows.
func Traverse(ctx context.Context, g *core.Graph) ([]Row, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: %w", ErrGraphIntegrity, dfs.ErrGraphNil)
	}

	// 1. Reject cycles anywhere in the graph, reachable from a root or not
	cycle, found, err := dfs.DetectCycle(g)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGraphIntegrity, err)
	}
	if found {
		return nil, fmt.Errorf("%w: %w: %s", ErrGraphIntegrity, dfs.ErrCycleDetected,
			strings.Join(dfs.CycleNames(g, cycle), " -> "))
	}

	// 2. Walk every root and build rows
	rows := make([]Row, 0, g.EdgeCount())
	_, err = dfs.WalkEdges(g,
		dfs.WithContext(ctx),
		dfs.WithOnEdge(func(v dfs.EdgeVisit) error {
			rows = append(rows, newRow(v))
			return nil
		}),
	)
	if err != nil {
		if errors.Is(err, dfs.ErrCycleDetected) || errors.Is(err, core.ErrNodeNotFound) || errors.Is(err, core.ErrEdgeNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrGraphIntegrity, err)
		}
		return nil, err
	}

	return rows, nil
}

// newRow merges a visited edge into a Row.
func newRow(v dfs.EdgeVisit) Row {
	return Row{
		Level:         v.Level,
		SrcName:       v.Source.Name,
		SrcIsReagent:  v.Source.Reagent,
		SrcIsInput:    v.SourceIsInput,
		SrcWell:       wellAttr(v.Source.Attrs),
		DestName:      v.Destination.Name,
		DestIsReagent: v.Destination.Reagent,
		DestWell:      wellAttr(v.Destination.Attrs),
		Src:           v.Source.Attrs,
		Dest:          v.Destination.Attrs,
		Edge:          v.Edge.Attrs,
	}
}

func wellAttr(a core.Attrs) string {
	v, ok := a[WellAttr]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}
