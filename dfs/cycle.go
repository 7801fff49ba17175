// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/assemblygenie/core"
)

// DetectCycle searches the whole graph, following edges from source to
// destination, for a directed cycle. It returns the first cycle found as the
// node ids along it (starting and ending at the re-entered node) and true,
// or (nil, false, nil) for an acyclic graph. Nodes are started in id order
// so the reported cycle is deterministic.
//
// The search uses an explicit stack, so arbitrarily long chains are safe.
func DetectCycle(g *core.Graph) ([]core.NodeID, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}

	n := g.NodeCount()
	state := make([]int, n)

	type item struct {
		node core.NodeID
		succ []core.EdgeID
		next int
	}

	for start := 0; start < n; start++ {
		if state[start] != White {
			continue
		}
		succ, err := g.Successors(core.NodeID(start))
		if err != nil {
			return nil, false, fmt.Errorf("dfs: DetectCycle: %w", err)
		}
		stack := []item{{node: core.NodeID(start), succ: succ}}
		state[start] = Gray

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.succ) {
				state[top.node] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			e, err := g.Edge(top.succ[top.next])
			if err != nil {
				return nil, false, fmt.Errorf("dfs: DetectCycle: %w", err)
			}
			top.next++

			switch state[e.Destination] {
			case White:
				succ, err = g.Successors(e.Destination)
				if err != nil {
					return nil, false, fmt.Errorf("dfs: DetectCycle: %w", err)
				}
				state[e.Destination] = Gray
				stack = append(stack, item{node: e.Destination, succ: succ})
			case Gray:
				// back edge: the cycle is the stack suffix from Destination
				var cycle []core.NodeID
				for i := range stack {
					if stack[i].node == e.Destination || cycle != nil {
						cycle = append(cycle, stack[i].node)
					}
				}
				cycle = append(cycle, e.Destination)

				return cycle, true, nil
			}
		}
	}

	return nil, false, nil
}

// CycleNames maps a cycle returned by DetectCycle to node names.
func CycleNames(g *core.Graph, cycle []core.NodeID) []string {
	names := make([]string, 0, len(cycle))
	for _, id := range cycle {
		if n, err := g.Node(id); err == nil {
			names = append(names, n.Name)
		}
	}

	return names
}
