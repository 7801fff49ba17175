// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/assemblygenie/core"
	"github.com/katalvlaran/assemblygenie/dfs"
)

// ExampleWalkEdges walks a two-level assembly: two parts are first combined
// into a block, and the block plus a reagent make the final gene.
//
//	p1 ──┐
//	p2 ──┴──► block ──┐
//	mix ──────────────┴──► gene
func ExampleWalkEdges() {
	g := core.NewGraph()
	for _, name := range []string{"p1", "p2", "block", "gene"} {
		_, _ = g.AddNode(name)
	}
	_, _ = g.AddNode("mix", core.WithReagent())

	_, _ = g.Connect("block", "gene", nil)
	_, _ = g.Connect("mix", "gene", nil)
	_, _ = g.Connect("p1", "block", nil)
	_, _ = g.Connect("p2", "block", nil)

	res, err := dfs.WalkEdges(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range res.Visits {
		fmt.Printf("level %d: %s -> %s (input=%t)\n", v.Level, v.Source.Name, v.Destination.Name, v.SourceIsInput)
	}

	// Output:
	// level 0: block -> gene (input=false)
	// level 1: p1 -> block (input=true)
	// level 1: p2 -> block (input=true)
	// level 0: mix -> gene (input=false)
}
