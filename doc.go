// SPDX-License-Identifier: MIT

// Package assemblygenie plans liquid-handling worklists for DNA assembly.
//
// An assembly protocol is a dependency graph: every edge says that its
// source sample is drawn into its destination sample. Planning turns that
// graph into an ordered table of transfers, each bound to a concrete
// (plate, well) pair on the deck.
//
// Packages:
//
//	core/       dependency graph with integer node and edge ids
//	dfs/        iterative edge walk with levels, and cycle detection
//	well/       well identifiers, plate formats and Manhattan distance
//	plate/      plate registry: roles, fill order and overflow plates
//	worklist/   traversal, population, resolution, ordering, spreading
//	roundrobin/ generic round-robin reordering by source well
//	protocol/   YAML and HCL protocol loading
//	export/     CSV export of worklists and layouts
//	config/     YAML planner configuration
//	cmd/worklist/ command line planner
//
// Quick example:
//
//	p1 ──┐
//	p2 ──┼──► gene
//	mix ─┘
//
//	g := core.NewGraph()
//	g.AddNode("p1"); g.AddNode("p2"); g.AddNode("gene")
//	g.AddNode("mix", core.WithReagent())
//	g.Connect("p1", "gene", core.Attrs{"volume": 1})
//	g.Connect("p2", "gene", core.Attrs{"volume": 1})
//	g.Connect("mix", "gene", core.Attrs{"volume": 8})
//
//	wl, err := worklist.Generate(ctx, g)
//	// wl.Rows: mix, p1, p2 -> gene, each with source and destination wells
package assemblygenie
