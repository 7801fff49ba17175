// SPDX-License-Identifier: MIT

package worklist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/assemblygenie/core"
	"github.com/katalvlaran/assemblygenie/worklist"
)

// node declares a graph node for buildGraph.
type node struct {
	name    string
	reagent bool
	attrs   core.Attrs
}

// link declares a graph edge for buildGraph.
type link struct {
	src, dst string
	attrs    core.Attrs
}

func buildGraph(t *testing.T, nodes []node, links []link) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range nodes {
		opts := []core.NodeOption{core.WithAttrs(n.attrs)}
		if n.reagent {
			opts = append(opts, core.WithReagent())
		}
		_, err := g.AddNode(n.name, opts...)
		require.NoError(t, err)
	}
	for _, l := range links {
		_, err := g.Connect(l.src, l.dst, l.attrs)
		require.NoError(t, err)
	}

	return g
}

// assemblyGraph is a two-level assembly:
//
//	p1, p2, buf(reagent) -> blockA
//	blockA, p3, mix(reagent) -> gene
func assemblyGraph(t *testing.T) *core.Graph {
	return buildGraph(t,
		[]node{
			{name: "p1"}, {name: "p2"}, {name: "p3"},
			{name: "mix", reagent: true}, {name: "buf", reagent: true},
			{name: "blockA"}, {name: "gene"},
		},
		[]link{
			{"blockA", "gene", core.Attrs{"volume": 2.0}},
			{"p3", "gene", core.Attrs{"volume": 1.0}},
			{"mix", "gene", core.Attrs{"volume": 5.0}},
			{"p1", "blockA", core.Attrs{"volume": 1.0}},
			{"p2", "blockA", core.Attrs{"volume": 1.0}},
			{"buf", "blockA", core.Attrs{"volume": 3.0}},
		},
	)
}

// transfer renders a row as "src>dest".
func transfer(r worklist.Row) string {
	return r.SrcName + ">" + r.DestName
}

func transfers(rows []worklist.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = transfer(r)
	}

	return out
}
