// SPDX-License-Identifier: MIT

package worklist_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/assemblygenie/core"
	"github.com/katalvlaran/assemblygenie/dfs"
	"github.com/katalvlaran/assemblygenie/worklist"
)

func TestTraverse_OneRowPerEdge(t *testing.T) {
	g := assemblyGraph(t)

	rows, err := worklist.Traverse(context.Background(), g)
	require.NoError(t, err)
	assert.Len(t, rows, g.EdgeCount())
	assert.Equal(t, []string{
		"blockA>gene", "p1>blockA", "p2>blockA", "buf>blockA", "p3>gene", "mix>gene",
	}, transfers(rows))
}

func TestTraverse_LevelsOnChain(t *testing.T) {
	g := buildGraph(t,
		[]node{{name: "C"}, {name: "B"}, {name: "A"}, {name: "root"}},
		[]link{{"A", "root", nil}, {"B", "A", nil}, {"C", "B", nil}},
	)

	rows, err := worklist.Traverse(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, want := range []int{0, 1, 2} {
		assert.Equal(t, want, rows[i].Level)
	}
}

func TestTraverse_InputAndReagentClassification(t *testing.T) {
	g := assemblyGraph(t)

	rows, err := worklist.Traverse(context.Background(), g)
	require.NoError(t, err)
	for _, r := range rows {
		switch r.SrcName {
		case "p1", "p2", "p3":
			assert.True(t, r.SrcIsInput, r.SrcName)
			assert.False(t, r.SrcIsReagent, r.SrcName)
		case "mix", "buf":
			assert.False(t, r.SrcIsInput, "reagent %s is never an input", r.SrcName)
			assert.True(t, r.SrcIsReagent, r.SrcName)
		default:
			assert.False(t, r.SrcIsInput, r.SrcName)
		}
	}
}

func TestTraverse_AttributesAndWells(t *testing.T) {
	g := buildGraph(t,
		[]node{
			{name: "p1", attrs: core.Attrs{"well": "B2", "type": "part"}},
			{name: "prod", attrs: core.Attrs{"well": 7}},
		},
		[]link{{"p1", "prod", core.Attrs{"volume": 1.5}}},
	)

	rows, err := worklist.Traverse(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "B2", r.SrcWell)
	assert.Equal(t, "7", r.DestWell)
	assert.Equal(t, "part", r.Src["type"])
	assert.Equal(t, 1.5, r.Edge["volume"])
}

func TestTraverse_CycleIsIntegrityError(t *testing.T) {
	g := buildGraph(t,
		[]node{{name: "a"}, {name: "b"}, {name: "prod"}, {name: "u"}, {name: "v"}},
		[]link{{"a", "prod", nil}, {"b", "a", nil}, {"u", "v", nil}, {"v", "u", nil}},
	)

	rows, err := worklist.Traverse(context.Background(), g)
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, worklist.ErrGraphIntegrity)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Contains(t, err.Error(), " -> ")
}

func TestTraverse_NilGraph(t *testing.T) {
	_, err := worklist.Traverse(context.Background(), nil)
	assert.ErrorIs(t, err, worklist.ErrGraphIntegrity)
}

func TestTraverse_EmptyGraph(t *testing.T) {
	rows, err := worklist.Traverse(context.Background(), core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
