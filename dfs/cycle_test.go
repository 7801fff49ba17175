// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/assemblygenie/dfs"
)

func TestDetectCycle_Acyclic(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "root"}, {"B", "A"}, {"B", "root"}})

	cycle, found, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, cycle)
}

func TestDetectCycle_Found(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"X", "A"}})

	cycle, found, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"A", "B", "C", "A"}, dfs.CycleNames(g, cycle))
}

func TestDetectCycle_UnreachableFromRoots(t *testing.T) {
	// The cycle has no root at all, so a walk would never see it.
	g := buildGraph(t, [][2]string{{"p", "prod"}, {"u", "v"}, {"v", "u"}})

	_, found, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestDetectCycle_NilGraph(t *testing.T) {
	_, _, err := dfs.DetectCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
