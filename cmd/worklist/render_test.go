// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/assemblygenie/plate"
	"github.com/katalvlaran/assemblygenie/well"
)

func TestRenderPlate(t *testing.T) {
	pl := plate.PlateLayout{
		ID:     "stock",
		Role:   plate.Input(),
		Format: well.Format{Rows: 2, Columns: 3, ColumnMajor: true},
		Placements: []plate.Placement{
			{Well: "A1", Index: 0, Component: "p1"},
			{Well: "B3", Index: 5, Component: "a-very-long-name"},
		},
	}

	got := renderPlate(pl)
	assert.Contains(t, got, "stock (input, 2/6)")
	assert.Contains(t, got, "p1")
	assert.Contains(t, got, "a-very…")
	assert.NotContains(t, got, "a-very-long-name")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abcd", 3))
}
