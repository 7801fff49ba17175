// SPDX-License-Identifier: MIT

package worklist

import (
	"sort"

	"github.com/katalvlaran/assemblygenie/well"
)

// Order stable-sorts resolved rows: level descending, reagent-sourced rows
// first within a level, then destination well ascending (row, then column).
func Order(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		if a.SrcIsReagent != b.SrcIsReagent {
			return a.SrcIsReagent
		}

		return well.Less(a.Location.DestinationCoord, b.Location.DestinationCoord)
	})
}
