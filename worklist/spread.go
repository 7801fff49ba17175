// SPDX-License-Identifier: MIT

package worklist

import (
	"fmt"

	"github.com/katalvlaran/assemblygenie/roundrobin"
)

// SpreadSource reorders the rows drawing from plateID so the plate's wells
// are drained round-robin. Within each level the affected rows are
// rearranged among the positions they already occupy, so level order and
// every other row stay put.
func (w *Worklist) SpreadSource(plateID string) error {
	p, err := w.Registry.Plate(plateID)
	if err != nil {
		return fmt.Errorf("worklist: SpreadSource: %w", err)
	}

	// 1. Positions per level, in current order
	byLevel := make(map[int][]int)
	var levels []int
	for i, r := range w.Rows {
		if !r.Resolved {
			return fmt.Errorf("%w: row %d", ErrNotResolved, i)
		}
		if r.Location.SourcePlate != plateID {
			continue
		}
		if _, ok := byLevel[r.Level]; !ok {
			levels = append(levels, r.Level)
		}
		byLevel[r.Level] = append(byLevel[r.Level], i)
	}

	// 2. Spread each level and write back into the same slots
	for _, lvl := range levels {
		pos := byLevel[lvl]
		group := make([]Row, len(pos))
		for k, i := range pos {
			group[k] = w.Rows[i]
		}
		spread, err := roundrobin.Spread(group, p.Format.Size(), func(r Row) (int, int) {
			return r.Location.SourceIndex, r.Location.DestinationIndex
		})
		if err != nil {
			return fmt.Errorf("worklist: SpreadSource(%q) level %d: %w", plateID, lvl, err)
		}
		for k, i := range pos {
			w.Rows[i] = spread[k]
		}
	}

	return nil
}
