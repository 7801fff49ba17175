// SPDX-License-Identifier: MIT

package roundrobin

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrPlateSize indicates a non-positive plate size.
	ErrPlateSize = errors.New("roundrobin: plate size must be positive")
	// ErrIndexOutOfRange indicates a source well index outside the plate.
	ErrIndexOutOfRange = errors.New("roundrobin: source index out of range")
)

// Spread returns items reordered round-robin across source wells. key
// returns an item's source well index and destination index.
// The input slice is not modified.
func Spread[T any](items []T, plateSize int, key func(item T) (src, dest int)) ([]T, error) {
	// 1. Validate
	if plateSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrPlateSize, plateSize)
	}
	n := len(items)
	srcs := make([]int, n)
	dests := make([]int, n)
	for i, it := range items {
		srcs[i], dests[i] = key(it)
		if srcs[i] < 0 || srcs[i] >= plateSize {
			return nil, fmt.Errorf("%w: item %d has source %d, plate has %d wells", ErrIndexOutOfRange, i, srcs[i], plateSize)
		}
	}

	// 2. Sort by destination, keeping input order on ties
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return dests[order[a]] < dests[order[b]] })

	// 3. Queue per source well
	queues := make([][]int, plateSize)
	for _, i := range order {
		queues[srcs[i]] = append(queues[srcs[i]], i)
	}

	// 4. Cycle wells, one item per non-empty well per pass
	out := make([]T, 0, n)
	for len(out) < n {
		for w := 0; w < plateSize; w++ {
			if len(queues[w]) == 0 {
				continue
			}
			out = append(out, items[queues[w][0]])
			queues[w] = queues[w][1:]
		}
	}

	return out, nil
}
