// SPDX-License-Identifier: MIT

package worklist

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/assemblygenie/plate"
)

// Populate registers every component the rows mention, in this order:
//
//  1. raw inputs on input plates, in row order;
//  2. reagents on the MastermixTrough, by name;
//  3. intermediates on the plate of their row's level, deepest level first;
//  4. level-0 destinations on the output plate.
//
// Within each step, components with an explicit well are placed before the
// rest so auto-assigned wells never take a well another component asked for.
// The order decides well assignment and plate creation order.
func Populate(rows []Row, reg *plate.Registry) error {
	add := func(i int, name string, role plate.Role, wellName string) error {
		if _, err := reg.AddComponent(name, role, wellName); err != nil {
			return fmt.Errorf("worklist: populate row %d (%s on %s): %w", i, name, role, err)
		}
		return nil
	}

	// 1. Inputs
	inputs := explicitFirst(rows, indicesWhere(rows, func(r Row) bool { return r.SrcIsInput }),
		func(r Row) string { return r.SrcWell })
	for _, i := range inputs {
		if err := add(i, rows[i].SrcName, plate.Input(), rows[i].SrcWell); err != nil {
			return err
		}
	}

	// 2. Reagents
	reagents := indicesWhere(rows, func(r Row) bool { return r.SrcIsReagent })
	sort.SliceStable(reagents, func(a, b int) bool {
		return rows[reagents[a]].SrcName < rows[reagents[b]].SrcName
	})
	reagents = explicitFirst(rows, reagents, func(r Row) string { return r.SrcWell })
	for _, i := range reagents {
		if err := add(i, rows[i].SrcName, plate.Trough(), rows[i].SrcWell); err != nil {
			return err
		}
	}

	// 3. Intermediates
	intermediates := indicesWhere(rows, func(r Row) bool { return !r.SrcIsInput && !r.SrcIsReagent })
	sort.SliceStable(intermediates, func(a, b int) bool {
		return rows[intermediates[a]].Level > rows[intermediates[b]].Level
	})
	intermediates = explicitFirst(rows, intermediates, func(r Row) string { return r.SrcWell })
	for _, i := range intermediates {
		if err := add(i, rows[i].SrcName, plate.Intermediate(rows[i].Level), rows[i].SrcWell); err != nil {
			return err
		}
	}

	// 4. Products
	products := explicitFirst(rows, indicesWhere(rows, func(r Row) bool { return r.Level == 0 }),
		func(r Row) string { return r.DestWell })
	for _, i := range products {
		if err := add(i, rows[i].DestName, plate.Output(), rows[i].DestWell); err != nil {
			return err
		}
	}

	return nil
}

func indicesWhere(rows []Row, pred func(Row) bool) []int {
	var out []int
	for i, r := range rows {
		if pred(r) {
			out = append(out, i)
		}
	}

	return out
}

// explicitFirst stable-partitions idxs: rows with a well first.
func explicitFirst(rows []Row, idxs []int, wellOf func(Row) string) []int {
	out := make([]int, 0, len(idxs))
	for _, i := range idxs {
		if wellOf(rows[i]) != "" {
			out = append(out, i)
		}
	}
	for _, i := range idxs {
		if wellOf(rows[i]) == "" {
			out = append(out, i)
		}
	}

	return out
}
