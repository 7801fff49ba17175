// SPDX-License-Identifier: MIT

// Package worklist turns a dependency graph into an ordered list of pipetting
// operations and the plate layout they reference.
//
// Pipeline (one planning run, strictly in this order):
//
//  1. Traverse  one Row per edge, walking from each final product towards raw
//     inputs; Row.Level is the destination's depth (final product = 0).
//  2. Populate  fill the plate.Registry: inputs, then reagents on the shared
//     MastermixTrough (name order), then intermediates (deepest level
//     first), then final products on the output plate.
//  3. Resolve   for every row pick the (source, destination) location pair
//     with the smallest Manhattan distance over all registered locations.
//     Rows are independent and resolved concurrently; the registry is
//     read-only from here on.
//  4. Order     stable sort: level descending, reagent-sourced rows first,
//     destination well ascending in physical order.
//
// SpreadSource optionally reorders the rows drawing from one multi-well
// source plate so its wells are used round-robin.
//
// Errors:
//
//   - ErrGraphIntegrity        cycle or dangling reference in the graph; no rows.
//   - *UnresolvedLocationError a row whose source or destination has no
//     location; every failure is collected and joined.
//   - plate.ErrCapacityExceeded, well.ErrMalformedWell from population.
package worklist
