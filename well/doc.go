// SPDX-License-Identifier: MIT

// Package well maps plate well identifiers to grid coordinates and measures
// the distance between wells.
//
// What:
//
//   - Parse("B3") -> Coord{Row: 1, Col: 2}; Name is the inverse.
//   - Row letters run A..Z then AA, AB, ... for tall formats; columns are
//     1-based and may be zero-padded ("A01").
//   - Format describes a plate geometry and its fill order (row- or
//     column-major) and converts between well names and well indices.
//   - Distance is the Manhattan (grid-step) distance between two wells.
//
// Complexity:
//
//   - Parse, Name, Distance, Index, CoordAt: O(len(name)) / O(1).
//   - Wells, Indices: O(Rows×Columns).
//
// Errors:
//
//   - ErrMalformedWell: identifier cannot be parsed into coordinates.
//   - ErrOutOfRange: coordinate or index outside the format.
//   - ErrBadFormat: non-positive plate dimensions.
package well
