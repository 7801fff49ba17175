// SPDX-License-Identifier: MIT

// Package roundrobin reorders assignments drawing from one multi-well source
// plate so that consecutive draws rotate through the plate's wells instead of
// exhausting one well before touching the next.
//
// Spread sorts items by destination index (stable), queues them per source
// well, then cycles well indices 0..plateSize-1, emitting the head of each
// non-empty queue until every item is emitted. It only reorders: the set of
// items is unchanged and each well's own queue keeps its order.
//
// Complexity: O(n log n + passes×plateSize) time, O(n + plateSize) memory.
//
// Errors:
//
//   - ErrPlateSize        plateSize is not positive.
//   - ErrIndexOutOfRange  a source index lies outside 0..plateSize-1.
package roundrobin
