// SPDX-License-Identifier: MIT

// Package plate is the in-memory plate registry used while planning a
// worklist: a catalogue of plates, each holding named components at wells.
//
// Plates carry a Role: raw inputs, the shared MastermixTrough for reagents,
// one role per intermediate level, and the output plate for final products.
// AddComponent places a component on a plate of a role, honouring an explicit
// well when given and otherwise taking the next free well in the format's
// fill order; a new plate of the role is created when the existing ones are
// full. Find returns every (plate, well) location of a component across all
// plates, which is what nearest-pair resolution enumerates.
//
// Determinism:
//
//   - Plates() and Find() enumerate plates in creation order and wells in
//     fill-index order.
//   - Plate ids are the role tag for the first plate of a role and
//     "<tag>_<n>" for the n-th overflow plate.
//
// Concurrency:
//
//   - Registry methods are guarded by a sync.RWMutex. *Plate values returned
//     by the registry are read-only views; read them once population is done.
//
// Errors:
//
//   - ErrCapacityExceeded: no well can be found or created for a component.
//   - ErrWellOccupied: an explicit well already holds another component.
//   - ErrDuplicatePlate / ErrPlateNotFound: plate id conflicts and misses.
//   - ErrUnknownRole: a role tag that does not parse.
package plate
