// SPDX-License-Identifier: MIT

// Package export writes planned worklists and plate layouts as CSV.
//
// Every writer emits exactly one header row followed by data rows, with no
// index column. Worklist columns come from worklist.(*Worklist).Columns:
// attribute columns sorted by name, then the four location columns.
//
// Errors:
//
//	ErrNilWorklist - WriteWorklist was given a nil worklist.
//	Any error of the underlying io.Writer, wrapped with the writer name.
package export
