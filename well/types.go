// SPDX-License-Identifier: MIT

package well

import "errors"

// Sentinel errors for well operations.
var (
	// ErrMalformedWell indicates a well identifier that is not letters followed by digits.
	ErrMalformedWell = errors.New("well: malformed well identifier")
	// ErrOutOfRange indicates a coordinate or index outside a plate format.
	ErrOutOfRange = errors.New("well: well outside plate format")
	// ErrBadFormat indicates a plate format with non-positive dimensions.
	ErrBadFormat = errors.New("well: plate format must have at least one row and one column")
)

// Coord is a zero-based (row, column) grid position.
type Coord struct {
	Row, Col int
}

// Format is a plate geometry. ColumnMajor selects the fill order used for
// well indices: A1, B1, C1, ... when true, A1, A2, A3, ... when false.
type Format struct {
	Rows        int  `yaml:"rows"`
	Columns     int  `yaml:"columns"`
	ColumnMajor bool `yaml:"column_major"`
}

// Common formats.
var (
	// Plate96 is a standard 8x12 plate filled column by column.
	Plate96 = Format{Rows: 8, Columns: 12, ColumnMajor: true}
	// Plate384 is a 16x24 plate filled column by column.
	Plate384 = Format{Rows: 16, Columns: 24, ColumnMajor: true}
	// Trough12 is a single-row, twelve-lane reagent trough.
	Trough12 = Format{Rows: 1, Columns: 12}
)
