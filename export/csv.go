// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/assemblygenie/plate"
	"github.com/katalvlaran/assemblygenie/worklist"
)

// ErrNilWorklist is returned when there is nothing to export.
var ErrNilWorklist = errors.New("export: nil worklist")

// Header rows of the plate writers.
var (
	PlateHeader  = []string{"well", "component"}
	LayoutHeader = []string{"plate", "role", "well", "component"}
)

// WriteWorklist writes the header from wl.Columns and one record per row.
func WriteWorklist(w io.Writer, wl *worklist.Worklist) error {
	if wl == nil {
		return ErrNilWorklist
	}

	return write("WriteWorklist", w, wl.Columns(), wl.Records())
}

// WritePlate writes the occupied wells of one plate in fill order.
func WritePlate(w io.Writer, pl plate.PlateLayout) error {
	recs := make([][]string, 0, len(pl.Placements))
	for _, p := range pl.Placements {
		recs = append(recs, []string{p.Well, p.Component})
	}

	return write("WritePlate", w, PlateHeader, recs)
}

// WriteLayout writes every plate, in creation order, into one table.
func WriteLayout(w io.Writer, l plate.Layout) error {
	var recs [][]string
	for _, pl := range l {
		role := pl.Role.String()
		for _, p := range pl.Placements {
			recs = append(recs, []string{pl.ID, role, p.Well, p.Component})
		}
	}

	return write("WriteLayout", w, LayoutHeader, recs)
}

func write(op string, w io.Writer, header []string, recs [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: %s: %w", op, err)
	}
	if err := cw.WriteAll(recs); err != nil {
		return fmt.Errorf("export: %s: %w", op, err)
	}

	return nil
}
