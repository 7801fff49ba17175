// SPDX-License-Identifier: MIT

package well

import "fmt"

// Validate reports ErrBadFormat for non-positive dimensions.
func (f Format) Validate() error {
	if f.Rows <= 0 || f.Columns <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadFormat, f.Rows, f.Columns)
	}

	return nil
}

// Size is the number of wells on the plate.
func (f Format) Size() int {
	return f.Rows * f.Columns
}

// InBounds reports whether c lies on the plate.
func (f Format) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < f.Rows && c.Col >= 0 && c.Col < f.Columns
}

// Index maps c to its position in the fill order.
func (f Format) Index(c Coord) (int, error) {
	if !f.InBounds(c) {
		return 0, fmt.Errorf("%w: %s on %dx%d", ErrOutOfRange, Name(c), f.Rows, f.Columns)
	}
	if f.ColumnMajor {
		return c.Col*f.Rows + c.Row, nil
	}

	return c.Row*f.Columns + c.Col, nil
}

// IndexOf parses name and maps it to its fill-order index.
func (f Format) IndexOf(name string) (int, error) {
	c, err := Parse(name)
	if err != nil {
		return 0, err
	}

	return f.Index(c)
}

// CoordAt is the inverse of Index.
func (f Format) CoordAt(idx int) (Coord, error) {
	if idx < 0 || idx >= f.Size() {
		return Coord{}, fmt.Errorf("%w: index %d on %dx%d", ErrOutOfRange, idx, f.Rows, f.Columns)
	}
	if f.ColumnMajor {
		return Coord{Row: idx % f.Rows, Col: idx / f.Rows}, nil
	}

	return Coord{Row: idx / f.Columns, Col: idx % f.Columns}, nil
}

// WellAt returns the identifier of the well at fill-order index idx.
func (f Format) WellAt(idx int) (string, error) {
	c, err := f.CoordAt(idx)
	if err != nil {
		return "", err
	}

	return Name(c), nil
}

// Indices returns the well-index range 0..Size()-1.
func (f Format) Indices() []int {
	out := make([]int, f.Size())
	for i := range out {
		out[i] = i
	}

	return out
}

// Wells returns every well identifier in fill order.
func (f Format) Wells() []string {
	out := make([]string, 0, f.Size())
	for i := 0; i < f.Size(); i++ {
		w, _ := f.WellAt(i)
		out = append(out, w)
	}

	return out
}
