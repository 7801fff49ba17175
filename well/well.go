// SPDX-License-Identifier: MIT

package well

import (
	"fmt"
	"strconv"
	"strings"
)

// maxRowLetters bounds the row letters so the row index cannot overflow.
const maxRowLetters = 6

// Parse converts a well identifier such as "A1", "h12" or "AB07" into
// zero-based coordinates.
// Returns ErrMalformedWell wrapped with the offending identifier.
func Parse(name string) (Coord, error) {
	s := strings.ToUpper(strings.TrimSpace(name))

	// Split the leading letters from the trailing digits
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(s) || i > maxRowLetters {
		return Coord{}, fmt.Errorf("%w: %q", ErrMalformedWell, name)
	}

	row := 0
	for _, r := range s[:i] {
		row = row*26 + int(r-'A') + 1
	}

	col, err := strconv.Atoi(s[i:])
	if err != nil || col < 1 || strings.ContainsAny(s[i:], "+-") {
		return Coord{}, fmt.Errorf("%w: %q", ErrMalformedWell, name)
	}

	return Coord{Row: row - 1, Col: col - 1}, nil
}

// Name formats c as a well identifier ("A1" for Coord{0, 0}).
// Negative coordinates produce an empty string.
func Name(c Coord) string {
	if c.Row < 0 || c.Col < 0 {
		return ""
	}

	var letters []byte
	for n := c.Row + 1; n > 0; n = (n - 1) / 26 {
		letters = append([]byte{byte('A' + (n-1)%26)}, letters...)
	}

	return string(letters) + strconv.Itoa(c.Col+1)
}

// Distance returns the Manhattan distance between a and b.
func Distance(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// DistanceBetween parses both identifiers and returns their Manhattan distance.
func DistanceBetween(a, b string) (int, error) {
	ca, err := Parse(a)
	if err != nil {
		return 0, err
	}
	cb, err := Parse(b)
	if err != nil {
		return 0, err
	}

	return Distance(ca, cb), nil
}

// Less orders coordinates physically: by row, then by column.
func Less(a, b Coord) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}

	return a.Col < b.Col
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
