// SPDX-License-Identifier: MIT

package plate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/assemblygenie/well"
)

// Sentinel errors for registry operations.
var (
	// ErrCapacityExceeded indicates no well could be found or created within the plate limit.
	ErrCapacityExceeded = errors.New("plate: capacity exceeded")
	// ErrWellOccupied indicates an explicit well already holds a different component.
	ErrWellOccupied = errors.New("plate: well occupied")
	// ErrDuplicatePlate indicates a plate id is already registered.
	ErrDuplicatePlate = errors.New("plate: duplicate plate id")
	// ErrPlateNotFound indicates an unknown plate id.
	ErrPlateNotFound = errors.New("plate: plate not found")
	// ErrUnknownRole indicates a role tag that does not parse.
	ErrUnknownRole = errors.New("plate: unknown role")
	// ErrEmptyComponent indicates a component without a name.
	ErrEmptyComponent = errors.New("plate: component name is empty")
)

// Kind is the broad purpose of a plate.
type Kind int

const (
	// KindInput holds raw inputs.
	KindInput Kind = iota
	// KindTrough holds shared reagents.
	KindTrough
	// KindIntermediate holds products of one dependency level.
	KindIntermediate
	// KindOutput holds final products.
	KindOutput
)

// Role tags. Intermediate roles are "level_<n>".
const (
	TagInput  = "input"
	TagTrough = "MastermixTrough"
	TagOutput = "output"

	levelPrefix = "level_"
)

// Role is a plate's purpose; Level is only meaningful for KindIntermediate.
type Role struct {
	Kind  Kind
	Level int
}

// Input is the role of raw-input plates.
func Input() Role { return Role{Kind: KindInput} }

// Trough is the role of the shared reagent trough.
func Trough() Role { return Role{Kind: KindTrough} }

// Output is the role of final-product plates.
func Output() Role { return Role{Kind: KindOutput} }

// Intermediate is the role of plates holding products of the given level.
func Intermediate(level int) Role { return Role{Kind: KindIntermediate, Level: level} }

// String returns the role tag.
func (r Role) String() string {
	switch r.Kind {
	case KindInput:
		return TagInput
	case KindTrough:
		return TagTrough
	case KindOutput:
		return TagOutput
	default:
		return levelPrefix + strconv.Itoa(r.Level)
	}
}

// ParseRole is the inverse of Role.String. A bare integer is accepted as an
// intermediate level.
func ParseRole(tag string) (Role, error) {
	switch tag {
	case TagInput:
		return Input(), nil
	case TagTrough:
		return Trough(), nil
	case TagOutput:
		return Output(), nil
	}
	lvl := strings.TrimPrefix(tag, levelPrefix)
	n, err := strconv.Atoi(lvl)
	if err != nil || n < 0 {
		return Role{}, fmt.Errorf("%w: %q", ErrUnknownRole, tag)
	}

	return Intermediate(n), nil
}

// Location is one place a component sits.
type Location struct {
	PlateID string
	Well    string
	Coord   well.Coord
	Index   int // fill-order index on the plate
}

// Placement is one occupied well of a plate.
type Placement struct {
	Well      string
	Index     int
	Component string
}

// Option configures a Registry.
type Option func(*Options)

// Options holds registry settings.
type Options struct {
	// Format is used for every role except the trough.
	Format well.Format
	// TroughFormat is used for the MastermixTrough role.
	TroughFormat well.Format
	// MaxPlatesPerRole bounds plate creation per role; 0 means unbounded.
	MaxPlatesPerRole int
}

// DefaultOptions returns 96-well plates, a 12-lane trough and no plate limit.
func DefaultOptions() Options {
	return Options{
		Format:       well.Plate96,
		TroughFormat: well.Trough12,
	}
}

// WithFormat sets the format for plates of every role but the trough.
func WithFormat(f well.Format) Option {
	return func(o *Options) { o.Format = f }
}

// WithTroughFormat sets the reagent trough format.
func WithTroughFormat(f well.Format) Option {
	return func(o *Options) { o.TroughFormat = f }
}

// WithMaxPlatesPerRole bounds the number of plates created per role.
func WithMaxPlatesPerRole(n int) Option {
	return func(o *Options) { o.MaxPlatesPerRole = n }
}
