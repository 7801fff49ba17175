// SPDX-License-Identifier: MIT

package worklist

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/assemblygenie/core"
	"github.com/katalvlaran/assemblygenie/plate"
	"github.com/katalvlaran/assemblygenie/well"
)

// WellAttr is the node attribute carrying an explicit well for that sample.
const WellAttr = "well"

// Sides of a row.
const (
	SideSource      = "source"
	SideDestination = "destination"
)

var (
	// ErrGraphIntegrity indicates a cyclic graph or a dangling node reference.
	ErrGraphIntegrity = errors.New("worklist: graph integrity violated")

	// ErrUnresolvedLocation indicates a component with no registered location.
	ErrUnresolvedLocation = errors.New("worklist: unresolved location")

	// ErrNotResolved indicates an operation that needs resolved locations.
	ErrNotResolved = errors.New("worklist: rows are not resolved")
)

// UnresolvedLocationError reports one row side that has no candidate location.
type UnresolvedLocationError struct {
	Row  int    // row index at resolution time
	Name string // component name
	Side string // SideSource or SideDestination
}

func (e *UnresolvedLocationError) Error() string {
	return fmt.Sprintf("worklist: row %d: no location for %s %q", e.Row, e.Side, e.Name)
}

// Unwrap lets errors.Is match ErrUnresolvedLocation.
func (e *UnresolvedLocationError) Unwrap() error { return ErrUnresolvedLocation }

// Location is the resolved physical pair of a row.
type Location struct {
	SourcePlate      string
	SourceWell       string
	SourceIndex      int
	SourceCoord      well.Coord
	DestinationPlate string
	DestinationWell  string
	DestinationIndex int
	DestinationCoord well.Coord

	// Distance is the Manhattan distance between the two wells.
	Distance int
}

// Row is one transfer: SrcName is drawn into DestName.
type Row struct {
	Level int

	SrcName       string
	SrcIsReagent  bool
	SrcIsInput    bool
	SrcWell       string
	DestName      string
	DestIsReagent bool
	DestWell      string

	// Src, Dest and Edge are the node and edge attribute maps (shared, read-only).
	Src  core.Attrs
	Dest core.Attrs
	Edge core.Attrs

	// Location is set by Resolve; Resolved reports whether it is valid.
	Location Location
	Resolved bool
}

// Worklist is the finished, ordered instruction table and its plates.
type Worklist struct {
	Rows     []Row
	Registry *plate.Registry
}

// Option configures a Generator.
type Option func(*Options)

// Options holds generator settings.
type Options struct {
	// Registry receives the plate layout; pre-seeded plates are honoured.
	// Defaults to an empty plate.NewRegistry().
	Registry *plate.Registry

	// Logger receives stage logs; defaults to zap.NewNop().
	Logger *zap.Logger

	// Workers bounds concurrent location resolution; defaults to GOMAXPROCS.
	Workers int
}

// DefaultOptions returns a fresh registry, a no-op logger and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Registry: plate.NewRegistry(),
		Logger:   zap.NewNop(),
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// WithRegistry plans into r, keeping whatever plates it already holds.
func WithRegistry(r *plate.Registry) Option {
	return func(o *Options) {
		if r != nil {
			o.Registry = r
		}
	}
}

// WithLogger sets the stage logger. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers bounds concurrent resolution. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}
