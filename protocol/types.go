// SPDX-License-Identifier: MIT

package protocol

import (
	"errors"

	"github.com/katalvlaran/assemblygenie/core"
	"github.com/katalvlaran/assemblygenie/plate"
)

var (
	// ErrUnknownFormat indicates a protocol file extension with no decoder.
	ErrUnknownFormat = errors.New("protocol: unknown file format")
	// ErrInvalidProtocol indicates a document that does not decode or is incomplete.
	ErrInvalidProtocol = errors.New("protocol: invalid protocol")
)

// Protocol is a loaded assembly protocol.
type Protocol struct {
	Graph  *core.Graph
	Plates []PlateSeed
}

// PlateSeed is a plate already present before planning.
type PlateSeed struct {
	ID    string
	Role  plate.Role
	Wells map[string]string // well -> component
}

// document is the encoding-neutral form both decoders produce.
type document struct {
	Nodes  []nodeSpec  `yaml:"nodes"`
	Edges  []edgeSpec  `yaml:"edges"`
	Plates []plateSpec `yaml:"plates"`
}

type nodeSpec struct {
	Name       string         `yaml:"name"`
	Reagent    bool           `yaml:"reagent"`
	Attributes map[string]any `yaml:"attributes"`
}

type edgeSpec struct {
	Source      string         `yaml:"source"`
	Destination string         `yaml:"destination"`
	Attributes  map[string]any `yaml:"attributes"`
}

type plateSpec struct {
	ID    string            `yaml:"id"`
	Role  string            `yaml:"role"`
	Wells map[string]string `yaml:"wells"`
}
