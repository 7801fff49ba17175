// SPDX-License-Identifier: MIT

package protocol

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/assemblygenie/core"
	"github.com/katalvlaran/assemblygenie/plate"
	"github.com/katalvlaran/assemblygenie/well"
)

// build turns a decoded document into a Protocol.
func (d *document) build() (*Protocol, error) {
	g := core.NewGraph()

	// 1. Nodes in declaration order
	for i, n := range d.Nodes {
		opts := []core.NodeOption{core.WithAttrs(n.Attributes)}
		if n.Reagent {
			opts = append(opts, core.WithReagent())
		}
		if _, err := g.AddNode(n.Name, opts...); err != nil {
			return nil, fmt.Errorf("protocol: node %d: %w", i, err)
		}
	}

	// 2. Edges in declaration order
	for i, e := range d.Edges {
		if e.Source == "" || e.Destination == "" {
			return nil, fmt.Errorf("%w: edge %d needs source and destination", ErrInvalidProtocol, i)
		}
		if _, err := g.Connect(e.Source, e.Destination, core.Attrs(e.Attributes)); err != nil {
			return nil, fmt.Errorf("protocol: edge %d (%s -> %s): %w", i, e.Source, e.Destination, err)
		}
	}

	// 3. Seeded plates
	seeds := make([]PlateSeed, 0, len(d.Plates))
	for i, p := range d.Plates {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: plate %d has no id", ErrInvalidProtocol, i)
		}
		role := plate.Input()
		if p.Role != "" {
			r, err := plate.ParseRole(p.Role)
			if err != nil {
				return nil, fmt.Errorf("protocol: plate %q: %w", p.ID, err)
			}
			role = r
		}
		seeds = append(seeds, PlateSeed{ID: p.ID, Role: role, Wells: p.Wells})
	}

	return &Protocol{Graph: g, Plates: seeds}, nil
}

// Seed registers the protocol's plates on reg, placing wells in physical
// order (row, then column).
func (p *Protocol) Seed(reg *plate.Registry) error {
	for _, s := range p.Plates {
		if _, err := reg.AddPlate(s.ID, s.Role, well.Format{}); err != nil {
			return fmt.Errorf("protocol: seed: %w", err)
		}

		names := make([]string, 0, len(s.Wells))
		coords := make(map[string]well.Coord, len(s.Wells))
		for name := range s.Wells {
			c, err := well.Parse(name)
			if err != nil {
				return fmt.Errorf("protocol: seed plate %q: %w", s.ID, err)
			}
			names = append(names, name)
			coords[name] = c
		}
		sort.Slice(names, func(i, j int) bool { return well.Less(coords[names[i]], coords[names[j]]) })

		for _, name := range names {
			if _, err := reg.Place(s.ID, name, s.Wells[name]); err != nil {
				return fmt.Errorf("protocol: seed: %w", err)
			}
		}
	}

	return nil
}
