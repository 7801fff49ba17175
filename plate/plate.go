// SPDX-License-Identifier: MIT

package plate

import (
	"sort"

	"github.com/katalvlaran/assemblygenie/well"
)

// Plate maps wells to component names.
//
// wells is keyed by fill-order index; byName lists the indices holding each
// component in ascending order.
type Plate struct {
	ID     string
	Role   Role
	Format well.Format

	wells  map[int]string
	byName map[string][]int
}

func newPlate(id string, role Role, f well.Format) *Plate {
	return &Plate{
		ID:     id,
		Role:   role,
		Format: f,
		wells:  make(map[int]string),
		byName: make(map[string][]int),
	}
}

// Len is the number of occupied wells.
func (p *Plate) Len() int { return len(p.wells) }

// Full reports whether every well is occupied.
func (p *Plate) Full() bool { return len(p.wells) >= p.Format.Size() }

// Component returns the component at wellName, if any.
func (p *Plate) Component(wellName string) (string, bool) {
	idx, err := p.Format.IndexOf(wellName)
	if err != nil {
		return "", false
	}
	name, ok := p.wells[idx]

	return name, ok
}

// Contains reports whether name sits anywhere on the plate.
func (p *Plate) Contains(name string) bool {
	return len(p.byName[name]) > 0
}

// Placements lists occupied wells in fill order.
func (p *Plate) Placements() []Placement {
	idxs := make([]int, 0, len(p.wells))
	for idx := range p.wells {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)

	out := make([]Placement, 0, len(idxs))
	for _, idx := range idxs {
		w, _ := p.Format.WellAt(idx)
		out = append(out, Placement{Well: w, Index: idx, Component: p.wells[idx]})
	}

	return out
}

// locations lists every location of name on this plate.
func (p *Plate) locations(name string) []Location {
	idxs := p.byName[name]
	out := make([]Location, 0, len(idxs))
	for _, idx := range idxs {
		c, _ := p.Format.CoordAt(idx)
		out = append(out, Location{PlateID: p.ID, Well: well.Name(c), Coord: c, Index: idx})
	}

	return out
}

// nextFree returns the lowest free fill index.
func (p *Plate) nextFree() (int, bool) {
	for idx := 0; idx < p.Format.Size(); idx++ {
		if _, taken := p.wells[idx]; !taken {
			return idx, true
		}
	}

	return 0, false
}

func (p *Plate) put(idx int, name string) {
	p.wells[idx] = name
	lst := append(p.byName[name], idx)
	sort.Ints(lst)
	p.byName[name] = lst
}
