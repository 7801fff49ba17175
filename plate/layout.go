// SPDX-License-Identifier: MIT

package plate

import "github.com/katalvlaran/assemblygenie/well"

// PlateLayout is an immutable snapshot of one plate.
type PlateLayout struct {
	ID         string
	Role       Role
	Format     well.Format
	Placements []Placement
}

// Layout is a snapshot of every plate in creation order.
type Layout []PlateLayout

// Layout snapshots the registry.
func (r *Registry) Layout() Layout {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(Layout, 0, len(r.plates))
	for _, p := range r.plates {
		out = append(out, PlateLayout{
			ID:         p.ID,
			Role:       p.Role,
			Format:     p.Format,
			Placements: p.Placements(),
		})
	}

	return out
}

// Wells returns the well -> component map of the plate.
func (pl PlateLayout) Wells() map[string]string {
	out := make(map[string]string, len(pl.Placements))
	for _, p := range pl.Placements {
		out[p.Well] = p.Component
	}

	return out
}

// Plate returns the snapshot of plate id.
func (l Layout) Plate(id string) (PlateLayout, bool) {
	for _, pl := range l {
		if pl.ID == id {
			return pl, true
		}
	}

	return PlateLayout{}, false
}
