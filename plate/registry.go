// SPDX-License-Identifier: MIT

package plate

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/assemblygenie/well"
)

// Registry is the plate catalogue owned by one planning run.
type Registry struct {
	mu sync.RWMutex

	opts   Options
	plates []*Plate          // creation order
	byID   map[string]*Plate // plate id -> plate
	byRole map[Role][]*Plate // role -> plates in creation order
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Registry{
		opts:   o,
		byID:   make(map[string]*Plate),
		byRole: make(map[Role][]*Plate),
	}
}

// Options returns the registry settings.
func (r *Registry) Options() Options {
	return r.opts
}

// AddPlate registers an empty plate with an explicit id, typically a
// pre-loaded input plate. A zero format falls back to the role default.
func (r *Registry) AddPlate(id string, role Role, f well.Format) (*Plate, error) {
	if f == (well.Format{}) {
		f = r.formatFor(role)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("plate: AddPlate(%q): %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicatePlate, id)
	}

	return r.register(id, role, f), nil
}

// Place puts component at wellName on an existing plate.
// Placing the same component twice in the same well is a no-op.
func (r *Registry) Place(plateID, wellName, component string) (Location, error) {
	if component == "" {
		return Location{}, ErrEmptyComponent
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[plateID]
	if !ok {
		return Location{}, fmt.Errorf("%w: %q", ErrPlateNotFound, plateID)
	}
	idx, err := p.Format.IndexOf(wellName)
	if err != nil {
		return Location{}, fmt.Errorf("plate: Place(%q, %q): %w", plateID, wellName, err)
	}
	if cur, taken := p.wells[idx]; taken {
		if cur != component {
			return Location{}, fmt.Errorf("%w: %s:%s holds %q, wanted %q", ErrWellOccupied, plateID, wellName, cur, component)
		}
	} else {
		p.put(idx, component)
	}

	return location(p, idx), nil
}

// AddComponent registers name on a plate of the given role.
//
// Steps:
//  1. If name already sits on a plate of this role, return that location.
//  2. With an explicit well, use the first plate of the role where that well
//     is free, else create a plate.
//  3. Without one, use the next free well of the first plate of the role
//     that has room, else create a plate.
//
// Plate creation beyond MaxPlatesPerRole returns ErrCapacityExceeded.
func (r *Registry) AddComponent(name string, role Role, wellName string) (Location, error) {
	if name == "" {
		return Location{}, ErrEmptyComponent
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// 1. One well per role group
	for _, p := range r.byRole[role] {
		if idxs := p.byName[name]; len(idxs) > 0 {
			return location(p, idxs[0]), nil
		}
	}

	// 2. Explicit well
	if wellName != "" {
		c, err := well.Parse(wellName)
		if err != nil {
			return Location{}, fmt.Errorf("plate: AddComponent(%q): %w", name, err)
		}
		for _, p := range r.byRole[role] {
			idx, err := p.Format.Index(c)
			if err != nil {
				continue
			}
			if _, taken := p.wells[idx]; !taken {
				p.put(idx, name)
				return location(p, idx), nil
			}
		}
		idx, err := r.formatFor(role).Index(c)
		if err != nil {
			return Location{}, fmt.Errorf("plate: AddComponent(%q): %w", name, err)
		}
		p, err := r.grow(name, role)
		if err != nil {
			return Location{}, err
		}
		p.put(idx, name)

		return location(p, idx), nil
	}

	// 3. Next free well
	for _, p := range r.byRole[role] {
		if idx, ok := p.nextFree(); ok {
			p.put(idx, name)
			return location(p, idx), nil
		}
	}
	p, err := r.grow(name, role)
	if err != nil {
		return Location{}, err
	}
	idx, _ := p.nextFree()
	p.put(idx, name)

	return location(p, idx), nil
}

// Find returns every location of name across all plates, plates in creation
// order and wells in fill order.
func (r *Registry) Find(name string) []Location {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Location
	for _, p := range r.plates {
		out = append(out, p.locations(name)...)
	}

	return out
}

// Plate returns the plate with the given id.
func (r *Registry) Plate(id string) (*Plate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPlateNotFound, id)
	}

	return p, nil
}

// Plates returns all plates in creation order.
func (r *Registry) Plates() []*Plate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*Plate(nil), r.plates...)
}

// PlatesByRole returns the plates of role in creation order.
func (r *Registry) PlatesByRole(role Role) []*Plate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*Plate(nil), r.byRole[role]...)
}

// grow creates the next plate of role; mu must be held.
func (r *Registry) grow(name string, role Role) (*Plate, error) {
	n := len(r.byRole[role])
	if r.opts.MaxPlatesPerRole > 0 && n >= r.opts.MaxPlatesPerRole {
		return nil, fmt.Errorf("%w: no room for %q on %d %s plate(s)", ErrCapacityExceeded, name, n, role)
	}

	id := role.String()
	for k := n + 1; ; k++ {
		if k > 1 {
			id = fmt.Sprintf("%s_%d", role, k)
		}
		if _, taken := r.byID[id]; !taken {
			break
		}
	}

	return r.register(id, role, r.formatFor(role)), nil
}

// register appends a new plate; mu must be held.
func (r *Registry) register(id string, role Role, f well.Format) *Plate {
	p := newPlate(id, role, f)
	r.plates = append(r.plates, p)
	r.byID[id] = p
	r.byRole[role] = append(r.byRole[role], p)

	return p
}

func (r *Registry) formatFor(role Role) well.Format {
	if role.Kind == KindTrough {
		return r.opts.TroughFormat
	}

	return r.opts.Format
}

func location(p *Plate, idx int) Location {
	c, _ := p.Format.CoordAt(idx)

	return Location{PlateID: p.ID, Well: well.Name(c), Coord: c, Index: idx}
}
