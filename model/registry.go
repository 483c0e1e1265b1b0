package model

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// registry indexes every component of a process by component id.
type registry struct {
	items  map[int]Component
	nextID int
}

func newRegistry() *registry {
	return &registry{items: make(map[int]Component)}
}

// reserve validates an explicit id or allocates the next free one. It does
// not mutate the registry.
func (r *registry) reserve(o *options) (int, error) {
	if !o.hasID {
		return r.free()
	}
	if o.id < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidComponentID, o.id)
	}
	if existing, taken := r.items[o.id]; taken {
		return 0, fmt.Errorf("%w: %d is already used by %v", ErrDuplicateComponent, o.id, existing.Kind())
	}
	return o.id, nil
}

// free returns the first unused id from nextID, wrapping to 0 once the
// largest int is taken.
func (r *registry) free() (int, error) {
	for id := r.nextID; ; id++ {
		if _, taken := r.items[id]; !taken {
			return id, nil
		}
		if id == math.MaxInt {
			break
		}
	}
	for id := 0; id < r.nextID; id++ {
		if _, taken := r.items[id]; !taken {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: no free component id left", ErrInvalidComponentID)
}

func (r *registry) add(c Component) {
	id := c.ComponentID()
	r.items[id] = c
	switch {
	case id == math.MaxInt:
		r.nextID = id
	case id >= r.nextID:
		r.nextID = id + 1
	}
}

func (r *registry) remove(id int) {
	delete(r.items, id)
}

func (r *registry) lookup(id int) (Component, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrComponentNotFound, id)
	}
	return c, nil
}

func (r *registry) size() int {
	return len(r.items)
}

// components returns all components ordered by id.
func (r *registry) components() []Component {
	ret := make([]Component, 0, len(r.items))
	for _, c := range r.items {
		ret = append(ret, c)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].ComponentID() < ret[j].ComponentID()
	})
	return ret
}

// SearchComponent returns the component registered under id.
func (p *Process) SearchComponent(id int) (Component, error) {
	return p.registry.lookup(id)
}

// SearchComponentByRef resolves the textual form of a component id as it
// appears in documents.
func (p *Process) SearchComponentByRef(ref string) (Component, error) {
	id, err := strconv.Atoi(strings.TrimSpace(ref))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a component id", ErrComponentNotFound, ref)
	}
	return p.registry.lookup(id)
}

// SearchFlowObject returns the flow object registered under id.
func (p *Process) SearchFlowObject(id int) (FlowObject, error) {
	c, err := p.registry.lookup(id)
	if err != nil {
		return nil, err
	}
	ret, ok := c.(FlowObject)
	if !ok {
		return nil, fmt.Errorf("%w: %d is a %v, expected flow object", ErrWrongKind, id, c.Kind())
	}
	return ret, nil
}

// SearchDataObject returns the data object registered under id.
func (p *Process) SearchDataObject(id int) (*DataObject, error) {
	c, err := p.registry.lookup(id)
	if err != nil {
		return nil, err
	}
	ret, ok := c.(*DataObject)
	if !ok {
		return nil, fmt.Errorf("%w: %d is a %v, expected data object", ErrWrongKind, id, c.Kind())
	}
	return ret, nil
}

// SearchOwner returns the data object owner (flow object or sequence)
// registered under id.
func (p *Process) SearchOwner(id int) (DataObjectOwner, error) {
	c, err := p.registry.lookup(id)
	if err != nil {
		return nil, err
	}
	ret, ok := c.(DataObjectOwner)
	if !ok {
		return nil, fmt.Errorf("%w: %d is a %v, expected data object owner", ErrWrongKind, id, c.Kind())
	}
	return ret, nil
}
