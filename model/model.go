// Package model holds the canonical in-memory diagram graph: placed shape
// instances and the connections between their anchors. It is the unit of
// serialization and the single owner of connection bookkeeping; rendering
// layers read from it and never write.
package model

import (
	"fmt"

	"github.com/tbo47/control-diagram/diagram"
	"github.com/tbo47/control-diagram/routing"
)

// Model is the live diagram graph. All mutation happens synchronously on the
// input-event goroutine; Model does no locking of its own.
type Model struct {
	instances map[int]*Instance
	order     []int // insertion order, for deterministic serialization

	nextID int

	// notify is invoked after each externally visible mutation. Muted while
	// a document is being imported so restoring N connections does not fire
	// N spurious change events.
	notify func()
	muted  bool
}

// New creates an empty model.
func New() *Model {
	return &Model{
		instances: make(map[int]*Instance),
		nextID:    1,
	}
}

// SetNotifier registers the callback fired after each mutation. The callback
// runs strictly after the mutation is fully applied, so it may serialize the
// model and observe the post-mutation state.
func (m *Model) SetNotifier(fn func()) {
	m.notify = fn
}

func (m *Model) changed() {
	if m.notify != nil && !m.muted {
		m.notify()
	}
}

// Len returns the number of instances in the model.
func (m *Model) Len() int {
	return len(m.instances)
}

// Instance returns the instance with the given id, or nil.
func (m *Model) Instance(id int) *Instance {
	return m.instances[id]
}

// Instances returns all instances in insertion order.
func (m *Model) Instances() []*Instance {
	out := make([]*Instance, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.instances[id])
	}
	return out
}

// AddInstance places a new instance of a template and assigns it the next
// free id. The template is referenced, not copied.
func (m *Model) AddInstance(tpl *diagram.ShapeTemplate, x, y float64) *Instance {
	in := m.addInstance(tpl, x, y, m.allocID())
	m.changed()
	return in
}

// AddInstanceWithID places a new instance under a caller-chosen id, as when
// reloading a saved document. It fails if the id is already taken.
func (m *Model) AddInstanceWithID(tpl *diagram.ShapeTemplate, x, y float64, id int) (*Instance, error) {
	if _, ok := m.instances[id]; ok {
		return nil, fmt.Errorf("shape id %d already in use", id)
	}
	in := m.addInstance(tpl, x, y, id)
	if id >= m.nextID {
		m.nextID = id + 1
	}
	m.changed()
	return in, nil
}

func (m *Model) addInstance(tpl *diagram.ShapeTemplate, x, y float64, id int) *Instance {
	in := &Instance{ID: id, Template: tpl, X: x, Y: y}
	m.instances[id] = in
	m.order = append(m.order, id)
	return in
}

func (m *Model) allocID() int {
	id := m.nextID
	m.nextID++
	return id
}

// Connect records a connection from an anchor of the start instance to an
// anchor of the end instance, with the given route. The connection is stored
// once, on the end instance. Anchor indices are validated against their
// templates; an out-of-range index fails with ErrInvalidAnchor.
func (m *Model) Connect(startID, startAnchor int, end *Instance, endAnchor int, route []float64) (*diagram.Connection, error) {
	start := m.instances[startID]
	if start == nil {
		return nil, fmt.Errorf("start shape %d: %w", startID, diagram.ErrUnresolvedReference)
	}
	if startAnchor < 0 || startAnchor >= len(start.Template.Anchors) {
		return nil, fmt.Errorf("start anchor %d of shape %d: %w", startAnchor, startID, diagram.ErrInvalidAnchor)
	}
	if endAnchor < 0 || endAnchor >= len(end.Template.Anchors) {
		return nil, fmt.Errorf("end anchor %d of shape %d: %w", endAnchor, end.ID, diagram.ErrInvalidAnchor)
	}
	conn := &diagram.Connection{
		Route:            append([]float64(nil), route...),
		StartShapeID:     startID,
		StartAnchorIndex: startAnchor,
		EndAnchorIndex:   endAnchor,
	}
	end.connections = append(end.connections, conn)
	m.changed()
	return conn, nil
}

// DeleteInstance removes an instance and every connection touching it, both
// the ones it owns and the ones elsewhere that start or end on it. No
// dangling connection survives. Fires one change notification.
func (m *Model) DeleteInstance(id int) {
	in := m.instances[id]
	if in == nil {
		return
	}
	delete(m.instances, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	// The deleted instance's own list goes with it; sweep the rest of the
	// model for connections that start on the deleted shape.
	for _, other := range m.instances {
		kept := other.connections[:0]
		for _, c := range other.connections {
			if c.StartShapeID != id {
				kept = append(kept, c)
			}
		}
		other.connections = kept
	}
	m.changed()
}

// MoveInstance updates an instance's position and re-routes every connection
// touching it: connections ending on the instance are recomputed in full
// toward the moved anchor, connections starting on it keep their midline and
// end point and only slide their start run. Intended for live drag updates;
// it does not fire a change notification. Call CommitMove on drag release.
func (m *Model) MoveInstance(in *Instance, x, y float64) {
	in.X = x
	in.Y = y
	for _, c := range in.connections {
		if p, err := in.Anchor(c.EndAnchorIndex); err == nil {
			c.Route = routing.MoveEnd(c.Route, p)
		}
	}
	for _, other := range m.instances {
		if other == in {
			continue
		}
		for _, c := range other.connections {
			if c.StartShapeID != in.ID {
				continue
			}
			if p, err := in.Anchor(c.StartAnchorIndex); err == nil {
				c.Route = routing.MoveStart(c.Route, p)
			}
		}
	}
}

// CommitMove fires the single change notification for a finished drag.
func (m *Model) CommitMove() {
	m.changed()
}

// Clear removes every instance without firing per-instance notifications,
// then fires a single change notification.
func (m *Model) Clear() {
	m.instances = make(map[int]*Instance)
	m.order = nil
	m.changed()
}
