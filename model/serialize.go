package model

import (
	"errors"

	"github.com/tbo47/control-diagram/diagram"
)

// Serialize walks the instances in insertion order and produces the document
// form. Templates are embedded by value so the document is self-contained;
// routes are deep-copied so later edits cannot mutate the snapshot.
func (m *Model) Serialize() diagram.Diagram {
	doc := diagram.Diagram{Shapes: make([]diagram.Shape, 0, len(m.order))}
	for _, id := range m.order {
		in := m.instances[id]
		s := diagram.Shape{
			Template:    *in.Template,
			X:           in.X,
			Y:           in.Y,
			ID:          in.ID,
			Connections: make([]diagram.Connection, 0, len(in.connections)),
		}
		s.Template.Anchors = append([]diagram.Anchor(nil), in.Template.Anchors...)
		for _, c := range in.connections {
			s.Connections = append(s.Connections, c.Clone())
		}
		doc.Shapes = append(doc.Shapes, s)
	}
	return doc
}

// Deserialize reconstructs a document into the model: instances first, in
// document order, then connections. Saved routes are restored verbatim, not
// re-routed, so the diagram reloads exactly as it was drawn. A connection
// whose start id resolves to nothing is skipped; the rest of the document
// still loads. Change notifications are muted for the whole import.
func (m *Model) Deserialize(doc diagram.Diagram) ([]*Instance, error) {
	m.muted = true
	defer func() { m.muted = false }()

	restored := make([]*Instance, 0, len(doc.Shapes))
	for i := range doc.Shapes {
		s := &doc.Shapes[i]
		tpl := s.Template
		in, err := m.AddInstanceWithID(&tpl, s.X, s.Y, s.ID)
		if err != nil {
			return restored, err
		}
		restored = append(restored, in)
	}
	for i := range doc.Shapes {
		s := &doc.Shapes[i]
		end := m.instances[s.ID]
		for _, c := range s.Connections {
			_, err := m.Connect(c.StartShapeID, c.StartAnchorIndex, end, c.EndAnchorIndex, c.Route)
			if errors.Is(err, diagram.ErrUnresolvedReference) {
				continue
			}
			if err != nil {
				return restored, err
			}
		}
	}
	return restored, nil
}
