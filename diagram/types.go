// Package diagram contains the fundamental types used throughout the
// control-diagram editor: shape templates with their anchor points, placed
// shape instances, routed connections, and the serializable document form.
package diagram

// Point represents a 2D coordinate in diagram space.
type Point struct {
	X, Y float64
}

// AnchorKind describes the flow direction a connection point accepts.
type AnchorKind string

const (
	AnchorIn    AnchorKind = "in"
	AnchorOut   AnchorKind = "out"
	AnchorInOut AnchorKind = "in-out"
)

// Anchor is a typed attachment point on a shape template, given in
// coordinates local to the template's top-left corner.
type Anchor struct {
	Kind AnchorKind `json:"kind"`
	X    float64    `json:"x"`
	Y    float64    `json:"y"`
}

// ShapeType classifies a template within the P&ID symbol set.
type ShapeType string

const (
	ShapeValve         ShapeType = "valve"
	ShapePump          ShapeType = "pump"
	ShapeCompressor    ShapeType = "compressor"
	ShapeHeatExchanger ShapeType = "heat-exchanger"
	ShapeSeparator     ShapeType = "separator"
	ShapeTank          ShapeType = "tank"
	ShapePipe          ShapeType = "pipe"
	ShapeFitting       ShapeType = "fitting"
	ShapeInstrument    ShapeType = "instrument"
	ShapeControlValve  ShapeType = "control-valve"
)

// ShapeTemplate is the immutable icon definition shared by every placed
// instance of that icon. Instances reference templates; they never copy them.
type ShapeTemplate struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Width   float64   `json:"width"`
	Height  float64   `json:"height"`
	Type    ShapeType `json:"type"`
	Anchors []Anchor  `json:"anchors"`
}

// Connection is a routed line between an anchor of one shape instance and an
// anchor of another. A connection is recorded exactly once, on the shape that
// owns its end anchor; the start side is reachable only through StartShapeID.
type Connection struct {
	// Route holds the polyline as interleaved x/y pairs, so its length is
	// always even. Produced by the routing package.
	Route            []float64 `json:"l"`
	StartShapeID     int       `json:"sid"`
	StartAnchorIndex int       `json:"sai"`
	EndAnchorIndex   int       `json:"eai"`
}

// Clone returns a deep copy of the connection.
func (c Connection) Clone() Connection {
	route := make([]float64, len(c.Route))
	copy(route, c.Route)
	return Connection{
		Route:            route,
		StartShapeID:     c.StartShapeID,
		StartAnchorIndex: c.StartAnchorIndex,
		EndAnchorIndex:   c.EndAnchorIndex,
	}
}

// Shape is the document snapshot of one placed shape instance. The template
// is embedded by value so a saved diagram is self-contained and never needs a
// catalog lookup to reload.
type Shape struct {
	Template    ShapeTemplate `json:"s"`
	X           float64       `json:"x"`
	Y           float64       `json:"y"`
	ID          int           `json:"id"`
	Connections []Connection  `json:"c"`
}

// Diagram is the serializable snapshot of a whole diagram: an ordered
// sequence of shape snapshots, each carrying the connections that end on it.
type Diagram struct {
	Shapes []Shape
}

// Clone creates a deep copy of the diagram.
func (d *Diagram) Clone() *Diagram {
	if d == nil {
		return nil
	}
	clone := &Diagram{Shapes: make([]Shape, len(d.Shapes))}
	for i, s := range d.Shapes {
		cs := s
		cs.Template.Anchors = make([]Anchor, len(s.Template.Anchors))
		copy(cs.Template.Anchors, s.Template.Anchors)
		cs.Connections = make([]Connection, len(s.Connections))
		for j, c := range s.Connections {
			cs.Connections[j] = c.Clone()
		}
		clone.Shapes[i] = cs
	}
	return clone
}
