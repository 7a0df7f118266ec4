package model

import (
	"github.com/tbo47/control-diagram/diagram"
	"github.com/tbo47/control-diagram/geometry"
)

// Instance is one placed occurrence of a shape template. Its position is the
// template's top-left corner in diagram space. An instance owns the
// connections whose end anchor is one of its anchors; connections starting on
// it are owned by their end-side instance and found by id lookup.
type Instance struct {
	ID       int
	Template *diagram.ShapeTemplate
	X, Y     float64

	// connections ending on this instance, in creation order.
	connections []*diagram.Connection
}

// Connections returns the connections that end on this instance, in creation
// order. The slice is shared with the model; callers must not modify it.
func (in *Instance) Connections() []*diagram.Connection {
	return in.connections
}

// Anchors returns the absolute position of every anchor, computed from the
// instance's current position.
func (in *Instance) Anchors() []diagram.Point {
	return geometry.AnchorPositions(in.Template, in.X, in.Y)
}

// Anchor returns the absolute position of one anchor.
func (in *Instance) Anchor(index int) (diagram.Point, error) {
	return geometry.AnchorPosition(in.Template, in.X, in.Y, index)
}

// Contains reports whether p falls inside the instance's bounding box.
func (in *Instance) Contains(p diagram.Point) bool {
	return geometry.ShapeContains(in.Template, in.X, in.Y, p)
}

// AnchorAt finds the anchor nearest p within radius.
func (in *Instance) AnchorAt(p diagram.Point, radius float64) (int, bool) {
	return geometry.AnchorAt(in.Template, in.X, in.Y, p, radius)
}
