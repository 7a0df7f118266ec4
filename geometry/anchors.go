// Package geometry computes absolute anchor positions for placed shapes and
// provides the hit tests used by the interaction layer.
package geometry

import (
	"math"

	"github.com/tbo47/control-diagram/diagram"
)

// DefaultAnchorRadius is the pick distance, in diagram units, within which a
// pointer position counts as touching an anchor.
const DefaultAnchorRadius = 6.0

// AnchorPositions returns the absolute position of every anchor of a template
// placed with its top-left corner at (x, y). Positions are computed on
// demand, never cached, so they are always current after a move.
func AnchorPositions(tpl *diagram.ShapeTemplate, x, y float64) []diagram.Point {
	points := make([]diagram.Point, len(tpl.Anchors))
	for i, a := range tpl.Anchors {
		points[i] = diagram.Point{X: x + a.X, Y: y + a.Y}
	}
	return points
}

// AnchorPosition returns the absolute position of one anchor.
func AnchorPosition(tpl *diagram.ShapeTemplate, x, y float64, index int) (diagram.Point, error) {
	if index < 0 || index >= len(tpl.Anchors) {
		return diagram.Point{}, diagram.ErrInvalidAnchor
	}
	a := tpl.Anchors[index]
	return diagram.Point{X: x + a.X, Y: y + a.Y}, nil
}

// AnchorAt finds the anchor of a placed template closest to p within radius.
// It returns the anchor index and true, or -1 and false if no anchor is near
// enough. Ties go to the earlier anchor in template order.
func AnchorAt(tpl *diagram.ShapeTemplate, x, y float64, p diagram.Point, radius float64) (int, bool) {
	best := -1
	bestDist := radius
	for i, a := range tpl.Anchors {
		d := Dist(diagram.Point{X: x + a.X, Y: y + a.Y}, p)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best >= 0
}

// ShapeContains reports whether p falls inside the bounding box of a template
// placed at (x, y).
func ShapeContains(tpl *diagram.ShapeTemplate, x, y float64, p diagram.Point) bool {
	return p.X >= x && p.X <= x+tpl.Width &&
		p.Y >= y && p.Y <= y+tpl.Height
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b diagram.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
