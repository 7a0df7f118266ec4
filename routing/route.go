// Package routing computes the orthogonal polylines that connect shape
// anchors, and owns the transient in-progress line built during a connect
// gesture.
package routing

import "github.com/tbo47/control-diagram/diagram"

// routePoints is the length of a two-bend route: four points, interleaved.
const routePoints = 8

// Recalculate builds the two-bend orthogonal route between start and end:
//
//	[x0,y0, mx,y0, mx,y1, x1,y1]   with mx = (x0+x1)/2
//
// a horizontal-vertical-horizontal staircase whose vertical segment sits
// midway between the endpoints. Every segment is axis-aligned.
func Recalculate(start, end diagram.Point) []float64 {
	mx := (start.X + end.X) / 2
	return []float64{start.X, start.Y, mx, start.Y, mx, end.Y, end.X, end.Y}
}

// MoveEnd recomputes a route in full for a new end point. Used when the shape
// owning the end anchor moves: the end side tracks its anchor exactly.
func MoveEnd(route []float64, end diagram.Point) []float64 {
	if len(route) < 2 {
		return Recalculate(diagram.Point{}, end)
	}
	return Recalculate(diagram.Point{X: route[0], Y: route[1]}, end)
}

// MoveStart shifts only the start run of a route to a new start point,
// keeping the end point and the vertical segment's x where they are. Used
// when the shape owning the start anchor moves: the committed side slides
// smoothly instead of recentering the midline under the user.
func MoveStart(route []float64, start diagram.Point) []float64 {
	if len(route) != routePoints {
		// Degenerate or hand-edited route: rebuild it whole.
		if len(route) >= 2 {
			return Recalculate(start, diagram.Point{X: route[len(route)-2], Y: route[len(route)-1]})
		}
		return Recalculate(start, start)
	}
	mx := route[2]
	return []float64{start.X, start.Y, mx, start.Y, mx, route[5], route[6], route[7]}
}

// Start returns the first point of a route.
func Start(route []float64) diagram.Point {
	if len(route) < 2 {
		return diagram.Point{}
	}
	return diagram.Point{X: route[0], Y: route[1]}
}

// End returns the last point of a route.
func End(route []float64) diagram.Point {
	if len(route) < 2 {
		return diagram.Point{}
	}
	return diagram.Point{X: route[len(route)-2], Y: route[len(route)-1]}
}
