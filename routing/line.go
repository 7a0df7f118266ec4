package routing

import "github.com/tbo47/control-diagram/diagram"

// Line is the transient connector built while the user drags from an anchor.
// It exists only between gesture start and gesture end, is never serialized,
// and at most one exists per editor.
type Line struct {
	// Points is the current route, interleaved x/y.
	Points []float64
	// StartShapeID and StartAnchorIndex identify the anchor the gesture
	// started from.
	StartShapeID     int
	StartAnchorIndex int
}

// NewLine starts an in-progress line at an anchor's absolute position.
func NewLine(start diagram.Point, shapeID, anchorIndex int) *Line {
	return &Line{
		Points:           Recalculate(start, start),
		StartShapeID:     shapeID,
		StartAnchorIndex: anchorIndex,
	}
}

// Follow re-routes the line toward the pointer. Called on every pointer move
// while the gesture is active; the end of the line tracks the pointer
// exactly.
func (l *Line) Follow(p diagram.Point) {
	l.Points = MoveEnd(l.Points, p)
}

// Start returns the line's fixed start point.
func (l *Line) Start() diagram.Point {
	return Start(l.Points)
}

// End returns the line's current end point.
func (l *Line) End() diagram.Point {
	return End(l.Points)
}
