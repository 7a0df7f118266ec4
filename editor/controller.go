// Package editor turns pointer gestures into diagram mutations and composes
// the model, routing and catalog packages behind a small façade.
package editor

import (
	"github.com/tbo47/control-diagram/diagram"
	"github.com/tbo47/control-diagram/geometry"
	"github.com/tbo47/control-diagram/model"
	"github.com/tbo47/control-diagram/routing"
)

// Controller is the gesture state machine. It receives raw pointer events
// from whatever front end hosts the editor and translates them into model
// mutations and routing updates. All handling is synchronous on the caller's
// event goroutine.
type Controller struct {
	model *model.Model
	state State
	prior State // state to restore when the context menu closes

	selected *model.Instance

	// line is the single optional in-progress connector. Its presence is
	// what "at most one in-progress line per editor" means.
	line *routing.Line

	dragging  *model.Instance
	dragDX    float64
	dragDY    float64
	dragMoved bool

	menuTarget *model.Instance
	custom     []MenuEntry

	stub         diagram.ShapeTemplate
	anchorRadius float64
}

// NewController creates a controller over a model. The stub template is the
// dead-end shape auto-created when a connect gesture ends on empty canvas.
func NewController(m *model.Model, stub diagram.ShapeTemplate) *Controller {
	return &Controller{
		model:        m,
		state:        StateIdle,
		stub:         stub,
		anchorRadius: geometry.DefaultAnchorRadius,
	}
}

// State returns the current gesture state.
func (c *Controller) State() State {
	return c.state
}

// Selected returns the currently selected shape, or nil.
func (c *Controller) Selected() *model.Instance {
	return c.selected
}

// Line returns the in-progress line, or nil outside a connect gesture. Front
// ends read it to draw the live connector; they must not mutate it.
func (c *Controller) Line() *routing.Line {
	return c.line
}

// PointerDown handles a primary button press at p.
func (c *Controller) PointerDown(p diagram.Point) {
	if c.state == StateContextMenu {
		// Outside click closes the menu back to the prior state.
		c.closeMenu()
		return
	}
	if c.line != nil {
		// At most one in-progress line; a second press is a no-op.
		return
	}
	if in, idx, ok := c.anchorUnder(p); ok {
		c.startConnect(in, idx)
		return
	}
	if in := c.shapeUnder(p); in != nil {
		c.selected = in
		c.state = StateShapeSelected
		c.dragging = in
		c.dragDX = p.X - in.X
		c.dragDY = p.Y - in.Y
		c.dragMoved = false
		return
	}
	// Empty canvas press deselects.
	c.selected = nil
	c.state = StateIdle
}

// PointerMove handles pointer motion at p while the primary button is held.
func (c *Controller) PointerMove(p diagram.Point) {
	switch {
	case c.line != nil:
		c.line.Follow(p)
	case c.dragging != nil:
		c.model.MoveInstance(c.dragging, p.X-c.dragDX, p.Y-c.dragDY)
		c.dragMoved = true
	}
}

// PointerUp handles a primary button release. ok is false when the release
// position could not be resolved (pointer left the canvas); an unresolvable
// release discards any in-progress line without creating a connection.
func (c *Controller) PointerUp(p diagram.Point, ok bool) {
	if c.line != nil {
		line := c.line
		c.line = nil
		c.selected = nil
		c.state = StateIdle
		if !ok {
			return
		}
		c.finishConnect(line, p)
		return
	}
	if c.dragging != nil {
		if c.dragMoved {
			c.model.CommitMove()
		}
		c.dragging = nil
		c.dragMoved = false
	}
}

// startConnect begins a connect gesture from an anchor.
func (c *Controller) startConnect(in *model.Instance, anchorIndex int) {
	pos, err := in.Anchor(anchorIndex)
	if err != nil {
		return
	}
	c.line = routing.NewLine(pos, in.ID, anchorIndex)
	c.state = StateConnecting
}

// finishConnect terminates an in-progress line at the release point: onto an
// anchor of another shape if one is under the pointer, otherwise onto a
// freshly created dead-end stub.
func (c *Controller) finishConnect(line *routing.Line, p diagram.Point) {
	if in, idx, ok := c.anchorUnder(p); ok && in.ID != line.StartShapeID {
		if pos, err := in.Anchor(idx); err == nil {
			route := routing.MoveEnd(line.Points, pos)
			c.model.Connect(line.StartShapeID, line.StartAnchorIndex, in, idx, route)
		}
		return
	}
	// Empty canvas: terminate on a new dead-end stub, connecting to its
	// first anchor. The stub is placed so that anchor lands at the release
	// point.
	tpl := c.stub
	x, y := p.X, p.Y
	if len(tpl.Anchors) > 0 {
		x -= tpl.Anchors[0].X
		y -= tpl.Anchors[0].Y
	}
	stub := c.model.AddInstance(&tpl, x, y)
	end, err := stub.Anchor(0)
	if err != nil {
		return
	}
	route := routing.MoveEnd(line.Points, end)
	c.model.Connect(line.StartShapeID, line.StartAnchorIndex, stub, 0, route)
}

// BeginResize activates the resize affordance on a shape.
func (c *Controller) BeginResize(in *model.Instance) {
	if in == nil {
		return
	}
	c.selected = in
	c.state = StateResizing
}

// Deselect clears the selection and returns to Idle.
func (c *Controller) Deselect() {
	c.selected = nil
	c.state = StateIdle
}

// anchorUnder finds the topmost shape with an anchor within pick distance of
// p. Later-added shapes win, matching their stacking order.
func (c *Controller) anchorUnder(p diagram.Point) (*model.Instance, int, bool) {
	instances := c.model.Instances()
	for i := len(instances) - 1; i >= 0; i-- {
		if idx, ok := instances[i].AnchorAt(p, c.anchorRadius); ok {
			return instances[i], idx, true
		}
	}
	return nil, -1, false
}

// shapeUnder finds the topmost shape whose bounding box contains p.
func (c *Controller) shapeUnder(p diagram.Point) *model.Instance {
	instances := c.model.Instances()
	for i := len(instances) - 1; i >= 0; i-- {
		if instances[i].Contains(p) {
			return instances[i]
		}
	}
	return nil
}
