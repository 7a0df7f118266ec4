package editor

import (
	"github.com/tbo47/control-diagram/diagram"
	"github.com/tbo47/control-diagram/model"
)

// MenuEntry is one context menu action. The handler receives the shape the
// menu was opened on.
type MenuEntry struct {
	Label   string
	Handler func(*model.Instance)
}

// OpenContextMenu opens the context menu over the shape at p, on a
// secondary click or long press. It does nothing over empty canvas.
func (c *Controller) OpenContextMenu(p diagram.Point) bool {
	in := c.shapeUnder(p)
	if in == nil {
		return false
	}
	if c.state != StateContextMenu {
		c.prior = c.state
	}
	c.menuTarget = in
	c.state = StateContextMenu
	return true
}

// MenuTarget returns the shape the open context menu refers to, or nil.
func (c *Controller) MenuTarget() *model.Instance {
	if c.state != StateContextMenu {
		return nil
	}
	return c.menuTarget
}

// MenuEntries lists the context menu actions: the built-in Delete always
// comes first, followed by externally registered entries in registration
// order.
func (c *Controller) MenuEntries() []MenuEntry {
	entries := make([]MenuEntry, 0, len(c.custom)+1)
	entries = append(entries, MenuEntry{
		Label: "Delete",
		Handler: func(in *model.Instance) {
			c.deleteInstance(in)
		},
	})
	return append(entries, c.custom...)
}

// AddMenuEntry registers a custom context menu action after the built-ins.
func (c *Controller) AddMenuEntry(label string, handler func(*model.Instance)) {
	c.custom = append(c.custom, MenuEntry{Label: label, Handler: handler})
}

// DispatchMenu runs the menu entry at index i against the menu's target
// shape and closes the menu.
func (c *Controller) DispatchMenu(i int) {
	if c.state != StateContextMenu {
		return
	}
	target := c.menuTarget
	entries := c.MenuEntries()
	c.closeMenu()
	if i < 0 || i >= len(entries) || target == nil {
		return
	}
	entries[i].Handler(target)
}

// CloseMenu dismisses the context menu without dispatching an action.
func (c *Controller) CloseMenu() {
	if c.state == StateContextMenu {
		c.closeMenu()
	}
}

func (c *Controller) closeMenu() {
	c.state = c.prior
	c.menuTarget = nil
	// The prior state may refer to a shape deleted by the dispatched
	// action; fall back to Idle if the selection is gone.
	if c.selected == nil && (c.state == StateShapeSelected || c.state == StateResizing) {
		c.state = StateIdle
	}
}

// deleteInstance removes a shape and everything connected to it.
func (c *Controller) deleteInstance(in *model.Instance) {
	if in == nil {
		return
	}
	if c.selected == in {
		c.selected = nil
		if c.state == StateShapeSelected || c.state == StateResizing {
			c.state = StateIdle
		}
	}
	c.model.DeleteInstance(in.ID)
}
