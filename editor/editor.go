package editor

import (
	"encoding/json"

	"github.com/tbo47/control-diagram/catalog"
	"github.com/tbo47/control-diagram/diagram"
	"github.com/tbo47/control-diagram/model"
)

// Editor is the façade over the model and the interaction controller. It
// owns the change-notification stream: listeners fire once per externally
// visible mutation (add, connect, delete, move release), strictly after the
// mutation is applied, in mutation order.
type Editor struct {
	model *model.Model
	ctl   *Controller

	subs     map[int]func()
	subOrder []int
	nextSub  int
}

// New creates an empty editor.
func New() *Editor {
	m := model.New()
	e := &Editor{
		model: m,
		subs:  make(map[int]func()),
	}
	m.SetNotifier(e.fireChange)
	e.ctl = NewController(m, catalog.DeadEnd())
	return e
}

// Model returns the underlying diagram model.
func (e *Editor) Model() *model.Model {
	return e.model
}

// Controller returns the interaction controller, for front ends feeding
// pointer events.
func (e *Editor) Controller() *Controller {
	return e.ctl
}

// AddShape places a new instance of a template with an auto-assigned id.
func (e *Editor) AddShape(tpl *diagram.ShapeTemplate, x, y float64) *model.Instance {
	return e.model.AddInstance(tpl, x, y)
}

// AddShapeWithID places a new instance under a caller-chosen id.
func (e *Editor) AddShapeWithID(tpl *diagram.ShapeTemplate, x, y float64, id int) (*model.Instance, error) {
	return e.model.AddInstanceWithID(tpl, x, y, id)
}

// Export produces the serializable document for the current diagram.
func (e *Editor) Export() diagram.Diagram {
	return e.model.Serialize()
}

// ExportJSON produces the document as JSON.
func (e *Editor) ExportJSON() ([]byte, error) {
	return json.Marshal(e.Export())
}

// Import reconstructs a document into the editor. A nil document is a
// no-op. Connections whose start shape cannot be resolved are skipped;
// change notifications are suppressed for the whole import.
func (e *Editor) Import(doc *diagram.Diagram) error {
	if doc == nil {
		return nil
	}
	_, err := e.model.Deserialize(*doc)
	return err
}

// ImportJSON parses and imports a JSON document. Nil or empty input is a
// no-op.
func (e *Editor) ImportJSON(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	var doc diagram.Diagram
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return e.Import(&doc)
}

// Clear destroys every instance. Per-instance notifications are not fired;
// one change notification reports the whole wipe.
func (e *Editor) Clear() {
	e.model.Clear()
}

// OnChange registers a change listener and returns its unsubscribe
// function. Listeners fire in registration order and may call Export from
// inside the callback; they observe the post-mutation state.
func (e *Editor) OnChange(fn func()) func() {
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	e.subOrder = append(e.subOrder, id)
	return func() {
		delete(e.subs, id)
	}
}

// AddMenuEntry extends the context menu with a custom action, listed after
// the built-in Delete.
func (e *Editor) AddMenuEntry(label string, handler func(*model.Instance)) {
	e.ctl.AddMenuEntry(label, handler)
}

func (e *Editor) fireChange() {
	for _, id := range e.subOrder {
		if fn, ok := e.subs[id]; ok {
			fn()
		}
	}
}
