// Package validation checks diagram documents for structural problems before
// they are exported or shared.
package validation

import "github.com/tbo47/control-diagram/diagram"

// Error describes one structural problem found in a document.
type Error struct {
	ShapeID int
	Message string
}

// Validator validates diagram documents. The zero value is ready to use.
type Validator struct {
	// AllowUnresolved accepts connections whose start id is unknown, since
	// the importer's policy is to skip them rather than fail.
	AllowUnresolved bool
}

// NewValidator creates a validator with default settings.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks a document and returns every problem found: duplicate
// shape ids, connections referencing unknown start shapes, anchor indices
// out of range for their templates, and malformed route point lists.
func (v *Validator) Validate(d diagram.Diagram) []Error {
	var errs []Error

	ids := make(map[int]*diagram.Shape, len(d.Shapes))
	for i := range d.Shapes {
		s := &d.Shapes[i]
		if _, dup := ids[s.ID]; dup {
			errs = append(errs, Error{ShapeID: s.ID, Message: "duplicate shape id"})
			continue
		}
		ids[s.ID] = s
	}

	for i := range d.Shapes {
		s := &d.Shapes[i]
		for _, c := range s.Connections {
			start, ok := ids[c.StartShapeID]
			if !ok {
				if !v.AllowUnresolved {
					errs = append(errs, Error{ShapeID: s.ID, Message: "connection start references unknown shape id"})
				}
			} else if c.StartAnchorIndex < 0 || c.StartAnchorIndex >= len(start.Template.Anchors) {
				errs = append(errs, Error{ShapeID: s.ID, Message: "connection start anchor index out of range"})
			}
			if c.EndAnchorIndex < 0 || c.EndAnchorIndex >= len(s.Template.Anchors) {
				errs = append(errs, Error{ShapeID: s.ID, Message: "connection end anchor index out of range"})
			}
			if len(c.Route)%2 != 0 {
				errs = append(errs, Error{ShapeID: s.ID, Message: "route point list has odd length"})
			}
		}
	}
	return errs
}
