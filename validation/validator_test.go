package validation

import (
	"testing"

	"github.com/tbo47/control-diagram/diagram"
)

func shape(id int, anchors int) diagram.Shape {
	tpl := diagram.ShapeTemplate{Name: "Valve", Type: diagram.ShapeValve, Width: 40, Height: 20}
	for i := 0; i < anchors; i++ {
		tpl.Anchors = append(tpl.Anchors, diagram.Anchor{Kind: diagram.AnchorInOut})
	}
	return diagram.Shape{Template: tpl, ID: id}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     diagram.Diagram
		wantErrs int
	}{
		{
			name:    "empty document",
			doc:     diagram.Diagram{},
			wantErrs: 0,
		},
		{
			name: "valid connection",
			doc: func() diagram.Diagram {
				a, b := shape(1, 2), shape(2, 2)
				b.Connections = []diagram.Connection{{
					Route: []float64{0, 0, 5, 0, 5, 10, 10, 10}, StartShapeID: 1,
				}}
				return diagram.Diagram{Shapes: []diagram.Shape{a, b}}
			}(),
			wantErrs: 0,
		},
		{
			name: "duplicate ids",
			doc: diagram.Diagram{
				Shapes: []diagram.Shape{shape(1, 0), shape(1, 0)},
			},
			wantErrs: 1,
		},
		{
			name: "unknown start id",
			doc: func() diagram.Diagram {
				b := shape(2, 2)
				b.Connections = []diagram.Connection{{StartShapeID: 99}}
				return diagram.Diagram{Shapes: []diagram.Shape{b}}
			}(),
			wantErrs: 1,
		},
		{
			name: "anchor indices out of range",
			doc: func() diagram.Diagram {
				a, b := shape(1, 1), shape(2, 1)
				b.Connections = []diagram.Connection{{
					StartShapeID: 1, StartAnchorIndex: 3, EndAnchorIndex: -1,
				}}
				return diagram.Diagram{Shapes: []diagram.Shape{a, b}}
			}(),
			wantErrs: 2,
		},
		{
			name: "odd route length",
			doc: func() diagram.Diagram {
				a, b := shape(1, 1), shape(2, 1)
				b.Connections = []diagram.Connection{{
					StartShapeID: 1, Route: []float64{0, 0, 5},
				}}
				return diagram.Diagram{Shapes: []diagram.Shape{a, b}}
			}(),
			wantErrs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := NewValidator().Validate(tt.doc)
			if len(errs) != tt.wantErrs {
				t.Errorf("got %d errors %v, want %d", len(errs), errs, tt.wantErrs)
			}
		})
	}
}

func TestValidateAllowUnresolved(t *testing.T) {
	b := shape(2, 2)
	b.Connections = []diagram.Connection{{StartShapeID: 99}}
	doc := diagram.Diagram{Shapes: []diagram.Shape{b}}

	v := NewValidator()
	v.AllowUnresolved = true
	if errs := v.Validate(doc); len(errs) != 0 {
		t.Errorf("unresolved start should be accepted, got %v", errs)
	}
}
