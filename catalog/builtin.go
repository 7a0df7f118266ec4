package catalog

import "github.com/tbo47/control-diagram/diagram"

// DeadEnd returns the small pass-through stub auto-created when a connect
// gesture ends on empty canvas. Two in-out anchors, one on each side, so the
// dangling line gets a real endpoint and the stub can be connected onward
// later.
func DeadEnd() diagram.ShapeTemplate {
	return diagram.ShapeTemplate{
		Name:   "Dead end",
		Path:   "M0 5 L10 5",
		Width:  10,
		Height: 10,
		Type:   diagram.ShapeFitting,
		Anchors: []diagram.Anchor{
			{Kind: diagram.AnchorInOut, X: 0, Y: 5},
			{Kind: diagram.AnchorInOut, X: 10, Y: 5},
		},
	}
}

// Builtin returns a small starter set of P&ID templates so the editor is
// usable without a network catalog.
func Builtin() []diagram.ShapeTemplate {
	return []diagram.ShapeTemplate{
		{
			Name:   "Valve",
			Path:   "M0 0 L40 20 L40 0 L0 20 Z",
			Width:  40,
			Height: 20,
			Type:   diagram.ShapeValve,
			Anchors: []diagram.Anchor{
				{Kind: diagram.AnchorIn, X: 0, Y: 10},
				{Kind: diagram.AnchorOut, X: 40, Y: 10},
			},
		},
		{
			Name:   "Pump",
			Path:   "M20 0 A20 20 0 1 0 20 40 L40 40 L40 34",
			Width:  40,
			Height: 40,
			Type:   diagram.ShapePump,
			Anchors: []diagram.Anchor{
				{Kind: diagram.AnchorIn, X: 0, Y: 20},
				{Kind: diagram.AnchorOut, X: 40, Y: 20},
			},
		},
		{
			Name:   "Tank",
			Path:   "M0 10 A30 10 0 0 1 60 10 L60 70 A30 10 0 0 1 0 70 Z",
			Width:  60,
			Height: 80,
			Type:   diagram.ShapeTank,
			Anchors: []diagram.Anchor{
				{Kind: diagram.AnchorIn, X: 30, Y: 0},
				{Kind: diagram.AnchorOut, X: 60, Y: 40},
				{Kind: diagram.AnchorOut, X: 30, Y: 80},
			},
		},
		{
			Name:   "Instrument",
			Path:   "M15 0 A15 15 0 1 0 15 30 A15 15 0 1 0 15 0",
			Width:  30,
			Height: 30,
			Type:   diagram.ShapeInstrument,
			Anchors: []diagram.Anchor{
				{Kind: diagram.AnchorInOut, X: 15, Y: 30},
			},
		},
		DeadEnd(),
	}
}
