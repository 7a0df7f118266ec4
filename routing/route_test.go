package routing

import (
	"reflect"
	"testing"

	"github.com/tbo47/control-diagram/diagram"
)

func TestRecalculate(t *testing.T) {
	tests := []struct {
		name  string
		start diagram.Point
		end   diagram.Point
		want  []float64
	}{
		{
			name:  "staircase between offset points",
			start: diagram.Point{X: 0, Y: 0},
			end:   diagram.Point{X: 10, Y: 20},
			want:  []float64{0, 0, 5, 0, 5, 20, 10, 20},
		},
		{
			name:  "horizontal run keeps flat midline",
			start: diagram.Point{X: 0, Y: 10},
			end:   diagram.Point{X: 40, Y: 10},
			want:  []float64{0, 10, 20, 10, 20, 10, 40, 10},
		},
		{
			name:  "leftward connection",
			start: diagram.Point{X: 30, Y: 4},
			end:   diagram.Point{X: 10, Y: 8},
			want:  []float64{30, 4, 20, 4, 20, 8, 10, 8},
		},
		{
			name:  "coincident endpoints",
			start: diagram.Point{X: 7, Y: 7},
			end:   diagram.Point{X: 7, Y: 7},
			want:  []float64{7, 7, 7, 7, 7, 7, 7, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recalculate(tt.start, tt.end)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Recalculate(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestRecalculateSegmentsAreAxisAligned(t *testing.T) {
	route := Recalculate(diagram.Point{X: 3, Y: 9}, diagram.Point{X: 27, Y: 1})
	if len(route) != 8 {
		t.Fatalf("expected 4 route points, got %d values", len(route))
	}
	// Bend points share x; the first and last segments are horizontal.
	if route[2] != route[4] {
		t.Errorf("vertical segment not aligned: x=%g vs x=%g", route[2], route[4])
	}
	if route[1] != route[3] {
		t.Errorf("first segment not horizontal: y=%g vs y=%g", route[1], route[3])
	}
	if route[5] != route[7] {
		t.Errorf("last segment not horizontal: y=%g vs y=%g", route[5], route[7])
	}
	if want := (3.0 + 27.0) / 2; route[2] != want {
		t.Errorf("midline x = %g, want %g", route[2], want)
	}
}

func TestMoveEnd(t *testing.T) {
	route := Recalculate(diagram.Point{X: 0, Y: 0}, diagram.Point{X: 10, Y: 20})
	moved := MoveEnd(route, diagram.Point{X: 30, Y: 8})

	want := []float64{0, 0, 15, 0, 15, 8, 30, 8}
	if !reflect.DeepEqual(moved, want) {
		t.Errorf("MoveEnd = %v, want %v", moved, want)
	}
}

func TestMoveStartPreservesMidlineAndEnd(t *testing.T) {
	route := Recalculate(diagram.Point{X: 0, Y: 0}, diagram.Point{X: 10, Y: 20})
	moved := MoveStart(route, diagram.Point{X: -6, Y: 4})

	// Only the start run shifts; the vertical segment stays at x=5 and the
	// end point is untouched.
	want := []float64{-6, 4, 5, 4, 5, 20, 10, 20}
	if !reflect.DeepEqual(moved, want) {
		t.Errorf("MoveStart = %v, want %v", moved, want)
	}
}

func TestMoveStartRebuildsDegenerateRoute(t *testing.T) {
	moved := MoveStart([]float64{0, 0, 10, 20}, diagram.Point{X: 2, Y: 2})
	want := Recalculate(diagram.Point{X: 2, Y: 2}, diagram.Point{X: 10, Y: 20})
	if !reflect.DeepEqual(moved, want) {
		t.Errorf("MoveStart on short route = %v, want %v", moved, want)
	}
}

func TestLineFollowsPointer(t *testing.T) {
	line := NewLine(diagram.Point{X: 4, Y: 4}, 1, 0)
	if line.StartShapeID != 1 || line.StartAnchorIndex != 0 {
		t.Fatalf("line tagged with %d/%d, want 1/0", line.StartShapeID, line.StartAnchorIndex)
	}

	line.Follow(diagram.Point{X: 20, Y: 12})
	if got := line.End(); got != (diagram.Point{X: 20, Y: 12}) {
		t.Errorf("end = %v, want (20,12)", got)
	}
	if got := line.Start(); got != (diagram.Point{X: 4, Y: 4}) {
		t.Errorf("start moved to %v", got)
	}

	// The end tracks every subsequent move exactly.
	line.Follow(diagram.Point{X: 2, Y: 30})
	if got := line.End(); got != (diagram.Point{X: 2, Y: 30}) {
		t.Errorf("end = %v, want (2,30)", got)
	}
}
