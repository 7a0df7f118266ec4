package canvas

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	if _, err := New(0, 10); err != ErrInvalidSize {
		t.Errorf("zero width: got %v, want ErrInvalidSize", err)
	}
	c, err := New(4, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w, h := c.Size()
	if w != 4 || h != 2 {
		t.Errorf("size = %dx%d, want 4x2", w, h)
	}
}

func TestSetGetClipsToBounds(t *testing.T) {
	c, _ := New(3, 3)
	c.Set(1, 1, 'x')
	if got := c.Get(1, 1); got != 'x' {
		t.Errorf("Get(1,1) = %q", got)
	}
	// Out-of-bounds writes are dropped, reads yield spaces.
	c.Set(-1, 0, 'y')
	c.Set(5, 5, 'y')
	if got := c.Get(5, 5); got != ' ' {
		t.Errorf("Get out of bounds = %q, want space", got)
	}
}

func TestDrawBox(t *testing.T) {
	c, _ := New(6, 4)
	c.DrawBox(0, 0, 5, 3)
	want := strings.Join([]string{
		"┌───┐",
		"│   │",
		"└───┘",
	}, "\n")
	if got := c.String(); got != want {
		t.Errorf("box mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDrawPolylineStaircase(t *testing.T) {
	c, _ := New(11, 5)
	// The two-bend route shape produced by the connector engine.
	c.DrawPolyline([]int{0, 0, 5, 0, 5, 4, 10, 4})
	want := strings.Join([]string{
		"─────┐",
		"     │",
		"     │",
		"     │",
		"     └─────",
	}, "\n")
	if got := c.String(); got != want {
		t.Errorf("polyline mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDrawText(t *testing.T) {
	c, _ := New(5, 1)
	c.DrawText(0, 0, "pump!")
	if got := c.String(); got != "pump!" {
		t.Errorf("got %q", got)
	}
	// Clipped text draws its visible prefix.
	c.DrawText(3, 0, "tank")
	if got := c.Get(4, 0); got != 'a' {
		t.Errorf("clipped text: got %q at (4,0)", got)
	}
}
