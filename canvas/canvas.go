// Package canvas provides a rune-matrix drawing surface used by the terminal
// front end to render shapes and routed connections.
package canvas

import (
	"errors"
	"strings"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid canvas size")
)

// Canvas is a rune matrix with origin (0,0) at the top-left, x increasing
// rightward and y downward. It is not safe for concurrent writes.
type Canvas struct {
	cells  [][]rune
	width  int
	height int
}

// New creates a canvas with the given dimensions.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &Canvas{cells: cells, width: width, height: height}, nil
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Get returns the rune at (x, y), or ' ' out of bounds.
func (c *Canvas) Get(x, y int) rune {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return ' '
	}
	return c.cells[y][x]
}

// Set places a rune at (x, y). Out-of-bounds positions are ignored so that
// partially visible shapes draw their visible part.
func (c *Canvas) Set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = r
}

// Clear resets the canvas to all spaces.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
		}
	}
}

// String returns the canvas content with newlines between rows.
func (c *Canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.TrimRight(string(row), " "))
	}
	return b.String()
}
