package canvas

// Box-drawing characters used for shapes and connector lines.
const (
	lineH    = '─'
	lineV    = '│'
	cornerTL = '┌'
	cornerTR = '┐'
	cornerBL = '└'
	cornerBR = '┘'
)

// DrawBox draws a rectangle outline with its top-left corner at (x, y).
func (c *Canvas) DrawBox(x, y, width, height int) {
	if width < 2 || height < 2 {
		return
	}
	for i := 1; i < width-1; i++ {
		c.Set(x+i, y, lineH)
		c.Set(x+i, y+height-1, lineH)
	}
	for i := 1; i < height-1; i++ {
		c.Set(x, y+i, lineV)
		c.Set(x+width-1, y+i, lineV)
	}
	c.Set(x, y, cornerTL)
	c.Set(x+width-1, y, cornerTR)
	c.Set(x, y+height-1, cornerBL)
	c.Set(x+width-1, y+height-1, cornerBR)
}

// DrawText writes a string starting at (x, y), clipped to the canvas.
func (c *Canvas) DrawText(x, y int, text string) {
	for i, r := range []rune(text) {
		c.Set(x+i, y, r)
	}
}

// DrawPolyline draws an orthogonal polyline through the given points,
// placing corner characters where direction changes. Points are interleaved
// x/y pairs; diagonal segments are drawn as their horizontal projection.
func (c *Canvas) DrawPolyline(route []int) {
	n := len(route) / 2
	if n < 2 {
		return
	}
	for i := 0; i+1 < n; i++ {
		x0, y0 := route[2*i], route[2*i+1]
		x1, y1 := route[2*i+2], route[2*i+3]
		c.drawSegment(x0, y0, x1, y1)
	}
	// Corners at interior points.
	for i := 1; i+1 < n; i++ {
		px, py := route[2*i-2], route[2*i-1]
		x, y := route[2*i], route[2*i+1]
		nx, ny := route[2*i+2], route[2*i+3]
		if r, ok := cornerRune(px, py, x, y, nx, ny); ok {
			c.Set(x, y, r)
		}
	}
}

func (c *Canvas) drawSegment(x0, y0, x1, y1 int) {
	if y0 == y1 {
		step := 1
		if x1 < x0 {
			step = -1
		}
		for x := x0; x != x1; x += step {
			c.Set(x, y0, lineH)
		}
		c.Set(x1, y1, lineH)
		return
	}
	step := 1
	if y1 < y0 {
		step = -1
	}
	for y := y0; y != y1; y += step {
		c.Set(x0, y, lineV)
	}
	c.Set(x1, y1, lineV)
}

// cornerRune picks the corner character for a bend at (x, y) between the
// previous and next points.
func cornerRune(px, py, x, y, nx, ny int) (rune, bool) {
	fromLeft := px < x
	fromRight := px > x
	fromAbove := py < y
	fromBelow := py > y
	toLeft := nx < x
	toRight := nx > x
	toAbove := ny < y
	toBelow := ny > y

	switch {
	case (fromLeft && toBelow) || (fromBelow && toLeft):
		return cornerTR, true
	case (fromLeft && toAbove) || (fromAbove && toLeft):
		return cornerBR, true
	case (fromRight && toBelow) || (fromBelow && toRight):
		return cornerTL, true
	case (fromRight && toAbove) || (fromAbove && toRight):
		return cornerBL, true
	}
	return 0, false
}
