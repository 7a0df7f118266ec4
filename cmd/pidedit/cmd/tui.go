package cmd

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/tbo47/control-diagram/canvas"
	"github.com/tbo47/control-diagram/diagram"
	"github.com/tbo47/control-diagram/editor"
	"github.com/tbo47/control-diagram/model"
)

// Cell-to-diagram scale. Terminal cells are roughly twice as tall as wide,
// so one cell covers 2 horizontal and 4 vertical diagram units.
const (
	scaleX       = 2.0
	scaleY       = 4.0
	paletteWidth = 18
)

// tui hosts the editor on a tcell screen: palette on the left, canvas on the
// right, status bar at the bottom. All diagram state lives in the editor;
// the tui only translates events and draws.
type tui struct {
	screen    tcell.Screen
	ed        *editor.Editor
	templates []diagram.ShapeTemplate
	filename  string

	leftDown  bool
	rightDown bool
	dirty     bool
	message   string
}

func newTUI(ed *editor.Editor, templates []diagram.ShapeTemplate, filename string) (*tui, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", diagram.ErrMissingContainer, err)
	}
	t := &tui{
		screen:    screen,
		ed:        ed,
		templates: templates,
		filename:  filename,
	}
	ed.OnChange(func() { t.dirty = true })
	return t, nil
}

func (t *tui) run() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", diagram.ErrMissingContainer, err)
	}
	defer t.screen.Fini()
	t.screen.EnableMouse()

	for {
		t.draw()
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if t.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			t.handleMouse(ev)
		}
	}
}

func (t *tui) handleKey(ev *tcell.EventKey) (quit bool) {
	switch {
	case ev.Key() == tcell.KeyEscape:
		ctl := t.ed.Controller()
		if ctl.State() == editor.StateContextMenu {
			ctl.CloseMenu()
		} else {
			ctl.Deselect()
		}
	case ev.Rune() == 'q', ev.Key() == tcell.KeyCtrlC:
		return true
	case ev.Rune() == 's':
		t.save()
	}
	return false
}

// handleMouse translates tcell button transitions into pointer events for
// the interaction controller.
func (t *tui) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	p, onCanvas := t.toDiagram(x, y)
	ctl := t.ed.Controller()

	leftPressed := buttons&tcell.Button1 != 0
	switch {
	case leftPressed && !t.leftDown:
		t.leftDown = true
		if ctl.State() == editor.StateContextMenu {
			if i, ok := t.menuEntryAt(x, y); ok {
				ctl.DispatchMenu(i)
				return
			}
		}
		if x < paletteWidth {
			t.pickPalette(y)
			return
		}
		ctl.PointerDown(p)
	case leftPressed && t.leftDown:
		ctl.PointerMove(p)
	case !leftPressed && t.leftDown:
		t.leftDown = false
		ctl.PointerUp(p, onCanvas)
	}

	// tcell reports Button2 as the secondary button.
	rightPressed := buttons&tcell.Button2 != 0
	if rightPressed && !t.rightDown && onCanvas {
		ctl.OpenContextMenu(p)
	}
	t.rightDown = rightPressed
}

// pickPalette places the clicked template in the middle of the visible
// canvas.
func (t *tui) pickPalette(row int) {
	idx := row - 1
	if idx < 0 || idx >= len(t.templates) {
		return
	}
	tpl := &t.templates[idx]
	width, height := t.screen.Size()
	cx := float64(width-paletteWidth) / 2 * scaleX
	cy := float64(height) / 2 * scaleY
	t.ed.AddShape(tpl, cx-tpl.Width/2, cy-tpl.Height/2)
}

func (t *tui) save() {
	if t.filename == "" {
		t.message = "no file to save to"
		return
	}
	data, err := t.ed.ExportJSON()
	if err != nil {
		t.message = err.Error()
		return
	}
	if err := os.WriteFile(t.filename, data, 0644); err != nil {
		t.message = err.Error()
		return
	}
	t.dirty = false
	t.message = "saved " + t.filename
}

// toDiagram maps a screen cell to diagram coordinates. The second result is
// false outside the canvas area.
func (t *tui) toDiagram(x, y int) (diagram.Point, bool) {
	width, height := t.screen.Size()
	p := diagram.Point{X: float64(x-paletteWidth) * scaleX, Y: float64(y) * scaleY}
	return p, x >= paletteWidth && x < width && y >= 0 && y < height-1
}

func toCell(p diagram.Point) (int, int) {
	return paletteWidth + int(p.X/scaleX), int(p.Y / scaleY)
}

func (t *tui) menuEntryAt(x, y int) (int, bool) {
	ctl := t.ed.Controller()
	target := ctl.MenuTarget()
	if target == nil {
		return 0, false
	}
	mx, my := toCell(diagram.Point{X: target.X + target.Template.Width, Y: target.Y})
	entries := ctl.MenuEntries()
	if x >= mx && x < mx+menuCols && y >= my && y < my+len(entries) {
		return y - my, true
	}
	return 0, false
}

const menuCols = 14

func (t *tui) draw() {
	width, height := t.screen.Size()
	if width <= paletteWidth || height < 2 {
		return
	}
	grid, err := canvas.New(width, height-1)
	if err != nil {
		return
	}
	t.drawPalette(grid)
	t.drawDiagram(grid)
	t.drawMenu(grid)

	t.screen.Clear()
	style := tcell.StyleDefault
	for y := 0; y < height-1; y++ {
		for x := 0; x < width; x++ {
			t.screen.SetContent(x, y, grid.Get(x, y), nil, style)
		}
	}
	t.drawStatus(width, height-1)
	t.screen.Show()
}

func (t *tui) drawPalette(grid *canvas.Canvas) {
	_, height := grid.Size()
	grid.DrawText(1, 0, "PALETTE")
	for i, tpl := range t.templates {
		if i+1 >= height {
			break
		}
		grid.DrawText(1, i+1, tpl.Name)
	}
	for y := 0; y < height; y++ {
		grid.Set(paletteWidth-1, y, '│')
	}
}

func (t *tui) drawDiagram(grid *canvas.Canvas) {
	ctl := t.ed.Controller()
	selected := ctl.Selected()
	for _, in := range t.ed.Model().Instances() {
		t.drawShape(grid, in, in == selected || ctl.State() == editor.StateConnecting)
	}
	for _, in := range t.ed.Model().Instances() {
		for _, c := range in.Connections() {
			grid.DrawPolyline(toCells(c.Route))
		}
	}
	if line := ctl.Line(); line != nil {
		grid.DrawPolyline(toCells(line.Points))
	}
}

func (t *tui) drawShape(grid *canvas.Canvas, in *model.Instance, showAnchors bool) {
	x, y := toCell(diagram.Point{X: in.X, Y: in.Y})
	w := int(in.Template.Width/scaleX) + 1
	h := int(in.Template.Height/scaleY) + 1
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	grid.DrawBox(x, y, w, h)
	if h > 1 && w > 2 {
		name := in.Template.Name
		if len(name) > w-2 {
			name = name[:w-2]
		}
		grid.DrawText(x+1, y+h/2, name)
	}
	if showAnchors {
		for _, a := range in.Anchors() {
			ax, ay := toCell(a)
			grid.Set(ax, ay, '●')
		}
	}
}

func (t *tui) drawMenu(grid *canvas.Canvas) {
	ctl := t.ed.Controller()
	target := ctl.MenuTarget()
	if target == nil {
		return
	}
	mx, my := toCell(diagram.Point{X: target.X + target.Template.Width, Y: target.Y})
	for i, entry := range ctl.MenuEntries() {
		label := entry.Label
		if len(label) > menuCols-2 {
			label = label[:menuCols-2]
		}
		grid.DrawText(mx, my+i, fmt.Sprintf("[%-*s]", menuCols-2, label))
	}
}

func (t *tui) drawStatus(width, row int) {
	ctl := t.ed.Controller()
	status := fmt.Sprintf(" %s", ctl.State())
	if t.dirty {
		status += " *"
	}
	if t.message != "" {
		status += "  " + t.message
	}
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		t.screen.SetContent(x, row, r, nil, style)
	}
}

func toCells(route []float64) []int {
	cells := make([]int, 0, len(route))
	for i := 0; i+1 < len(route); i += 2 {
		x, y := toCell(diagram.Point{X: route[i], Y: route[i+1]})
		cells = append(cells, x, y)
	}
	return cells
}
