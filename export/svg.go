package export

import (
	"fmt"
	"strings"

	"github.com/tbo47/control-diagram/diagram"
)

// SVGExporter renders a diagram document as an SVG drawing: each shape's
// template path translated to its position, plus one polyline per
// connection.
type SVGExporter struct{}

// NewSVGExporter creates a new SVG exporter
func NewSVGExporter() *SVGExporter {
	return &SVGExporter{}
}

// Export converts a diagram document to SVG
func (e *SVGExporter) Export(d diagram.Diagram) (string, error) {
	minX, minY, maxX, maxY := bounds(d)
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g">`+"\n",
		minX-margin, minY-margin, maxX-minX+2*margin, maxY-minY+2*margin)

	for _, s := range d.Shapes {
		fmt.Fprintf(&b, `  <g transform="translate(%g %g)" data-shape-id="%d">`+"\n", s.X, s.Y, s.ID)
		if s.Template.Path != "" {
			fmt.Fprintf(&b, `    <path d="%s" fill="none" stroke="black"/>`+"\n", s.Template.Path)
		} else {
			fmt.Fprintf(&b, `    <rect width="%g" height="%g" fill="none" stroke="black"/>`+"\n",
				s.Template.Width, s.Template.Height)
		}
		fmt.Fprintf(&b, "  </g>\n")
	}
	for _, s := range d.Shapes {
		for _, c := range s.Connections {
			fmt.Fprintf(&b, `  <polyline points="%s" fill="none" stroke="black"/>`+"\n", points(c.Route))
		}
	}
	b.WriteString("</svg>\n")
	return b.String(), nil
}

const margin = 10.0

func points(route []float64) string {
	var b strings.Builder
	for i := 0; i+1 < len(route); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%g,%g", route[i], route[i+1])
	}
	return b.String()
}

func bounds(d diagram.Diagram) (minX, minY, maxX, maxY float64) {
	if len(d.Shapes) == 0 {
		return 0, 0, 100, 100
	}
	minX, minY = d.Shapes[0].X, d.Shapes[0].Y
	maxX, maxY = minX, minY
	for _, s := range d.Shapes {
		minX = min(minX, s.X)
		minY = min(minY, s.Y)
		maxX = max(maxX, s.X+s.Template.Width)
		maxY = max(maxY, s.Y+s.Template.Height)
		for _, c := range s.Connections {
			for i := 0; i+1 < len(c.Route); i += 2 {
				minX = min(minX, c.Route[i])
				minY = min(minY, c.Route[i+1])
				maxX = max(maxX, c.Route[i])
				maxY = max(maxY, c.Route[i+1])
			}
		}
	}
	return
}

// GetFileExtension returns the file extension for SVG
func (e *SVGExporter) GetFileExtension() string {
	return ".svg"
}

// GetFormatName returns the format name
func (e *SVGExporter) GetFormatName() string {
	return "SVG"
}
