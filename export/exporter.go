// Package export converts diagram documents to external formats for sharing
// outside the tool.
package export

import (
	"fmt"

	"github.com/tbo47/control-diagram/diagram"
)

// Format represents an export format
type Format string

const (
	// FormatJSON exports the canonical diagram document
	FormatJSON Format = "json"
	// FormatSVG exports a vector rendering of the diagram
	FormatSVG Format = "svg"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a diagram document to the target format
	Export(d diagram.Diagram) (string, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatSVG:
		return NewSVGExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "svg":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{FormatJSON, FormatSVG}
}
