// Package catalog consumes shape catalog documents: JSON sets of shape
// templates published separately from the editor. Catalog entries are
// defaulted field by field, so a sloppy catalog still loads.
package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tbo47/control-diagram/diagram"
)

// Document is the catalog wire format.
type Document struct {
	Dataset     string            `json:"dataset,omitempty"`
	Description string            `json:"description,omitempty"`
	Author      string            `json:"author,omitempty"`
	License     string            `json:"license,omitempty"`
	Version     string            `json:"version,omitempty"`
	Data        []json.RawMessage `json:"data"`
}

// Parse decodes a catalog document and returns its templates. Malformed or
// missing fields never abort the load: an entry that cannot be decoded at
// all becomes an anchorless default template, and missing fields are filled
// with their defaults (anchors→[], path→"", type→valve, name→"Unnamed").
func Parse(data []byte) ([]diagram.ShapeTemplate, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	templates := make([]diagram.ShapeTemplate, 0, len(doc.Data))
	for i, raw := range doc.Data {
		var tpl diagram.ShapeTemplate
		if err := json.Unmarshal(raw, &tpl); err != nil {
			slog.Warn("malformed catalog entry, using defaults", "index", i, "error", err)
			tpl = diagram.ShapeTemplate{}
		}
		applyDefaults(&tpl)
		templates = append(templates, tpl)
	}
	return templates, nil
}

func applyDefaults(tpl *diagram.ShapeTemplate) {
	if tpl.Name == "" {
		tpl.Name = "Unnamed"
	}
	if tpl.Type == "" {
		tpl.Type = diagram.ShapeValve
	}
	if tpl.Anchors == nil {
		tpl.Anchors = []diagram.Anchor{}
	}
}
