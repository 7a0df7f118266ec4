package diagram

import "encoding/json"

// The document wire format is a bare JSON array of shape snapshots, so the
// Diagram wrapper marshals transparently to and from its Shapes slice.

// MarshalJSON encodes the diagram as a JSON array of shape snapshots.
func (d Diagram) MarshalJSON() ([]byte, error) {
	if d.Shapes == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.Shapes)
}

// UnmarshalJSON decodes a JSON array of shape snapshots.
func (d *Diagram) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &d.Shapes)
}
