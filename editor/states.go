package editor

// State represents the interaction controller's current gesture state.
type State int

const (
	StateIdle          State = iota // Nothing selected, no gesture active
	StateShapeSelected              // A shape is selected, its anchors visible
	StateConnecting                 // One in-progress line exists
	StateResizing                   // Resize affordance active on the selected shape
	StateContextMenu                // Context menu open over a shape
)

// String returns the state name for display.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateShapeSelected:
		return "SELECTED"
	case StateConnecting:
		return "CONNECTING"
	case StateResizing:
		return "RESIZING"
	case StateContextMenu:
		return "MENU"
	default:
		return "UNKNOWN"
	}
}
