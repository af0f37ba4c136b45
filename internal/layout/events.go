package layout

// Event is a discrete drag or data event consumed by the Machine. Events are
// produced by the input layer (key/mouse handling) after pointer pixels have
// already been translated to grid cells.
type Event interface{ event() }

// StartResize begins a resize drag anchored at the panel at (X, Y).
type StartResize struct{ X, Y int }

// StartMove begins a move drag anchored at the panel at (X, Y).
type StartMove struct{ X, Y int }

// DragOver reports the drag pointer entering cell (X, Y) while a drag is
// active. It recomputes the per-cell adorner statuses without committing.
type DragOver struct{ X, Y int }

// EndResize terminates a resize drag at (X, Y). (StartX, StartY) is the
// anchor the drag began on. The candidate span is committed only if the
// last DragOver marked the drag valid.
type EndResize struct{ X, Y, StartX, StartY int }

// EndMove terminates a move drag at (X, Y). (StartX, StartY) is the anchor
// the drag began on. The relocation is committed only if the last DragOver
// marked the drag valid.
type EndMove struct{ X, Y, StartX, StartY int }

// UpdatePanelData replaces the opaque payload of the panel at (X, Y).
// Valid in any state; never touches geometry or adorners.
type UpdatePanelData struct {
	X, Y int
	Data map[string]any
}

// ResetPanel clears the opaque payload of the panel at (X, Y).
type ResetPanel struct{ X, Y int }

// EventName returns a stable name for an event, used for span and log
// labels.
func EventName(ev Event) string {
	switch ev.(type) {
	case StartResize:
		return "start_resize"
	case StartMove:
		return "start_move"
	case DragOver:
		return "drag_over"
	case EndResize:
		return "end_resize"
	case EndMove:
		return "end_move"
	case UpdatePanelData:
		return "update_panel_data"
	case ResetPanel:
		return "reset_panel"
	}
	return "unknown"
}

func (StartResize) event()     {}
func (StartMove) event()       {}
func (DragOver) event()        {}
func (EndResize) event()       {}
func (EndMove) event()         {}
func (UpdatePanelData) event() {}
func (ResetPanel) event()      {}
