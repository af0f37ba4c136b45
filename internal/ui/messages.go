package ui

// DismissModalMsg is sent when the active modal should close without effect.
type DismissModalMsg struct{}

// SubmitPanelDataMsg is sent when the edit modal has a parsed payload ready
// to dispatch for the panel at (X, Y).
type SubmitPanelDataMsg struct {
	X, Y int
	Data map[string]any
}
