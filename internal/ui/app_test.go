package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"dashgrid/internal/grid"
	"dashgrid/internal/layout"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newTestApp(rows, cols int) (*AppModel, tea.Model) {
	m := layout.NewMachine(grid.New(rows, cols, nil))
	app := NewAppModel(rows, cols, m, nil)
	return app, app.AsTeaModel()
}

func TestApp_CursorMovesWithinBounds(t *testing.T) {
	app, model := newTestApp(2, 2)

	model.Update(keyMsg("l"))
	if app.Board.CursorX != 2 || app.Board.CursorY != 1 {
		t.Fatalf("after l: cursor = (%d,%d), want (2,1)", app.Board.CursorX, app.Board.CursorY)
	}

	// Right edge: no further movement.
	model.Update(keyMsg("l"))
	if app.Board.CursorX != 2 {
		t.Errorf("l at right edge: cursor x = %d, want 2", app.Board.CursorX)
	}

	model.Update(keyMsg("j"))
	model.Update(keyMsg("j"))
	if app.Board.CursorY != 2 {
		t.Errorf("j at bottom edge: cursor y = %d, want 2", app.Board.CursorY)
	}

	model.Update(keyMsg("h"))
	model.Update(keyMsg("k"))
	if app.Board.CursorX != 1 || app.Board.CursorY != 1 {
		t.Errorf("cursor = (%d,%d), want (1,1)", app.Board.CursorX, app.Board.CursorY)
	}
}

func TestApp_ResizeDragLifecycle(t *testing.T) {
	app, model := newTestApp(3, 3)

	model.Update(keyMsg("r"))
	if app.Board.State.Active == nil {
		t.Fatal("r must start a resize drag")
	}
	if !app.Board.State.Active.Valid {
		t.Error("1x1 candidate on an empty grid must be valid")
	}

	// Grow the candidate to 2x2, then commit.
	model.Update(keyMsg("l"))
	model.Update(keyMsg("j"))
	model.Update(keyMsg("enter"))

	s := app.Board.State
	if s.Active != nil {
		t.Fatal("enter must end the drag")
	}
	anchor := app.Board.PanelAt(1, 1)
	if anchor.DX != 2 || anchor.DY != 2 {
		t.Errorf("committed span = %dx%d, want 2x2", anchor.DX, anchor.DY)
	}
	for _, p := range s.Panels {
		if p.AdornerStatus != grid.AdornerNeutral {
			t.Errorf("panel (%d,%d) adorner = %d after commit, want 0", p.X, p.Y, p.AdornerStatus)
		}
	}
}

func TestApp_EscRestoresOriginalGeometry(t *testing.T) {
	app, model := newTestApp(3, 3)

	// Commit a 2x1 panel at (1,1) first.
	model.Update(keyMsg("r"))
	model.Update(keyMsg("l"))
	model.Update(keyMsg("enter"))
	if app.Board.PanelAt(1, 1).DX != 2 {
		t.Fatal("setup: expected a 2x1 panel at (1,1)")
	}

	// Start another resize, drag somewhere, then cancel.
	app.Board.CursorX, app.Board.CursorY = 1, 1
	model.Update(keyMsg("r"))
	model.Update(keyMsg("j"))
	model.Update(keyMsg("esc"))

	s := app.Board.State
	if s.Active != nil {
		t.Fatal("esc must end the drag")
	}
	anchor := app.Board.PanelAt(1, 1)
	if anchor.DX != 2 || anchor.DY != 1 {
		t.Errorf("span after cancel = %dx%d, want the original 2x1", anchor.DX, anchor.DY)
	}
}

func TestApp_MoveDragSwapsPayloads(t *testing.T) {
	app, model := newTestApp(2, 2)
	app.Dispatch(layout.UpdatePanelData{X: 1, Y: 1, Data: map[string]any{"title": "cpu"}})
	app.Dispatch(layout.UpdatePanelData{X: 2, Y: 1, Data: map[string]any{"title": "mem"}})

	model.Update(keyMsg("m"))
	model.Update(keyMsg("l"))
	model.Update(keyMsg("enter"))

	if got := app.Board.PanelAt(2, 1).Data["title"]; got != "cpu" {
		t.Errorf("destination payload = %v, want cpu", got)
	}
	if got := app.Board.PanelAt(1, 1).Data["title"]; got != "mem" {
		t.Errorf("source payload = %v, want mem", got)
	}
}

func TestApp_SecondDragKeyIgnoredWhileActive(t *testing.T) {
	app, model := newTestApp(2, 2)

	model.Update(keyMsg("r"))
	model.Update(keyMsg("m"))

	if app.Board.State.Active == nil || app.Board.State.Active.Op != layout.OpResize {
		t.Error("m during a resize drag must not replace the active operation")
	}
}

func TestApp_EditModalRoundTrip(t *testing.T) {
	app, model := newTestApp(2, 2)

	model.Update(keyMsg("e"))
	if app.Modal == nil {
		t.Fatal("e must open the edit modal")
	}

	modal := app.Modal.(*EditPanelModal)
	modal.input.SetValue(`{"title":"disk"}`)
	_, cmd := model.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter with valid JSON must produce a submit message")
	}
	model.Update(cmd())

	if app.Modal != nil {
		t.Error("modal must close after submit")
	}
	if got := app.Board.PanelAt(1, 1).Data["title"]; got != "disk" {
		t.Errorf("payload title = %v, want disk", got)
	}
}

func TestApp_EditModalRejectsBadJSON(t *testing.T) {
	app, model := newTestApp(2, 2)

	model.Update(keyMsg("e"))
	modal := app.Modal.(*EditPanelModal)
	modal.input.SetValue(`{{nope`)
	_, cmd := model.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("invalid JSON must not submit")
	}
	if app.Modal == nil {
		t.Error("modal must stay open on a parse error")
	}
	if modal.lastErr == nil {
		t.Error("parse error must be surfaced in the modal")
	}

	// esc dismisses regardless.
	_, cmd = model.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc must produce a dismiss message")
	}
	model.Update(cmd())
	if app.Modal != nil {
		t.Error("modal must close on esc")
	}
}

func TestApp_ResetClearsPayload(t *testing.T) {
	app, model := newTestApp(2, 2)
	app.Dispatch(layout.UpdatePanelData{X: 1, Y: 1, Data: map[string]any{"title": "cpu"}})

	model.Update(keyMsg("x"))
	if len(app.Board.PanelAt(1, 1).Data) != 0 {
		t.Error("x must clear the panel payload")
	}
}

func TestApp_ViewRendersBoardAndStatus(t *testing.T) {
	app, model := newTestApp(2, 2)
	app.Dispatch(layout.UpdatePanelData{X: 1, Y: 1, Data: map[string]any{"title": "cpu"}})

	out := model.View()
	if !strings.Contains(out, "dashgrid 2x2") {
		t.Error("view must include the title line")
	}
	if !strings.Contains(out, "cpu") {
		t.Error("view must render panel titles")
	}

	model.Update(keyMsg("r"))
	out = model.View()
	if !strings.Contains(out, "resize from (1,1)") {
		t.Error("view must surface the active drag status")
	}
}
