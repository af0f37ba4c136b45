package ui

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"

	"dashgrid/internal/layout"
	"dashgrid/internal/telemetry"
)

// dragOrigin remembers where a drag started and the anchored panel's span at
// that moment, so esc can end the drag back on its original footprint.
type dragOrigin struct {
	x, y   int
	dx, dy int
	op     layout.Op
}

// AppModel is the root model: it owns the layout machine, the cursor, the
// board renderer, and an optional modal overlay. Every user intent becomes
// a layout.Event dispatched through dispatch, and the board redraws from
// the returned snapshot.
type AppModel struct {
	Machine   *layout.Machine
	Board     *BoardView
	Telemetry *telemetry.Exporter
	Keys      keyMap
	Help      help.Model
	Modal     View // nil when no modal is open

	origin *dragOrigin
	width  int
}

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// NewAppModel creates the root application model over a machine whose grid
// is rows-by-columns. The exporter may be nil (tracing disabled).
func NewAppModel(rows, cols int, m *layout.Machine, exp *telemetry.Exporter) *AppModel {
	app := &AppModel{
		Machine:   m,
		Board:     NewBoardView(rows, cols),
		Telemetry: exp,
		Keys:      defaultKeyMap,
		Help:      newHelp(),
	}
	// Seed the board with the idle snapshot so the first frame has panels.
	app.Board.State = m.State()
	return app
}

// AsTeaModel returns the model wrapped for tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.Help.Width = msg.Width
		return a, nil
	case DismissModalMsg:
		a.Modal = nil
		return a, nil
	case SubmitPanelDataMsg:
		a.Modal = nil
		a.Dispatch(layout.UpdatePanelData{X: msg.X, Y: msg.Y, Data: msg.Data})
		return a, nil
	case tea.KeyMsg:
		if a.Modal != nil {
			v, cmd := a.Modal.Update(msg)
			a.Modal = v
			return a, cmd
		}
		return a.handleKey(msg)
	}
	if a.Modal != nil {
		v, cmd := a.Modal.Update(msg)
		a.Modal = v
		return a, cmd
	}
	return a, nil
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.Keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.Keys.Up):
		a.moveCursor(0, -1)
	case key.Matches(msg, a.Keys.Down):
		a.moveCursor(0, 1)
	case key.Matches(msg, a.Keys.Left):
		a.moveCursor(-1, 0)
	case key.Matches(msg, a.Keys.Right):
		a.moveCursor(1, 0)

	case key.Matches(msg, a.Keys.Resize):
		a.startDrag(layout.OpResize)
	case key.Matches(msg, a.Keys.Move):
		a.startDrag(layout.OpMove)
	case key.Matches(msg, a.Keys.Commit):
		a.endDrag(a.Board.CursorX, a.Board.CursorY)
	case key.Matches(msg, a.Keys.Cancel):
		a.cancelDrag()

	case key.Matches(msg, a.Keys.Edit):
		if a.origin == nil {
			a.openEditModal()
			return a, a.Modal.Init()
		}
	case key.Matches(msg, a.Keys.Reset):
		if a.origin == nil {
			a.Dispatch(layout.ResetPanel{X: a.Board.CursorX, Y: a.Board.CursorY})
		}
	}
	return a, nil
}

// moveCursor shifts the cursor within grid bounds; while a drag is active
// every cursor move emits a DragOver so the highlights track the pointer.
func (a *AppModel) moveCursor(dx, dy int) {
	x := a.Board.CursorX + dx
	y := a.Board.CursorY + dy
	if x < 1 || x > a.Board.Columns || y < 1 || y > a.Board.Rows {
		return
	}
	a.Board.CursorX, a.Board.CursorY = x, y
	if a.origin != nil {
		a.Dispatch(layout.DragOver{X: x, Y: y})
	}
}

func (a *AppModel) startDrag(op layout.Op) {
	if a.origin != nil {
		return // one drag at a time
	}
	x, y := a.Board.CursorX, a.Board.CursorY
	p := a.Board.PanelAt(x, y)
	a.origin = &dragOrigin{x: x, y: y, dx: p.DX, dy: p.DY, op: op}
	switch op {
	case layout.OpResize:
		a.Dispatch(layout.StartResize{X: x, Y: y})
	case layout.OpMove:
		a.Dispatch(layout.StartMove{X: x, Y: y})
	}
	// Paint the initial candidate under the pointer, like the first
	// drag-over of a pointer drag.
	a.Dispatch(layout.DragOver{X: x, Y: y})
}

func (a *AppModel) endDrag(x, y int) {
	o := a.origin
	if o == nil {
		return
	}
	a.origin = nil
	switch o.op {
	case layout.OpResize:
		a.Dispatch(layout.EndResize{X: x, Y: y, StartX: o.x, StartY: o.y})
	case layout.OpMove:
		a.Dispatch(layout.EndMove{X: x, Y: y, StartX: o.x, StartY: o.y})
	}
}

// cancelDrag ends the drag back on its original footprint: a valid end
// there recommits the original geometry, an invalid one is discarded, and
// either way the engine resets the adorners.
func (a *AppModel) cancelDrag() {
	o := a.origin
	if o == nil {
		return
	}
	switch o.op {
	case layout.OpResize:
		a.endDrag(o.x+o.dx-1, o.y+o.dy-1)
	case layout.OpMove:
		a.endDrag(o.x, o.y)
	}
}

func (a *AppModel) openEditModal() {
	x, y := a.Board.CursorX, a.Board.CursorY
	current := ""
	if data := a.Board.PanelAt(x, y).Data; len(data) > 0 {
		if raw, err := json.Marshal(data); err == nil {
			current = string(raw)
		}
	}
	a.Modal = NewEditPanelModal(x, y, current)
}

// Dispatch feeds one event into the machine, records it as a span, and
// refreshes the board snapshot.
func (a *AppModel) Dispatch(ev layout.Event) layout.State {
	_, span := a.Telemetry.StartSpan(context.Background(), layout.EventName(ev))
	state := a.Machine.Apply(ev)
	if state.Active != nil {
		span.SetAttributes(
			attribute.String("drag.op", state.Active.Op.String()),
			attribute.Bool("drag.valid", state.Active.Valid),
		)
	}
	span.End()
	a.Board.State = state
	return state
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Modal != nil {
		return a.Modal.View()
	}
	title := Styles.Title.Render(fmt.Sprintf("dashgrid %dx%d", a.Board.Rows, a.Board.Columns))
	return title + "\n" + a.Board.Render() + "\n" + a.Help.View(a.Keys)
}
