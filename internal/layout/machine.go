// Package layout is the drag-validation state machine for the dashboard
// grid. It consumes drag events against a grid.Grid, derives the per-cell
// highlight state while a drag is in progress, and commits or rolls back
// geometry and payload changes when the drag ends.
//
// The machine is a synchronous reducer: Apply is a plain function call that
// returns a fresh State snapshot, and the only side effects are the explicit
// grid mutations performed at commit time. At most one drag is in flight at
// a time; a second Start* while a drag is active is ignored.
package layout

import (
	"dashgrid/internal/area"
	"dashgrid/internal/grid"
)

// Op identifies which drag operation is in flight.
type Op int

const (
	OpResize Op = iota + 1
	OpMove
)

// String returns the wire-friendly name of the operation.
func (o Op) String() string {
	switch o {
	case OpResize:
		return "resize"
	case OpMove:
		return "move"
	}
	return "unknown"
}

// DragState describes the drag in progress. (X, Y) is the anchor cell of
// the panel being dragged. Valid is false until a DragOver finds the
// current candidate placement free of conflicts.
type DragState struct {
	X, Y  int
	Op    Op
	Valid bool
}

// State is the externally visible snapshot, regenerated on every event.
// Panels always holds rows*columns shallow copies in stable row-major cell
// order; Active is nil when no drag is in progress.
type State struct {
	Active *DragState
	Panels []grid.Panel
}

// Machine drives one grid through the drag lifecycle
// Idle -> ResizeActive/MoveActive -> Idle.
type Machine struct {
	grid   *grid.Grid
	active *DragState
}

// NewMachine wraps g. The grid is owned by the machine for the duration;
// callers read it back through the State snapshots.
func NewMachine(g *grid.Grid) *Machine {
	return &Machine{grid: g}
}

// Apply consumes one event and returns the resulting snapshot. Events that
// make no sense in the current state (DragOver or End* while idle, Start*
// while a drag is active, an End* whose operation does not match) are
// no-ops returning the unchanged state.
func (m *Machine) Apply(ev Event) State {
	switch ev := ev.(type) {
	case StartResize:
		if m.active == nil {
			m.active = &DragState{X: ev.X, Y: ev.Y, Op: OpResize}
		}
	case StartMove:
		if m.active == nil {
			m.active = &DragState{X: ev.X, Y: ev.Y, Op: OpMove}
		}
	case DragOver:
		switch {
		case m.active == nil:
		case m.active.Op == OpResize:
			m.dragResize(ev.X, ev.Y)
		case m.active.Op == OpMove:
			m.dragMove(ev.X, ev.Y)
		}
	case EndResize:
		if m.active != nil && m.active.Op == OpResize {
			m.endResize(ev)
		}
	case EndMove:
		if m.active != nil && m.active.Op == OpMove {
			m.endMove(ev)
		}
	case UpdatePanelData:
		m.grid.UpdateAt(ev.X, ev.Y, func(p *grid.Panel) { p.Data = ev.Data })
	case ResetPanel:
		m.grid.UpdateAt(ev.X, ev.Y, func(p *grid.Panel) { p.Data = map[string]any{} })
	}
	return m.snapshot()
}

// Grid exposes the underlying registry, for callers that seed panels or
// payloads outside the event stream (e.g. initial layout construction).
func (m *Machine) Grid() *grid.Grid { return m.grid }

// State returns the current snapshot without consuming an event.
func (m *Machine) State() State { return m.snapshot() }

// dragResize recomputes adorners for a resize candidate spanning from the
// anchor to (x, y) inclusive. Resize only grows south-east from its anchor:
// a pointer north or west of the anchor rejects the candidate outright and
// deliberately leaves the previous highlight state stale.
func (m *Machine) dragResize(x, y int) {
	a := m.active
	if x < a.X || y < a.Y {
		a.Valid = false
		return
	}
	candidate := m.grid.Area(a.X, a.Y, x-a.X+1, y-a.Y+1)
	conflict := m.conflicts(candidate, m.grid.Area(a.X, a.Y, 1, 1))
	m.paint(candidate, conflict)
	a.Valid = conflict.CellCount() == 0
}

// dragMove recomputes adorners for moving the anchored panel so its anchor
// lands on (x, y). The painted candidate is the union of the panel's
// current footprint and the same-span rectangle at the target; a target
// clipped by the grid bounds invalidates the entire candidate.
func (m *Machine) dragMove(x, y int) {
	a := m.active
	anchor := m.grid.At(a.X, a.Y)
	original := m.grid.PanelArea(a.X, a.Y)
	expected := m.grid.Area(x, y, anchor.DX, anchor.DY)
	candidate := original.Union(expected)

	var conflict area.Area
	if expected.CellCount() < original.CellCount() {
		conflict = candidate
	} else {
		conflict = m.conflicts(expected, original)
	}
	m.paint(candidate, conflict)
	a.Valid = conflict.CellCount() == 0
}

// conflicts accumulates the footprints of panels that partially overlap the
// candidate area. For every cell outside exclude, the ENTIRE footprint of
// the panel recorded there joins the conflict set when it intersects the
// candidate without being fully contained in it; that footprint may extend
// past the candidate itself.
func (m *Machine) conflicts(candidate, exclude area.Area) area.Area {
	conflict := area.Empty(m.grid.Rows(), m.grid.Columns())
	for x, y := range exclude.Complement().Cells() {
		fp := m.grid.PanelArea(x, y)
		if fp.Intersect(candidate).CellCount() == 0 {
			continue
		}
		if candidate.Includes(fp) {
			continue
		}
		conflict = conflict.Union(fp)
	}
	return conflict
}

// paint rewrites every cell's adorner: neutral outside the candidate,
// highlighted inside it, then invalid wherever a conflict footprint lands.
// Conflict marks are applied last so they override the highlight.
func (m *Machine) paint(candidate, conflict area.Area) {
	for x, y := range candidate.Complement().Cells() {
		m.grid.UpdateAt(x, y, func(p *grid.Panel) { p.AdornerStatus = grid.AdornerNeutral })
	}
	for x, y := range candidate.Cells() {
		m.grid.UpdateAt(x, y, func(p *grid.Panel) { p.AdornerStatus = grid.AdornerHighlight })
	}
	for x, y := range conflict.Cells() {
		m.grid.UpdateAt(x, y, func(p *grid.Panel) { p.AdornerStatus = grid.AdornerInvalid })
	}
}

// endResize commits the candidate span if the drag was valid, then always
// clears transient state. Committing writes the new span onto the anchor
// and forces every other candidate cell back to a 1x1 record, reclaiming
// spans swallowed by the resize. Swallowed cells keep their old payloads
// until separately reset.
func (m *Machine) endResize(ev EndResize) {
	if m.active.Valid {
		dx, dy := ev.X-ev.StartX+1, ev.Y-ev.StartY+1
		claimed := m.grid.Area(ev.StartX, ev.StartY, dx, dy)
		m.grid.UpdateAt(ev.StartX, ev.StartY, func(p *grid.Panel) {
			p.DX, p.DY = dx, dy
		})
		for x, y := range claimed.Cells() {
			if x == ev.StartX && y == ev.StartY {
				continue
			}
			m.grid.UpdateAt(x, y, func(p *grid.Panel) { p.DX, p.DY = 1, 1 })
		}
	}
	m.clearDrag()
}

// endMove commits the relocation if the drag was valid, then always clears
// transient state. Whatever occupies the destination footprint is
// translated back to the source cell-by-cell (in row-major order, each step
// observing the previous steps' writes), then the dragged panel's record
// lands on the destination anchor. Cell-wise translation is only exercised
// for equal-span swaps; see DESIGN.md.
func (m *Machine) endMove(ev EndMove) {
	if m.active.Valid {
		deltaX, deltaY := ev.StartX-ev.X, ev.StartY-ev.Y
		start := m.grid.At(ev.StartX, ev.StartY)
		claimed := m.grid.Area(ev.X, ev.Y, start.DX, start.DY)
		for cx, cy := range claimed.Cells() {
			occupant := m.grid.At(cx, cy)
			m.grid.UpdateAt(cx+deltaX, cy+deltaY, func(p *grid.Panel) {
				*p = occupant
				p.X, p.Y = cx+deltaX, cy+deltaY
			})
		}
		m.grid.UpdateAt(ev.X, ev.Y, func(p *grid.Panel) {
			*p = start
			p.X, p.Y = ev.X, ev.Y
		})
	}
	m.clearDrag()
}

// clearDrag resets every adorner to neutral and returns to Idle. Runs on
// every End*, valid or not.
func (m *Machine) clearDrag() {
	for y := 1; y <= m.grid.Rows(); y++ {
		for x := 1; x <= m.grid.Columns(); x++ {
			m.grid.UpdateAt(x, y, func(p *grid.Panel) {
				p.AdornerStatus = grid.AdornerNeutral
			})
		}
	}
	m.active = nil
}

func (m *Machine) snapshot() State {
	panels := make([]grid.Panel, 0, m.grid.Rows()*m.grid.Columns())
	for p := range m.grid.Panels() {
		panels = append(panels, p)
	}
	var active *DragState
	if m.active != nil {
		copied := *m.active
		active = &copied
	}
	return State{Active: active, Panels: panels}
}
