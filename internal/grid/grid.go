// Package grid holds the panel registry for a fixed rows-by-columns board
// and bridges panel geometry to the cell-set algebra in internal/area.
//
// The registry always contains exactly rows*columns panel records, one per
// cell address, regardless of spans. A panel spanning several cells is
// represented by its anchor record carrying DX,DY > 1; the other cells it
// visually covers keep their own records. Overlap prevention is enforced
// transactionally by the layout state machine at commit time, not by this
// structure.
package grid

import (
	"fmt"
	"iter"

	"dashgrid/internal/area"
)

// Adorner statuses, the transient per-cell UI hint recomputed on every
// drag-move event and cleared on commit.
const (
	AdornerInvalid   = -1
	AdornerNeutral   = 0
	AdornerHighlight = 1
)

// Panel is one cell record. (X, Y) is the panel's anchor (top-left cell);
// DX, DY its span in columns and rows. Data is an opaque payload owned by
// the caller; the engine copies or clears it but never reads its shape.
type Panel struct {
	X, Y          int
	DX, DY        int
	AdornerStatus int
	Data          map[string]any
}

// Grid owns one Panel record per cell, in row-major storage order.
type Grid struct {
	rows, cols int
	cells      []Panel
}

// New builds a rows-by-columns grid. If initial does not contain exactly
// rows*columns records, every cell is initialized to a neutral 1x1 panel
// with an empty payload.
func New(rows, cols int, initial []Panel) *Grid {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", rows, cols))
	}
	g := &Grid{rows: rows, cols: cols}
	if len(initial) == rows*cols {
		g.cells = make([]Panel, len(initial))
		copy(g.cells, initial)
		return g
	}
	g.cells = make([]Panel, rows*cols)
	for i := range g.cells {
		g.cells[i] = Panel{
			X:    i%cols + 1,
			Y:    i/cols + 1,
			DX:   1,
			DY:   1,
			Data: map[string]any{},
		}
	}
	return g
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the grid width.
func (g *Grid) Columns() int { return g.cols }

// Area returns the cell set of an arbitrary rectangle anchored at (x, y)
// with span dx,dy. No panel needs to exist there.
func (g *Grid) Area(x, y, dx, dy int) area.Area {
	g.mustContain(x, y)
	return area.FromRectangle(g.rows, g.cols, area.Rect{X: x, Y: y, DX: dx, DY: dy})
}

// PanelArea returns the full footprint of whatever panel record is stored
// at anchor (x, y), using its own span, independent of any drag candidate.
func (g *Grid) PanelArea(x, y int) area.Area {
	p := g.cells[g.index(x, y)]
	return area.FromRectangle(g.rows, g.cols, area.Rect{X: p.X, Y: p.Y, DX: p.DX, DY: p.DY})
}

// At returns a shallow copy of the panel record stored at (x, y).
// All mutation goes through UpdateAt.
func (g *Grid) At(x, y int) Panel {
	return g.cells[g.index(x, y)]
}

// UpdateAt applies fn to the panel record at (x, y) in place and returns
// the updated record. This is the only mutation entry point.
func (g *Grid) UpdateAt(x, y int, fn func(*Panel)) Panel {
	i := g.index(x, y)
	fn(&g.cells[i])
	return g.cells[i]
}

// Panels iterates shallow copies of every panel record in storage order
// (row-major). The sequence is finite and restartable.
func (g *Grid) Panels() iter.Seq[Panel] {
	return func(yield func(Panel) bool) {
		for _, p := range g.cells {
			if !yield(p) {
				return
			}
		}
	}
}

func (g *Grid) index(x, y int) int {
	g.mustContain(x, y)
	return (y-1)*g.cols + (x - 1)
}

func (g *Grid) mustContain(x, y int) {
	if x < 1 || x > g.cols || y < 1 || y > g.rows {
		panic(fmt.Sprintf("grid: cell (%d,%d) outside %dx%d grid", x, y, g.rows, g.cols))
	}
}
