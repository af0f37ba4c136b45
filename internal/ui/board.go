package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dashgrid/internal/grid"
	"dashgrid/internal/jsonutil"
	"dashgrid/internal/layout"
)

// cellWidth is the inner width of one rendered cell.
const cellWidth = 9

// BoardView renders a layout.State snapshot as a matrix of styled cells.
// It is a pure function of the snapshot plus the cursor position; it never
// touches the engine.
type BoardView struct {
	Rows, Columns    int
	CursorX, CursorY int
	State            layout.State
}

// NewBoardView creates a board renderer for a rows-by-columns grid with the
// cursor on (1, 1).
func NewBoardView(rows, cols int) *BoardView {
	return &BoardView{Rows: rows, Columns: cols, CursorX: 1, CursorY: 1}
}

// PanelAt returns the snapshot record for cell (x, y).
func (b *BoardView) PanelAt(x, y int) grid.Panel {
	return b.State.Panels[(y-1)*b.Columns+(x-1)]
}

// Render draws the full board.
func (b *BoardView) Render() string {
	var rows []string
	for y := 1; y <= b.Rows; y++ {
		cells := make([]string, 0, b.Columns)
		for x := 1; x <= b.Columns; x++ {
			cells = append(cells, b.renderCell(x, y))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	out := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if status := b.statusLine(); status != "" {
		out += "\n" + status
	}
	return out
}

func (b *BoardView) renderCell(x, y int) string {
	p := b.PanelAt(x, y)

	label := jsonutil.GetStringOr(p.Data, "title", "·")
	if len(label) > cellWidth {
		label = label[:cellWidth]
	}
	badge := ""
	if p.DX > 1 || p.DY > 1 {
		badge = fmt.Sprintf("%dx%d", p.DX, p.DY)
	}
	content := padCenter(label, cellWidth) + "\n" + padCenter(badge, cellWidth)

	style := Styles.CellNeutral
	switch p.AdornerStatus {
	case grid.AdornerHighlight:
		style = Styles.CellHighlight
	case grid.AdornerInvalid:
		style = Styles.CellInvalid
	}
	if x == b.CursorX && y == b.CursorY {
		style = Styles.CellCursor.Foreground(style.GetForeground())
	}
	return style.Render(content)
}

// statusLine summarizes the drag in progress, or names the anchored panel.
func (b *BoardView) statusLine() string {
	if b.State.Active == nil {
		return Styles.Hint.Render(fmt.Sprintf("cursor (%d,%d)", b.CursorX, b.CursorY))
	}
	a := b.State.Active
	verdict := "invalid"
	style := Styles.StatusBad
	if a.Valid {
		verdict = "ok"
		style = Styles.StatusOK
	}
	return style.Render(
		fmt.Sprintf("%s from (%d,%d): %s", a.Op, a.X, a.Y, verdict))
}

func padCenter(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
