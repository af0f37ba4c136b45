package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsEveryCell(t *testing.T) {
	g := New(2, 3, nil)

	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Columns())

	var panels []Panel
	for p := range g.Panels() {
		panels = append(panels, p)
	}
	require.Len(t, panels, 6)

	// Row-major storage order with 1x1 neutral defaults.
	wantAnchors := [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {2, 2}, {3, 2}}
	for i, p := range panels {
		assert.Equal(t, wantAnchors[i][0], p.X, "panel %d anchor x", i)
		assert.Equal(t, wantAnchors[i][1], p.Y, "panel %d anchor y", i)
		assert.Equal(t, 1, p.DX)
		assert.Equal(t, 1, p.DY)
		assert.Equal(t, AdornerNeutral, p.AdornerStatus)
		assert.NotNil(t, p.Data)
		assert.Empty(t, p.Data)
	}
}

func TestNew_WrongInitialLengthFallsBackToDefaults(t *testing.T) {
	g := New(2, 2, []Panel{{X: 1, Y: 1, DX: 2, DY: 2}})
	p := g.At(1, 1)
	assert.Equal(t, 1, p.DX, "short initial slice must be discarded")
	assert.Equal(t, 1, p.DY)
}

func TestNew_ExactInitialIsKept(t *testing.T) {
	initial := []Panel{
		{X: 1, Y: 1, DX: 2, DY: 1, Data: map[string]any{"id": "wide"}},
		{X: 2, Y: 1, DX: 1, DY: 1, Data: map[string]any{}},
		{X: 1, Y: 2, DX: 1, DY: 1, Data: map[string]any{}},
		{X: 2, Y: 2, DX: 1, DY: 1, Data: map[string]any{}},
	}
	g := New(2, 2, initial)
	assert.Equal(t, 2, g.At(1, 1).DX)
	assert.Equal(t, "wide", g.At(1, 1).Data["id"])
}

func TestPanelArea_UsesStoredSpan(t *testing.T) {
	g := New(2, 2, nil)
	g.UpdateAt(1, 2, func(p *Panel) { p.DX = 2 })

	fp := g.PanelArea(1, 2)
	require.Equal(t, 2, fp.CellCount())
	assert.True(t, fp.Contains(1, 2))
	assert.True(t, fp.Contains(2, 2))
	assert.False(t, fp.Contains(1, 1))

	// A non-anchor cell the panel covers still reports its own 1x1 record.
	assert.Equal(t, 1, g.PanelArea(2, 2).CellCount())
}

func TestUpdateAt_IsTheOnlyMutationPath(t *testing.T) {
	g := New(2, 2, nil)

	got := g.UpdateAt(2, 1, func(p *Panel) {
		p.AdornerStatus = AdornerHighlight
		p.Data = map[string]any{"foo": "bar"}
	})
	assert.Equal(t, AdornerHighlight, got.AdornerStatus)
	assert.Equal(t, "bar", g.At(2, 1).Data["foo"])

	// At hands out copies: mutating one must not write through.
	p := g.At(2, 1)
	p.AdornerStatus = AdornerInvalid
	assert.Equal(t, AdornerHighlight, g.At(2, 1).AdornerStatus)
}

func TestOutOfBoundsPanics(t *testing.T) {
	g := New(2, 2, nil)
	assert.Panics(t, func() { g.At(0, 1) })
	assert.Panics(t, func() { g.At(3, 1) })
	assert.Panics(t, func() { g.UpdateAt(1, 3, func(*Panel) {}) })
	assert.Panics(t, func() { g.Area(1, 0, 1, 1) })
}
