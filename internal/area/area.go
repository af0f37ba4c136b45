// Package area implements immutable bitmask sets of cells over a fixed
// rows-by-columns grid. An Area is produced by converting a rectangle or by
// combining existing Areas; no operation mutates its operands, so Areas can
// be reused freely across several algebra expressions in one computation.
//
// Coordinates are 1-based: x addresses a column in [1, columns], y a row in
// [1, rows]. Cell (x, y) maps to linear offset (y-1)*columns + (x-1), so
// iteration order is row-major.
package area

import (
	"fmt"
	"iter"
	"math/bits"
)

// Rect describes a rectangle of cells anchored at its top-left corner.
// Zero or negative fields fall back to the defaults x=1, y=1, dx=1, dy=1,
// matching the common case of a single-cell rectangle at the origin.
type Rect struct {
	X, Y   int // anchor (top-left cell)
	DX, DY int // span in columns / rows
}

func (r Rect) normalized() Rect {
	if r.X < 1 {
		r.X = 1
	}
	if r.Y < 1 {
		r.Y = 1
	}
	if r.DX < 1 {
		r.DX = 1
	}
	if r.DY < 1 {
		r.DY = 1
	}
	return r
}

// Area is an immutable set of grid cells backed by a bitmask.
// The zero value is not usable; construct Areas with Empty or FromRectangle.
type Area struct {
	rows, cols int
	words      []uint64
}

// Empty returns the empty Area over a rows-by-columns universe.
func Empty(rows, cols int) Area {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("area: invalid universe %dx%d", rows, cols))
	}
	return Area{rows: rows, cols: cols, words: make([]uint64, (rows*cols+63)/64)}
}

// FromRectangle returns the Area covering r clipped to the grid: a cell
// (c, row) is set iff row is in [y, y+dy) and c is in [x, x+dx) and both lie
// inside the universe. Coordinates outside the grid are simply excluded.
func FromRectangle(rows, cols int, r Rect) Area {
	r = r.normalized()
	a := Empty(rows, cols)
	for row := r.Y; row < r.Y+r.DY && row <= rows; row++ {
		for c := r.X; c < r.X+r.DX && c <= cols; c++ {
			i := (row-1)*cols + (c - 1)
			a.words[i/64] |= 1 << (i % 64)
		}
	}
	return a
}

// Rows returns the height of the Area's universe.
func (a Area) Rows() int { return a.rows }

// Columns returns the width of the Area's universe.
func (a Area) Columns() int { return a.cols }

// CellCount returns the number of set cells.
func (a Area) CellCount() int {
	n := 0
	for _, w := range a.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Cells iterates every set cell as an (x, y) pair in row-major order.
// The sequence is finite and restartable.
func (a Area) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < a.rows*a.cols; i++ {
			if a.words[i/64]&(1<<(i%64)) == 0 {
				continue
			}
			if !yield(i%a.cols+1, i/a.cols+1) {
				return
			}
		}
	}
}

// Contains reports whether the single cell (x, y) is set.
// Cells outside the universe are never set.
func (a Area) Contains(x, y int) bool {
	if x < 1 || x > a.cols || y < 1 || y > a.rows {
		return false
	}
	i := (y-1)*a.cols + (x - 1)
	return a.words[i/64]&(1<<(i%64)) != 0
}

// Intersect returns the cells present in both a and b.
func (a Area) Intersect(b Area) Area {
	a.mustShareUniverse(b)
	out := Empty(a.rows, a.cols)
	for i := range a.words {
		out.words[i] = a.words[i] & b.words[i]
	}
	return out
}

// Union returns the cells present in either a or b.
func (a Area) Union(b Area) Area {
	a.mustShareUniverse(b)
	out := Empty(a.rows, a.cols)
	for i := range a.words {
		out.words[i] = a.words[i] | b.words[i]
	}
	return out
}

// Complement returns every universe cell not in a.
func (a Area) Complement() Area {
	out := Empty(a.rows, a.cols)
	for i := range a.words {
		out.words[i] = ^a.words[i]
	}
	// Mask off padding bits past the last cell so Equal and CellCount
	// stay meaningful.
	if rem := (a.rows * a.cols) % 64; rem != 0 {
		out.words[len(out.words)-1] &= (1 << rem) - 1
	}
	return out
}

// Includes reports whether every cell of b is also in a.
// Vacuously true when b is empty.
func (a Area) Includes(b Area) bool {
	a.mustShareUniverse(b)
	for i := range a.words {
		if b.words[i]&^a.words[i] != 0 {
			return false
		}
	}
	return true
}

// IsIncludedIn reports whether every cell of a is also in b.
func (a Area) IsIncludedIn(b Area) bool { return b.Includes(a) }

// Equal reports whether a and b are the same set over the same universe.
func (a Area) Equal(b Area) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.words {
		if a.words[i] != b.words[i] {
			return false
		}
	}
	return true
}

func (a Area) mustShareUniverse(b Area) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(fmt.Sprintf("area: mismatched universes %dx%d and %dx%d",
			a.rows, a.cols, b.rows, b.cols))
	}
}
