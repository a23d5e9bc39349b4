package grid

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrCapacity is returned when more items are supplied than the grid can hold.
	ErrCapacity = errors.New("grid: too many items for capacity")
	// ErrShape is returned for grids with fewer than one row or column.
	ErrShape = errors.New("grid: rows and columns must be positive")
	// ErrOutOfBounds is returned by Select for coordinates outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrNoOccupiedRow is returned when checked row navigation completes a full
	// cycle without finding an occupied cell in the cursor's column.
	ErrNoOccupiedRow = errors.New("grid: no occupied row in column")
	// ErrEmptyRow is returned when a carriage return is attempted on a row
	// without any occupied cell.
	ErrEmptyRow = errors.New("grid: carriage return on empty row")
)

// Position addresses a single cell.
type Position struct {
	Row int
	Col int
}

type slot[T any] struct {
	value  T
	filled bool
}

// Grid is a fixed-shape container of optional items with a cursor. Items are
// snake-filled: packed row-major from the first cell, so only the tail of the
// last occupied row can contain holes.
//
//	[ a, b, c, d ]
//	[ e, f, g, h ]
//	[ i, j       ]
type Grid[T any] struct {
	rows   int
	cols   int
	cells  [][]slot[T]
	cursor Position
}

// New builds a rows x cols grid and fills it row-major from items.
func New[T any](rows, cols int, items []T) (*Grid[T], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w (got %dx%d)", ErrShape, rows, cols)
	}
	g := &Grid[T]{rows: rows, cols: cols}
	if err := g.fill(items); err != nil {
		return nil, err
	}
	return g, nil
}

// MustNew is New for statically known layouts; it panics on error.
func MustNew[T any](rows, cols int, items []T) *Grid[T] {
	g, err := New(rows, cols, items)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid[T]) fill(items []T) error {
	if len(items) > g.Cap() {
		return fmt.Errorf("%w: %d items for %dx%d", ErrCapacity, len(items), g.rows, g.cols)
	}
	g.cells = make([][]slot[T], g.rows)
	for r := range g.cells {
		g.cells[r] = make([]slot[T], g.cols)
	}
	for i, item := range items {
		g.cells[i/g.cols][i%g.cols] = slot[T]{value: item, filled: true}
	}
	g.cursor = Position{}
	return nil
}

// Rows returns the fixed row count.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the fixed column count.
func (g *Grid[T]) Cols() int { return g.cols }

// Cap returns rows*cols.
func (g *Grid[T]) Cap() int { return g.rows * g.cols }

// Len returns the number of occupied cells.
func (g *Grid[T]) Len() int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.filled {
				n++
			}
		}
	}
	return n
}

// Cursor returns the selected cell position.
func (g *Grid[T]) Cursor() Position { return g.cursor }

// Select moves the cursor to (row, col).
func (g *Grid[T]) Select(row, col int) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	g.cursor = Position{Row: row, Col: col}
	return nil
}

// Get returns the item at (row, col). The boolean is false both for
// coordinates outside the grid and for empty cells inside it; callers that
// need to tell those apart must check bounds themselves.
func (g *Grid[T]) Get(row, col int) (T, bool) {
	var zero T
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return zero, false
	}
	cell := g.cells[row][col]
	if !cell.filled {
		return zero, false
	}
	return cell.value, true
}

// Selected returns the item under the cursor.
func (g *Grid[T]) Selected() (T, bool) {
	return g.Get(g.cursor.Row, g.cursor.Col)
}

// SelectedPtr returns a pointer to the item under the cursor, or nil when the
// cell is empty. The pointer stays valid for the lifetime of the grid.
func (g *Grid[T]) SelectedPtr() *T {
	return g.ptr(g.cursor.Row, g.cursor.Col)
}

// At returns the item at the row-major index idx.
func (g *Grid[T]) At(idx int) (T, bool) {
	if idx < 0 {
		var zero T
		return zero, false
	}
	return g.Get(idx/g.cols, idx%g.cols)
}

// AtPtr is the mutable form of At.
func (g *Grid[T]) AtPtr(idx int) *T {
	if idx < 0 {
		return nil
	}
	return g.ptr(idx/g.cols, idx%g.cols)
}

func (g *Grid[T]) ptr(row, col int) *T {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil
	}
	if !g.cells[row][col].filled {
		return nil
	}
	return &g.cells[row][col].value
}

func (g *Grid[T]) occupied(row, col int) bool {
	return g.cells[row][col].filled
}

// Flatten returns the occupied items in row-major order, skipping holes.
func (g *Grid[T]) Flatten() []T {
	out := make([]T, 0, g.Len())
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.filled {
				out = append(out, cell.value)
			}
		}
	}
	return out
}

// Each calls fn for every cell in row-major order, including empty ones.
func (g *Grid[T]) Each(fn func(pos Position, item T, ok bool)) {
	for r, row := range g.cells {
		for c, cell := range row {
			fn(Position{Row: r, Col: c}, cell.value, cell.filled)
		}
	}
}

// MarshalJSON encodes the grid as the flat sequence of its occupied values.
func (g *Grid[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Flatten())
}

// UnmarshalJSON rebuilds the grid from a flat sequence, keeping the receiver's
// shape. A zero-value grid becomes a single row wide enough for every item.
func (g *Grid[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if g.rows < 1 || g.cols < 1 {
		g.rows = 1
		g.cols = len(items)
		if g.cols == 0 {
			g.cols = 1
		}
	}
	return g.fill(items)
}
