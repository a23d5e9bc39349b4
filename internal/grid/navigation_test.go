package grid

import (
	"errors"
	"testing"
)

func TestNextColFullRow(t *testing.T) {
	g := newSnakeGrid(t, 0, 0)
	expectSelected(t, g, 0)
	for _, want := range []int{1, 2, 0} {
		g.NextCol()
		expectSelected(t, g, want)
	}
}

func TestNextColCheckedFullRow(t *testing.T) {
	g := newSnakeGrid(t, 0, 0)
	for _, want := range []int{1, 2, 0} {
		g.NextColChecked()
		expectSelected(t, g, want)
	}
}

func TestPrevColFullRow(t *testing.T) {
	g := newSnakeGrid(t, 0, 0)
	for _, want := range []int{2, 1, 0} {
		g.PrevCol()
		expectSelected(t, g, want)
	}
}

func TestPrevColCheckedFullRow(t *testing.T) {
	g := newSnakeGrid(t, 0, 0)
	for _, want := range []int{2, 1, 0} {
		if err := g.PrevColChecked(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expectSelected(t, g, want)
	}
}

func TestNextColShortRowVisitsHole(t *testing.T) {
	g := newSnakeGrid(t, 1, 0)
	expectSelected(t, g, 3)
	g.NextCol()
	expectSelected(t, g, 4)
	g.NextCol()
	expectEmpty(t, g)
	g.NextCol()
	expectSelected(t, g, 3)
}

func TestNextColCheckedShortRowResetsToFirstColumn(t *testing.T) {
	g := newSnakeGrid(t, 1, 0)
	g.NextColChecked()
	expectSelected(t, g, 4)
	g.NextColChecked()
	expectSelected(t, g, 3)
	if g.Cursor() != (Position{Row: 1, Col: 0}) {
		t.Fatalf("expected reset to column 0 on the same row, got %+v", g.Cursor())
	}
}

func TestPrevColShortRowVisitsHole(t *testing.T) {
	g := newSnakeGrid(t, 1, 0)
	g.PrevCol()
	expectEmpty(t, g)
	g.PrevCol()
	expectSelected(t, g, 4)
	g.PrevCol()
	expectSelected(t, g, 3)
}

func TestPrevColCheckedShortRowSkipsHole(t *testing.T) {
	g := newSnakeGrid(t, 1, 0)
	if err := g.PrevColChecked(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectSelected(t, g, 4)
}

// Stepping right from (1, 1): the unchecked move lands on the hole, the
// checked move falls back to column 0.
func TestHoleScenarioCheckedVersusUnchecked(t *testing.T) {
	g := newSnakeGrid(t, 1, 1)
	g.NextCol()
	expectEmpty(t, g)

	g = newSnakeGrid(t, 1, 1)
	g.NextColChecked()
	expectSelected(t, g, 3)
}

func TestCarriageReturnFromHole(t *testing.T) {
	g := newSnakeGrid(t, 1, 2)
	if err := g.CarriageReturn(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Cursor() != (Position{Row: 1, Col: 1}) {
		t.Fatalf("expected cursor at (1, 1), got %+v", g.Cursor())
	}
}

func TestCarriageReturnOnOccupiedIsNoOp(t *testing.T) {
	g := newSnakeGrid(t, 1, 1)
	if err := g.CarriageReturn(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Cursor() != (Position{Row: 1, Col: 1}) {
		t.Fatalf("expected cursor unchanged, got %+v", g.Cursor())
	}
}

func TestCarriageReturnEmptyRowFails(t *testing.T) {
	g := MustNew(2, 3, []int{1})
	_ = g.Select(1, 0)
	if err := g.CarriageReturn(); !errors.Is(err, ErrEmptyRow) {
		t.Fatalf("expected ErrEmptyRow, got %v", err)
	}
	if err := g.PrevColChecked(); !errors.Is(err, ErrEmptyRow) {
		t.Fatalf("expected ErrEmptyRow from PrevColChecked, got %v", err)
	}
	if g.Cursor() != (Position{Row: 1, Col: 0}) {
		t.Fatalf("expected cursor restored, got %+v", g.Cursor())
	}
}

func TestNextRowCheckedSkipsHoles(t *testing.T) {
	g := newSnakeGrid(t, 0, 1)
	if err := g.NextRowChecked(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectSelected(t, g, 4)
	if err := g.NextRowChecked(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectSelected(t, g, 1)

	// column 2 only has an item on row 0, so the move wraps back onto it
	g = newSnakeGrid(t, 0, 2)
	if err := g.NextRowChecked(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Cursor() != (Position{Row: 0, Col: 2}) {
		t.Fatalf("expected cursor to stay on (0, 2), got %+v", g.Cursor())
	}
}

func TestPrevRowCheckedSkipsHoles(t *testing.T) {
	g := newSnakeGrid(t, 0, 2)
	if err := g.PrevRowChecked(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectSelected(t, g, 2)

	g = newSnakeGrid(t, 0, 0)
	if err := g.PrevRowChecked(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectSelected(t, g, 3)
}

func TestRowCheckedFailsWithoutOccupiedRow(t *testing.T) {
	g := MustNew(3, 3, []int{1})
	_ = g.Select(0, 2)
	if err := g.NextRowChecked(); !errors.Is(err, ErrNoOccupiedRow) {
		t.Fatalf("expected ErrNoOccupiedRow, got %v", err)
	}
	if err := g.PrevRowChecked(); !errors.Is(err, ErrNoOccupiedRow) {
		t.Fatalf("expected ErrNoOccupiedRow, got %v", err)
	}
	if g.Cursor() != (Position{Row: 0, Col: 2}) {
		t.Fatalf("expected cursor restored, got %+v", g.Cursor())
	}
}

func TestUncheckedMovesAreCyclic(t *testing.T) {
	g, err := New(3, 4, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			start := Position{Row: r, Col: c}
			moves := []struct {
				name  string
				step  func()
				times int
			}{
				{"NextCol", g.NextCol, g.Cols()},
				{"PrevCol", g.PrevCol, g.Cols()},
				{"NextRow", g.NextRow, g.Rows()},
				{"PrevRow", g.PrevRow, g.Rows()},
			}
			for _, mv := range moves {
				_ = g.Select(r, c)
				for i := 0; i < mv.times; i++ {
					mv.step()
				}
				if g.Cursor() != start {
					t.Fatalf("%s x%d from %+v ended at %+v", mv.name, mv.times, start, g.Cursor())
				}
			}

			_ = g.Select(r, c)
			g.NextCol()
			g.PrevCol()
			g.NextRow()
			g.PrevRow()
			if g.Cursor() != start {
				t.Fatalf("expected prev moves to invert next moves from %+v, got %+v", start, g.Cursor())
			}
		}
	}
}

func TestCheckedMovesNeverLandOnHoles(t *testing.T) {
	shapes := []struct{ rows, cols, items int }{
		{1, 1, 1}, {1, 5, 3}, {2, 3, 5}, {3, 3, 7}, {4, 2, 5}, {8, 4, 13}, {3, 4, 12},
	}
	for _, shape := range shapes {
		items := make([]int, shape.items)
		for i := range items {
			items[i] = i
		}
		g := MustNew(shape.rows, shape.cols, items)
		moves := []func() error{
			g.NextRowChecked,
			g.PrevRowChecked,
			func() error { g.NextColChecked(); return nil },
			g.PrevColChecked,
		}
		// walk a deterministic pseudo-random sequence of checked moves
		seed := uint32(shape.rows*31 + shape.cols*7 + shape.items)
		for step := 0; step < 500; step++ {
			seed = seed*1664525 + 1013904223
			move := moves[(seed>>16)%uint32(len(moves))]
			if err := move(); err != nil {
				t.Fatalf("%dx%d/%d step %d: unexpected error %v", shape.rows, shape.cols, shape.items, step, err)
			}
			if _, ok := g.Selected(); !ok {
				t.Fatalf("%dx%d/%d step %d: cursor on hole %+v", shape.rows, shape.cols, shape.items, step, g.Cursor())
			}
		}
	}
}
