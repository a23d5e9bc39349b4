package grid

// NextRow moves the cursor down one row, wrapping to the first row. Occupancy
// is not considered.
func (g *Grid[T]) NextRow() {
	if g.cursor.Row == g.rows-1 {
		g.cursor.Row = 0
		return
	}
	g.cursor.Row++
}

// PrevRow moves the cursor up one row, wrapping to the last row.
func (g *Grid[T]) PrevRow() {
	if g.cursor.Row == 0 {
		g.cursor.Row = g.rows - 1
		return
	}
	g.cursor.Row--
}

// NextRowChecked moves down until the cursor lands on an occupied cell. After
// one full cycle without a hit the cursor is restored and ErrNoOccupiedRow is
// returned.
func (g *Grid[T]) NextRowChecked() error {
	return g.rowChecked(g.NextRow)
}

// PrevRowChecked is the upward counterpart of NextRowChecked.
func (g *Grid[T]) PrevRowChecked() error {
	return g.rowChecked(g.PrevRow)
}

func (g *Grid[T]) rowChecked(step func()) error {
	start := g.cursor
	for i := 0; i < g.rows; i++ {
		step()
		if g.occupied(g.cursor.Row, g.cursor.Col) {
			return nil
		}
	}
	g.cursor = start
	return ErrNoOccupiedRow
}

// NextCol moves the cursor right one column, wrapping to the first column.
func (g *Grid[T]) NextCol() {
	if g.cursor.Col == g.cols-1 {
		g.cursor.Col = 0
		return
	}
	g.cursor.Col++
}

// PrevCol moves the cursor left one column, wrapping to the last column.
func (g *Grid[T]) PrevCol() {
	if g.cursor.Col == 0 {
		g.cursor.Col = g.cols - 1
		return
	}
	g.cursor.Col--
}

// NextColChecked moves right; landing on an empty cell resets the column to 0
// instead of searching further, unlike the row variants.
func (g *Grid[T]) NextColChecked() {
	g.NextCol()
	if !g.occupied(g.cursor.Row, g.cursor.Col) {
		g.cursor.Col = 0
	}
}

// PrevColChecked moves left, then carriage-returns onto the nearest occupied
// cell. The cursor is left untouched on error.
func (g *Grid[T]) PrevColChecked() error {
	start := g.cursor
	g.PrevCol()
	if err := g.CarriageReturn(); err != nil {
		g.cursor = start
		return err
	}
	return nil
}

// CarriageReturn moves the cursor left, wrapping within the row, until it
// rests on an occupied cell. It is a no-op when the cursor is already on one.
//
//	[ a , b , c  ]        [ a , b , c ]
//	[ d , e , [ ]]  --->  [ d ,[e],   ]
func (g *Grid[T]) CarriageReturn() error {
	if !g.rowOccupied(g.cursor.Row) {
		return ErrEmptyRow
	}
	for !g.occupied(g.cursor.Row, g.cursor.Col) {
		g.PrevCol()
	}
	return nil
}

func (g *Grid[T]) rowOccupied(row int) bool {
	for c := 0; c < g.cols; c++ {
		if g.occupied(row, c) {
			return true
		}
	}
	return false
}
