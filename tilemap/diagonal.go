package tilemap

// The diagonal window at step s covers columns s to s+Cols-1 and rows s/P to
// s/P+Rows-1 of an unbounded world, P being RowPeriod. Each step fills the
// new right column top to bottom and then, when the row origin moves, the new
// bottom row left to right, excluding the corner already filled.

func (m *Map) stepDiagonal() {
	rows, cols := m.cfg.Rows, m.cfg.Cols
	s := m.step + 1
	dr := 0
	if s%m.cfg.RowPeriod == 0 {
		dr = 1
	}
	next := m.spare

	for y := 0; y+dr < rows; y++ {
		for x := 0; x+1 < cols; x++ {
			id, _ := m.window.At(y+dr, x+1)
			next.Set(y, x, id)
		}
	}

	for y := 0; y < rows; y++ {
		next.Set(y, cols-1, m.pull())
	}
	if dr == 1 {
		for x := 0; x < cols-1; x++ {
			next.Set(rows-1, x, m.pull())
		}
	}

	m.window, m.spare = next, m.window
}

// cursorAfter returns the unclamped cursor position after s steps.
func (m *Map) cursorAfter(s int) int {
	rows, cols := m.cfg.Rows, m.cfg.Cols
	return rows*cols + s*rows + (s/m.cfg.RowPeriod)*(cols-1)
}

// diagonalCell computes window cell (r, c) after s steps directly.
func (m *Map) diagonalCell(s, r, c int) uint16 {
	rows, cols, p := m.cfg.Rows, m.cfg.Cols, m.cfg.RowPeriod

	wr, wc := r+s/p, c+s

	// First step at which world cell (wr, wc) is inside the window
	first := 0
	if n := wc - cols + 1; n > first {
		first = n
	}
	if n := p * (wr - rows + 1); n > first {
		first = n
	}

	if first == 0 {
		return m.backingAt(wr*cols + wc)
	}

	start := m.cursorAfter(first - 1)
	if wc == first+cols-1 {
		return m.backingAt(start + wr - first/p)
	}
	return m.backingAt(start + rows + wc - first)
}
