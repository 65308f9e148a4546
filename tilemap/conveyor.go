package tilemap

func (m *Map) shiftTrail() {
	sr, sc := m.cfg.ShiftRows, m.cfg.ShiftCols
	next := m.trail2
	next.Clear()

	for y := 0; y+sr < next.rows; y++ {
		for x := 0; x+sc < next.cols; x++ {
			id, _ := m.trail.At(y, x+sc)
			next.Set(y+sr, x, id)
		}
	}

	// Columns about to leave the window land on the trail's right edge
	for y := 0; y < m.window.rows; y++ {
		for x := 0; x < sc; x++ {
			id, _ := m.window.At(y, x)
			next.Set(y+m.cfg.WindowRow+sr, next.cols-sc+x, id)
		}
	}

	m.trail, m.trail2 = next, m.trail
}

func (m *Map) stepConveyor() {
	if m.trail != nil {
		m.shiftTrail()
	}

	rows, cols := m.cfg.Rows, m.cfg.Cols
	sr, sc := m.cfg.ShiftRows, m.cfg.ShiftCols
	next := m.spare

	for y := 0; y+sr < rows; y++ {
		for x := 0; x+sc < cols; x++ {
			id, _ := m.window.At(y, x+sc)
			next.Set(y+sr, x, id)
		}
	}

	// Leading rows first, then the leading columns of the remaining rows
	for y := 0; y < sr; y++ {
		for x := 0; x < cols; x++ {
			next.Set(y, x, m.pull())
		}
	}
	for y := sr; y < rows; y++ {
		for x := cols - sc; x < cols; x++ {
			next.Set(y, x, m.pull())
		}
	}

	m.window, m.spare = next, m.window
}
