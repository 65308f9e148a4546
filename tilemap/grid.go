package tilemap

// Grid is a fixed size rows by cols grid of tile ids held in one row-major
// slice.
type Grid struct {
	rows, cols int
	cells      []uint16
}

// NewGrid returns a grid with every cell set to zero.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]uint16, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) inside(r, c int) bool {
	return r >= 0 && c >= 0 && r < g.rows && c < g.cols
}

// At returns the tile id at row r, column c. It reports false if the cell is
// outside the grid.
func (g *Grid) At(r, c int) (uint16, bool) {
	if !g.inside(r, c) {
		return 0, false
	}
	return g.cells[r*g.cols+c], true
}

// Set stores id at row r, column c, reporting false if the cell is outside
// the grid.
func (g *Grid) Set(r, c int, id uint16) bool {
	if !g.inside(r, c) {
		return false
	}
	g.cells[r*g.cols+c] = id
	return true
}

// Clear sets every cell to zero.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// Fill copies ids into the grid in row-major order. Cells beyond the end of
// ids are set to zero.
func (g *Grid) Fill(ids []uint16) {
	n := copy(g.cells, ids)
	for i := n; i < len(g.cells); i++ {
		g.cells[i] = 0
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	dup := &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: make([]uint16, len(g.cells)),
	}
	copy(dup.cells, g.cells)
	return dup
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Cells returns a copy of the grid contents in row-major order.
func (g *Grid) Cells() []uint16 {
	return append([]uint16(nil), g.cells...)
}
