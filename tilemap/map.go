package tilemap

// Map is a scrolling window over a backing sequence of tile ids. A Map is not
// safe for concurrent use; the backing sequence is never modified and may be
// shared between maps.
type Map struct {
	cfg     Config
	backing []uint16

	window, spare *Grid
	trail, trail2 *Grid

	cursor int
	step   int
}

// New returns a map over backing, seeded with its first Rows*Cols ids.
func New(cfg Config, backing []uint16) (*Map, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	m := &Map{
		cfg:     cfg,
		backing: backing,
		window:  NewGrid(cfg.Rows, cfg.Cols),
		spare:   NewGrid(cfg.Rows, cfg.Cols),
	}
	if cfg.TrailCols > 0 {
		m.trail = NewGrid(cfg.TrailRows, cfg.TrailCols)
		m.trail2 = NewGrid(cfg.TrailRows, cfg.TrailCols)
	}
	m.Reset()

	return m, nil
}

// Build is like New but parses the backing sequence from raw little-endian
// bytes.
func Build(cfg Config, raw []byte) (*Map, error) {
	return New(cfg, ParseIDs(raw))
}

// Clone returns an independent map in the same state that shares the
// immutable backing sequence.
func (m *Map) Clone() *Map {
	dup := *m
	dup.window = m.window.Clone()
	dup.spare = m.spare.Clone()
	if m.trail != nil {
		dup.trail = m.trail.Clone()
		dup.trail2 = m.trail2.Clone()
	}
	return &dup
}

// Config returns the configuration of the map.
func (m *Map) Config() Config {
	return m.cfg
}

// Len returns the length of the backing sequence.
func (m *Map) Len() int {
	return len(m.backing)
}

// Cursor returns the index of the next backing id to be pulled. It never
// exceeds Len.
func (m *Map) Cursor() int {
	return m.cursor
}

// Step returns the number of steps taken since the last reset.
func (m *Map) Step() int {
	return m.step
}

// Window returns a copy of the visible window.
func (m *Map) Window() *Grid {
	return m.window.Clone()
}

// Trail returns a copy of the trail grid, or nil if the map has none.
func (m *Map) Trail() *Grid {
	if m.trail == nil {
		return nil
	}
	return m.trail.Clone()
}

func (m *Map) seed() int {
	n := m.cfg.Rows * m.cfg.Cols
	if n > len(m.backing) {
		n = len(m.backing)
	}
	return n
}

// Reset reinitializes the window from the start of the backing sequence,
// clears the trail and rewinds the cursor to just after the seed region.
func (m *Map) Reset() {
	n := m.seed()
	m.window.Fill(m.backing[:n])
	if m.trail != nil {
		m.trail.Clear()
	}
	m.cursor = n
	m.step = 0
}

// pull returns the id under the cursor and moves it on. Past the end of the
// backing sequence it returns zero and the cursor stays put.
func (m *Map) pull() uint16 {
	if m.cursor >= len(m.backing) {
		return 0
	}
	id := m.backing[m.cursor]
	m.cursor++
	return id
}

func (m *Map) backingAt(i int) uint16 {
	if i < 0 || i >= len(m.backing) {
		return 0
	}
	return m.backing[i]
}

// frame reduces an absolute frame number to the step count the map would
// have reached after that many advances.
func (m *Map) frame(n int) int {
	if n < 0 {
		return 0
	}
	if m.cfg.Budget > 0 {
		return n % (m.cfg.Budget + 1)
	}
	return n
}

func (m *Map) stepOnce() {
	switch m.cfg.Policy {
	case WindowedConveyor:
		m.stepConveyor()
	case StatelessDiagonal:
		m.stepDiagonal()
	default:
		return
	}
	m.step++
}

// Advance moves the map on by one step. Once Budget steps have been taken the
// next call performs a hard reset instead, which it reports by returning true.
// A Static map never changes.
func (m *Map) Advance() bool {
	if m.cfg.Policy == Static {
		return false
	}
	if m.cfg.Budget > 0 && m.step >= m.cfg.Budget {
		m.Reset()
		return true
	}
	m.stepOnce()
	return false
}

// Seek brings the map to the state it has after n advances from a fresh
// reset, replaying from the reset state if needed.
func (m *Map) Seek(n int) {
	if m.cfg.Policy == Static {
		return
	}
	target := m.frame(n)
	if target < m.step {
		m.Reset()
	}
	for m.step < target {
		m.stepOnce()
	}
}

// Contains reports whether pixel (x, y) lies within the addressable region,
// which covers the trail and the window.
func (m *Map) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.cfg.Width() && y < m.cfg.Height()
}

// TileIDAt returns the tile id covering pixel (x, y) of the region in the
// current state. It reports false if the pixel falls outside both the trail
// and the window.
func (m *Map) TileIDAt(x, y int) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	tx, ty := x/m.cfg.Side, y/m.cfg.Side

	if tx < m.cfg.TrailCols {
		id, ok := m.trail.At(ty, tx)
		return int(id), ok
	}

	id, ok := m.window.At(ty-m.cfg.WindowRow, tx-m.cfg.TrailCols)
	return int(id), ok
}

// TileIDAtFrame returns the tile id covering pixel (x, y) of the window at
// frame n without changing the state of the map. Only Static and
// StatelessDiagonal maps support this; WindowedConveyor maps report false.
func (m *Map) TileIDAtFrame(n, x, y int) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	r, c := y/m.cfg.Side-m.cfg.WindowRow, x/m.cfg.Side
	if r < 0 || c < 0 || r >= m.cfg.Rows || c >= m.cfg.Cols {
		return 0, false
	}

	switch m.cfg.Policy {
	case Static:
		id, ok := m.window.At(r, c)
		return int(id), ok
	case StatelessDiagonal:
		return int(m.diagonalCell(m.frame(n), r, c)), true
	}
	return 0, false
}
