package tilemap

import "errors"

// Config describes the geometry and scrolling behavior of a Map.
type Config struct {
	// Rows and Cols are the size of the visible window in tiles.
	Rows, Cols int
	// Side is the tile side length in pixels.
	Side int
	Policy Policy

	// ShiftRows and ShiftCols are how far WindowedConveyor content moves
	// down and left per step.
	ShiftRows, ShiftCols int
	// TrailRows and TrailCols size the grid that receives columns evicted
	// by WindowedConveyor. The trail sits to the left of the window.
	TrailRows, TrailCols int
	// WindowRow is the tile row of the region at which the window starts.
	WindowRow int

	// RowPeriod is the number of StatelessDiagonal steps per row.
	RowPeriod int

	// Budget is the number of steps before a hard reset, zero for never.
	Budget int
}

var (
	errBadSize   = errors.New("tilemap: rows, columns and side must be positive")
	errBadShift  = errors.New("tilemap: shift must be within the window")
	errBadTrail  = errors.New("tilemap: invalid trail geometry")
	errBadPeriod = errors.New("tilemap: row period must be positive")
	errBadBudget = errors.New("tilemap: budget must not be negative")
)

func (c Config) validate() error {
	if c.Rows <= 0 || c.Cols <= 0 || c.Side <= 0 {
		return errBadSize
	}
	if c.Budget < 0 {
		return errBadBudget
	}
	if c.WindowRow < 0 {
		return errBadTrail
	}
	if c.Policy != WindowedConveyor && (c.TrailRows != 0 || c.TrailCols != 0) {
		return errBadTrail
	}
	switch c.Policy {
	case WindowedConveyor:
		if c.ShiftRows < 0 || c.ShiftCols < 0 || c.ShiftRows > c.Rows || c.ShiftCols > c.Cols {
			return errBadShift
		}
		if c.TrailRows < 0 || c.TrailCols < 0 || (c.TrailCols > 0) != (c.TrailRows > 0) {
			return errBadTrail
		}
	case StatelessDiagonal:
		if c.RowPeriod <= 0 {
			return errBadPeriod
		}
	}
	return nil
}

// Width returns the width in pixels of the addressable region.
func (c Config) Width() int {
	return (c.TrailCols + c.Cols) * c.Side
}

// Height returns the height in pixels of the addressable region.
func (c Config) Height() int {
	rows := c.WindowRow + c.Rows
	if c.TrailRows > rows {
		rows = c.TrailRows
	}
	return rows * c.Side
}
