/*
Package tilemap implements a scrolling grid of tile ids.

A Map owns a backing sequence of tile ids decoded from little-endian 16-bit
pairs and a visible window seeded from the start of that sequence. Advancing
the map shifts the window according to its Policy and refills the vacated
cells from the backing sequence through a cursor. After a configurable number
of steps the map performs a hard reset back to its initial state, so the
state after any number of advances is a function of that number alone.
*/
package tilemap

const (
	// DefaultBudget is the number of steps taken before a hard reset.
	DefaultBudget = 160
	// DefaultRowPeriod is the number of steps per row advance of the
	// diagonal policy.
	DefaultRowPeriod = 2

	bytesPerID = 2
)
