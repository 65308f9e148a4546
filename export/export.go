/*
Package export encodes rendered frames for viewing outside the renderer.

Single frames are written as PNG and sequences as animated GIF, where every
frame is reduced to its own palette of at most 256 colors with a median cut
quantizer. Frames can be enlarged by an integer factor with nearest neighbor
sampling so individual tile pixels stay sharp.
*/
package export

const (
	maxColors = 256
	// DefaultDelay is the GIF frame delay in 100ths of a second.
	DefaultDelay = 10
)
