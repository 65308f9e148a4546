/*
Package asm implements a decoder for tile and map data stored as assembler
byte declarations.

Each line of the source may carry a "db " directive followed by a comma
separated list of hexadecimal byte literals such as 0FFH or 012H. The two
characters following the leading character of each literal are the byte
value; anything else on the line (labels, comments, other directives) is
ignored.
*/
package asm

const (
	// Marker is the directive that introduces byte data on a line.
	Marker = "db "

	minTokenLen = 4
	separator   = ","
)
