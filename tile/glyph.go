package tile

import "unicode"

// GlyphLayout describes where the letter and digit glyphs live in an atlas.
type GlyphLayout struct {
	// Base is the tile id of the first glyph.
	Base int
	// DigitsFirst places 0-9 at Base with A-Z following, otherwise A-Z
	// come first and the digits follow the letters.
	DigitsFirst bool
	// Space is the tile id used for a blank, zero meaning transparent.
	Space int
}

// DefaultGlyphLayout returns the layout used by the background tile set.
func DefaultGlyphLayout() GlyphLayout {
	return GlyphLayout{
		Base:  0x600,
		Space: 0x5ed,
	}
}

func (l GlyphLayout) letter(n int) int {
	if l.DigitsFirst {
		return l.Base + digitsLen + n
	}
	return l.Base + n
}

func (l GlyphLayout) digit(n int) int {
	if l.DigitsFirst {
		return l.Base + n
	}
	return l.Base + lettersLen + n
}

// ID returns the tile id for r, which may be a letter, digit or space.
// Lower case letters map to their upper case glyph.
func (l GlyphLayout) ID(r rune) (int, bool) {
	r = unicode.ToUpper(r)
	switch {
	case r >= 'A' && r <= 'Z':
		return l.letter(int(r - 'A')), true
	case r >= '0' && r <= '9':
		return l.digit(int(r - '0')), true
	case r == ' ':
		return l.Space, true
	}
	return 0, false
}

// SetGlyphLayout replaces the glyph layout used by Glyph and HexDigit.
func (a *Atlas) SetGlyphLayout(l GlyphLayout) {
	a.glyphs = l
}

// GlyphLayout returns the glyph layout of the atlas.
func (a *Atlas) GlyphLayout() GlyphLayout {
	return a.glyphs
}

// Glyph returns the tile used to draw r.
func (a *Atlas) Glyph(r rune) (*Tile, bool) {
	id, ok := a.glyphs.ID(r)
	if !ok {
		return nil, false
	}
	return a.Tile(id)
}

// HexDigit returns the tile for the hexadecimal digit n, 0 to 15.
func (a *Atlas) HexDigit(n int) (*Tile, bool) {
	switch {
	case n >= 0 && n < digitsLen:
		return a.Tile(a.glyphs.digit(n))
	case n >= digitsLen && n < 16:
		return a.Tile(a.glyphs.letter(n - digitsLen))
	}
	return nil, false
}
