package font

// Glyph describes a single glyph of a font page: its advance width in
// pixels and the byte offset of its bitmap within the page's bitmap
// buffer. Glyphs are value types and never change after table
// construction.
type Glyph struct {
	Width  int // advance width in pixels
	Offset int // byte offset into the page's bitmap buffer
}

// GlyphTable is the lookup capability of a font page. A page binds a
// table at construction time; clients query through the page and need
// not know the table's layout.
//
// Tables report misses with ok=false. Lookups are pure and safe for
// concurrent use.
type GlyphTable interface {
	// Range returns the closed code-point range nominally covered by
	// this table.
	Range() (first, last rune)
	// Width returns the advance width in pixels for code point r.
	Width(r rune) (w int, ok bool)
	// Offset returns the byte offset of the bitmap for code point r.
	Offset(r rune) (offset int, ok bool)
}

// Tables which can enumerate the code points they actually contain
// additionally provide
//
//     Codes() []rune
//
// which the coverage helpers rely on (see Coverage).

// offsetBounded is implemented by the in-package table layouts and lets
// NewFont check glyph offsets against the bitmap buffer.
type offsetBounded interface {
	maxOffset() int
}
