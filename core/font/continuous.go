package font

import (
	"github.com/npillmayer/pxfont/core"
)

// ContinuousTable is a glyph table for pages which contain a glyph for
// every code point of their range. Lookups are resolved by direct
// indexing with `r - first`, i.e. in O(1). Correctness depends on the
// table being complete, which is checked at construction time.
type ContinuousTable struct {
	first, last rune
	glyphs      []Glyph
}

// NewContinuousTable creates a dense glyph table for the closed range
// first…last. glyphs must hold exactly one entry per code point of the
// range, ordered by code point; the slice is copied.
func NewContinuousTable(first, last rune, glyphs []Glyph) (*ContinuousTable, error) {
	if first > last {
		return nil, core.Error(core.EINVALID, "glyph range %#U…%#U is inverted", first, last)
	}
	if n := int(last-first) + 1; len(glyphs) != n {
		return nil, core.Error(core.EINVALID,
			"continuous glyph table for %#U…%#U needs %d glyphs, have %d",
			first, last, n, len(glyphs))
	}
	t := &ContinuousTable{first: first, last: last}
	t.glyphs = append([]Glyph(nil), glyphs...)
	return t, nil
}

// Range returns the closed code-point range covered by this table.
func (t *ContinuousTable) Range() (rune, rune) {
	return t.first, t.last
}

// Width returns the advance width in pixels for code point r.
func (t *ContinuousTable) Width(r rune) (int, bool) {
	if r < t.first || r > t.last {
		return 0, false
	}
	return t.glyphs[r-t.first].Width, true
}

// Offset returns the bitmap byte offset for code point r.
func (t *ContinuousTable) Offset(r rune) (int, bool) {
	if r < t.first || r > t.last {
		return 0, false
	}
	return t.glyphs[r-t.first].Offset, true
}

// Codes enumerates the code points contained in this table, in
// ascending order. For a continuous table this is the complete range.
func (t *ContinuousTable) Codes() []rune {
	codes := make([]rune, 0, len(t.glyphs))
	for r := t.first; r <= t.last; r++ {
		codes = append(codes, r)
	}
	return codes
}

func (t *ContinuousTable) maxOffset() int {
	max := 0
	for _, g := range t.glyphs {
		if g.Offset > max {
			max = g.Offset
		}
	}
	return max
}

var _ GlyphTable = &ContinuousTable{}
