package font

import (
	"sort"

	"github.com/npillmayer/pxfont/core"
)

// SparseTable is a glyph table for pages which contain glyphs for a
// subset of their range only. Code points are kept in a sorted list,
// parallel to the glyph list; lookups binary-search the code-point
// list, i.e. run in O(log n) of the page size.
type SparseTable struct {
	first, last rune
	codes       []rune // sorted ascending, no duplicates
	glyphs      []Glyph
}

// NewSparseTable creates a sparse glyph table for the closed range
// first…last. codes must be strictly increasing and lie within the
// range; glyphs is parallel to codes. Both slices are copied.
func NewSparseTable(first, last rune, codes []rune, glyphs []Glyph) (*SparseTable, error) {
	if first > last {
		return nil, core.Error(core.EINVALID, "glyph range %#U…%#U is inverted", first, last)
	}
	if len(codes) != len(glyphs) {
		return nil, core.Error(core.EINVALID,
			"sparse glyph table has %d code points but %d glyphs", len(codes), len(glyphs))
	}
	for i, r := range codes {
		if r < first || r > last {
			return nil, core.Error(core.EINVALID,
				"sparse glyph table entry %#U outside of range %#U…%#U", r, first, last)
		}
		if i > 0 && codes[i-1] >= r {
			return nil, core.Error(core.EINVALID,
				"sparse glyph table code points not strictly increasing at %#U", r)
		}
	}
	t := &SparseTable{first: first, last: last}
	t.codes = append([]rune(nil), codes...)
	t.glyphs = append([]Glyph(nil), glyphs...)
	return t, nil
}

// Range returns the closed code-point range covered by this table.
func (t *SparseTable) Range() (rune, rune) {
	return t.first, t.last
}

// Width returns the advance width in pixels for code point r.
func (t *SparseTable) Width(r rune) (int, bool) {
	i, ok := t.search(r)
	if !ok {
		return 0, false
	}
	return t.glyphs[i].Width, true
}

// Offset returns the bitmap byte offset for code point r.
func (t *SparseTable) Offset(r rune) (int, bool) {
	i, ok := t.search(r)
	if !ok {
		return 0, false
	}
	return t.glyphs[i].Offset, true
}

// search locates r in the sorted code-point list. The index of a found
// code point is at the same time the index of its glyph.
func (t *SparseTable) search(r rune) (int, bool) {
	if r < t.first || r > t.last {
		return 0, false
	}
	i := sort.Search(len(t.codes), func(i int) bool {
		return t.codes[i] >= r
	})
	if i == len(t.codes) || t.codes[i] != r {
		return 0, false
	}
	return i, true
}

// Codes enumerates the code points contained in this table, in
// ascending order.
func (t *SparseTable) Codes() []rune {
	return append([]rune(nil), t.codes...)
}

func (t *SparseTable) maxOffset() int {
	max := 0
	for _, g := range t.glyphs {
		if g.Offset > max {
			max = g.Offset
		}
	}
	return max
}

var _ GlyphTable = &SparseTable{}
