package font

import (
	"testing"

	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSparseTableConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.font")
	defer teardown()
	//
	_, err := NewSparseTable(0x100, 0x1FF, []rune{0x110, 0x105}, make([]Glyph, 2))
	assert.Error(t, err, "unsorted code points must not construct")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = NewSparseTable(0x100, 0x1FF, []rune{0x110, 0x110}, make([]Glyph, 2))
	assert.Error(t, err, "duplicate code points must not construct")
	_, err = NewSparseTable(0x100, 0x1FF, []rune{0x0FF}, make([]Glyph, 1))
	assert.Error(t, err, "code point below range must not construct")
	_, err = NewSparseTable(0x100, 0x1FF, []rune{0x110}, make([]Glyph, 2))
	assert.Error(t, err, "code point and glyph count have to agree")
	_, err = NewSparseTable(0x1FF, 0x100, nil, nil)
	assert.Error(t, err, "inverted range must not construct")
}

func TestSparseTableSearch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.font")
	defer teardown()
	//
	// binary search has to work for empty tables and for tables of odd
	// and even sizes alike
	for _, codes := range [][]rune{
		{},
		{0x120},
		{0x101, 0x120, 0x121, 0x180},
		{0x101, 0x120, 0x121, 0x180, 0x1FF},
	} {
		glyphs := make([]Glyph, len(codes))
		for i := range glyphs {
			glyphs[i] = Glyph{Width: i + 2, Offset: i * 4}
		}
		table, err := NewSparseTable(0x100, 0x1FF, codes, glyphs)
		if err != nil {
			t.Fatalf("cannot build sparse table of size %d: %v", len(codes), err)
		}
		for i, r := range codes {
			w, ok := table.Width(r)
			if !ok || w != glyphs[i].Width {
				t.Errorf("size %d: width(%#U) = %d/%v, want %d", len(codes), r, w, ok, glyphs[i].Width)
			}
			offset, ok := table.Offset(r)
			if !ok || offset != glyphs[i].Offset {
				t.Errorf("size %d: offset(%#U) = %d/%v, want %d", len(codes), r, offset, ok, glyphs[i].Offset)
			}
		}
		for _, r := range []rune{0x100, 0x110, 0x150, 0x1F0} {
			if contains(codes, r) {
				continue
			}
			if _, ok := table.Width(r); ok {
				t.Errorf("size %d: expected miss for %#U inside range", len(codes), r)
			}
		}
		if _, ok := table.Width(0x0FF); ok {
			t.Errorf("size %d: expected miss below range", len(codes))
		}
		if _, ok := table.Width(0x200); ok {
			t.Errorf("size %d: expected miss above range", len(codes))
		}
	}
}

func contains(codes []rune, r rune) bool {
	for _, c := range codes {
		if c == r {
			return true
		}
	}
	return false
}
