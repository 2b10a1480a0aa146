package font

import (
	"testing"

	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// continuousPage builds a dense test page where the glyph for code
// point r has width int(r-first)+1 and offset int(r-first)*16.
func continuousPage(t *testing.T, name string, first, last rune, bpp, mono int) *Font {
	n := int(last-first) + 1
	glyphs := make([]Glyph, n)
	for i := range glyphs {
		glyphs[i] = Glyph{Width: i + 1, Offset: i * 16}
	}
	table, err := NewContinuousTable(first, last, glyphs)
	if err != nil {
		t.Fatalf("cannot build continuous test table: %v", err)
	}
	f, err := NewFont(Desc{
		Name:      name,
		Height:    16,
		Bpp:       bpp,
		MonoWidth: mono,
		Table:     table,
		Bitmap:    make([]byte, n*16),
	})
	if err != nil {
		t.Fatalf("cannot build test page: %v", err)
	}
	return f
}

func TestContinuousTableLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.font")
	defer teardown()
	//
	glyphs := []Glyph{{Width: 3, Offset: 0}, {Width: 5, Offset: 6}, {Width: 4, Offset: 16}}
	table, err := NewContinuousTable('a', 'c', glyphs)
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range []rune{'a', 'b', 'c'} {
		w, ok := table.Width(r)
		if !ok || w != glyphs[i].Width {
			t.Errorf("width(%c) = %d/%v, want %d", r, w, ok, glyphs[i].Width)
		}
		offset, ok := table.Offset(r)
		if !ok || offset != glyphs[i].Offset {
			t.Errorf("offset(%c) = %d/%v, want %d", r, offset, ok, glyphs[i].Offset)
		}
	}
	if _, ok := table.Width('d'); ok {
		t.Errorf("expected miss for code point after range, got a width")
	}
	if _, ok := table.Offset(' '); ok {
		t.Errorf("expected miss for code point before range, got an offset")
	}
}

func TestContinuousTableConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.font")
	defer teardown()
	//
	_, err := NewContinuousTable('z', 'a', nil)
	assert.Error(t, err, "inverted range must not construct")
	_, err = NewContinuousTable('a', 'c', make([]Glyph, 2))
	assert.Error(t, err, "incomplete table must not construct")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = NewContinuousTable('a', 'a', make([]Glyph, 1))
	assert.NoError(t, err, "single-glyph range is legal")
}

func TestNewFontValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.font")
	defer teardown()
	//
	table, _ := NewContinuousTable('a', 'a', []Glyph{{Width: 4, Offset: 0}})
	_, err := NewFont(Desc{Name: "x", Height: 8, Bpp: 1, Table: nil})
	assert.Error(t, err, "page without glyph table must not construct")
	_, err = NewFont(Desc{Name: "x", Height: 8, Bpp: 3, Table: table, Bitmap: make([]byte, 8)})
	assert.Error(t, err, "bit depth 3 is not a legal depth")
	_, err = NewFont(Desc{Name: "x", Height: 0, Bpp: 1, Table: table, Bitmap: make([]byte, 8)})
	assert.Error(t, err, "page without height must not construct")
	//
	// glyph offsets have to point into the bitmap buffer
	far, _ := NewContinuousTable('a', 'a', []Glyph{{Width: 4, Offset: 999}})
	_, err = NewFont(Desc{Name: "x", Height: 8, Bpp: 1, Table: far, Bitmap: make([]byte, 8)})
	assert.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestMonospaceOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.font")
	defer teardown()
	//
	table, _ := NewContinuousTable('a', 'a', []Glyph{{Width: 5, Offset: 0}})
	mono, err := NewFont(Desc{
		Name: "mono", Height: 8, Bpp: 1, MonoWidth: 8,
		Table: table, Bitmap: make([]byte, 8),
	})
	if err != nil {
		t.Fatal(err)
	}
	w, ok := mono.Width('a')
	assert.True(t, ok)
	assert.Equal(t, 8, w, "monospace width must override the glyph's own width")
	w, ok = mono.RealWidth('a')
	assert.True(t, ok)
	assert.Equal(t, 5, w, "real width must ignore the monospace override")
	assert.True(t, mono.IsMonospace('a'))
	assert.False(t, mono.IsMonospace('z'), "unresolved code points are not monospace")
}
