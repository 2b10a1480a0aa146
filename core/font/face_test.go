package font

import (
	"image"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestFaceGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.font")
	defer teardown()
	//
	// a single 8x4 box glyph for 'o', 1 bpp
	table, err := NewContinuousTable('o', 'o', []Glyph{{Width: 8, Offset: 0}})
	if err != nil {
		t.Fatal(err)
	}
	f, err := NewFont(Desc{
		Name: "box", Height: 4, Bpp: 1, Table: table,
		Bitmap: []byte{0xFF, 0x81, 0x81, 0xFF},
	})
	if err != nil {
		t.Fatal(err)
	}
	face := NewFace(f)
	defer face.Close()
	//
	adv, ok := face.GlyphAdvance('o')
	assert.True(t, ok)
	assert.Equal(t, fixed.I(8), adv)
	_, ok = face.GlyphAdvance('x')
	assert.False(t, ok)
	assert.Equal(t, fixed.Int26_6(0), face.Kern('o', 'o'))
	assert.Equal(t, fixed.I(4), face.Metrics().Ascent)
	//
	dot := fixed.P(10, 20)
	dr, mask, _, adv, ok := face.Glyph(dot, 'o')
	if !ok {
		t.Fatal("expected a glyph for 'o'")
	}
	assert.Equal(t, image.Rect(10, 16, 18, 20), dr, "glyph box sits on the baseline")
	assert.Equal(t, fixed.I(8), adv)
	//
	alpha := mask.(*image.Alpha)
	for x := 0; x < 8; x++ {
		if a := alpha.AlphaAt(x, 0).A; a != 0xFF {
			t.Errorf("top row pixel %d = %d, want opaque", x, a)
		}
	}
	assert.Equal(t, uint8(0xFF), alpha.AlphaAt(0, 1).A)
	assert.Equal(t, uint8(0x00), alpha.AlphaAt(1, 1).A, "box interior is empty")
	assert.Equal(t, uint8(0xFF), alpha.AlphaAt(7, 1).A)
}

func TestFaceMaskDepths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pxfont.font")
	defer teardown()
	//
	// 2 bpp: one row of four pixels with values 0, 1, 2, 3
	table, err := NewContinuousTable('g', 'g', []Glyph{{Width: 4, Offset: 0}})
	if err != nil {
		t.Fatal(err)
	}
	f, err := NewFont(Desc{
		Name: "gray", Height: 1, Bpp: 2, Table: table,
		Bitmap: []byte{0x1B}, // 00 01 10 11
	})
	if err != nil {
		t.Fatal(err)
	}
	_, mask, _, _, ok := NewFace(f).Glyph(fixed.P(0, 1), 'g')
	if !ok {
		t.Fatal("expected a glyph for 'g'")
	}
	alpha := mask.(*image.Alpha)
	want := []uint8{0, 85, 170, 255}
	for x, a := range want {
		if got := alpha.AlphaAt(x, 0).A; got != a {
			t.Errorf("pixel %d = %d, want %d", x, got, a)
		}
	}
}
