package font

import (
	"github.com/npillmayer/pxfont/core"
)

// Desc collects the construction parameters for a font page.
// All glyph bitmaps of a page share the height and bit depth declared
// here; Bitmap holds the packed pixel data which the glyph table's
// offsets point into.
type Desc struct {
	Name      string
	Height    int        // pixel rows per glyph
	Bpp       int        // bits per pixel: 1, 2, 4 or 8
	MonoWidth int        // nonzero forces this fixed advance for every glyph
	Table     GlyphTable // continuous or sparse glyph lookup
	Bitmap    []byte     // packed glyph pixel data, rows byte-aligned
}

// Font is one page of a pixel font: a glyph table for a closed range of
// code points, together with the bitmap buffer the table's offsets
// refer to. Pages are immutable after construction, except for the link
// to the next page of a fallback chain, which is maintained exclusively
// by AddPage and RemovePage.
type Font struct {
	Fontname string
	height   int
	bpp      int
	mono     int
	table    GlyphTable
	bitmap   []byte
	next     *Font
}

// NewFont creates a font page from a descriptor. The descriptor is
// validated fail-fast: an incomplete or malformed page would otherwise
// silently resolve wrong glyphs at query time.
func NewFont(d Desc) (*Font, error) {
	if d.Table == nil {
		return nil, core.Error(core.EINVALID, "font %q has no glyph table", d.Name)
	}
	if d.Height <= 0 {
		return nil, core.Error(core.EINVALID, "font %q has no pixel height", d.Name)
	}
	switch d.Bpp {
	case 1, 2, 4, 8:
	default:
		return nil, core.Error(core.EINVALID, "font %q: unsupported bit depth %d", d.Name, d.Bpp)
	}
	if d.MonoWidth < 0 {
		return nil, core.Error(core.EINVALID, "font %q: negative monospace width", d.Name)
	}
	if t, ok := d.Table.(offsetBounded); ok {
		if max := t.maxOffset(); max > 0 && max >= len(d.Bitmap) {
			return nil, core.Error(core.EINVALID,
				"font %q: glyph offset %d outside of bitmap buffer (%d bytes)",
				d.Name, max, len(d.Bitmap))
		}
	}
	f := &Font{
		Fontname: d.Name,
		height:   d.Height,
		bpp:      d.Bpp,
		mono:     d.MonoWidth,
		table:    d.Table,
		bitmap:   d.Bitmap,
	}
	return f, nil
}

// Height returns the number of pixel rows of every glyph of this page.
func (f *Font) Height() int {
	return f.height
}

// BitsPerPixel returns the bit depth used to encode this page's bitmap
// buffer. Pages of one chain may differ in bit depth.
func (f *Font) BitsPerPixel() int {
	return f.bpp
}

// MonoWidth returns the fixed advance width of this page, or 0 if the
// page is proportional and each glyph reports its own width.
func (f *Font) MonoWidth() int {
	return f.mono
}

// Table returns the glyph table bound to this page.
func (f *Font) Table() GlyphTable {
	return f.table
}

// Range returns the closed code-point range declared by this page.
func (f *Font) Range() (first, last rune) {
	return f.table.Range()
}

// NextPage returns the next page of the fallback chain, or nil for the
// last page.
func (f *Font) NextPage() *Font {
	return f.next
}

// rowBytes returns the number of bytes occupied by one bitmap row of a
// glyph with advance width w, at this page's bit depth. Rows are packed
// MSB-first and padded to a byte boundary.
func (f *Font) rowBytes(w int) int {
	return (w*f.bpp + 7) / 8
}

// glyphBitmap slices the bitmap of a single glyph out of the page's
// buffer. Returns nil if the declared offset and size do not fit the
// buffer.
func (f *Font) glyphBitmap(offset, w int) []byte {
	size := f.height * f.rowBytes(w)
	if offset < 0 || offset+size > len(f.bitmap) {
		tracer().Errorf("font %q: glyph bitmap at %d+%d outside of buffer", f.Fontname, offset, size)
		return nil
	}
	return f.bitmap[offset : offset+size : offset+size]
}
