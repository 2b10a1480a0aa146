package font

import (
	"image"
	"image/color"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// NewFace wraps a font chain as a golang.org/x/image/font Face, so that
// pixel fonts can be handed to standard drawing code. Glyphs sit on the
// baseline with all pixel rows above it. The face resolves glyphs
// across the complete fallback chain of f.
//
// Faces are read-only views; Close is a no-op.
func NewFace(f *Font) xfont.Face {
	return &pixelFace{head: f}
}

type pixelFace struct {
	head *Font
}

func (pf *pixelFace) Close() error {
	return nil
}

func (pf *pixelFace) Metrics() xfont.Metrics {
	h := fixed.I(pf.head.height)
	return xfont.Metrics{
		Height:     h,
		Ascent:     h,
		Descent:    0,
		XHeight:    h,
		CapHeight:  h,
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

func (pf *pixelFace) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0 // pixel fonts do not kern
}

func (pf *pixelFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	w, ok := pf.head.Width(r)
	if !ok {
		return 0, false
	}
	return fixed.I(w), true
}

func (pf *pixelFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	page, w, ok := pf.resolve(r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	bounds := fixed.R(0, -page.height, w, 0)
	adv := w
	if page.mono != 0 {
		adv = page.mono
	}
	return bounds, fixed.I(adv), true
}

func (pf *pixelFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image,
	image.Point, fixed.Int26_6, bool) {
	//
	page, w, ok := pf.resolve(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	offset, _ := page.table.Offset(r)
	bitmap := page.glyphBitmap(offset, w)
	if bitmap == nil {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	mask := decodeMask(bitmap, w, page.height, page.bpp)
	x, y := dot.X.Round(), dot.Y.Round()
	dr := image.Rect(x, y-page.height, x+w, y)
	adv := w
	if page.mono != 0 {
		adv = page.mono
	}
	return dr, mask, image.Point{}, fixed.I(adv), true
}

// resolve walks the chain for r and returns the resolving page together
// with the glyph's own width.
func (pf *pixelFace) resolve(r rune) (*Font, int, bool) {
	for _, page := range pf.head.Pages() {
		if w, ok := page.table.Width(r); ok {
			return page, w, true
		}
	}
	return nil, 0, false
}

// decodeMask expands packed bitmap rows into an alpha mask. Pixels are
// stored MSB-first with bpp bits each, rows padded to byte boundaries;
// pixel values scale linearly to alpha.
func decodeMask(bitmap []byte, w, h, bpp int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	rowlen := (w*bpp + 7) / 8
	maxval := (1 << bpp) - 1
	for y := 0; y < h; y++ {
		row := bitmap[y*rowlen : (y+1)*rowlen]
		for x := 0; x < w; x++ {
			bitpos := x * bpp
			shift := 8 - bpp - bitpos%8
			v := int(row[bitpos/8]>>shift) & maxval
			mask.SetAlpha(x, y, color.Alpha{A: uint8(v * 255 / maxval)})
		}
	}
	return mask
}
