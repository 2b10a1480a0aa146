/*
Package builtin provides the builtin default font: a fixed-width
8x16 pixel font covering printable ASCII, with 1 bit per pixel. Its
glyph shapes derive from the classic VGA text-mode character set.

The builtin font is the page of last resort: the registry hands it out
whenever a requested font is unknown, so that text keeps rendering.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package builtin

import (
	"sync"

	"github.com/npillmayer/pxfont/core/font"
)

const (
	asciiFirst  = 0x20 // space
	asciiLast   = 0x7E // tilde
	glyphWidth  = 8
	glyphHeight = 16
	glyphBytes  = 16 // 16 rows of 1 byte at 1 bpp
)

var builtinLoading sync.Once

var builtinFont *font.Font

// Font returns the builtin default font. It is always present and
// constructed on first use.
func Font() *font.Font {
	builtinLoading.Do(func() {
		builtinFont = buildFont()
	})
	return builtinFont
}

func buildFont() *font.Font {
	n := asciiLast - asciiFirst + 1
	glyphs := make([]font.Glyph, n)
	for i := range glyphs {
		glyphs[i] = font.Glyph{Width: glyphWidth, Offset: i * glyphBytes}
	}
	table, err := font.NewContinuousTable(asciiFirst, asciiLast, glyphs)
	if err == nil {
		var f *font.Font
		f, err = font.NewFont(font.Desc{
			Name:      "builtin-8x16",
			Height:    glyphHeight,
			Bpp:       1,
			MonoWidth: glyphWidth,
			Table:     table,
			Bitmap:    asciiBitmap,
		})
		if err == nil {
			return f
		}
	}
	panic("cannot build default font") // this cannot happen
}
