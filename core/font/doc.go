/*
Package font implements glyph lookup for pixel fonts.

A pixel font is organized in "pages": each page covers a closed range of
Unicode code points and carries a glyph table, a bitmap buffer and a bit
depth used to decode that buffer. Pages may be linked into a fallback
chain to extend the character set of a primary font; queries walk the
chain in order and the first page containing the code point wins.

Glyph tables come in two layouts. A continuous table stores one glyph
per code point of the page's range and resolves lookups by direct
indexing. A sparse table stores glyphs for a subset of the range only
and resolves lookups by binary search over a sorted code-point list.
A page is bound to one of the two layouts at construction time; query
code never needs to know which one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'pxfont.font'
func tracer() tracing.Trace {
	return tracing.Select("pxfont.font")
}
