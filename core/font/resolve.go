package font

// Chain queries. Every query walks the fallback chain starting at its
// receiver page and stops at the first page that resolves the code
// point; later pages are never consulted once a match is found, even if
// they would also contain the code point.

// Width returns the advance width in pixels for code point r, resolved
// across f's fallback chain. If the resolving page declares a monospace
// width, that width is returned instead of the glyph's own.
// ok is false if no page of the chain contains r.
func (f *Font) Width(r rune) (w int, ok bool) {
	for _, page := range f.Pages() {
		if w, ok := page.table.Width(r); ok {
			if page.mono != 0 {
				return page.mono, true
			}
			return w, true
		}
	}
	return 0, false
}

// RealWidth is like Width, but always returns the glyph's own advance
// width, ignoring any monospace override of the resolving page.
func (f *Font) RealWidth(r rune) (w int, ok bool) {
	for _, page := range f.Pages() {
		if w, ok := page.table.Width(r); ok {
			return w, true
		}
	}
	return 0, false
}

// IsMonospace reports whether the page resolving code point r declares
// a monospace width. It is false for code points no page contains.
func (f *Font) IsMonospace(r rune) bool {
	for _, page := range f.Pages() {
		if _, ok := page.table.Width(r); ok {
			return page.mono != 0
		}
	}
	return false
}

// Bitmap returns the packed bitmap rows of the glyph for code point r,
// resolved across f's fallback chain, or nil if no page contains r.
// The returned slice aliases the resolving page's buffer and must be
// treated as read-only; its layout is Height rows of rowBytes(width)
// bytes at the page's bit depth.
func (f *Font) Bitmap(r rune) []byte {
	for _, page := range f.Pages() {
		if offset, ok := page.table.Offset(r); ok {
			w, _ := page.table.Width(r)
			return page.glyphBitmap(offset, w)
		}
	}
	return nil
}

// Bpp returns the bit depth of the first page of f's chain whose
// declared range contains code point r. The page need not actually
// contain a glyph for r: range membership alone decides, since the bit
// depth is a property of the page, not of a single glyph.
// Bpp returns 0 if no page's range contains r.
func (f *Font) Bpp(r rune) int {
	for _, page := range f.Pages() {
		if first, last := page.table.Range(); r >= first && r <= last {
			return page.bpp
		}
	}
	return 0
}
