package font

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// enumerable is satisfied by glyph tables which can list the code
// points they actually contain (both in-package layouts do).
type enumerable interface {
	Codes() []rune
}

// Coverage returns the set of code points for which f's fallback chain
// can resolve a glyph, as a unicode.RangeTable. Pages whose glyph table
// cannot enumerate its code points contribute nothing and are reported
// to the trace.
func (f *Font) Coverage() *unicode.RangeTable {
	var tables []*unicode.RangeTable
	for _, page := range f.Pages() {
		e, ok := page.table.(enumerable)
		if !ok {
			tracer().Infof("font page %q cannot enumerate code points, skipping", page.Fontname)
			continue
		}
		tables = append(tables, rangetable.New(e.Codes()...))
	}
	return rangetable.Merge(tables...)
}
