package font

import (
	"github.com/npillmayer/pxfont/core"
)

// maxChainLength bounds every walk along next-page links. Fallback
// chains are short in practice (a handful of extension pages); a walk
// exceeding this bound indicates a cycle or otherwise corrupted chain.
const maxChainLength = 256

// AddPage appends page child at the tail of parent's fallback chain,
// extending the character set of parent. A nil parent is a no-op.
//
// AddPage refuses to link a page which is already a member of the
// chain, as that would create a cycle. Chain mutation must not run
// concurrently with other mutations or with queries on the same chain.
func AddPage(child, parent *Font) error {
	if parent == nil {
		return nil
	}
	if child == nil {
		return core.Error(core.EINVALID, "cannot add null font page")
	}
	tail := parent
	for i := 0; ; i++ {
		if i >= maxChainLength {
			return core.Error(core.EINTERNAL, "font chain of %q exceeds %d pages, assuming cycle",
				parent.Fontname, maxChainLength)
		}
		if tail == child {
			return core.Error(core.EINVALID, "font page %q is already part of the chain",
				child.Fontname)
		}
		if tail.next == nil {
			break
		}
		tail = tail.next
	}
	tracer().Debugf("font chain of %q extended by page %q", parent.Fontname, child.Fontname)
	tail.next = child
	return nil
}

// RemovePage splices page child out of parent's fallback chain,
// re-linking its predecessor to the pages following child. Nil
// arguments are a no-op.
//
// child must be reachable from parent; if it is not, RemovePage leaves
// the chain untouched and reports an error.
func RemovePage(child, parent *Font) error {
	if parent == nil || child == nil {
		return nil
	}
	pred := parent
	for i := 0; pred.next != child; i++ {
		if pred.next == nil || i >= maxChainLength {
			return core.Error(core.EMISSING, "font page %q not found in chain of %q",
				child.Fontname, parent.Fontname)
		}
		pred = pred.next
	}
	tracer().Debugf("font page %q removed from chain of %q", child.Fontname, parent.Fontname)
	pred.next = child.next
	child.next = nil
	return nil
}

// Pages returns the pages of f's fallback chain in chain order,
// starting with f itself. A malformed (cyclic) chain is truncated at
// the walk bound.
func (f *Font) Pages() []*Font {
	var pages []*Font
	for page := f; page != nil; page = page.next {
		if len(pages) >= maxChainLength {
			tracer().Errorf("font chain of %q exceeds %d pages, assuming cycle",
				f.Fontname, maxChainLength)
			break
		}
		pages = append(pages, page)
	}
	return pages
}
