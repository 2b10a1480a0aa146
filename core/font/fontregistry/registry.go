package fontregistry

import (
	"strings"
	"sync"

	"github.com/npillmayer/pxfont/core"
	"github.com/npillmayer/pxfont/core/font"
	"github.com/npillmayer/pxfont/core/font/builtin"
)

// Registry is a type for holding the font pages known to a rendering
// system. Pages are typically constructed once at process start from
// static glyph data and registered under a normalized name.
type Registry struct {
	sync.Mutex
	fonts map[string]*font.Font
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold the known
// font pages. It always contains the builtin default font, registered
// under the name "default".
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
		globalFontRegistry.StoreFont("default", builtin.Font())
	})
	return globalFontRegistry
}

func NewRegistry() *Registry {
	fr := &Registry{
		fonts: make(map[string]*font.Font),
	}
	return fr
}

// StoreFont pushes a font page into the registry if it isn't contained
// yet.
//
// The font will be stored using the normalized font name as a key. If
// this key is already associated with a font, that font will not be
// overridden.
func (fr *Registry) StoreFont(name string, f *font.Font) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fname := NormalizeFontname(name)
	if _, ok := fr.fonts[fname]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, fname)
		fr.fonts[fname] = f
	}
}

// Font returns the font page registered under a given name. If no such
// page is known, Font returns the builtin default font together with an
// error, so that callers always end up with a usable font.
func (fr *Registry) Font(name string) (*font.Font, error) {
	fname := NormalizeFontname(name)
	tracer().Debugf("registry searches for font %s", fname)
	fr.Lock()
	defer fr.Unlock()
	if f, ok := fr.fonts[fname]; ok {
		return f, nil
	}
	tracer().Infof("registry does not contain font %s, falling back to builtin", fname)
	err := core.Error(core.EMISSING, "font %s not found in registry", name)
	return builtin.Font(), err
}

// LogFontList is a helper function to dump the list of known font pages
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	fr.Lock()
	defer fr.Unlock()
	tracer().Infof("--- registered fonts ---")
	for k, v := range fr.fonts {
		first, last := v.Range()
		tracer().Infof("font [%s] = %s %#U…%#U", k, v.Fontname, first, last)
		for i, page := range v.Pages()[1:] {
			first, last = page.Range()
			tracer().Infof("       page %d = %s %#U…%#U", i+1, page.Fontname, first, last)
		}
	}
	tracer().Infof("------------------------")
}

// NormalizeFontname normalizes a font name to be used as a registry
// key: trimmed, lower-case, blanks replaced, file extension cut off.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	return strings.ToLower(fname)
}
