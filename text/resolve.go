package text

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/go-text/typesetting/fontscan"

	"github.com/gogpu/fontbake"
)

// Resolver finds fonts by file path or family name.
//
// A name is tried, in order, as a font file path, as a system font family
// (through the go-text font index) and as a font file name in the usual
// font directories. There is no fallback to a different family.
type Resolver struct {
	systemFonts bool
	cacheDir    string

	fontMap *fontscan.FontMap
	scanned bool
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithCacheDir sets the directory where the system font index is cached.
// The default is a fontbake directory in the user cache directory.
func WithCacheDir(dir string) ResolverOption {
	return func(r *Resolver) {
		r.cacheDir = dir
	}
}

// WithSystemFonts enables or disables lookups of installed fonts.
// When disabled only font file paths resolve.
func WithSystemFonts(enabled bool) ResolverOption {
	return func(r *Resolver) {
		r.systemFonts = enabled
	}
}

// NewResolver creates a resolver. The system font index is built lazily on
// the first family lookup.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{systemFonts: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve loads the font named by family.
// It returns a *FontNotFoundError when nothing matches.
func (r *Resolver) Resolve(family string) (*FontSource, error) {
	log := fontbake.Logger()

	if fi, err := os.Stat(family); err == nil && fi.Mode().IsRegular() {
		log.Info("loading font file", "path", family)
		return NewFontSourceFromFile(family)
	}
	if !r.systemFonts || family == "" {
		return nil, &FontNotFoundError{Family: family}
	}

	if loc, ok := r.findSystemFont(family); ok {
		log.Info("resolved system font", "family", family, "path", loc.File, "index", loc.Index)
		return NewFontSourceFromFile(loc.File, WithCollectionIndex(int(loc.Index)))
	}

	for _, name := range []string{family, strings.ReplaceAll(family, " ", "")} {
		if path, err := findfont.Find(name); err == nil && path != "" {
			log.Info("resolved font file", "family", family, "path", path)
			return NewFontSourceFromFile(path)
		}
	}

	return nil, &FontNotFoundError{Family: family}
}

// findSystemFont looks family up in the system font index.
func (r *Resolver) findSystemFont(family string) (fontscan.Location, bool) {
	if !r.scanned {
		r.scanned = true
		r.fontMap = fontscan.NewFontMap(fontbake.PrintfLogger())
		if err := r.fontMap.UseSystemFonts(r.indexDir()); err != nil {
			fontbake.Logger().Warn("failed loading system fonts", "err", err)
			r.fontMap = nil
		}
	}
	if r.fontMap == nil {
		return fontscan.Location{}, false
	}
	return r.fontMap.FindSystemFont(family)
}

// indexDir returns the directory for the system font index.
func (r *Resolver) indexDir() string {
	if r.cacheDir != "" {
		return r.cacheDir
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		fontbake.Logger().Debug("failed resolving font cache dir", "err", err)
		return ""
	}
	return filepath.Join(dir, "fontbake")
}
