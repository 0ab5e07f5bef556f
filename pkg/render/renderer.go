package render

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"

	"github.com/jamesdiacono/JSValid/pkg/jsvalid"
)

// DefaultLocale is used when no locale option is given and as the final
// catalog fallback for locales without a template.
const DefaultLocale = "en"

// Catalog maps violation codes to message templates. Templates reference
// exhibits positionally: {a} is the first exhibit, {b} the second, and so on.
type Catalog map[jsvalid.Code]string

// builtin covers every code in the closed enumeration.
var builtin = Catalog{
	jsvalid.CodeNotTypeA:                  "not of type {a}",
	jsvalid.CodeNotWunOf:                  "not one of the permitted alternatives",
	jsvalid.CodeNotEqualToA:               "not equal to {a}",
	jsvalid.CodeNotFinite:                 "not a finite number",
	jsvalid.CodeOutOfBounds:               "out of bounds",
	jsvalid.CodeWrongPattern:              "does not match the expected pattern",
	jsvalid.CodeMissingPropertyA:          "missing property {a}",
	jsvalid.CodeUnexpected:                "unexpected value",
	jsvalid.CodeUnexpectedClassificationA: "unexpected classification {a}",
	jsvalid.CodeUnexpectedPropertyA:       "unexpected property {a}",
}

// Renderer maps violation codes plus exhibits to human-readable strings.
// It is immutable after construction and safe for concurrent use.
type Renderer struct {
	catalogs map[string]Catalog
	locale   string
	logger   *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLocale sets the locale Render uses.
func WithLocale(locale string) Option {
	return func(r *Renderer) {
		r.locale = locale
	}
}

// WithCatalog merges a catalog into the given locale, overriding existing
// templates code by code.
func WithCatalog(locale string, catalog Catalog) Option {
	return func(r *Renderer) {
		merged := r.catalogs[locale]
		if merged == nil {
			merged = make(Catalog, len(catalog))
			r.catalogs[locale] = merged
		}
		for code, tmpl := range catalog {
			merged[code] = tmpl
		}
	}
}

// WithCatalogs merges catalogs for several locales, as produced by ParseYAML.
func WithCatalogs(catalogs map[string]Catalog) Option {
	return func(r *Renderer) {
		for locale, catalog := range catalogs {
			WithCatalog(locale, catalog)(r)
		}
	}
}

// WithLogger sets a logger for diagnostics about missing templates. The
// default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// New creates a Renderer seeded with the built-in English catalog.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		catalogs: map[string]Catalog{DefaultLocale: {}},
		locale:   DefaultLocale,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for code, tmpl := range builtin {
		r.catalogs[DefaultLocale][code] = tmpl
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces the message for a violation code and its exhibits in the
// Renderer's locale. Lookup falls back from the locale's catalog to the
// default catalog and finally to the code itself, so rendering never fails.
func (r *Renderer) Render(code jsvalid.Code, exhibits []any) string {
	return r.RenderLocale(r.locale, code, exhibits)
}

// RenderLocale is Render with an explicit locale.
func (r *Renderer) RenderLocale(locale string, code jsvalid.Code, exhibits []any) string {
	tmpl, ok := r.catalogs[locale][code]
	if !ok {
		r.logger.Warn("no template for code", "locale", locale, "code", code)
		tmpl, ok = r.catalogs[DefaultLocale][code]
	}
	if !ok {
		tmpl = string(code)
	}
	return substitute(tmpl, exhibits)
}

// Describe renders a whole violation, appending its path when present.
func (r *Renderer) Describe(v jsvalid.Violation) string {
	msg := r.Render(v.Code, v.Exhibits)
	if p := v.PathString(); p != "" {
		return msg + " at " + p
	}
	return msg
}

// Placeholders are single lowercase letters in curly braces: {a}, {b}, ...
var placeholderRe = regexp.MustCompile(`\{([a-z])\}`)

// substitute replaces each placeholder with the corresponding exhibit. A
// placeholder with no exhibit, or one whose value cannot be stringified, is
// left in place verbatim.
func substitute(tmpl string, exhibits []any) string {
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(match string) string {
		i := int(match[1] - 'a')
		if i >= len(exhibits) {
			return match
		}
		s, ok := stringify(exhibits[i])
		if !ok {
			return match
		}
		return s
	})
}

func stringify(v any) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()
	return fmt.Sprintf("%v", v), true
}
