// Package render turns jsvalid violations into human-readable messages.
//
// The core engine reports failures as structured data: a stable violation
// code plus positional exhibits. This package owns the mapping from that
// data to text. Message templates reference exhibits by their positional
// letter names in curly braces, so the template for not_type_a might read
// "not of type {a}". A placeholder whose exhibit is missing is left in the
// output verbatim rather than causing an error.
//
// A Renderer starts from a built-in English catalog covering every violation
// code and can be extended or overridden per locale, with catalogs supplied
// directly or parsed from YAML:
//
//	catalogs, err := render.ParseYAML(content)
//	if err != nil { ... }
//	r := render.New(
//	    render.WithLocale("de"),
//	    render.WithCatalogs(catalogs),
//	)
//	msg := r.Render(jsvalid.CodeNotTypeA, []any{"string"})
//
// Unknown codes and locales fall back: locale catalog, then the English
// catalog, then the code itself. Rendering never fails.
//
// Renderers are immutable after construction and safe for concurrent use.
package render
