package render

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jamesdiacono/JSValid/pkg/jsvalid"
)

// ParseYAML parses catalog content of the form
//
//	en:
//	  not_type_a: "not of type {a}"
//	de:
//	  not_type_a: "nicht vom Typ {a}"
//
// into per-locale catalogs suitable for WithCatalogs.
func ParseYAML(content []byte) (map[string]Catalog, error) {
	var data map[string]map[string]string
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no locales found", ErrInvalidCatalog)
	}

	catalogs := make(map[string]Catalog, len(data))
	for locale, templates := range data {
		if locale == "" {
			return nil, fmt.Errorf("%w: empty locale code", ErrInvalidCatalog)
		}
		catalog := make(Catalog, len(templates))
		for code, tmpl := range templates {
			catalog[jsvalid.Code(code)] = tmpl
		}
		catalogs[locale] = catalog
	}
	return catalogs, nil
}
