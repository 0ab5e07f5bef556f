package render

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse YAML catalog content")
	ErrInvalidCatalog    = errors.New("invalid catalog structure")
)
