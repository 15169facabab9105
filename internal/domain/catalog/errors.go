package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrParseCatalog   = errors.New("catalog parse failed")
	ErrInvalidCatalog = errors.New("invalid catalog")
)
