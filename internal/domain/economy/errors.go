package economy

import "errors"

// Sentinel kinds for economy errors.
var (
	ErrInsufficientResources = errors.New("insufficient resources")
)
