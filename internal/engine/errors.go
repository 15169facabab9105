package engine

import "errors"

// Sentinel kinds for engine errors.
var (
	ErrNoActiveGame  = errors.New("no active game")
	ErrInvalidParams = errors.New("invalid parameters")
)
