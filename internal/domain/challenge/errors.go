package challenge

import "errors"

// Sentinel kinds for challenge errors.
var (
	ErrUnknownChallenge = errors.New("unknown challenge")
	ErrNotComplete      = errors.New("challenge not complete")
	ErrAlreadyClaimed   = errors.New("challenge already claimed")
	ErrCorruptChallenge = errors.New("corrupted challenge state")
)
