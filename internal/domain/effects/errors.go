package effects

import "errors"

// Sentinel kinds for effect-ledger errors.
var (
	ErrUnknownAction = errors.New("unknown recovery action")
	ErrUnknownEffect = errors.New("unknown effect")
	ErrNotApplicable = errors.New("recovery action not applicable")
)
