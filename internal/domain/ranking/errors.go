package ranking

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrUnknownRival = errors.New("unknown rival")
)
