package event

import "errors"

// Sentinel kinds for event-resolver errors.
var (
	ErrNoPendingEvent = errors.New("no pending event")
	ErrUnknownChoice  = errors.New("unknown event choice")
)
