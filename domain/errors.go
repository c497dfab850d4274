package domain

import "errors"

//----------------------------------------------------------------------------------------------------
// Failure Taxonomy
//----------------------------------------------------------------------------------------------------

// Every stage of a run either fully succeeds or aborts with one of these
// categories wrapped around the underlying cause. There are no retries:
// each category requires user action (fix permissions, pick another year
// or target) before another run makes sense.
var (
	// ErrStoreUnavailable means the message archive could not be opened or read.
	ErrStoreUnavailable = errors.New("message store unavailable")

	// ErrInvalidYear means the requested year cannot form a valid time window.
	ErrInvalidYear = errors.New("invalid year")

	// ErrTargetNotFound means the requested contact or group matched nothing in the archive.
	ErrTargetNotFound = errors.New("target not found")

	// ErrNoMessagesInRange means the resolved scope holds zero messages for the
	// requested year. Downstream metrics divide by the total count, so the run
	// halts before aggregation output is produced.
	ErrNoMessagesInRange = errors.New("no messages in range")
)
