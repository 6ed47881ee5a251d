package budget

import "errors"

// The budget service reports every failure as exactly one of these errors so
// that callers can map each kind to a specific, actionable message.
var (
	ErrInvalidAmount          = errors.New("amounts must be larger than zero")
	ErrInvalidPercentageTotal = errors.New("envelope percentages must add up to exactly 100")
	ErrInvalidName            = errors.New("the envelope name must not be empty")
	ErrInsufficientBalance    = errors.New("the envelope balance is not sufficient for this expense")
	ErrEnvelopeNotFound       = errors.New("there is no envelope matching your query")
	ErrStoreUnavailable       = errors.New("the storage backend did not complete the request")

	// ErrConflict means an optimistic balance write lost a race against a
	// concurrent writer. The whole operation has to be retried, not just
	// the write.
	ErrConflict = errors.New("the envelope was modified concurrently")
)
