package types

import "errors"

// Dispatch and lookup errors.
var (
	ErrUnknownVariant   = errors.New("unknown variant")
	ErrMissingFallback  = errors.New("matcher requires a fallback message")
	ErrScenarioNotFound = errors.New("scenario not found")
)
