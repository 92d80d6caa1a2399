package pricing

import "errors"

var (
	ErrNoApplicableRule = errors.New("no applicable price rule")
	ErrInvalidInput     = errors.New("invalid input")
	ErrCurrencyMismatch = errors.New("currency differs from facility's existing rules")
	ErrInvalidRule      = errors.New("invalid price rule")
)
