package reservation

import "errors"

var (
	ErrRulesNotAccepted = errors.New("facility rules must be accepted")
	ErrTooLate          = errors.New("cancellation window has passed")
	ErrAlreadyStarted   = errors.New("reservation already started")
	ErrNotOwner         = errors.New("reservation belongs to another client")
	ErrTooSoon          = errors.New("booking does not meet the minimum advance time")
	ErrInvalidInput     = errors.New("invalid reservation input")
)
