package facility

import "errors"

var (
	ErrHasReservations  = errors.New("facility has upcoming reservations")
	ErrSettingsNotFound = errors.New("global settings not found")
)

// ValidationError carries the first human-readable problem found while
// checking a facility against the club-wide settings.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
