package settings

import "errors"

var (
	ErrSettingsNotFound    = errors.New("global settings not found")
	ErrDisciplineExists    = errors.New("discipline already exists")
	ErrDisciplineNotFound  = errors.New("discipline not found")
	ErrEmptyDisciplineList = errors.New("discipline list cannot be empty")
	ErrProtectedMissing    = errors.New("protected discipline missing from list")
	ErrDefaultMissing      = errors.New("default discipline missing from list")
)

// ValidationError mirrors the facility module: first failed check wins.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
