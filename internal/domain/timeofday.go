package domain

import (
	"fmt"
	"time"
)

// ParseMinute converts an "HH:MM" clock string to minutes since midnight.
func ParseMinute(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinute renders minutes since midnight back to "HH:MM".
func FormatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
