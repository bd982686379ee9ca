package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidDuration = errors.New("invalid duration format")

// FormatHMS renders a duration in whole seconds as "HH:MM:SS". The hour
// field is not bounded at 24: 30 hours formats as "30:00:00". Negative
// durations are clamped to zero.
func FormatHMS(totalSeconds int64) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	rem := totalSeconds % 3600
	return fmt.Sprintf("%02d:%02d:%02d", hours, rem/60, rem%60)
}

// ParseHMS parses a "HH:MM:SS" string back into whole seconds. The hour
// field may exceed two digits; minutes and seconds must be below 60.
func ParseHMS(s string) (int64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	minutes, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	seconds, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	return hours*3600 + minutes*60 + seconds, nil
}
