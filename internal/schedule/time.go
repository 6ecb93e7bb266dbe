package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NoStart marks a deadline task that has no specific start time.
const NoStart = -1

// EndOfDay is the encoded time every deadline is due by.
const EndOfDay = 2359

// ErrInvalidTime is returned by ParseTimeStrict for input outside HH:MM / HH.
var ErrInvalidTime = errors.New("invalid time")

// TimeParser turns user input into the hour*100+minute encoding.
type TimeParser func(input string) (int, error)

// Permissive wraps ParseTime so it can stand in for a TimeParser.
func Permissive(input string) (int, error) {
	return ParseTime(input), nil
}

// ParseTime accepts "HH:MM" or a bare hour ("14") and returns hour*100+minute.
// Nothing is range-checked; malformed components parse like atoi and may yield
// a nonsensical value.
func ParseTime(input string) int {
	input = strings.TrimSpace(input)
	if h, m, ok := strings.Cut(input, ":"); ok {
		return atoi(h)*100 + atoi(m)
	}
	return atoi(input) * 100
}

// ParseTimeStrict is ParseTime with validation: both components must be
// numeric, hour in [0,23] and minute in [0,59].
func ParseTimeStrict(input string) (int, error) {
	input = strings.TrimSpace(input)
	hs, ms, hasMinute := strings.Cut(input, ":")
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, input)
	}
	m := 0
	if hasMinute {
		m, err = strconv.Atoi(ms)
		if err != nil || m < 0 || m > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, input)
		}
	}
	return h*100 + m, nil
}

// FormatTime renders an encoded time as zero-padded HH:MM. It is not
// meaningful for NoStart.
func FormatTime(t int) string {
	return fmt.Sprintf("%02d:%02d", t/100, t%100)
}

// atoi parses an optional sign and leading digits, stopping at the first
// non-digit. No digits yields 0.
func atoi(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}

// minutes converts the hour*100+minute encoding to minutes since midnight.
func minutes(t int) int {
	return (t/100)*60 + t%100
}
