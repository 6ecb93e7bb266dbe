package schedule

import "slices"

// Compare orders events by day, then start time, with NoStart sorting after
// every real start time on the same day. Two deadlines compare equal.
func Compare(a, b Event) int {
	if a.Day != b.Day {
		if a.Day < b.Day {
			return -1
		}
		return 1
	}
	aOpen, bOpen := a.StartTime == NoStart, b.StartTime == NoStart
	switch {
	case aOpen && bOpen:
		return 0
	case aOpen:
		return 1
	case bOpen:
		return -1
	}
	switch {
	case a.StartTime < b.StartTime:
		return -1
	case a.StartTime > b.StartTime:
		return 1
	}
	return 0
}

// SortEvents orders events in place. The sort is stable, so deadlines on the
// same day (and fixed events with equal starts) keep their input order.
func SortEvents(events []Event) {
	slices.SortStableFunc(events, Compare)
}
