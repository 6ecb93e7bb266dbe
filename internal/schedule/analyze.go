package schedule

import "fmt"

// Clash is a pair of adjacent same-day fixed events whose intervals overlap.
type Clash struct {
	First  Event
	Second Event
}

func (c Clash) Day() Weekday { return c.First.Day }

func (c Clash) String() string {
	return fmt.Sprintf("Clash: '%s' overlaps with '%s' on %s", c.First.Name, c.Second.Name, c.Day())
}

// FreeSlot is the gap [Start, End) between two adjacent same-day fixed events.
type FreeSlot struct {
	Day   Weekday
	Start int
	End   int
}

func (f FreeSlot) String() string {
	return fmt.Sprintf("%s: %s - %s", f.Day, FormatTime(f.Start), FormatTime(f.End))
}

// Minutes is the slot length.
func (f FreeSlot) Minutes() int {
	return minutes(f.End) - minutes(f.Start)
}

// sameDayFixed reports whether an adjacent pair takes part in clash and gap
// detection: both fixed and on the same day.
func sameDayFixed(a, b Event) bool {
	return !a.IsDeadline && !b.IsDeadline && a.Day == b.Day
}

// DetectClashes scans adjacent pairs of an already sorted sequence. Only the
// immediate successor is checked, so an overlap between two events separated
// by a non-overlapping one is not reported.
func DetectClashes(events []Event) []Clash {
	var clashes []Clash
	for i := 0; i+1 < len(events); i++ {
		a, b := events[i], events[i+1]
		if sameDayFixed(a, b) && a.EndTime > b.StartTime {
			clashes = append(clashes, Clash{First: a, Second: b})
		}
	}
	return clashes
}

// FindFreeSlots reports the gaps between adjacent same-day fixed events of an
// already sorted sequence.
func FindFreeSlots(events []Event) []FreeSlot {
	var slots []FreeSlot
	for i := 0; i+1 < len(events); i++ {
		a, b := events[i], events[i+1]
		if sameDayFixed(a, b) && a.EndTime < b.StartTime {
			slots = append(slots, FreeSlot{Day: a.Day, Start: a.EndTime, End: b.StartTime})
		}
	}
	return slots
}

// BookedMinutes totals the length of fixed events per weekday. Events whose
// end is not after their start contribute nothing.
func BookedMinutes(events []Event) [DaysInWeek]int {
	var total [DaysInWeek]int
	for _, e := range events {
		if e.IsDeadline || !e.Day.Valid() {
			continue
		}
		if d := minutes(e.EndTime) - minutes(e.StartTime); d > 0 {
			total[e.Day] += d
		}
	}
	return total
}
