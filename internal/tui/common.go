package tui

import (
	"fmt"
	"slices"

	"github.com/sadopc/planr/internal/export"
	"github.com/sadopc/planr/internal/schedule"
)

// filterAll shows every day.
const filterAll = -1

// --- Messages ---

type recordsLoadedMsg struct {
	records []export.Record
	err     error
}

// --- Helpers ---

// filterName is the tab label for a filter value.
func filterName(f int) string {
	if f == filterAll {
		return "All"
	}
	return schedule.Weekday(f).String()[:3]
}

func nextFilter(f int) int {
	if f >= schedule.DaysInWeek-1 {
		return filterAll
	}
	return f + 1
}

func prevFilter(f int) int {
	if f <= filterAll {
		return schedule.DaysInWeek - 1
	}
	return f - 1
}

func formatHours(mins int) string {
	return fmt.Sprintf("%.1fh", float64(mins)/60)
}

// freeMinutes sums the gaps between consecutive fixed events on day.
func freeMinutes(events []schedule.Event, day schedule.Weekday) int {
	sorted := slices.Clone(events)
	schedule.SortEvents(sorted)
	total := 0
	for _, slot := range schedule.FindFreeSlots(sorted) {
		if slot.Day == day {
			total += slot.Minutes()
		}
	}
	return total
}
