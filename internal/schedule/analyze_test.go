package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectClashesOverlap(t *testing.T) {
	events := []Event{
		NewFixed("Math", Monday, 900, 1030),
		NewFixed("Physics", Monday, 1000, 1100),
	}
	clashes := DetectClashes(events)
	require.Len(t, clashes, 1)
	assert.Equal(t, "Math", clashes[0].First.Name)
	assert.Equal(t, "Physics", clashes[0].Second.Name)
	assert.Equal(t, Monday, clashes[0].Day())
	assert.Equal(t, "Clash: 'Math' overlaps with 'Physics' on Monday", clashes[0].String())
}

func TestDetectClashesTouching(t *testing.T) {
	events := []Event{
		NewFixed("Math", Monday, 900, 1000),
		NewFixed("Physics", Monday, 1000, 1100),
	}
	assert.Empty(t, DetectClashes(events))
}

func TestDetectClashesIgnoresDeadlinesAndOtherDays(t *testing.T) {
	events := []Event{
		NewFixed("Late", Monday, 2200, 2359),
		NewDeadline("Due", Monday),
		NewFixed("Early", Tuesday, 0, 100),
	}
	assert.Empty(t, DetectClashes(events))
}

func TestDetectClashesAdjacentOnly(t *testing.T) {
	// A overlaps C, but the scan only sees A-B and B-C.
	events := []Event{
		NewFixed("A", Monday, 900, 1200),
		NewFixed("B", Monday, 1000, 1030),
		NewFixed("C", Monday, 1100, 1130),
	}
	clashes := DetectClashes(events)
	require.Len(t, clashes, 1)
	assert.Equal(t, "A", clashes[0].First.Name)
	assert.Equal(t, "B", clashes[0].Second.Name)
}

func TestDetectClashesEmpty(t *testing.T) {
	assert.Empty(t, DetectClashes(nil))
	assert.Empty(t, DetectClashes([]Event{NewFixed("solo", Monday, 900, 1000)}))
}

func TestFindFreeSlots(t *testing.T) {
	events := []Event{
		NewFixed("Math", Monday, 900, 1000),
		NewFixed("Physics", Monday, 1100, 1200),
	}
	slots := FindFreeSlots(events)
	require.Len(t, slots, 1)
	assert.Equal(t, FreeSlot{Day: Monday, Start: 1000, End: 1100}, slots[0])
	assert.Equal(t, "Monday: 10:00 - 11:00", slots[0].String())
	assert.Equal(t, 60, slots[0].Minutes())
}

func TestFindFreeSlotsNone(t *testing.T) {
	events := []Event{
		NewFixed("Math", Monday, 900, 1000),
		NewFixed("Physics", Monday, 1000, 1100),
		NewDeadline("Essay", Monday),
		NewFixed("Gym", Tuesday, 1800, 1900),
	}
	assert.Empty(t, FindFreeSlots(events))
}

func TestBookedMinutes(t *testing.T) {
	events := []Event{
		NewFixed("a", Monday, 900, 1030),
		NewFixed("b", Monday, 1100, 1115),
		NewDeadline("c", Monday),
		NewFixed("d", Sunday, 2300, 2359),
		NewFixed("backwards", Friday, 1200, 1100),
	}
	got := BookedMinutes(events)
	assert.Equal(t, 105, got[Monday])
	assert.Equal(t, 59, got[Sunday])
	assert.Equal(t, 0, got[Friday])
	assert.Equal(t, 0, got[Tuesday])
}
