package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(events []Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Name
	}
	return out
}

func TestSortEventsOrder(t *testing.T) {
	events := []Event{
		NewDeadline("Tue deadline", Tuesday),
		NewFixed("Mon late", Monday, 1500, 1600),
		NewDeadline("Mon deadline", Monday),
		NewFixed("Mon early", Monday, 800, 900),
		NewFixed("Sun", Sunday, 0, 100),
		NewFixed("Tue", Tuesday, 2300, 2330),
	}
	SortEvents(events)

	assert.Equal(t, []string{
		"Mon early", "Mon late", "Mon deadline",
		"Tue", "Tue deadline",
		"Sun",
	}, names(events))
}

func TestSortEventsDeadlinesStable(t *testing.T) {
	events := []Event{
		NewDeadline("first", Wednesday),
		NewDeadline("second", Wednesday),
		NewFixed("fixed", Wednesday, 2359, 2359),
		NewDeadline("third", Wednesday),
	}
	SortEvents(events)
	assert.Equal(t, []string{"fixed", "first", "second", "third"}, names(events))
}

func TestSortEventsAdjacentInvariant(t *testing.T) {
	events := []Event{
		NewFixed("a", Friday, 1000, 1100),
		NewDeadline("b", Monday),
		NewFixed("c", Monday, 1200, 1300),
		NewFixed("d", Friday, 900, 930),
		NewDeadline("e", Friday),
		NewFixed("f", Monday, 1200, 1230),
		NewFixed("g", Thursday, 0, 30),
	}
	SortEvents(events)

	for i := 0; i+1 < len(events); i++ {
		a, b := events[i], events[i+1]
		require.LessOrEqual(t, a.Day, b.Day)
		if a.Day < b.Day {
			continue
		}
		ok := (a.IsDeadline && b.IsDeadline) ||
			(!a.IsDeadline && b.IsDeadline) ||
			(!a.IsDeadline && !b.IsDeadline && a.StartTime <= b.StartTime)
		assert.True(t, ok, "pair %q, %q out of order", a.Name, b.Name)
	}
}

func TestCompare(t *testing.T) {
	fixed := NewFixed("x", Monday, 900, 1000)
	deadline := NewDeadline("y", Monday)
	assert.Equal(t, -1, Compare(fixed, deadline))
	assert.Equal(t, 1, Compare(deadline, fixed))
	assert.Equal(t, 0, Compare(deadline, deadline))
	assert.Equal(t, -1, Compare(deadline, NewFixed("z", Tuesday, 0, 100)))
}

func TestSortEventsEmpty(t *testing.T) {
	var events []Event
	SortEvents(events)
	assert.Empty(t, events)
}
