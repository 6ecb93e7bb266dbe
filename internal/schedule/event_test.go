package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeadlineNormalization(t *testing.T) {
	for _, in := range [][2]int{{900, 1000}, {0, 0}, {-5, 9999}} {
		e := NewEvent("Essay", Tuesday, in[0], in[1], true)
		assert.Equal(t, NoStart, e.StartTime)
		assert.Equal(t, EndOfDay, e.EndTime)
	}

	d := NewDeadline("Report", Friday)
	assert.True(t, d.IsDeadline)
	assert.Equal(t, NoStart, d.StartTime)
	assert.Equal(t, EndOfDay, d.EndTime)
}

func TestFixedEventKeepsTimes(t *testing.T) {
	e := NewFixed("Lecture", Monday, 1100, 900)
	assert.Equal(t, 1100, e.StartTime)
	assert.Equal(t, 900, e.EndTime, "end before start is not the model's concern")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(NewFixed("Gym", Monday, 700, 830)))
	assert.NoError(t, Validate(NewDeadline("Taxes", Sunday)))

	bad := []Event{
		NewFixed("", Monday, 900, 1000),
		NewFixed("Gym", Weekday(7), 900, 1000),
		NewFixed("Gym", Monday, 2500, 2600),
		NewFixed("Gym", Monday, 960, 1000),
		NewFixed("Gym", Monday, 900, -1),
	}
	for _, e := range bad {
		assert.Error(t, Validate(e), "%+v", e)
	}
}
