package schedule

import (
	"github.com/go-playground/validator/v10"
)

// Event is either a fixed-time event or a deadline task on one weekday.
// Times use the hour*100+minute encoding.
type Event struct {
	Name       string  `validate:"required"`
	Day        Weekday `validate:"gte=0,lte=6"`
	StartTime  int     `validate:"clock|eq=-1"`
	EndTime    int     `validate:"clock"`
	IsDeadline bool
}

// NewEvent builds an event and applies deadline normalization.
func NewEvent(name string, day Weekday, start, end int, isDeadline bool) Event {
	return Event{
		Name:       name,
		Day:        day,
		StartTime:  start,
		EndTime:    end,
		IsDeadline: isDeadline,
	}.Normalize()
}

// NewFixed builds a fixed-time event.
func NewFixed(name string, day Weekday, start, end int) Event {
	return NewEvent(name, day, start, end, false)
}

// NewDeadline builds a deadline task due by the end of day.
func NewDeadline(name string, day Weekday) Event {
	return NewEvent(name, day, NoStart, EndOfDay, true)
}

// Normalize forces deadline tasks to NoStart..EndOfDay whatever was supplied.
func (e Event) Normalize() Event {
	if e.IsDeadline {
		e.StartTime = NoStart
		e.EndTime = EndOfDay
	}
	return e
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// clock accepts 0..2359 with minutes below 60.
	v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		t := int(fl.Field().Int())
		return t >= 0 && t <= EndOfDay && t%100 < 60
	})
	return v
}

// Validate checks the event fields: non-empty name, a real weekday and
// clock-shaped times. The model itself never calls it; strict input paths do.
func Validate(e Event) error {
	return validate.Struct(e.Normalize())
}
