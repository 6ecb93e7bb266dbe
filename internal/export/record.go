package export

import (
	"errors"
	"fmt"

	"github.com/sadopc/planr/internal/schedule"
)

// Kind tags the two record shapes of the export file.
type Kind string

const (
	KindDeadline Kind = "deadline"
	KindFixed    Kind = "fixed"
)

// DeadlineLabel is the literal written for every deadline record.
const DeadlineLabel = "23:59"

var (
	ErrUnknownType = errors.New("unknown record type")
	ErrUnknownDay  = errors.New("unknown weekday")
)

// Record is one entry of the export file: either a DeadlineRecord or a
// FixedRecord. The set is closed; switch on the concrete type.
type Record interface {
	Kind() Kind
	header() Header
}

// Header holds the fields common to both record shapes.
type Header struct {
	Day   string
	Event string
}

type DeadlineRecord struct {
	Header
	Deadline string
}

func (DeadlineRecord) Kind() Kind       { return KindDeadline }
func (r DeadlineRecord) header() Header { return r.Header }

type FixedRecord struct {
	Header
	Start string
	End   string
}

func (FixedRecord) Kind() Kind       { return KindFixed }
func (r FixedRecord) header() Header { return r.Header }

// HeaderOf returns the day and event name of any record.
func HeaderOf(r Record) Header {
	return r.header()
}

// FromEvent maps an event onto its record shape.
func FromEvent(e schedule.Event) Record {
	h := Header{Day: e.Day.String(), Event: e.Name}
	if e.IsDeadline {
		return DeadlineRecord{Header: h, Deadline: DeadlineLabel}
	}
	return FixedRecord{
		Header: h,
		Start:  schedule.FormatTime(e.StartTime),
		End:    schedule.FormatTime(e.EndTime),
	}
}

// FromEvents maps a sequence of events, keeping its order.
func FromEvents(events []schedule.Event) []Record {
	records := make([]Record, 0, len(events))
	for _, e := range events {
		records = append(records, FromEvent(e))
	}
	return records
}

// ToEvent reconstructs an event: the weekday name maps back to its index and
// the shape decides whether times are parsed or the deadline defaults apply.
func ToEvent(r Record) (schedule.Event, error) {
	h := r.header()
	day, ok := schedule.ParseWeekday(h.Day)
	if !ok {
		return schedule.Event{}, fmt.Errorf("%w: %q", ErrUnknownDay, h.Day)
	}
	switch r := r.(type) {
	case DeadlineRecord:
		return schedule.NewDeadline(h.Event, day), nil
	case FixedRecord:
		return schedule.NewFixed(h.Event, day, schedule.ParseTime(r.Start), schedule.ParseTime(r.End)), nil
	default:
		return schedule.Event{}, fmt.Errorf("%w: %T", ErrUnknownType, r)
	}
}

// ToEvents reconstructs every record, failing on the first bad one.
func ToEvents(records []Record) ([]schedule.Event, error) {
	events := make([]schedule.Event, 0, len(records))
	for i, r := range records {
		e, err := ToEvent(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		events = append(events, e)
	}
	return events, nil
}
