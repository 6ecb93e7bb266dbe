package export

import (
	"fmt"

	"github.com/goccy/go-json"
)

// jsonRecord is the on-disk shape. Field order matches what the viewer
// expects to see: day, event, then start/end or deadline, then type.
type jsonRecord struct {
	Day      string `json:"day"`
	Event    string `json:"event"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
	Deadline string `json:"deadline,omitempty"`
	Type     Kind   `json:"type"`
}

// Marshal encodes records as an indented JSON array. An empty input encodes
// as [] so the viewer always reads a list.
func Marshal(records []Record) ([]byte, error) {
	out := make([]jsonRecord, 0, len(records))
	for _, r := range records {
		jr := jsonRecord{Day: r.header().Day, Event: r.header().Event, Type: r.Kind()}
		switch r := r.(type) {
		case DeadlineRecord:
			jr.Deadline = r.Deadline
		case FixedRecord:
			jr.Start, jr.End = r.Start, r.End
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnknownType, r)
		}
		out = append(out, jr)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return append(data, '\n'), nil
}

// Unmarshal decodes an export file back into typed records.
func Unmarshal(data []byte) ([]Record, error) {
	var in []jsonRecord
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("unmarshal json: %w", err)
	}

	records := make([]Record, 0, len(in))
	for i, jr := range in {
		h := Header{Day: jr.Day, Event: jr.Event}
		switch jr.Type {
		case KindDeadline:
			deadline := jr.Deadline
			if deadline == "" {
				deadline = DeadlineLabel
			}
			records = append(records, DeadlineRecord{Header: h, Deadline: deadline})
		case KindFixed:
			records = append(records, FixedRecord{Header: h, Start: jr.Start, End: jr.End})
		default:
			return nil, fmt.Errorf("record %d: %w %q", i, ErrUnknownType, jr.Type)
		}
	}
	return records, nil
}
