package export

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ToCSV writes the records as a spreadsheet-friendly table at path.
func ToCSV(records []Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Day", "Event", "Type", "Start", "End", "Deadline"}); err != nil {
		return err
	}

	for _, r := range records {
		h := r.header()
		row := []string{h.Day, h.Event, string(r.Kind()), "", "", ""}
		switch r := r.(type) {
		case FixedRecord:
			row[3], row[4] = r.Start, r.End
		case DeadlineRecord:
			row[5] = r.Deadline
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
