package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Timetable"

// ToXLSX writes the records as a one-sheet workbook at path, one row per
// record in the given order.
func ToXLSX(records []Record, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 28)
	f.SetColWidth(sheetName, "C", "F", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	deadlineStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#C0392B"},
	})

	header := []string{"Day", "Event", "Type", "Start", "End", "Deadline"}
	for i, h := range header {
		f.SetCellValue(sheetName, cell(i, 1), h)
	}
	f.SetCellStyle(sheetName, cell(0, 1), cell(len(header)-1, 1), headerStyle)

	for i, r := range records {
		row := i + 2
		h := r.header()
		f.SetCellValue(sheetName, cell(0, row), h.Day)
		f.SetCellValue(sheetName, cell(1, row), h.Event)
		f.SetCellValue(sheetName, cell(2, row), string(r.Kind()))
		switch r := r.(type) {
		case FixedRecord:
			f.SetCellValue(sheetName, cell(3, row), r.Start)
			f.SetCellValue(sheetName, cell(4, row), r.End)
		case DeadlineRecord:
			f.SetCellValue(sheetName, cell(5, row), r.Deadline)
			f.SetCellStyle(sheetName, cell(0, row), cell(5, row), deadlineStyle)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// cell names a zero-based column on a one-based row, e.g. cell(1, 2) = "B2".
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
