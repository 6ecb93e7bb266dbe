// Package report renders the sorted timetable and analysis results as
// terminal text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/planr/internal/schedule"
)

// DeadlineLabel is shown in the Time column of deadline rows.
const DeadlineLabel = "By 23:59 (End of Day)"

const (
	banner = "=============================================="
	rule   = "--------------------------------------------------------------"
)

// Printer writes report sections to one writer. Styling follows the writer's
// color profile, so plain files and buffers get plain text.
type Printer struct {
	w io.Writer

	title   lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
}

func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#6C63FF")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#F39C12")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

// Banner prints a title between two banner lines.
func (p *Printer) Banner(title string) {
	fmt.Fprintf(p.w, "\n%s\n%s\n%s\n", banner, p.title.Render(title), banner)
}

// Row formats one timetable line with fixed-width Day and Event columns.
func Row(e schedule.Event) string {
	return fmt.Sprintf("%-10s %-25s %s", e.Day, e.Name, TimeLabel(e))
}

// TimeLabel is the Time column text for an event.
func TimeLabel(e schedule.Event) string {
	if e.IsDeadline {
		return DeadlineLabel
	}
	return schedule.FormatTime(e.StartTime) + " - " + schedule.FormatTime(e.EndTime)
}

// PrintTimetable renders the sorted events as a Day / Event Name / Time table.
func (p *Printer) PrintTimetable(events []schedule.Event) {
	p.Banner("WEEKLY TIMETABLE")
	fmt.Fprintf(p.w, "%-10s %-25s %-20s\n", "Day", "Event Name", "Time")
	fmt.Fprintln(p.w, rule)
	for _, e := range events {
		fmt.Fprintln(p.w, Row(e))
	}
	fmt.Fprintln(p.w, rule)
}

// PrintClashes writes one line per clash, or a no-clash message.
func (p *Printer) PrintClashes(clashes []schedule.Clash) {
	fmt.Fprintln(p.w, "\nChecking for schedule conflicts...")
	if len(clashes) == 0 {
		fmt.Fprintln(p.w, "No clashes found.")
		return
	}
	for _, c := range clashes {
		fmt.Fprintln(p.w, p.warning.Render("⚠️  "+c.String()))
	}
}

// PrintFreeSlots writes one line per gap, or a no-slot message.
func (p *Printer) PrintFreeSlots(slots []schedule.FreeSlot) {
	fmt.Fprintln(p.w, "\nSuggested Free Slots:")
	if len(slots) == 0 {
		fmt.Fprintln(p.w, "No free slots available.")
		return
	}
	for _, s := range slots {
		fmt.Fprintln(p.w, s.String())
	}
}

// Note prints a muted informational line.
func (p *Printer) Note(format string, args ...any) {
	fmt.Fprintln(p.w, p.muted.Render(fmt.Sprintf(format, args...)))
}

// Println writes an unstyled line.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// PrintTimetable is a shorthand for NewPrinter(w).PrintTimetable.
func PrintTimetable(w io.Writer, events []schedule.Event) {
	NewPrinter(w).PrintTimetable(events)
}

// PrintClashes is a shorthand for NewPrinter(w).PrintClashes.
func PrintClashes(w io.Writer, clashes []schedule.Clash) {
	NewPrinter(w).PrintClashes(clashes)
}

// PrintFreeSlots is a shorthand for NewPrinter(w).PrintFreeSlots.
func PrintFreeSlots(w io.Writer, slots []schedule.FreeSlot) {
	NewPrinter(w).PrintFreeSlots(slots)
}

// DayOptions lists the weekday menu shown before asking for a day number.
func DayOptions() string {
	var b strings.Builder
	for _, d := range schedule.Weekdays() {
		fmt.Fprintf(&b, "  [%d] %s\n", int(d), d)
	}
	return b.String()
}
