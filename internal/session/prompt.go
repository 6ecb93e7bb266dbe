package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sadopc/planr/internal/report"
	"github.com/sadopc/planr/internal/schedule"
)

const (
	banner = "=============================================="
	rule   = "----------------------------------------------"
)

// Prompter is a line-oriented Source: it prints a question and reads one
// answer per line. Numeric questions are asked again until the answer is a
// number in range.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

func (p *Prompter) Mode() (Mode, error) {
	fmt.Fprintf(p.out, "\n%s\nSMART TIMETABLE & ACTIVITY PLANNER\n%s\n\n", banner, banner)
	fmt.Fprintln(p.out, "1. Create new timetable")
	fmt.Fprintln(p.out, "2. Edit existing timetable (append new events)")
	choice, err := p.number("Enter your choice: ", nil)
	if err != nil {
		return 0, err
	}
	if Mode(choice) == ModeEdit {
		return ModeEdit, nil
	}
	return ModeNew, nil
}

func (p *Prompter) Count() (int, error) {
	return p.number("\nHow many new events/activities do you want to add now? ", func(n int) bool { return n >= 0 })
}

func (p *Prompter) Event(n int, parse schedule.TimeParser) (Draft, error) {
	fmt.Fprintf(p.out, "\n%s\nEVENT %d DETAILS\n%s\n", rule, n, rule)

	var d Draft
	for d.Name == "" {
		name, err := p.line("Enter Event Name: ")
		if err != nil {
			return d, err
		}
		d.Name = strings.TrimSpace(name)
	}

	fmt.Fprintln(p.out, "\nChoose a day for this event by typing its number:")
	fmt.Fprint(p.out, report.DayOptions())
	day, err := p.number("Enter day number: ", func(n int) bool { return schedule.Weekday(n).Valid() })
	if err != nil {
		return d, err
	}
	d.Day = schedule.Weekday(day)

	fmt.Fprintln(p.out, "\nIs this a deadline-based task (due by end of day)?")
	fmt.Fprintln(p.out, "  [1] Yes (no specific start time)")
	fmt.Fprintln(p.out, "  [0] No (enter start and end times)")
	flag, err := p.number("Enter your choice: ", func(n int) bool { return n == 0 || n == 1 })
	if err != nil {
		return d, err
	}
	d.IsDeadline = flag == 1

	if d.IsDeadline {
		fmt.Fprintf(p.out, "Deadline recorded for %s by 23:59 (End of Day)\n", d.Day)
		return d, nil
	}

	if d.Start, err = p.time("\nEnter Start Time (24-hour, e.g., 09:00 or 14:30): ", parse); err != nil {
		return d, err
	}
	if d.End, err = p.time("Enter End Time (24-hour, e.g., 10:30 or 16:00): ", parse); err != nil {
		return d, err
	}
	return d, nil
}

func (p *Prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrNoInput
	}
	return p.in.Text(), nil
}

// number asks until the answer is an integer accepted by ok (nil accepts any).
func (p *Prompter) number(prompt string, ok func(int) bool) (int, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil && (ok == nil || ok(n)) {
			return n, nil
		}
		fmt.Fprintln(p.out, "Please enter a valid number.")
	}
}

func (p *Prompter) time(prompt string, parse schedule.TimeParser) (int, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		t, err := parse(s)
		if err == nil {
			return t, nil
		}
		fmt.Fprintf(p.out, "%v. Use HH:MM or a bare hour.\n", err)
	}
}
