package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/sadopc/planr/internal/schedule"
)

// FormSource asks its questions with huh forms in the terminal.
type FormSource struct {
	// Accessible renders plain prompts for screen readers.
	Accessible bool
	// MaxEvents bounds the count question; zero means no bound.
	MaxEvents int
}

func (f *FormSource) run(groups ...*huh.Group) error {
	err := huh.NewForm(groups...).
		WithShowHelp(true).
		WithShowErrors(true).
		WithAccessible(f.Accessible).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrNoInput
	}
	return err
}

func (f *FormSource) Mode() (Mode, error) {
	mode := ModeNew
	err := f.run(huh.NewGroup(
		huh.NewSelect[Mode]().
			Title("Smart Timetable & Activity Planner").
			Options(
				huh.NewOption("Create new timetable", ModeNew),
				huh.NewOption("Edit existing timetable (append new events)", ModeEdit),
			).
			Value(&mode),
	))
	return mode, err
}

func (f *FormSource) Count() (int, error) {
	s := "1"
	err := f.run(huh.NewGroup(
		huh.NewInput().
			Title("How many new events/activities do you want to add now?").
			Value(&s).
			Validate(f.validateCount),
	))
	if err != nil {
		return 0, err
	}
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n, nil
}

func (f *FormSource) validateCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return errors.New("enter a whole number")
	}
	if f.MaxEvents > 0 && n > f.MaxEvents {
		return fmt.Errorf("at most %d events", f.MaxEvents)
	}
	return nil
}

func (f *FormSource) Event(n int, parse schedule.TimeParser) (Draft, error) {
	var d Draft
	err := f.run(huh.NewGroup(
		huh.NewInput().Title("Event Name").Value(&d.Name).Validate(validateName),
		huh.NewSelect[schedule.Weekday]().Title("Day").Options(dayOptions()...).Value(&d.Day),
		huh.NewConfirm().
			Title("Is this a deadline-based task (due by end of day)?").
			Affirmative("Yes").
			Negative("No").
			Value(&d.IsDeadline),
	).Title(fmt.Sprintf("Event %d details", n)))
	if err != nil {
		return d, err
	}
	d.Name = strings.TrimSpace(d.Name)
	if d.IsDeadline {
		return d, nil
	}

	start, end := "", ""
	check := func(s string) error {
		_, err := parse(s)
		return err
	}
	err = f.run(huh.NewGroup(
		huh.NewInput().Title("Start Time").Placeholder("09:00 or 14:30").Value(&start).Validate(check),
		huh.NewInput().Title("End Time").Placeholder("10:30 or 16:00").Value(&end).Validate(check),
	).Title(d.Name + " on " + d.Day.String()))
	if err != nil {
		return d, err
	}
	d.Start, _ = parse(start)
	d.End, _ = parse(end)
	return d, nil
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name is required")
	}
	return nil
}

func dayOptions() []huh.Option[schedule.Weekday] {
	days := schedule.Weekdays()
	opts := make([]huh.Option[schedule.Weekday], len(days))
	for i, d := range days {
		opts[i] = huh.NewOption(d.String(), d)
	}
	return opts
}
