// Package session drives one planning run: choose a mode, optionally load the
// existing export, collect new events, then sort, report and export.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/sadopc/planr/internal/export"
	"github.com/sadopc/planr/internal/report"
	"github.com/sadopc/planr/internal/schedule"
	"github.com/sadopc/planr/internal/store"
	"go.uber.org/zap"
)

// ErrNoInput is returned when the input source runs dry mid-session.
var ErrNoInput = errors.New("input ended before the session was complete")

// Mode is the initial menu choice.
type Mode int

const (
	ModeNew  Mode = 1
	ModeEdit Mode = 2
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "new"
}

// State is a step of the session state machine.
type State int

const (
	StateChooseMode State = iota
	StateLoadExisting
	StateCollect
	StateSort
	StateReport
	StateExport
	StateDone
)

var stateNames = []string{"CHOOSE_MODE", "LOAD_EXISTING", "COLLECT_NEW_EVENTS", "SORT", "REPORT", "EXPORT", "DONE"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Draft is one event as entered, before normalization.
type Draft struct {
	Name       string
	Day        schedule.Weekday
	IsDeadline bool
	Start      int
	End        int
}

// Source supplies the interactive answers a session needs.
type Source interface {
	Mode() (Mode, error)
	Count() (int, error)
	// Event asks for the n-th (1-based) new event. Time answers are turned
	// into the encoded form with parse; a parse error means ask again.
	Event(n int, parse schedule.TimeParser) (Draft, error)
}

// Result is everything a finished session produced.
type Result struct {
	Mode      Mode
	Loaded    int
	Dropped   int
	Events    []schedule.Event
	Clashes   []schedule.Clash
	FreeSlots []schedule.FreeSlot
	Records   []export.Record
}

type Session struct {
	storage    store.Storage
	source     Source
	printer    *report.Printer
	log        *zap.Logger
	parse      schedule.TimeParser
	strict     bool
	maxEvents  int
	exportName string
	onState    func(State)

	state  State
	result Result
	full   bool
}

type Option func(*Session)

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithStrictTime swaps the permissive time parser for the validating one and
// validates each event before it is added.
func WithStrictTime(strict bool) Option {
	return func(s *Session) {
		s.strict = strict
		if strict {
			s.parse = schedule.ParseTimeStrict
		} else {
			s.parse = schedule.Permissive
		}
	}
}

// WithMaxEvents caps the timetable size; extra events are dropped.
func WithMaxEvents(n int) Option {
	return func(s *Session) { s.maxEvents = n }
}

// WithExportName sets the file name used in user-facing messages.
func WithExportName(name string) Option {
	return func(s *Session) { s.exportName = name }
}

// WithStateHook is called on entry to every state.
func WithStateHook(fn func(State)) Option {
	return func(s *Session) { s.onState = fn }
}

func New(storage store.Storage, source Source, out io.Writer, opts ...Option) *Session {
	s := &Session{
		storage:    storage,
		source:     source,
		printer:    report.NewPrinter(out),
		log:        zap.NewNop(),
		parse:      schedule.Permissive,
		maxEvents:  100,
		exportName: store.DefaultExportFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports where the session currently is.
func (s *Session) State() State { return s.state }

// Run steps the state machine to completion.
func (s *Session) Run() (*Result, error) {
	s.state = StateChooseMode
	for s.state != StateDone {
		s.log.Debug("session state", zap.Stringer("state", s.state))
		if s.onState != nil {
			s.onState(s.state)
		}
		next, err := s.step()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.state, err)
		}
		s.state = next
	}
	if s.onState != nil {
		s.onState(StateDone)
	}
	return &s.result, nil
}

func (s *Session) step() (State, error) {
	switch s.state {
	case StateChooseMode:
		mode, err := s.source.Mode()
		if err != nil {
			return s.state, err
		}
		s.result.Mode = mode
		if mode == ModeEdit {
			return StateLoadExisting, nil
		}
		return StateCollect, nil

	case StateLoadExisting:
		return StateCollect, s.loadExisting()

	case StateCollect:
		return StateSort, s.collect()

	case StateSort:
		schedule.SortEvents(s.result.Events)
		return StateReport, nil

	case StateReport:
		s.result.Clashes = schedule.DetectClashes(s.result.Events)
		s.result.FreeSlots = schedule.FindFreeSlots(s.result.Events)
		s.printer.PrintTimetable(s.result.Events)
		s.printer.PrintClashes(s.result.Clashes)
		s.printer.PrintFreeSlots(s.result.FreeSlots)
		s.log.Info("schedule analysed",
			zap.Int("events", len(s.result.Events)),
			zap.Int("clashes", len(s.result.Clashes)),
			zap.Int("free_slots", len(s.result.FreeSlots)),
		)
		return StateExport, nil

	case StateExport:
		s.result.Records = export.FromEvents(s.result.Events)
		if err := s.storage.Save(s.result.Records); err != nil {
			return s.state, fmt.Errorf("save: %w", err)
		}
		s.printer.Println(fmt.Sprintf("\nData exported successfully to '%s'", s.exportName))
		s.printer.Println("\nTimetable successfully created and exported.")
		return StateDone, nil
	}
	return StateDone, fmt.Errorf("unknown state %s", s.state)
}

// loadExisting seeds the collection from storage. An absent export yields no
// records, which is not an error.
func (s *Session) loadExisting() error {
	records, err := s.storage.Load()
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if len(records) == 0 {
		s.log.Debug("no existing schedule", zap.String("file", s.exportName))
		return nil
	}
	events, err := export.ToEvents(records)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	s.printer.Println(fmt.Sprintf("\nExisting '%s' detected. New events will be added.", s.exportName))
	// Saved events are never capped; only new ones count against maxEvents.
	s.result.Events = append(s.result.Events, events...)
	s.result.Loaded = len(events)
	s.log.Info("loaded existing schedule", zap.Int("events", s.result.Loaded))
	return nil
}

func (s *Session) collect() error {
	n, err := s.source.Count()
	if err != nil {
		return err
	}
	for i := 1; i <= n; i++ {
		d, err := s.source.Event(i, s.parse)
		if err != nil {
			return err
		}
		e := schedule.NewEvent(d.Name, d.Day, d.Start, d.End, d.IsDeadline)
		if s.strict {
			if err := schedule.Validate(e); err != nil {
				s.printer.Note("Skipping '%s': %v", d.Name, err)
				s.log.Warn("event rejected", zap.String("name", d.Name), zap.Error(err))
				s.result.Dropped++
				continue
			}
		}
		s.add(e)
	}
	return nil
}

func (s *Session) add(e schedule.Event) {
	limit := max(s.maxEvents, s.result.Loaded)
	if s.maxEvents > 0 && len(s.result.Events) >= limit {
		if !s.full {
			s.full = true
			s.printer.Note("Timetable is full (%d events); further events are not added.", limit)
		}
		s.log.Warn("event limit reached", zap.Int("max_events", limit), zap.String("name", e.Name))
		s.result.Dropped++
		return
	}
	s.result.Events = append(s.result.Events, e)
}
