package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/sadopc/planr/internal/config"
	"github.com/sadopc/planr/internal/export"
	"github.com/sadopc/planr/internal/logging"
	"github.com/sadopc/planr/internal/session"
	"github.com/sadopc/planr/internal/store"
	"github.com/sadopc/planr/internal/tui"
	"go.uber.org/zap"
)

type flags struct {
	configPath string
	classic    bool
	view       bool
	csvPath    string
	xlsxPath   string
	history    bool
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.configPath, "config", "", "Path to config file (default ~/.config/planr/config.yaml)")
	flag.BoolVar(&f.classic, "classic", false, "Use line prompts instead of forms")
	flag.BoolVar(&f.view, "view", false, "Open the timetable viewer and exit")
	flag.StringVar(&f.csvPath, "csv", "", "Also write the timetable as CSV to this path")
	flag.StringVar(&f.xlsxPath, "xlsx", "", "Also write the timetable as an Excel workbook to this path")
	flag.BoolVar(&f.history, "history", false, "List saved timetable snapshots and exit")
	flag.Parse()
	return f
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(f flags) error {
	if f.configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		f.configPath = p
	}
	cfg, cfgErr := config.Load(f.configPath)
	if cfgErr != nil && !errors.Is(cfgErr, config.ErrDefaultsNotWritten) {
		return fmt.Errorf("load config: %w", cfgErr)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if cfgErr != nil {
		log.Warn("using built-in defaults", zap.Error(cfgErr))
	}
	log.Debug("config loaded", zap.String("path", f.configPath), zap.String("export", cfg.ExportPath))

	file := store.NewFileStore(cfg.ExportPath)

	if f.view {
		return view(file, cfg.ExportPath)
	}

	var db *store.DB
	if cfg.History || f.history {
		db, err = openHistory(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()
	}

	if f.history {
		return listHistory(db)
	}

	var storage store.Storage = file
	if cfg.History {
		storage = store.Tee(file, db)
		log.Debug("history enabled", zap.String("db", cfg.DBPath))
	}

	var source session.Source
	if f.classic {
		source = session.NewPrompter(os.Stdin, os.Stdout)
	} else {
		source = &session.FormSource{Accessible: cfg.Accessible, MaxEvents: cfg.MaxEvents}
	}

	s := session.New(storage, source, os.Stdout,
		session.WithLogger(log),
		session.WithStrictTime(cfg.StrictTime),
		session.WithMaxEvents(cfg.MaxEvents),
		session.WithExportName(cfg.ExportPath),
	)
	res, err := s.Run()
	if errors.Is(err, session.ErrNoInput) {
		log.Debug("input ended before the timetable was complete")
		return nil
	}
	if err != nil {
		return err
	}

	if f.csvPath != "" {
		if err := export.ToCSV(res.Records, f.csvPath); err != nil {
			return fmt.Errorf("csv export: %w", err)
		}
		fmt.Printf("CSV written to '%s'\n", f.csvPath)
	}
	if f.xlsxPath != "" {
		if err := export.ToXLSX(res.Records, f.xlsxPath); err != nil {
			return fmt.Errorf("xlsx export: %w", err)
		}
		fmt.Printf("Workbook written to '%s'\n", f.xlsxPath)
	}

	if !f.classic && offerViewer() {
		return view(file, cfg.ExportPath)
	}
	return nil
}

func openHistory(path string) (*store.DB, error) {
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return store.New(path)
}

func listHistory(db *store.DB) error {
	snaps, err := db.ListSnapshots(20)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Println("No saved timetables yet.")
		return nil
	}
	for _, s := range snaps {
		fmt.Printf("%s  %s  %d events\n", s.ID, s.SavedAt.Local().Format(time.DateTime), s.Count)
	}
	return nil
}

func offerViewer() bool {
	open := false
	err := huh.NewConfirm().
		Title("Open the timetable viewer?").
		Value(&open).
		Run()
	return err == nil && open
}

func view(file *store.FileStore, name string) error {
	p := tea.NewProgram(tui.NewViewer(file.Load, name), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
