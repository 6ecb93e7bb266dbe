package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/planr/internal/export"
	"github.com/sadopc/planr/internal/schedule"
)

// Loader reads the records to display.
type Loader func() ([]export.Record, error)

// Viewer is the root Bubble Tea model of the timetable viewer.
type Viewer struct {
	load   Loader
	source string
	width  int
	height int

	records []export.Record
	events  []schedule.Event
	err     error
	loaded  bool

	filter    int
	showChart bool
	chart     barchart.Model

	showHelp bool
	help     help.Model
	status   string
}

// NewViewer builds a viewer over load. source names the file in the
// error panel.
func NewViewer(load Loader, source string) Viewer {
	h := help.New()
	h.ShowAll = false

	return Viewer{
		load:   load,
		source: source,
		filter: filterAll,
		chart:  barchart.New(60, 12),
		help:   h,
	}
}

func (v Viewer) Init() tea.Cmd {
	return v.loadRecords()
}

func (v Viewer) loadRecords() tea.Cmd {
	load := v.load
	return func() tea.Msg {
		records, err := load()
		return recordsLoadedMsg{records: records, err: err}
	}
}

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.help.Width = msg.Width
		v.redraw()
		return v, nil

	case recordsLoadedMsg:
		v.loaded = true
		v.err = msg.err
		v.records = msg.records
		v.events = nil
		if msg.err == nil {
			events, err := export.ToEvents(msg.records)
			if err != nil {
				v.status = fmt.Sprintf("chart unavailable: %v", err)
			}
			v.events = events
		}
		v.redraw()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, keys.Help):
			v.showHelp = !v.showHelp
			v.help.ShowAll = v.showHelp
		case key.Matches(msg, keys.All):
			v.filter = filterAll
		case key.Matches(msg, keys.Days):
			v.filter = int(msg.String()[0] - '1')
		case key.Matches(msg, keys.Right):
			v.filter = nextFilter(v.filter)
		case key.Matches(msg, keys.Left):
			v.filter = prevFilter(v.filter)
		case key.Matches(msg, keys.Chart):
			v.showChart = !v.showChart
		case key.Matches(msg, keys.Reload):
			v.status = "Reloaded " + v.source
			return v, v.loadRecords()
		}
		v.redraw()
	}
	return v, nil
}

func (v *Viewer) redraw() {
	if v.width == 0 {
		return
	}
	v.chart = buildChart(v.events, v.width, v.height, v.filter)
}

// visible returns the records matching the day filter.
func (v Viewer) visible() []export.Record {
	if v.filter == filterAll {
		return v.records
	}
	day := schedule.Weekday(v.filter).String()
	var out []export.Record
	for _, r := range v.records {
		if export.HeaderOf(r).Day == day {
			out = append(out, r)
		}
	}
	return out
}

func (v Viewer) View() string {
	if v.width == 0 {
		return "Loading..."
	}

	header := v.renderHeader()
	footer := v.renderFooter()

	contentHeight := v.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 1 {
		contentHeight = 1
	}

	content := lipgloss.NewStyle().
		Width(v.width).
		Height(contentHeight).
		Render(v.renderContent())

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (v Viewer) renderContent() string {
	switch {
	case !v.loaded:
		return mutedStyle.Render("Loading " + v.source + "...")
	case v.err != nil:
		msg := lipgloss.JoinVertical(lipgloss.Left,
			errorStyle.Render("❌ Unable to load "+v.source),
			mutedStyle.Render(v.err.Error()),
		)
		return panelStyle.Width(v.width - 4).Render(msg)
	case v.showChart:
		title := titleStyle.Render("Booked hours per day")
		return panelStyle.Width(v.width - 4).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", v.chart.View()),
		)
	}

	records := v.visible()
	if len(records) == 0 {
		return mutedStyle.Render("  No events scheduled.")
	}
	return renderCards(records, v.width)
}

func (v Viewer) renderHeader() string {
	var tabs []string
	for f := filterAll; f < schedule.DaysInWeek; f++ {
		if f == v.filter {
			tabs = append(tabs, activeTabStyle.Render(filterName(f)))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(filterName(f)))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("planr")
	gap := v.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (v Viewer) renderFooter() string {
	left := footerStyle.Render(v.help.View(keys))

	right := ""
	if v.loaded && v.err == nil {
		right = mutedStyle.Render(fmt.Sprintf(" %d events", len(v.visible())))
		if v.filter != filterAll {
			booked := schedule.BookedMinutes(v.events)[v.filter]
			free := freeMinutes(v.events, schedule.Weekday(v.filter))
			right += mutedStyle.Render(" · " + formatHours(booked) + " booked · " + formatHours(free) + " free")
		}
	}
	if v.status != "" {
		right += mutedStyle.Render(" " + v.status)
	}

	gap := v.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}
