package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/planr/internal/export"
	"github.com/sadopc/planr/internal/schedule"
)

func sampleRecords() []export.Record {
	return []export.Record{
		export.FixedRecord{Header: export.Header{Day: "Monday", Event: "Math"}, Start: "09:00", End: "10:30"},
		export.FixedRecord{Header: export.Header{Day: "Monday", Event: "Physics"}, Start: "10:00", End: "11:00"},
		export.DeadlineRecord{Header: export.Header{Day: "Tuesday", Event: "Essay"}, Deadline: "23:59"},
	}
}

func loaded(t *testing.T, records []export.Record, err error) Viewer {
	t.Helper()
	v := NewViewer(func() ([]export.Record, error) { return records, err }, "schedule.json")
	m, _ := v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	msg := v.Init()()
	m, _ = m.(Viewer).Update(msg)
	return m.(Viewer)
}

func press(t *testing.T, v Viewer, msg tea.KeyMsg) Viewer {
	t.Helper()
	m, _ := v.Update(msg)
	return m.(Viewer)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ============================================================
// Viewer
// ============================================================

func TestViewerLoadingState(t *testing.T) {
	v := NewViewer(func() ([]export.Record, error) { return nil, nil }, "schedule.json")
	if out := v.View(); out != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", out)
	}
}

func TestViewerRendersCards(t *testing.T) {
	v := loaded(t, sampleRecords(), nil)
	out := v.View()

	for _, want := range []string{
		"📘 Math", "Type: Fixed Event", "Time: 09:00 - 10:30",
		"⏰ Essay", "Type: Deadline", "Time: By 23:59",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewerErrorState(t *testing.T) {
	v := loaded(t, nil, errors.New("invalid character"))
	out := v.View()
	if !strings.Contains(out, "Unable to load schedule.json") {
		t.Fatalf("expected error panel, got:\n%s", out)
	}
	if strings.Contains(out, "Type:") {
		t.Fatal("error state should not render cards")
	}
}

func TestViewerEmpty(t *testing.T) {
	v := loaded(t, nil, nil)
	if !strings.Contains(v.View(), "No events scheduled.") {
		t.Fatal("expected empty message")
	}
}

func TestViewerDayFilter(t *testing.T) {
	v := loaded(t, sampleRecords(), nil)

	v = press(t, v, runes("2"))
	if v.filter != 1 {
		t.Fatalf("filter = %d, want 1 (Tuesday)", v.filter)
	}
	got := v.visible()
	if len(got) != 1 || export.HeaderOf(got[0]).Event != "Essay" {
		t.Fatalf("tuesday records = %+v", got)
	}
	if out := v.View(); strings.Contains(out, "Math") {
		t.Fatal("monday event shown under tuesday filter")
	}

	v = press(t, v, runes("a"))
	if v.filter != filterAll || len(v.visible()) != 3 {
		t.Fatalf("all filter: filter=%d visible=%d", v.filter, len(v.visible()))
	}
}

func TestViewerFilterCycles(t *testing.T) {
	v := loaded(t, sampleRecords(), nil)

	v = press(t, v, tea.KeyMsg{Type: tea.KeyLeft})
	if v.filter != 6 {
		t.Fatalf("left from all = %d, want 6 (Sunday)", v.filter)
	}
	v = press(t, v, tea.KeyMsg{Type: tea.KeyRight})
	if v.filter != filterAll {
		t.Fatalf("right from sunday = %d, want all", v.filter)
	}
	v = press(t, v, tea.KeyMsg{Type: tea.KeyRight})
	if v.filter != 0 {
		t.Fatalf("right from all = %d, want 0 (Monday)", v.filter)
	}
	if len(v.visible()) != 2 {
		t.Fatalf("monday visible = %d, want 2", len(v.visible()))
	}
}

func TestViewerChartToggle(t *testing.T) {
	v := loaded(t, sampleRecords(), nil)
	v = press(t, v, runes("c"))
	if !v.showChart {
		t.Fatal("chart should be shown")
	}
	if !strings.Contains(v.View(), "Booked hours per day") {
		t.Fatal("chart panel missing")
	}
	v = press(t, v, runes("c"))
	if v.showChart {
		t.Fatal("chart should be hidden")
	}
}

func TestViewerQuit(t *testing.T) {
	v := loaded(t, nil, nil)
	_, cmd := v.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestViewerReload(t *testing.T) {
	calls := 0
	v := NewViewer(func() ([]export.Record, error) {
		calls++
		return sampleRecords(), nil
	}, "schedule.json")
	v.width, v.height = 120, 40

	_, cmd := v.Update(runes("r"))
	if cmd == nil {
		t.Fatal("reload should return a command")
	}
	if _, ok := cmd().(recordsLoadedMsg); !ok {
		t.Fatal("expected recordsLoadedMsg")
	}
	if calls != 1 {
		t.Fatalf("loader calls = %d, want 1", calls)
	}
}

func TestViewerRenderHeaderContainsAllTabs(t *testing.T) {
	v := loaded(t, nil, nil)
	header := v.renderHeader()
	for _, tab := range []string{"All", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		if !strings.Contains(header, tab) {
			t.Errorf("header missing tab %q", tab)
		}
	}
}

func TestViewerRenderFooter(t *testing.T) {
	v := loaded(t, sampleRecords(), nil)
	if !strings.Contains(v.renderFooter(), "3 events") {
		t.Fatal("footer should count events")
	}
	v = press(t, v, runes("1"))
	footer := v.renderFooter()
	if !strings.Contains(footer, "2 events") || !strings.Contains(footer, "2.5h booked") || !strings.Contains(footer, "0.0h free") {
		t.Fatalf("monday footer = %q", footer)
	}
}

// ============================================================
// Helpers
// ============================================================

func TestFilterName(t *testing.T) {
	if filterName(filterAll) != "All" || filterName(0) != "Mon" || filterName(6) != "Sun" {
		t.Fatal("unexpected filter names")
	}
}

func TestFreeMinutes(t *testing.T) {
	events := []schedule.Event{
		schedule.NewFixed("Lunch", schedule.Monday, 1200, 1300),
		schedule.NewFixed("Math", schedule.Monday, 900, 1000),
		schedule.NewFixed("Gym", schedule.Monday, 1800, 1830),
		schedule.NewFixed("Shift", schedule.Tuesday, 800, 900),
		schedule.NewDeadline("Essay", schedule.Monday),
	}
	// 10:00-12:00 and 13:00-18:00
	if got := freeMinutes(events, schedule.Monday); got != 420 {
		t.Fatalf("monday free = %d, want 420", got)
	}
	if got := freeMinutes(events, schedule.Tuesday); got != 0 {
		t.Fatalf("tuesday free = %d, want 0", got)
	}
	if events[0].Name != "Lunch" {
		t.Fatal("freeMinutes reordered its input")
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		mins int
		want string
	}{
		{0, "0.0h"},
		{90, "1.5h"},
		{150, "2.5h"},
	}
	for _, tt := range tests {
		if got := formatHours(tt.mins); got != tt.want {
			t.Errorf("formatHours(%d) = %q, want %q", tt.mins, got, tt.want)
		}
	}
}

func TestCardTextDeadline(t *testing.T) {
	icon, kind, when := cardText(export.DeadlineRecord{Deadline: "23:59"})
	if icon != "⏰" || kind != "Deadline" || when != "By 23:59" {
		t.Fatalf("got %q %q %q", icon, kind, when)
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles (smoke test)
// ============================================================

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name string
		fn   func() string
	}{
		{"activeTab", func() string { return activeTabStyle.Render("test") }},
		{"inactiveTab", func() string { return inactiveTabStyle.Render("test") }},
		{"panel", func() string { return panelStyle.Render("test") }},
		{"card", func() string { return cardStyle.Render("test") }},
		{"title", func() string { return titleStyle.Render("test") }},
		{"error", func() string { return errorStyle.Render("test") }},
		{"muted", func() string { return mutedStyle.Render("test") }},
	}
	for _, s := range styles {
		if s.fn() == "" {
			t.Errorf("style %s rendered empty", s.name)
		}
	}
}
