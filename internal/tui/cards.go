package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/planr/internal/export"
)

const (
	cardWidth = 30
	cardGap   = 1
)

// cardText returns the icon, type label and time line for a record.
func cardText(r export.Record) (icon, kind, when string) {
	switch r := r.(type) {
	case export.DeadlineRecord:
		return "⏰", "Deadline", "By " + r.Deadline
	case export.FixedRecord:
		return "📘", "Fixed Event", r.Start + " - " + r.End
	}
	return "?", string(r.Kind()), ""
}

func renderCard(r export.Record) string {
	h := export.HeaderOf(r)
	icon, kind, when := cardText(r)

	border := colorFixed
	if r.Kind() == export.KindDeadline {
		border = colorDeadline
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("%s %s", icon, h.Event)),
		mutedStyle.Render(h.Day),
		"",
		"Type: "+kind,
		"Time: "+when,
	)
	return cardStyle.BorderForeground(border).Render(body)
}

// renderCards lays cards out left to right, wrapping to fit width.
func renderCards(records []export.Record, width int) string {
	perRow := max(1, (width+cardGap)/(cardWidth+2+cardGap))

	var rows []string
	for i := 0; i < len(records); i += perRow {
		end := min(i+perRow, len(records))
		var row []string
		for j, r := range records[i:end] {
			if j > 0 {
				row = append(row, lipgloss.NewStyle().Width(cardGap).Render(""))
			}
			row = append(row, renderCard(r))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
