package tui

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/planr/internal/schedule"
)

// buildChart draws booked hours per weekday. The selected day is highlighted.
func buildChart(events []schedule.Event, width, height, selected int) barchart.Model {
	chartWidth := max(width-8, 20)
	chartHeight := 12
	if height > 30 {
		chartHeight = 16
	}

	chart := barchart.New(chartWidth, chartHeight)
	booked := schedule.BookedMinutes(events)

	var bars []barchart.BarData
	for _, d := range schedule.Weekdays() {
		color := colorFixed
		if selected != filterAll && int(d) != selected {
			color = colorSubtle
		}
		bars = append(bars, barchart.BarData{
			Label: d.String()[:3],
			Values: []barchart.BarValue{{
				Name:  d.String(),
				Value: float64(booked[d]) / 60.0,
				Style: lipgloss.NewStyle().Foreground(color),
			}},
		})
	}

	chart.PushAll(bars)
	chart.Draw()
	return chart
}
