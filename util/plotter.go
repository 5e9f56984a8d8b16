package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"oh-server/models/location"
	"oh-server/models/schedule"
)

var dayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// RenderWeeklySchedulePlot writes an HTML bar chart of a location's open
// hours per weekday. Midnight-spanning windows count their full length on
// the day they start; closed and malformed days plot as zero.
func RenderWeeklySchedulePlot(w io.Writer, l location.Location) error {
	data := make([]opts.BarData, 0, 7)
	for i := 0; i < 7; i++ {
		win, ok := l.WeeklySchedule.Day(i).Window()
		if !ok {
			data = append(data, opts.BarData{Value: 0.0})
			continue
		}
		closeMin := win.CloseMin
		if win.SpansMidnight {
			closeMin += schedule.MinutesPerDay
		}
		openHours := float64(closeMin-win.OpenMin) / 60.0
		data = append(data, opts.BarData{Value: openHours})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weekly Schedule",
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Open hours per day: %s", l.LocationName),
		}),
	)

	bar.SetXAxis(dayLabels).AddSeries("Open hours", data)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render schedule chart: %w", err)
	}
	return nil
}
