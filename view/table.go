package view

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"wlog/wlog"
)

const barWidth = 20

// RenderStatus prints the progress summary as a table.
func RenderStatus(out table.Writer, book wlog.Logbook) {
	s := book.Summarize()

	out.AppendRows([]table.Row{
		{"Required OJT Hours", fmt.Sprintf("%g", s.RequiredHours)},
		{"Days logged", s.DayCount},
		{"Total", minutesToWords(s.TotalMinutes)},
		{"Remaining", fmt.Sprintf("%d hours and %d min", s.RemainingHours, s.RemainingMinutesRemainder)},
		{"Progress", fmt.Sprintf("%d%%", int(math.Round(s.Percentage)))},
	})
	out.SetStyle(table.StyleRounded)
	out.Render()
}

// RenderWeek prints the seven-day breakdown with a bar per day, today
// last.
func RenderWeek(out table.Writer, book wlog.Logbook, today wlog.Date) {
	week := book.WeeklyBreakdown(today)

	maxHours := 1.0
	for _, d := range week {
		maxHours = math.Max(maxHours, d.Hours)
	}

	out.AppendHeader(table.Row{"Day", "Date", "Hours", ""})
	total := 0.0
	for _, d := range week {
		total += d.Hours
		out.AppendRow(table.Row{d.Day, d.Date, fmt.Sprintf("%.1f", d.Hours), weekBar(d.Hours, maxHours)})
	}
	out.AppendFooter(table.Row{"", "Total", fmt.Sprintf("%.1f", total), ""})
	out.SetStyle(table.StyleRounded)
	out.Render()
}

// RenderLogs prints the log newest first.
func RenderLogs(out table.Writer, book wlog.Logbook) {
	records := sortedRecords(book.Records())

	out.AppendHeader(table.Row{"Date", "Hours"})
	total := 0
	for _, r := range records {
		total += r.Minutes
		out.AppendRow(table.Row{formatDate(r.Date), minutesToWords(r.Minutes)})
	}
	out.AppendFooter(table.Row{"Total", minutesToWords(total)})
	out.SetStyle(table.StyleRounded)
	out.Render()
}

// sortedRecords orders the log newest first for display. The log itself
// stays in insertion order.
func sortedRecords(records []wlog.LogRecord) []wlog.LogRecord {
	sorted := make([]wlog.LogRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}

func weekBar(hours, maxHours float64) string {
	n := int(math.Round(hours / maxHours * barWidth))
	return strings.Repeat("█", n)
}

func minutesToWords(minutes int) string {
	return fmt.Sprintf("%d hours and %d min", minutes/60, minutes%60)
}

func formatDate(d wlog.Date) string {
	t, err := d.Time()
	if err != nil {
		return string(d)
	}
	return t.Format("Jan 2, 2006")
}

func parseMonth(yearMonth string) (time.Time, error) {
	if yearMonth == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	month, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, want yyyy-mm ex: 2024-03", yearMonth)
	}
	return month, nil
}
