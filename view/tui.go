package view

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"wlog/wlog"
)

type Viewer interface {
	Do(yearMonth string) error
}

func NewTUI(book wlog.Logbook, logger *slog.Logger) Viewer {
	return &tui{
		book:   book,
		logger: logger,
	}
}

type tui struct {
	book   wlog.Logbook
	logger *slog.Logger

	app   *tview.Application
	body  *tview.Flex
	month time.Time
}

func (t *tui) Do(yearMonth string) error {
	month, err := parseMonth(yearMonth)
	if err != nil {
		return err
	}
	t.month = month

	t.app = tview.NewApplication()
	t.draw()
	return t.app.Run()
}

// draw rebuilds the whole screen from the current log. Cheap enough to
// run after every mutation.
func (t *tui) draw() {
	calendar := t.newCalendarTable()
	logs := t.newLogsTable()

	left := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(calendar, 0, 2, true).
		AddItem(t.newWeekChart(), 9, 0, false).
		AddItem(t.newSummaryView(), 0, 1, false)

	t.body = tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(left, 0, 2, true).
		AddItem(logs, 0, 1, false)

	title := fmt.Sprintf("WLog — %s  (enter: log day, p/n: month, tab: logs, q: quit)", t.month.Format("January 2006"))
	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewTextView().SetText(title), 1, 1, false).
		AddItem(t.body, 0, 1, true)

	calendar.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q':
			t.app.Stop()
			return nil
		case 'p':
			t.month = t.month.AddDate(0, -1, 0)
			t.draw()
			return nil
		case 'n':
			t.month = t.month.AddDate(0, 1, 0)
			t.draw()
			return nil
		}
		if event.Key() == tcell.KeyTab {
			t.app.SetFocus(logs)
			return nil
		}
		return event
	})
	logs.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' {
			t.app.Stop()
			return nil
		}
		if event.Key() == tcell.KeyTab {
			t.app.SetFocus(calendar)
			return nil
		}
		return event
	})

	t.app.SetRoot(root, true).SetFocus(calendar)
}

func (t *tui) newCalendarTable() *tview.Table {
	table := tview.NewTable().SetBorders(true)

	logged := make(map[wlog.Date]bool)
	for _, r := range t.book.Records() {
		logged[r.Date] = true
	}

	for i, name := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		table.SetCell(0, i, tview.NewTableCell(name).SetAlign(tview.AlignCenter).SetSelectable(false))
	}

	row := 1
	first := time.Date(t.month.Year(), t.month.Month(), 1, 0, 0, 0, 0, t.month.Location())
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		col := int(d.Weekday())
		date := wlog.NewDate(d)

		cell := tview.NewTableCell(fmt.Sprintf(" %2d ", d.Day())).
			SetAlign(tview.AlignCenter).
			SetReference(date)
		if logged[date] {
			cell.SetTextColor(tcell.ColorGreen)
		}
		if date == wlog.Today() {
			cell.SetAttributes(tcell.AttrBold)
		}
		table.SetCell(row, col, cell)

		if col == int(time.Saturday) {
			row++
		}
	}

	table.SetSelectable(true, true).SetSelectedFunc(func(row, col int) {
		date, ok := table.GetCell(row, col).GetReference().(wlog.Date)
		if !ok {
			return
		}
		t.openEntryForm(date)
	})
	return table
}

func (t *tui) newLogsTable() *tview.Table {
	table := tview.NewTable().SetBorders(true)
	table.SetCell(0, 0, tview.NewTableCell("Date").SetAlign(tview.AlignCenter).SetSelectable(false))
	table.SetCell(0, 1, tview.NewTableCell("Hours").SetAlign(tview.AlignCenter).SetSelectable(false))

	records := sortedRecords(t.book.Records())
	for i, r := range records {
		table.SetCell(i+1, 0, tview.NewTableCell(" "+formatDate(r.Date)+" ").SetReference(r.Date))
		table.SetCell(i+1, 1, tview.NewTableCell(" "+minutesToWords(r.Minutes)+" "))
	}
	if len(records) == 0 {
		table.SetCell(1, 0, tview.NewTableCell("no logs yet").SetSelectable(false))
		table.SetCell(1, 1, tview.NewTableCell("pick a date").SetSelectable(false))
	}

	table.SetSelectable(true, false).SetSelectedFunc(func(row, col int) {
		date, ok := table.GetCell(row, 0).GetReference().(wlog.Date)
		if !ok {
			return
		}
		if err := t.book.Remove(date); err != nil {
			t.logger.Error("failed to remove entry", slog.String("error", err.Error()))
		}
		t.draw()
	})
	return table
}

func (t *tui) newWeekChart() *tview.TextView {
	week := t.book.WeeklyBreakdown(wlog.Today())

	maxHours := 1.0
	for _, d := range week {
		maxHours = math.Max(maxHours, d.Hours)
	}

	var b strings.Builder
	b.WriteString("This Week's Summary\n")
	for _, d := range week {
		fmt.Fprintf(&b, "%s %-*s %.1fh\n", d.Day, barWidth, weekBar(d.Hours, maxHours), d.Hours)
	}
	return tview.NewTextView().SetText(b.String())
}

func (t *tui) newSummaryView() *tview.TextView {
	s := t.book.Summarize()
	text := fmt.Sprintf(
		"OJT Progress: %d%%\nDays: %d\nRequired OJT Hours: %g\nRemaining: %d hours and %d min\nTotal: %s\n",
		int(math.Round(s.Percentage)),
		s.DayCount,
		s.RequiredHours,
		s.RemainingHours, s.RemainingMinutesRemainder,
		minutesToWords(s.TotalMinutes),
	)
	return tview.NewTextView().SetText(text)
}

// openEntryForm shows the in/out inputs for one day. Empty fields read as
// 0:00, matching an untouched picker.
func (t *tui) openEntryForm(date wlog.Date) {
	morningIn, morningOut := "", ""
	afternoonIn, afternoonOut := "", ""

	form := tview.NewForm().
		AddInputField("Morning in (h:mm)", "", 10, nil, func(text string) { morningIn = text }).
		AddInputField("Morning out (h:mm)", "", 10, nil, func(text string) { morningOut = text }).
		AddInputField("Afternoon in (h:mm)", "", 10, nil, func(text string) { afternoonIn = text }).
		AddInputField("Afternoon out (h:mm)", "", 10, nil, func(text string) { afternoonOut = text }).
		AddTextView("", "", 0, 1, false, false)

	showError := func(message string) {
		form.GetFormItem(4).(*tview.TextView).
			SetLabel("Error").
			SetText(message)
	}

	form.
		AddButton("Save", func() {
			entry := wlog.ShiftEntry{}
			for _, f := range []struct {
				text string
				dest *wlog.TimeOfDay
			}{
				{morningIn, &entry.MorningIn},
				{morningOut, &entry.MorningOut},
				{afternoonIn, &entry.AfternoonIn},
				{afternoonOut, &entry.AfternoonOut},
			} {
				if f.text == "" {
					continue
				}
				tod, err := wlog.ParseTimeOfDay(f.text)
				if err != nil {
					showError(err.Error())
					return
				}
				*f.dest = tod
			}

			if err := t.book.Add(date, entry.TotalMinutes()); err != nil {
				if errors.Is(err, wlog.ErrDuplicateEntry) {
					showError("Oops, you are working twice a day? Relax a little")
					return
				}
				t.logger.Error("failed to add entry", slog.String("error", err.Error()))
			}
			t.draw()
		}).
		AddButton("Cancel", func() {
			t.draw()
		})

	form.SetBorder(true).SetTitle("Add Time for " + string(date)).SetTitleAlign(tview.AlignLeft)
	t.body.AddItem(form, 0, 1, true)
	t.app.SetFocus(form)
}
