package wlog

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrDuplicateEntry is returned when the date already has a logged shift.
	ErrDuplicateEntry = errors.New("date already logged")
	// ErrNoEntry is returned when the date has no logged shift to remove.
	ErrNoEntry = errors.New("no entry for date")
)

// LogRecord pairs a logged date with the minutes worked that day.
type LogRecord struct {
	Date    Date
	Minutes int
}

// Summary aggregates the log against the required-hours target.
//
// RemainingMinutes is the raw shortfall and goes negative once the target
// is passed. RemainingHours is the floored quotient and
// RemainingMinutesRemainder the truncated remainder, so 30 minutes over
// target reads as hours -1, remainder -30.
type Summary struct {
	TotalMinutes              int
	DayCount                  int
	RequiredHours             float64
	Percentage                float64
	RemainingMinutes          int
	RemainingHours            int
	RemainingMinutesRemainder int
}

// DayHours is one day of the seven-day breakdown.
type DayHours struct {
	Day   string
	Date  Date
	Hours float64
}

// Logbook owns the in-memory log and target. Mutations take effect
// immediately and are written through to the repository by a background
// saver; a failed write is logged and dropped, never rolled back or
// retried.
type Logbook interface {
	Add(date Date, minutes int) error
	Remove(date Date) error
	SetRequiredHours(hours float64)
	SetRequiredHoursText(text string)
	RequiredHours() float64
	Records() []LogRecord
	Summarize() Summary
	WeeklyBreakdown(today Date) []DayHours
	FirstLaunch() bool
	Close() error
}

func NewLogbook(repo LogRepository, logger *slog.Logger) (Logbook, error) {
	dates, minutes, err := repo.GetLog()
	if err != nil {
		return nil, fmt.Errorf("failed to load log: %w", err)
	}
	if len(dates) != len(minutes) {
		return nil, fmt.Errorf("log out of sync: %d dates, %d totals", len(dates), len(minutes))
	}
	hours, err := repo.GetRequiredHours()
	if err != nil {
		return nil, fmt.Errorf("failed to load required hours: %w", err)
	}

	l := &logbook{
		repo:          repo,
		logger:        logger,
		dates:         dates,
		minutes:       minutes,
		requiredHours: hours,
		saves:         make(chan func() error, 16),
		done:          make(chan struct{}),
	}
	go l.runSaver()
	return l, nil
}

type logbook struct {
	repo   LogRepository
	logger *slog.Logger

	dates         []Date
	minutes       []int
	requiredHours float64

	saves chan func() error
	done  chan struct{}
}

// runSaver applies queued writes in order so the store always converges on
// the newest snapshot.
func (l *logbook) runSaver() {
	for save := range l.saves {
		if err := save(); err != nil {
			l.logger.Error("failed to persist", slog.String("error", err.Error()))
		}
	}
	close(l.done)
}

func (l *logbook) persistLog() {
	dates := make([]Date, len(l.dates))
	copy(dates, l.dates)
	minutes := make([]int, len(l.minutes))
	copy(minutes, l.minutes)
	l.saves <- func() error { return l.repo.SaveLog(dates, minutes) }
}

func (l *logbook) Add(date Date, minutes int) error {
	if l.indexOf(date) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateEntry, date)
	}
	if minutes <= 0 {
		l.logger.Debug("no minutes recorded", slog.String("date", string(date)))
		return nil
	}

	l.dates = append(l.dates, date)
	l.minutes = append(l.minutes, minutes)
	l.logger.Debug("entry added",
		slog.String("date", string(date)), slog.Int("minutes", minutes))
	l.persistLog()
	return nil
}

func (l *logbook) Remove(date Date) error {
	i := l.indexOf(date)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNoEntry, date)
	}

	l.dates = append(l.dates[:i], l.dates[i+1:]...)
	l.minutes = append(l.minutes[:i], l.minutes[i+1:]...)
	l.logger.Debug("entry removed", slog.String("date", string(date)))
	l.persistLog()
	return nil
}

func (l *logbook) indexOf(date Date) int {
	for i, d := range l.dates {
		if d == date {
			return i
		}
	}
	return -1
}

// SetRequiredHours always updates the in-memory target, but a target of
// exactly 0 never reaches the store: the last persisted non-zero target
// survives a restart.
func (l *logbook) SetRequiredHours(hours float64) {
	l.requiredHours = hours
	if hours == 0 {
		return
	}
	l.saves <- func() error { return l.repo.SaveRequiredHours(hours) }
}

// SetRequiredHoursText parses free-form input; text that is not a number
// leaves the target unchanged.
func (l *logbook) SetRequiredHoursText(text string) {
	hours, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return
	}
	l.SetRequiredHours(hours)
}

func (l *logbook) RequiredHours() float64 {
	return l.requiredHours
}

// Records returns the log in insertion order.
func (l *logbook) Records() []LogRecord {
	records := make([]LogRecord, len(l.dates))
	for i, d := range l.dates {
		records[i] = LogRecord{Date: d, Minutes: l.minutes[i]}
	}
	return records
}

func (l *logbook) Summarize() Summary {
	total := 0
	for _, m := range l.minutes {
		total += m
	}

	requiredMinutes := l.requiredHours * 60
	percentage := 0.0
	if requiredMinutes > 0 {
		percentage = float64(total) / requiredMinutes * 100
		percentage = math.Max(0, math.Min(100, percentage))
	}

	remaining := requiredMinutes - float64(total)
	return Summary{
		TotalMinutes:              total,
		DayCount:                  len(l.dates),
		RequiredHours:             l.requiredHours,
		Percentage:                percentage,
		RemainingMinutes:          int(remaining),
		RemainingHours:            int(math.Floor(remaining / 60)),
		RemainingMinutesRemainder: int(math.Trunc(math.Mod(remaining, 60))),
	}
}

// WeeklyBreakdown covers today and the six preceding days, oldest first,
// with each day's hours rounded to one decimal place.
func (l *logbook) WeeklyBreakdown(today Date) []DayHours {
	t, err := today.Time()
	if err != nil {
		t = time.Now()
	}

	week := make([]DayHours, 0, 7)
	for i := 6; i >= 0; i-- {
		d := t.AddDate(0, 0, -i)
		date := NewDate(d)
		hours := 0.0
		if j := l.indexOf(date); j >= 0 {
			hours = math.Round(float64(l.minutes[j])/60*10) / 10
		}
		week = append(week, DayHours{Day: d.Format("Mon"), Date: date, Hours: hours})
	}
	return week
}

// FirstLaunch reports whether this is the first run and marks the store so
// later runs report false.
func (l *logbook) FirstLaunch() bool {
	launched, err := l.repo.GetLaunched()
	if err != nil {
		l.logger.Error("failed to read launch marker", slog.String("error", err.Error()))
		return false
	}
	if launched {
		return false
	}
	if err := l.repo.SaveLaunched(); err != nil {
		l.logger.Error("failed to save launch marker", slog.String("error", err.Error()))
	}
	return true
}

// Close drains pending writes.
func (l *logbook) Close() error {
	close(l.saves)
	<-l.done
	return nil
}
