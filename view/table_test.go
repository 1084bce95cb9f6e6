package view

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/buntdb"

	"wlog/wlog"
)

func newTestLogbook(t *testing.T) wlog.Logbook {
	t.Helper()
	db, err := buntdb.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	book, err := wlog.NewLogbook(wlog.NewLogRepository(db), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { book.Close() })
	return book
}

func TestSortedRecordsNewestFirst(t *testing.T) {
	records := []wlog.LogRecord{
		{Date: "2024-05-01", Minutes: 60},
		{Date: "2024-05-10", Minutes: 30},
		{Date: "2024-04-30", Minutes: 90},
	}

	sorted := sortedRecords(records)

	assert.Equal(t, []wlog.LogRecord{
		{Date: "2024-05-10", Minutes: 30},
		{Date: "2024-05-01", Minutes: 60},
		{Date: "2024-04-30", Minutes: 90},
	}, sorted)
	// Insertion order is untouched.
	assert.Equal(t, wlog.Date("2024-05-01"), records[0].Date)
}

func TestMinutesToWords(t *testing.T) {
	assert.Equal(t, "0 hours and 0 min", minutesToWords(0))
	assert.Equal(t, "1 hours and 30 min", minutesToWords(90))
	assert.Equal(t, "8 hours and 0 min", minutesToWords(480))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "May 1, 2024", formatDate("2024-05-01"))
	assert.Equal(t, "bogus", formatDate("bogus"))
}

func TestWeekBar(t *testing.T) {
	assert.Equal(t, "", weekBar(0, 8))
	assert.Len(t, []rune(weekBar(8, 8)), barWidth)
	assert.Len(t, []rune(weekBar(4, 8)), barWidth/2)
}

func TestParseMonth(t *testing.T) {
	month, err := parseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), month)

	now, err := parseMonth("")
	require.NoError(t, err)
	assert.Equal(t, 1, now.Day())

	_, err = parseMonth("march")
	assert.Error(t, err)
}

func TestRenderWeekHasSevenRows(t *testing.T) {
	book := newTestLogbook(t)
	today := wlog.Today()
	require.NoError(t, book.Add(today, 90))

	out := table.NewWriter()
	RenderWeek(out, book, today)

	assert.Equal(t, 7, out.Length())
}

func TestRenderLogsNewestFirst(t *testing.T) {
	book := newTestLogbook(t)
	require.NoError(t, book.Add("2024-05-01", 60))
	require.NoError(t, book.Add("2024-05-10", 30))

	out := table.NewWriter()
	RenderLogs(out, book)
	rendered := out.Render()

	assert.Less(t, strings.Index(rendered, "May 10, 2024"), strings.Index(rendered, "May 1, 2024"))
	assert.Contains(t, rendered, "0 hours and 30 min")
	assert.Contains(t, rendered, "1 hours and 0 min")
	// Footer total; styles render footers uppercased.
	assert.Contains(t, rendered, "1 HOURS AND 30 MIN")
}

func TestRenderStatus(t *testing.T) {
	book := newTestLogbook(t)
	book.SetRequiredHours(2)
	require.NoError(t, book.Add("2024-05-01", 60))

	out := table.NewWriter()
	RenderStatus(out, book)
	rendered := out.Render()

	assert.Contains(t, rendered, "50%")
	assert.Contains(t, rendered, "1 hours and 0 min")
}
