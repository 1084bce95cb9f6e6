package wlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/buntdb"
)

func TestGetLogDefaultsWhenEmpty(t *testing.T) {
	repo := newTestRepository(t)

	dates, minutes, err := repo.GetLog()
	require.NoError(t, err)
	assert.Empty(t, dates)
	assert.Empty(t, minutes)
}

func TestSaveLogRoundTrip(t *testing.T) {
	repo := newTestRepository(t)

	wantDates := []Date{"2024-05-02", "2024-05-01", "2024-05-10"}
	wantMinutes := []int{45, 480, 1}
	require.NoError(t, repo.SaveLog(wantDates, wantMinutes))

	dates, minutes, err := repo.GetLog()
	require.NoError(t, err)
	assert.Equal(t, wantDates, dates)
	assert.Equal(t, wantMinutes, minutes)
}

func TestSaveLogOverwritesWholeLog(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.SaveLog([]Date{"a", "b"}, []int{1, 2}))
	require.NoError(t, repo.SaveLog([]Date{"c"}, []int{3}))

	dates, minutes, err := repo.GetLog()
	require.NoError(t, err)
	assert.Equal(t, []Date{"c"}, dates)
	assert.Equal(t, []int{3}, minutes)
}

func TestRequiredHoursDefaultsToZero(t *testing.T) {
	repo := newTestRepository(t)

	hours, err := repo.GetRequiredHours()
	require.NoError(t, err)
	assert.Equal(t, 0.0, hours)
}

func TestRequiredHoursRoundTrip(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.SaveRequiredHours(7.5))
	hours, err := repo.GetRequiredHours()
	require.NoError(t, err)
	assert.Equal(t, 7.5, hours)
}

func TestLaunchedMarker(t *testing.T) {
	repo := newTestRepository(t)

	launched, err := repo.GetLaunched()
	require.NoError(t, err)
	assert.False(t, launched)

	require.NoError(t, repo.SaveLaunched())
	launched, err = repo.GetLaunched()
	require.NoError(t, err)
	assert.True(t, launched)
}

func TestStorageKeysAreStable(t *testing.T) {
	db, err := buntdb.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := NewLogRepository(db)

	require.NoError(t, repo.SaveLog([]Date{"2024-05-01"}, []int{60}))
	require.NoError(t, repo.SaveRequiredHours(8))

	got := map[string]string{}
	require.NoError(t, db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend("", func(key, value string) bool {
			got[key] = value
			return true
		})
	}))

	assert.Equal(t, map[string]string{
		"ojt.days":          `["2024-05-01"]`,
		"ojt.totalMinutes":  `[60]`,
		"ojt.requiredHours": `8`,
	}, got)
}
