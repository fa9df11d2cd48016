package vacation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeIntervalDayOff(t *testing.T) {
	start, end, err := NormalizeInterval(IntervalInput{
		DayOffStartAt: "2026-06-01",
		DayOffEndAt:   "2026-06-03",
	}, CategoryDayOff)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC), end)
}

func TestNormalizeIntervalTruncatesToMidnight(t *testing.T) {
	start, end, err := NormalizeInterval(IntervalInput{
		DayOffStartAt: "2026-06-01T14:30",
		DayOffEndAt:   "2026-06-03T09:15",
	}, CategoryDayOff)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC), end)
}

func TestNormalizeIntervalKeepsLocation(t *testing.T) {
	start, _, err := NormalizeInterval(IntervalInput{
		DayOffStartAt: "2026-06-01T14:30:00+02:00",
		DayOffEndAt:   "2026-06-03T09:15:00+02:00",
	}, CategoryDayOff)
	require.NoError(t, err)

	// Truncation happens on the submitted clock, not after a UTC shift.
	require.Equal(t, 1, start.Day())
	require.Equal(t, 0, start.Hour())
	_, offset := start.Zone()
	require.Equal(t, 2*60*60, offset)
}

func TestNormalizeIntervalMissingEnd(t *testing.T) {
	_, _, err := NormalizeInterval(IntervalInput{DayOffStartAt: "2026-06-01"}, CategoryDayOff)
	require.ErrorIs(t, err, ErrMissingInterval)
}

func TestNormalizeIntervalMissingStart(t *testing.T) {
	_, _, err := NormalizeInterval(IntervalInput{}, CategoryDayOff)
	require.ErrorIs(t, err, ErrMissingInterval)
}

func TestNormalizeIntervalHalfDay(t *testing.T) {
	start, end, err := NormalizeInterval(IntervalInput{HalfDayStartAt: "2026-06-05T09:00"}, CategoryHalfDayOff)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 6, 5, 9, 0, 0, 0, time.UTC), start)
	require.Equal(t, start.Add(4*time.Hour), end)
}

func TestNormalizeIntervalQuarterDay(t *testing.T) {
	start, end, err := NormalizeInterval(IntervalInput{QuarterDayStartAt: "2026-06-05T09:00"}, CategoryQuarterDayOff)
	require.NoError(t, err)
	require.Equal(t, start.Add(2*time.Hour), end)
}

func TestNormalizeIntervalScanOrder(t *testing.T) {
	// When several groups are filled, the day-off pair wins regardless of
	// the requested category.
	start, end, err := NormalizeInterval(IntervalInput{
		DayOffStartAt:  "2026-06-01",
		DayOffEndAt:    "2026-06-02",
		SickDayStartAt: "2026-07-01",
		SickDayEndAt:   "2026-07-02",
	}, CategorySickDay)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), end)
}

func TestImplicitEndRejectsDayCategories(t *testing.T) {
	_, err := ImplicitEnd(CategoryDayOff, time.Now())
	require.ErrorIs(t, err, ErrUnsupportedCategory)
}

func TestParseDateTime(t *testing.T) {
	for _, value := range []string{
		"2026-06-01",
		"2026-06-01T09:30",
		"2026-06-01T09:30:15",
		"2026-06-01 09:30",
		"2026-06-01 09:30:15",
		"2026-06-01T09:30:15Z",
	} {
		parsed, err := ParseDateTime(value)
		require.NoError(t, err, value)
		require.Equal(t, 2026, parsed.Year(), value)
	}

	_, err := ParseDateTime("first of June")
	require.Error(t, err)
}
