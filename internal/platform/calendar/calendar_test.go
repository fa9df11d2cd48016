package calendar

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessDaysSkipsWeekends(t *testing.T) {
	cal := New(nil)

	// 2021-12-20 is a Monday, 2021-12-26 a Sunday.
	days := cal.BusinessDays(
		time.Date(2021, 12, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 12, 26, 0, 0, 0, 0, time.UTC),
	)

	require.Len(t, days, 5)
	assert.Equal(t, time.Date(2021, 12, 20, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2021, 12, 24, 0, 0, 0, 0, time.UTC), days[4])
}

func TestBusinessDaysIgnoresTimeOfDay(t *testing.T) {
	cal := New(nil)

	days := cal.BusinessDays(
		time.Date(2021, 12, 22, 13, 30, 0, 0, time.Local),
		time.Date(2021, 12, 22, 18, 0, 0, 0, time.Local),
	)
	require.Len(t, days, 1)
	assert.Equal(t, time.Date(2021, 12, 22, 0, 0, 0, 0, time.UTC), days[0])
}

func TestExcludeHolidays(t *testing.T) {
	christmas := time.Date(2021, 12, 25, 0, 0, 0, 0, time.UTC)
	cal := New([]time.Time{christmas})

	dates := map[time.Time]struct{}{
		christmas: {},
		time.Date(2021, 12, 24, 0, 0, 0, 0, time.UTC): {},
	}
	remaining := cal.ExcludeHolidays(dates)

	assert.Len(t, remaining, 1)
	assert.NotContains(t, remaining, christmas)
	assert.True(t, cal.IsHoliday(christmas.Add(9*time.Hour)))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.toml")
	content := `
[[holiday]]
date = "2021-08-15"
name = "Liberation Day"

[[holiday]]
date = "2021-12-25"
name = "Christmas"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cal, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cal.HolidayCount())
	assert.True(t, cal.IsHoliday(time.Date(2021, 8, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, cal.IsHoliday(time.Date(2021, 8, 16, 0, 0, 0, 0, time.UTC)))
}

func TestLoadRejectsBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[holiday]]\ndate = \"15-08-2021\"\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
