package calendar

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Calendar holds the company holiday set. It is loaded once at startup and
// read-only afterwards.
type Calendar struct {
	holidays map[time.Time]struct{}
}

type holidayFile struct {
	Holiday []holidayEntry `toml:"holiday"`
}

type holidayEntry struct {
	Date string `toml:"date"`
	Name string `toml:"name"`
}

// Load reads the holiday calendar from a TOML file with [[holiday]] entries.
func Load(path string) (*Calendar, error) {
	var file holidayFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("load holiday calendar: %w", err)
	}

	dates := make([]time.Time, 0, len(file.Holiday))
	for _, entry := range file.Holiday {
		parsed, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			return nil, fmt.Errorf("holiday %q: %w", entry.Date, err)
		}
		dates = append(dates, parsed)
	}
	return New(dates), nil
}

// New builds a calendar from explicit holiday dates. Times of day are ignored.
func New(dates []time.Time) *Calendar {
	holidays := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		holidays[DateOf(d)] = struct{}{}
	}
	return &Calendar{holidays: holidays}
}

// DateOf normalizes a timestamp to its calendar date (UTC midnight), so dates
// from different zones compare equal by day.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.holidays[DateOf(t)]
	return ok
}

func (c *Calendar) HolidayCount() int {
	return len(c.holidays)
}

// BusinessDays returns every weekday (Mon-Fri) in the inclusive range
// [start, end]. Holidays are not removed here; see ExcludeHolidays.
func (c *Calendar) BusinessDays(start, end time.Time) []time.Time {
	first, last := DateOf(start), DateOf(end)
	var out []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		out = append(out, d)
	}
	return out
}

// ExcludeHolidays removes every configured holiday from the given date set.
func (c *Calendar) ExcludeHolidays(dates map[time.Time]struct{}) map[time.Time]struct{} {
	out := make(map[time.Time]struct{}, len(dates))
	for d := range dates {
		if c.IsHoliday(d) {
			continue
		}
		out[d] = struct{}{}
	}
	return out
}
