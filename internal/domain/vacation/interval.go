package vacation

import (
	"fmt"
	"time"
)

const (
	HalfDayDuration    = 4 * time.Hour
	QuarterDayDuration = 2 * time.Hour
)

// IntervalInput carries the raw date fields of a submission form, one
// optional start/end pair per category group. Exactly one group is expected
// to be filled; which one wins is decided by a fixed scan order so mixed
// input stays deterministic.
type IntervalInput struct {
	DayOffStartAt     string `json:"dayOffStartAt,omitempty"`
	DayOffEndAt       string `json:"dayOffEndAt,omitempty"`
	SickDayStartAt    string `json:"sickDayStartAt,omitempty"`
	SickDayEndAt      string `json:"sickDayEndAt,omitempty"`
	CompDayStartAt    string `json:"compDayStartAt,omitempty"`
	CompDayEndAt      string `json:"compDayEndAt,omitempty"`
	HalfDayStartAt    string `json:"halfDayStartAt,omitempty"`
	QuarterDayStartAt string `json:"quarterDayStartAt,omitempty"`
}

func (in IntervalInput) rawStart() string {
	for _, candidate := range []string{in.DayOffStartAt, in.SickDayStartAt, in.CompDayStartAt, in.HalfDayStartAt, in.QuarterDayStartAt} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

func (in IntervalInput) rawEnd() string {
	for _, candidate := range []string{in.DayOffEndAt, in.SickDayEndAt, in.CompDayEndAt} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// NormalizeInterval converts raw form fields into the canonical inclusive
// [start, end] pair for the category.
func NormalizeInterval(in IntervalInput, cat Category) (time.Time, time.Time, error) {
	rawStart := in.rawStart()
	if rawStart == "" {
		return time.Time{}, time.Time{}, ErrMissingInterval
	}

	start, err := ParseDateTime(rawStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse start: %w", err)
	}

	var end time.Time
	if rawEnd := in.rawEnd(); rawEnd != "" {
		end, err = ParseDateTime(rawEnd)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse end: %w", err)
		}
	}
	return NormalizeTimes(cat, start, end)
}

// NormalizeTimes canonicalizes already-structured times: day-granularity
// categories are truncated to midnight on the same clock, sub-day categories
// get their fixed implicit end.
func NormalizeTimes(cat Category, start, end time.Time) (time.Time, time.Time, error) {
	if cat.DayGranularity() {
		if end.IsZero() {
			return time.Time{}, time.Time{}, ErrMissingInterval
		}
		return Midnight(start), Midnight(end), nil
	}

	implicit, err := ImplicitEnd(cat, start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, implicit, nil
}

// ImplicitEnd computes the end of a sub-day request from its start. Every
// other category carries an explicit end and is rejected here.
func ImplicitEnd(cat Category, start time.Time) (time.Time, error) {
	switch cat {
	case CategoryHalfDayOff:
		return start.Add(HalfDayDuration), nil
	case CategoryQuarterDayOff:
		return start.Add(QuarterDayDuration), nil
	}
	return time.Time{}, fmt.Errorf("%w: cannot compute end for %s", ErrUnsupportedCategory, cat)
}

// Midnight truncates to the start of the day on the same clock, without any
// timezone shift.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateTime accepts the date and datetime shapes the forms produce.
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", value)
}
